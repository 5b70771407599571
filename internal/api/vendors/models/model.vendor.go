// Package models - model shop/người bán (Vendor).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	geomodels "github.com/MHYAnate/sureshops-api/internal/api/geo/models"
)

// Các loại hình vendor.
const (
	VendorTypeShop        = "shop"         // Cửa hàng cố định
	VendorTypeMarketStall = "market_stall" // Sạp trong chợ
	VendorTypeOnline      = "online"       // Bán online, không có mặt bằng
	VendorTypeService     = "service"      // Cung cấp dịch vụ
)

// ContactDetails chứa thông tin liên hệ của shop. Phone là bắt buộc.
type ContactDetails struct {
	Phone    string `json:"phone" bson:"phone"`
	Email    string `json:"email,omitempty" bson:"email,omitempty"`
	Whatsapp string `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
	Website  string `json:"website,omitempty" bson:"website,omitempty"`
}

// BankDetails chứa thông tin tài khoản ngân hàng của shop (tùy chọn).
type BankDetails struct {
	BankName      string `json:"bankName" bson:"bankName"`
	AccountName   string `json:"accountName" bson:"accountName"`
	AccountNumber string `json:"accountNumber" bson:"accountNumber"`
}

// OperatingHour chứa giờ mở cửa của một ngày trong tuần.
type OperatingHour struct {
	Day   string `json:"day" bson:"day"`     // monday..sunday
	Open  string `json:"open" bson:"open"`   // "08:00"
	Close string `json:"close" bson:"close"` // "18:00"
}

// Vendor định nghĩa một shop trong danh bạ.
// Mỗi user chỉ sở hữu đúng một vendor (unique index trên userId).
// TotalProducts/Rating/ReviewCount/MinProductPrice/MaxProductPrice là
// aggregate denormalize, được worker tính lại khi tập product thay đổi.
// Bất biến: MinProductPrice <= MaxProductPrice.
type Vendor struct {
	ID                primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	UserID            primitive.ObjectID  `json:"userId" bson:"userId" index:"unique"`
	BusinessName      string              `json:"businessName" bson:"businessName" index:"single:1"`
	Description       string              `json:"description,omitempty" bson:"description,omitempty"`
	VendorType        string              `json:"vendorType" bson:"vendorType" default:"shop" index:"single:1"`
	StateID           primitive.ObjectID  `json:"stateId" bson:"stateId" index:"single:1"`
	AreaID            primitive.ObjectID  `json:"areaId" bson:"areaId" index:"single:1"`
	MarketID          primitive.ObjectID  `json:"marketId,omitempty" bson:"marketId,omitempty" index:"single:1"`
	ShopNumber        string              `json:"shopNumber,omitempty" bson:"shopNumber,omitempty"`
	Floor             string              `json:"floor,omitempty" bson:"floor,omitempty"`
	Block             string              `json:"block,omitempty" bson:"block,omitempty"`
	ShopAddress       string              `json:"shopAddress,omitempty" bson:"shopAddress,omitempty"`
	Landmark          string              `json:"landmark,omitempty" bson:"landmark,omitempty"`
	Location          *geomodels.GeoJSON  `json:"location,omitempty" bson:"location,omitempty" index:"geo2dsphere"`
	ContactDetails    ContactDetails      `json:"contactDetails" bson:"contactDetails"`
	BankDetails       *BankDetails        `json:"bankDetails,omitempty" bson:"bankDetails,omitempty"`
	ShopImages        []string            `json:"shopImages,omitempty" bson:"shopImages,omitempty"`
	OperatingHours    []OperatingHour     `json:"operatingHours,omitempty" bson:"operatingHours,omitempty"`
	Categories        []string            `json:"categories,omitempty" bson:"categories,omitempty" index:"single:1"`
	Tags              []string            `json:"tags,omitempty" bson:"tags,omitempty"`
	TotalProducts     int64               `json:"totalProducts" bson:"totalProducts"`
	Rating            float64             `json:"rating" bson:"rating" index:"single:-1,order:-1"`
	ReviewCount       int64               `json:"reviewCount" bson:"reviewCount"`
	MinProductPrice   float64             `json:"minProductPrice" bson:"minProductPrice"`
	MaxProductPrice   float64             `json:"maxProductPrice" bson:"maxProductPrice"`
	TotalViews        int64               `json:"totalViews" bson:"totalViews"`
	SearchAppearances int64               `json:"searchAppearances" bson:"searchAppearances"`
	IsActive          bool                `json:"isActive" bson:"isActive" default:"true" index:"single:1"`
	IsVerified        bool                `json:"isVerified" bson:"isVerified"`
	IsFeatured        bool                `json:"isFeatured" bson:"isFeatured"`
	IsOpen            bool                `json:"isOpen" bson:"isOpen" default:"true"`
	CreatedAt         int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt         int64               `json:"updatedAt" bson:"updatedAt"`
}

// VendorPaginateResult đại diện cho kết quả phân trang Vendor
type VendorPaginateResult struct {
	Page      int64    `json:"page" bson:"page"`
	Limit     int64    `json:"limit" bson:"limit"`
	ItemCount int64    `json:"itemCount" bson:"itemCount"`
	Items     []Vendor `json:"items" bson:"items"`
}
