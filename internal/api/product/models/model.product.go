// Package models - model sản phẩm (Product) của một shop.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	geomodels "github.com/MHYAnate/sureshops-api/internal/api/geo/models"
)

// Các trạng thái trong vòng đời sản phẩm.
const (
	StatusDraft        = "draft"        // Nháp, vendor chưa gửi duyệt
	StatusPending      = "pending"      // Chờ admin duyệt
	StatusApproved     = "approved"     // Đã duyệt, xuất hiện trong tìm kiếm
	StatusRejected     = "rejected"     // Bị từ chối
	StatusOutOfStock   = "out_of_stock" // Hết hàng
	StatusDiscontinued = "discontinued" // Ngừng kinh doanh
)

// Các loại hình sản phẩm.
const (
	ProductTypeSale    = "sale"
	ProductTypeLease   = "lease"
	ProductTypeRent    = "rent"
	ProductTypeService = "service"
)

// statusTransitions định nghĩa đồ thị chuyển trạng thái hợp lệ:
// draft → pending → {approved, rejected} → {out_of_stock, discontinued}.
var statusTransitions = map[string][]string{
	StatusDraft:        {StatusPending},
	StatusPending:      {StatusApproved, StatusRejected},
	StatusApproved:     {StatusOutOfStock, StatusDiscontinued},
	StatusRejected:     {StatusPending, StatusDiscontinued},
	StatusOutOfStock:   {StatusApproved, StatusDiscontinued},
	StatusDiscontinued: {},
}

// CanTransitionStatus kiểm tra một bước chuyển trạng thái có hợp lệ không.
func CanTransitionStatus(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsValidStatus kiểm tra chuỗi trạng thái có nằm trong vòng đời không.
func IsValidStatus(status string) bool {
	_, ok := statusTransitions[status]
	return ok
}

// Product định nghĩa một listing sản phẩm của vendor.
// StateID/AreaID/MarketID/Location là snapshot copy từ vendor lúc tạo,
// KHÔNG tự động sync khi vendor chuyển địa bàn (resync qua thao tác riêng).
// Chỉ status approved mới xuất hiện trong tìm kiếm mặc định.
type Product struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	VendorID          primitive.ObjectID `json:"vendorId" bson:"vendorId" index:"single:1"`
	CatalogItemID     primitive.ObjectID `json:"catalogItemId,omitempty" bson:"catalogItemId,omitempty" index:"single:1"`
	Name              string             `json:"name" bson:"name" index:"single:1"`
	Description       string             `json:"description,omitempty" bson:"description,omitempty"`
	Price             float64            `json:"price" bson:"price" index:"single:1"`
	OriginalPrice     float64            `json:"originalPrice,omitempty" bson:"originalPrice,omitempty"`
	Currency          string             `json:"currency" bson:"currency" default:"NGN"`
	Category          string             `json:"category" bson:"category" index:"single:1"`
	Subcategory       string             `json:"subcategory,omitempty" bson:"subcategory,omitempty"`
	Brand             string             `json:"brand,omitempty" bson:"brand,omitempty" index:"single:1"`
	Tags              []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	SKU               string             `json:"sku,omitempty" bson:"sku,omitempty" index:"single:1"`
	Barcode           string             `json:"barcode,omitempty" bson:"barcode,omitempty"`
	Images            []string           `json:"images,omitempty" bson:"images,omitempty"`
	Quantity          int64              `json:"quantity" bson:"quantity"`
	InStock           bool               `json:"inStock" bson:"inStock" default:"true"`
	Status            string             `json:"status" bson:"status" default:"pending" index:"single:1"`
	ModerationNote    string             `json:"moderationNote,omitempty" bson:"moderationNote,omitempty"` // Lý do từ chối gần nhất
	ProductType       string             `json:"productType" bson:"productType" default:"sale" index:"single:1"`
	StateID           primitive.ObjectID `json:"stateId,omitempty" bson:"stateId,omitempty" index:"single:1"`
	AreaID            primitive.ObjectID `json:"areaId,omitempty" bson:"areaId,omitempty" index:"single:1"`
	MarketID          primitive.ObjectID `json:"marketId,omitempty" bson:"marketId,omitempty" index:"single:1"`
	Location          *geomodels.GeoJSON `json:"location,omitempty" bson:"location,omitempty" index:"geo2dsphere"`
	Views             int64              `json:"views" bson:"views"`
	SearchAppearances int64              `json:"searchAppearances" bson:"searchAppearances"`
	IsActive          bool               `json:"isActive" bson:"isActive" default:"true" index:"single:1"`
	CreatedAt         int64              `json:"createdAt" bson:"createdAt" index:"single:-1,order:-1"`
	UpdatedAt         int64              `json:"updatedAt" bson:"updatedAt"`
}

// ProductPaginateResult đại diện cho kết quả phân trang Product
type ProductPaginateResult struct {
	Page      int64     `json:"page" bson:"page"`
	Limit     int64     `json:"limit" bson:"limit"`
	ItemCount int64     `json:"itemCount" bson:"itemCount"`
	Items     []Product `json:"items" bson:"items"`
}
