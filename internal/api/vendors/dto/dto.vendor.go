// Package vendordto - các DTO cho shop/người bán.
package vendordto

import (
	geomodels "github.com/MHYAnate/sureshops-api/internal/api/geo/models"
	models "github.com/MHYAnate/sureshops-api/internal/api/vendors/models"
)

// VendorRegisterInput đầu vào đăng ký shop.
// UserID không nhận từ client - lấy từ token của người đang đăng nhập.
type VendorRegisterInput struct {
	BusinessName   string                 `json:"businessName" validate:"required,no_xss"`
	Description    string                 `json:"description" validate:"omitempty,no_xss"`
	VendorType     string                 `json:"vendorType" validate:"omitempty,oneof=shop market_stall online service"`
	StateID        string                 `json:"stateId" validate:"required" transform:"str_objectid"`
	AreaID         string                 `json:"areaId" validate:"required" transform:"str_objectid"`
	MarketID       string                 `json:"marketId" validate:"omitempty" transform:"str_objectid,optional"`
	ShopNumber     string                 `json:"shopNumber" validate:"omitempty,no_xss"`
	Floor          string                 `json:"floor" validate:"omitempty,no_xss"`
	Block          string                 `json:"block" validate:"omitempty,no_xss"`
	ShopAddress    string                 `json:"shopAddress" validate:"omitempty,no_xss"`
	Landmark       string                 `json:"landmark" validate:"omitempty,no_xss"`
	Location       *geomodels.GeoJSON     `json:"location" validate:"omitempty"`
	ContactDetails models.ContactDetails  `json:"contactDetails" validate:"required"`
	BankDetails    *models.BankDetails    `json:"bankDetails" validate:"omitempty"`
	ShopImages     []string               `json:"shopImages" validate:"omitempty,dive,url"`
	OperatingHours []models.OperatingHour `json:"operatingHours" validate:"omitempty"`
	Categories     []string               `json:"categories" validate:"omitempty,dive,no_xss"`
	Tags           []string               `json:"tags" validate:"omitempty,dive,no_xss"`
}

// VendorUpdateInput đầu vào cập nhật shop của chính mình.
// Không cho đổi userId; đổi địa bàn (state/area/market) phải đi kèm
// kiểm tra phân cấp như lúc đăng ký.
type VendorUpdateInput struct {
	BusinessName   string                 `json:"businessName" validate:"omitempty,no_xss"`
	Description    string                 `json:"description" validate:"omitempty,no_xss"`
	VendorType     string                 `json:"vendorType" validate:"omitempty,oneof=shop market_stall online service"`
	StateID        string                 `json:"stateId" validate:"omitempty" transform:"str_objectid,optional"`
	AreaID         string                 `json:"areaId" validate:"omitempty" transform:"str_objectid,optional"`
	MarketID       string                 `json:"marketId" validate:"omitempty" transform:"str_objectid,optional"`
	ShopNumber     string                 `json:"shopNumber" validate:"omitempty,no_xss"`
	Floor          string                 `json:"floor" validate:"omitempty,no_xss"`
	Block          string                 `json:"block" validate:"omitempty,no_xss"`
	ShopAddress    string                 `json:"shopAddress" validate:"omitempty,no_xss"`
	Landmark       string                 `json:"landmark" validate:"omitempty,no_xss"`
	Location       *geomodels.GeoJSON     `json:"location" validate:"omitempty"`
	ContactDetails *models.ContactDetails `json:"contactDetails" validate:"omitempty"`
	BankDetails    *models.BankDetails    `json:"bankDetails" validate:"omitempty"`
	ShopImages     []string               `json:"shopImages" validate:"omitempty,dive,url"`
	OperatingHours []models.OperatingHour `json:"operatingHours" validate:"omitempty"`
	Categories     []string               `json:"categories" validate:"omitempty,dive,no_xss"`
	Tags           []string               `json:"tags" validate:"omitempty,dive,no_xss"`
	IsOpen         *bool                  `json:"isOpen" validate:"omitempty"`
}
