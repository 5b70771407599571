// Package admindto - DTO cho nghiệp vụ quản trị.
package admindto

// ProductRejectInput đầu vào từ chối một sản phẩm đang chờ duyệt.
type ProductRejectInput struct {
	Reason string `json:"reason" validate:"required,min=3,max=1000,no_xss"`
}

// VendorVerifyInput đầu vào bật/tắt trạng thái đã xác minh của shop.
type VendorVerifyInput struct {
	Verified bool `json:"verified"`
}

// VendorFeatureInput đầu vào bật/tắt trạng thái nổi bật của shop.
type VendorFeatureInput struct {
	Featured bool `json:"featured"`
}

// StatusCount là số sản phẩm theo từng trạng thái kiểm duyệt.
type StatusCount struct {
	Status string `json:"status" bson:"_id"`
	Count  int64  `json:"count" bson:"count"`
}

// PlatformStats là số liệu tổng quan của nền tảng cho dashboard quản trị.
type PlatformStats struct {
	TotalUsers       int64         `json:"totalUsers"`
	TotalVendors     int64         `json:"totalVendors"`
	ActiveVendors    int64         `json:"activeVendors"`
	VerifiedVendors  int64         `json:"verifiedVendors"`
	TotalProducts    int64         `json:"totalProducts"`
	ProductsByStatus []StatusCount `json:"productsByStatus"`
	TotalReviews     int64         `json:"totalReviews"`
	TotalStates      int64         `json:"totalStates"`
	TotalAreas       int64         `json:"totalAreas"`
	TotalMarkets     int64         `json:"totalMarkets"`
	GeneratedAt      int64         `json:"generatedAt"` // Unix ms
}
