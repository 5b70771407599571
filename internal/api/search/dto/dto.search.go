// Package searchdto - DTO đầu vào và view kết quả cho engine tìm kiếm & so sánh giá.
package searchdto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	productmodels "github.com/MHYAnate/sureshops-api/internal/api/product/models"
	vendormodels "github.com/MHYAnate/sureshops-api/internal/api/vendors/models"
)

// Các giá trị hợp lệ cho sortBy.
const (
	SortRelevance  = "relevance"  // Mặc định: khoảng cách (nếu geo) → views → mới nhất
	SortPriceLow   = "price_low"  // Giá tăng dần
	SortPriceHigh  = "price_high" // Giá giảm dần
	SortDistance   = "distance"   // Gần nhất trước (chỉ khi có geo, không thì rơi về newest)
	SortRating     = "rating"     // Rating vendor giảm dần
	SortNewest     = "newest"     // Mới nhất trước
	SortPopularity = "popularity" // Nhiều lượt xem trước
)

// Các giá trị hợp lệ cho searchType của unified search.
const (
	SearchTypeProducts = "products"
	SearchTypeShops    = "shops"
	SearchTypeAll      = "all"
)

// ProductSearchInput đầu vào tìm kiếm sản phẩm.
// Mọi field đều optional - input rỗng khớp "tất cả sản phẩm active+approved".
type ProductSearchInput struct {
	Query       string `json:"query" validate:"omitempty,no_xss"`
	Category    string `json:"category" validate:"omitempty,no_xss"`
	Subcategory string `json:"subcategory" validate:"omitempty,no_xss"`
	Brand       string `json:"brand" validate:"omitempty,no_xss"`

	MinPrice *float64 `json:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice *float64 `json:"maxPrice" validate:"omitempty,gte=0"`

	StateID  string `json:"stateId" validate:"omitempty,hexadecimal,len=24"`
	AreaID   string `json:"areaId" validate:"omitempty,hexadecimal,len=24"`
	MarketID string `json:"marketId" validate:"omitempty,hexadecimal,len=24"`

	InStock      *bool  `json:"inStock" validate:"omitempty"`
	VerifiedOnly bool   `json:"verifiedOnly"`
	Status       string `json:"status" validate:"omitempty,oneof=draft pending approved rejected out_of_stock discontinued"`
	ProductType  string `json:"productType" validate:"omitempty,oneof=sale lease rent service"`

	Longitude     *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	Latitude      *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	MaxDistanceKm float64  `json:"maxDistance" validate:"omitempty,gt=0"`

	SortBy string `json:"sortBy" validate:"omitempty,oneof=relevance price_low price_high distance rating newest popularity"`
	Page   int64  `json:"page" validate:"omitempty,gte=1"`
	Limit  int64  `json:"limit" validate:"omitempty,gte=1"`
}

// HasGeo cho biết input có đủ tọa độ để tìm theo khoảng cách không.
func (in *ProductSearchInput) HasGeo() bool {
	return in.Longitude != nil && in.Latitude != nil
}

// ShopSearchInput đầu vào tìm kiếm shop. Cùng shape với tìm sản phẩm,
// thêm vendorType/isOpen và lọc theo category của shop.
type ShopSearchInput struct {
	Query      string `json:"query" validate:"omitempty,no_xss"`
	Category   string `json:"category" validate:"omitempty,no_xss"`
	VendorType string `json:"vendorType" validate:"omitempty,oneof=shop market_stall online service"`

	StateID  string `json:"stateId" validate:"omitempty,hexadecimal,len=24"`
	AreaID   string `json:"areaId" validate:"omitempty,hexadecimal,len=24"`
	MarketID string `json:"marketId" validate:"omitempty,hexadecimal,len=24"`

	IsOpen       *bool `json:"isOpen" validate:"omitempty"`
	VerifiedOnly bool  `json:"verifiedOnly"`

	Longitude     *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	Latitude      *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	MaxDistanceKm float64  `json:"maxDistance" validate:"omitempty,gt=0"`

	SortBy string `json:"sortBy" validate:"omitempty,oneof=relevance price_low price_high distance rating newest popularity"`
	Page   int64  `json:"page" validate:"omitempty,gte=1"`
	Limit  int64  `json:"limit" validate:"omitempty,gte=1"`
}

// HasGeo cho biết input có đủ tọa độ để tìm theo khoảng cách không.
func (in *ShopSearchInput) HasGeo() bool {
	return in.Longitude != nil && in.Latitude != nil
}

// UnifiedSearchInput đầu vào cho unified search.
type UnifiedSearchInput struct {
	SearchType string `json:"searchType" validate:"omitempty,oneof=products shops all"`
	Product    ProductSearchInput
	Shop       ShopSearchInput
}

// ============================================================================
// VIEW KẾT QUẢ
// ============================================================================

// VendorSummary là snapshot vendor gắn kèm mỗi product hit.
type VendorSummary struct {
	ID             primitive.ObjectID           `json:"id" bson:"_id"`
	BusinessName   string                       `json:"businessName" bson:"businessName"`
	VendorType     string                       `json:"vendorType" bson:"vendorType"`
	Rating         float64                      `json:"rating" bson:"rating"`
	ReviewCount    int64                        `json:"reviewCount" bson:"reviewCount"`
	IsVerified     bool                         `json:"isVerified" bson:"isVerified"`
	IsFeatured     bool                         `json:"isFeatured" bson:"isFeatured"`
	IsOpen         bool                         `json:"isOpen" bson:"isOpen"`
	ShopAddress    string                       `json:"shopAddress,omitempty" bson:"shopAddress,omitempty"`
	ContactDetails vendormodels.ContactDetails  `json:"contactDetails" bson:"contactDetails"`
	OperatingHours []vendormodels.OperatingHour `json:"operatingHours,omitempty" bson:"operatingHours,omitempty"`
}

// ProductHit là một sản phẩm trong kết quả tìm kiếm, kèm vendor và tên địa bàn.
type ProductHit struct {
	productmodels.Product `bson:",inline"`
	DistanceKm            *float64      `json:"distanceKm,omitempty" bson:"distanceKm,omitempty"`
	Vendor                VendorSummary `json:"vendor" bson:"vendor"`
	StateName             string        `json:"stateName,omitempty" bson:"stateName,omitempty"`
	AreaName              string        `json:"areaName,omitempty" bson:"areaName,omitempty"`
	MarketName            string        `json:"marketName,omitempty" bson:"marketName,omitempty"`
}

// ProductPreview là bản rút gọn của product trong featuredProducts của shop.
type ProductPreview struct {
	ID       primitive.ObjectID `json:"id" bson:"_id"`
	Name     string             `json:"name" bson:"name"`
	Price    float64            `json:"price" bson:"price"`
	Currency string             `json:"currency" bson:"currency"`
	Category string             `json:"category" bson:"category"`
	InStock  bool               `json:"inStock" bson:"inStock"`
	Views    int64              `json:"views" bson:"views"`
	Images   []string           `json:"images,omitempty" bson:"images,omitempty"`
}

// ShopHit là một shop trong kết quả tìm kiếm, kèm preview top sản phẩm.
type ShopHit struct {
	vendormodels.Vendor `bson:",inline"`
	DistanceKm          *float64         `json:"distanceKm,omitempty" bson:"distanceKm,omitempty"`
	StateName           string           `json:"stateName,omitempty" bson:"stateName,omitempty"`
	AreaName            string           `json:"areaName,omitempty" bson:"areaName,omitempty"`
	MarketName          string           `json:"marketName,omitempty" bson:"marketName,omitempty"`
	FeaturedProducts    []ProductPreview `json:"featuredProducts" bson:"featuredProducts"`
}

// SearchPage là một trang kết quả: total đếm trên toàn bộ tập khớp,
// không phải trên trang hiện tại.
type SearchPage[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
}

// EmptyPage trả về trang rỗng well-typed (chính sách degrade khi pipeline lỗi).
func EmptyPage[T any](page, limit int64) SearchPage[T] {
	return SearchPage[T]{Items: []T{}, Total: 0, Page: page, Limit: limit}
}

// VendorOffer là chào giá của một vendor trong một nhóm so sánh.
type VendorOffer struct {
	ProductID      primitive.ObjectID           `json:"productId" bson:"productId"`
	VendorID       primitive.ObjectID           `json:"vendorId" bson:"vendorId"`
	VendorName     string                       `json:"vendorName" bson:"vendorName"`
	IsVerified     bool                         `json:"isVerified" bson:"isVerified"`
	Price          float64                      `json:"price" bson:"price"`
	InStock        bool                         `json:"inStock" bson:"inStock"`
	Quantity       int64                        `json:"quantity" bson:"quantity"`
	ContactDetails vendormodels.ContactDetails  `json:"contactDetails" bson:"contactDetails"`
	StateName      string                       `json:"stateName,omitempty" bson:"stateName,omitempty"`
	AreaName       string                       `json:"areaName,omitempty" bson:"areaName,omitempty"`
	MarketName     string                       `json:"marketName,omitempty" bson:"marketName,omitempty"`
	OperatingHours []vendormodels.OperatingHour `json:"operatingHours,omitempty" bson:"operatingHours,omitempty"`
}

// PriceRange chứa khoảng giá của một nhóm so sánh.
type PriceRange struct {
	Lowest  float64 `json:"lowest" bson:"lowest"`
	Highest float64 `json:"highest" bson:"highest"`
	Average float64 `json:"average" bson:"average"`
}

// ComparisonGroup gom các listing "cùng một sản phẩm" của nhiều vendor.
// Khóa gom: sku nếu có, không thì tên sản phẩm lowercase (heuristic có chủ đích,
// hai sản phẩm khác nhau trùng tên sẽ gộp chung - hạn chế đã biết).
type ComparisonGroup struct {
	GroupKey     string        `json:"groupKey" bson:"_id"`
	Name         string        `json:"name" bson:"name"`
	Category     string        `json:"category,omitempty" bson:"category,omitempty"`
	Brand        string        `json:"brand,omitempty" bson:"brand,omitempty"`
	Currency     string        `json:"currency" bson:"currency"`
	PriceRange   PriceRange    `json:"priceRange" bson:"priceRange"`
	TotalVendors int64         `json:"totalVendors" bson:"totalVendors"`
	Vendors      []VendorOffer `json:"vendors" bson:"vendors"`
}

// ComparisonResult là danh sách nhóm so sánh (tối đa 20, nhiều vendor nhất trước).
type ComparisonResult struct {
	Items []ComparisonGroup `json:"items"`
	Total int64             `json:"total"`
}

// FacetCount là một giá trị facet kèm số lượng kết quả khớp.
type FacetCount struct {
	Value interface{} `json:"value" bson:"_id"`
	Name  string      `json:"name,omitempty" bson:"name,omitempty"`
	Count int64       `json:"count" bson:"count"`
}

// FacetPriceRange là min/max giá trên toàn tập khớp.
type FacetPriceRange struct {
	MinPrice float64 `json:"minPrice" bson:"minPrice"`
	MaxPrice float64 `json:"maxPrice" bson:"maxPrice"`
}

// AvailableFilters là tập facet cho UI tìm kiếm.
// Location facet tính trên base filter KHÔNG gồm location đã chọn,
// để UI hiển thị được "các địa bàn khác cũng có kết quả".
type AvailableFilters struct {
	States     []FacetCount    `json:"states"`
	Areas      []FacetCount    `json:"areas"`
	Markets    []FacetCount    `json:"markets"`
	Categories []FacetCount    `json:"categories"`
	Brands     []FacetCount    `json:"brands"`
	PriceRange FacetPriceRange `json:"priceRange"`
}

// SearchMeta đi kèm mọi response của unified search.
type SearchMeta struct {
	Timestamp int64 `json:"timestamp"` // Unix ms lúc trả về
	TookMs    int64 `json:"tookMs"`    // Thời gian xử lý
}

// UnifiedSearchResult là response của unified search.
// Các nhánh không thuộc searchType yêu cầu sẽ là nil (omitempty).
type UnifiedSearchResult struct {
	Products          *SearchPage[ProductHit] `json:"products,omitempty"`
	Shops             *SearchPage[ShopHit]    `json:"shops,omitempty"`
	ProductComparison *ComparisonResult       `json:"productComparison,omitempty"`
	AvailableFilters  *AvailableFilters       `json:"availableFilters"`
	Meta              SearchMeta              `json:"meta"`
}

// ShopProductsResult là response của "sản phẩm của một shop".
type ShopProductsResult struct {
	Shop     vendormodels.Vendor              `json:"shop"`
	Products SearchPage[productmodels.Product] `json:"products"`
}
