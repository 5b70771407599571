// Package productdto - các DTO cho listing sản phẩm.
package productdto

// ProductCreateInput đầu vào tạo listing sản phẩm.
// VendorID và location không nhận từ client - vendor lấy theo user đang
// đăng nhập, location snapshot copy từ vendor.
type ProductCreateInput struct {
	Name          string   `json:"name" validate:"required,no_xss"`
	Description   string   `json:"description" validate:"omitempty,no_xss"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	OriginalPrice float64  `json:"originalPrice" validate:"omitempty,gt=0"`
	Category      string   `json:"category" validate:"required,no_xss"`
	Subcategory   string   `json:"subcategory" validate:"omitempty,no_xss"`
	Brand         string   `json:"brand" validate:"omitempty,no_xss"`
	Tags          []string `json:"tags" validate:"omitempty,dive,no_xss"`
	SKU           string   `json:"sku" validate:"omitempty,no_xss"`
	Barcode       string   `json:"barcode" validate:"omitempty,no_xss"`
	Images        []string `json:"images" validate:"omitempty,dive,url"`
	Quantity      int64    `json:"quantity" validate:"omitempty,gte=0"`
	ProductType   string   `json:"productType" validate:"omitempty,oneof=sale lease rent service"`
}

// ProductUpdateInput đầu vào cập nhật listing sản phẩm.
// Status không sửa qua đây - chuyển trạng thái đi qua API riêng có kiểm tra vòng đời.
type ProductUpdateInput struct {
	Name          string   `json:"name" validate:"omitempty,no_xss"`
	Description   string   `json:"description" validate:"omitempty,no_xss"`
	Price         float64  `json:"price" validate:"omitempty,gt=0"`
	OriginalPrice float64  `json:"originalPrice" validate:"omitempty,gt=0"`
	Category      string   `json:"category" validate:"omitempty,no_xss"`
	Subcategory   string   `json:"subcategory" validate:"omitempty,no_xss"`
	Brand         string   `json:"brand" validate:"omitempty,no_xss"`
	Tags          []string `json:"tags" validate:"omitempty,dive,no_xss"`
	Images        []string `json:"images" validate:"omitempty,dive,url"`
	Quantity      *int64   `json:"quantity" validate:"omitempty,gte=0"`
	InStock       *bool    `json:"inStock" validate:"omitempty"`
	ProductType   string   `json:"productType" validate:"omitempty,oneof=sale lease rent service"`
}

// ProductStatusInput đầu vào chuyển trạng thái sản phẩm.
type ProductStatusInput struct {
	Status string `json:"status" validate:"required,oneof=draft pending approved rejected out_of_stock discontinued"`
}
