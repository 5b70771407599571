// Package catalogdto - các DTO cho catalog chuẩn.
package catalogdto

// CatalogItemCreateInput đầu vào tạo catalog item.
type CatalogItemCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss"`
	Description string `json:"description" validate:"omitempty,no_xss"`
	SKU         string `json:"sku" validate:"omitempty,no_xss"`
	Barcode     string `json:"barcode" validate:"omitempty,no_xss"`
	Brand       string `json:"brand" validate:"omitempty,no_xss"`
	Category    string `json:"category" validate:"required,no_xss"`
	Subcategory string `json:"subcategory" validate:"omitempty,no_xss"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
}

// CatalogItemUpdateInput đầu vào cập nhật catalog item.
// Không cho sửa sku/barcode qua update thường - định danh catalog là bất biến
// sau khi đã có product liên kết.
type CatalogItemUpdateInput struct {
	Name        string `json:"name" validate:"omitempty,no_xss"`
	Description string `json:"description" validate:"omitempty,no_xss"`
	Brand       string `json:"brand" validate:"omitempty,no_xss"`
	Category    string `json:"category" validate:"omitempty,no_xss"`
	Subcategory string `json:"subcategory" validate:"omitempty,no_xss"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
}
