// Package reviewdto - DTO cho đánh giá.
package reviewdto

// ReviewCreateInput đầu vào tạo đánh giá. Tùy reviewType mà productId
// hoặc vendorId là bắt buộc (service kiểm tra).
type ReviewCreateInput struct {
	ReviewType string `json:"reviewType" validate:"required,oneof=product vendor"`
	ProductID  string `json:"productId" validate:"omitempty,hexadecimal,len=24" transform:"str_objectid,optional"`
	VendorID   string `json:"vendorId" validate:"omitempty,hexadecimal,len=24" transform:"str_objectid,optional"`
	Rating     int64  `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"omitempty,max=2000,no_xss"`
}

// ReviewUpdateInput đầu vào sửa đánh giá của chính mình.
type ReviewUpdateInput struct {
	Rating  int64  `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=2000,no_xss"`
}
