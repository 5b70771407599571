// Package models - model cho đánh giá sản phẩm và shop.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Loại đối tượng được đánh giá.
const (
	ReviewTypeProduct = "product"
	ReviewTypeVendor  = "vendor"
)

// Review là một đánh giá của người dùng cho sản phẩm hoặc shop.
// Đánh giá sản phẩm cũng snapshot vendorId của listing để tính rating shop
// gộp cả hai loại. Compound unique (reviewType, productId, vendorId, userId)
// chặn mỗi user đánh giá một đối tượng quá một lần.
type Review struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ReviewType string             `json:"reviewType" bson:"reviewType" default:"product" index:"compound:review_target_user_unique,order:1"`
	ProductID  primitive.ObjectID `json:"productId,omitempty" bson:"productId,omitempty" index:"single:1;compound:review_target_user_unique,order:1"`
	VendorID   primitive.ObjectID `json:"vendorId,omitempty" bson:"vendorId,omitempty" index:"single:1;compound:review_target_user_unique,order:1"`
	UserID     primitive.ObjectID `json:"userId" bson:"userId" index:"compound:review_target_user_unique,order:1"`

	UserName string `json:"userName,omitempty" bson:"userName,omitempty"` // Snapshot tên người đánh giá lúc tạo
	Rating   int64  `json:"rating" bson:"rating"`                         // 1..5
	Comment  string `json:"comment,omitempty" bson:"comment,omitempty"`

	HelpfulCount int64 `json:"helpfulCount" bson:"helpfulCount"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1,order:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// ReviewPaginateResult đại diện cho kết quả phân trang Review
type ReviewPaginateResult struct {
	Page      int64    `json:"page" bson:"page"`
	Limit     int64    `json:"limit" bson:"limit"`
	ItemCount int64    `json:"itemCount" bson:"itemCount"`
	Items     []Review `json:"items" bson:"items"`
}
