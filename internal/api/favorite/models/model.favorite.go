// Package models - model cho danh sách yêu thích.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Favorite đánh dấu một sản phẩm được user lưu lại.
// Compound unique (userId, productId) chặn lưu trùng.
type Favorite struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId" index:"compound:favorite_user_product_unique,order:1"`
	ProductID primitive.ObjectID `json:"productId" bson:"productId" index:"single:1;compound:favorite_user_product_unique,order:1"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1,order:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// FavoritePaginateResult đại diện cho kết quả phân trang Favorite
type FavoritePaginateResult struct {
	Page      int64      `json:"page" bson:"page"`
	Limit     int64      `json:"limit" bson:"limit"`
	ItemCount int64      `json:"itemCount" bson:"itemCount"`
	Items     []Favorite `json:"items" bson:"items"`
}
