// Package favoritedto - DTO cho danh sách yêu thích.
package favoritedto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	productmodels "github.com/MHYAnate/sureshops-api/internal/api/product/models"
)

// FavoriteAddInput đầu vào thêm sản phẩm vào danh sách yêu thích.
type FavoriteAddInput struct {
	ProductID string `json:"productId" validate:"required,hexadecimal,len=24" transform:"str_objectid"`
}

// FavoriteItem là một mục trong danh sách yêu thích kèm sản phẩm và tên shop.
type FavoriteItem struct {
	ID         primitive.ObjectID    `json:"id" bson:"_id"`
	CreatedAt  int64                 `json:"createdAt" bson:"createdAt"`
	Product    productmodels.Product `json:"product" bson:"product"`
	VendorName string                `json:"vendorName,omitempty" bson:"vendorName,omitempty"`
}

// FavoriteListResult là trang danh sách yêu thích của một user.
type FavoriteListResult struct {
	Page      int64          `json:"page" bson:"page"`
	Limit     int64          `json:"limit" bson:"limit"`
	ItemCount int64          `json:"itemCount" bson:"itemCount"`
	Items     []FavoriteItem `json:"items" bson:"items"`
}
