// Package models - model catalog chuẩn (CatalogItem) dùng để liên kết
// listing của nhiều vendor về cùng một sản phẩm gốc.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogItem định nghĩa một sản phẩm chuẩn trong catalog.
// LowestPrice/HighestPrice/AveragePrice/TotalListings là aggregate
// được tính lại từ các product active+approved có liên kết tới item này.
type CatalogItem struct {
	_Relationships struct{}           `relationship:"collection:products,field:catalogItemId,message:Không thể xóa catalog item vì có %d sản phẩm đang liên kết tới."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" index:"single:1"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	SKU            string             `json:"sku,omitempty" bson:"sku,omitempty" index:"unique,sparse"`
	Barcode        string             `json:"barcode,omitempty" bson:"barcode,omitempty" index:"unique,sparse"`
	Brand          string             `json:"brand,omitempty" bson:"brand,omitempty" index:"single:1"`
	Category       string             `json:"category" bson:"category" index:"single:1"`
	Subcategory    string             `json:"subcategory,omitempty" bson:"subcategory,omitempty"`
	ImageURL       string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	LowestPrice    float64            `json:"lowestPrice" bson:"lowestPrice"`
	HighestPrice   float64            `json:"highestPrice" bson:"highestPrice"`
	AveragePrice   float64            `json:"averagePrice" bson:"averagePrice"`
	TotalListings  int64              `json:"totalListings" bson:"totalListings"`
	IsActive       bool               `json:"isActive" bson:"isActive" default:"true"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// CatalogItemPaginateResult đại diện cho kết quả phân trang CatalogItem
type CatalogItemPaginateResult struct {
	Page      int64         `json:"page" bson:"page"`
	Limit     int64         `json:"limit" bson:"limit"`
	ItemCount int64         `json:"itemCount" bson:"itemCount"`
	Items     []CatalogItem `json:"items" bson:"items"`
}
