// Package database - Index bổ sung cho marketplace (compound phức tạp, unique sparse theo cặp)
// không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"github.com/MHYAnate/sureshops-api/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateMarketplaceAdditionalIndexes tạo các index bổ sung cho search và review.
// Gọi sau CreateIndexes cho từng collection.
func CreateMarketplaceAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// products: (status, stateId, price) — match + sort chính của product search
	products := db.Collection(global.MongoDB_ColNames.Products)
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "stateId", Value: 1},
			{Key: "price", Value: 1},
		},
		Options: options.Index().SetName("product_status_state_price"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// products: (category, status) — facet categories + similar products
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "category", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("product_category_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// products: (vendorId, status) — getShopProducts và recompute price range
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "vendorId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("product_vendor_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// vendors: (isActive, isVerified, rating desc) — shop search default sort
	vendors := db.Collection(global.MongoDB_ColNames.Vendors)
	if _, err := vendors.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "isActive", Value: 1},
			{Key: "isVerified", Value: 1},
			{Key: "rating", Value: -1},
		},
		Options: options.Index().SetName("vendor_active_verified_rating"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// reviews: (productId, userId) unique sparse — mỗi user chỉ đánh giá một sản phẩm một lần
	reviews := db.Collection(global.MongoDB_ColNames.Reviews)
	if _, err := reviews.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "productId", Value: 1},
			{Key: "userId", Value: 1},
		},
		Options: options.Index().SetName("review_product_user_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// reviews: (vendorId, userId) unique sparse — mỗi user chỉ đánh giá một shop một lần
	if _, err := reviews.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "vendorId", Value: 1},
			{Key: "userId", Value: 1},
		},
		Options: options.Index().SetName("review_vendor_user_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// favorites: (userId, productId) unique — không cho favorite trùng
	favorites := db.Collection(global.MongoDB_ColNames.Favorites)
	if _, err := favorites.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "productId", Value: 1},
		},
		Options: options.Index().SetName("favorite_user_product_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
