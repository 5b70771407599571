// Package favoritesvc - service cho danh sách yêu thích.
package favoritesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "github.com/MHYAnate/sureshops-api/internal/api/base/service"
	favoritedto "github.com/MHYAnate/sureshops-api/internal/api/favorite/dto"
	models "github.com/MHYAnate/sureshops-api/internal/api/favorite/models"
	"github.com/MHYAnate/sureshops-api/internal/common"
	"github.com/MHYAnate/sureshops-api/internal/global"
)

// FavoriteService là cấu trúc chứa các phương thức liên quan đến yêu thích
type FavoriteService struct {
	*basesvc.BaseServiceMongoImpl[models.Favorite]
	productCollection *mongo.Collection
}

// NewFavoriteService tạo mới FavoriteService
func NewFavoriteService() (*FavoriteService, error) {
	favoriteCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Favorites)
	if !exist {
		return nil, fmt.Errorf("failed to get favorites collection: %v", common.ErrNotFound)
	}
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}

	return &FavoriteService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Favorite](favoriteCollection),
		productCollection:    productCollection,
	}, nil
}

// AddFavorite thêm sản phẩm vào danh sách yêu thích của user.
// Sản phẩm phải còn active, mỗi sản phẩm chỉ lưu một lần.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID, productID primitive.ObjectID) (models.Favorite, error) {
	count, err := s.productCollection.CountDocuments(ctx, bson.M{"_id": productID, "isActive": true})
	if err != nil {
		return models.Favorite{}, common.ConvertMongoError(err)
	}
	if count == 0 {
		return models.Favorite{}, common.ErrNotFound
	}

	exists, err := s.DocumentExists(ctx, bson.M{"userId": userID, "productId": productID})
	if err != nil {
		return models.Favorite{}, err
	}
	if exists {
		return models.Favorite{}, common.ErrAlreadyFavorited
	}

	return s.InsertOne(ctx, models.Favorite{UserID: userID, ProductID: productID})
}

// RemoveFavorite bỏ sản phẩm khỏi danh sách yêu thích của user.
func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID, productID primitive.ObjectID) error {
	return s.DeleteOne(ctx, bson.M{"userId": userID, "productId": productID})
}

// IsFavorited kiểm tra user đã lưu sản phẩm này chưa.
func (s *FavoriteService) IsFavorited(ctx context.Context, userID, productID primitive.ObjectID) (bool, error) {
	return s.DocumentExists(ctx, bson.M{"userId": userID, "productId": productID})
}

// ListOwn trả về danh sách yêu thích của user, mới lưu trước, kèm sản phẩm
// và tên shop. Sản phẩm đã bị gỡ (hard delete) tự rớt khỏi danh sách qua
// $unwind không preserve.
func (s *FavoriteService) ListOwn(ctx context.Context, userID primitive.ObjectID, page, limit int64) (*favoritedto.FavoriteListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	match := bson.M{"userId": userID}
	total, err := s.CountDocuments(ctx, match)
	if err != nil {
		return nil, err
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$sort": bson.D{{Key: "createdAt", Value: -1}}},
		{"$skip": (page - 1) * limit},
		{"$limit": limit},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Products,
			"localField":   "productId",
			"foreignField": "_id",
			"as":           "product",
		}},
		{"$unwind": "$product"},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Vendors,
			"localField":   "product.vendorId",
			"foreignField": "_id",
			"as":           "_vendor",
		}},
		{"$unwind": bson.M{"path": "$_vendor", "preserveNullAndEmptyArrays": true}},
		{"$addFields": bson.M{"vendorName": "$_vendor.businessName"}},
		{"$project": bson.M{"_vendor": 0}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var items []favoritedto.FavoriteItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if items == nil {
		items = []favoritedto.FavoriteItem{}
	}

	return &favoritedto.FavoriteListResult{
		Page:      page,
		Limit:     limit,
		ItemCount: total,
		Items:     items,
	}, nil
}
