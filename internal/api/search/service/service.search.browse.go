package searchsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	productmodels "github.com/MHYAnate/sureshops-api/internal/api/product/models"
	searchdto "github.com/MHYAnate/sureshops-api/internal/api/search/dto"
	"github.com/MHYAnate/sureshops-api/internal/common"
)

// GetShopProducts trả về header shop kèm trang sản phẩm của shop đó,
// mới nhất trước. Shop không tồn tại hoặc ngừng hoạt động thì 404/410.
func (s *SearchService) GetShopProducts(ctx context.Context, vendorID primitive.ObjectID, in *searchdto.ProductSearchInput) (*searchdto.ShopProductsResult, error) {
	shop, err := s.vendorService.GetPublicById(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	page, limit := normalizePaging(in.Page, in.Limit, s.maxLimit)

	filter := bson.M{
		"vendorId": vendorID,
		"isActive": true,
		"status":   productmodels.StatusApproved,
	}
	if in.Category != "" {
		filter["category"] = ciEquals(in.Category)
	}
	if in.MinPrice != nil || in.MaxPrice != nil {
		price := bson.M{}
		if in.MinPrice != nil {
			price["$gte"] = *in.MinPrice
		}
		if in.MaxPrice != nil {
			price["$lte"] = *in.MaxPrice
		}
		filter["price"] = price
	}

	total, err := s.productCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)
	cursor, err := s.productCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var items []productmodels.Product
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if items == nil {
		items = []productmodels.Product{}
	}

	return &searchdto.ShopProductsResult{
		Shop: shop,
		Products: searchdto.SearchPage[productmodels.Product]{
			Items: items,
			Total: total,
			Page:  page,
			Limit: limit,
		},
	}, nil
}

// GetSimilarProducts lấy ngẫu nhiên các sản phẩm cùng category với sản phẩm
// gốc (loại trừ chính nó). Dùng $sample nên hai lần gọi có thể khác nhau.
func (s *SearchService) GetSimilarProducts(ctx context.Context, productID primitive.ObjectID, limit int64) ([]searchdto.ProductHit, error) {
	if limit < 1 {
		limit = 10
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	var origin productmodels.Product
	err := s.productCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&origin)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	match := bson.M{
		"_id":      bson.M{"$ne": productID},
		"isActive": true,
		"status":   productmodels.StatusApproved,
	}
	if origin.Category != "" {
		match["category"] = origin.Category
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$sample": bson.M{"size": limit}},
	}
	pipeline = append(pipeline, vendorJoinStages(false)...)
	pipeline = append(pipeline, buildLocationNameStages()...)

	cursor, err := s.productCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var hits []searchdto.ProductHit
	if err := cursor.All(ctx, &hits); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if hits == nil {
		hits = []searchdto.ProductHit{}
	}
	return hits, nil
}
