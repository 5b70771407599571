package searchsvc

import (
	"context"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	productmodels "github.com/MHYAnate/sureshops-api/internal/api/product/models"
	searchdto "github.com/MHYAnate/sureshops-api/internal/api/search/dto"
	"github.com/MHYAnate/sureshops-api/internal/global"
)

// ShopMatchSpec là filter shop đã chuẩn hóa.
type ShopMatchSpec struct {
	Query      string
	Category   string
	VendorType string

	StateID  primitive.ObjectID
	AreaID   primitive.ObjectID
	MarketID primitive.ObjectID

	IsOpen       *bool
	VerifiedOnly bool
}

// ShopSpecFromInput chuẩn hóa DTO tìm shop thành spec.
func ShopSpecFromInput(in *searchdto.ShopSearchInput) ShopMatchSpec {
	spec := ShopMatchSpec{
		Query:        in.Query,
		Category:     in.Category,
		VendorType:   in.VendorType,
		IsOpen:       in.IsOpen,
		VerifiedOnly: in.VerifiedOnly,
	}
	if id, err := primitive.ObjectIDFromHex(in.StateID); err == nil {
		spec.StateID = id
	}
	if id, err := primitive.ObjectIDFromHex(in.AreaID); err == nil {
		spec.AreaID = id
	}
	if id, err := primitive.ObjectIDFromHex(in.MarketID); err == nil {
		spec.MarketID = id
	}
	return spec
}

// BuildShopMatch dịch spec thành filter cho collection vendors.
// Text search phủ businessName/description/categories/tags.
func BuildShopMatch(spec ShopMatchSpec) bson.M {
	match := bson.M{"isActive": true}

	if spec.Query != "" {
		pattern := regexp.QuoteMeta(spec.Query)
		regex := bson.M{"$regex": pattern, "$options": "i"}
		match["$or"] = []bson.M{
			{"businessName": regex},
			{"description": regex},
			{"categories": regex},
			{"tags": regex},
		}
	}

	if spec.Category != "" {
		match["categories"] = ciEquals(spec.Category)
	}
	if spec.VendorType != "" {
		match["vendorType"] = spec.VendorType
	}

	if !spec.MarketID.IsZero() {
		match["marketId"] = spec.MarketID
	} else if !spec.AreaID.IsZero() {
		match["areaId"] = spec.AreaID
	} else if !spec.StateID.IsZero() {
		match["stateId"] = spec.StateID
	}

	if spec.IsOpen != nil {
		match["isOpen"] = *spec.IsOpen
	}
	if spec.VerifiedOnly {
		match["isVerified"] = true
	}

	return match
}

// BuildShopSortStage dịch sortBy cho shop. Mặc định: featured trước,
// verified trước, rồi rating giảm dần.
func BuildShopSortStage(sortBy string, hasGeo bool) bson.M {
	switch sortBy {
	case searchdto.SortDistance:
		if hasGeo {
			return bson.M{"$sort": bson.D{{Key: "distance", Value: 1}}}
		}
		return bson.M{"$sort": bson.D{{Key: "rating", Value: -1}}}
	case searchdto.SortRating:
		return bson.M{"$sort": bson.D{{Key: "rating", Value: -1}, {Key: "reviewCount", Value: -1}}}
	case searchdto.SortNewest:
		return bson.M{"$sort": bson.D{{Key: "createdAt", Value: -1}}}
	case searchdto.SortPopularity:
		return bson.M{"$sort": bson.D{{Key: "totalViews", Value: -1}, {Key: "rating", Value: -1}}}
	default:
		if hasGeo {
			return bson.M{"$sort": bson.D{
				{Key: "distance", Value: 1},
				{Key: "isFeatured", Value: -1},
				{Key: "rating", Value: -1},
			}}
		}
		return bson.M{"$sort": bson.D{
			{Key: "isFeatured", Value: -1},
			{Key: "isVerified", Value: -1},
			{Key: "rating", Value: -1},
		}}
	}
}

// buildFeaturedProductsLookup sub-lookup top sản phẩm nhiều lượt xem nhất
// của mỗi shop làm preview trên kết quả tìm kiếm.
func buildFeaturedProductsLookup(topN int64) bson.M {
	return bson.M{"$lookup": bson.M{
		"from": global.MongoDB_ColNames.Products,
		"let":  bson.M{"vendorId": "$_id"},
		"pipeline": []bson.M{
			{"$match": bson.M{"$expr": bson.M{"$eq": bson.A{"$vendorId", "$$vendorId"}},
				"isActive": true,
				"status":   productmodels.StatusApproved,
			}},
			{"$sort": bson.D{{Key: "views", Value: -1}, {Key: "createdAt", Value: -1}}},
			{"$limit": topN},
			{"$project": bson.M{
				"name": 1, "price": 1, "currency": 1, "category": 1,
				"inStock": 1, "views": 1, "images": 1,
			}},
		},
		"as": "featuredProducts",
	}}
}

// SearchShops chạy tìm kiếm shop phân trang, kèm top-4 sản phẩm preview.
// Cùng chính sách degrade như SearchProducts.
func (s *SearchService) SearchShops(ctx context.Context, in *searchdto.ShopSearchInput) (searchdto.SearchPage[searchdto.ShopHit], error) {
	page, limit := normalizePaging(in.Page, in.Limit, s.maxLimit)
	radiusKm := in.MaxDistanceKm
	if radiusKm <= 0 {
		radiusKm = s.defaultRadiusKm
	}

	match := BuildShopMatch(ShopSpecFromInput(in))

	var baseStages []bson.M
	if in.HasGeo() {
		baseStages = append(baseStages, BuildGeoNearStage(*in.Longitude, *in.Latitude, radiusKm, match))
	} else {
		baseStages = append(baseStages, bson.M{"$match": match})
	}

	totalCh := make(chan int64, 1)
	go func() {
		countPipeline := append(append([]bson.M{}, baseStages...), bson.M{"$count": "total"})
		totalCh <- s.runShopCount(ctx, countPipeline)
	}()

	pipeline := append([]bson.M{}, baseStages...)
	if in.HasGeo() {
		pipeline = append(pipeline, bson.M{"$addFields": bson.M{
			"distanceKm": bson.M{"$round": bson.A{bson.M{"$divide": bson.A{"$distance", 1000}}, 2}},
		}})
	}
	pipeline = append(pipeline, buildLocationNameStages()...)
	pipeline = append(pipeline,
		BuildShopSortStage(in.SortBy, in.HasGeo()),
		bson.M{"$skip": (page - 1) * limit},
		bson.M{"$limit": limit},
		buildFeaturedProductsLookup(4),
	)

	cursor, err := s.vendorCollection.Aggregate(ctx, pipeline)
	if err != nil {
		logrus.WithError(err).Error("Pipeline tìm shop thất bại")
		return searchdto.EmptyPage[searchdto.ShopHit](page, limit), nil
	}
	defer cursor.Close(ctx)

	var hits []searchdto.ShopHit
	if err := cursor.All(ctx, &hits); err != nil {
		logrus.WithError(err).Error("Decode kết quả tìm shop thất bại")
		return searchdto.EmptyPage[searchdto.ShopHit](page, limit), nil
	}
	if hits == nil {
		hits = []searchdto.ShopHit{}
	}

	s.recordShopAppearances(hits)

	return searchdto.SearchPage[searchdto.ShopHit]{
		Items: hits,
		Total: <-totalCh,
		Page:  page,
		Limit: limit,
	}, nil
}

// runShopCount chạy pipeline $count trên vendors, lỗi thì trả 0.
func (s *SearchService) runShopCount(ctx context.Context, pipeline []bson.M) int64 {
	cursor, err := s.vendorCollection.Aggregate(ctx, pipeline)
	if err != nil {
		logrus.WithError(err).Warn("Đếm tổng shop thất bại")
		return 0
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil || len(rows) == 0 {
		return 0
	}
	return rows[0].Total
}

// recordShopAppearances tăng searchAppearances cho các shop trên trang kết quả.
func (s *SearchService) recordShopAppearances(hits []searchdto.ShopHit) {
	if len(hits) == 0 {
		return
	}
	ids := make([]primitive.ObjectID, 0, len(hits))
	for _, hit := range hits {
		ids = append(ids, hit.ID)
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, err := s.vendorCollection.UpdateMany(bgCtx,
			bson.M{"_id": bson.M{"$in": ids}},
			bson.M{"$inc": bson.M{"searchAppearances": 1}},
		)
		if err != nil {
			logrus.WithError(err).Warn("Không tăng được searchAppearances cho shop")
		}
	}()
}
