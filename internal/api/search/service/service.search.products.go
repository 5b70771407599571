package searchsvc

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	searchdto "github.com/MHYAnate/sureshops-api/internal/api/search/dto"
	"github.com/MHYAnate/sureshops-api/internal/global"
)

// BuildProductBaseStages dựng phần đầu pipeline tìm sản phẩm: định vị
// (geoNear hoặc match), join vendor và lọc vendor còn hoạt động.
// Phần này dùng chung cho cả trang kết quả lẫn pipeline đếm tổng.
func BuildProductBaseStages(spec ProductMatchSpec, in *searchdto.ProductSearchInput, radiusKm float64) []bson.M {
	match := BuildProductMatch(spec)

	var stages []bson.M
	if in.HasGeo() {
		stages = append(stages, BuildGeoNearStage(*in.Longitude, *in.Latitude, radiusKm, match))
	} else {
		stages = append(stages, bson.M{"$match": match})
	}

	// Join vendor: sản phẩm của vendor ngừng hoạt động bị loại khỏi kết quả
	// dù bản thân listing vẫn isActive (chính sách soft-orphan).
	stages = append(stages,
		bson.M{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Vendors,
			"localField":   "vendorId",
			"foreignField": "_id",
			"as":           "vendor",
		}},
		bson.M{"$unwind": "$vendor"},
	)

	vendorMatch := bson.M{"vendor.isActive": bson.M{"$ne": false}}
	if in.VerifiedOnly {
		vendorMatch["vendor.isVerified"] = true
	}
	stages = append(stages, bson.M{"$match": vendorMatch})

	return stages
}

// buildLocationNameStages join tên state/area/market cho trang kết quả.
// preserveNullAndEmptyArrays để listing thiếu market không bị rớt.
func buildLocationNameStages() []bson.M {
	lookups := []struct {
		from  string
		local string
		as    string
	}{
		{global.MongoDB_ColNames.States, "stateId", "_state"},
		{global.MongoDB_ColNames.Areas, "areaId", "_area"},
		{global.MongoDB_ColNames.Markets, "marketId", "_market"},
	}

	var stages []bson.M
	for _, lk := range lookups {
		stages = append(stages,
			bson.M{"$lookup": bson.M{
				"from":         lk.from,
				"localField":   lk.local,
				"foreignField": "_id",
				"as":           lk.as,
			}},
			bson.M{"$unwind": bson.M{
				"path":                       "$" + lk.as,
				"preserveNullAndEmptyArrays": true,
			}},
		)
	}
	stages = append(stages, bson.M{"$addFields": bson.M{
		"stateName":  "$_state.name",
		"areaName":   "$_area.name",
		"marketName": "$_market.name",
	}})
	stages = append(stages, bson.M{"$project": bson.M{"_state": 0, "_area": 0, "_market": 0}})
	return stages
}

// SearchProducts chạy tìm kiếm sản phẩm phân trang. Total được đếm song song
// trên toàn tập khớp. Pipeline lỗi thì degrade về trang rỗng sau khi log,
// không fail request.
func (s *SearchService) SearchProducts(ctx context.Context, in *searchdto.ProductSearchInput) (searchdto.SearchPage[searchdto.ProductHit], error) {
	page, limit := normalizePaging(in.Page, in.Limit, s.maxLimit)
	radiusKm := in.MaxDistanceKm
	if radiusKm <= 0 {
		radiusKm = s.defaultRadiusKm
	}

	spec := ProductSpecFromInput(in)
	baseStages := BuildProductBaseStages(spec, in, radiusKm)

	// Đếm tổng song song với trang kết quả.
	totalCh := make(chan int64, 1)
	go func() {
		countPipeline := append(append([]bson.M{}, baseStages...), bson.M{"$count": "total"})
		totalCh <- s.runCount(ctx, countPipeline)
	}()

	pipeline := append([]bson.M{}, baseStages...)
	if in.HasGeo() {
		pipeline = append(pipeline, bson.M{"$addFields": bson.M{
			"distanceKm": bson.M{"$round": bson.A{bson.M{"$divide": bson.A{"$distance", 1000}}, 2}},
		}})
	}
	pipeline = append(pipeline, buildLocationNameStages()...)
	pipeline = append(pipeline,
		BuildProductSortStage(in.SortBy, in.HasGeo()),
		bson.M{"$skip": (page - 1) * limit},
		bson.M{"$limit": limit},
	)

	cursor, err := s.productCollection.Aggregate(ctx, pipeline)
	if err != nil {
		logrus.WithError(err).Error("Pipeline tìm sản phẩm thất bại")
		return searchdto.EmptyPage[searchdto.ProductHit](page, limit), nil
	}
	defer cursor.Close(ctx)

	var hits []searchdto.ProductHit
	if err := cursor.All(ctx, &hits); err != nil {
		logrus.WithError(err).Error("Decode kết quả tìm sản phẩm thất bại")
		return searchdto.EmptyPage[searchdto.ProductHit](page, limit), nil
	}
	if hits == nil {
		hits = []searchdto.ProductHit{}
	}

	s.recordProductAppearances(hits)

	return searchdto.SearchPage[searchdto.ProductHit]{
		Items: hits,
		Total: <-totalCh,
		Page:  page,
		Limit: limit,
	}, nil
}

// runCount chạy pipeline $count trên products, lỗi thì trả 0.
func (s *SearchService) runCount(ctx context.Context, pipeline []bson.M) int64 {
	cursor, err := s.productCollection.Aggregate(ctx, pipeline)
	if err != nil {
		logrus.WithError(err).Warn("Đếm tổng kết quả thất bại")
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

// recordProductAppearances tăng searchAppearances cho các sản phẩm vừa xuất
// hiện trên trang kết quả. Best-effort, chạy nền, lỗi chỉ log.
func (s *SearchService) recordProductAppearances(hits []searchdto.ProductHit) {
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
		_, err := s.productCollection.UpdateMany(bgCtx,
			bson.M{"_id": bson.M{"$in": ids}},
			bson.M{"$inc": bson.M{"searchAppearances": 1}},
		)
		if err != nil {
			logrus.WithError(err).Warn("Không tăng được searchAppearances cho sản phẩm")
		}
	}()
}
