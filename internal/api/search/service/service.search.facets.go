package searchsvc

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	searchdto "github.com/MHYAnate/sureshops-api/internal/api/search/dto"
	"github.com/MHYAnate/sureshops-api/internal/common"
	"github.com/MHYAnate/sureshops-api/internal/global"
)

// maxFacetValues giới hạn số giá trị mỗi facet.
const maxFacetValues = 20

// BuildFacetBaseMatch dựng filter nền cho facet: CHỈ gồm text và category.
// Location và giá đã chọn bị loại có chủ đích - facet phải cho người dùng
// thấy các lựa chọn khác ngoài cái họ đang chọn.
func BuildFacetBaseMatch(in *searchdto.ProductSearchInput) bson.M {
	spec := ProductMatchSpec{
		Query:    in.Query,
		Category: in.Category,
	}
	return BuildProductMatch(spec)
}

// buildGroupFacetPipeline gom theo một field, đếm, lấy top N.
func buildGroupFacetPipeline(baseMatch bson.M, field string, extraMatch bson.M) []bson.M {
	match := bson.M{}
	for k, v := range baseMatch {
		match[k] = v
	}
	for k, v := range extraMatch {
		match[k] = v
	}
	// Document thiếu field đang gom không tạo thành facet value.
	match[field] = bson.M{"$nin": bson.A{nil, ""}}

	return []bson.M{
		{"$match": match},
		{"$group": bson.M{"_id": "$" + field, "count": bson.M{"$sum": 1}}},
		{"$sort": bson.D{{Key: "count", Value: -1}}},
		{"$limit": maxFacetValues},
	}
}

// buildNamedFacetPipeline như buildGroupFacetPipeline nhưng join thêm tên
// từ collection tham chiếu (states/areas/markets).
func buildNamedFacetPipeline(baseMatch bson.M, field, refCollection string, extraMatch bson.M) []bson.M {
	pipeline := buildGroupFacetPipeline(baseMatch, field, extraMatch)
	return append(pipeline,
		bson.M{"$lookup": bson.M{
			"from":         refCollection,
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "_ref",
		}},
		bson.M{"$unwind": bson.M{"path": "$_ref", "preserveNullAndEmptyArrays": true}},
		bson.M{"$addFields": bson.M{"name": "$_ref.name"}},
		bson.M{"$project": bson.M{"_ref": 0}},
	)
}

// GetAvailableFilters tính 6 facet song song: states, areas, markets,
// categories, brands và khoảng giá. Một facet lỗi thì cả request lỗi.
func (s *SearchService) GetAvailableFilters(ctx context.Context, in *searchdto.ProductSearchInput) (*searchdto.AvailableFilters, error) {
	baseMatch := BuildFacetBaseMatch(in)

	// Facet cấp dưới thu hẹp theo cấp trên đã chọn: chọn state thì areas
	// chỉ liệt kê area trong state đó.
	areaNarrow := bson.M{}
	marketNarrow := bson.M{}
	if stateID, err := primitive.ObjectIDFromHex(in.StateID); err == nil {
		areaNarrow["stateId"] = stateID
		marketNarrow["stateId"] = stateID
	}
	if areaID, err := primitive.ObjectIDFromHex(in.AreaID); err == nil {
		marketNarrow["areaId"] = areaID
	}

	filters := &searchdto.AvailableFilters{
		States:     []searchdto.FacetCount{},
		Areas:      []searchdto.FacetCount{},
		Markets:    []searchdto.FacetCount{},
		Categories: []searchdto.FacetCount{},
		Brands:     []searchdto.FacetCount{},
	}

	var wg sync.WaitGroup
	errCh := make(chan error, 6)

	runFacet := func(pipeline []bson.M, dest *[]searchdto.FacetCount) {
		defer wg.Done()
		rows, err := s.runFacetPipeline(ctx, pipeline)
		if err != nil {
			errCh <- err
			return
		}
		*dest = rows
	}

	wg.Add(6)
	go runFacet(buildNamedFacetPipeline(baseMatch, "stateId", global.MongoDB_ColNames.States, nil), &filters.States)
	go runFacet(buildNamedFacetPipeline(baseMatch, "areaId", global.MongoDB_ColNames.Areas, areaNarrow), &filters.Areas)
	go runFacet(buildNamedFacetPipeline(baseMatch, "marketId", global.MongoDB_ColNames.Markets, marketNarrow), &filters.Markets)
	go runFacet(buildGroupFacetPipeline(baseMatch, "category", nil), &filters.Categories)
	go runFacet(buildGroupFacetPipeline(baseMatch, "brand", nil), &filters.Brands)
	go func() {
		defer wg.Done()
		priceRange, err := s.runPriceRangeFacet(ctx, baseMatch)
		if err != nil {
			errCh <- err
			return
		}
		filters.PriceRange = priceRange
	}()

	wg.Wait()
	close(errCh)
	if err := <-errCh; err != nil {
		return nil, err
	}
	return filters, nil
}

// runFacetPipeline thực thi một pipeline facet và decode.
func (s *SearchService) runFacetPipeline(ctx context.Context, pipeline []bson.M) ([]searchdto.FacetCount, error) {
	cursor, err := s.productCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []searchdto.FacetCount
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if rows == nil {
		rows = []searchdto.FacetCount{}
	}
	return rows, nil
}

// runPriceRangeFacet tính min/max giá trên toàn tập khớp.
func (s *SearchService) runPriceRangeFacet(ctx context.Context, baseMatch bson.M) (searchdto.FacetPriceRange, error) {
	pipeline := []bson.M{
		{"$match": baseMatch},
		{"$group": bson.M{
			"_id":      nil,
			"minPrice": bson.M{"$min": "$price"},
			"maxPrice": bson.M{"$max": "$price"},
		}},
	}

	cursor, err := s.productCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return searchdto.FacetPriceRange{}, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []searchdto.FacetPriceRange
	if err := cursor.All(ctx, &rows); err != nil {
		return searchdto.FacetPriceRange{}, common.ConvertMongoError(err)
	}
	if len(rows) == 0 {
		return searchdto.FacetPriceRange{}, nil
	}
	return rows[0], nil
}
