package searchsvc

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	productmodels "github.com/MHYAnate/sureshops-api/internal/api/product/models"
	searchdto "github.com/MHYAnate/sureshops-api/internal/api/search/dto"
	"github.com/MHYAnate/sureshops-api/internal/common"
	"github.com/MHYAnate/sureshops-api/internal/global"
)

// maxComparisonGroups giới hạn số nhóm so sánh trả về một lần.
const maxComparisonGroups = 20

// comparisonGroupKey là biểu thức khóa gom nhóm: sku nếu có giá trị,
// không thì tên sản phẩm lowercase.
func comparisonGroupKey() bson.M {
	return bson.M{"$cond": bson.A{
		bson.M{"$and": bson.A{
			bson.M{"$ne": bson.A{"$sku", nil}},
			bson.M{"$ne": bson.A{"$sku", ""}},
		}},
		"$sku",
		bson.M{"$toLower": "$name"},
	}}
}

// BuildComparisonStages dựng phần gom nhóm + thống kê giá của pipeline so
// sánh. Chạy sau các base stage (match + join vendor + tên địa bàn).
func BuildComparisonStages() []bson.M {
	return []bson.M{
		{"$group": bson.M{
			"_id":          comparisonGroupKey(),
			"name":         bson.M{"$first": "$name"},
			"category":     bson.M{"$first": "$category"},
			"brand":        bson.M{"$first": "$brand"},
			"currency":     bson.M{"$first": "$currency"},
			"lowest":       bson.M{"$min": "$price"},
			"highest":      bson.M{"$max": "$price"},
			"average":      bson.M{"$avg": "$price"},
			"totalVendors": bson.M{"$sum": 1},
			"vendors": bson.M{"$push": bson.M{
				"productId":      "$_id",
				"vendorId":       "$vendor._id",
				"vendorName":     "$vendor.businessName",
				"isVerified":     "$vendor.isVerified",
				"price":          "$price",
				"inStock":        "$inStock",
				"quantity":       "$quantity",
				"contactDetails": "$vendor.contactDetails",
				"stateName":      "$stateName",
				"areaName":       "$areaName",
				"marketName":     "$marketName",
				"operatingHours": "$vendor.operatingHours",
			}},
		}},
		{"$project": bson.M{
			"name":     1,
			"category": 1,
			"brand":    1,
			"currency": bson.M{"$ifNull": bson.A{"$currency", "NGN"}},
			"priceRange": bson.M{
				"lowest":  "$lowest",
				"highest": "$highest",
				"average": bson.M{"$round": bson.A{"$average", 2}},
			},
			"totalVendors": 1,
			// Chào giá rẻ nhất đứng đầu mỗi nhóm.
			"vendors": bson.M{"$sortArray": bson.M{
				"input":  "$vendors",
				"sortBy": bson.M{"price": 1},
			}},
		}},
		{"$sort": bson.D{{Key: "totalVendors", Value: -1}, {Key: "priceRange.lowest", Value: 1}}},
	}
}

// CompareProducts gom các listing cùng sản phẩm của nhiều vendor và tính
// khoảng giá. Kết quả xếp theo số vendor giảm dần, tối đa 20 nhóm.
func (s *SearchService) CompareProducts(ctx context.Context, in *searchdto.ProductSearchInput) (*searchdto.ComparisonResult, error) {
	radiusKm := in.MaxDistanceKm
	if radiusKm <= 0 {
		radiusKm = s.defaultRadiusKm
	}

	spec := ProductSpecFromInput(in)
	pipeline := BuildProductBaseStages(spec, in, radiusKm)
	pipeline = append(pipeline, buildLocationNameStages()...)
	pipeline = append(pipeline, BuildComparisonStages()...)
	pipeline = append(pipeline, bson.M{"$limit": maxComparisonGroups})

	groups, err := s.runComparison(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	return &searchdto.ComparisonResult{Items: groups, Total: int64(len(groups))}, nil
}

// GetProductVendors trả về đúng một nhóm so sánh cho một sản phẩm cụ thể,
// tra theo tên / sku / barcode (so khớp nguyên chuỗi, không phân biệt
// hoa thường).
func (s *SearchService) GetProductVendors(ctx context.Context, productName string) (*searchdto.ComparisonGroup, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, common.ErrInvalidInput
	}

	exact := ciEquals(productName)
	match := bson.M{
		"isActive": true,
		"status":   productmodels.StatusApproved,
		"$or": []bson.M{
			{"name": exact},
			{"sku": exact},
			{"barcode": exact},
		},
	}

	pipeline := []bson.M{{"$match": match}}
	pipeline = append(pipeline, vendorJoinStages(false)...)
	pipeline = append(pipeline, buildLocationNameStages()...)
	pipeline = append(pipeline, BuildComparisonStages()...)
	pipeline = append(pipeline, bson.M{"$limit": 1})

	groups, err := s.runComparison(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, common.ErrNotFound
	}
	return &groups[0], nil
}

// vendorJoinStages là join vendor tối thiểu dùng cho các tra cứu không đi
// qua BuildProductBaseStages.
func vendorJoinStages(verifiedOnly bool) []bson.M {
	vendorMatch := bson.M{"vendor.isActive": bson.M{"$ne": false}}
	if verifiedOnly {
		vendorMatch["vendor.isVerified"] = true
	}
	return []bson.M{
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Vendors,
			"localField":   "vendorId",
			"foreignField": "_id",
			"as":           "vendor",
		}},
		{"$unwind": "$vendor"},
		{"$match": vendorMatch},
	}
}

// runComparison thực thi pipeline so sánh và decode kết quả.
func (s *SearchService) runComparison(ctx context.Context, pipeline []bson.M) ([]searchdto.ComparisonGroup, error) {
	cursor, err := s.productCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var groups []searchdto.ComparisonGroup
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if groups == nil {
		groups = []searchdto.ComparisonGroup{}
	}
	return groups, nil
}
