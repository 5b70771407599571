// Package searchsvc - engine tìm kiếm & so sánh giá.
//
// Mọi truy vấn đều được dịch thành aggregation pipeline của MongoDB.
// Các hàm Build* trong file này là hàm thuần (không chạm store) để
// test được logic dịch filter một cách độc lập.
package searchsvc

import (
	"math"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	productmodels "github.com/MHYAnate/sureshops-api/internal/api/product/models"
	searchdto "github.com/MHYAnate/sureshops-api/internal/api/search/dto"
)

// ProductMatchSpec là filter sản phẩm đã chuẩn hóa (ObjectID thay vì hex).
// Zero value khớp "mọi sản phẩm active + approved".
type ProductMatchSpec struct {
	Query       string
	Category    string
	Subcategory string
	Brand       string

	MinPrice *float64
	MaxPrice *float64

	StateID  primitive.ObjectID
	AreaID   primitive.ObjectID
	MarketID primitive.ObjectID

	InStock     *bool
	ProductType string

	// StatusOverride thay thế điều kiện mặc định status=approved.
	// Chỉ luồng admin mới set giá trị này.
	StatusOverride string

	// IncludeInactive bỏ điều kiện mặc định isActive=true (luồng admin).
	IncludeInactive bool
}

// ProductSpecFromInput chuẩn hóa DTO thành spec. Hex không hợp lệ bị bỏ qua
// (filter coi như không có) thay vì fail cả request.
func ProductSpecFromInput(in *searchdto.ProductSearchInput) ProductMatchSpec {
	spec := ProductMatchSpec{
		Query:          strings.TrimSpace(in.Query),
		Category:       strings.TrimSpace(in.Category),
		Subcategory:    strings.TrimSpace(in.Subcategory),
		Brand:          strings.TrimSpace(in.Brand),
		MinPrice:       in.MinPrice,
		MaxPrice:       in.MaxPrice,
		InStock:        in.InStock,
		ProductType:    in.ProductType,
		StatusOverride: in.Status,
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

// BuildProductMatch dịch spec thành document filter cho $match (hoặc query
// của $geoNear). Text search là substring không phân biệt hoa thường trên
// name/description/brand/tags.
func BuildProductMatch(spec ProductMatchSpec) bson.M {
	match := bson.M{}

	if !spec.IncludeInactive {
		match["isActive"] = true
	}
	if spec.StatusOverride != "" {
		match["status"] = spec.StatusOverride
	} else {
		match["status"] = productmodels.StatusApproved
	}

	if spec.Query != "" {
		pattern := regexp.QuoteMeta(spec.Query)
		regex := bson.M{"$regex": pattern, "$options": "i"}
		match["$or"] = []bson.M{
			{"name": regex},
			{"description": regex},
			{"brand": regex},
			{"tags": regex},
		}
	}

	if spec.Category != "" {
		match["category"] = ciEquals(spec.Category)
	}
	if spec.Subcategory != "" {
		match["subcategory"] = ciEquals(spec.Subcategory)
	}
	if spec.Brand != "" {
		match["brand"] = ciEquals(spec.Brand)
	}
	if spec.ProductType != "" {
		match["productType"] = spec.ProductType
	}

	if spec.MinPrice != nil || spec.MaxPrice != nil {
		price := bson.M{}
		if spec.MinPrice != nil {
			price["$gte"] = *spec.MinPrice
		}
		if spec.MaxPrice != nil {
			price["$lte"] = *spec.MaxPrice
		}
		match["price"] = price
	}

	// Lọc địa bàn theo cấp hẹp nhất được cung cấp.
	if !spec.MarketID.IsZero() {
		match["marketId"] = spec.MarketID
	} else if !spec.AreaID.IsZero() {
		match["areaId"] = spec.AreaID
	} else if !spec.StateID.IsZero() {
		match["stateId"] = spec.StateID
	}

	if spec.InStock != nil {
		match["inStock"] = *spec.InStock
	}

	return match
}

// ciEquals match chuỗi bằng nhau không phân biệt hoa thường.
func ciEquals(value string) bson.M {
	return bson.M{"$regex": "^" + regexp.QuoteMeta(value) + "$", "$options": "i"}
}

// BuildGeoNearStage dựng stage $geoNear với filter nhúng trong query.
// $geoNear bắt buộc là stage đầu pipeline, nên mọi điều kiện match phải
// đi qua query thay vì $match riêng.
func BuildGeoNearStage(lng, lat, maxDistanceKm float64, query bson.M) bson.M {
	return bson.M{
		"$geoNear": bson.M{
			"near": bson.M{
				"type":        "Point",
				"coordinates": []float64{lng, lat},
			},
			"distanceField": "distance",
			"maxDistance":   maxDistanceKm * 1000, // km -> m
			"spherical":     true,
			"query":         query,
		},
	}
}

// BuildProductSortStage dịch sortBy thành stage $sort.
// hasGeo quyết định relevance/distance có dùng được trường distance không.
func BuildProductSortStage(sortBy string, hasGeo bool) bson.M {
	switch sortBy {
	case searchdto.SortPriceLow:
		return bson.M{"$sort": bson.D{{Key: "price", Value: 1}, {Key: "createdAt", Value: -1}}}
	case searchdto.SortPriceHigh:
		return bson.M{"$sort": bson.D{{Key: "price", Value: -1}, {Key: "createdAt", Value: -1}}}
	case searchdto.SortDistance:
		if hasGeo {
			return bson.M{"$sort": bson.D{{Key: "distance", Value: 1}}}
		}
		return bson.M{"$sort": bson.D{{Key: "createdAt", Value: -1}}}
	case searchdto.SortRating:
		return bson.M{"$sort": bson.D{{Key: "vendor.rating", Value: -1}, {Key: "createdAt", Value: -1}}}
	case searchdto.SortNewest:
		return bson.M{"$sort": bson.D{{Key: "createdAt", Value: -1}}}
	case searchdto.SortPopularity:
		return bson.M{"$sort": bson.D{{Key: "views", Value: -1}, {Key: "createdAt", Value: -1}}}
	default: // relevance
		if hasGeo {
			return bson.M{"$sort": bson.D{{Key: "distance", Value: 1}, {Key: "views", Value: -1}, {Key: "createdAt", Value: -1}}}
		}
		return bson.M{"$sort": bson.D{{Key: "views", Value: -1}, {Key: "createdAt", Value: -1}}}
	}
}

// RoundKm đổi mét sang km, làm tròn 2 chữ số.
func RoundKm(meters float64) float64 {
	return math.Round(meters/1000*100) / 100
}

// normalizePaging kẹp page/limit vào khoảng hợp lệ.
func normalizePaging(page, limit, maxLimit int64) (int64, int64) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
