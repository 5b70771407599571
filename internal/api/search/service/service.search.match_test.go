// Package searchsvc - Test các hàm dịch filter sản phẩm thành match/sort stage.
package searchsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	productmodels "github.com/MHYAnate/sureshops-api/internal/api/product/models"
	searchdto "github.com/MHYAnate/sureshops-api/internal/api/search/dto"
)

func TestBuildProductMatch_Defaults(t *testing.T) {
	match := BuildProductMatch(ProductMatchSpec{})

	if match["isActive"] != true {
		t.Error("spec rỗng phải mặc định isActive=true")
	}
	if match["status"] != productmodels.StatusApproved {
		t.Errorf("spec rỗng phải mặc định status=%q, nhận %v", productmodels.StatusApproved, match["status"])
	}
	if _, ok := match["$or"]; ok {
		t.Error("không có query thì không được sinh điều kiện $or")
	}
}

func TestBuildProductMatch_AdminOverrides(t *testing.T) {
	match := BuildProductMatch(ProductMatchSpec{
		StatusOverride:  productmodels.StatusPending,
		IncludeInactive: true,
	})

	if match["status"] != productmodels.StatusPending {
		t.Errorf("StatusOverride phải thay thế điều kiện approved, nhận %v", match["status"])
	}
	if _, ok := match["isActive"]; ok {
		t.Error("IncludeInactive phải bỏ điều kiện isActive")
	}
}

func TestBuildProductMatch_QueryEscapesRegexMeta(t *testing.T) {
	match := BuildProductMatch(ProductMatchSpec{Query: "tecno (4GB+64GB)"})

	or, ok := match["$or"].([]bson.M)
	if !ok || len(or) != 4 {
		t.Fatalf("query phải sinh $or 4 nhánh (name/description/brand/tags), nhận %v", match["$or"])
	}
	nameRegex, ok := or[0]["name"].(bson.M)
	if !ok {
		t.Fatalf("nhánh đầu của $or phải match trên name, nhận %v", or[0])
	}
	pattern, _ := nameRegex["$regex"].(string)
	if pattern != `tecno \(4GB\+64GB\)` {
		t.Errorf("ký tự đặc biệt của regex phải được escape, nhận %q", pattern)
	}
	if nameRegex["$options"] != "i" {
		t.Error("text search phải không phân biệt hoa thường ($options=i)")
	}
}

func TestBuildProductMatch_NarrowestLocationWins(t *testing.T) {
	stateID := primitive.NewObjectID()
	areaID := primitive.NewObjectID()
	marketID := primitive.NewObjectID()

	match := BuildProductMatch(ProductMatchSpec{StateID: stateID, AreaID: areaID, MarketID: marketID})
	if match["marketId"] != marketID {
		t.Error("có đủ 3 cấp thì phải lọc theo marketId (cấp hẹp nhất)")
	}
	if _, ok := match["areaId"]; ok {
		t.Error("đã lọc theo market thì không được lọc thêm areaId")
	}
	if _, ok := match["stateId"]; ok {
		t.Error("đã lọc theo market thì không được lọc thêm stateId")
	}

	match = BuildProductMatch(ProductMatchSpec{StateID: stateID, AreaID: areaID})
	if match["areaId"] != areaID {
		t.Error("không có market thì phải lọc theo areaId")
	}

	match = BuildProductMatch(ProductMatchSpec{StateID: stateID})
	if match["stateId"] != stateID {
		t.Error("chỉ có state thì phải lọc theo stateId")
	}
}

func TestBuildProductMatch_PriceRange(t *testing.T) {
	min := 1000.0
	max := 5000.0

	match := BuildProductMatch(ProductMatchSpec{MinPrice: &min, MaxPrice: &max})
	price, ok := match["price"].(bson.M)
	if !ok {
		t.Fatalf("có min/max thì phải có điều kiện price, nhận %v", match["price"])
	}
	if price["$gte"] != min || price["$lte"] != max {
		t.Errorf("khoảng giá sai: %v", price)
	}

	match = BuildProductMatch(ProductMatchSpec{MinPrice: &min})
	price = match["price"].(bson.M)
	if _, ok := price["$lte"]; ok {
		t.Error("chỉ có min thì không được sinh $lte")
	}
}

func TestProductSpecFromInput_InvalidHexIgnored(t *testing.T) {
	stateID := primitive.NewObjectID()
	in := &searchdto.ProductSearchInput{
		Query:   "  rice  ",
		StateID: stateID.Hex(),
		AreaID:  "khong-phai-hex",
	}

	spec := ProductSpecFromInput(in)
	if spec.Query != "rice" {
		t.Errorf("query phải được trim, nhận %q", spec.Query)
	}
	if spec.StateID != stateID {
		t.Error("hex hợp lệ phải được parse thành ObjectID")
	}
	if !spec.AreaID.IsZero() {
		t.Error("hex không hợp lệ phải bị bỏ qua (zero ObjectID), không fail request")
	}
}

func TestBuildGeoNearStage(t *testing.T) {
	stage := BuildGeoNearStage(3.349, 6.605, 5, bson.M{"isActive": true})

	geoNear, ok := stage["$geoNear"].(bson.M)
	if !ok {
		t.Fatal("stage phải là $geoNear")
	}
	if geoNear["maxDistance"] != 5000.0 {
		t.Errorf("maxDistance phải đổi km sang mét (5000), nhận %v", geoNear["maxDistance"])
	}
	if geoNear["distanceField"] != "distance" {
		t.Errorf("distanceField phải là 'distance', nhận %v", geoNear["distanceField"])
	}
	if geoNear["spherical"] != true {
		t.Error("$geoNear phải dùng spherical")
	}
	near := geoNear["near"].(bson.M)
	coords := near["coordinates"].([]float64)
	if coords[0] != 3.349 || coords[1] != 6.605 {
		t.Errorf("coordinates phải theo thứ tự [lng, lat], nhận %v", coords)
	}
	query, ok := geoNear["query"].(bson.M)
	if !ok || query["isActive"] != true {
		t.Error("điều kiện match phải được nhúng vào query của $geoNear")
	}
}

func TestBuildProductSortStage(t *testing.T) {
	cases := []struct {
		sortBy   string
		hasGeo   bool
		firstKey string
		firstVal int
	}{
		{searchdto.SortPriceLow, false, "price", 1},
		{searchdto.SortPriceHigh, false, "price", -1},
		{searchdto.SortDistance, true, "distance", 1},
		{searchdto.SortDistance, false, "createdAt", -1}, // không có tọa độ thì fallback newest
		{searchdto.SortRating, false, "vendor.rating", -1},
		{searchdto.SortNewest, false, "createdAt", -1},
		{searchdto.SortPopularity, false, "views", -1},
		{searchdto.SortRelevance, true, "distance", 1},
		{searchdto.SortRelevance, false, "views", -1},
		{"", false, "views", -1}, // rỗng = relevance
	}

	for _, tc := range cases {
		stage := BuildProductSortStage(tc.sortBy, tc.hasGeo)
		sort, ok := stage["$sort"].(bson.D)
		if !ok || len(sort) == 0 {
			t.Fatalf("sortBy=%q: stage $sort không hợp lệ: %v", tc.sortBy, stage)
		}
		if sort[0].Key != tc.firstKey || sort[0].Value != tc.firstVal {
			t.Errorf("sortBy=%q hasGeo=%v: khóa sort đầu phải là %s:%d, nhận %s:%v",
				tc.sortBy, tc.hasGeo, tc.firstKey, tc.firstVal, sort[0].Key, sort[0].Value)
		}
	}
}

func TestNormalizePaging(t *testing.T) {
	page, limit := normalizePaging(0, 0, 100)
	if page != 1 || limit != 20 {
		t.Errorf("giá trị thiếu phải về mặc định page=1 limit=20, nhận %d/%d", page, limit)
	}

	page, limit = normalizePaging(-5, 9999, 100)
	if page != 1 {
		t.Errorf("page âm phải về 1, nhận %d", page)
	}
	if limit != 100 {
		t.Errorf("limit phải bị kẹp về maxLimit=100, nhận %d", limit)
	}

	page, limit = normalizePaging(3, 50, 100)
	if page != 3 || limit != 50 {
		t.Errorf("giá trị hợp lệ phải giữ nguyên, nhận %d/%d", page, limit)
	}
}

func TestRoundKm(t *testing.T) {
	if got := RoundKm(1234); got != 1.23 {
		t.Errorf("1234m phải thành 1.23km, nhận %v", got)
	}
	if got := RoundKm(1236); got != 1.24 {
		t.Errorf("1236m phải thành 1.24km, nhận %v", got)
	}
	if got := RoundKm(0); got != 0 {
		t.Errorf("0m phải thành 0km, nhận %v", got)
	}
}
