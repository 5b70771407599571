// Package searchsvc - Test filter nền và pipeline của facet.
package searchsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	searchdto "github.com/MHYAnate/sureshops-api/internal/api/search/dto"
)

func TestBuildFacetBaseMatch_ExcludesLocationAndPrice(t *testing.T) {
	min := 500.0
	in := &searchdto.ProductSearchInput{
		Query:    "rice",
		Category: "Food",
		StateID:  "64f000000000000000000001",
		MinPrice: &min,
	}

	match := BuildFacetBaseMatch(in)
	if _, ok := match["stateId"]; ok {
		t.Error("facet không được thu hẹp theo location đã chọn")
	}
	if _, ok := match["price"]; ok {
		t.Error("facet không được thu hẹp theo khoảng giá đã chọn")
	}
	if _, ok := match["$or"]; !ok {
		t.Error("facet vẫn phải giữ điều kiện text search")
	}
	if _, ok := match["category"]; !ok {
		t.Error("facet vẫn phải giữ điều kiện category")
	}
}

func TestBuildGroupFacetPipeline_Shape(t *testing.T) {
	base := bson.M{"isActive": true}
	pipeline := buildGroupFacetPipeline(base, "brand", nil)

	if len(pipeline) != 4 {
		t.Fatalf("pipeline facet phải có 4 stage, nhận %d", len(pipeline))
	}

	match := pipeline[0]["$match"].(bson.M)
	if match["isActive"] != true {
		t.Error("facet phải giữ filter nền")
	}
	nin, ok := match["brand"].(bson.M)
	if !ok {
		t.Fatal("field đang gom phải có điều kiện $nin loại nil/rỗng")
	}
	vals := nin["$nin"].(bson.A)
	if len(vals) != 2 {
		t.Errorf("$nin phải loại cả nil và chuỗi rỗng, nhận %v", vals)
	}

	group := pipeline[1]["$group"].(bson.M)
	if group["_id"] != "$brand" {
		t.Errorf("facet phải gom theo field được yêu cầu, nhận %v", group["_id"])
	}

	limit := pipeline[3]["$limit"]
	if limit != maxFacetValues {
		t.Errorf("facet phải giới hạn %d giá trị, nhận %v", maxFacetValues, limit)
	}
}

func TestBuildGroupFacetPipeline_DoesNotMutateBaseMatch(t *testing.T) {
	base := bson.M{"isActive": true}
	buildGroupFacetPipeline(base, "category", bson.M{"stateId": "x"})

	if len(base) != 1 {
		t.Errorf("filter nền không được bị sửa khi dựng facet, nhận %v", base)
	}
}

func TestBuildNamedFacetPipeline_JoinsReferenceName(t *testing.T) {
	pipeline := buildNamedFacetPipeline(bson.M{}, "stateId", "states", nil)

	if len(pipeline) != 8 {
		t.Fatalf("facet có tên phải thêm 4 stage join, nhận %d stage", len(pipeline))
	}
	lookup := pipeline[4]["$lookup"].(bson.M)
	if lookup["from"] != "states" {
		t.Errorf("phải join collection tham chiếu, nhận %v", lookup["from"])
	}
	addFields := pipeline[6]["$addFields"].(bson.M)
	if addFields["name"] != "$_ref.name" {
		t.Errorf("tên hiển thị phải lấy từ document tham chiếu, nhận %v", addFields)
	}
}
