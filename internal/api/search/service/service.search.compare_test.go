// Package searchsvc - Test khóa gom nhóm và pipeline so sánh giá.
package searchsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestComparisonGroupKey_SkuFallsBackToName(t *testing.T) {
	key := comparisonGroupKey()

	cond, ok := key["$cond"].(bson.A)
	if !ok || len(cond) != 3 {
		t.Fatalf("khóa gom nhóm phải là $cond 3 phần, nhận %v", key)
	}
	if cond[1] != "$sku" {
		t.Errorf("có sku thì khóa phải là $sku, nhận %v", cond[1])
	}
	fallback, ok := cond[2].(bson.M)
	if !ok || fallback["$toLower"] != "$name" {
		t.Errorf("không có sku thì khóa phải là tên lowercase, nhận %v", cond[2])
	}
}

func TestBuildComparisonStages_Shape(t *testing.T) {
	stages := BuildComparisonStages()
	if len(stages) != 3 {
		t.Fatalf("pipeline so sánh phải có 3 stage (group/project/sort), nhận %d", len(stages))
	}

	group, ok := stages[0]["$group"].(bson.M)
	if !ok {
		t.Fatal("stage đầu phải là $group")
	}
	for _, field := range []string{"lowest", "highest", "average", "totalVendors", "vendors"} {
		if _, ok := group[field]; !ok {
			t.Errorf("$group thiếu field %q", field)
		}
	}

	project, ok := stages[1]["$project"].(bson.M)
	if !ok {
		t.Fatal("stage hai phải là $project")
	}
	priceRange, ok := project["priceRange"].(bson.M)
	if !ok {
		t.Fatal("$project phải dựng object priceRange")
	}
	avg, ok := priceRange["average"].(bson.M)
	if !ok {
		t.Fatal("average trong priceRange phải là biểu thức $round")
	}
	round, ok := avg["$round"].(bson.A)
	if !ok || len(round) != 2 || round[1] != 2 {
		t.Errorf("average phải làm tròn 2 chữ số, nhận %v", avg)
	}
	currency, ok := project["currency"].(bson.M)
	if !ok {
		t.Fatal("currency phải có default qua $ifNull")
	}
	ifNull := currency["$ifNull"].(bson.A)
	if ifNull[1] != "NGN" {
		t.Errorf("currency mặc định phải là NGN, nhận %v", ifNull[1])
	}
	vendors, ok := project["vendors"].(bson.M)
	if !ok {
		t.Fatal("vendors phải được sort lại trong $project")
	}
	sortArray := vendors["$sortArray"].(bson.M)
	sortBy := sortArray["sortBy"].(bson.M)
	if sortBy["price"] != 1 {
		t.Errorf("chào giá trong nhóm phải xếp giá tăng dần, nhận %v", sortBy)
	}

	sort, ok := stages[2]["$sort"].(bson.D)
	if !ok {
		t.Fatal("stage cuối phải là $sort")
	}
	if sort[0].Key != "totalVendors" || sort[0].Value != -1 {
		t.Errorf("nhóm nhiều vendor nhất phải đứng đầu, nhận %v", sort)
	}
}

func TestVendorJoinStages_VerifiedOnly(t *testing.T) {
	stages := vendorJoinStages(false)
	if len(stages) != 3 {
		t.Fatalf("join vendor phải gồm lookup/unwind/match, nhận %d stage", len(stages))
	}
	match := stages[2]["$match"].(bson.M)
	if _, ok := match["vendor.isVerified"]; ok {
		t.Error("verifiedOnly=false thì không được lọc vendor.isVerified")
	}

	stages = vendorJoinStages(true)
	match = stages[2]["$match"].(bson.M)
	if match["vendor.isVerified"] != true {
		t.Error("verifiedOnly=true phải lọc vendor.isVerified=true")
	}
}
