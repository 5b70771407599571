// Package searchsvc - Test filter và sort cho tìm kiếm shop.
package searchsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	searchdto "github.com/MHYAnate/sureshops-api/internal/api/search/dto"
)

func TestBuildShopMatch_AlwaysFiltersActive(t *testing.T) {
	match := BuildShopMatch(ShopMatchSpec{})
	if match["isActive"] != true {
		t.Error("tìm shop luôn phải lọc isActive=true")
	}
	if _, ok := match["isVerified"]; ok {
		t.Error("không bật VerifiedOnly thì không được lọc isVerified")
	}
}

func TestBuildShopMatch_VerifiedOnlyAndOpen(t *testing.T) {
	open := true
	match := BuildShopMatch(ShopMatchSpec{VerifiedOnly: true, IsOpen: &open})

	if match["isVerified"] != true {
		t.Error("VerifiedOnly phải sinh điều kiện isVerified=true")
	}
	if match["isOpen"] != true {
		t.Error("IsOpen phải sinh điều kiện isOpen")
	}
}

func TestBuildShopMatch_QueryCoversShopFields(t *testing.T) {
	match := BuildShopMatch(ShopMatchSpec{Query: "alaba"})

	or, ok := match["$or"].([]bson.M)
	if !ok || len(or) != 4 {
		t.Fatalf("query phải phủ businessName/description/categories/tags, nhận %v", match["$or"])
	}
	if _, ok := or[0]["businessName"]; !ok {
		t.Error("nhánh đầu của $or phải match trên businessName")
	}
}

func TestBuildShopMatch_NarrowestLocationWins(t *testing.T) {
	areaID := primitive.NewObjectID()
	marketID := primitive.NewObjectID()

	match := BuildShopMatch(ShopMatchSpec{AreaID: areaID, MarketID: marketID})
	if match["marketId"] != marketID {
		t.Error("có market thì phải lọc theo marketId")
	}
	if _, ok := match["areaId"]; ok {
		t.Error("đã lọc theo market thì không được lọc thêm areaId")
	}
}

func TestBuildShopSortStage_DefaultFeaturedFirst(t *testing.T) {
	stage := BuildShopSortStage("", false)
	sort := stage["$sort"].(bson.D)

	if sort[0].Key != "isFeatured" || sort[0].Value != -1 {
		t.Errorf("sort mặc định phải đưa shop featured lên đầu, nhận %v", sort)
	}
	if sort[1].Key != "isVerified" || sort[1].Value != -1 {
		t.Errorf("sau featured phải tới verified, nhận %v", sort)
	}
}

func TestBuildShopSortStage_DistanceNeedsGeo(t *testing.T) {
	stage := BuildShopSortStage(searchdto.SortDistance, true)
	sort := stage["$sort"].(bson.D)
	if sort[0].Key != "distance" || sort[0].Value != 1 {
		t.Errorf("có tọa độ thì sort distance tăng dần, nhận %v", sort)
	}

	stage = BuildShopSortStage(searchdto.SortDistance, false)
	sort = stage["$sort"].(bson.D)
	if sort[0].Key == "distance" {
		t.Error("không có tọa độ thì không được sort theo distance")
	}
}

func TestShopSpecFromInput_InvalidHexIgnored(t *testing.T) {
	marketID := primitive.NewObjectID()
	in := &searchdto.ShopSearchInput{
		MarketID: marketID.Hex(),
		StateID:  "xxx",
	}

	spec := ShopSpecFromInput(in)
	if spec.MarketID != marketID {
		t.Error("hex hợp lệ phải được parse thành ObjectID")
	}
	if !spec.StateID.IsZero() {
		t.Error("hex không hợp lệ phải bị bỏ qua")
	}
}
