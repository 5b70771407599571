package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Area định nghĩa một khu vực (LGA) thuộc một tỉnh/bang.
type Area struct {
	_Relationships struct{}           `relationship:"collection:markets,field:areaId,message:Không thể xóa khu vực vì có %d chợ đang tham chiếu tới.|collection:vendors,field:areaId,message:Không thể xóa khu vực vì có %d shop đang hoạt động tại đây."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" index:"compound:area_state_name_unique,order:1"`
	Code           string             `json:"code,omitempty" bson:"code,omitempty"`
	StateID        primitive.ObjectID `json:"stateId" bson:"stateId" index:"single:1;compound:area_state_name_unique,order:1"`
	Location       *GeoJSON           `json:"location,omitempty" bson:"location,omitempty" index:"geo2dsphere"`
	IsSystem       bool               `json:"-" bson:"isSystem" index:"single:1"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// AreaPaginateResult đại diện cho kết quả phân trang Area
type AreaPaginateResult struct {
	Page      int64  `json:"page" bson:"page"`
	Limit     int64  `json:"limit" bson:"limit"`
	ItemCount int64  `json:"itemCount" bson:"itemCount"`
	Items     []Area `json:"items" bson:"items"`
}
