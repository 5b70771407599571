package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// State định nghĩa một tỉnh/bang - gốc của cây phân cấp địa lý.
// Dữ liệu tham chiếu được seed với isSystem=true, chỉ admin được sửa/xóa.
type State struct {
	_Relationships struct{}           `relationship:"collection:areas,field:stateId,message:Không thể xóa tỉnh/bang vì có %d khu vực đang tham chiếu tới.|collection:vendors,field:stateId,message:Không thể xóa tỉnh/bang vì có %d shop đang hoạt động tại đây."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" index:"unique"`
	Code           string             `json:"code,omitempty" bson:"code,omitempty" index:"unique,sparse"`
	Country        string             `json:"country" bson:"country" default:"Nigeria"`
	Location       *GeoJSON           `json:"location,omitempty" bson:"location,omitempty" index:"geo2dsphere"`
	IsSystem       bool               `json:"-" bson:"isSystem" index:"single:1"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// StatePaginateResult đại diện cho kết quả phân trang State
type StatePaginateResult struct {
	Page      int64   `json:"page" bson:"page"`
	Limit     int64   `json:"limit" bson:"limit"`
	ItemCount int64   `json:"itemCount" bson:"itemCount"`
	Items     []State `json:"items" bson:"items"`
}
