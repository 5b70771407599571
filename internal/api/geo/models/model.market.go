package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Market định nghĩa một chợ/trung tâm thương mại thuộc một khu vực.
// Bất biến: AreaID phải thuộc về đúng StateID (kiểm tra ở service khi tạo/sửa).
type Market struct {
	_Relationships struct{}           `relationship:"collection:vendors,field:marketId,message:Không thể xóa chợ vì có %d shop đang hoạt động tại đây."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" index:"compound:market_area_name_unique,order:1"`
	Code           string             `json:"code,omitempty" bson:"code,omitempty"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	StateID        primitive.ObjectID `json:"stateId" bson:"stateId" index:"single:1"`
	AreaID         primitive.ObjectID `json:"areaId" bson:"areaId" index:"single:1;compound:market_area_name_unique,order:1"`
	Address        string             `json:"address,omitempty" bson:"address,omitempty"`
	Location       *GeoJSON           `json:"location,omitempty" bson:"location,omitempty" index:"geo2dsphere"`
	IsSystem       bool               `json:"-" bson:"isSystem" index:"single:1"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// MarketPaginateResult đại diện cho kết quả phân trang Market
type MarketPaginateResult struct {
	Page      int64    `json:"page" bson:"page"`
	Limit     int64    `json:"limit" bson:"limit"`
	ItemCount int64    `json:"itemCount" bson:"itemCount"`
	Items     []Market `json:"items" bson:"items"`
}
