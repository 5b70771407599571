// Package geodto - các DTO cho dữ liệu tham chiếu địa lý.
package geodto

import (
	models "github.com/MHYAnate/sureshops-api/internal/api/geo/models"
)

// Location dùng lại GeoJSON của models để copy thẳng sang model khi transform.
// Chỉ gửi khi có tọa độ thật - bỏ trống thì model không có location.

// StateCreateInput đầu vào tạo tỉnh/bang.
type StateCreateInput struct {
	Name     string          `json:"name" validate:"required,no_xss"`
	Code     string          `json:"code" validate:"omitempty,no_xss"`
	Country  string          `json:"country" validate:"omitempty,no_xss"`
	Location *models.GeoJSON `json:"location" validate:"omitempty"`
}

// StateUpdateInput đầu vào cập nhật tỉnh/bang.
type StateUpdateInput struct {
	Name     string          `json:"name" validate:"omitempty,no_xss"`
	Code     string          `json:"code" validate:"omitempty,no_xss"`
	Country  string          `json:"country" validate:"omitempty,no_xss"`
	Location *models.GeoJSON `json:"location" validate:"omitempty"`
}

// AreaCreateInput đầu vào tạo khu vực.
type AreaCreateInput struct {
	Name     string          `json:"name" validate:"required,no_xss"`
	Code     string          `json:"code" validate:"omitempty,no_xss"`
	StateID  string          `json:"stateId" validate:"required" transform:"str_objectid"`
	Location *models.GeoJSON `json:"location" validate:"omitempty"`
}

// AreaUpdateInput đầu vào cập nhật khu vực.
type AreaUpdateInput struct {
	Name     string          `json:"name" validate:"omitempty,no_xss"`
	Code     string          `json:"code" validate:"omitempty,no_xss"`
	StateID  string          `json:"stateId" validate:"omitempty" transform:"str_objectid,optional"`
	Location *models.GeoJSON `json:"location" validate:"omitempty"`
}

// MarketCreateInput đầu vào tạo chợ/trung tâm thương mại.
type MarketCreateInput struct {
	Name        string          `json:"name" validate:"required,no_xss"`
	Code        string          `json:"code" validate:"omitempty,no_xss"`
	Description string          `json:"description" validate:"omitempty,no_xss"`
	StateID     string          `json:"stateId" validate:"required" transform:"str_objectid"`
	AreaID      string          `json:"areaId" validate:"required" transform:"str_objectid"`
	Address     string          `json:"address" validate:"omitempty,no_xss"`
	Location    *models.GeoJSON `json:"location" validate:"omitempty"`
}

// MarketUpdateInput đầu vào cập nhật chợ/trung tâm thương mại.
type MarketUpdateInput struct {
	Name        string          `json:"name" validate:"omitempty,no_xss"`
	Code        string          `json:"code" validate:"omitempty,no_xss"`
	Description string          `json:"description" validate:"omitempty,no_xss"`
	StateID     string          `json:"stateId" validate:"omitempty" transform:"str_objectid,optional"`
	AreaID      string          `json:"areaId" validate:"omitempty" transform:"str_objectid,optional"`
	Address     string          `json:"address" validate:"omitempty,no_xss"`
	Location    *models.GeoJSON `json:"location" validate:"omitempty"`
}
