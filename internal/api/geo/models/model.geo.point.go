// Package models - các model dữ liệu tham chiếu địa lý (State / Area / Market).
package models

// GeoJSON đại diện cho một điểm địa lý theo chuẩn GeoJSON.
// Coordinates theo thứ tự [longitude, latitude].
// Chỉ lưu khi có tọa độ thật (con trỏ nil = không có tọa độ, không default về [0,0]).
type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`               // Luôn là "Point"
	Coordinates []float64 `json:"coordinates" bson:"coordinates"` // [lng, lat]
}

// NewGeoPoint tạo một điểm GeoJSON từ longitude + latitude.
func NewGeoPoint(lng, lat float64) *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{lng, lat},
	}
}

// Longitude trả về kinh độ của điểm.
func (g *GeoJSON) Longitude() float64 {
	if g == nil || len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[0]
}

// Latitude trả về vĩ độ của điểm.
func (g *GeoJSON) Latitude() float64 {
	if g == nil || len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[1]
}
