// Package geosvc - Test validate điểm GeoJSON.
package geosvc

import (
	"testing"

	models "github.com/MHYAnate/sureshops-api/internal/api/geo/models"
)

func TestValidateGeoPoint_NilIsValid(t *testing.T) {
	if err := validateGeoPoint(nil); err != nil {
		t.Errorf("không có tọa độ (nil) phải hợp lệ, nhận lỗi: %v", err)
	}
}

func TestValidateGeoPoint_ValidPoint(t *testing.T) {
	// Tọa độ Lagos
	if err := validateGeoPoint(models.NewGeoPoint(3.3792, 6.5244)); err != nil {
		t.Errorf("điểm hợp lệ bị từ chối: %v", err)
	}
	// Biên của khoảng hợp lệ
	if err := validateGeoPoint(models.NewGeoPoint(-180, 90)); err != nil {
		t.Errorf("tọa độ ở biên phải hợp lệ: %v", err)
	}
}

func TestValidateGeoPoint_WrongType(t *testing.T) {
	point := &models.GeoJSON{Type: "Polygon", Coordinates: []float64{3.3, 6.5}}
	if err := validateGeoPoint(point); err == nil {
		t.Error("Type khác Point phải bị từ chối")
	}
}

func TestValidateGeoPoint_WrongCoordinateCount(t *testing.T) {
	point := &models.GeoJSON{Type: "Point", Coordinates: []float64{3.3}}
	if err := validateGeoPoint(point); err == nil {
		t.Error("thiếu tọa độ phải bị từ chối")
	}
}

func TestValidateGeoPoint_OutOfRange(t *testing.T) {
	if err := validateGeoPoint(models.NewGeoPoint(181, 0)); err == nil {
		t.Error("longitude ngoài [-180,180] phải bị từ chối")
	}
	if err := validateGeoPoint(models.NewGeoPoint(0, -91)); err == nil {
		t.Error("latitude ngoài [-90,90] phải bị từ chối")
	}
	// Thứ tự phải là [lng, lat]: lat=100 đưa vào vị trí lng vẫn phải fail
	if err := validateGeoPoint(models.NewGeoPoint(100, 100)); err == nil {
		t.Error("latitude=100 phải bị từ chối")
	}
}
