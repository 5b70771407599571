// Package geosvc - service cho dữ liệu tham chiếu địa lý (State / Area / Market).
package geosvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/MHYAnate/sureshops-api/internal/api/base/service"
	models "github.com/MHYAnate/sureshops-api/internal/api/geo/models"
	"github.com/MHYAnate/sureshops-api/internal/common"
	"github.com/MHYAnate/sureshops-api/internal/global"
)

// StateService là cấu trúc chứa các phương thức liên quan đến tỉnh/bang
type StateService struct {
	*basesvc.BaseServiceMongoImpl[models.State]
}

// NewStateService tạo mới StateService
func NewStateService() (*StateService, error) {
	stateCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.States)
	if !exist {
		return nil, fmt.Errorf("failed to get states collection: %v", common.ErrNotFound)
	}

	return &StateService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.State](stateCollection),
	}, nil
}

// InsertOne tạo tỉnh/bang mới, chuẩn hóa location trước khi lưu.
func (s *StateService) InsertOne(ctx context.Context, data models.State) (models.State, error) {
	if err := validateGeoPoint(data.Location); err != nil {
		return models.State{}, err
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// FindByCode tìm tỉnh/bang theo mã code.
func (s *StateService) FindByCode(ctx context.Context, code string) (models.State, error) {
	return s.FindOne(ctx, bson.M{"code": code}, nil)
}

// validateGeoPoint kiểm tra điểm GeoJSON nếu có: Type phải là "Point",
// Coordinates phải đủ [lng, lat] trong khoảng hợp lệ.
// nil là hợp lệ - không có tọa độ thì không lưu location.
func validateGeoPoint(point *models.GeoJSON) error {
	if point == nil {
		return nil
	}
	if point.Type != "Point" || len(point.Coordinates) != 2 {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Location phải là GeoJSON Point với coordinates [longitude, latitude]",
			common.StatusBadRequest,
			nil,
		)
	}
	lng, lat := point.Coordinates[0], point.Coordinates[1]
	if lng < -180 || lng > 180 || lat < -90 || lat > 90 {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Tọa độ không hợp lệ: longitude trong [-180,180], latitude trong [-90,90]",
			common.StatusBadRequest,
			nil,
		)
	}
	return nil
}
