package geosvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/MHYAnate/sureshops-api/internal/api/base/service"
	models "github.com/MHYAnate/sureshops-api/internal/api/geo/models"
	"github.com/MHYAnate/sureshops-api/internal/common"
	"github.com/MHYAnate/sureshops-api/internal/global"
)

// AreaService là cấu trúc chứa các phương thức liên quan đến khu vực
type AreaService struct {
	*basesvc.BaseServiceMongoImpl[models.Area]
	stateService *StateService
}

// NewAreaService tạo mới AreaService
func NewAreaService() (*AreaService, error) {
	areaCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Areas)
	if !exist {
		return nil, fmt.Errorf("failed to get areas collection: %v", common.ErrNotFound)
	}

	stateService, err := NewStateService()
	if err != nil {
		return nil, err
	}

	return &AreaService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Area](areaCollection),
		stateService:         stateService,
	}, nil
}

// InsertOne tạo khu vực mới, kiểm tra tỉnh/bang cha tồn tại.
func (s *AreaService) InsertOne(ctx context.Context, data models.Area) (models.Area, error) {
	if err := validateGeoPoint(data.Location); err != nil {
		return models.Area{}, err
	}
	if err := s.validateParentState(ctx, data.StateID); err != nil {
		return models.Area{}, err
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// UpdateById cập nhật khu vực, kiểm tra lại tỉnh/bang cha nếu stateId thay đổi.
func (s *AreaService) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (models.Area, error) {
	if updateData, ok := data.(*basesvc.UpdateData); ok && updateData != nil {
		if stateID, found := extractObjectID(updateData.Set, "stateId"); found {
			if err := s.validateParentState(ctx, stateID); err != nil {
				return models.Area{}, err
			}
		}
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, data)
}

// ListByState trả về tất cả khu vực thuộc một tỉnh/bang.
func (s *AreaService) ListByState(ctx context.Context, stateID primitive.ObjectID) ([]models.Area, error) {
	return s.Find(ctx, bson.M{"stateId": stateID}, nil)
}

// validateParentState kiểm tra tỉnh/bang cha có tồn tại không.
func (s *AreaService) validateParentState(ctx context.Context, stateID primitive.ObjectID) error {
	exists, err := s.stateService.DocumentExists(ctx, bson.M{"_id": stateID})
	if err != nil {
		return err
	}
	if !exists {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Tỉnh/bang không tồn tại: "+stateID.Hex(),
			common.StatusBadRequest,
			nil,
		)
	}
	return nil
}

// extractObjectID lấy ObjectID từ map update theo key, chấp nhận cả dạng hex string.
func extractObjectID(set map[string]interface{}, key string) (primitive.ObjectID, bool) {
	if set == nil {
		return primitive.NilObjectID, false
	}
	value, ok := set[key]
	if !ok {
		return primitive.NilObjectID, false
	}
	switch v := value.(type) {
	case primitive.ObjectID:
		return v, true
	case string:
		if id, err := primitive.ObjectIDFromHex(v); err == nil {
			return id, true
		}
	}
	return primitive.NilObjectID, false
}
