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

// MarketService là cấu trúc chứa các phương thức liên quan đến chợ/trung tâm thương mại
type MarketService struct {
	*basesvc.BaseServiceMongoImpl[models.Market]
	areaService *AreaService
}

// NewMarketService tạo mới MarketService
func NewMarketService() (*MarketService, error) {
	marketCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Markets)
	if !exist {
		return nil, fmt.Errorf("failed to get markets collection: %v", common.ErrNotFound)
	}

	areaService, err := NewAreaService()
	if err != nil {
		return nil, err
	}

	return &MarketService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Market](marketCollection),
		areaService:          areaService,
	}, nil
}

// InsertOne tạo chợ mới. Bất biến: areaId phải thuộc về đúng stateId.
func (s *MarketService) InsertOne(ctx context.Context, data models.Market) (models.Market, error) {
	if err := validateGeoPoint(data.Location); err != nil {
		return models.Market{}, err
	}
	if err := s.validateHierarchy(ctx, data.StateID, data.AreaID); err != nil {
		return models.Market{}, err
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// UpdateById cập nhật chợ. Nếu stateId hoặc areaId thay đổi thì kiểm tra lại
// bất biến areaId-thuộc-stateId trên cặp giá trị sau cập nhật.
func (s *MarketService) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (models.Market, error) {
	if updateData, ok := data.(*basesvc.UpdateData); ok && updateData != nil {
		newStateID, hasState := extractObjectID(updateData.Set, "stateId")
		newAreaID, hasArea := extractObjectID(updateData.Set, "areaId")

		if hasState || hasArea {
			current, err := s.FindOneById(ctx, id)
			if err != nil {
				return models.Market{}, err
			}
			if !hasState {
				newStateID = current.StateID
			}
			if !hasArea {
				newAreaID = current.AreaID
			}
			if err := s.validateHierarchy(ctx, newStateID, newAreaID); err != nil {
				return models.Market{}, err
			}
		}
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, data)
}

// ListByArea trả về tất cả chợ thuộc một khu vực.
func (s *MarketService) ListByArea(ctx context.Context, areaID primitive.ObjectID) ([]models.Market, error) {
	return s.Find(ctx, bson.M{"areaId": areaID}, nil)
}

// FindByCode tìm chợ theo mã code.
func (s *MarketService) FindByCode(ctx context.Context, code string) (models.Market, error) {
	return s.FindOne(ctx, bson.M{"code": code}, nil)
}

// validateHierarchy kiểm tra areaId có thuộc về đúng stateId không.
func (s *MarketService) validateHierarchy(ctx context.Context, stateID, areaID primitive.ObjectID) error {
	area, err := s.areaService.FindOne(ctx, bson.M{"_id": areaID}, nil)
	if err != nil {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Khu vực không tồn tại: "+areaID.Hex(),
			common.StatusBadRequest,
			nil,
		)
	}
	if area.StateID != stateID {
		return common.ErrLocationMismatch
	}
	return nil
}
