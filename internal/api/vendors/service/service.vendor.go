// Package vendorsvc - service cho shop/người bán.
package vendorsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "github.com/MHYAnate/sureshops-api/internal/api/base/service"
	geosvc "github.com/MHYAnate/sureshops-api/internal/api/geo/service"
	models "github.com/MHYAnate/sureshops-api/internal/api/vendors/models"
	"github.com/MHYAnate/sureshops-api/internal/common"
	"github.com/MHYAnate/sureshops-api/internal/global"
)

// VendorService là cấu trúc chứa các phương thức liên quan đến shop
type VendorService struct {
	*basesvc.BaseServiceMongoImpl[models.Vendor]
	areaService       *geosvc.AreaService
	marketService     *geosvc.MarketService
	productCollection *mongo.Collection // Truy vấn aggregate giá, tránh import cycle với domain product
}

// NewVendorService tạo mới VendorService
func NewVendorService() (*VendorService, error) {
	vendorCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Vendors)
	if !exist {
		return nil, fmt.Errorf("failed to get vendors collection: %v", common.ErrNotFound)
	}
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}

	areaService, err := geosvc.NewAreaService()
	if err != nil {
		return nil, err
	}
	marketService, err := geosvc.NewMarketService()
	if err != nil {
		return nil, err
	}

	return &VendorService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Vendor](vendorCollection),
		areaService:          areaService,
		marketService:        marketService,
		productCollection:    productCollection,
	}, nil
}

// RegisterShop đăng ký shop mới cho một user. Mỗi user chỉ có đúng một shop.
func (s *VendorService) RegisterShop(ctx context.Context, userID primitive.ObjectID, vendor models.Vendor) (models.Vendor, error) {
	exists, err := s.DocumentExists(ctx, bson.M{"userId": userID})
	if err != nil {
		return models.Vendor{}, err
	}
	if exists {
		return models.Vendor{}, common.ErrVendorExists
	}

	if vendor.ContactDetails.Phone == "" {
		return models.Vendor{}, common.NewError(
			common.ErrCodeValidationInput,
			"Số điện thoại liên hệ của shop là bắt buộc",
			common.StatusBadRequest,
			nil,
		)
	}

	if err := s.validateHierarchy(ctx, vendor.StateID, vendor.AreaID, vendor.MarketID); err != nil {
		return models.Vendor{}, err
	}

	vendor.UserID = userID
	return s.InsertOne(ctx, vendor)
}

// FindByUser tìm shop theo user sở hữu.
func (s *VendorService) FindByUser(ctx context.Context, userID primitive.ObjectID) (models.Vendor, error) {
	return s.FindOne(ctx, bson.M{"userId": userID}, nil)
}

// GetPublicById trả về shop đang hoạt động theo id và tăng totalViews
// (best-effort, không chặn response).
func (s *VendorService) GetPublicById(ctx context.Context, id primitive.ObjectID) (models.Vendor, error) {
	vendor, err := s.FindOneById(ctx, id)
	if err != nil {
		return models.Vendor{}, err
	}
	if !vendor.IsActive {
		return models.Vendor{}, common.ErrVendorInactive
	}

	go s.incrementCounter(id, "totalViews")

	return vendor, nil
}

// UpdateShop cập nhật shop, kiểm tra lại phân cấp địa lý nếu địa bàn thay đổi.
func (s *VendorService) UpdateShop(ctx context.Context, vendorID primitive.ObjectID, updateData *basesvc.UpdateData) (models.Vendor, error) {
	newStateID, hasState := extractObjectID(updateData.Set, "stateId")
	newAreaID, hasArea := extractObjectID(updateData.Set, "areaId")
	newMarketID, hasMarket := extractObjectID(updateData.Set, "marketId")

	if hasState || hasArea || hasMarket {
		current, err := s.FindOneById(ctx, vendorID)
		if err != nil {
			return models.Vendor{}, err
		}
		if !hasState {
			newStateID = current.StateID
		}
		if !hasArea {
			newAreaID = current.AreaID
		}
		if !hasMarket {
			newMarketID = current.MarketID
		}
		if err := s.validateHierarchy(ctx, newStateID, newAreaID, newMarketID); err != nil {
			return models.Vendor{}, err
		}
	}

	return s.UpdateById(ctx, vendorID, updateData)
}

// Deactivate ngừng hoạt động shop (soft delete).
// Product của shop được giữ nguyên nhưng bị loại khỏi mọi kết quả tìm kiếm
// bởi filter vendor-inactive ở tầng search.
func (s *VendorService) Deactivate(ctx context.Context, vendorID primitive.ObjectID) (models.Vendor, error) {
	return s.UpdateById(ctx, vendorID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isActive": false,
			"isOpen":   false,
		},
	})
}

// IncrementProductCount tăng totalProducts của shop thêm 1.
func (s *VendorService) IncrementProductCount(ctx context.Context, vendorID primitive.ObjectID) error {
	return s.adjustProductCount(ctx, vendorID, 1)
}

// DecrementProductCount giảm totalProducts của shop đi 1 (không xuống dưới 0).
func (s *VendorService) DecrementProductCount(ctx context.Context, vendorID primitive.ObjectID) error {
	return s.adjustProductCount(ctx, vendorID, -1)
}

func (s *VendorService) adjustProductCount(ctx context.Context, vendorID primitive.ObjectID, delta int64) error {
	filter := bson.M{"_id": vendorID}
	if delta < 0 {
		// Không cho counter âm
		filter["totalProducts"] = bson.M{"$gt": 0}
	}
	_, err := s.Collection().UpdateOne(ctx, filter, bson.M{
		"$inc": bson.M{"totalProducts": delta},
		"$set": bson.M{"updatedAt": time.Now().UnixMilli()},
	})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// UpdatePriceRange tính lại khoảng giá min/max của shop từ các product
// active+approved đang có. Không có product nào thì cả hai về 0.
func (s *VendorService) UpdatePriceRange(ctx context.Context, vendorID primitive.ObjectID) error {
	pipeline := []bson.M{
		{"$match": bson.M{
			"vendorId": vendorID,
			"isActive": true,
			"status":   "approved",
		}},
		{"$group": bson.M{
			"_id": nil,
			"minPrice": bson.M{"$min": "$price"},
			"maxPrice": bson.M{"$max": "$price"},
		}},
	}

	cursor, err := s.productCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	minPrice, maxPrice := 0.0, 0.0
	if cursor.Next(ctx) {
		var result struct {
			MinPrice float64 `bson:"minPrice"`
			MaxPrice float64 `bson:"maxPrice"`
		}
		if err := cursor.Decode(&result); err != nil {
			return common.ConvertMongoError(err)
		}
		minPrice, maxPrice = result.MinPrice, result.MaxPrice
	}

	_, err = s.UpdateById(ctx, vendorID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"minProductPrice": minPrice,
			"maxProductPrice": maxPrice,
		},
	})
	return err
}

// UpdateRating cập nhật rating trung bình và số lượng đánh giá của shop.
func (s *VendorService) UpdateRating(ctx context.Context, vendorID primitive.ObjectID, rating float64, reviewCount int64) error {
	_, err := s.UpdateById(ctx, vendorID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"rating":      rating,
			"reviewCount": reviewCount,
		},
	})
	return err
}

// incrementCounter tăng một counter best-effort, lỗi chỉ log không propagate.
func (s *VendorService) incrementCounter(vendorID primitive.ObjectID, field string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.Collection().UpdateOne(ctx, bson.M{"_id": vendorID}, bson.M{
		"$inc": bson.M{field: 1},
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"vendor_id": vendorID.Hex(),
			"field":     field,
		}).WithError(err).Warn("incrementCounter: Không thể tăng counter")
	}
}

// validateHierarchy kiểm tra area thuộc state, và market (nếu có) thuộc đúng area+state.
func (s *VendorService) validateHierarchy(ctx context.Context, stateID, areaID, marketID primitive.ObjectID) error {
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

	if !marketID.IsZero() {
		market, err := s.marketService.FindOne(ctx, bson.M{"_id": marketID}, nil)
		if err != nil {
			return common.NewError(
				common.ErrCodeValidationInput,
				"Chợ không tồn tại: "+marketID.Hex(),
				common.StatusBadRequest,
				nil,
			)
		}
		if market.AreaID != areaID || market.StateID != stateID {
			return common.ErrLocationMismatch
		}
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
