// Package catalogsvc - service cho catalog chuẩn.
package catalogsvc

import (
	"context"
	"fmt"
	"math"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/MHYAnate/sureshops-api/internal/api/base/service"
	models "github.com/MHYAnate/sureshops-api/internal/api/catalog/models"
	"github.com/MHYAnate/sureshops-api/internal/common"
	"github.com/MHYAnate/sureshops-api/internal/global"
)

// CatalogItemService là cấu trúc chứa các phương thức liên quan đến catalog chuẩn
type CatalogItemService struct {
	*basesvc.BaseServiceMongoImpl[models.CatalogItem]
}

// NewCatalogItemService tạo mới CatalogItemService
func NewCatalogItemService() (*CatalogItemService, error) {
	catalogCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CatalogItems)
	if !exist {
		return nil, fmt.Errorf("failed to get catalog_items collection: %v", common.ErrNotFound)
	}

	return &CatalogItemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.CatalogItem](catalogCollection),
	}, nil
}

// InsertOne tạo catalog item mới, từ chối khi sku/barcode đã tồn tại.
func (s *CatalogItemService) InsertOne(ctx context.Context, data models.CatalogItem) (models.CatalogItem, error) {
	if data.SKU != "" {
		exists, err := s.DocumentExists(ctx, bson.M{"sku": data.SKU})
		if err != nil {
			return models.CatalogItem{}, err
		}
		if exists {
			return models.CatalogItem{}, common.ErrCatalogDuplicate
		}
	}
	if data.Barcode != "" {
		exists, err := s.DocumentExists(ctx, bson.M{"barcode": data.Barcode})
		if err != nil {
			return models.CatalogItem{}, err
		}
		if exists {
			return models.CatalogItem{}, common.ErrCatalogDuplicate
		}
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// FindBySKU tìm catalog item theo SKU.
func (s *CatalogItemService) FindBySKU(ctx context.Context, sku string) (models.CatalogItem, error) {
	return s.FindOne(ctx, bson.M{"sku": sku}, nil)
}

// FindByBarcode tìm catalog item theo barcode.
func (s *CatalogItemService) FindByBarcode(ctx context.Context, barcode string) (models.CatalogItem, error) {
	return s.FindOne(ctx, bson.M{"barcode": barcode}, nil)
}

// FindBySKUOrBarcode tìm catalog item để liên kết khi tạo product:
// ưu tiên khớp SKU, không có thì thử barcode. Trả về NilObjectID khi không khớp.
func (s *CatalogItemService) FindBySKUOrBarcode(ctx context.Context, sku, barcode string) (primitive.ObjectID, error) {
	if sku != "" {
		item, err := s.FindBySKU(ctx, sku)
		if err == nil {
			return item.ID, nil
		}
	}
	if barcode != "" {
		item, err := s.FindByBarcode(ctx, barcode)
		if err == nil {
			return item.ID, nil
		}
	}
	return primitive.NilObjectID, nil
}

// SearchByName tìm catalog item theo tên (regex không phân biệt hoa thường).
func (s *CatalogItemService) SearchByName(ctx context.Context, name string) ([]models.CatalogItem, error) {
	filter := bson.M{
		"name": bson.M{"$regex": regexp.QuoteMeta(name), "$options": "i"},
	}
	items, err := s.Find(ctx, filter, nil)
	if items == nil {
		items = []models.CatalogItem{}
	}
	return items, err
}

// ListCategories trả về danh sách category duy nhất trong catalog.
func (s *CatalogItemService) ListCategories(ctx context.Context) ([]interface{}, error) {
	return s.Distinct(ctx, "category", bson.M{})
}

// ComputePriceStats tính min/max/avg từ danh sách giá.
// Avg làm tròn 2 chữ số thập phân. Danh sách rỗng trả về toàn zero.
func ComputePriceStats(prices []float64) (lowest, highest, average float64, total int64) {
	if len(prices) == 0 {
		return 0, 0, 0, 0
	}
	lowest = prices[0]
	highest = prices[0]
	sum := 0.0
	for _, p := range prices {
		if p < lowest {
			lowest = p
		}
		if p > highest {
			highest = p
		}
		sum += p
	}
	average = math.Round(sum/float64(len(prices))*100) / 100
	return lowest, highest, average, int64(len(prices))
}

// UpdatePriceStats cập nhật aggregate giá của một catalog item từ danh sách
// giá các product active+approved đang liên kết.
func (s *CatalogItemService) UpdatePriceStats(ctx context.Context, id primitive.ObjectID, prices []float64) error {
	lowest, highest, average, total := ComputePriceStats(prices)

	_, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"lowestPrice":   lowest,
			"highestPrice":  highest,
			"averagePrice":  average,
			"totalListings": total,
		},
	})
	return err
}
