// Package productsvc - service cho listing sản phẩm.
package productsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/MHYAnate/sureshops-api/internal/api/base/service"
	catalogsvc "github.com/MHYAnate/sureshops-api/internal/api/catalog/service"
	models "github.com/MHYAnate/sureshops-api/internal/api/product/models"
	vendorsvc "github.com/MHYAnate/sureshops-api/internal/api/vendors/service"
	"github.com/MHYAnate/sureshops-api/internal/common"
	"github.com/MHYAnate/sureshops-api/internal/global"
)

// ProductService là cấu trúc chứa các phương thức liên quan đến listing sản phẩm
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
	vendorService  *vendorsvc.VendorService
	catalogService *catalogsvc.CatalogItemService
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}

	vendorService, err := vendorsvc.NewVendorService()
	if err != nil {
		return nil, err
	}
	catalogService, err := catalogsvc.NewCatalogItemService()
	if err != nil {
		return nil, err
	}

	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](productCollection),
		vendorService:        vendorService,
		catalogService:       catalogService,
	}, nil
}

// CreateListing tạo listing mới cho shop của user đang đăng nhập:
//   - shop phải tồn tại và đang hoạt động,
//   - liên kết catalog theo sku trước, không có thì thử barcode,
//   - snapshot stateId/areaId/marketId/location copy từ vendor,
//   - tăng totalProducts của vendor.
func (s *ProductService) CreateListing(ctx context.Context, userID primitive.ObjectID, product models.Product) (models.Product, error) {
	vendor, err := s.vendorService.FindByUser(ctx, userID)
	if err != nil {
		return models.Product{}, common.NewError(
			common.ErrCodeBusinessOperation,
			"Bạn chưa đăng ký shop. Đăng ký shop trước khi đăng sản phẩm.",
			common.StatusBadRequest,
			nil,
		)
	}
	if !vendor.IsActive {
		return models.Product{}, common.ErrVendorInactive
	}

	product.VendorID = vendor.ID

	// Snapshot địa bàn từ vendor - không tự sync khi vendor chuyển chỗ
	product.StateID = vendor.StateID
	product.AreaID = vendor.AreaID
	product.MarketID = vendor.MarketID
	product.Location = vendor.Location

	// Liên kết catalog: sku trước, barcode sau
	catalogItemID, err := s.catalogService.FindBySKUOrBarcode(ctx, product.SKU, product.Barcode)
	if err == nil && !catalogItemID.IsZero() {
		product.CatalogItemID = catalogItemID
	}

	if product.Quantity > 0 {
		product.InStock = true
	}

	created, err := s.InsertOne(ctx, product)
	if err != nil {
		return models.Product{}, err
	}

	if err := s.vendorService.IncrementProductCount(ctx, vendor.ID); err != nil {
		logrus.WithField("vendor_id", vendor.ID.Hex()).WithError(err).Warn("CreateListing: Không thể tăng totalProducts")
	}

	return created, nil
}

// GetPublicById trả về sản phẩm approved+active theo id, tăng views best-effort.
func (s *ProductService) GetPublicById(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	product, err := s.FindOne(ctx, bson.M{
		"_id":      id,
		"isActive": true,
		"status":   models.StatusApproved,
	}, nil)
	if err != nil {
		return models.Product{}, err
	}

	go s.incrementCounter(id, "views")

	return product, nil
}

// ListByVendor trả về các listing của một shop (mọi trạng thái, cho chủ shop).
func (s *ProductService) ListByVendor(ctx context.Context, vendorID primitive.ObjectID) ([]models.Product, error) {
	products, err := s.Find(ctx, bson.M{"vendorId": vendorID}, nil)
	if products == nil {
		products = []models.Product{}
	}
	return products, err
}

// requireOwnership trả về product nếu nó thuộc shop của user, ngược lại ErrNotOwner.
func (s *ProductService) requireOwnership(ctx context.Context, userID, productID primitive.ObjectID) (models.Product, error) {
	product, err := s.FindOneById(ctx, productID)
	if err != nil {
		return models.Product{}, err
	}

	vendor, err := s.vendorService.FindByUser(ctx, userID)
	if err != nil || vendor.ID != product.VendorID {
		return models.Product{}, common.ErrNotOwner
	}
	return product, nil
}

// UpdateListing cập nhật listing với kiểm tra quyền sở hữu.
func (s *ProductService) UpdateListing(ctx context.Context, userID, productID primitive.ObjectID, updateData *basesvc.UpdateData) (models.Product, error) {
	if _, err := s.requireOwnership(ctx, userID, productID); err != nil {
		return models.Product{}, err
	}
	return s.UpdateById(ctx, productID, updateData)
}

// DeleteListing xóa listing với kiểm tra quyền sở hữu và giảm totalProducts của vendor.
func (s *ProductService) DeleteListing(ctx context.Context, userID, productID primitive.ObjectID) error {
	product, err := s.requireOwnership(ctx, userID, productID)
	if err != nil {
		return err
	}

	if err := s.DeleteById(ctx, productID); err != nil {
		return err
	}

	if err := s.vendorService.DecrementProductCount(ctx, product.VendorID); err != nil {
		logrus.WithField("vendor_id", product.VendorID.Hex()).WithError(err).Warn("DeleteListing: Không thể giảm totalProducts")
	}
	return nil
}

// TransitionStatus chuyển trạng thái sản phẩm theo đồ thị vòng đời.
// requireOwner = true khi vendor tự chuyển (hết hàng, ngừng bán); admin truyền false.
func (s *ProductService) TransitionStatus(ctx context.Context, userID, productID primitive.ObjectID, newStatus string, requireOwner bool) (models.Product, error) {
	var product models.Product
	var err error
	if requireOwner {
		product, err = s.requireOwnership(ctx, userID, productID)
	} else {
		product, err = s.FindOneById(ctx, productID)
	}
	if err != nil {
		return models.Product{}, err
	}

	if !models.CanTransitionStatus(product.Status, newStatus) {
		return models.Product{}, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Không thể chuyển trạng thái từ '%s' sang '%s'", product.Status, newStatus),
			common.StatusBadRequest,
			nil,
		)
	}

	set := map[string]interface{}{"status": newStatus}
	if newStatus == models.StatusOutOfStock {
		set["inStock"] = false
	}

	return s.UpdateById(ctx, productID, &basesvc.UpdateData{Set: set})
}

// ResyncLocationFromVendor copy lại snapshot địa bàn cho toàn bộ listing
// của một vendor (gọi khi vendor chuyển địa bàn). Thao tác tường minh,
// không chạy tự động.
func (s *ProductService) ResyncLocationFromVendor(ctx context.Context, vendorID primitive.ObjectID) (int64, error) {
	vendor, err := s.vendorService.FindOneById(ctx, vendorID)
	if err != nil {
		return 0, err
	}

	set := bson.M{
		"stateId":   vendor.StateID,
		"areaId":    vendor.AreaID,
		"updatedAt": time.Now().UnixMilli(),
	}
	unset := bson.M{}
	if vendor.MarketID.IsZero() {
		unset["marketId"] = ""
	} else {
		set["marketId"] = vendor.MarketID
	}
	if vendor.Location == nil {
		unset["location"] = ""
	} else {
		set["location"] = vendor.Location
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	result, err := s.Collection().UpdateMany(ctx, bson.M{"vendorId": vendorID}, update)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.ModifiedCount, nil
}

// LinkedPrices trả về danh sách giá của các product active+approved
// đang liên kết tới một catalog item. Worker dùng để tính lại price stats.
func (s *ProductService) LinkedPrices(ctx context.Context, catalogItemID primitive.ObjectID) ([]float64, error) {
	products, err := s.Find(ctx, bson.M{
		"catalogItemId": catalogItemID,
		"isActive":      true,
		"status":        models.StatusApproved,
	}, nil)
	if err != nil {
		return nil, err
	}

	prices := make([]float64, 0, len(products))
	for _, p := range products {
		prices = append(prices, p.Price)
	}
	return prices, nil
}

// incrementCounter tăng một counter best-effort, lỗi chỉ log không propagate.
func (s *ProductService) incrementCounter(productID primitive.ObjectID, field string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.Collection().UpdateOne(ctx, bson.M{"_id": productID}, bson.M{
		"$inc": bson.M{field: 1},
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"product_id": productID.Hex(),
			"field":      field,
		}).WithError(err).Warn("incrementCounter: Không thể tăng counter")
	}
}
