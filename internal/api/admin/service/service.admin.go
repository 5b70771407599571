// Package adminsvc - service cho nghiệp vụ quản trị: duyệt sản phẩm,
// xác minh shop và số liệu nền tảng.
package adminsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	admindto "github.com/MHYAnate/sureshops-api/internal/api/admin/dto"
	authmodels "github.com/MHYAnate/sureshops-api/internal/api/auth/models"
	basemodels "github.com/MHYAnate/sureshops-api/internal/api/base/models"
	basesvc "github.com/MHYAnate/sureshops-api/internal/api/base/service"
	productmodels "github.com/MHYAnate/sureshops-api/internal/api/product/models"
	productsvc "github.com/MHYAnate/sureshops-api/internal/api/product/service"
	vendorsvc "github.com/MHYAnate/sureshops-api/internal/api/vendors/service"
	"github.com/MHYAnate/sureshops-api/internal/common"
	"github.com/MHYAnate/sureshops-api/internal/global"
	"github.com/MHYAnate/sureshops-api/internal/utility"
)

// AdminService là cấu trúc chứa các phương thức quản trị
type AdminService struct {
	productService *productsvc.ProductService
	vendorService  *vendorsvc.VendorService

	userCollection   *mongo.Collection
	vendorCollection *mongo.Collection
	reviewCollection *mongo.Collection
	stateCollection  *mongo.Collection
	areaCollection   *mongo.Collection
	marketCollection *mongo.Collection

	mailer *utility.Mailer
}

// NewAdminService tạo mới AdminService
func NewAdminService() (*AdminService, error) {
	productService, err := productsvc.NewProductService()
	if err != nil {
		return nil, err
	}
	vendorService, err := vendorsvc.NewVendorService()
	if err != nil {
		return nil, err
	}

	collections := map[string]**mongo.Collection{}
	service := &AdminService{
		productService: productService,
		vendorService:  vendorService,
		mailer:         utility.NewMailer(global.MongoDB_ServerConfig),
	}
	collections[global.MongoDB_ColNames.Users] = &service.userCollection
	collections[global.MongoDB_ColNames.Vendors] = &service.vendorCollection
	collections[global.MongoDB_ColNames.Reviews] = &service.reviewCollection
	collections[global.MongoDB_ColNames.States] = &service.stateCollection
	collections[global.MongoDB_ColNames.Areas] = &service.areaCollection
	collections[global.MongoDB_ColNames.Markets] = &service.marketCollection

	for name, dest := range collections {
		collection, exist := global.RegistryCollections.Get(name)
		if !exist {
			return nil, fmt.Errorf("failed to get %s collection: %v", name, common.ErrNotFound)
		}
		*dest = collection
	}

	return service, nil
}

// ListPendingProducts trả về các sản phẩm đang chờ duyệt, cũ nhất trước
// để hàng chờ được xử lý theo thứ tự gửi lên.
func (s *AdminService) ListPendingProducts(ctx context.Context, page, limit int64) (*basemodels.PaginateResult[productmodels.Product], error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return s.productService.FindWithPagination(ctx, bson.M{
		"status":   productmodels.StatusPending,
		"isActive": true,
	}, page, limit, opts)
}

// ApproveProduct duyệt một sản phẩm đang chờ. Vendor được báo qua email
// (best-effort, không chặn response).
func (s *AdminService) ApproveProduct(ctx context.Context, productID primitive.ObjectID) (productmodels.Product, error) {
	product, err := s.productService.TransitionStatus(ctx, primitive.NilObjectID, productID, productmodels.StatusApproved, false)
	if err != nil {
		return productmodels.Product{}, err
	}

	if product.ModerationNote != "" {
		product, err = s.productService.UpdateById(ctx, productID, &basesvc.UpdateData{
			Unset: map[string]interface{}{"moderationNote": ""},
		})
		if err != nil {
			return productmodels.Product{}, err
		}
	}

	s.notifyModerationOutcome(product, "Sản phẩm đã được duyệt",
		fmt.Sprintf("<p>Sản phẩm <b>%s</b> của bạn đã được duyệt và xuất hiện trong kết quả tìm kiếm.</p>", product.Name))
	return product, nil
}

// RejectProduct từ chối một sản phẩm đang chờ, kèm lý do cho vendor.
func (s *AdminService) RejectProduct(ctx context.Context, productID primitive.ObjectID, reason string) (productmodels.Product, error) {
	product, err := s.productService.TransitionStatus(ctx, primitive.NilObjectID, productID, productmodels.StatusRejected, false)
	if err != nil {
		return productmodels.Product{}, err
	}

	product, err = s.productService.UpdateById(ctx, productID, &basesvc.UpdateData{
		Set: map[string]interface{}{"moderationNote": reason},
	})
	if err != nil {
		return productmodels.Product{}, err
	}

	s.notifyModerationOutcome(product, "Sản phẩm bị từ chối",
		fmt.Sprintf("<p>Sản phẩm <b>%s</b> của bạn bị từ chối.</p><p>Lý do: %s</p><p>Bạn có thể chỉnh sửa và gửi duyệt lại.</p>", product.Name, reason))
	return product, nil
}

// SetVendorVerified bật/tắt trạng thái đã xác minh của một shop.
func (s *AdminService) SetVendorVerified(ctx context.Context, vendorID primitive.ObjectID, verified bool) error {
	_, err := s.vendorService.UpdateById(ctx, vendorID, &basesvc.UpdateData{
		Set: map[string]interface{}{"isVerified": verified},
	})
	if err == nil {
		logrus.WithFields(logrus.Fields{"vendorId": vendorID.Hex(), "verified": verified}).Info("Cập nhật trạng thái xác minh shop")
	}
	return err
}

// SetVendorFeatured bật/tắt trạng thái nổi bật của một shop.
func (s *AdminService) SetVendorFeatured(ctx context.Context, vendorID primitive.ObjectID, featured bool) error {
	_, err := s.vendorService.UpdateById(ctx, vendorID, &basesvc.UpdateData{
		Set: map[string]interface{}{"isFeatured": featured},
	})
	return err
}

// PlatformStats tổng hợp số liệu nền tảng cho dashboard quản trị.
func (s *AdminService) PlatformStats(ctx context.Context) (*admindto.PlatformStats, error) {
	stats := &admindto.PlatformStats{GeneratedAt: time.Now().UnixMilli()}

	counts := []struct {
		collection *mongo.Collection
		filter     bson.M
		dest       *int64
	}{
		{s.userCollection, bson.M{}, &stats.TotalUsers},
		{s.vendorCollection, bson.M{}, &stats.TotalVendors},
		{s.vendorCollection, bson.M{"isActive": true}, &stats.ActiveVendors},
		{s.vendorCollection, bson.M{"isActive": true, "isVerified": true}, &stats.VerifiedVendors},
		{s.productService.Collection(), bson.M{"isActive": true}, &stats.TotalProducts},
		{s.reviewCollection, bson.M{}, &stats.TotalReviews},
		{s.stateCollection, bson.M{}, &stats.TotalStates},
		{s.areaCollection, bson.M{}, &stats.TotalAreas},
		{s.marketCollection, bson.M{}, &stats.TotalMarkets},
	}
	for _, c := range counts {
		count, err := c.collection.CountDocuments(ctx, c.filter)
		if err != nil {
			return nil, common.ConvertMongoError(err)
		}
		*c.dest = count
	}

	cursor, err := s.productService.Collection().Aggregate(ctx, []bson.M{
		{"$match": bson.M{"isActive": true}},
		{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.D{{Key: "count", Value: -1}}},
	})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &stats.ProductsByStatus); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if stats.ProductsByStatus == nil {
		stats.ProductsByStatus = []admindto.StatusCount{}
	}

	return stats, nil
}

// notifyModerationOutcome gửi email kết quả kiểm duyệt cho chủ shop.
// Chạy nền, lỗi chỉ log.
func (s *AdminService) notifyModerationOutcome(product productmodels.Product, subject, body string) {
	if !s.mailer.Enabled() {
		return
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		vendor, err := s.vendorService.FindOneById(bgCtx, product.VendorID)
		if err != nil {
			logrus.WithError(err).Warn("Không tìm thấy shop để gửi email kiểm duyệt")
			return
		}

		var owner authmodels.User
		if err := s.userCollection.FindOne(bgCtx, bson.M{"_id": vendor.UserID}).Decode(&owner); err != nil {
			logrus.WithError(err).Warn("Không tìm thấy chủ shop để gửi email kiểm duyệt")
			return
		}

		if err := s.mailer.Send(owner.Email, subject, body); err != nil {
			logrus.WithError(err).WithField("recipient", owner.Email).Warn("Gửi email kiểm duyệt thất bại")
		}
	}()
}
