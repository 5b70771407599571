// Package reviewsvc - service cho đánh giá sản phẩm và shop.
package reviewsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/MHYAnate/sureshops-api/internal/api/base/models"
	basesvc "github.com/MHYAnate/sureshops-api/internal/api/base/service"
	productmodels "github.com/MHYAnate/sureshops-api/internal/api/product/models"
	models "github.com/MHYAnate/sureshops-api/internal/api/review/models"
	"github.com/MHYAnate/sureshops-api/internal/common"
	"github.com/MHYAnate/sureshops-api/internal/global"
)

// ReviewService là cấu trúc chứa các phương thức liên quan đến đánh giá
type ReviewService struct {
	*basesvc.BaseServiceMongoImpl[models.Review]
	productCollection *mongo.Collection
	vendorCollection  *mongo.Collection
}

// NewReviewService tạo mới ReviewService
func NewReviewService() (*ReviewService, error) {
	reviewCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Reviews)
	if !exist {
		return nil, fmt.Errorf("failed to get reviews collection: %v", common.ErrNotFound)
	}
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	vendorCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Vendors)
	if !exist {
		return nil, fmt.Errorf("failed to get vendors collection: %v", common.ErrNotFound)
	}

	return &ReviewService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Review](reviewCollection),
		productCollection:    productCollection,
		vendorCollection:     vendorCollection,
	}, nil
}

// CreateReview tạo đánh giá mới. Đánh giá sản phẩm yêu cầu productId và
// snapshot vendorId từ listing; đánh giá shop yêu cầu vendorId.
// Mỗi user chỉ đánh giá một đối tượng một lần.
func (s *ReviewService) CreateReview(ctx context.Context, userID primitive.ObjectID, userName string, review models.Review) (models.Review, error) {
	switch review.ReviewType {
	case models.ReviewTypeProduct:
		if review.ProductID.IsZero() {
			return models.Review{}, common.NewError(common.ErrCodeValidationInput, "Thiếu productId cho đánh giá sản phẩm", common.StatusBadRequest, nil)
		}
		var product productmodels.Product
		err := s.productCollection.FindOne(ctx, bson.M{
			"_id":      review.ProductID,
			"isActive": true,
			"status":   productmodels.StatusApproved,
		}).Decode(&product)
		if err != nil {
			return models.Review{}, common.ConvertMongoError(err)
		}
		review.VendorID = product.VendorID

	case models.ReviewTypeVendor:
		if review.VendorID.IsZero() {
			return models.Review{}, common.NewError(common.ErrCodeValidationInput, "Thiếu vendorId cho đánh giá shop", common.StatusBadRequest, nil)
		}
		review.ProductID = primitive.NilObjectID
		count, err := s.vendorCollection.CountDocuments(ctx, bson.M{"_id": review.VendorID, "isActive": true})
		if err != nil {
			return models.Review{}, common.ConvertMongoError(err)
		}
		if count == 0 {
			return models.Review{}, common.ErrNotFound
		}

	default:
		return models.Review{}, common.ErrInvalidInput
	}

	dupFilter := bson.M{
		"reviewType": review.ReviewType,
		"userId":     userID,
	}
	if review.ReviewType == models.ReviewTypeProduct {
		dupFilter["productId"] = review.ProductID
	} else {
		dupFilter["vendorId"] = review.VendorID
	}
	exists, err := s.DocumentExists(ctx, dupFilter)
	if err != nil {
		return models.Review{}, err
	}
	if exists {
		return models.Review{}, common.ErrAlreadyReviewed
	}

	review.UserID = userID
	review.UserName = userName
	review.HelpfulCount = 0

	return s.InsertOne(ctx, review)
}

// newestFirst sort mặc định cho danh sách đánh giá.
func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

// ListByProduct trả về đánh giá của một sản phẩm, mới nhất trước.
func (s *ReviewService) ListByProduct(ctx context.Context, productID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[models.Review], error) {
	return s.FindWithPagination(ctx, bson.M{
		"reviewType": models.ReviewTypeProduct,
		"productId":  productID,
	}, page, limit, newestFirst())
}

// ListByVendor trả về đánh giá trực tiếp của một shop, mới nhất trước.
func (s *ReviewService) ListByVendor(ctx context.Context, vendorID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[models.Review], error) {
	return s.FindWithPagination(ctx, bson.M{
		"reviewType": models.ReviewTypeVendor,
		"vendorId":   vendorID,
	}, page, limit, newestFirst())
}

// requireOwnership đảm bảo review thuộc về user hiện tại.
func (s *ReviewService) requireOwnership(ctx context.Context, userID, reviewID primitive.ObjectID) (models.Review, error) {
	review, err := s.FindOneById(ctx, reviewID)
	if err != nil {
		return models.Review{}, err
	}
	if review.UserID != userID {
		return models.Review{}, common.ErrNotOwner
	}
	return review, nil
}

// UpdateOwnReview sửa đánh giá của chính user hiện tại.
func (s *ReviewService) UpdateOwnReview(ctx context.Context, userID, reviewID primitive.ObjectID, rating int64, comment string) (models.Review, error) {
	if _, err := s.requireOwnership(ctx, userID, reviewID); err != nil {
		return models.Review{}, err
	}

	update := &basesvc.UpdateData{Set: map[string]interface{}{}}
	if rating >= 1 && rating <= 5 {
		update.Set["rating"] = rating
	}
	if comment != "" {
		update.Set["comment"] = comment
	}
	if len(update.Set) == 0 {
		return s.FindOneById(ctx, reviewID)
	}
	return s.UpdateById(ctx, reviewID, update)
}

// DeleteOwnReview xóa đánh giá của chính user hiện tại. Admin xóa được
// đánh giá bất kỳ (isAdmin=true).
func (s *ReviewService) DeleteOwnReview(ctx context.Context, userID, reviewID primitive.ObjectID, isAdmin bool) error {
	if !isAdmin {
		if _, err := s.requireOwnership(ctx, userID, reviewID); err != nil {
			return err
		}
	}
	return s.DeleteById(ctx, reviewID)
}

// MarkHelpful tăng bộ đếm "hữu ích" của một đánh giá.
func (s *ReviewService) MarkHelpful(ctx context.Context, reviewID primitive.ObjectID) error {
	result, err := s.Collection().UpdateOne(ctx,
		bson.M{"_id": reviewID},
		bson.M{"$inc": bson.M{"helpfulCount": 1}, "$set": bson.M{"updatedAt": time.Now().UnixMilli()}},
	)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// VendorRatingStats tính rating trung bình và số đánh giá của một shop,
// gộp cả đánh giá shop lẫn đánh giá sản phẩm của shop đó.
// Worker nền gọi hàm này sau mỗi thay đổi trên collection reviews.
func (s *ReviewService) VendorRatingStats(ctx context.Context, vendorID primitive.ObjectID) (float64, int64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"vendorId": vendorID}},
		{"$group": bson.M{
			"_id":    nil,
			"rating": bson.M{"$avg": "$rating"},
			"count":  bson.M{"$sum": 1},
		}},
	}
	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Rating float64 `bson:"rating"`
		Count  int64   `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, 0, common.ConvertMongoError(err)
	}
	if len(rows) == 0 {
		return 0, 0, nil
	}
	// Làm tròn 1 chữ số cho hiển thị.
	rounded := float64(int64(rows[0].Rating*10+0.5)) / 10
	logrus.WithFields(logrus.Fields{
		"vendorId": vendorID.Hex(),
		"rating":   rounded,
		"count":    rows[0].Count,
	}).Debug("Tính lại rating shop")
	return rounded, rows[0].Count, nil
}
