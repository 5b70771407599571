// Package reviewhdl - HTTP handler cho đánh giá.
package reviewhdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authhdl "github.com/MHYAnate/sureshops-api/internal/api/auth/handler"
	authmodels "github.com/MHYAnate/sureshops-api/internal/api/auth/models"
	basehdl "github.com/MHYAnate/sureshops-api/internal/api/base/handler"
	reviewdto "github.com/MHYAnate/sureshops-api/internal/api/review/dto"
	models "github.com/MHYAnate/sureshops-api/internal/api/review/models"
	reviewsvc "github.com/MHYAnate/sureshops-api/internal/api/review/service"
	"github.com/MHYAnate/sureshops-api/internal/common"
)

// ReviewHandler là cấu trúc chứa các phương thức xử lý request đánh giá
type ReviewHandler struct {
	basehdl.BaseHandler[models.Review, reviewdto.ReviewCreateInput, reviewdto.ReviewUpdateInput]
	ReviewService *reviewsvc.ReviewService
}

// NewReviewHandler tạo mới ReviewHandler
func NewReviewHandler() (*ReviewHandler, error) {
	reviewService, err := reviewsvc.NewReviewService()
	if err != nil {
		return nil, err
	}
	handler := &ReviewHandler{ReviewService: reviewService}
	handler.BaseService = reviewService
	return handler, nil
}

// currentUserName lấy tên hiển thị của user đang đăng nhập từ Locals.
func currentUserName(c fiber.Ctx) string {
	if user, ok := c.Locals("user").(*authmodels.User); ok && user != nil {
		return user.Name
	}
	return ""
}

// HandleCreateReview xử lý tạo đánh giá: POST /reviews
func (h *ReviewHandler) HandleCreateReview(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := authhdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(reviewdto.ReviewCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.TransformCreateInputToModel(input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		review, err := h.ReviewService.CreateReview(c.Context(), userID, currentUserName(c), *model)
		h.HandleResponse(c, review, err)
		return nil
	})
}

// HandleListByProduct xử lý danh sách đánh giá của một sản phẩm:
// GET /reviews/product/:productId
func (h *ReviewHandler) HandleListByProduct(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		productID, err := primitive.ObjectIDFromHex(c.Params("productId"))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.ReviewService.ListByProduct(c.Context(), productID, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleListByVendor xử lý danh sách đánh giá của một shop:
// GET /reviews/vendor/:vendorId
func (h *ReviewHandler) HandleListByVendor(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		vendorID, err := primitive.ObjectIDFromHex(c.Params("vendorId"))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.ReviewService.ListByVendor(c.Context(), vendorID, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleUpdateReview xử lý sửa đánh giá của mình: PATCH /reviews/:id
func (h *ReviewHandler) HandleUpdateReview(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := authhdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		reviewID, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		input := new(reviewdto.ReviewUpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		review, err := h.ReviewService.UpdateOwnReview(c.Context(), userID, reviewID, input.Rating, input.Comment)
		h.HandleResponse(c, review, err)
		return nil
	})
}

// HandleDeleteReview xử lý xóa đánh giá: DELETE /reviews/:id
// Chủ đánh giá hoặc admin.
func (h *ReviewHandler) HandleDeleteReview(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := authhdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		reviewID, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		isAdmin := c.Locals("user_role") == authmodels.RoleAdmin
		err = h.ReviewService.DeleteOwnReview(c.Context(), userID, reviewID, isAdmin)
		h.HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
		return nil
	})
}

// HandleMarkHelpful xử lý đánh dấu hữu ích: POST /reviews/:id/helpful
func (h *ReviewHandler) HandleMarkHelpful(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		reviewID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		err = h.ReviewService.MarkHelpful(c.Context(), reviewID)
		h.HandleResponse(c, fiber.Map{"helpful": err == nil}, err)
		return nil
	})
}
