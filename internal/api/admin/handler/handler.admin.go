// Package adminhdl - HTTP handler cho nghiệp vụ quản trị.
package adminhdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	admindto "github.com/MHYAnate/sureshops-api/internal/api/admin/dto"
	adminsvc "github.com/MHYAnate/sureshops-api/internal/api/admin/service"
	basehdl "github.com/MHYAnate/sureshops-api/internal/api/base/handler"
	productdto "github.com/MHYAnate/sureshops-api/internal/api/product/dto"
	productmodels "github.com/MHYAnate/sureshops-api/internal/api/product/models"
	"github.com/MHYAnate/sureshops-api/internal/common"
	"github.com/MHYAnate/sureshops-api/internal/logger"
)

// AdminHandler là cấu trúc chứa các phương thức xử lý request quản trị
type AdminHandler struct {
	basehdl.BaseHandler[productmodels.Product, productdto.ProductCreateInput, productdto.ProductUpdateInput]
	AdminService *adminsvc.AdminService
}

// NewAdminHandler tạo mới AdminHandler
func NewAdminHandler() (*AdminHandler, error) {
	adminService, err := adminsvc.NewAdminService()
	if err != nil {
		return nil, err
	}
	return &AdminHandler{AdminService: adminService}, nil
}

// HandleListPendingProducts xử lý hàng chờ duyệt: GET /admin/products/pending
func (h *AdminHandler) HandleListPendingProducts(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		result, err := h.AdminService.ListPendingProducts(c.Context(), page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleApproveProduct xử lý duyệt sản phẩm: POST /admin/products/:id/approve
func (h *AdminHandler) HandleApproveProduct(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		productID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		product, err := h.AdminService.ApproveProduct(c.Context(), productID)
		logger.LogModeration("product_approve", productID.Hex(), c, map[string]interface{}{
			"success": err == nil,
		})
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleRejectProduct xử lý từ chối sản phẩm: POST /admin/products/:id/reject
func (h *AdminHandler) HandleRejectProduct(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		productID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		input := new(admindto.ProductRejectInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		product, err := h.AdminService.RejectProduct(c.Context(), productID, input.Reason)
		logger.LogModeration("product_reject", productID.Hex(), c, map[string]interface{}{
			"reason":  input.Reason,
			"success": err == nil,
		})
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleVerifyVendor xử lý xác minh shop: POST /admin/vendors/:id/verify
func (h *AdminHandler) HandleVerifyVendor(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		vendorID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		input := new(admindto.VendorVerifyInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.AdminService.SetVendorVerified(c.Context(), vendorID, input.Verified)
		h.HandleResponse(c, fiber.Map{"verified": input.Verified}, err)
		return nil
	})
}

// HandleFeatureVendor xử lý gắn shop nổi bật: POST /admin/vendors/:id/feature
func (h *AdminHandler) HandleFeatureVendor(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		vendorID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		input := new(admindto.VendorFeatureInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.AdminService.SetVendorFeatured(c.Context(), vendorID, input.Featured)
		h.HandleResponse(c, fiber.Map{"featured": input.Featured}, err)
		return nil
	})
}

// HandlePlatformStats xử lý số liệu nền tảng: GET /admin/stats
func (h *AdminHandler) HandlePlatformStats(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		stats, err := h.AdminService.PlatformStats(c.Context())
		h.HandleResponse(c, stats, err)
		return nil
	})
}
