// Package vendorhdl - handler cho shop/người bán.
package vendorhdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authhdl "github.com/MHYAnate/sureshops-api/internal/api/auth/handler"
	basehdl "github.com/MHYAnate/sureshops-api/internal/api/base/handler"
	vendordto "github.com/MHYAnate/sureshops-api/internal/api/vendors/dto"
	models "github.com/MHYAnate/sureshops-api/internal/api/vendors/models"
	vendorsvc "github.com/MHYAnate/sureshops-api/internal/api/vendors/service"
	"github.com/MHYAnate/sureshops-api/internal/common"
)

// VendorHandler xử lý các request liên quan đến shop
type VendorHandler struct {
	basehdl.BaseHandler[models.Vendor, vendordto.VendorRegisterInput, vendordto.VendorUpdateInput]
	VendorService *vendorsvc.VendorService
}

// NewVendorHandler tạo mới VendorHandler
func NewVendorHandler() (*VendorHandler, error) {
	vendorService, err := vendorsvc.NewVendorService()
	if err != nil {
		return nil, err
	}

	handler := &VendorHandler{
		VendorService: vendorService,
	}
	handler.BaseService = vendorService
	return handler, nil
}

// HandleRegisterShop đăng ký shop cho user đang đăng nhập.
// POST /api/v1/vendors/register
func (h *VendorHandler) HandleRegisterShop(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := authhdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input vendordto.VendorRegisterInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		vendor, err := h.VendorService.RegisterShop(c.Context(), userID, *model)
		h.HandleResponse(c, vendor, err)
		return nil
	})
}

// HandleGetMyShop trả về shop của user đang đăng nhập.
// GET /api/v1/vendors/my-shop
func (h *VendorHandler) HandleGetMyShop(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := authhdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		vendor, err := h.VendorService.FindByUser(c.Context(), userID)
		h.HandleResponse(c, vendor, err)
		return nil
	})
}

// HandleUpdateMyShop cập nhật shop của user đang đăng nhập.
// PATCH /api/v1/vendors/my-shop
func (h *VendorHandler) HandleUpdateMyShop(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := authhdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		vendor, err := h.VendorService.FindByUser(c.Context(), userID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input vendordto.VendorUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.TransformUpdateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		update, err := basehdl.BuildSetFromModel(model)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		// IsOpen là *bool trong DTO: false cũng là giá trị hợp lệ cần set
		if input.IsOpen != nil {
			update.Set["isOpen"] = *input.IsOpen
		}

		updated, err := h.VendorService.UpdateShop(c.Context(), vendor.ID, update)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleDeactivateMyShop ngừng hoạt động shop của user đang đăng nhập.
// Product của shop được giữ lại nhưng biến mất khỏi mọi kết quả tìm kiếm.
// DELETE /api/v1/vendors/my-shop
func (h *VendorHandler) HandleDeactivateMyShop(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := authhdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		vendor, err := h.VendorService.FindByUser(c.Context(), userID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		deactivated, err := h.VendorService.Deactivate(c.Context(), vendor.ID)
		h.HandleResponse(c, deactivated, err)
		return nil
	})
}

// HandleGetPublicById trả về shop công khai theo id, tăng totalViews best-effort.
// GET /api/v1/vendors/public/:id
func (h *VendorHandler) HandleGetPublicById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		vendorID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		vendor, err := h.VendorService.GetPublicById(c.Context(), vendorID)
		h.HandleResponse(c, vendor, err)
		return nil
	})
}
