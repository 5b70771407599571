// Package producthdl - handler cho listing sản phẩm.
package producthdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authhdl "github.com/MHYAnate/sureshops-api/internal/api/auth/handler"
	basehdl "github.com/MHYAnate/sureshops-api/internal/api/base/handler"
	productdto "github.com/MHYAnate/sureshops-api/internal/api/product/dto"
	models "github.com/MHYAnate/sureshops-api/internal/api/product/models"
	productsvc "github.com/MHYAnate/sureshops-api/internal/api/product/service"
	vendorsvc "github.com/MHYAnate/sureshops-api/internal/api/vendors/service"
	"github.com/MHYAnate/sureshops-api/internal/common"
)

// ProductHandler xử lý các request liên quan đến listing sản phẩm
type ProductHandler struct {
	basehdl.BaseHandler[models.Product, productdto.ProductCreateInput, productdto.ProductUpdateInput]
	ProductService *productsvc.ProductService
	VendorService  *vendorsvc.VendorService
}

// NewProductHandler tạo mới ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := productsvc.NewProductService()
	if err != nil {
		return nil, err
	}
	vendorService, err := vendorsvc.NewVendorService()
	if err != nil {
		return nil, err
	}

	handler := &ProductHandler{
		ProductService: productService,
		VendorService:  vendorService,
	}
	handler.BaseService = productService
	return handler, nil
}

// HandleCreateListing tạo listing cho shop của user đang đăng nhập.
// POST /api/v1/products
func (h *ProductHandler) HandleCreateListing(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := authhdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input productdto.ProductCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		product, err := h.ProductService.CreateListing(c.Context(), userID, *model)
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleGetPublicById trả về sản phẩm công khai theo id, tăng views best-effort.
// GET /api/v1/products/public/:id
func (h *ProductHandler) HandleGetPublicById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		productID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		product, err := h.ProductService.GetPublicById(c.Context(), productID)
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleListMyProducts trả về mọi listing của shop thuộc user đang đăng nhập.
// GET /api/v1/products/my-listings
func (h *ProductHandler) HandleListMyProducts(c fiber.Ctx) error {
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

		products, err := h.ProductService.ListByVendor(c.Context(), vendor.ID)
		h.HandleResponse(c, products, err)
		return nil
	})
}

// HandleUpdateListing cập nhật listing (chỉ chủ shop).
// PATCH /api/v1/products/:id
func (h *ProductHandler) HandleUpdateListing(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := authhdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		productID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		var input productdto.ProductUpdateInput
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
		// Quantity/InStock là pointer trong DTO: 0 và false cũng là giá trị hợp lệ
		if input.Quantity != nil {
			update.Set["quantity"] = *input.Quantity
			if *input.Quantity == 0 {
				update.Set["inStock"] = false
			}
		}
		if input.InStock != nil {
			update.Set["inStock"] = *input.InStock
		}

		product, err := h.ProductService.UpdateListing(c.Context(), userID, productID, update)
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleDeleteListing xóa listing (chỉ chủ shop).
// DELETE /api/v1/products/:id
func (h *ProductHandler) HandleDeleteListing(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := authhdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		productID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		err = h.ProductService.DeleteListing(c.Context(), userID, productID)
		h.HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
		return nil
	})
}

// HandleTransitionStatus chuyển trạng thái listing theo vòng đời (chủ shop).
// POST /api/v1/products/:id/status
func (h *ProductHandler) HandleTransitionStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := authhdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		productID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		var input productdto.ProductStatusInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		product, err := h.ProductService.TransitionStatus(c.Context(), userID, productID, input.Status, true)
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleResyncLocation copy lại snapshot địa bàn từ vendor cho toàn bộ listing
// của shop thuộc user đang đăng nhập (gọi sau khi chuyển địa bàn shop).
// POST /api/v1/products/resync-location
func (h *ProductHandler) HandleResyncLocation(c fiber.Ctx) error {
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

		modified, err := h.ProductService.ResyncLocationFromVendor(c.Context(), vendor.ID)
		h.HandleResponse(c, fiber.Map{"modified": modified}, err)
		return nil
	})
}
