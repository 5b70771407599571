// Package cataloghdl - handler cho catalog chuẩn.
package cataloghdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/MHYAnate/sureshops-api/internal/api/base/handler"
	catalogdto "github.com/MHYAnate/sureshops-api/internal/api/catalog/dto"
	models "github.com/MHYAnate/sureshops-api/internal/api/catalog/models"
	catalogsvc "github.com/MHYAnate/sureshops-api/internal/api/catalog/service"
	"github.com/MHYAnate/sureshops-api/internal/common"
)

// CatalogItemHandler xử lý các request liên quan đến catalog chuẩn
type CatalogItemHandler struct {
	basehdl.BaseHandler[models.CatalogItem, catalogdto.CatalogItemCreateInput, catalogdto.CatalogItemUpdateInput]
	CatalogItemService *catalogsvc.CatalogItemService
}

// NewCatalogItemHandler tạo mới CatalogItemHandler
func NewCatalogItemHandler() (*CatalogItemHandler, error) {
	catalogItemService, err := catalogsvc.NewCatalogItemService()
	if err != nil {
		return nil, err
	}

	handler := &CatalogItemHandler{
		CatalogItemService: catalogItemService,
	}
	handler.BaseService = catalogItemService
	return handler, nil
}

// HandleFindBySKU tìm catalog item theo SKU.
// GET /api/v1/catalog-items/by-sku/:sku
func (h *CatalogItemHandler) HandleFindBySKU(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		sku := c.Params("sku")
		if sku == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		item, err := h.CatalogItemService.FindBySKU(c.Context(), sku)
		h.HandleResponse(c, item, err)
		return nil
	})
}

// HandleFindByBarcode tìm catalog item theo barcode.
// GET /api/v1/catalog-items/by-barcode/:barcode
func (h *CatalogItemHandler) HandleFindByBarcode(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		barcode := c.Params("barcode")
		if barcode == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		item, err := h.CatalogItemService.FindByBarcode(c.Context(), barcode)
		h.HandleResponse(c, item, err)
		return nil
	})
}

// HandleSearchByName tìm catalog item theo tên.
// GET /api/v1/catalog-items/search?name=...
func (h *CatalogItemHandler) HandleSearchByName(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		name := c.Query("name", "")
		if name == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		items, err := h.CatalogItemService.SearchByName(c.Context(), name)
		h.HandleResponse(c, items, err)
		return nil
	})
}

// HandleListCategories trả về danh sách category trong catalog.
// GET /api/v1/catalog-items/categories
func (h *CatalogItemHandler) HandleListCategories(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		categories, err := h.CatalogItemService.ListCategories(c.Context())
		h.HandleResponse(c, categories, err)
		return nil
	})
}
