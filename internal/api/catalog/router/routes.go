// Package catalogrouter - đăng ký route cho catalog chuẩn.
package catalogrouter

import (
	"github.com/gofiber/fiber/v3"

	cataloghdl "github.com/MHYAnate/sureshops-api/internal/api/catalog/handler"
	"github.com/MHYAnate/sureshops-api/internal/api/middleware"
	apirouter "github.com/MHYAnate/sureshops-api/internal/api/router"
)

// Register đăng ký các route cho catalog-items.
// Đọc công khai, ghi chỉ dành cho admin (catalog là dữ liệu chuẩn).
func Register(v1 fiber.Router, r *apirouter.Router) error {
	catalogHandler, err := cataloghdl.NewCatalogItemHandler()
	if err != nil {
		return err
	}

	adminMW := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}

	r.RegisterCRUDRoutes(v1, "/catalog-items", catalogHandler, apirouter.ReferenceDataConfig, nil, adminMW)

	v1.Get("/catalog-items/by-sku/:sku", catalogHandler.HandleFindBySKU)
	v1.Get("/catalog-items/by-barcode/:barcode", catalogHandler.HandleFindByBarcode)
	v1.Get("/catalog-items/search", catalogHandler.HandleSearchByName)
	v1.Get("/catalog-items/categories", catalogHandler.HandleListCategories)

	return nil
}
