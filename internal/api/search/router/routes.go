// Package searchrouter - đăng ký route cho engine tìm kiếm & so sánh giá.
package searchrouter

import (
	"github.com/gofiber/fiber/v3"

	searchhdl "github.com/MHYAnate/sureshops-api/internal/api/search/handler"
	apirouter "github.com/MHYAnate/sureshops-api/internal/api/router"
)

// Register đăng ký các route tìm kiếm. Toàn bộ đều công khai - tìm kiếm
// là mặt tiền của marketplace, không yêu cầu đăng nhập.
func Register(v1 fiber.Router, _ *apirouter.Router) error {
	searchHandler, err := searchhdl.NewSearchHandler()
	if err != nil {
		return err
	}

	v1.Get("/search", searchHandler.HandleSearch)
	v1.Get("/search/products", searchHandler.HandleSearchProducts)
	v1.Get("/search/shops", searchHandler.HandleSearchShops)
	v1.Get("/search/compare", searchHandler.HandleCompareProducts)
	v1.Get("/search/filters", searchHandler.HandleGetAvailableFilters)

	// Route path cụ thể đăng ký trước route có param.
	v1.Get("/search/product/:productName/vendors", searchHandler.HandleGetProductVendors)
	v1.Get("/search/product/:productId/similar", searchHandler.HandleGetSimilarProducts)
	v1.Get("/search/shop/:vendorId/products", searchHandler.HandleGetShopProducts)

	return nil
}
