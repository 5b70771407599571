// Package productrouter - đăng ký route cho listing sản phẩm.
package productrouter

import (
	"github.com/gofiber/fiber/v3"

	"github.com/MHYAnate/sureshops-api/internal/api/middleware"
	producthdl "github.com/MHYAnate/sureshops-api/internal/api/product/handler"
	apirouter "github.com/MHYAnate/sureshops-api/internal/api/router"
)

// Register đăng ký các route cho products.
//
// Public: xem sản phẩm theo id, duyệt danh sách (CRUD chỉ đọc).
// Yêu cầu đăng nhập: tạo/sửa/xóa listing, chuyển trạng thái, resync địa bàn.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	productHandler, err := producthdl.NewProductHandler()
	if err != nil {
		return err
	}

	authMW := []fiber.Handler{middleware.RequireAuth()}

	r.RegisterCRUDRoutes(v1, "/products", productHandler, apirouter.ReadOnlyConfig, nil, nil)

	v1.Get("/products/public/:id", productHandler.HandleGetPublicById)

	apirouter.RegisterRouteWithMiddleware(v1, "/products", "POST", "/", authMW, productHandler.HandleCreateListing)
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "GET", "/my-listings", authMW, productHandler.HandleListMyProducts)
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "POST", "/resync-location", authMW, productHandler.HandleResyncLocation)
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "PATCH", "/:id", authMW, productHandler.HandleUpdateListing)
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "DELETE", "/:id", authMW, productHandler.HandleDeleteListing)
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "POST", "/:id/status", authMW, productHandler.HandleTransitionStatus)

	return nil
}
