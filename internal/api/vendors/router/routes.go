// Package vendorrouter - đăng ký route cho shop/người bán.
package vendorrouter

import (
	"github.com/gofiber/fiber/v3"

	"github.com/MHYAnate/sureshops-api/internal/api/middleware"
	apirouter "github.com/MHYAnate/sureshops-api/internal/api/router"
	vendorhdl "github.com/MHYAnate/sureshops-api/internal/api/vendors/handler"
)

// Register đăng ký các route cho vendors.
//
// Public: xem shop theo id, duyệt danh sách (CRUD chỉ đọc).
// Yêu cầu đăng nhập: đăng ký shop, xem/sửa/ngừng hoạt động shop của mình.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	vendorHandler, err := vendorhdl.NewVendorHandler()
	if err != nil {
		return err
	}

	authMW := []fiber.Handler{middleware.RequireAuth()}

	// Duyệt danh sách shop công khai (chỉ đọc)
	r.RegisterCRUDRoutes(v1, "/vendors", vendorHandler, apirouter.ReadOnlyConfig, nil, nil)

	v1.Get("/vendors/public/:id", vendorHandler.HandleGetPublicById)

	apirouter.RegisterRouteWithMiddleware(v1, "/vendors", "POST", "/register", authMW, vendorHandler.HandleRegisterShop)
	apirouter.RegisterRouteWithMiddleware(v1, "/vendors", "GET", "/my-shop", authMW, vendorHandler.HandleGetMyShop)
	apirouter.RegisterRouteWithMiddleware(v1, "/vendors", "PATCH", "/my-shop", authMW, vendorHandler.HandleUpdateMyShop)
	apirouter.RegisterRouteWithMiddleware(v1, "/vendors", "DELETE", "/my-shop", authMW, vendorHandler.HandleDeactivateMyShop)

	return nil
}
