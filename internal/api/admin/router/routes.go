// Package adminrouter - đăng ký route quản trị.
package adminrouter

import (
	"github.com/gofiber/fiber/v3"

	adminhdl "github.com/MHYAnate/sureshops-api/internal/api/admin/handler"
	"github.com/MHYAnate/sureshops-api/internal/api/middleware"
	apirouter "github.com/MHYAnate/sureshops-api/internal/api/router"
)

// Register đăng ký các route quản trị. Toàn bộ yêu cầu role admin.
func Register(v1 fiber.Router, _ *apirouter.Router) error {
	adminHandler, err := adminhdl.NewAdminHandler()
	if err != nil {
		return err
	}

	adminMW := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}

	apirouter.RegisterRouteWithMiddleware(v1, "/admin", "GET", "/products/pending", adminMW, adminHandler.HandleListPendingProducts)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin", "POST", "/products/:id/approve", adminMW, adminHandler.HandleApproveProduct)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin", "POST", "/products/:id/reject", adminMW, adminHandler.HandleRejectProduct)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin", "POST", "/vendors/:id/verify", adminMW, adminHandler.HandleVerifyVendor)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin", "POST", "/vendors/:id/feature", adminMW, adminHandler.HandleFeatureVendor)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin", "GET", "/stats", adminMW, adminHandler.HandlePlatformStats)

	return nil
}
