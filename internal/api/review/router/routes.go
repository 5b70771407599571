// Package reviewrouter - đăng ký route cho đánh giá.
package reviewrouter

import (
	"github.com/gofiber/fiber/v3"

	"github.com/MHYAnate/sureshops-api/internal/api/middleware"
	apirouter "github.com/MHYAnate/sureshops-api/internal/api/router"
	reviewhdl "github.com/MHYAnate/sureshops-api/internal/api/review/handler"
)

// Register đăng ký các route cho đánh giá. Đọc công khai, ghi yêu cầu
// đăng nhập. Sửa/xóa do service kiểm tra quyền sở hữu.
func Register(v1 fiber.Router, _ *apirouter.Router) error {
	reviewHandler, err := reviewhdl.NewReviewHandler()
	if err != nil {
		return err
	}

	authMW := []fiber.Handler{middleware.RequireAuth()}

	v1.Get("/reviews/product/:productId", reviewHandler.HandleListByProduct)
	v1.Get("/reviews/vendor/:vendorId", reviewHandler.HandleListByVendor)

	apirouter.RegisterRouteWithMiddleware(v1, "/reviews", "POST", "/", authMW, reviewHandler.HandleCreateReview)
	apirouter.RegisterRouteWithMiddleware(v1, "/reviews", "PATCH", "/:id", authMW, reviewHandler.HandleUpdateReview)
	apirouter.RegisterRouteWithMiddleware(v1, "/reviews", "DELETE", "/:id", authMW, reviewHandler.HandleDeleteReview)
	apirouter.RegisterRouteWithMiddleware(v1, "/reviews", "POST", "/:id/helpful", authMW, reviewHandler.HandleMarkHelpful)

	return nil
}
