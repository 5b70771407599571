// Package authrouter - đăng ký route cho domain xác thực người dùng.
package authrouter

import (
	"github.com/gofiber/fiber/v3"

	authhdl "github.com/MHYAnate/sureshops-api/internal/api/auth/handler"
	"github.com/MHYAnate/sureshops-api/internal/api/middleware"
	apirouter "github.com/MHYAnate/sureshops-api/internal/api/router"
)

// Register đăng ký các route xác thực và quản lý người dùng.
//
// Public:
//   - POST /auth/register, POST /auth/login
//
// Yêu cầu đăng nhập:
//   - POST /auth/logout, GET|PATCH /auth/profile, POST /auth/change-password
//
// Admin:
//   - /users/* (CRUD chỉ đọc), /admin/users/* (block/unblock/set-role)
func Register(v1 fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return err
	}

	authMW := []fiber.Handler{middleware.RequireAuth()}
	adminMW := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}

	// Các route công khai
	auth := v1.Group("/auth")
	auth.Post("/register", userHandler.HandleRegister)
	auth.Post("/login", userHandler.HandleLogin)

	// Các route yêu cầu đăng nhập
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/logout", authMW, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/profile", authMW, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "PATCH", "/profile", authMW, userHandler.HandleUpdateProfile)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/change-password", authMW, userHandler.HandleChangePassword)

	// Quản lý người dùng (chỉ admin, chỉ đọc - tạo/sửa đi qua register + các API riêng)
	r.RegisterCRUDRoutes(v1, "/users", userHandler, apirouter.ReadOnlyConfig, adminMW, adminMW)

	// Các thao tác admin trên người dùng
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/users", "POST", "/block", adminMW, userHandler.HandleBlockUser)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/users", "POST", "/unblock", adminMW, userHandler.HandleUnBlockUser)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/users", "POST", "/set-role", adminMW, userHandler.HandleSetRole)

	return nil
}
