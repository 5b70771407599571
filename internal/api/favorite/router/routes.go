// Package favoriterouter - đăng ký route cho danh sách yêu thích.
package favoriterouter

import (
	"github.com/gofiber/fiber/v3"

	favoritehdl "github.com/MHYAnate/sureshops-api/internal/api/favorite/handler"
	"github.com/MHYAnate/sureshops-api/internal/api/middleware"
	apirouter "github.com/MHYAnate/sureshops-api/internal/api/router"
)

// Register đăng ký các route yêu thích. Toàn bộ yêu cầu đăng nhập vì
// danh sách gắn với từng user.
func Register(v1 fiber.Router, _ *apirouter.Router) error {
	favoriteHandler, err := favoritehdl.NewFavoriteHandler()
	if err != nil {
		return err
	}

	authMW := []fiber.Handler{middleware.RequireAuth()}

	apirouter.RegisterRouteWithMiddleware(v1, "/favorites", "GET", "/", authMW, favoriteHandler.HandleListFavorites)
	apirouter.RegisterRouteWithMiddleware(v1, "/favorites", "POST", "/", authMW, favoriteHandler.HandleAddFavorite)
	apirouter.RegisterRouteWithMiddleware(v1, "/favorites", "GET", "/check/:productId", authMW, favoriteHandler.HandleCheckFavorite)
	apirouter.RegisterRouteWithMiddleware(v1, "/favorites", "DELETE", "/:productId", authMW, favoriteHandler.HandleRemoveFavorite)

	return nil
}
