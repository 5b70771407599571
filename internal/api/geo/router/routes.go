// Package georouter - đăng ký route cho dữ liệu tham chiếu địa lý.
package georouter

import (
	"github.com/gofiber/fiber/v3"

	geohdl "github.com/MHYAnate/sureshops-api/internal/api/geo/handler"
	"github.com/MHYAnate/sureshops-api/internal/api/middleware"
	apirouter "github.com/MHYAnate/sureshops-api/internal/api/router"
)

// Register đăng ký các route cho states / areas / markets.
// Dữ liệu tham chiếu: đọc công khai, ghi chỉ dành cho admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	stateHandler, err := geohdl.NewStateHandler()
	if err != nil {
		return err
	}
	areaHandler, err := geohdl.NewAreaHandler()
	if err != nil {
		return err
	}
	marketHandler, err := geohdl.NewMarketHandler()
	if err != nil {
		return err
	}

	adminMW := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}

	r.RegisterCRUDRoutes(v1, "/states", stateHandler, apirouter.ReferenceDataConfig, nil, adminMW)
	r.RegisterCRUDRoutes(v1, "/areas", areaHandler, apirouter.ReferenceDataConfig, nil, adminMW)
	r.RegisterCRUDRoutes(v1, "/markets", marketHandler, apirouter.ReferenceDataConfig, nil, adminMW)

	// Các route tra cứu theo cây phân cấp
	v1.Get("/states/by-code/:code", stateHandler.HandleFindByCode)
	v1.Get("/areas/by-state/:stateId", areaHandler.HandleListByState)
	v1.Get("/markets/by-area/:areaId", marketHandler.HandleListByArea)
	v1.Get("/markets/by-code/:code", marketHandler.HandleFindByCode)

	return nil
}
