// Package geohdl - handler cho dữ liệu tham chiếu địa lý.
package geohdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/MHYAnate/sureshops-api/internal/api/base/handler"
	geodto "github.com/MHYAnate/sureshops-api/internal/api/geo/dto"
	models "github.com/MHYAnate/sureshops-api/internal/api/geo/models"
	geosvc "github.com/MHYAnate/sureshops-api/internal/api/geo/service"
	"github.com/MHYAnate/sureshops-api/internal/common"
)

// StateHandler xử lý các request liên quan đến tỉnh/bang
type StateHandler struct {
	basehdl.BaseHandler[models.State, geodto.StateCreateInput, geodto.StateUpdateInput]
	StateService *geosvc.StateService
}

// NewStateHandler tạo mới StateHandler
func NewStateHandler() (*StateHandler, error) {
	stateService, err := geosvc.NewStateService()
	if err != nil {
		return nil, err
	}

	handler := &StateHandler{
		StateService: stateService,
	}
	handler.BaseService = stateService
	return handler, nil
}

// HandleFindByCode tìm tỉnh/bang theo mã code.
// GET /api/v1/states/by-code/:code
func (h *StateHandler) HandleFindByCode(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		code := c.Params("code")
		if code == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		state, err := h.StateService.FindByCode(c.Context(), code)
		h.HandleResponse(c, state, err)
		return nil
	})
}

// AreaHandler xử lý các request liên quan đến khu vực
type AreaHandler struct {
	basehdl.BaseHandler[models.Area, geodto.AreaCreateInput, geodto.AreaUpdateInput]
	AreaService *geosvc.AreaService
}

// NewAreaHandler tạo mới AreaHandler
func NewAreaHandler() (*AreaHandler, error) {
	areaService, err := geosvc.NewAreaService()
	if err != nil {
		return nil, err
	}

	handler := &AreaHandler{
		AreaService: areaService,
	}
	handler.BaseService = areaService
	return handler, nil
}

// HandleListByState trả về các khu vực thuộc một tỉnh/bang.
// GET /api/v1/areas/by-state/:stateId
func (h *AreaHandler) HandleListByState(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		stateID, err := primitive.ObjectIDFromHex(c.Params("stateId"))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		areas, err := h.AreaService.ListByState(c.Context(), stateID)
		if areas == nil {
			areas = []models.Area{}
		}
		h.HandleResponse(c, areas, err)
		return nil
	})
}

// MarketHandler xử lý các request liên quan đến chợ/trung tâm thương mại
type MarketHandler struct {
	basehdl.BaseHandler[models.Market, geodto.MarketCreateInput, geodto.MarketUpdateInput]
	MarketService *geosvc.MarketService
}

// NewMarketHandler tạo mới MarketHandler
func NewMarketHandler() (*MarketHandler, error) {
	marketService, err := geosvc.NewMarketService()
	if err != nil {
		return nil, err
	}

	handler := &MarketHandler{
		MarketService: marketService,
	}
	handler.BaseService = marketService
	return handler, nil
}

// HandleListByArea trả về các chợ thuộc một khu vực.
// GET /api/v1/markets/by-area/:areaId
func (h *MarketHandler) HandleListByArea(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		areaID, err := primitive.ObjectIDFromHex(c.Params("areaId"))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		markets, err := h.MarketService.ListByArea(c.Context(), areaID)
		if markets == nil {
			markets = []models.Market{}
		}
		h.HandleResponse(c, markets, err)
		return nil
	})
}

// HandleFindByCode tìm chợ theo mã code.
// GET /api/v1/markets/by-code/:code
func (h *MarketHandler) HandleFindByCode(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		code := c.Params("code")
		if code == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		market, err := h.MarketService.FindByCode(c.Context(), code)
		h.HandleResponse(c, market, err)
		return nil
	})
}
