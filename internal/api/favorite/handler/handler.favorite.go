// Package favoritehdl - HTTP handler cho danh sách yêu thích.
package favoritehdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authhdl "github.com/MHYAnate/sureshops-api/internal/api/auth/handler"
	basehdl "github.com/MHYAnate/sureshops-api/internal/api/base/handler"
	favoritedto "github.com/MHYAnate/sureshops-api/internal/api/favorite/dto"
	models "github.com/MHYAnate/sureshops-api/internal/api/favorite/models"
	favoritesvc "github.com/MHYAnate/sureshops-api/internal/api/favorite/service"
	"github.com/MHYAnate/sureshops-api/internal/common"
)

// FavoriteHandler là cấu trúc chứa các phương thức xử lý request yêu thích
type FavoriteHandler struct {
	basehdl.BaseHandler[models.Favorite, favoritedto.FavoriteAddInput, favoritedto.FavoriteAddInput]
	FavoriteService *favoritesvc.FavoriteService
}

// NewFavoriteHandler tạo mới FavoriteHandler
func NewFavoriteHandler() (*FavoriteHandler, error) {
	favoriteService, err := favoritesvc.NewFavoriteService()
	if err != nil {
		return nil, err
	}
	handler := &FavoriteHandler{FavoriteService: favoriteService}
	handler.BaseService = favoriteService
	return handler, nil
}

// HandleAddFavorite xử lý lưu sản phẩm: POST /favorites
func (h *FavoriteHandler) HandleAddFavorite(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := authhdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(favoritedto.FavoriteAddInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		productID, err := primitive.ObjectIDFromHex(input.ProductID)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		favorite, err := h.FavoriteService.AddFavorite(c.Context(), userID, productID)
		h.HandleResponse(c, favorite, err)
		return nil
	})
}

// HandleRemoveFavorite xử lý bỏ lưu sản phẩm: DELETE /favorites/:productId
func (h *FavoriteHandler) HandleRemoveFavorite(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := authhdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		productID, err := primitive.ObjectIDFromHex(c.Params("productId"))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		err = h.FavoriteService.RemoveFavorite(c.Context(), userID, productID)
		h.HandleResponse(c, fiber.Map{"removed": err == nil}, err)
		return nil
	})
}

// HandleListFavorites xử lý danh sách yêu thích của mình: GET /favorites
func (h *FavoriteHandler) HandleListFavorites(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := authhdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.FavoriteService.ListOwn(c.Context(), userID, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleCheckFavorite kiểm tra một sản phẩm đã được lưu chưa:
// GET /favorites/check/:productId
func (h *FavoriteHandler) HandleCheckFavorite(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := authhdl.CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		productID, err := primitive.ObjectIDFromHex(c.Params("productId"))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		favorited, err := h.FavoriteService.IsFavorited(c.Context(), userID, productID)
		h.HandleResponse(c, fiber.Map{"favorited": favorited}, err)
		return nil
	})
}
