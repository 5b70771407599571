// Package authhdl - handler cho các API xác thực người dùng.
package authhdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "github.com/MHYAnate/sureshops-api/internal/api/auth/dto"
	models "github.com/MHYAnate/sureshops-api/internal/api/auth/models"
	authsvc "github.com/MHYAnate/sureshops-api/internal/api/auth/service"
	basehdl "github.com/MHYAnate/sureshops-api/internal/api/base/handler"
	"github.com/MHYAnate/sureshops-api/internal/api/middleware"
	"github.com/MHYAnate/sureshops-api/internal/common"
	"github.com/MHYAnate/sureshops-api/internal/logger"
)

// UserHandler xử lý các request liên quan đến người dùng.
// Embed BaseHandler để có sẵn các CRUD handler (dành cho admin).
type UserHandler struct {
	basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserChangeInfoInput]
	UserService *authsvc.UserService
}

// NewUserHandler tạo mới UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}

	handler := &UserHandler{
		UserService: userService,
	}
	handler.BaseService = userService
	return handler, nil
}

// CurrentUserID lấy ObjectID của người dùng hiện tại từ context (do middleware set).
func CurrentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	return userID, nil
}

// HandleRegister xử lý đăng ký người dùng mới.
// POST /api/v1/auth/register
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserRegisterInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.UserService.Register(c.Context(), &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleLogin xử lý đăng nhập, trả về user kèm JWT token.
// POST /api/v1/auth/login
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.UserService.Login(c.Context(), &input)
		logger.LogAuth("login", c, map[string]interface{}{
			"email":   input.Email,
			"success": err == nil,
		})
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleLogout xử lý đăng xuất thiết bị hiện tại (theo hwid).
// POST /api/v1/auth/logout
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.UserLogoutInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.UserService.Logout(c.Context(), userID, &input)
		if err == nil {
			middleware.InvalidateRequestToken(c)
		}
		h.HandleResponse(c, fiber.Map{"loggedOut": err == nil}, err)
		return nil
	})
}

// HandleGetProfile trả về thông tin người dùng hiện tại.
// GET /api/v1/auth/profile
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.UserService.FindOneById(c.Context(), userID)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUpdateProfile cập nhật thông tin người dùng hiện tại.
// PATCH /api/v1/auth/profile
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.UserChangeInfoInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.UserService.ChangeInfo(c.Context(), userID, &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleChangePassword đổi mật khẩu người dùng hiện tại.
// POST /api/v1/auth/change-password
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := CurrentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.UserChangePasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.UserService.ChangePassword(c.Context(), userID, &input)
		if err == nil {
			middleware.InvalidateRequestToken(c)
		}
		h.HandleResponse(c, fiber.Map{"changed": err == nil}, err)
		return nil
	})
}
