package authhdl

import (
	"github.com/gofiber/fiber/v3"

	authdto "github.com/MHYAnate/sureshops-api/internal/api/auth/dto"
)

// HandleBlockUser khóa tài khoản người dùng theo email (admin).
// POST /api/v1/admin/users/block
func (h *UserHandler) HandleBlockUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.BlockUserInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.UserService.BlockUser(c.Context(), &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUnBlockUser mở khóa tài khoản người dùng theo email (admin).
// POST /api/v1/admin/users/unblock
func (h *UserHandler) HandleUnBlockUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UnBlockUserInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.UserService.UnBlockUser(c.Context(), &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleSetRole gán role cho người dùng theo email (admin).
// POST /api/v1/admin/users/set-role
func (h *UserHandler) HandleSetRole(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.SetRoleInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.UserService.SetRole(c.Context(), &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}
