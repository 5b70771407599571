// Package authsvc - các helper lưu/lấy thông tin người dùng từ context.
package authsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/MHYAnate/sureshops-api/internal/api/auth/models"
)

type contextKey string

const userIDContextKey contextKey = "user_id"

// SetUserIDToContext lưu userID vào context
func SetUserIDToContext(ctx context.Context, userID primitive.ObjectID) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// GetUserIDFromContext lấy userID từ context. Trả về NilObjectID nếu không có.
func GetUserIDFromContext(ctx context.Context) primitive.ObjectID {
	userID, ok := ctx.Value(userIDContextKey).(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID
	}
	return userID
}

// IsUserAdministratorFromContext kiểm tra user trong context có phải admin không.
// Được đăng ký vào basesvc qua SetIsAdminFromContextFunc để bảo vệ dữ liệu hệ thống
// (dữ liệu tham chiếu địa lý được seed với isSystem=true).
func IsUserAdministratorFromContext(ctx context.Context) (bool, error) {
	userID := GetUserIDFromContext(ctx)
	if userID.IsZero() {
		return false, nil
	}

	userService, err := NewUserService()
	if err != nil {
		return false, err
	}

	user, err := userService.FindOneById(ctx, userID)
	if err != nil {
		return false, err
	}

	return user.Role == models.RoleAdmin, nil
}
