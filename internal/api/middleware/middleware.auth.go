package middleware

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	models "github.com/MHYAnate/sureshops-api/internal/api/auth/models"
	authsvc "github.com/MHYAnate/sureshops-api/internal/api/auth/service"
	"github.com/MHYAnate/sureshops-api/internal/common"
	"github.com/MHYAnate/sureshops-api/internal/utility"
)

// AuthManager quản lý xác thực tập trung cho toàn bộ middleware.
// Cache kết quả lookup user theo token để giảm tải truy vấn MongoDB.
type AuthManager struct {
	userService *authsvc.UserService
	userCache   *utility.Cache // cache user theo token
}

var (
	authManager     *AuthManager
	authManagerOnce sync.Once
)

// GetAuthManager trả về singleton AuthManager (khởi tạo lazily).
func GetAuthManager() (*AuthManager, error) {
	var initErr error
	authManagerOnce.Do(func() {
		userService, err := authsvc.NewUserService()
		if err != nil {
			initErr = err
			return
		}
		authManager = &AuthManager{
			userService: userService,
			userCache:   utility.NewCache(5*time.Minute, 10*time.Minute),
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	if authManager == nil {
		return nil, common.ErrServiceUnavailable
	}
	return authManager, nil
}

// InvalidateRequestToken xóa token của request hiện tại khỏi cache user.
// Gọi khi logout hoặc đổi mật khẩu để token thu hồi có hiệu lực ngay,
// không phải chờ cache hết hạn.
func InvalidateRequestToken(c fiber.Ctx) {
	if authManager == nil {
		return
	}
	if tokenString, err := extractBearerToken(c); err == nil {
		authManager.userCache.Delete(tokenString)
	}
}

// extractBearerToken lấy JWT token từ header Authorization.
func extractBearerToken(c fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", common.ErrTokenMissing
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", common.ErrTokenInvalid
	}
	return parts[1], nil
}

// resolveUser validate token rồi tìm user tương ứng trong DB.
// Token phải còn nằm trên document user (field token hoặc tokens.jwtToken),
// nghĩa là chưa bị logout / thu hồi.
func (m *AuthManager) resolveUser(c fiber.Ctx, tokenString string) (*models.User, error) {
	if cached, found := m.userCache.Get(tokenString); found {
		if user, ok := cached.(*models.User); ok {
			return user, nil
		}
	}

	claims, err := authsvc.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := m.userService.FindOne(c.Context(), bson.M{"token": tokenString}, nil)
	if err != nil {
		// Token không phải token mới nhất, thử tìm theo danh sách token các thiết bị
		user, err = m.userService.FindOne(c.Context(), bson.M{"tokens.jwtToken": tokenString}, nil)
		if err != nil {
			return nil, common.ErrTokenInvalid
		}
	}

	if user.ID.Hex() != claims.UserID {
		return nil, common.ErrTokenInvalid
	}

	if user.IsBlock {
		return nil, common.NewError(
			common.ErrCodeAuthCredentials,
			"Tài khoản đã bị khóa: "+user.BlockNote,
			common.StatusForbidden,
			nil,
		)
	}

	m.userCache.Set(tokenString, &user)
	return &user, nil
}

// setUserLocals lưu thông tin user vào context để các handler phía sau dùng.
func setUserLocals(c fiber.Ctx, user *models.User) {
	c.Locals("user_id", user.ID.Hex())
	c.Locals("user_role", user.Role)
	c.Locals("user", user)
}

// RequireAuth yêu cầu request phải có JWT token hợp lệ.
// Sau khi xác thực thành công, user_id / user_role / user được set vào Locals.
func RequireAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		manager, err := GetAuthManager()
		if err != nil {
			logrus.WithError(err).Error("RequireAuth: Không thể khởi tạo AuthManager")
			HandleErrorResponse(c, common.ErrServiceUnavailable)
			return nil
		}

		tokenString, err := extractBearerToken(c)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		user, err := manager.resolveUser(c, tokenString)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		setUserLocals(c, user)
		return c.Next()
	}
}

// RequireRole yêu cầu user hiện tại phải có một trong các role cho trước.
// Phải được đăng ký SAU RequireAuth.
func RequireRole(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		userRole, ok := c.Locals("user_role").(string)
		if !ok || userRole == "" {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}
		if !utility.Contains(roles, userRole) {
			HandleErrorResponse(c, common.ErrAdminOnly)
			return nil
		}
		return c.Next()
	}
}

// RequireAdmin yêu cầu user hiện tại là administrator.
func RequireAdmin() fiber.Handler {
	return RequireRole(models.RoleAdmin)
}

// OptionalAuth xác thực nếu có token, nhưng không chặn request khi thiếu token.
// Dùng cho các API công khai muốn cá nhân hóa kết quả khi user đã đăng nhập.
func OptionalAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Next()
		}

		manager, err := GetAuthManager()
		if err != nil {
			return c.Next()
		}

		if user, err := manager.resolveUser(c, tokenString); err == nil {
			setUserLocals(c, user)
		}
		return c.Next()
	}
}
