// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	authdto "github.com/MHYAnate/sureshops-api/internal/api/auth/dto"
	models "github.com/MHYAnate/sureshops-api/internal/api/auth/models"
	basesvc "github.com/MHYAnate/sureshops-api/internal/api/base/service"
	"github.com/MHYAnate/sureshops-api/internal/common"
	"github.com/MHYAnate/sureshops-api/internal/global"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Register đăng ký người dùng mới với email + mật khẩu (bcrypt).
// Sau khi tạo thành công, sinh JWT token luôn để người dùng đăng nhập ngay.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (*models.User, error) {
	// Kiểm tra email đã tồn tại chưa
	exists, err := s.DocumentExists(ctx, bson.M{"email": input.Email})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(
			common.ErrCodeBusinessOperation,
			"Email đã được sử dụng. Vui lòng dùng email khác hoặc đăng nhập.",
			common.StatusConflict,
			nil,
		)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể mã hóa mật khẩu", common.StatusInternalServerError, err)
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: string(hashed),
		Role:     models.RoleUser,
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.issueToken(ctx, &created, input.Hwid)
}

// Login đăng nhập bằng email + mật khẩu, trả về user kèm JWT token mới.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, error) {
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		// Không tiết lộ email có tồn tại hay không
		return nil, common.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if user.IsBlock {
		return nil, common.NewError(
			common.ErrCodeAuthCredentials,
			"Tài khoản đã bị khóa: "+user.BlockNote,
			common.StatusForbidden,
			nil,
		)
	}

	return s.issueToken(ctx, &user, input.Hwid)
}

// issueToken sinh JWT token, lưu vào field token (mới nhất) và tokens (theo hwid).
func (s *UserService) issueToken(ctx context.Context, user *models.User, hwid string) (*models.User, error) {
	tokenString, err := s.generateJwtToken(user)
	if err != nil {
		return nil, err
	}

	// Cập nhật token theo hwid: mỗi thiết bị một token
	newTokens := make([]models.Token, 0, len(user.Tokens)+1)
	for _, t := range user.Tokens {
		if t.Hwid != hwid {
			newTokens = append(newTokens, t)
		}
	}
	newTokens = append(newTokens, models.Token{Hwid: hwid, JwtToken: tokenString})

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token":  tokenString,
			"tokens": newTokens,
		},
	}
	updated, err := s.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// generateJwtToken sinh JWT token HS256 với claims userId + role.
func (s *UserService) generateJwtToken(user *models.User) (string, error) {
	cfg := global.MongoDB_ServerConfig
	now := time.Now()
	claims := models.JwtToken{
		UserID: user.ID.Hex(),
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.JwtExpirationHours) * time.Hour)),
			Subject:   user.ID.Hex(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JwtSecret))
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không thể tạo token", common.StatusInternalServerError, err)
	}
	return signed, nil
}

// ValidateToken parse và validate JWT token, trả về claims nếu hợp lệ.
func ValidateToken(tokenString string) (*models.JwtToken, error) {
	claims := &models.JwtToken{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("phương thức ký không hợp lệ: %v", t.Header["alg"])
		}
		return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}

// Logout đăng xuất người dùng (xóa token theo hwid)
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID, input *authdto.UserLogoutInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}
	newTokens := make([]models.Token, 0)
	for _, t := range user.Tokens {
		if t.Hwid != input.Hwid {
			newTokens = append(newTokens, t)
		}
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"tokens": newTokens,
			"token":  "",
		},
	}
	_, err = s.UpdateById(ctx, userID, updateData)
	return err
}

// ChangeInfo thay đổi thông tin người dùng (chỉ các field có giá trị).
func (s *UserService) ChangeInfo(ctx context.Context, userID primitive.ObjectID, input *authdto.UserChangeInfoInput) (*models.User, error) {
	set := make(map[string]interface{})
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.AvatarURL != "" {
		set["avatarUrl"] = input.AvatarURL
	}
	if input.Phone != "" {
		set["phone"] = input.Phone
	}
	if len(set) == 0 {
		user, err := s.FindOneById(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &user, nil
	}

	updated, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ChangePassword đổi mật khẩu: xác thực mật khẩu cũ rồi hash mật khẩu mới.
// Xóa toàn bộ token để buộc đăng nhập lại trên mọi thiết bị.
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.UserChangePasswordInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)); err != nil {
		return common.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Không thể mã hóa mật khẩu", common.StatusInternalServerError, err)
	}

	_, err = s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"password": string(hashed),
			"token":    "",
			"tokens":   []models.Token{},
		},
	})
	return err
}

// BlockUser khóa người dùng theo email và xóa token để chặn truy cập ngay.
func (s *UserService) BlockUser(ctx context.Context, input *authdto.BlockUserInput) (*models.User, error) {
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		return nil, err
	}

	updated, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock":   true,
			"blockNote": input.Note,
			"token":     "",
			"tokens":    []models.Token{},
		},
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID.Hex(),
		"email":   input.Email,
	}).Info("BlockUser: Đã khóa người dùng")
	return &updated, nil
}

// UnBlockUser mở khóa người dùng theo email.
func (s *UserService) UnBlockUser(ctx context.Context, input *authdto.UnBlockUserInput) (*models.User, error) {
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		return nil, err
	}

	updated, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock":   false,
			"blockNote": "",
		},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetRole gán role cho người dùng theo email (chỉ admin gọi).
func (s *UserService) SetRole(ctx context.Context, input *authdto.SetRoleInput) (*models.User, error) {
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		return nil, err
	}

	updated, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"role": input.Role},
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID.Hex(),
		"role":    input.Role,
	}).Info("SetRole: Đã gán role cho người dùng")
	return &updated, nil
}

// HasAnyAdministrator kiểm tra hệ thống đã có admin nào chưa.
func (s *UserService) HasAnyAdministrator(ctx context.Context) (bool, error) {
	return s.DocumentExists(ctx, bson.M{"role": models.RoleAdmin})
}
