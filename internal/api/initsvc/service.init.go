// Package initsvc - khởi tạo dữ liệu nền cho hệ thống lúc boot:
// admin mặc định và dữ liệu địa bàn tham chiếu (state/area/market).
// Tách ra package riêng để tránh import cycle giữa các domain service.
// Mọi bước đều idempotent - chạy lại không tạo trùng.
package initsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	authmodels "github.com/MHYAnate/sureshops-api/internal/api/auth/models"
	authsvc "github.com/MHYAnate/sureshops-api/internal/api/auth/service"
	basesvc "github.com/MHYAnate/sureshops-api/internal/api/base/service"
	geomodels "github.com/MHYAnate/sureshops-api/internal/api/geo/models"
	geosvc "github.com/MHYAnate/sureshops-api/internal/api/geo/service"
	"github.com/MHYAnate/sureshops-api/internal/global"
)

// InitService là cấu trúc chứa các bước khởi tạo dữ liệu nền
type InitService struct {
	userService   *authsvc.UserService
	stateService  *geosvc.StateService
	areaService   *geosvc.AreaService
	marketService *geosvc.MarketService
}

// NewInitService tạo mới InitService
func NewInitService() (*InitService, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	stateService, err := geosvc.NewStateService()
	if err != nil {
		return nil, err
	}
	areaService, err := geosvc.NewAreaService()
	if err != nil {
		return nil, err
	}
	marketService, err := geosvc.NewMarketService()
	if err != nil {
		return nil, err
	}

	return &InitService{
		userService:   userService,
		stateService:  stateService,
		areaService:   areaService,
		marketService: marketService,
	}, nil
}

// RegisterAdminGuard đăng ký hàm kiểm tra admin vào base service để
// dữ liệu hệ thống (isSystem=true) chỉ admin mới sửa/xóa được.
func (s *InitService) RegisterAdminGuard() {
	basesvc.SetIsAdminFromContextFunc(authsvc.IsUserAdministratorFromContext)
}

// InitDefaultAdmin tạo tài khoản admin đầu tiên từ cấu hình
// ADMIN_INITIAL_EMAIL / ADMIN_INITIAL_PASSWORD khi hệ thống chưa có admin.
// Không cấu hình mật khẩu thì bỏ qua (admin được set role thủ công qua DB).
func (s *InitService) InitDefaultAdmin(ctx context.Context) error {
	hasAdmin, err := s.userService.HasAnyAdministrator(ctx)
	if err != nil {
		return err
	}
	if hasAdmin {
		return nil
	}

	cfg := global.MongoDB_ServerConfig
	if cfg.AdminInitialPassword == "" {
		logrus.Warn("Chưa có admin và ADMIN_INITIAL_PASSWORD chưa cấu hình, bỏ qua tạo admin mặc định")
		return nil
	}

	// Nếu user với email này đã tồn tại thì chỉ nâng role.
	existing, err := s.userService.FindOne(ctx, bson.M{"email": cfg.AdminInitialEmail}, nil)
	if err == nil {
		_, err = s.userService.UpdateById(ctx, existing.ID, &basesvc.UpdateData{
			Set: map[string]interface{}{"role": authmodels.RoleAdmin},
		})
		if err != nil {
			return err
		}
		logrus.Infof("Đã nâng user %s lên admin", cfg.AdminInitialEmail)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminInitialPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := authmodels.User{
		Name:          "Administrator",
		Email:         cfg.AdminInitialEmail,
		Password:      string(hashed),
		Role:          authmodels.RoleAdmin,
		EmailVerified: true,
	}
	if _, err := s.userService.InsertOne(ctx, admin); err != nil {
		return err
	}

	logrus.Infof("Đã tạo admin mặc định %s", cfg.AdminInitialEmail)
	return nil
}

// seedMarket là định nghĩa một chợ trong dữ liệu seed.
type seedMarket struct {
	name    string
	code    string
	address string
	lng     float64
	lat     float64
}

// seedArea là định nghĩa một khu vực (LGA) trong dữ liệu seed.
type seedArea struct {
	name    string
	lng     float64
	lat     float64
	markets []seedMarket
}

// seedState là định nghĩa một bang trong dữ liệu seed.
type seedState struct {
	name  string
	code  string
	lng   float64
	lat   float64
	areas []seedArea
}

// defaultGeoData là bộ địa bàn tham chiếu ban đầu cho Nigeria: các bang
// có hoạt động thương mại lớn nhất kèm LGA và các chợ nổi tiếng.
// Admin bổ sung phần còn lại qua API quản lý geo.
var defaultGeoData = []seedState{
	{
		name: "Lagos", code: "LA", lng: 3.3792, lat: 6.5244,
		areas: []seedArea{
			{
				name: "Ikeja", lng: 3.3375, lat: 6.6018,
				markets: []seedMarket{
					{name: "Computer Village", code: "CV-IKJ", address: "Otigba Street, Ikeja", lng: 3.3421, lat: 6.5964},
				},
			},
			{
				name: "Lagos Island", lng: 3.3958, lat: 6.4549,
				markets: []seedMarket{
					{name: "Balogun Market", code: "BLG-LI", address: "Balogun Street, Lagos Island", lng: 3.3869, lat: 6.4541},
					{name: "Idumota Market", code: "IDM-LI", address: "Idumota, Lagos Island", lng: 3.3903, lat: 6.4582},
				},
			},
			{
				name: "Ojo", lng: 3.1581, lat: 6.4590,
				markets: []seedMarket{
					{name: "Alaba International Market", code: "ALB-OJO", address: "Ojo-Igbede Road, Ojo", lng: 3.1778, lat: 6.4612},
				},
			},
		},
	},
	{
		name: "Federal Capital Territory", code: "FC", lng: 7.4951, lat: 9.0579,
		areas: []seedArea{
			{
				name: "Abuja Municipal", lng: 7.4892, lat: 9.0574,
				markets: []seedMarket{
					{name: "Wuse Market", code: "WUS-AMC", address: "Wuse Zone 5, Abuja", lng: 7.4627, lat: 9.0667},
					{name: "Garki Market", code: "GRK-AMC", address: "Garki Area 10, Abuja", lng: 7.4951, lat: 9.0311},
				},
			},
		},
	},
	{
		name: "Kano", code: "KN", lng: 8.5167, lat: 12.0000,
		areas: []seedArea{
			{
				name: "Kano Municipal", lng: 8.5167, lat: 11.9964,
				markets: []seedMarket{
					{name: "Kantin Kwari Market", code: "KKW-KNM", address: "Kofar Wambai, Kano", lng: 8.5136, lat: 11.9893},
				},
			},
		},
	},
	{
		name: "Rivers", code: "RI", lng: 6.9112, lat: 4.8396,
		areas: []seedArea{
			{
				name: "Port Harcourt", lng: 7.0134, lat: 4.8156,
				markets: []seedMarket{
					{name: "Oil Mill Market", code: "OIL-PHC", address: "Aba Road, Port Harcourt", lng: 7.0498, lat: 4.8581},
				},
			},
		},
	},
	{
		name: "Oyo", code: "OY", lng: 3.9470, lat: 7.8526,
		areas: []seedArea{
			{
				name: "Ibadan North", lng: 3.9106, lat: 7.4347,
				markets: []seedMarket{
					{name: "Bodija Market", code: "BDJ-IBN", address: "Bodija, Ibadan", lng: 3.9117, lat: 7.4341},
				},
			},
		},
	},
}

// InitGeoData seed dữ liệu địa bàn ban đầu khi collection states còn rỗng.
// Mọi bản ghi seed đều isSystem=true để chỉ admin sửa/xóa được.
func (s *InitService) InitGeoData(ctx context.Context) error {
	count, err := s.stateService.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		logrus.Info("Dữ liệu địa bàn đã có, bỏ qua seed")
		return nil
	}

	for _, stateSeed := range defaultGeoData {
		state, err := s.stateService.InsertOne(ctx, geomodels.State{
			Name:     stateSeed.name,
			Code:     stateSeed.code,
			Country:  "Nigeria",
			Location: geomodels.NewGeoPoint(stateSeed.lng, stateSeed.lat),
			IsSystem: true,
		})
		if err != nil {
			return fmt.Errorf("failed to seed state %s: %w", stateSeed.name, err)
		}

		for _, areaSeed := range stateSeed.areas {
			area, err := s.areaService.InsertOne(ctx, geomodels.Area{
				Name:     areaSeed.name,
				StateID:  state.ID,
				Location: geomodels.NewGeoPoint(areaSeed.lng, areaSeed.lat),
				IsSystem: true,
			})
			if err != nil {
				return fmt.Errorf("failed to seed area %s: %w", areaSeed.name, err)
			}

			for _, marketSeed := range areaSeed.markets {
				_, err := s.marketService.InsertOne(ctx, geomodels.Market{
					Name:     marketSeed.name,
					Code:     marketSeed.code,
					StateID:  state.ID,
					AreaID:   area.ID,
					Address:  marketSeed.address,
					Location: geomodels.NewGeoPoint(marketSeed.lng, marketSeed.lat),
					IsSystem: true,
				})
				if err != nil {
					return fmt.Errorf("failed to seed market %s: %w", marketSeed.name, err)
				}
			}
		}
	}

	logrus.Infof("Đã seed %d bang cùng khu vực và chợ mặc định", len(defaultGeoData))
	return nil
}
