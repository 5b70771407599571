package main

import (
	"context"

	"github.com/MHYAnate/sureshops-api/internal/api/initsvc"
	"github.com/MHYAnate/sureshops-api/internal/logger"
)

// InitDefaultData khởi tạo dữ liệu nền: guard admin cho dữ liệu hệ thống,
// admin mặc định và bộ địa bàn tham chiếu ban đầu.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	initService, err := initsvc.NewInitService()
	if err != nil {
		log.Fatalf("Failed to initialize init service: %v", err)
	}

	ctx := context.Background()

	// 1. Đăng ký guard admin cho dữ liệu isSystem (PHẢI LÀM TRƯỚC khi nhận request)
	initService.RegisterAdminGuard()
	log.Info("✅ [INIT] Step 1: Admin guard registered")

	// 2. Tạo admin mặc định nếu hệ thống chưa có admin
	log.Info("🔄 [INIT] Step 2: Initializing default admin...")
	if err := initService.InitDefaultAdmin(ctx); err != nil {
		log.Fatalf("Failed to initialize default admin: %v", err)
	}
	log.Info("✅ [INIT] Step 2: Default admin initialized")

	// 3. Seed địa bàn tham chiếu (state/area/market) khi database còn rỗng
	log.Info("🔄 [INIT] Step 3: Initializing geo reference data...")
	if err := initService.InitGeoData(ctx); err != nil {
		log.WithError(err).Error("❌ [INIT] Step 3: Failed to initialize geo reference data")
		log.Warnf("Failed to initialize geo data: %v", err)
	} else {
		log.Info("✅ [INIT] Step 3: Geo reference data initialized")
	}

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}
