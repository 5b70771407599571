package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/MHYAnate/sureshops-api/config"
	authmodels "github.com/MHYAnate/sureshops-api/internal/api/auth/models"
	catalogmodels "github.com/MHYAnate/sureshops-api/internal/api/catalog/models"
	favoritemodels "github.com/MHYAnate/sureshops-api/internal/api/favorite/models"
	geomodels "github.com/MHYAnate/sureshops-api/internal/api/geo/models"
	productmodels "github.com/MHYAnate/sureshops-api/internal/api/product/models"
	reviewmodels "github.com/MHYAnate/sureshops-api/internal/api/review/models"
	vendormodels "github.com/MHYAnate/sureshops-api/internal/api/vendors/models"
	"github.com/MHYAnate/sureshops-api/internal/database"
	"github.com/MHYAnate/sureshops-api/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo validator (global.InitValidator đăng ký các custom validator: no_xss, no_sql_injection, strong_password)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection theo struct tag `index` của model.
	// Bao gồm 2dsphere cho location và các compound unique chống trùng dữ liệu.
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.States), geomodels.State{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Areas), geomodels.Area{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Markets), geomodels.Market{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.CatalogItems), catalogmodels.CatalogItem{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Vendors), vendormodels.Vendor{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Products), productmodels.Product{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Reviews), reviewmodels.Review{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Favorites), favoritemodels.Favorite{})

	// Index compound bổ sung phục vụ search (không mô tả được qua struct tag)
	if err := database.CreateMarketplaceAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Warnf("Failed to create additional search indexes: %v", err)
	}
}
