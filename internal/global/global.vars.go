package global

import (
	"github.com/MHYAnate/sureshops-api/config"
	"github.com/MHYAnate/sureshops-api/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users        string // Tên collection cho người dùng
	States       string // Tên collection cho tỉnh/bang
	Areas        string // Tên collection cho khu vực (LGA)
	Markets      string // Tên collection cho chợ/trung tâm thương mại
	CatalogItems string // Tên collection cho catalog chuẩn
	Vendors      string // Tên collection cho shop/người bán
	Products     string // Tên collection cho sản phẩm
	Reviews      string // Tên collection cho đánh giá
	Favorites    string // Tên collection cho danh sách yêu thích
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{
	Users:        "users",
	States:       "states",
	Areas:        "areas",
	Markets:      "markets",
	CatalogItems: "catalog_items",
	Vendors:      "vendors",
	Products:     "products",
	Reviews:      "reviews",
	Favorites:    "favorites",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
