package logger

import (
	"os"
	"strings"

	"github.com/caarlos0/env/v10"
)

// LogConfig chứa cấu hình cho hệ thống logging.
// Các field không có envDefault: default phụ thuộc GO_ENV, xem DefaultConfig.
type LogConfig struct {
	// Log Level: trace, debug, info, warn, error, fatal
	Level string `env:"LOG_LEVEL"`

	// Log Format: json, text
	Format string `env:"LOG_FORMAT"`

	// Log Output: file, stdout, both
	Output string `env:"LOG_OUTPUT"`

	// Log Rotation
	MaxSize    int  `env:"LOG_MAX_SIZE"`    // MB
	MaxBackups int  `env:"LOG_MAX_BACKUPS"` // Số file cũ giữ lại
	MaxAge     int  `env:"LOG_MAX_AGE"`     // Số ngày giữ lại
	Compress   bool `env:"LOG_COMPRESS"`    // Nén file cũ

	// Log Paths
	LogPath         string `env:"LOG_PATH"`
	AppFile         string `env:"LOG_APP_FILE"`
	AuditFile       string `env:"LOG_AUDIT_FILE"`
	PerformanceFile string `env:"LOG_PERF_FILE"`
	ErrorFile       string `env:"LOG_ERROR_FILE"`

	// Log Filters: danh sách phân tách bằng dấu phẩy, rỗng hoặc "*" cho phép tất cả
	FilterModules     string `env:"LOG_FILTER_MODULES"`
	FilterCollections string `env:"LOG_FILTER_COLLECTIONS"`
	FilterEndpoints   string `env:"LOG_FILTER_ENDPOINTS"`
	FilterMethods     string `env:"LOG_FILTER_METHODS"`
	FilterLogTypes    string `env:"LOG_FILTER_LOG_TYPES"`
}

// DefaultConfig trả về cấu hình logging: default theo GO_ENV
// (development log debug/text, còn lại info/json), sau đó override
// bằng các biến môi trường LOG_*.
func DefaultConfig() *LogConfig {
	config := &LogConfig{
		Level:           "info",
		Format:          "json",
		Output:          "both",
		MaxSize:         100,
		MaxBackups:      7,
		MaxAge:          7,
		Compress:        true,
		LogPath:         "./logs",
		AppFile:         "app.log",
		AuditFile:       "audit.log",
		PerformanceFile: "performance.log",
		ErrorFile:       "error.log",
	}

	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" || goEnv == "development" {
		config.Level = "debug"
		config.Format = "text"
	}

	// env.Parse chỉ ghi đè các field có biến môi trường tương ứng
	if err := env.Parse(config); err != nil {
		// Cấu hình log lỗi thì vẫn chạy với default, không chặn khởi động
		return config
	}

	config.Level = strings.ToLower(config.Level)
	config.Format = strings.ToLower(config.Format)
	config.Output = strings.ToLower(config.Output)
	return config
}
