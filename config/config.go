package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng:
// server, cơ sở dữ liệu và các dịch vụ AI bên ngoài.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":5001"`                // Địa chỉ server
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"brainbug"`      // Tên cơ sở dữ liệu
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// HuggingFace ML Classifier
	HuggingFace_Endpoint string `env:"HUGGINGFACE_ENDPOINT" envDefault:"https://router.huggingface.co/models/Sagar123x/brainbug"` // Endpoint model phân loại bug
	HuggingFace_Token    string `env:"HUGGINGFACE_API_TOKEN"`                                                                     // Token HuggingFace (rỗng = ML client trả soft failure)

	// Gemini Generative AI
	Gemini_APIKey    string `env:"GEMINI_API_KEY"`                                                                   // API key Gemini
	Gemini_BaseURL   string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`           // Base URL API Gemini
	Gemini_Models    string `env:"GEMINI_MODELS" envDefault:"gemini-2.5-flash,gemini-2.0-flash,gemini-1.5-flash-latest"` // Danh sách models theo thứ tự ưu tiên (phân cách bởi dấu phẩy)
	Gemini_Attempts  int    `env:"GEMINI_ATTEMPTS" envDefault:"3"`                                                   // Số lần thử tối đa cho mỗi model
	Gemini_BackoffMs int    `env:"GEMINI_BACKOFF_MS" envDefault:"2000"`                                              // Đơn vị backoff khi bị rate limit (ms)

	// Timeout cho mỗi lần gọi dịch vụ AI bên ngoài (giây)
	AI_TimeoutSeconds int `env:"AI_TIMEOUT_SECONDS" envDefault:"30"`
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Tìm thư mục config/env bằng cách đi lên từ thư mục hiện tại
	currentDir, err := os.Getwd()
	if err != nil {
		// Dùng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc dữ liệu cấu hình từ file env theo GO_ENV
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}

// GeminiModelList trả về danh sách models theo thứ tự ưu tiên.
func (c *Configuration) GeminiModelList() []string {
	parts := strings.Split(c.Gemini_Models, ",")
	models := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			models = append(models, p)
		}
	}
	return models
}
