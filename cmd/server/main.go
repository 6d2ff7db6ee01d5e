package main

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/ChiragDawra/BrainBug/internal/global"
	"github.com/ChiragDawra/BrainBug/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app := InitFiberApp()

	cfg := global.ServerConfig
	log := logger.GetAppLogger()

	log.WithFields(map[string]interface{}{
		"address":  cfg.Address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server...")

	if err := app.Listen(cfg.Address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục: config, validator, database
	InitGlobal()

	// Đăng ký các collection vào registry
	InitRegistry()

	// Chạy Fiber server trên main thread
	main_thread()
}
