// Package router thiết lập route cho toàn bộ ứng dụng.
package router

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/ChiragDawra/BrainBug/internal/api/base/handler"
)

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
// Caller truyền lần lượt Register của từng domain để tránh import cycle.
type RegisterFunc func(root fiber.Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng.
// Health check đăng ký ở đây, các endpoint nghiệp vụ do từng domain tự đăng ký.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	systemHandler := basehdl.NewSystemHandler()
	app.Get("/health", systemHandler.HandleHealth)

	for _, reg := range regs {
		if err := reg(app); err != nil {
			return err
		}
	}
	return nil
}
