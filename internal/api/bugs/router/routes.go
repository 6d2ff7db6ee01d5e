// Package router đăng ký các route thuộc domain bugs: analyze pipeline và báo cáo.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	bugshdl "github.com/ChiragDawra/BrainBug/internal/api/bugs/handler"
)

// Register đăng ký route của domain bugs: POST /analyze,
// GET /dashboard, GET /analytics, GET /bug-history.
func Register(root fiber.Router) error {
	handler, err := bugshdl.NewBugsHandler()
	if err != nil {
		return fmt.Errorf("create bugs handler: %w", err)
	}

	root.Post("/analyze", handler.HandleAnalyze)
	root.Get("/dashboard", handler.HandleDashboard)
	root.Get("/analytics", handler.HandleAnalytics)
	root.Get("/bug-history", handler.HandleBugHistory)

	return nil
}
