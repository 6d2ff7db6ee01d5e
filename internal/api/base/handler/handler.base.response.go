package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"github.com/ChiragDawra/BrainBug/internal/common"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8.
// Helper này đảm bảo tất cả JSON responses đều có charset=utf-8.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// BadRequest trả về 400 với body {"error": message}.
func BadRequest(c fiber.Ctx, message string) error {
	return JSONResponse(c, common.StatusBadRequest, fiber.Map{
		"error": message,
	})
}

// InternalError trả về 500 với body {"error": "Internal Server Error", "message": message}.
func InternalError(c fiber.Ctx, message string) error {
	return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"error":   "Internal Server Error",
		"message": message,
	})
}

// HandleError ánh xạ lỗi từ service layer sang HTTP response:
// lỗi validation (4xx) trả {"error"}, các lỗi còn lại trả {"error", "message"}.
func HandleError(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		if customErr.StatusCode >= 400 && customErr.StatusCode < 500 {
			return JSONResponse(c, customErr.StatusCode, fiber.Map{
				"error": customErr.Message,
			})
		}
		return InternalError(c, customErr.Message)
	}
	return InternalError(c, err.Error())
}

// SafeHandlerWrapper bọc handler với recover để bắt panic và trả về response an toàn.
// Đảm bảo server luôn trả về response cho client, kể cả khi có panic xảy ra.
func SafeHandlerWrapper(c fiber.Ctx, fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()
			_ = InternalError(c, fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r))
		}
	}()
	return fn()
}
