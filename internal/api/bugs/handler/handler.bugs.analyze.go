package bugshdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/ChiragDawra/BrainBug/internal/api/base/handler"
	"github.com/ChiragDawra/BrainBug/internal/api/bugs/dto"
	"github.com/ChiragDawra/BrainBug/internal/logger"
)

// HandleAnalyze xử lý POST /analyze — chạy trọn pipeline phân tích.
// Validate input trước khi đụng tới bất kỳ dịch vụ ngoài nào.
func (h *BugsHandler) HandleAnalyze(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input dto.AnalyzeInput
		_ = c.Bind().Body(&input)

		if input.Code == "" {
			return basehdl.BadRequest(c, "Code is required")
		}
		if input.UserID == "" {
			return basehdl.BadRequest(c, "userId is required")
		}

		output, err := h.AnalyzeService.Analyze(c.Context(), input)
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Pipeline phân tích thất bại")
			return basehdl.HandleError(c, err)
		}

		return basehdl.JSONResponse(c, fiber.StatusOK, fiber.Map{
			"success": true,
			"ml":      output.ML,
			"gemini":  output.Gemini,
			"bugEntry": fiber.Map{
				"id":          output.Entry.ID,
				"bugType":     output.Entry.BugType,
				"projectName": output.Entry.ProjectName,
				"language":    output.Entry.Language,
			},
		})
	})
}
