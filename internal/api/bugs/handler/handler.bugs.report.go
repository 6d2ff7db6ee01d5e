package bugshdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/ChiragDawra/BrainBug/internal/api/base/handler"
	"github.com/ChiragDawra/BrainBug/internal/api/bugs/dto"
	"github.com/ChiragDawra/BrainBug/internal/api/bugs/models"
	"github.com/ChiragDawra/BrainBug/internal/logger"
)

// queryInt64 đọc query param số, trả về fallback khi thiếu hoặc không parse được
func queryInt64(c fiber.Ctx, key string, fallback int64) int64 {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}

// HandleDashboard xử lý GET /dashboard?userId=...
func (h *BugsHandler) HandleDashboard(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		userID := c.Query("userId")
		if userID == "" {
			return basehdl.BadRequest(c, "userId is required")
		}

		data, err := h.ReportService.GetDashboard(c.Context(), models.ResolveUserKey(userID))
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Truy vấn dashboard thất bại")
			return basehdl.HandleError(c, err)
		}

		return basehdl.JSONResponse(c, fiber.StatusOK, fiber.Map{
			"success":    true,
			"statCards":  data.StatCards,
			"aiAnalysis": data.AIAnalysis,
			"bugsVsTime": data.BugsVsTime,
			"recentBugs": data.RecentBugs,
		})
	})
}

// HandleAnalytics xử lý GET /analytics?userId=...
func (h *BugsHandler) HandleAnalytics(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		userID := c.Query("userId")
		if userID == "" {
			return basehdl.BadRequest(c, "userId is required")
		}

		data, err := h.ReportService.GetAnalytics(c.Context(), models.ResolveUserKey(userID))
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Truy vấn analytics thất bại")
			return basehdl.HandleError(c, err)
		}

		return basehdl.JSONResponse(c, fiber.StatusOK, fiber.Map{
			"success":             true,
			"bugTypeDistribution": data.BugTypeDistribution,
			"bugsByProject":       data.BugsByProject,
			"bugsByLanguage":      data.BugsByLanguage,
		})
	})
}

// HandleBugHistory xử lý GET /bug-history với filter + phân trang.
// Query: userId (bắt buộc), bugType, dateRange, page (mặc định 1), limit (mặc định 10).
func (h *BugsHandler) HandleBugHistory(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		query := dto.HistoryQuery{
			UserID:    c.Query("userId"),
			BugType:   c.Query("bugType"),
			DateRange: c.Query("dateRange"),
			Page:      queryInt64(c, "page", 1),
			Limit:     queryInt64(c, "limit", 10),
		}
		if query.UserID == "" {
			return basehdl.BadRequest(c, "userId is required")
		}

		result, err := h.ReportService.GetBugHistory(
			c.Context(),
			models.ResolveUserKey(query.UserID),
			query.BugType,
			query.DateRange,
			query.Page,
			query.Limit,
		)
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Truy vấn bug history thất bại")
			return basehdl.HandleError(c, err)
		}

		return basehdl.JSONResponse(c, fiber.StatusOK, fiber.Map{
			"success": true,
			"data":    result.Items,
			"pagination": dto.Pagination{
				Page:       result.Page,
				Limit:      result.Limit,
				Total:      result.Total,
				TotalPages: result.TotalPage,
			},
		})
	})
}
