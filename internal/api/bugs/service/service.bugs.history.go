package bugsvc

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/ChiragDawra/BrainBug/internal/api/base/models"
	"github.com/ChiragDawra/BrainBug/internal/api/bugs/models"
)

// TimeWindow là khoảng thời gian lọc lịch sử. End = nil nghĩa là không chặn trên.
type TimeWindow struct {
	Start time.Time
	End   *time.Time
}

// ParseDateRange diễn giải tham số dateRange:
//   - các bucket đặt tên: today (0h hôm nay), week (now-7d), month (now-1 tháng),
//     year (now-1 năm) — chỉ có cận dưới
//   - "start,end" (YYYY-MM-DD,YYYY-MM-DD) — bao gồm cả hai đầu
//
// Trả về (window, true) nếu parse được, (zero, false) nếu không.
// now được truyền vào để test được với thời gian cố định.
func ParseDateRange(dateRange string, now time.Time) (TimeWindow, bool) {
	switch strings.ToLower(dateRange) {
	case "today":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return TimeWindow{Start: start}, true
	case "week":
		return TimeWindow{Start: now.AddDate(0, 0, -7)}, true
	case "month":
		return TimeWindow{Start: now.AddDate(0, -1, 0)}, true
	case "year":
		return TimeWindow{Start: now.AddDate(-1, 0, 0)}, true
	}

	// Custom range "YYYY-MM-DD,YYYY-MM-DD"
	parts := strings.Split(dateRange, ",")
	if len(parts) != 2 {
		return TimeWindow{}, false
	}
	start, err := time.Parse("2006-01-02", strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeWindow{}, false
	}
	end, err := time.Parse("2006-01-02", strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeWindow{}, false
	}
	return TimeWindow{Start: start, End: &end}, true
}

// BuildHistoryFilter xây filter Mongo cho bug history từ các tham số query.
// dateRange không hợp lệ thì bỏ qua (không lọc theo thời gian).
func BuildHistoryFilter(userKey interface{}, bugType, dateRange string, now time.Time) bson.M {
	filter := bson.M{"userId": userKey}

	if bugType != "" {
		filter["bugType"] = bugType
	}

	if dateRange != "" {
		if window, ok := ParseDateRange(dateRange, now); ok {
			timeFilter := bson.M{"$gte": window.Start}
			if window.End != nil {
				// Cả hai đầu đều inclusive
				timeFilter["$lte"] = *window.End
			}
			filter["timestamp"] = timeFilter
		}
	}

	return filter
}

// GetBugHistory trả về lịch sử bug có lọc và phân trang,
// sort theo timestamp giảm dần.
func (s *ReportService) GetBugHistory(ctx context.Context, userKey interface{}, bugType, dateRange string, page, limit int64) (*basemodels.PaginateResult[models.BugEntry], error) {
	filter := BuildHistoryFilter(userKey, bugType, dateRange, time.Now())
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	return s.entryService.FindWithPagination(ctx, filter, page, limit, opts)
}
