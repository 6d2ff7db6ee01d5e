package bugsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/ChiragDawra/BrainBug/internal/api/base/service"
	"github.com/ChiragDawra/BrainBug/internal/api/bugs/models"
	"github.com/ChiragDawra/BrainBug/internal/common"
	"github.com/ChiragDawra/BrainBug/internal/global"
	"github.com/ChiragDawra/BrainBug/internal/logger"
)

// UserAnalysisService quản lý collection user_analysis (rollup theo user)
type UserAnalysisService struct {
	*basesvc.BaseServiceMongoImpl[models.UserAnalysis]
	entryService *BugEntryService
}

// NewUserAnalysisService tạo mới UserAnalysisService
func NewUserAnalysisService() (*UserAnalysisService, error) {
	coll, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.UserAnalysis)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.UserAnalysis, common.ErrNotFound)
	}
	entrySvc, err := NewBugEntryService()
	if err != nil {
		return nil, err
	}
	return &UserAnalysisService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.UserAnalysis](coll),
		entryService:         entrySvc,
	}, nil
}

// MostCommonBugType trả về bug type xuất hiện nhiều nhất trong một lần quét
// tuyến tính duy nhất. Khi hòa số lượng, loại xuất hiện SAU thắng (last-wins):
// một loại về sau đạt cùng count sẽ ghi đè leader trước đó.
func MostCommonBugType(bugTypes []string) string {
	if len(bugTypes) == 0 {
		return "N/A"
	}
	counts := make(map[string]int)
	best := ""
	bestCount := 0
	for _, t := range bugTypes {
		counts[t]++
		if counts[t] >= bestCount {
			best = t
			bestCount = counts[t]
		}
	}
	return best
}

// ImprovementScore tính điểm cải thiện: max(0, 100 - 2*totalBugs).
func ImprovementScore(totalBugs int64) int64 {
	score := 100 - 2*totalBugs
	if score < 0 {
		return 0
	}
	return score
}

// buildNarratives sinh 4 narrative field bằng string templating thuần
// trên (total, mostCommon) — không gọi AI.
func buildNarratives(total int64, mostCommon string) (pattern, rootCause, insights, recommendation string) {
	pattern = fmt.Sprintf("You have logged %d bugs so far. The pattern that stands out most is %s.", total, mostCommon)
	rootCause = fmt.Sprintf("Most of your bugs trace back to %s issues.", mostCommon)
	insights = fmt.Sprintf("Reducing recurring %s mistakes would raise your improvement score above %d.", mostCommon, ImprovementScore(total))
	recommendation = fmt.Sprintf("Focus on preventing %s bugs in your next coding sessions.", mostCommon)
	return
}

// Recompute tính lại rollup từ đầu từ toàn bộ BugEntry của user và upsert
// vào user_analysis. User không có entry nào thì no-op.
// Upsert là last-write-wins: vì luôn tính từ tập entry đầy đủ nên kết quả
// hội tụ bất kể các request đua nhau.
func (s *UserAnalysisService) Recompute(ctx context.Context, userKey interface{}) error {
	entries, err := s.entryService.Find(ctx, bson.M{"userId": userKey}, nil)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	bugTypes := make([]string, len(entries))
	for i, e := range entries {
		bugTypes[i] = e.BugType
	}

	total := int64(len(entries))
	mostCommon := MostCommonBugType(bugTypes)
	pattern, rootCause, insights, recommendation := buildNarratives(total, mostCommon)

	analysis := models.UserAnalysis{
		UserID:                     userKey,
		TotalBugs:                  total,
		MostCommonMistake:          mostCommon,
		ImprovementScore:           ImprovementScore(total),
		PatternRecognition:         pattern,
		RootCauseAnalysis:          rootCause,
		ImprovementInsights:        insights,
		PersonalizedRecommendation: recommendation,
	}

	_, err = s.Upsert(ctx, bson.M{"userId": userKey}, analysis)
	return err
}

// RecomputeAsync chạy Recompute trong goroutine riêng, fire-and-forget:
// request gốc không đợi, lỗi chỉ được log (tag bestEffort) và nuốt.
func (s *UserAnalysisService) RecomputeAsync(userKey interface{}) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.WithModule("bugs").WithFields(map[string]interface{}{
					"panic":      r,
					"bestEffort": true,
				}).Error("Panic khi recompute user analysis")
			}
		}()

		if err := s.Recompute(context.Background(), userKey); err != nil {
			logger.WithModule("bugs").WithError(err).WithFields(map[string]interface{}{
				"userId":     fmt.Sprintf("%v", userKey),
				"bestEffort": true,
			}).Error("Recompute user analysis thất bại")
		}
	}()
}
