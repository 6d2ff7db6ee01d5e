package bugsvc

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ChiragDawra/BrainBug/internal/api/bugs/dto"
	"github.com/ChiragDawra/BrainBug/internal/api/bugs/models"
	"github.com/ChiragDawra/BrainBug/internal/common"
)

// ReportService gom các truy vấn báo cáo: dashboard, analytics, bug history.
type ReportService struct {
	entryService    *BugEntryService
	analysisService *UserAnalysisService
}

// NewReportService tạo mới ReportService
func NewReportService() (*ReportService, error) {
	entrySvc, err := NewBugEntryService()
	if err != nil {
		return nil, err
	}
	analysisSvc, err := NewUserAnalysisService()
	if err != nil {
		return nil, err
	}
	return &ReportService{
		entryService:    entrySvc,
		analysisService: analysisSvc,
	}, nil
}

// GetDashboard trả về tổng quan dashboard cho một user:
// stat cards, 4 narrative field, bugs theo ngày và 5 entry mới nhất.
// User chưa có entry nào: totalBugs=0, mostCommonMistake="N/A", improvementScore=100.
func (s *ReportService) GetDashboard(ctx context.Context, userKey interface{}) (*dto.DashboardData, error) {
	// 1. Stat cards: group toàn bộ entries của user, push bugTypes về Go
	// để tính most-common với tie-break last-wins
	pipeline := []bson.M{
		{"$match": bson.M{"userId": userKey}},
		{"$group": bson.M{
			"_id":       nil,
			"totalBugs": bson.M{"$sum": 1},
			"bugTypes":  bson.M{"$push": "$bugType"},
		}},
	}
	cursor, err := s.entryService.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var totalBugs int64
	mostCommon := "N/A"
	if cursor.Next(ctx) {
		var doc struct {
			TotalBugs int64    `bson:"totalBugs"`
			BugTypes  []string `bson:"bugTypes"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		totalBugs = doc.TotalBugs
		if len(doc.BugTypes) > 0 {
			mostCommon = MostCommonBugType(doc.BugTypes)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	// 2. Improvement score + narrative: từ UserAnalysis nếu có, ngược lại
	// tính theo công thức / placeholder
	score := ImprovementScore(totalBugs)
	aiAnalysis := dto.AIAnalysis{
		PatternRecognition:         models.PlaceholderPatternRecognition,
		RootCauseAnalysis:          models.PlaceholderRootCauseAnalysis,
		ImprovementInsights:        models.PlaceholderInsights,
		PersonalizedRecommendation: models.PlaceholderRecommendation,
	}

	analysis, err := s.analysisService.FindOne(ctx, bson.M{"userId": userKey}, nil)
	if err == nil {
		score = analysis.ImprovementScore
		aiAnalysis = dto.AIAnalysis{
			PatternRecognition:         analysis.PatternRecognition,
			RootCauseAnalysis:          analysis.RootCauseAnalysis,
			ImprovementInsights:        analysis.ImprovementInsights,
			PersonalizedRecommendation: analysis.PersonalizedRecommendation,
		}
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	// 3. Bugs theo ngày: group theo ngày (YYYY-MM-DD), sort tăng dần
	timePipeline := []bson.M{
		{"$match": bson.M{"userId": userKey}},
		{"$group": bson.M{
			"_id": bson.M{
				"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$timestamp"},
			},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
		{"$project": bson.M{
			"date":  "$_id",
			"count": 1,
			"_id":   0,
		}},
	}
	timeCursor, err := s.entryService.Aggregate(ctx, timePipeline)
	if err != nil {
		return nil, err
	}
	defer timeCursor.Close(ctx)

	bugsVsTime := []dto.TimeBucket{}
	for timeCursor.Next(ctx) {
		var bucket struct {
			Date  string `bson:"date"`
			Count int64  `bson:"count"`
		}
		if err := timeCursor.Decode(&bucket); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		bugsVsTime = append(bugsVsTime, dto.TimeBucket{Date: bucket.Date, Count: bucket.Count})
	}
	if err := timeCursor.Err(); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	// 4. 5 entry mới nhất theo timestamp, projection field cố định
	findOpts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(5).
		SetProjection(bson.M{
			"bugType":      1,
			"projectName":  1,
			"language":     1,
			"filePath":     1,
			"timestamp":    1,
			"rootCause":    1,
			"suggestedFix": 1,
		})
	recentEntries, err := s.entryService.Find(ctx, bson.M{"userId": userKey}, findOpts)
	if err != nil {
		return nil, err
	}

	recentBugs := make([]dto.RecentBug, 0, len(recentEntries))
	for _, e := range recentEntries {
		recentBugs = append(recentBugs, dto.RecentBug{
			BugType:      e.BugType,
			ProjectName:  e.ProjectName,
			Language:     e.Language,
			FilePath:     e.FilePath,
			Timestamp:    e.Timestamp,
			RootCause:    e.RootCause,
			SuggestedFix: e.SuggestedFix,
		})
	}

	return &dto.DashboardData{
		StatCards: dto.StatCards{
			TotalBugs:         totalBugs,
			MostCommonMistake: mostCommon,
			ImprovementScore:  score,
		},
		AIAnalysis: aiAnalysis,
		BugsVsTime: bugsVsTime,
		RecentBugs: recentBugs,
	}, nil
}
