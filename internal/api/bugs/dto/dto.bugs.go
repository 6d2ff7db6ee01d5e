// Package dto chứa các kiểu request/response cho domain bugs.
package dto

import "time"

// AnalyzeInput là body của POST /analyze
type AnalyzeInput struct {
	Code     string `json:"code" validate:"required"`
	FilePath string `json:"filePath"` // Optional, rỗng thì project = Unknown, language = Other
	UserID   string `json:"userId" validate:"required"`
}

// AnalysisResult là kết quả phân tích có cấu trúc từ Gemini (sau khi parse)
type AnalysisResult struct {
	BugType        string `json:"bugType"`
	RootCause      string `json:"rootCause"`
	Recommendation string `json:"recommendation"`
	SuggestedFix   string `json:"suggestedFix"`
}

// StatCards là phần thống kê tổng quan của dashboard
type StatCards struct {
	TotalBugs         int64  `json:"totalBugs"`
	MostCommonMistake string `json:"mostCommonMistake"`
	ImprovementScore  int64  `json:"improvementScore"`
}

// AIAnalysis là 4 narrative field từ UserAnalysis (hoặc placeholder)
type AIAnalysis struct {
	PatternRecognition         string `json:"patternRecognition"`
	RootCauseAnalysis          string `json:"rootCauseAnalysis"`
	ImprovementInsights        string `json:"improvementInsights"`
	PersonalizedRecommendation string `json:"personalizedRecommendation"`
}

// TimeBucket là số bug theo ngày (YYYY-MM-DD)
type TimeBucket struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// RecentBug là projection của entry mới nhất cho dashboard
type RecentBug struct {
	BugType      string    `json:"bugType" bson:"bugType"`
	ProjectName  string    `json:"projectName" bson:"projectName"`
	Language     string    `json:"language" bson:"language"`
	FilePath     string    `json:"filePath" bson:"filePath"`
	Timestamp    time.Time `json:"timestamp" bson:"timestamp"`
	RootCause    string    `json:"rootCause" bson:"rootCause"`
	SuggestedFix string    `json:"suggestedFix" bson:"suggestedFix"`
}

// DashboardData là dữ liệu trả về của GET /dashboard
type DashboardData struct {
	StatCards  StatCards    `json:"statCards"`
	AIAnalysis AIAnalysis   `json:"aiAnalysis"`
	BugsVsTime []TimeBucket `json:"bugsVsTime"`
	RecentBugs []RecentBug  `json:"recentBugs"`
}

// BugTypeCount là một mục trong phân bố theo bugType
type BugTypeCount struct {
	BugType string `json:"bugType" bson:"bugType"`
	Count   int64  `json:"count" bson:"count"`
}

// ProjectCount là một mục trong phân bố theo project
type ProjectCount struct {
	ProjectName string `json:"projectName" bson:"projectName"`
	Count       int64  `json:"count" bson:"count"`
}

// LanguageCount là một mục trong phân bố theo language
type LanguageCount struct {
	Language string `json:"language" bson:"language"`
	Count    int64  `json:"count" bson:"count"`
}

// AnalyticsData là dữ liệu trả về của GET /analytics
type AnalyticsData struct {
	BugTypeDistribution []BugTypeCount  `json:"bugTypeDistribution"`
	BugsByProject       []ProjectCount  `json:"bugsByProject"`
	BugsByLanguage      []LanguageCount `json:"bugsByLanguage"`
}

// Pagination là metadata phân trang của GET /bug-history
type Pagination struct {
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// HistoryQuery là query params của GET /bug-history
type HistoryQuery struct {
	UserID    string `query:"userId"`
	BugType   string `query:"bugType"`
	DateRange string `query:"dateRange"`
	Page      int64  `query:"page"`
	Limit     int64  `query:"limit"`
}
