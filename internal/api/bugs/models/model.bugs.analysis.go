package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Placeholder cho các narrative field khi user chưa có dữ liệu phân tích.
const (
	PlaceholderPatternRecognition = "We're still analyzing your coding patterns. Keep coding!"
	PlaceholderRootCauseAnalysis  = "No root cause analysis available yet."
	PlaceholderInsights           = "No improvement insights available yet."
	PlaceholderRecommendation     = "No personalized recommendations available yet."
)

// UserAnalysis là rollup thống kê theo user, tối đa một document cho mỗi user
// (upsert theo userId). Được tính lại từ đầu từ toàn bộ BugEntry của user
// mỗi khi có entry mới.
type UserAnalysis struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	// UserID cùng dạng mixed với BugEntry.UserID để demo user cũng có rollup
	UserID                     interface{} `json:"userId" bson:"userId" index:"unique"`
	TotalBugs                  int64       `json:"totalBugs" bson:"totalBugs"`
	MostCommonMistake          string      `json:"mostCommonMistake" bson:"mostCommonMistake"`
	ImprovementScore           int64       `json:"improvementScore" bson:"improvementScore"`
	PatternRecognition         string      `json:"patternRecognition" bson:"patternRecognition"`
	RootCauseAnalysis          string      `json:"rootCauseAnalysis" bson:"rootCauseAnalysis"`
	ImprovementInsights        string      `json:"improvementInsights" bson:"improvementInsights"`
	PersonalizedRecommendation string      `json:"personalizedRecommendation" bson:"personalizedRecommendation"`
	CreatedAt                  int64       `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt                  int64       `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
