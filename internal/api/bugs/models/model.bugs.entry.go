// Package models chứa các model MongoDB cho domain bugs.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BugEntry lưu một kết quả phân tích code cho một lần submit.
// Bất biến sau khi insert: không có endpoint update/delete.
type BugEntry struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	// UserID có thể là primitive.ObjectID (user thật) hoặc string (demo user),
	// được resolve một lần tại ingress qua ResolveUserKey.
	UserID         interface{} `json:"userId" bson:"userId" validate:"required" index:"single"`
	ProjectName    string      `json:"projectName" bson:"projectName" validate:"required,no_xss"`
	Language       string      `json:"language" bson:"language" validate:"required,bug_language"`
	FilePath       string      `json:"filePath" bson:"filePath" validate:"required,no_xss"`
	BugType        string      `json:"bugType" bson:"bugType" validate:"required" index:"single"`
	RootCause      string      `json:"rootCause" bson:"rootCause" validate:"required"`
	Recommendation string      `json:"recommendation" bson:"recommendation" validate:"required"`
	SuggestedFix   string      `json:"suggestedFix" bson:"suggestedFix" validate:"required"`
	Timestamp      time.Time   `json:"timestamp" bson:"timestamp" index:"single;order:-1"`
	CreatedAt      int64       `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt      int64       `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
