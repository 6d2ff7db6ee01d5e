package aisvc

import (
	"encoding/json"
	"strings"

	"github.com/ChiragDawra/BrainBug/internal/api/bugs/dto"
)

// stripCodeFences gỡ markdown fence (```json ... ``` hoặc ``` ... ```)
// bọc quanh một JSON object, nếu có.
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Bỏ language hint ở đầu fence (json, JSON, ...)
	if idx := strings.IndexAny(s, "\n{"); idx > 0 {
		s = s[idx:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ParseAnalysis parse text trả về từ Gemini thành kết quả phân tích.
// Thứ tự: parse trực tiếp, parse sau khi gỡ markdown fence, cuối cùng là
// fallback cố định — không bao giờ fail, pipeline luôn đi tiếp.
func ParseAnalysis(raw string) dto.AnalysisResult {
	var result dto.AnalysisResult

	if err := json.Unmarshal([]byte(raw), &result); err == nil {
		return result
	}
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &result); err == nil {
		return result
	}

	rootCause := raw
	if rootCause == "" {
		rootCause = "Analysis unavailable"
	}
	return dto.AnalysisResult{
		BugType:        "Unknown",
		RootCause:      rootCause,
		Recommendation: "Review the code carefully",
		SuggestedFix:   "Please review the analysis above",
	}
}
