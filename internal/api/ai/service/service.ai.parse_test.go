// Package aisvc - Test parse kết quả Gemini: JSON trực tiếp, JSON trong fence, fallback.
package aisvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAnalysis_ValidJSON(t *testing.T) {
	raw := `{"bugType":"Null Pointer","rootCause":"Missing nil check","recommendation":"Add a guard","suggestedFix":"if x == nil { return }"}`
	result := ParseAnalysis(raw)

	assert.Equal(t, "Null Pointer", result.BugType)
	assert.Equal(t, "Missing nil check", result.RootCause)
	assert.Equal(t, "Add a guard", result.Recommendation)
	assert.Equal(t, "if x == nil { return }", result.SuggestedFix)
}

func TestParseAnalysis_FencedJSON(t *testing.T) {
	raw := "```json\n{\"bugType\":\"Logic Error\",\"rootCause\":\"Wrong comparison\",\"recommendation\":\"Use ==\",\"suggestedFix\":\"a == b\"}\n```"
	result := ParseAnalysis(raw)

	assert.Equal(t, "Logic Error", result.BugType)
	assert.Equal(t, "Wrong comparison", result.RootCause)
}

func TestParseAnalysis_FencedWithoutLanguageHint(t *testing.T) {
	raw := "```\n{\"bugType\":\"Syntax Error\",\"rootCause\":\"x\",\"recommendation\":\"y\",\"suggestedFix\":\"z\"}\n```"
	result := ParseAnalysis(raw)

	assert.Equal(t, "Syntax Error", result.BugType)
}

func TestParseAnalysis_UnparsableFallback(t *testing.T) {
	raw := "The code has a bug somewhere near line 5."
	result := ParseAnalysis(raw)

	assert.Equal(t, "Unknown", result.BugType)
	assert.Equal(t, raw, result.RootCause)
	assert.Equal(t, "Review the code carefully", result.Recommendation)
	assert.Equal(t, "Please review the analysis above", result.SuggestedFix)
}

func TestParseAnalysis_EmptyFallback(t *testing.T) {
	result := ParseAnalysis("")

	assert.Equal(t, "Unknown", result.BugType)
	assert.Equal(t, "Analysis unavailable", result.RootCause)
}

func TestParseAnalysis_MissingFieldsStayEmpty(t *testing.T) {
	// Parse thành công nhưng thiếu field: giữ rỗng, default áp ở tầng lưu entry
	result := ParseAnalysis(`{"bugType":"Race Condition"}`)

	assert.Equal(t, "Race Condition", result.BugType)
	assert.Empty(t, result.RootCause)
	assert.Empty(t, result.Recommendation)
	assert.Empty(t, result.SuggestedFix)
}

func TestParseAnalysis_ExtraFieldsIgnored(t *testing.T) {
	raw := `{"projectName":"shopcart","language":"TypeScript","bugType":"Type Error","rootCause":"r","recommendation":"c","suggestedFix":"f"}`
	result := ParseAnalysis(raw)

	// projectName/language từ model bị bỏ qua, classifier là nguồn duy nhất
	assert.Equal(t, "Type Error", result.BugType)
}
