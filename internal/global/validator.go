package global

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("bug_language", validateBugLanguage)
}

// validateNoXSS kiểm tra XSS trong các field text tự do
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateBugLanguage kiểm tra language thuộc tập cố định mà classifier sinh ra
func validateBugLanguage(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "TypeScript", "JavaScript", "Python", "Java", "Other":
		return true
	}
	return false
}
