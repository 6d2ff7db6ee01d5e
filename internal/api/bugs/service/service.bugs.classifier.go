// Package bugsvc chứa business logic cho domain bugs: classifier,
// lưu entry, rollup phân tích theo user và các truy vấn báo cáo.
package bugsvc

import (
	"path/filepath"
	"strings"
)

// languageByExt là bảng tra cố định từ extension (lowercase, không có dấu chấm)
// sang language tag. Mọi extension ngoài bảng trả về "Other".
var languageByExt = map[string]string{
	"ts":   "TypeScript",
	"tsx":  "TypeScript",
	"js":   "JavaScript",
	"jsx":  "JavaScript",
	"py":   "Python",
	"java": "Java",
}

// ProjectFromPath trả về tên project: path segment đầu tiên không rỗng,
// hoặc "Unknown" nếu path rỗng. Hàm thuần, không có error case.
func ProjectFromPath(path string) string {
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			return segment
		}
	}
	return "Unknown"
}

// LanguageFromPath trả về language tag từ extension của file path.
// Kết quả luôn thuộc tập {TypeScript, JavaScript, Python, Java, Other}.
func LanguageFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if lang, ok := languageByExt[ext]; ok {
		return lang
	}
	return "Other"
}
