package bugsvc

import (
	"context"

	aisvc "github.com/ChiragDawra/BrainBug/internal/api/ai/service"
	"github.com/ChiragDawra/BrainBug/internal/api/bugs/dto"
	"github.com/ChiragDawra/BrainBug/internal/api/bugs/models"
)

// AnalyzeService điều phối pipeline phân tích:
// ML classifier (soft-fail) -> Gemini -> parse -> lưu entry -> rollup async.
type AnalyzeService struct {
	ml              *aisvc.MLClient
	gemini          *aisvc.GeminiClient
	entryService    *BugEntryService
	analysisService *UserAnalysisService
}

// AnalyzeOutput gom kết quả pipeline cho response
type AnalyzeOutput struct {
	ML     interface{}
	Gemini dto.AnalysisResult
	Entry  models.BugEntry
}

// NewAnalyzeService tạo mới AnalyzeService
func NewAnalyzeService(ml *aisvc.MLClient, gemini *aisvc.GeminiClient) (*AnalyzeService, error) {
	entrySvc, err := NewBugEntryService()
	if err != nil {
		return nil, err
	}
	analysisSvc, err := NewUserAnalysisService()
	if err != nil {
		return nil, err
	}
	return &AnalyzeService{
		ml:              ml,
		gemini:          gemini,
		entryService:    entrySvc,
		analysisService: analysisSvc,
	}, nil
}

// orDefault trả về fallback khi s rỗng
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// Analyze chạy trọn pipeline cho một đoạn code.
// ML output luôn được forward nguyên trạng (kể cả payload lỗi soft-fail);
// chỉ Gemini cạn hết model/retry mới làm request fail.
// Classifier từ filePath là nguồn duy nhất cho projectName/language —
// giá trị model đề xuất bị bỏ qua.
func (s *AnalyzeService) Analyze(ctx context.Context, input dto.AnalyzeInput) (*AnalyzeOutput, error) {
	userKey := models.ResolveUserKey(input.UserID)

	// 1. ML classifier, không bao giờ chặn pipeline
	mlOutput := s.ml.Classify(ctx, input.Code)

	// 2. Gemini với model fallback + retry
	prompt := aisvc.BuildAnalysisPrompt(input.Code, input.FilePath, mlOutput)
	text, _, err := s.gemini.Analyze(ctx, prompt)
	if err != nil {
		return nil, err
	}

	// 3. Parse (luôn thành công nhờ fallback)
	analysis := aisvc.ParseAnalysis(text)

	// 4. Phân loại project/language từ filePath
	entry := models.BugEntry{
		UserID:         userKey,
		ProjectName:    ProjectFromPath(input.FilePath),
		Language:       LanguageFromPath(input.FilePath),
		FilePath:       orDefault(input.FilePath, "Unknown"),
		BugType:        orDefault(analysis.BugType, "Unknown"),
		RootCause:      orDefault(analysis.RootCause, "No root cause provided"),
		Recommendation: orDefault(analysis.Recommendation, "No recommendation provided"),
		SuggestedFix:   orDefault(analysis.SuggestedFix, "No fix suggested"),
	}

	saved, err := s.entryService.SaveEntry(ctx, entry)
	if err != nil {
		return nil, err
	}

	// 5. Rollup best-effort, không đợi
	s.analysisService.RecomputeAsync(userKey)

	return &AnalyzeOutput{
		ML:     mlOutput,
		Gemini: analysis,
		Entry:  saved,
	}, nil
}
