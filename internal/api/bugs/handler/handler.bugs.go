// Package bugshdl - Handler cho pipeline phân tích bug và các query báo cáo.
package bugshdl

import (
	aisvc "github.com/ChiragDawra/BrainBug/internal/api/ai/service"
	bugsvc "github.com/ChiragDawra/BrainBug/internal/api/bugs/service"
	"github.com/ChiragDawra/BrainBug/internal/global"
)

// BugsHandler gom các handler của domain bugs
type BugsHandler struct {
	AnalyzeService *bugsvc.AnalyzeService
	ReportService  *bugsvc.ReportService
}

// NewBugsHandler tạo mới BugsHandler với đầy đủ services
func NewBugsHandler() (*BugsHandler, error) {
	cfg := global.ServerConfig
	analyzeSvc, err := bugsvc.NewAnalyzeService(
		aisvc.NewMLClient(cfg),
		aisvc.NewGeminiClient(cfg),
	)
	if err != nil {
		return nil, err
	}
	reportSvc, err := bugsvc.NewReportService()
	if err != nil {
		return nil, err
	}
	return &BugsHandler{
		AnalyzeService: analyzeSvc,
		ReportService:  reportSvc,
	}, nil
}
