// Package bugsvc - Test SaveEntry validate trước khi ghi.
package bugsvc

import (
	"context"
	"errors"
	"testing"

	basesvc "github.com/ChiragDawra/BrainBug/internal/api/base/service"
	"github.com/ChiragDawra/BrainBug/internal/api/bugs/models"
	"github.com/ChiragDawra/BrainBug/internal/common"
	"github.com/ChiragDawra/BrainBug/internal/global"
)

// Service với collection nil: nếu SaveEntry đụng tới database trước khi
// validate xong thì test sẽ panic.
func newEntryServiceNoDB() *BugEntryService {
	return &BugEntryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.BugEntry](nil),
	}
}

func TestSaveEntry_ValidationFailNoWrite(t *testing.T) {
	global.InitValidator()
	svc := newEntryServiceNoDB()

	// Thiếu gần hết field bắt buộc
	entry := models.BugEntry{UserID: "demo-user"}
	_, err := svc.SaveEntry(context.Background(), entry)
	if err == nil {
		t.Fatal("entry thiếu field bắt buộc phải bị từ chối")
	}

	var customErr *common.Error
	if !errors.As(err, &customErr) {
		t.Fatalf("lỗi validation phải là *common.Error, got %T", err)
	}
	if customErr.StatusCode != common.StatusBadRequest {
		t.Errorf("StatusCode = %d, muốn %d", customErr.StatusCode, common.StatusBadRequest)
	}
}

func TestSaveEntry_LanguageOutsideSetRejected(t *testing.T) {
	global.InitValidator()
	svc := newEntryServiceNoDB()

	entry := models.BugEntry{
		UserID:         "demo-user",
		ProjectName:    "shopcart",
		Language:       "COBOL", // ngoài tập cho phép
		FilePath:       "shopcart/src/app.ts",
		BugType:        "Logic Error",
		RootCause:      "r",
		Recommendation: "c",
		SuggestedFix:   "f",
	}
	if _, err := svc.SaveEntry(context.Background(), entry); err == nil {
		t.Fatal("language ngoài tập cho phép phải bị từ chối")
	}
}
