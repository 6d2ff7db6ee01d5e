package bugsvc

import (
	"context"
	"fmt"
	"time"

	basesvc "github.com/ChiragDawra/BrainBug/internal/api/base/service"
	"github.com/ChiragDawra/BrainBug/internal/api/bugs/models"
	"github.com/ChiragDawra/BrainBug/internal/common"
	"github.com/ChiragDawra/BrainBug/internal/global"
)

// BugEntryService quản lý collection bug_entries
type BugEntryService struct {
	*basesvc.BaseServiceMongoImpl[models.BugEntry]
}

// NewBugEntryService tạo mới BugEntryService
func NewBugEntryService() (*BugEntryService, error) {
	coll, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.BugEntries)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.BugEntries, common.ErrNotFound)
	}
	return &BugEntryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.BugEntry](coll),
	}, nil
}

// SaveEntry validate các field bắt buộc và insert một BugEntry mới.
// Timestamp mặc định là thời điểm submit. Validation fail thì không ghi gì cả.
func (s *BugEntryService) SaveEntry(ctx context.Context, entry models.BugEntry) (models.BugEntry, error) {
	var zero models.BugEntry

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	if err := global.Validate.Struct(&entry); err != nil {
		return zero, common.NewError(
			common.ErrCodeValidationInput,
			"Bug entry thiếu field bắt buộc: "+err.Error(),
			common.StatusBadRequest,
			err,
		)
	}

	return s.InsertOne(ctx, entry)
}
