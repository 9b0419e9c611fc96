package businessflow

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/amirphl/linkbio/app/dto"
	"github.com/amirphl/linkbio/models"
	"github.com/amirphl/linkbio/repository"
	"github.com/amirphl/linkbio/utils"
	"github.com/google/uuid"
)

// ClickRecorderFlow records validated clicks. It is write-only for callers:
// a nil error means both the analytics log append and the item counter
// increment were accepted by the store.
// Public flow, no authentication required
type ClickRecorderFlow interface {
	Record(ctx context.Context, req *dto.RecordClickRequest) error
}

type ClickRecorderFlowImpl struct {
	store repository.ClickStore
	now   func() time.Time
	newID func() string
}

func NewClickRecorderFlow(store repository.ClickStore) ClickRecorderFlow {
	return &ClickRecorderFlowImpl{
		store: store,
		now:   utils.UTCNow,
		newID: uuid.NewString,
	}
}

// Record stamps the click with the server time and issues both store writes.
// The writes are independent: a failure of one does not prevent or undo the
// other, so the counter and the log length may diverge. Nothing is retried here.
func (f *ClickRecorderFlowImpl) Record(ctx context.Context, req *dto.RecordClickRequest) error {
	if req == nil || req.Slug == "" {
		return NewBusinessError("VALIDATION_ERROR", "slug is required", ErrSlugRequired)
	}
	if req.ItemID == "" {
		return NewBusinessError("VALIDATION_ERROR", "itemId is required", ErrItemIDRequired)
	}

	event := &models.ClickEvent{
		ID:        f.newID(),
		Slug:      req.Slug,
		ItemID:    req.ItemID,
		IsGated:   utils.IsTrue(req.IsGated),
		Timestamp: f.now().UnixMilli(),
	}

	var errs []error
	if err := f.store.AppendClick(ctx, event); err != nil {
		clickStoreFailuresTotal.WithLabelValues("log_append").Inc()
		errs = append(errs, err)
	}
	if _, err := f.store.IncrementItemCounter(ctx, event.Slug, event.ItemID); err != nil {
		clickStoreFailuresTotal.WithLabelValues("counter_increment").Inc()
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		if len(errs) == 1 {
			log.Printf("Partial click write for slug=%s item=%s: %v", event.Slug, event.ItemID, errs[0])
		}
		return NewBusinessError("CLICK_RECORD_FAILED", "Failed to record click", errors.Join(append(errs, ErrClickStoreFailed)...))
	}

	clicksRecordedTotal.Inc()
	return nil
}
