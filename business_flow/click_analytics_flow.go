package businessflow

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/amirphl/linkbio/app/dto"
	"github.com/amirphl/linkbio/models"
	"github.com/amirphl/linkbio/repository"
	"github.com/amirphl/linkbio/utils"
	"github.com/xuri/excelize/v2"
)

// ClickAnalyticsFlow is the read side of click analytics, restricted to page owners
type ClickAnalyticsFlow interface {
	ListClicks(ctx context.Context, ownerID string, req *dto.ListClicksRequest) (*dto.ListClicksResponse, error)
	ItemClickCount(ctx context.Context, ownerID, slug, itemID string) (*dto.ItemClickCountResponse, error)
	ItemClickCounts(ctx context.Context, ownerID, slug string, itemIDs []string) (*dto.ItemClickCountsResponse, error)
	ExportClicksExcel(ctx context.Context, ownerID, slug string, from, to *int64) (*dto.ClickExport, error)
}

type ClickAnalyticsFlowImpl struct {
	store       repository.ClickStore
	pageRepo    repository.PageRepository
	linkRepo    repository.PageLinkRepository
	exportLimit int
}

func NewClickAnalyticsFlow(store repository.ClickStore, pageRepo repository.PageRepository, linkRepo repository.PageLinkRepository) ClickAnalyticsFlow {
	return &ClickAnalyticsFlowImpl{store: store, pageRepo: pageRepo, linkRepo: linkRepo, exportLimit: utils.MaxExportRows}
}

func (f *ClickAnalyticsFlowImpl) ListClicks(ctx context.Context, ownerID string, req *dto.ListClicksRequest) (*dto.ListClicksResponse, error) {
	if req == nil || strings.TrimSpace(req.Slug) == "" {
		return nil, NewBusinessError("VALIDATION_ERROR", "slug is required", ErrSlugRequired)
	}
	if err := validateClickRange(req.From, req.To); err != nil {
		return nil, err
	}
	limit := req.Limit
	if limit == 0 {
		limit = utils.DefaultClickPageSize
	}
	if limit < 1 || limit > utils.MaxClickPageSize {
		return nil, NewBusinessError("VALIDATION_ERROR", "Invalid limit", ErrInvalidLimit)
	}

	if _, err := f.ownedPage(ctx, ownerID, req.Slug); err != nil {
		return nil, err
	}

	events, err := f.store.RangeClicks(ctx, req.Slug, models.ClickRange{From: req.From, To: req.To, Limit: limit})
	if err != nil {
		return nil, NewBusinessError("LIST_CLICKS_FAILED", "Failed to read analytics log", err)
	}

	items := make([]dto.ClickEventItem, 0, len(events))
	for _, ev := range events {
		items = append(items, toClickEventItem(ev))
	}
	return &dto.ListClicksResponse{
		Slug:   req.Slug,
		From:   req.From,
		To:     req.To,
		Count:  len(items),
		Clicks: items,
	}, nil
}

func (f *ClickAnalyticsFlowImpl) ItemClickCount(ctx context.Context, ownerID, slug, itemID string) (*dto.ItemClickCountResponse, error) {
	if strings.TrimSpace(itemID) == "" {
		return nil, NewBusinessError("VALIDATION_ERROR", "item id is required", ErrItemIDRequired)
	}
	if _, err := f.ownedPage(ctx, ownerID, slug); err != nil {
		return nil, err
	}
	n, err := f.store.ItemCount(ctx, slug, itemID)
	if err != nil {
		return nil, NewBusinessError("ITEM_COUNT_FAILED", "Failed to read item counter", err)
	}
	return &dto.ItemClickCountResponse{Slug: slug, ItemID: itemID, Count: n}, nil
}

// ItemClickCounts reads counters for the given items, or for every link of the page when none are given
func (f *ClickAnalyticsFlowImpl) ItemClickCounts(ctx context.Context, ownerID, slug string, itemIDs []string) (*dto.ItemClickCountsResponse, error) {
	if len(itemIDs) > utils.MaxBatchCountItems {
		return nil, NewBusinessErrorf("VALIDATION_ERROR", "at most %d item ids are allowed", ErrTooManyItems, utils.MaxBatchCountItems)
	}
	page, err := f.ownedPage(ctx, ownerID, slug)
	if err != nil {
		return nil, err
	}

	if len(itemIDs) == 0 {
		links, err := f.linkRepo.ListByPage(ctx, page.ID)
		if err != nil {
			return nil, NewBusinessError("LIST_PAGE_LINKS_FAILED", "Failed to list page links", err)
		}
		for _, l := range links {
			itemIDs = append(itemIDs, l.UUID.String())
		}
	}

	counts, err := f.store.ItemCounts(ctx, slug, itemIDs)
	if err != nil {
		return nil, NewBusinessError("ITEM_COUNT_FAILED", "Failed to read item counters", err)
	}
	var total int64
	for _, n := range counts {
		total += n
	}
	return &dto.ItemClickCountsResponse{Slug: slug, Counts: counts, Total: total}, nil
}

// ExportClicksExcel writes the oldest clicks of a page within [from, to] into a single-sheet
// workbook, at most exportLimit rows. Truncated reports whether later clicks were left out.
func (f *ClickAnalyticsFlowImpl) ExportClicksExcel(ctx context.Context, ownerID, slug string, from, to *int64) (*dto.ClickExport, error) {
	if err := validateClickRange(from, to); err != nil {
		return nil, err
	}
	if _, err := f.ownedPage(ctx, ownerID, slug); err != nil {
		return nil, err
	}

	// one extra row tells whether the range holds more than fits
	events, err := f.store.RangeClicks(ctx, slug, models.ClickRange{From: from, To: to, Limit: f.exportLimit + 1})
	if err != nil {
		return nil, NewBusinessError("LIST_CLICKS_FAILED", "Failed to read analytics log", err)
	}
	truncated := len(events) > f.exportLimit
	if truncated {
		events = events[:f.exportLimit]
		log.Printf("Click export of %s truncated at %d rows", slug, f.exportLimit)
	}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	sheet := sanitizeSheetName(slug)
	xl.SetSheetName(xl.GetSheetName(0), sheet)

	header := []string{"id", "slug", "item_id", "is_gated", "timestamp", "clicked_at"}
	if err := xl.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, NewBusinessError("EXCEL_WRITE_ERROR", "Failed to write Excel header", err)
	}
	for i, ev := range events {
		record := []any{
			ev.ID,
			ev.Slug,
			ev.ItemID,
			strconv.FormatBool(ev.IsGated),
			ev.Timestamp,
			utils.FromUnixMilli(ev.Timestamp).Format(time.RFC3339Nano),
		}
		cellRef, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := xl.SetSheetRow(sheet, cellRef, &record); err != nil {
			return nil, NewBusinessError("EXCEL_WRITE_ERROR", "Failed to write Excel row", err)
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, NewBusinessError("EXCEL_WRITE_ERROR", "Failed to write Excel file", err)
	}
	return &dto.ClickExport{
		Filename:  fmt.Sprintf("clicks_%s.xlsx", slug),
		Data:      buf.Bytes(),
		Rows:      len(events),
		Truncated: truncated,
	}, nil
}

func (f *ClickAnalyticsFlowImpl) ownedPage(ctx context.Context, ownerID, slug string) (*models.Page, error) {
	page, err := f.pageRepo.BySlug(ctx, slug)
	if err != nil {
		return nil, NewBusinessError("PAGE_LOOKUP_FAILED", "Failed to lookup page", err)
	}
	if page == nil {
		return nil, ErrPageNotFound
	}
	if page.OwnerID != ownerID {
		return nil, ErrPageAccessDenied
	}
	return page, nil
}

func validateClickRange(from, to *int64) error {
	if from != nil && to != nil && *from > *to {
		return NewBusinessError("VALIDATION_ERROR", "Invalid click range", ErrInvalidClickRange)
	}
	return nil
}

func toClickEventItem(ev *models.ClickEvent) dto.ClickEventItem {
	return dto.ClickEventItem{
		ID:        ev.ID,
		ItemID:    ev.ItemID,
		IsGated:   ev.IsGated,
		Timestamp: ev.Timestamp,
		ClickedAt: utils.FromUnixMilli(ev.Timestamp).Format(time.RFC3339Nano),
	}
}

func sanitizeSheetName(name string) string {
	// Excel sheet names cannot contain: : \\ / ? * [ ] and must be <= 31 chars
	replacer := strings.NewReplacer(":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_")
	safe := strings.TrimSpace(replacer.Replace(name))
	if len(safe) > 31 {
		return safe[:31]
	}
	if safe == "" {
		return "Sheet1"
	}
	return safe
}
