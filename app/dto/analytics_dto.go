package dto

// ListClicksRequest bounds a click listing; From/To are milliseconds since epoch
type ListClicksRequest struct {
	Slug  string `json:"slug" validate:"required"`
	From  *int64 `json:"from,omitempty" validate:"omitempty,gte=0"`
	To    *int64 `json:"to,omitempty" validate:"omitempty,gte=0"`
	Limit int    `json:"limit,omitempty" validate:"omitempty,gte=1,lte=1000"`
}

// ClickEventItem is one entry of the analytics log
type ClickEventItem struct {
	ID        string `json:"id"`
	ItemID    string `json:"item_id"`
	IsGated   bool   `json:"is_gated"`
	Timestamp int64  `json:"timestamp"`
	ClickedAt string `json:"clicked_at"`
}

// ListClicksResponse is the result of a click listing
type ListClicksResponse struct {
	Slug   string           `json:"slug"`
	From   *int64           `json:"from,omitempty"`
	To     *int64           `json:"to,omitempty"`
	Count  int              `json:"count"`
	Clicks []ClickEventItem `json:"clicks"`
}

// ClickExport is an xlsx workbook of clicks. Truncated is set when the range
// held more clicks than one workbook takes.
type ClickExport struct {
	Filename  string
	Data      []byte
	Rows      int
	Truncated bool
}

// ItemClickCountResponse is the running click count of one item
type ItemClickCountResponse struct {
	Slug   string `json:"slug"`
	ItemID string `json:"item_id"`
	Count  int64  `json:"count"`
}

// ItemClickCountsResponse maps item ids to their running click counts
type ItemClickCountsResponse struct {
	Slug   string           `json:"slug"`
	Counts map[string]int64 `json:"counts"`
	Total  int64            `json:"total"`
}
