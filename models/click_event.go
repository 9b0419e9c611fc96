package models

// ClickEvent is one interaction with a link element on a published page.
// Timestamp is milliseconds since epoch and is assigned at ingestion.
// ID only keeps otherwise identical events distinct inside the analytics log.
type ClickEvent struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	ItemID    string `json:"itemId"`
	IsGated   bool   `json:"isGated"`
	Timestamp int64  `json:"timestamp"`
}

// ClickRange bounds an analytics log query by timestamp (inclusive, milliseconds).
// Nil bounds are open.
type ClickRange struct {
	From  *int64
	To    *int64
	Limit int
}
