package models

import "time"

// Content is one persisted result of a generation run. Rows are never
// updated or deleted after insertion.
type Content struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Topic     string    `json:"topic"`
	Article   string    `json:"article"`
	Script    string    `json:"script"`
	Captions  string    `json:"captions"`
	CreatedAt time.Time `json:"created_at"`
}

// ContentSummary is the history-listing projection of a Content row.
type ContentSummary struct {
	ID        int64     `json:"id"`
	Topic     string    `json:"topic"`
	CreatedAt time.Time `json:"created_at"`
}
