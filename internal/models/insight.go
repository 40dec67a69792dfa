package models

import "time"

type Insight struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Text      string    `json:"text"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}
