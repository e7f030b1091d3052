package models

import (
	"time"

	"github.com/google/uuid"
)

// AccessLogDB represents one append-only login origin record.
// The admin read path deduplicates entries by IP and caps the view at the
// ten most recent distinct origins.
type AccessLogDB struct {
	ID        int64     `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	IP        string    `json:"ip" db:"ip"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
