package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportDB represents a user-submitted report row in the database.
// A user may report a given item at most once.
type ReportDB struct {
	ReportID     uuid.UUID `json:"report_id" db:"report_id"`
	ItemID       uuid.UUID `json:"item_id" db:"item_id"`           // Reported listing
	ReporterID   uuid.UUID `json:"reporter_id" db:"reporter_id"`   // Acting user
	ReporterName string    `json:"reporter_name" db:"reporter_name"`
	ReportedName string    `json:"reported_name" db:"reported_name"`
	Reason       string    `json:"reason" db:"reason"`
	Description  string    `json:"description" db:"description"`
	ImageURL     *string   `json:"image_url" db:"image_url"` // Optional evidence image
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
