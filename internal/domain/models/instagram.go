package models

import (
	"time"

	"github.com/google/uuid"
)

type ImportStatus string

const (
	ImportStatusPendingReview ImportStatus = "pending_review"
	ImportStatusProcessed     ImportStatus = "processed"
	ImportStatusIgnored       ImportStatus = "ignored"
)

func (s ImportStatus) Valid() bool {
	switch s {
	case ImportStatusPendingReview, ImportStatusProcessed, ImportStatusIgnored:
		return true
	}
	return false
}

// InstagramImportedItem is an externally sourced image waiting for review.
// ImageURL and Caption are kept as provenance once the item is processed.
type InstagramImportedItem struct {
	ID               uuid.UUID     `db:"id" json:"id"`
	ExternalPostID   string        `db:"external_post_id" json:"external_post_id"`
	ImageURL         string        `db:"image_url" json:"image_url"`
	Caption          string        `db:"caption" json:"caption"`
	ImportedAt       time.Time     `db:"imported_at" json:"imported_at"`
	Status           ImportStatus  `db:"status" json:"status"`
	CreatedArtworkID uuid.NullUUID `db:"created_artwork_id" json:"created_artwork_id" swaggertype:"string"`
}
