package models

import (
	"time"

	"github.com/google/uuid"
)

type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformPinterest Platform = "pinterest"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformOther     Platform = "other"
)

func (p Platform) Valid() bool {
	switch p {
	case PlatformFacebook, PlatformInstagram, PlatformTwitter, PlatformPinterest, PlatformLinkedIn, PlatformOther:
		return true
	}
	return false
}

type SocialLink struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Platform  Platform  `db:"platform" json:"platform"`
	URL       string    `db:"url" json:"url"`
	Icon      string    `db:"icon" json:"icon,omitempty"`
	Order     int       `db:"sort_order" json:"order"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
