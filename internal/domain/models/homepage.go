package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxFeaturedOnHomepage limits how many featured artworks the homepage shows.
// It is a display limit, more rows may be stored.
const MaxFeaturedOnHomepage = 3

type HeroSlide struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Image     string    `db:"image" json:"image"`
	LinkURL   *string   `db:"link_url" json:"link_url,omitempty"`
	Order     int       `db:"sort_order" json:"order"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type FeaturedHomepageArtwork struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ArtworkID uuid.UUID `db:"artwork_id" json:"artwork_id"`
	Order     int       `db:"sort_order" json:"order"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	// Artwork is nil when the reference could not be resolved.
	Artwork *Artwork `db:"-" json:"artwork,omitempty"`
}

type HomepageContent struct {
	HeroSlides       []HeroSlide `json:"hero_slides"`
	FeaturedArtworks []Artwork   `json:"featured_artworks"`
}
