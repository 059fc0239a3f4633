package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxAdditionalImages is the number of extra images an artwork may carry.
const MaxAdditionalImages = 5

// Slug column widths.
const (
	CategorySlugLength = 100
	ArtworkSlugLength  = 255
)

// GalleryCategory groups artworks in the public gallery.
type GalleryCategory struct {
	ID                  uuid.UUID `db:"id" json:"id"`
	Name                string    `db:"name" json:"name"`
	Slug                string    `db:"slug" json:"slug"`
	RepresentativeImage *string   `db:"representative_image" json:"representative_image,omitempty"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	ArtworkCount        int       `db:"-" json:"artwork_count"`
}

// Artwork is a single piece shown in the gallery.
type Artwork struct {
	ID               uuid.UUID                `db:"id" json:"id"`
	Title            string                   `db:"title" json:"title"`
	Slug             string                   `db:"slug" json:"slug"`
	PrimaryImage     string                   `db:"primary_image" json:"primary_image"`
	Description      string                   `db:"description" json:"description"`
	CategoryID       uuid.UUID                `db:"category_id" json:"category_id"`
	CreatedAt        time.Time                `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time                `db:"updated_at" json:"updated_at"`
	Tags             []string                 `db:"-" json:"tags"`
	AdditionalImages []AdditionalArtworkImage `db:"-" json:"additional_images,omitempty"`
}

// AdditionalArtworkImage is owned by exactly one artwork and deleted with it.
type AdditionalArtworkImage struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ArtworkID uuid.UUID `db:"artwork_id" json:"artwork_id"`
	Image     string    `db:"image" json:"image"`
	Caption   *string   `db:"caption" json:"caption,omitempty"`
	Order     int       `db:"sort_order" json:"order"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ArtworkFilter narrows artwork listings. Empty fields are ignored.
type ArtworkFilter struct {
	CategorySlug string
	TagSlug      string
}
