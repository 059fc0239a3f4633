package models

import (
	"github.com/google/uuid"
)

// TagKind selects which association a tag listing looks at.
// Tags share one vocabulary, artworks and posts keep separate links to it.
type TagKind string

const (
	TagKindArtwork TagKind = "artwork"
	TagKindPost    TagKind = "post"
)

const TagSlugLength = 100

type Tag struct {
	ID    uuid.UUID `db:"id" json:"id"`
	Name  string    `db:"name" json:"name"`
	Slug  string    `db:"slug" json:"slug"`
	Count int       `db:"count" json:"count"`
}
