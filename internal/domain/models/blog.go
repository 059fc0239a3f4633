package models

import (
	"time"

	"github.com/google/uuid"
)

const MaxSummaryLength = 500

const PostSlugLength = 255

type BlogPost struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Slug        string    `db:"slug" json:"slug"`
	CoverImage  *string   `db:"cover_image" json:"cover_image,omitempty"`
	Content     string    `db:"content" json:"content"`
	Summary     string    `db:"summary" json:"summary"`
	AuthorID    uuid.UUID `db:"author_id" json:"author_id"`
	AuthorName  string    `db:"-" json:"author_name,omitempty"`
	PublishedAt time.Time `db:"published_at" json:"published_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
	Tags        []string  `db:"-" json:"tags"`
}
