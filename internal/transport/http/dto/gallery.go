package dto

import (
	"github.com/google/uuid"

	"artfolio/internal/domain/models"
)

type CreateCategoryRequest struct {
	Name                string  `json:"name" validate:"required,max=100"`
	Slug                string  `json:"slug,omitempty" validate:"omitempty,slug,max=100"`
	RepresentativeImage *string `json:"representative_image,omitempty" validate:"omitempty,url"`
}

type UpdateCategoryRequest struct {
	Name                *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Slug                *string `json:"slug,omitempty" validate:"omitempty,slug,max=100"`
	RepresentativeImage *string `json:"representative_image,omitempty" validate:"omitempty,url"`
}

type CreateArtworkRequest struct {
	Title        string    `json:"title" validate:"required,max=200"`
	Slug         string    `json:"slug,omitempty" validate:"omitempty,slug,max=255"`
	PrimaryImage string    `json:"primary_image" validate:"required,url"`
	Description  string    `json:"description,omitempty"`
	CategoryID   uuid.UUID `json:"category_id" validate:"required" swaggertype:"string" format:"uuid"`
	Tags         []string  `json:"tags,omitempty" validate:"omitempty,dive,max=100"`
}

// UpdateArtworkRequest changes only the fields present. Tags, when present, replace the set.
type UpdateArtworkRequest struct {
	Title        *string    `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Slug         *string    `json:"slug,omitempty" validate:"omitempty,slug,max=255"`
	PrimaryImage *string    `json:"primary_image,omitempty" validate:"omitempty,url"`
	Description  *string    `json:"description,omitempty"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty" swaggertype:"string" format:"uuid"`
	Tags         *[]string  `json:"tags,omitempty" validate:"omitempty,dive,max=100"`
}

type AddArtworkImageRequest struct {
	Image   string  `json:"image" validate:"required,url"`
	Caption *string `json:"caption,omitempty" validate:"omitempty,max=255"`
	Order   int     `json:"order" validate:"min=0"`
}

type TagsRequest struct {
	Tags []string `json:"tags" validate:"required,min=1,dive,max=100"`
}

type ArtworkListQuery struct {
	Category string `query:"category"`
	Tag      string `query:"tag"`
	PageQuery
}

func (q ArtworkListQuery) Filter() models.ArtworkFilter {
	return models.ArtworkFilter{CategorySlug: q.Category, TagSlug: q.Tag}
}

// GalleryCategoryResponse is a category page: the category and its artworks.
type GalleryCategoryResponse struct {
	Category models.GalleryCategory `json:"category"`
	Artworks ListResponse           `json:"artworks"`
}
