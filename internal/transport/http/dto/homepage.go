package dto

import (
	"github.com/google/uuid"
)

type CreateHeroSlideRequest struct {
	Title    string  `json:"title" validate:"required,max=100"`
	Image    string  `json:"image" validate:"required,url"`
	LinkURL  *string `json:"link_url,omitempty" validate:"omitempty,url,max=255"`
	Order    int     `json:"order" validate:"min=0"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type UpdateHeroSlideRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Image    *string `json:"image,omitempty" validate:"omitempty,url"`
	LinkURL  *string `json:"link_url,omitempty" validate:"omitempty,url,max=255"`
	Order    *int    `json:"order,omitempty" validate:"omitempty,min=0"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type CreateFeaturedRequest struct {
	ArtworkID uuid.UUID `json:"artwork_id" validate:"required" swaggertype:"string" format:"uuid"`
	Order     int       `json:"order" validate:"min=0"`
	IsActive  *bool     `json:"is_active,omitempty"`
}

type UpdateFeaturedRequest struct {
	ArtworkID *uuid.UUID `json:"artwork_id,omitempty" swaggertype:"string" format:"uuid"`
	Order     *int       `json:"order,omitempty" validate:"omitempty,min=0"`
	IsActive  *bool      `json:"is_active,omitempty"`
}

type CreateSocialLinkRequest struct {
	Platform string `json:"platform" validate:"required,oneof=facebook instagram twitter pinterest linkedin other"`
	URL      string `json:"url" validate:"required,url"`
	Icon     string `json:"icon,omitempty"`
	Order    int    `json:"order" validate:"min=0"`
	IsActive *bool  `json:"is_active,omitempty"`
}

type UpdateSocialLinkRequest struct {
	Platform *string `json:"platform,omitempty" validate:"omitempty,oneof=facebook instagram twitter pinterest linkedin other"`
	URL      *string `json:"url,omitempty" validate:"omitempty,url"`
	Icon     *string `json:"icon,omitempty"`
	Order    *int    `json:"order,omitempty" validate:"omitempty,min=0"`
	IsActive *bool   `json:"is_active,omitempty"`
}
