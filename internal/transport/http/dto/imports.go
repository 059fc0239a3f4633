package dto

import (
	"github.com/google/uuid"

	"artfolio/internal/domain/models"
)

type StageItemRequest struct {
	ExternalPostID string `json:"external_post_id" validate:"required,max=255"`
	ImageURL       string `json:"image_url" validate:"required,url,max=1024"`
	Caption        string `json:"caption,omitempty"`
}

type StageBatchRequest struct {
	Items []StageItemRequest `json:"items" validate:"required,min=1,dive"`
}

type StageBatchResponse struct {
	Staged  []models.InstagramImportedItem `json:"staged"`
	Skipped []string                       `json:"skipped"`
}

// PromoteRequest describes the artwork created from an import item.
// Without a primary image the external image is copied into the image store.
// Without a description the item caption is used.
type PromoteRequest struct {
	Title        string    `json:"title" validate:"required,max=200"`
	Slug         string    `json:"slug,omitempty" validate:"omitempty,slug,max=255"`
	PrimaryImage *string   `json:"primary_image,omitempty" validate:"omitempty,url"`
	Description  *string   `json:"description,omitempty"`
	CategoryID   uuid.UUID `json:"category_id" validate:"required" swaggertype:"string" format:"uuid"`
	Tags         []string  `json:"tags,omitempty" validate:"omitempty,dive,max=100"`
}

type BulkIDsRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1" swaggertype:"array,string"`
}

type BulkResult struct {
	Affected int64 `json:"affected"`
}

type ImportListQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=pending_review processed ignored"`
	PageQuery
}
