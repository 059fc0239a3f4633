package dto

type CreateBlogPostRequest struct {
	Title      string   `json:"title" validate:"required,max=200"`
	Slug       string   `json:"slug,omitempty" validate:"omitempty,slug,max=255"`
	CoverImage *string  `json:"cover_image,omitempty" validate:"omitempty,url"`
	Content    string   `json:"content" validate:"required"`
	Summary    string   `json:"summary,omitempty" validate:"max=500"`
	Tags       []string `json:"tags,omitempty" validate:"omitempty,dive,max=100"`
}

type UpdateBlogPostRequest struct {
	Title      *string   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Slug       *string   `json:"slug,omitempty" validate:"omitempty,slug,max=255"`
	CoverImage *string   `json:"cover_image,omitempty" validate:"omitempty,url"`
	Content    *string   `json:"content,omitempty" validate:"omitempty,min=1"`
	Summary    *string   `json:"summary,omitempty" validate:"omitempty,max=500"`
	Tags       *[]string `json:"tags,omitempty" validate:"omitempty,dive,max=100"`
}

type BlogListQuery struct {
	Tag string `query:"tag"`
	PageQuery
}
