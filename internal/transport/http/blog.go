package http

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"artfolio/internal/domain/models"
	"artfolio/internal/transport/http/dto"
	"artfolio/internal/transport/http/dto/response"
)

// ListPosts godoc
// @Summary List blog posts
// @Description Newest first, optionally narrowed by tag slug.
// @Tags blog
// @Produce json
// @Param tag query string false "Tag slug"
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} response.Response{data=dto.ListResponse}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/blog [get]
func (r *Routers) ListPosts(c echo.Context) error {
	const op = "http.routers.ListPosts"

	log := r.log.With(
		slog.String("op", op),
	)

	var q dto.BlogListQuery
	if handled, err := bind(c, &q); handled {
		return err
	}

	page, perPage := pageOf(q.PageQuery)
	posts, total, err := r.BlogService.ListPosts(c.Request().Context(), q.Tag, page, perPage)
	if err != nil {
		return writeError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.NewListResponse(posts, total, q.PageQuery)))
}

// GetPost godoc
// @Summary Blog post detail
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} response.Response{data=models.BlogPost}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/blog/{slug} [get]
func (r *Routers) GetPost(c echo.Context) error {
	const op = "http.routers.GetPost"

	post, err := r.BlogService.GetPostBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(post))
}

// ListPostTags godoc
// @Summary Blog tag cloud
// @Tags blog
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Tag}
// @Router /api/v1/blog/tags [get]
func (r *Routers) ListPostTags(c echo.Context) error {
	const op = "http.routers.ListPostTags"

	tags, err := r.TaxonomyService.ListTags(c.Request().Context(), models.TagKindPost)
	if err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(tags))
}

// CreatePost godoc
// @Summary Create blog post
// @Description The caller becomes the author. The post is published immediately.
// @Tags admin-blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBlogPostRequest true "Post"
// @Success 201 {object} response.Response{data=models.BlogPost}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /api/v1/admin/posts [post]
func (r *Routers) CreatePost(c echo.Context) error {
	const op = "http.routers.CreatePost"

	log := r.log.With(
		slog.String("op", op),
	)

	authorID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
	}

	var req dto.CreateBlogPostRequest
	if handled, err := bind(c, &req); handled {
		return err
	}

	post, err := r.BlogService.CreatePost(c.Request().Context(), authorID, req)
	if err != nil {
		return writeError(c, log, err)
	}

	log.Info("post created", slog.String("id", post.ID.String()), slog.String("slug", post.Slug))

	return c.JSON(http.StatusCreated, response.SuccessResponse(post))
}

// GetPostByID godoc
// @Summary Blog post by id
// @Tags admin-blog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} response.Response{data=models.BlogPost}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/admin/posts/{id} [get]
func (r *Routers) GetPostByID(c echo.Context) error {
	const op = "http.routers.GetPostByID"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	post, err := r.BlogService.GetPostByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(post))
}

// UpdatePost godoc
// @Summary Update blog post
// @Description Author and publication time never change.
// @Tags admin-blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body dto.UpdateBlogPostRequest true "Changed fields"
// @Success 200 {object} response.Response{data=models.BlogPost}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /api/v1/admin/posts/{id} [put]
func (r *Routers) UpdatePost(c echo.Context) error {
	const op = "http.routers.UpdatePost"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	var req dto.UpdateBlogPostRequest
	if handled, err := bind(c, &req); handled {
		return err
	}

	post, err := r.BlogService.UpdatePost(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(post))
}

// DeletePost godoc
// @Summary Delete blog post
// @Tags admin-blog
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/admin/posts/{id} [delete]
func (r *Routers) DeletePost(c echo.Context) error {
	const op = "http.routers.DeletePost"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	if err := r.BlogService.DeletePost(c.Request().Context(), id); err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.NoContent(http.StatusNoContent)
}

// TagPost godoc
// @Summary Add tags to a post
// @Tags admin-blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body dto.TagsRequest true "Tag names"
// @Success 200 {object} response.Response{data=models.BlogPost}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/admin/posts/{id}/tags [post]
func (r *Routers) TagPost(c echo.Context) error {
	const op = "http.routers.TagPost"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	var req dto.TagsRequest
	if handled, err := bind(c, &req); handled {
		return err
	}

	post, err := r.BlogService.TagPost(c.Request().Context(), id, req.Tags)
	if err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(post))
}
