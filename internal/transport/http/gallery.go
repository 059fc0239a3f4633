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

// ListCategories godoc
// @Summary List gallery categories
// @Description Every category with its artwork count, ordered by name.
// @Tags gallery
// @Produce json
// @Success 200 {object} response.Response{data=[]models.GalleryCategory}
// @Router /api/v1/gallery/categories [get]
func (r *Routers) ListCategories(c echo.Context) error {
	const op = "http.routers.ListCategories"

	categories, err := r.TaxonomyService.ListCategories(c.Request().Context())
	if err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(categories))
}

// GetCategory godoc
// @Summary Category page
// @Description The category and a page of its artworks, newest first.
// @Tags gallery
// @Produce json
// @Param slug path string true "Category slug"
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} response.Response{data=dto.GalleryCategoryResponse}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/gallery/categories/{slug} [get]
func (r *Routers) GetCategory(c echo.Context) error {
	const op = "http.routers.GetCategory"

	log := r.log.With(
		slog.String("op", op),
		slog.String("slug", c.Param("slug")),
	)

	var q dto.PageQuery
	if handled, err := bind(c, &q); handled {
		return err
	}

	category, err := r.TaxonomyService.GetCategoryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, log, err)
	}

	page, perPage := pageOf(q)
	artworks, total, err := r.ArtworkService.ListArtworks(c.Request().Context(),
		models.ArtworkFilter{CategorySlug: category.Slug}, page, perPage)
	if err != nil {
		return writeError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.GalleryCategoryResponse{
		Category: category,
		Artworks: dto.NewListResponse(artworks, total, q),
	}))
}

// ListArtworks godoc
// @Summary List artworks
// @Description Artworks newest first, optionally narrowed by category and tag slug.
// @Tags gallery
// @Produce json
// @Param category query string false "Category slug"
// @Param tag query string false "Tag slug"
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} response.Response{data=dto.ListResponse}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/gallery/artworks [get]
func (r *Routers) ListArtworks(c echo.Context) error {
	const op = "http.routers.ListArtworks"

	log := r.log.With(
		slog.String("op", op),
	)

	var q dto.ArtworkListQuery
	if handled, err := bind(c, &q); handled {
		return err
	}

	page, perPage := pageOf(q.PageQuery)
	artworks, total, err := r.ArtworkService.ListArtworks(c.Request().Context(), q.Filter(), page, perPage)
	if err != nil {
		return writeError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.NewListResponse(artworks, total, q.PageQuery)))
}

// GetArtwork godoc
// @Summary Artwork detail
// @Tags gallery
// @Produce json
// @Param slug path string true "Artwork slug"
// @Success 200 {object} response.Response{data=models.Artwork}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/gallery/artworks/{slug} [get]
func (r *Routers) GetArtwork(c echo.Context) error {
	const op = "http.routers.GetArtwork"

	artwork, err := r.ArtworkService.GetArtworkBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(artwork))
}

// ListArtworkTags godoc
// @Summary Artwork tag cloud
// @Description Tags used by at least one artwork, with usage counts.
// @Tags gallery
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Tag}
// @Router /api/v1/gallery/tags [get]
func (r *Routers) ListArtworkTags(c echo.Context) error {
	const op = "http.routers.ListArtworkTags"

	tags, err := r.TaxonomyService.ListTags(c.Request().Context(), models.TagKindArtwork)
	if err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(tags))
}

// CreateCategory godoc
// @Summary Create category
// @Description The slug is derived from the name when omitted.
// @Tags admin-gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} response.Response{data=models.GalleryCategory}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Name or slug taken"
// @Router /api/v1/admin/categories [post]
func (r *Routers) CreateCategory(c echo.Context) error {
	const op = "http.routers.CreateCategory"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateCategoryRequest
	if handled, err := bind(c, &req); handled {
		return err
	}

	category, err := r.TaxonomyService.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return writeError(c, log, err)
	}

	log.Info("category created", slog.String("id", category.ID.String()))

	return c.JSON(http.StatusCreated, response.SuccessResponse(category))
}

// UpdateCategory godoc
// @Summary Update category
// @Tags admin-gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Changed fields"
// @Success 200 {object} response.Response{data=models.GalleryCategory}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /api/v1/admin/categories/{id} [put]
func (r *Routers) UpdateCategory(c echo.Context) error {
	const op = "http.routers.UpdateCategory"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	var req dto.UpdateCategoryRequest
	if handled, err := bind(c, &req); handled {
		return err
	}

	category, err := r.TaxonomyService.UpdateCategory(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(category))
}

// DeleteCategory godoc
// @Summary Delete category
// @Description Refused with 409 while artworks still reference the category.
// @Tags admin-gallery
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /api/v1/admin/categories/{id} [delete]
func (r *Routers) DeleteCategory(c echo.Context) error {
	const op = "http.routers.DeleteCategory"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	if err := r.TaxonomyService.DeleteCategory(c.Request().Context(), id); err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateArtwork godoc
// @Summary Create artwork
// @Tags admin-gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateArtworkRequest true "Artwork"
// @Success 201 {object} response.Response{data=models.Artwork}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Unknown category"
// @Failure 409 {object} response.ErrorResponse
// @Router /api/v1/admin/artworks [post]
func (r *Routers) CreateArtwork(c echo.Context) error {
	const op = "http.routers.CreateArtwork"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateArtworkRequest
	if handled, err := bind(c, &req); handled {
		return err
	}

	artwork, err := r.ArtworkService.CreateArtwork(c.Request().Context(), req)
	if err != nil {
		return writeError(c, log, err)
	}

	log.Info("artwork created", slog.String("id", artwork.ID.String()), slog.String("slug", artwork.Slug))

	return c.JSON(http.StatusCreated, response.SuccessResponse(artwork))
}

// GetArtworkByID godoc
// @Summary Artwork by id
// @Tags admin-gallery
// @Produce json
// @Security BearerAuth
// @Param id path string true "Artwork ID"
// @Success 200 {object} response.Response{data=models.Artwork}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/admin/artworks/{id} [get]
func (r *Routers) GetArtworkByID(c echo.Context) error {
	const op = "http.routers.GetArtworkByID"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	artwork, err := r.ArtworkService.GetArtworkByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(artwork))
}

// UpdateArtwork godoc
// @Summary Update artwork
// @Description Only present fields change. Tags, when present, replace the set.
// @Tags admin-gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Artwork ID"
// @Param request body dto.UpdateArtworkRequest true "Changed fields"
// @Success 200 {object} response.Response{data=models.Artwork}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /api/v1/admin/artworks/{id} [put]
func (r *Routers) UpdateArtwork(c echo.Context) error {
	const op = "http.routers.UpdateArtwork"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	var req dto.UpdateArtworkRequest
	if handled, err := bind(c, &req); handled {
		return err
	}

	artwork, err := r.ArtworkService.UpdateArtwork(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(artwork))
}

// DeleteArtwork godoc
// @Summary Delete artwork
// @Description Removes the artwork with its additional images, tag links and homepage placements.
// @Tags admin-gallery
// @Security BearerAuth
// @Param id path string true "Artwork ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/admin/artworks/{id} [delete]
func (r *Routers) DeleteArtwork(c echo.Context) error {
	const op = "http.routers.DeleteArtwork"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	if err := r.ArtworkService.DeleteArtwork(c.Request().Context(), id); err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListArtworkImages godoc
// @Summary Additional images of an artwork
// @Tags admin-gallery
// @Produce json
// @Security BearerAuth
// @Param id path string true "Artwork ID"
// @Success 200 {object} response.Response{data=[]models.AdditionalArtworkImage}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/admin/artworks/{id}/images [get]
func (r *Routers) ListArtworkImages(c echo.Context) error {
	const op = "http.routers.ListArtworkImages"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	images, err := r.ArtworkService.ListImages(c.Request().Context(), id)
	if err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(images))
}

// AddArtworkImage godoc
// @Summary Attach an additional image
// @Description At most five additional images per artwork.
// @Tags admin-gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Artwork ID"
// @Param request body dto.AddArtworkImageRequest true "Image"
// @Success 201 {object} response.Response{data=models.AdditionalArtworkImage}
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Capacity exceeded"
// @Router /api/v1/admin/artworks/{id}/images [post]
func (r *Routers) AddArtworkImage(c echo.Context) error {
	const op = "http.routers.AddArtworkImage"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	var req dto.AddArtworkImageRequest
	if handled, err := bind(c, &req); handled {
		return err
	}

	image, err := r.ArtworkService.AddImage(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(image))
}

// RemoveArtworkImage godoc
// @Summary Detach an additional image
// @Tags admin-gallery
// @Security BearerAuth
// @Param id path string true "Artwork ID"
// @Param image_id path string true "Image ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/admin/artworks/{id}/images/{image_id} [delete]
func (r *Routers) RemoveArtworkImage(c echo.Context) error {
	const op = "http.routers.RemoveArtworkImage"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	imageID, err := uuid.Parse(c.Param("image_id"))
	if err != nil {
		return invalidParam(c, "image_id")
	}

	if err := r.ArtworkService.RemoveImage(c.Request().Context(), id, imageID); err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.NoContent(http.StatusNoContent)
}

// TagArtwork godoc
// @Summary Add tags to an artwork
// @Description Unknown tags are created. Existing links are kept.
// @Tags admin-gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Artwork ID"
// @Param request body dto.TagsRequest true "Tag names"
// @Success 200 {object} response.Response{data=models.Artwork}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/admin/artworks/{id}/tags [post]
func (r *Routers) TagArtwork(c echo.Context) error {
	const op = "http.routers.TagArtwork"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	var req dto.TagsRequest
	if handled, err := bind(c, &req); handled {
		return err
	}

	artwork, err := r.ArtworkService.TagArtwork(c.Request().Context(), id, req.Tags)
	if err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(artwork))
}
