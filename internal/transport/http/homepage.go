package http

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"artfolio/internal/transport/http/dto"
	"artfolio/internal/transport/http/dto/response"
)

// GetHomepage godoc
// @Summary Homepage content
// @Description Active hero slides and up to three active featured artworks, in display order.
// @Tags homepage
// @Produce json
// @Success 200 {object} response.Response{data=models.HomepageContent}
// @Router /api/v1/homepage [get]
func (r *Routers) GetHomepage(c echo.Context) error {
	const op = "http.routers.GetHomepage"

	content, err := r.HomepageService.GetHomepageContent(c.Request().Context())
	if err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(content))
}

// ListSocialLinks godoc
// @Summary Active social links
// @Tags homepage
// @Produce json
// @Success 200 {object} response.Response{data=[]models.SocialLink}
// @Router /api/v1/social-links [get]
func (r *Routers) ListSocialLinks(c echo.Context) error {
	const op = "http.routers.ListSocialLinks"

	links, err := r.HomepageService.ListSocialLinks(c.Request().Context(), false)
	if err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(links))
}

// AdminListSocialLinks godoc
// @Summary All social links
// @Description Inactive links included.
// @Tags admin-homepage
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]models.SocialLink}
// @Router /api/v1/admin/social-links [get]
func (r *Routers) AdminListSocialLinks(c echo.Context) error {
	const op = "http.routers.AdminListSocialLinks"

	links, err := r.HomepageService.ListSocialLinks(c.Request().Context(), true)
	if err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(links))
}

// ListHeroSlides godoc
// @Summary List hero slides
// @Description Inactive entries included, in display order.
// @Tags admin-homepage
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]models.HeroSlide}
// @Router /api/v1/admin/hero-slides [get]
func (r *Routers) ListHeroSlides(c echo.Context) error {
	const op = "http.routers.ListHeroSlides"

	items, err := r.HomepageService.ListHeroSlides(c.Request().Context())
	if err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(items))
}

// CreateHeroSlide godoc
// @Summary Create hero slide
// @Tags admin-homepage
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateHeroSlideRequest true "Slide"
// @Success 201 {object} response.Response{data=models.HeroSlide}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/admin/hero-slides [post]
func (r *Routers) CreateHeroSlide(c echo.Context) error {
	const op = "http.routers.CreateHeroSlide"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateHeroSlideRequest
	if handled, err := bind(c, &req); handled {
		return err
	}

	item, err := r.HomepageService.CreateHeroSlide(c.Request().Context(), req)
	if err != nil {
		return writeError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(item))
}

// UpdateHeroSlide godoc
// @Summary Update hero slide
// @Tags admin-homepage
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID"
// @Param request body dto.UpdateHeroSlideRequest true "Changed fields"
// @Success 200 {object} response.Response{data=models.HeroSlide}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/admin/hero-slides/{id} [put]
func (r *Routers) UpdateHeroSlide(c echo.Context) error {
	const op = "http.routers.UpdateHeroSlide"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	var req dto.UpdateHeroSlideRequest
	if handled, err := bind(c, &req); handled {
		return err
	}

	item, err := r.HomepageService.UpdateHeroSlide(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(item))
}

// DeleteHeroSlide godoc
// @Summary Delete hero slide
// @Tags admin-homepage
// @Security BearerAuth
// @Param id path string true "ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/admin/hero-slides/{id} [delete]
func (r *Routers) DeleteHeroSlide(c echo.Context) error {
	const op = "http.routers.DeleteHeroSlide"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	if err := r.HomepageService.DeleteHeroSlide(c.Request().Context(), id); err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListFeatured godoc
// @Summary List featured artworks
// @Description Inactive entries included, in display order.
// @Tags admin-homepage
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]models.FeaturedHomepageArtwork}
// @Router /api/v1/admin/featured [get]
func (r *Routers) ListFeatured(c echo.Context) error {
	const op = "http.routers.ListFeatured"

	items, err := r.HomepageService.ListFeatured(c.Request().Context())
	if err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(items))
}

// CreateFeatured godoc
// @Summary Create featured artwork
// @Tags admin-homepage
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFeaturedRequest true "Placement"
// @Success 201 {object} response.Response{data=models.FeaturedHomepageArtwork}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Unknown artwork"
// @Failure 409 {object} response.ErrorResponse "Artwork already featured"
// @Router /api/v1/admin/featured [post]
func (r *Routers) CreateFeatured(c echo.Context) error {
	const op = "http.routers.CreateFeatured"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateFeaturedRequest
	if handled, err := bind(c, &req); handled {
		return err
	}

	item, err := r.HomepageService.CreateFeatured(c.Request().Context(), req)
	if err != nil {
		return writeError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(item))
}

// UpdateFeatured godoc
// @Summary Update featured artwork
// @Tags admin-homepage
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID"
// @Param request body dto.UpdateFeaturedRequest true "Changed fields"
// @Success 200 {object} response.Response{data=models.FeaturedHomepageArtwork}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Artwork already featured"
// @Router /api/v1/admin/featured/{id} [put]
func (r *Routers) UpdateFeatured(c echo.Context) error {
	const op = "http.routers.UpdateFeatured"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	var req dto.UpdateFeaturedRequest
	if handled, err := bind(c, &req); handled {
		return err
	}

	item, err := r.HomepageService.UpdateFeatured(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(item))
}

// DeleteFeatured godoc
// @Summary Delete featured artwork
// @Tags admin-homepage
// @Security BearerAuth
// @Param id path string true "ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/admin/featured/{id} [delete]
func (r *Routers) DeleteFeatured(c echo.Context) error {
	const op = "http.routers.DeleteFeatured"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	if err := r.HomepageService.DeleteFeatured(c.Request().Context(), id); err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateSocialLink godoc
// @Summary Create social link
// @Tags admin-homepage
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSocialLinkRequest true "Link"
// @Success 201 {object} response.Response{data=models.SocialLink}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/admin/social-links [post]
func (r *Routers) CreateSocialLink(c echo.Context) error {
	const op = "http.routers.CreateSocialLink"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateSocialLinkRequest
	if handled, err := bind(c, &req); handled {
		return err
	}

	item, err := r.HomepageService.CreateSocialLink(c.Request().Context(), req)
	if err != nil {
		return writeError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(item))
}

// UpdateSocialLink godoc
// @Summary Update social link
// @Tags admin-homepage
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID"
// @Param request body dto.UpdateSocialLinkRequest true "Changed fields"
// @Success 200 {object} response.Response{data=models.SocialLink}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/admin/social-links/{id} [put]
func (r *Routers) UpdateSocialLink(c echo.Context) error {
	const op = "http.routers.UpdateSocialLink"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	var req dto.UpdateSocialLinkRequest
	if handled, err := bind(c, &req); handled {
		return err
	}

	item, err := r.HomepageService.UpdateSocialLink(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(item))
}

// DeleteSocialLink godoc
// @Summary Delete social link
// @Tags admin-homepage
// @Security BearerAuth
// @Param id path string true "ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/admin/social-links/{id} [delete]
func (r *Routers) DeleteSocialLink(c echo.Context) error {
	const op = "http.routers.DeleteSocialLink"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	if err := r.HomepageService.DeleteSocialLink(c.Request().Context(), id); err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.NoContent(http.StatusNoContent)
}
