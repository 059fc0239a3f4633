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

// StageImports godoc
// @Summary Stage external posts for review
// @Description Items whose external post id was already imported are reported as skipped.
// @Tags admin-imports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StageBatchRequest true "Items"
// @Success 201 {object} response.Response{data=dto.StageBatchResponse}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/admin/imports [post]
func (r *Routers) StageImports(c echo.Context) error {
	const op = "http.routers.StageImports"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.StageBatchRequest
	if handled, err := bind(c, &req); handled {
		return err
	}

	res, err := r.ImportService.StageBatch(c.Request().Context(), req.Items)
	if err != nil {
		return writeError(c, log, err)
	}

	log.Info("items staged", slog.Int("staged", len(res.Staged)), slog.Int("skipped", len(res.Skipped)))

	return c.JSON(http.StatusCreated, response.SuccessResponse(res))
}

// ListImports godoc
// @Summary List import items
// @Tags admin-imports
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending_review, processed or ignored"
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} response.Response{data=dto.ListResponse}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/admin/imports [get]
func (r *Routers) ListImports(c echo.Context) error {
	const op = "http.routers.ListImports"

	var q dto.ImportListQuery
	if handled, err := bind(c, &q); handled {
		return err
	}

	page, perPage := pageOf(q.PageQuery)
	items, total, err := r.ImportService.ListItems(c.Request().Context(), models.ImportStatus(q.Status), page, perPage)
	if err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.NewListResponse(items, total, q.PageQuery)))
}

// GetImport godoc
// @Summary Import item
// @Tags admin-imports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} response.Response{data=models.InstagramImportedItem}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/admin/imports/{id} [get]
func (r *Routers) GetImport(c echo.Context) error {
	const op = "http.routers.GetImport"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	item, err := r.ImportService.GetItem(c.Request().Context(), id)
	if err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(item))
}

// PromoteImport godoc
// @Summary Promote an item to an artwork
// @Description Only pending items can be promoted. The item is marked processed and linked to the new artwork.
// @Tags admin-imports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body dto.PromoteRequest true "Artwork fields"
// @Success 201 {object} response.Response{data=models.Artwork}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Item is not pending"
// @Failure 502 {object} response.ErrorResponse "External image unavailable"
// @Router /api/v1/admin/imports/{id}/promote [post]
func (r *Routers) PromoteImport(c echo.Context) error {
	const op = "http.routers.PromoteImport"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	var req dto.PromoteRequest
	if handled, err := bind(c, &req); handled {
		return err
	}

	artwork, err := r.ImportService.Promote(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, log, err)
	}

	log.Info("item promoted", slog.String("item_id", id.String()), slog.String("artwork_id", artwork.ID.String()))

	return c.JSON(http.StatusCreated, response.SuccessResponse(artwork))
}

// IgnoreImports godoc
// @Summary Ignore pending items
// @Description Items that are not pending are left alone and not counted.
// @Tags admin-imports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkIDsRequest true "Item IDs"
// @Success 200 {object} response.Response{data=dto.BulkResult}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/admin/imports/ignore [post]
func (r *Routers) IgnoreImports(c echo.Context) error {
	const op = "http.routers.IgnoreImports"

	var req dto.BulkIDsRequest
	if handled, err := bind(c, &req); handled {
		return err
	}

	n, err := r.ImportService.Ignore(c.Request().Context(), req.IDs)
	if err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.BulkResult{Affected: n}))
}

// ResetImports godoc
// @Summary Return items to review
// @Description Processed and ignored items go back to pending review and lose their artwork link.
// @Tags admin-imports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkIDsRequest true "Item IDs"
// @Success 200 {object} response.Response{data=dto.BulkResult}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/admin/imports/reset [post]
func (r *Routers) ResetImports(c echo.Context) error {
	const op = "http.routers.ResetImports"

	var req dto.BulkIDsRequest
	if handled, err := bind(c, &req); handled {
		return err
	}

	n, err := r.ImportService.Reset(c.Request().Context(), req.IDs)
	if err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.BulkResult{Affected: n}))
}
