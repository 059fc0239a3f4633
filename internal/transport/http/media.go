package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"artfolio/internal/lib/logger/sl"
	"artfolio/internal/transport/http/dto/response"
)

// UploadImage godoc
// @Summary Upload an image
// @Description Stores a JPEG, PNG, GIF or WebP image and returns its public URL.
// @Tags admin-media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image"
// @Success 201 {object} response.Response{data=dto.ImageUploadResponse}
// @Failure 400 {object} response.ErrorResponse "File is required"
// @Failure 413 {object} response.ErrorResponse "File too large"
// @Failure 415 {object} response.ErrorResponse "Not an image"
// @Router /api/v1/admin/images [post]
func (r *Routers) UploadImage(c echo.Context) error {
	const op = "http.routers.UploadImage"

	log := r.log.With(
		slog.String("op", op),
		slog.String("client_ip", c.RealIP()),
	)

	file, err := c.FormFile("file")
	if err != nil {
		log.Warn("empty file in request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "file is required"))
	}

	log.Debug("got file for upload",
		slog.String("filename", file.Filename),
		slog.Int64("size", file.Size),
	)

	src, err := file.Open()
	if err != nil {
		log.Error("failed to open upload", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}
	defer src.Close()

	res, err := r.MediaService.UploadImage(c.Request().Context(), src, file.Size)
	if err != nil {
		return writeError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(res))
}
