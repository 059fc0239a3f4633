package http

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"artfolio/internal/transport/http/dto"
	"artfolio/internal/transport/http/dto/response"
)

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Description Records an inactive subscriber and mails a confirmation link.
// @Tags subscription
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Email"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Already subscribed"
// @Router /api/v1/subscribe [post]
func (r *Routers) Subscribe(c echo.Context) error {
	const op = "http.routers.Subscribe"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.SubscribeRequest
	if handled, err := bind(c, &req); handled {
		return err
	}

	if _, err := r.SubscriptionService.Subscribe(c.Request().Context(), req.Email); err != nil {
		return writeError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.MessageResponse("Check your inbox to confirm the subscription"))
}

// ConfirmSubscription godoc
// @Summary Confirm a subscription
// @Tags subscription
// @Produce json
// @Param token path string true "Confirmation token"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/subscribe/confirm/{token} [get]
func (r *Routers) ConfirmSubscription(c echo.Context) error {
	const op = "http.routers.ConfirmSubscription"

	token, err := uuid.Parse(c.Param("token"))
	if err != nil {
		return c.JSON(http.StatusNotFound, response.ErrNotFound)
	}

	if _, err := r.SubscriptionService.Confirm(c.Request().Context(), token); err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.MessageResponse("Subscription confirmed"))
}

// Unsubscribe godoc
// @Summary Unsubscribe
// @Tags subscription
// @Produce json
// @Param token path string true "Unsubscribe token"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/subscribe/unsubscribe/{token} [get]
func (r *Routers) Unsubscribe(c echo.Context) error {
	const op = "http.routers.Unsubscribe"

	token, err := uuid.Parse(c.Param("token"))
	if err != nil {
		return c.JSON(http.StatusNotFound, response.ErrNotFound)
	}

	if _, err := r.SubscriptionService.Unsubscribe(c.Request().Context(), token); err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.MessageResponse("You have been unsubscribed"))
}

// ListSubscribers godoc
// @Summary List subscribers
// @Tags admin-subscription
// @Produce json
// @Security BearerAuth
// @Param active query string false "true or false"
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} response.Response{data=dto.ListResponse}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/admin/subscribers [get]
func (r *Routers) ListSubscribers(c echo.Context) error {
	const op = "http.routers.ListSubscribers"

	var q dto.SubscriberListQuery
	if handled, err := bind(c, &q); handled {
		return err
	}

	page, perPage := pageOf(q.PageQuery)
	subs, total, err := r.SubscriptionService.ListSubscribers(c.Request().Context(), q.ActiveFilter(), page, perPage)
	if err != nil {
		return writeError(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.NewListResponse(subs, total, q.PageQuery)))
}
