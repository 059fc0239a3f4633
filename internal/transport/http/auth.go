package http

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"artfolio/internal/lib/logger/sl"
	"artfolio/internal/transport/http/dto"
	"artfolio/internal/transport/http/dto/request"
	"artfolio/internal/transport/http/dto/response"
)

const (
	SessionName      = "session"
	SessionUserIDKey = "user_id"
	sessionMaxAge    = 7 * 24 * 60 * 60
)

// Login godoc
// @Summary Administrator login
// @Description Checks the credentials, opens a cookie session and returns a JWT pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Credentials"
// @Success 200 {object} response.Response{data=map[string]string} "Tokens"
// @Failure 400 {object} response.ErrorResponse "Invalid request format"
// @Failure 401 {object} response.ErrorResponse "Authentication failed"
// @Router /api/v1/login [post]
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.LoginRequest
	if handled, err := bind(c, &req); handled {
		log.Warn("invalid login request")
		return err
	}

	user, tokens, err := r.UserService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, log, err)
	}

	if sess, err := session.Get(SessionName, c); err != nil {
		log.Warn("session unavailable", sl.Err(err))
	} else {
		sess.Options = &sessions.Options{
			Path:     "/",
			MaxAge:   sessionMaxAge,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}
		sess.Values[SessionUserIDKey] = user.ID.String()
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			log.Warn("failed to save session", sl.Err(err))
		}
	}

	log.Info("admin logged in", slog.String("user_id", user.ID.String()))

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]string{
		"user_id":       tokens.UserID.String(),
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	}))
}

// Refresh godoc
// @Summary Refresh tokens
// @Description Exchanges a refresh token for a new pair. The old refresh token is revoked.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.RefreshRequest true "Refresh token"
// @Success 200 {object} response.Response{data=map[string]string} "Tokens"
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /api/v1/refresh [post]
func (r *Routers) Refresh(c echo.Context) error {
	const op = "http.routers.Refresh"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.RefreshRequest
	if handled, err := bind(c, &req); handled {
		return err
	}

	tokens, err := r.TokenService.RefreshTokens(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return writeError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(tokens))
}

// Logout godoc
// @Summary Logout
// @Description Revokes every refresh token of the caller and clears the session cookie.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.ErrorResponse
// @Router /api/v1/admin/logout [post]
func (r *Routers) Logout(c echo.Context) error {
	const op = "http.routers.Logout"

	log := r.log.With(
		slog.String("op", op),
	)

	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
	}

	if err := r.UserService.Logout(c.Request().Context(), userID); err != nil {
		return writeError(c, log, err)
	}

	if sess, err := session.Get(SessionName, c); err == nil {
		sess.Options = &sessions.Options{Path: "/", MaxAge: -1}
		delete(sess.Values, SessionUserIDKey)
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			log.Warn("failed to clear session", sl.Err(err))
		}
	}

	return c.JSON(http.StatusOK, response.MessageResponse("logged out"))
}

// Me godoc
// @Summary Current administrator
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.UserResponse}
// @Failure 401 {object} response.ErrorResponse
// @Router /api/v1/admin/me [get]
func (r *Routers) Me(c echo.Context) error {
	const op = "http.routers.Me"

	log := r.log.With(
		slog.String("op", op),
	)

	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
	}

	user, err := r.UserService.GetUser(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}))
}
