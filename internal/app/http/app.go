package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/arl/statsviz"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"artfolio/internal/lib/logger/sl"
	appmiddleware "artfolio/internal/middleware"
	httprouters "artfolio/internal/transport/http"
	"artfolio/internal/transport/http/dto/response"
)

// HealthChecker is a dependency probed by /health.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Options struct {
	Host            string
	Port            string
	SessionSecret   string
	ShutdownTimeout time.Duration
	// UploadsPrefix and UploadsDir serve locally stored images. Empty disables it.
	UploadsPrefix string
	UploadsDir    string
	Health        map[string]HealthChecker
}

type Server struct {
	m       *http.ServeMux
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	opts    Options
}

func New(log *slog.Logger, opts Options, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = httprouters.NewValidator()

	e.Use(session.Middleware(sessions.NewCookieStore([]byte(opts.SessionSecret))))

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(appmiddleware.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogMethod:   true,
		LogLatency:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("method", v.Method),
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		log.Warn("statsviz start with error", sl.Err(err))
	}

	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}

	s := &Server{
		m:       mux,
		log:     log,
		e:       e,
		routers: routers,
		opts:    opts,
	}

	s.BuildRouters()

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info("starting http server", slog.String("op", op), slog.String("addr", s.addr()))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(s.addr()); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	ctx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	s.log.Info("stopping http server", slog.String("op", op))

	if err := s.e.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) addr() string {
	return net.JoinHostPort(s.opts.Host, s.opts.Port)
}

// adminOnlyMiddleware accepts either a bearer access token or the login
// session cookie, then requires the user to be an administrator.
func (s *Server) adminOnlyMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := s.authenticate(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, response.ErrorResponseWithDetails("authentication_failed", "authentication required"))
		}

		isAdmin, err := s.routers.UserService.IsAdmin(c.Request().Context(), userID)
		if err != nil || !isAdmin {
			if err != nil {
				s.log.Warn("admin check failed", slog.String("user_id", userID.String()), sl.Err(err))
			}
			return c.JSON(http.StatusForbidden, response.ErrForbidden)
		}

		c.Set(httprouters.ContextUserID, userID)

		return next(c)
	}
}

func (s *Server) authenticate(c echo.Context) (uuid.UUID, bool) {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			return uuid.Nil, false
		}

		userID, err := s.routers.TokenService.ValidateAccessToken(token)
		if err != nil {
			return uuid.Nil, false
		}

		return userID, true
	}

	sess, err := session.Get(httprouters.SessionName, c)
	if err != nil {
		return uuid.Nil, false
	}

	raw, ok := sess.Values[httprouters.SessionUserIDKey].(string)
	if !ok || raw == "" {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

func (s *Server) health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{}
	healthy := true
	for name, checker := range s.opts.Health {
		if err := checker.HealthCheck(ctx); err != nil {
			s.log.Warn("health check failed", slog.String("component", name), sl.Err(err))
			status[name] = "down"
			healthy = false
			continue
		}
		status[name] = "up"
	}

	if !healthy {
		return c.JSON(http.StatusServiceUnavailable, response.Response{Status: "error", Data: status})
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(status))
}

func (s *Server) BuildRouters() {
	s.e.GET("/health", s.health)
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.e.GET("/swagger/*", echoSwagger.WrapHandler)

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	if s.opts.UploadsDir != "" && s.opts.UploadsPrefix != "" {
		s.e.Static(s.opts.UploadsPrefix, s.opts.UploadsDir)
	}

	api := s.e.Group("/api/v1")
	{
		api.POST("/login", s.routers.Login)
		api.POST("/refresh", s.routers.Refresh)

		api.GET("/homepage", s.routers.GetHomepage)
		api.GET("/social-links", s.routers.ListSocialLinks)

		gallery := api.Group("/gallery")
		{
			gallery.GET("/categories", s.routers.ListCategories)
			gallery.GET("/categories/:slug", s.routers.GetCategory)
			gallery.GET("/artworks", s.routers.ListArtworks)
			gallery.GET("/artworks/:slug", s.routers.GetArtwork)
			gallery.GET("/tags", s.routers.ListArtworkTags)
		}

		blog := api.Group("/blog")
		{
			blog.GET("", s.routers.ListPosts)
			blog.GET("/tags", s.routers.ListPostTags)
			blog.GET("/:slug", s.routers.GetPost)
		}

		subscribe := api.Group("/subscribe")
		{
			subscribe.POST("", s.routers.Subscribe)
			subscribe.GET("/confirm/:token", s.routers.ConfirmSubscription)
			subscribe.GET("/unsubscribe/:token", s.routers.Unsubscribe)
		}

		admin := api.Group("/admin", s.adminOnlyMiddleware)
		{
			admin.POST("/logout", s.routers.Logout)
			admin.GET("/me", s.routers.Me)

			admin.POST("/images", s.routers.UploadImage)

			admin.GET("/categories", s.routers.ListCategories)
			admin.POST("/categories", s.routers.CreateCategory)
			admin.PUT("/categories/:id", s.routers.UpdateCategory)
			admin.DELETE("/categories/:id", s.routers.DeleteCategory)

			admin.GET("/artworks", s.routers.ListArtworks)
			admin.POST("/artworks", s.routers.CreateArtwork)
			admin.GET("/artworks/:id", s.routers.GetArtworkByID)
			admin.PUT("/artworks/:id", s.routers.UpdateArtwork)
			admin.DELETE("/artworks/:id", s.routers.DeleteArtwork)
			admin.GET("/artworks/:id/images", s.routers.ListArtworkImages)
			admin.POST("/artworks/:id/images", s.routers.AddArtworkImage)
			admin.DELETE("/artworks/:id/images/:image_id", s.routers.RemoveArtworkImage)
			admin.POST("/artworks/:id/tags", s.routers.TagArtwork)

			admin.GET("/posts", s.routers.ListPosts)
			admin.POST("/posts", s.routers.CreatePost)
			admin.GET("/posts/:id", s.routers.GetPostByID)
			admin.PUT("/posts/:id", s.routers.UpdatePost)
			admin.DELETE("/posts/:id", s.routers.DeletePost)
			admin.POST("/posts/:id/tags", s.routers.TagPost)

			admin.GET("/hero-slides", s.routers.ListHeroSlides)
			admin.POST("/hero-slides", s.routers.CreateHeroSlide)
			admin.PUT("/hero-slides/:id", s.routers.UpdateHeroSlide)
			admin.DELETE("/hero-slides/:id", s.routers.DeleteHeroSlide)

			admin.GET("/featured", s.routers.ListFeatured)
			admin.POST("/featured", s.routers.CreateFeatured)
			admin.PUT("/featured/:id", s.routers.UpdateFeatured)
			admin.DELETE("/featured/:id", s.routers.DeleteFeatured)

			admin.GET("/social-links", s.routers.AdminListSocialLinks)
			admin.POST("/social-links", s.routers.CreateSocialLink)
			admin.PUT("/social-links/:id", s.routers.UpdateSocialLink)
			admin.DELETE("/social-links/:id", s.routers.DeleteSocialLink)

			admin.GET("/imports", s.routers.ListImports)
			admin.POST("/imports", s.routers.StageImports)
			admin.POST("/imports/ignore", s.routers.IgnoreImports)
			admin.POST("/imports/reset", s.routers.ResetImports)
			admin.GET("/imports/:id", s.routers.GetImport)
			admin.POST("/imports/:id/promote", s.routers.PromoteImport)

			admin.GET("/subscribers", s.routers.ListSubscribers)
		}
	}
}
