package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/prometheus/client_golang/prometheus"

	httpapp "artfolio/internal/app/http"
	"artfolio/internal/config"
	"artfolio/internal/lib/logger/sl"
	"artfolio/internal/mailer"
	"artfolio/internal/metrics"
	"artfolio/internal/repository"
	artworkservice "artfolio/internal/services/artwork_service"
	blogservice "artfolio/internal/services/blog_service"
	homepageservice "artfolio/internal/services/homepage_service"
	importservice "artfolio/internal/services/import_service"
	mediaservice "artfolio/internal/services/media_service"
	subscriptionservice "artfolio/internal/services/subscription_service"
	taxonomyservice "artfolio/internal/services/taxonomy_service"
	tokenservice "artfolio/internal/services/token_service"
	userservice "artfolio/internal/services/user_service"
	"artfolio/internal/storage/imagestore"
	"artfolio/internal/storage/postgresql"
	redisapp "artfolio/internal/storage/redis"
	httprouters "artfolio/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
	Users      *userservice.UserService

	log     *slog.Logger
	storage *postgresql.Storage
	redis   *redisapp.Client
}

// New connects the storages, applies the schema and wires every service.
func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	storage, err := postgresql.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := storage.Migrate(ctx); err != nil {
		storage.Stop()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	redis := redisapp.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)

	images, err := imagestore.New(cfg)
	if err != nil {
		storage.Stop()
		_ = redis.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.RegisterPool(prometheus.DefaultRegisterer, storage.Pool())

	repo := repository.NewRepository(storage.Pool(), redis)

	tokens := tokenservice.NewTokenService(log, repo.Token, cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	users := userservice.NewUserService(log, repo.User, tokens)
	taxonomy := taxonomyservice.NewTaxonomyService(log, repo.Category, repo.Tag)
	artworks := artworkservice.NewArtworkService(log, repo.Artwork, taxonomy)
	blog := blogservice.NewBlogService(log, repo.Blog, taxonomy)
	homepage := homepageservice.NewHomepageService(log, repo.Homepage, repo.SocialLink)
	media := mediaservice.NewMediaService(log, images, cfg.ImageStorage.MaxSize)
	imports := importservice.NewImportService(log, repo.Import, repo.Artwork, media, taxonomy)
	subscriptions := subscriptionservice.NewSubscriptionService(log, repo.Subscriber, mailer.New(cfg.Email), cfg.Email.SiteURL)

	routers := httprouters.NewRouter(log, httprouters.Services{
		User:         users,
		Token:        tokens,
		Taxonomy:     taxonomy,
		Artwork:      artworks,
		Blog:         blog,
		Homepage:     homepage,
		Media:        media,
		Import:       imports,
		Subscription: subscriptions,
	})

	opts := httpapp.Options{
		Host:            cfg.HTTP.Host,
		Port:            cfg.HTTP.Port,
		SessionSecret:   cfg.Auth.SessionSecret,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		Health: map[string]httpapp.HealthChecker{
			"postgres": storage,
			"redis":    redis,
		},
	}

	if local, ok := images.(*imagestore.LocalStore); ok {
		opts.UploadsDir = local.BaseDir()
		opts.UploadsPrefix = uploadsPrefix(cfg.ImageStorage.BaseURL)
	}

	return &App{
		HTTPServer: httpapp.New(log, opts, routers),
		Users:      users,
		log:        log,
		storage:    storage,
		redis:      redis,
	}, nil
}

// Stop releases the connections. The HTTP server is stopped separately.
func (a *App) Stop() {
	const op = "app.Stop"

	if err := a.redis.Close(); err != nil {
		a.log.Warn("failed to close redis", slog.String("op", op), sl.Err(err))
	}

	a.storage.Stop()
}

func uploadsPrefix(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Path == "" || u.Path == "/" {
		return "/uploads"
	}
	return u.Path
}
