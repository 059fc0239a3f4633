// Command createadmin registers an administrator account.
//
//	createadmin --config=config/local.yaml --email=me@example.com --name="Jane Doe" --password=secret123
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"artfolio/internal/config"
	"artfolio/internal/lib/logger/sl"
	"artfolio/internal/repository"
	tokenservice "artfolio/internal/services/token_service"
	userservice "artfolio/internal/services/user_service"
	"artfolio/internal/storage/postgresql"
	redisapp "artfolio/internal/storage/redis"
	httprouters "artfolio/internal/transport/http"
	"artfolio/internal/transport/http/dto"
)

func main() {
	var configPath, email, name, password string

	flag.StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "path to config file")
	flag.StringVar(&email, "email", "", "admin email")
	flag.StringVar(&name, "name", "", "admin display name")
	flag.StringVar(&password, "password", "", "admin password, at least 8 characters")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if configPath == "" {
		log.Error("config path is empty")
		os.Exit(2)
	}

	input := dto.AdminInput{Name: name, Email: email, Password: password}
	if err := httprouters.NewValidator().Validate(input); err != nil {
		log.Error("invalid input", sl.Err(err))
		os.Exit(2)
	}

	cfg := config.MustLoadPath(configPath)

	id, err := run(context.Background(), log, cfg, input)
	if err != nil {
		if errors.Is(err, userservice.ErrUserExist) {
			log.Error("an account with this email already exists", slog.String("email", email))
		} else {
			log.Error("failed to register admin", sl.Err(err))
		}
		os.Exit(1)
	}

	fmt.Println(id.String())
}

func run(ctx context.Context, log *slog.Logger, cfg *config.Config, input dto.AdminInput) (uuid.UUID, error) {
	storage, err := postgresql.New(ctx, cfg.DSN)
	if err != nil {
		return uuid.Nil, err
	}
	defer storage.Stop()

	if err := storage.Migrate(ctx); err != nil {
		return uuid.Nil, err
	}

	redis := redisapp.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
	defer redis.Close()

	repo := repository.NewRepository(storage.Pool(), redis)
	tokens := tokenservice.NewTokenService(log, repo.Token, cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	users := userservice.NewUserService(log, repo.User, tokens)

	return users.RegisterAdmin(ctx, input)
}
