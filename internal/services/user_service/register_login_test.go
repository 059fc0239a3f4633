package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"artfolio/internal/lib/logger/handlers/slogdiscard"
	"artfolio/internal/repository"
	tokenservice "artfolio/internal/services/token_service"
	userservice "artfolio/internal/services/user_service"
	"artfolio/internal/storage/postgresql/pgtest"
	redisapp "artfolio/internal/storage/redis"
	"artfolio/internal/transport/http/dto"
)

const (
	passDefaultLen = 10
	secret         = "test-secret"
	accessTTL      = 15 * time.Minute
)

func startRedis(t *testing.T) *redisapp.Client {
	t.Helper()

	ctx := context.Background()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(ctx) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redisapp.NewClient(fmt.Sprintf("%s:%s", host, port.Port()), "", 0)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestRegisterLogin_Login_HappyPath(t *testing.T) {
	st := pgtest.New(t)
	rdb := startRedis(t)
	ctx := context.Background()

	log := slogdiscard.NewDiscardLogger()
	repo := repository.NewRepository(st.Pool(), rdb)
	tokens := tokenservice.NewTokenService(log, repo.Token, secret, accessTTL, time.Hour)
	users := userservice.NewUserService(log, repo.User, tokens)

	email := gofakeit.Email()
	pass := gofakeit.Password(true, true, true, false, false, passDefaultLen)

	id, err := users.RegisterAdmin(ctx, dto.AdminInput{Name: gofakeit.FirstName(), Email: email, Password: pass})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = users.RegisterAdmin(ctx, dto.AdminInput{Name: gofakeit.FirstName(), Email: email, Password: pass})
	assert.ErrorIs(t, err, userservice.ErrUserExist)

	user, pair, err := users.Login(ctx, email, pass)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)

	loginTime := time.Now()

	tokenParsed, err := jwt.Parse(pair.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)

	claims, ok := tokenParsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, id.String(), claims["uid"].(string))

	const deltaSeconds = 1

	// exp must follow the configured access TTL
	assert.InDelta(t, loginTime.Add(accessTTL).Unix(), claims["exp"].(float64), deltaSeconds)

	refreshed, err := tokens.RefreshTokens(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, refreshed.RefreshToken)

	// a refresh token is single use
	_, err = tokens.RefreshTokens(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, tokenservice.ErrTokenNotInStorage)

	require.NoError(t, users.Logout(ctx, id))
	_, err = tokens.RefreshTokens(ctx, refreshed.RefreshToken)
	assert.ErrorIs(t, err, tokenservice.ErrTokenNotInStorage)
}

func TestRegisterLogin_Login_WrongPassword(t *testing.T) {
	st := pgtest.New(t)
	rdb := startRedis(t)
	ctx := context.Background()

	log := slogdiscard.NewDiscardLogger()
	repo := repository.NewRepository(st.Pool(), rdb)
	users := userservice.NewUserService(log, repo.User,
		tokenservice.NewTokenService(log, repo.Token, secret, accessTTL, time.Hour))

	email := gofakeit.Email()
	_, err := users.RegisterAdmin(ctx, dto.AdminInput{
		Name:     gofakeit.FirstName(),
		Email:    email,
		Password: gofakeit.Password(true, true, true, false, false, passDefaultLen),
	})
	require.NoError(t, err)

	_, _, err = users.Login(ctx, email, "definitely-wrong")
	assert.ErrorIs(t, err, userservice.ErrInvalidCredentials)
}
