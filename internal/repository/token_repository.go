package repository

import (
	"context"
	"fmt"
	"time"

	redisapp "artfolio/internal/storage/redis"
)

const scanCount = 100

// RedisTokenRepo keeps refresh tokens under refresh:<user id>:<token> with the token TTL.
type RedisTokenRepo struct {
	client *redisapp.Client
}

func NewRedisTokenRepo(client *redisapp.Client) *RedisTokenRepo {
	return &RedisTokenRepo{client: client}
}

func (r *RedisTokenRepo) SaveRefreshToken(ctx context.Context, userID, token string, exp time.Duration) error {
	const op = "repository.RedisTokenRepo.SaveRefreshToken"

	if err := r.client.Set(ctx, refreshTokenKey(userID, token), "1", exp).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// GetRefreshToken reports whether token is still stored for userID.
func (r *RedisTokenRepo) GetRefreshToken(ctx context.Context, userID, token string) (bool, error) {
	const op = "repository.RedisTokenRepo.GetRefreshToken"

	n, err := r.client.Exists(ctx, refreshTokenKey(userID, token)).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return n == 1, nil
}

func (r *RedisTokenRepo) DeleteRefreshToken(ctx context.Context, userID, token string) error {
	const op = "repository.RedisTokenRepo.DeleteRefreshToken"

	if err := r.client.Del(ctx, refreshTokenKey(userID, token)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteAllUserTokens revokes every refresh token of userID. Keys are found
// with SCAN so a large keyspace does not block the server.
func (r *RedisTokenRepo) DeleteAllUserTokens(ctx context.Context, userID string) error {
	const op = "repository.RedisTokenRepo.DeleteAllUserTokens"

	var (
		cursor uint64
		keys   []string
	)
	for {
		batch, next, err := r.client.Scan(ctx, cursor, refreshTokenKey(userID, "*"), scanCount).Result()
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		keys = append(keys, batch...)

		if next == 0 {
			break
		}
		cursor = next
	}

	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func refreshTokenKey(userID, token string) string {
	return "refresh:" + userID + ":" + token
}
