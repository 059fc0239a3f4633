package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"artfolio/internal/domain/models"
)

const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID uuid.UUID
	Email  string
	Kind   string
}

// NewToken signs an HS256 token for user. Every token gets a random jti so two tokens
// issued in the same second differ.
func NewToken(user models.User, kind, secret string, duration time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":   user.ID.String(),
		"email": user.Email,
		"kind":  kind,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(duration).Unix(),
	})

	return token.SignedString([]byte(secret))
}

// Parse verifies the signature and expiry and returns the claims.
func Parse(tokenString, secret string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	uid, _ := mc["uid"].(string)
	id, err := uuid.Parse(uid)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: bad uid claim", ErrInvalidToken)
	}

	email, _ := mc["email"].(string)
	kind, _ := mc["kind"].(string)

	return Claims{UserID: id, Email: email, Kind: kind}, nil
}
