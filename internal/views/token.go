package views

import (
	"errors"
	"time"

	"idscope_backend/platform/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const viewTokenType = "view"

var errInvalidViewToken = errors.New("invalid view token")

// Tokens issues and verifies HS256 bearer tokens bound to a single view.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(cfg config.ViewTokenConfig) *Tokens {
	return &Tokens{
		secret: []byte(cfg.GetViewTokenSecret()),
		ttl:    cfg.GetViewTokenTTL(),
		now:    time.Now,
	}
}

// Issue signs a token for viewID and returns it with its expiry.
func (t *Tokens) Issue(viewID uuid.UUID) (string, time.Time, error) {
	now := t.now()
	expiresAt := now.Add(t.ttl)
	claims := jwt.MapClaims{
		"sub":  viewID.String(),
		"type": viewTokenType,
		"exp":  expiresAt.Unix(),
		"iat":  now.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify checks signature, expiry and token type, and returns the view ID.
func (t *Tokens) Verify(rawToken string) (uuid.UUID, error) {
	parsed, err := jwt.Parse(rawToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil || !parsed.Valid {
		return uuid.Nil, errInvalidViewToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errInvalidViewToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != viewTokenType {
		return uuid.Nil, errInvalidViewToken
	}

	sub, _ := claims["sub"].(string)
	viewID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errInvalidViewToken
	}
	return viewID, nil
}
