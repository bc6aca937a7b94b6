package token

import (
	"strings"
	"time"

	autherrors "github.com/Hemajnamburu/Job-Tracker-BE/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
)

// TTL is the fixed validity window for issued tokens. There is no refresh
// mechanism; an expired token forces a new login.
const TTL = time.Hour

// Claims is the identity embedded in a signed token.
type Claims struct {
	UserID string
	Email  string
}

// Service signs and verifies bearer tokens. It is stateless and trusts only
// its own secret, loaded once at startup.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret), ttl: TTL}
}

// Issue produces an HS256 token carrying the user id and email.
func (s *Service) Issue(userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"id":    userID,
		"email": email,
		"exp":   time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token string. Malformed, expired and
// signature-invalid tokens all surface as Unauthenticated sentinels.
func (s *Service) Verify(tokenString string) (Claims, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return s.secret, nil
	})

	if err != nil || !t.Valid {
		if err != nil && strings.Contains(err.Error(), "expired") {
			return Claims{}, autherrors.ErrTokenExpired
		}
		return Claims{}, autherrors.ErrInvalidToken
	}

	mapClaims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, autherrors.ErrInvalidToken
	}

	userID, ok := mapClaims["id"].(string)
	if !ok || userID == "" {
		return Claims{}, autherrors.ErrInvalidToken
	}
	email, _ := mapClaims["email"].(string)

	return Claims{UserID: userID, Email: email}, nil
}
