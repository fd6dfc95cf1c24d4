package service

import (
	"errors"
	"time"

	apperrors "github.com/campushub/teacher-service/internal/errors"
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the payload carried by an access token. Claims are
// untrusted until ValidateToken has checked signature and expiry.
type TokenClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 access tokens. It is a pure
// function of its inputs, the secret and the clock; it never touches
// storage.
type JWTService struct {
	secretKey string
	ttl       time.Duration
}

func NewJWTService(secretKey string, ttl time.Duration) *JWTService {
	return &JWTService{
		secretKey: secretKey,
		ttl:       ttl,
	}
}

// GenerateToken creates a signed token for the user, expiring after the
// configured TTL.
func (s *JWTService) GenerateToken(userID uint, email string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken parses and verifies a token and returns its claims.
// Failures map onto the domain taxonomy: MALFORMED_TOKEN when the
// string cannot be parsed, TOKEN_EXPIRED when past exp, INVALID_TOKEN
// for a bad signature or any other rejection.
func (s *JWTService) ValidateToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.secretKey), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, apperrors.WrapError(apperrors.ErrMalformedToken, err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, apperrors.WrapError(apperrors.ErrTokenExpired, err)
		default:
			return nil, apperrors.WrapError(apperrors.ErrInvalidToken, err)
		}
	}

	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

// TTL exposes the configured token lifetime.
func (s *JWTService) TTL() time.Duration {
	return s.ttl
}
