// Package auth выпускает и проверяет подписанные bearer-токены учителей.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType — значение поля token_type в ответе на логин.
const TokenType = "bearer"

// TokenService выпускает HS256 JWT с subject и сроком действия.
// Токены не хранятся на сервере: валидность определяется подписью и exp.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// Option настраивает TokenService.
type Option func(*TokenService)

// WithClock подменяет источник времени (нужно тестам на истечение срока).
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) {
		s.now = now
	}
}

// NewTokenService создаёт сервис токенов с общим секретом подписи.
func NewTokenService(secret string, opts ...Option) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token secret must not be empty")
	}
	s := &TokenService{
		secret: []byte(secret),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue подписывает токен для subject, действующий ttl с текущего момента.
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("token subject must not be empty")
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate возвращает subject токена и true, если подпись верна и срок не истёк.
// Пустой, испорченный, подделанный и просроченный токен неразличимы: ("", false).
func (s *TokenService) Validate(token string) (string, bool) {
	if token == "" {
		return "", false
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return "", false
	}
	if claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}
