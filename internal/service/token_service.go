package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hqtran/examportal/config"
	"github.com/hqtran/examportal/internal/apperr"
)

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

type Claims struct {
	Subject uint   `json:"subject"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the bearer credentials that gate every
// core operation. The signing secret comes from configuration.
type TokenService interface {
	Issue(subject uint, role string) (string, error)
	Parse(token string) (*Claims, error)
}

type tokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{
		secret: []byte(cfg.Auth.JWTSecret),
		ttl:    cfg.Auth.TokenTTL,
	}
}

func (s *tokenService) Issue(subject uint, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Subject: subject,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *tokenService) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, apperr.Unauthorized("Please authenticate")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, apperr.Unauthorized("Please authenticate")
	}
	return claims, nil
}
