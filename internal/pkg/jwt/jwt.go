package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
)

type Service struct {
	auth           *jwtauth.JWTAuth
	accessTokenTTL time.Duration
}

func NewService(secret string, accessTokenTTL time.Duration) *Service {
	return &Service{
		auth:           jwtauth.New("HS256", []byte(secret), nil),
		accessTokenTTL: accessTokenTTL,
	}
}

// JWTAuth exposes the verifier for the router middleware.
func (s *Service) JWTAuth() *jwtauth.JWTAuth {
	return s.auth
}

// GenerateAccessToken issues a token carrying the identity claims the
// middleware reads on every request.
func (s *Service) GenerateAccessToken(userID string, employeeID *string, isStaff bool) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.accessTokenTTL)

	claims := map[string]interface{}{
		"user_id":  userID,
		"is_staff": isStaff,
		"exp":      expiresAt.Unix(),
		"iat":      time.Now().Unix(),
	}
	if employeeID != nil {
		claims["employee_id"] = *employeeID
	}

	_, tokenString, err := s.auth.Encode(claims)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}
