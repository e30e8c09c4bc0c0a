package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"moviereviews/internal/config"
	"moviereviews/internal/model"
	"moviereviews/internal/repository"
)

// TokenScheme is the label clients must put in front of the token, both in
// the signin response and in the Authorization header. The match is
// case-sensitive.
const TokenScheme = "JWT"

// AuthService issues and verifies stateless signed tokens. No session
// state is kept server-side; the token itself carries the user's id and
// username.
type AuthService struct {
	userRepo repository.UserRepository
	config   *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		config:   cfg,
	}
}

// IssueToken signs a token for the given user. When TokenMaxAge is zero no
// expiry claim is set and the token never expires.
func (s *AuthService) IssueToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"iat":      time.Now().Unix(),
	}
	if s.config.TokenMaxAge > 0 {
		claims["exp"] = time.Now().Add(time.Duration(s.config.TokenMaxAge) * time.Second).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks the signature, decodes the identity and resolves it
// against the user store. A token whose user has since disappeared is
// treated exactly like a forged one: model.ErrInvalidToken, never an
// internal error.
func (s *AuthService) VerifyToken(ctx context.Context, raw string) (*model.User, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, model.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, model.ErrInvalidToken
	}

	idFloat, ok := claims["id"].(float64)
	if !ok {
		return nil, model.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, int64(idFloat))
	if err != nil {
		return nil, model.ErrInvalidToken
	}

	return user, nil
}
