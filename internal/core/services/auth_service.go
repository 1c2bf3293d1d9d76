package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/settleline/bizledger/internal/apperrors"
	portsrepo "github.com/settleline/bizledger/internal/core/ports/repositories"
	"github.com/settleline/bizledger/internal/dto"
	"github.com/settleline/bizledger/internal/middleware"
	"github.com/settleline/bizledger/internal/utils"
)

type AuthService struct {
	userRepo    portsrepo.UserRepositoryFacade
	jwtSecret   string
	tokenExpiry time.Duration
}

func NewAuthService(userRepo portsrepo.UserRepositoryFacade, jwtSecret string, tokenExpiry time.Duration) *AuthService {
	return &AuthService{userRepo: userRepo, jwtSecret: jwtSecret, tokenExpiry: tokenExpiry}
}

// Login verifies credentials and issues a signed token carrying the user's
// tenant. Unknown usernames and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
		}
		logger.Error("Failed to look up user", slog.String("error", err.Error()))
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.UserID,
		"tenantID": user.TenantID,
		"name":     user.Name,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenExpiry).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID), slog.String("tenant_id", user.TenantID))
	return &dto.LoginResponse{
		Token:    token,
		UserID:   user.UserID,
		TenantID: user.TenantID,
		Name:     user.Name,
	}, nil
}
