package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/attendance-service/internal/auth"
	"github.com/spec-kit/attendance-service/internal/config"
	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/repository"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

const minPasswordLength = 8

// AuthService handles admin login and password management.
type AuthService struct {
	admins     repository.AdminRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
	seedEmail  string
	seedPass   string
	logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, admins repository.AdminRepository, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		admins:     admins,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
		seedEmail:  cfg.Auth.AdminEmail,
		seedPass:   cfg.Auth.AdminPassword,
		logger:     logger,
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// SeedAdmin creates the initial admin account from configuration when no
// account with that email exists yet. A no-op without seed credentials.
func (s *AuthService) SeedAdmin(ctx context.Context) error {
	if s.seedEmail == "" || s.seedPass == "" {
		return nil
	}
	if _, err := s.admins.GetByEmail(ctx, s.seedEmail); err == nil {
		return nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := auth.HashPassword(s.seedPass, s.bcryptCost)
	if err != nil {
		return err
	}
	admin := &domain.Admin{Email: s.seedEmail, PasswordHash: hash}
	if err := s.admins.Create(ctx, admin); err != nil {
		return err
	}
	s.logger.Info("seeded admin account", zap.String("email", admin.Email))
	return nil
}

// Login authenticates an admin and returns a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Admin, string, time.Time, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(admin.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	token, exp, err := s.tokenMgr.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return admin, token, exp, nil
}

// ChangePassword rotates an admin password after verifying the current one.
func (s *AuthService) ChangePassword(ctx context.Context, adminID int64, current, next string) error {
	if len(next) < minPasswordLength {
		return apperrors.NewValidationError("new password too short", map[string]any{"min_length": minPasswordLength})
	}
	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if err := auth.ComparePassword(admin.PasswordHash, current); err != nil {
		return apperrors.NewUnauthorized("current password incorrect")
	}
	hash, err := auth.HashPassword(next, s.bcryptCost)
	if err != nil {
		return apperrors.MapError(err)
	}
	if err := s.admins.UpdatePassword(ctx, adminID, hash); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}
