package auth

import (
	"context"
	"log"
	"time"

	domainerrors "credvia/internal/errors"
	"credvia/internal/models"
	"credvia/internal/repositories"
	"credvia/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// Service issues and revokes tokens for registered users.
type Service interface {
	Login(ctx context.Context, email, password string) (*models.User, string, string, error)
	RefreshTokens(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, userID uint) error
	GetUserTokenVersion(ctx context.Context, userID uint) (int, error)
}

type service struct {
	userRepo repositories.UserRepository
}

// NewService creates a new auth service.
func NewService(userRepo repositories.UserRepository) Service {
	return &service{userRepo: userRepo}
}

func (s *service) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", "", domainerrors.ErrUnauthorized.WithMessage("invalid credentials")
	}
	if user.Status != models.UserStatusActive {
		return nil, "", "", domainerrors.ErrUnauthorized.WithMessage("account is %s", user.Status)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", "", domainerrors.ErrUnauthorized.WithMessage("invalid credentials")
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&models.UserClaims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
	})
	if err != nil {
		log.Printf("failed to generate tokens for user %d: %v", user.ID, err)
		return nil, "", "", domainerrors.ErrInternal
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		log.Printf("failed to record login time for user %d: %v", user.ID, err)
	}

	return user, accessToken, refreshToken, nil
}

func (s *service) RefreshTokens(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return "", "", domainerrors.ErrUnauthorized.WithMessage("invalid refresh token")
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", domainerrors.ErrUnauthorized.WithMessage("invalid refresh token")
	}
	if user.TokenVersion != claims.TokenVersion {
		return "", "", domainerrors.ErrUnauthorized.WithMessage("session expired")
	}

	access, refresh, err := utils.GenerateTokens(&models.UserClaims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
	})
	if err != nil {
		return "", "", domainerrors.ErrInternal
	}
	return access, refresh, nil
}

func (s *service) Logout(ctx context.Context, userID uint) error {
	return s.userRepo.IncrementTokenVersion(ctx, userID)
}

func (s *service) GetUserTokenVersion(ctx context.Context, userID uint) (int, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.TokenVersion, nil
}
