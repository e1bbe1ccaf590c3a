package user

import (
	"context"

	domainerrors "credvia/internal/errors"
	"credvia/internal/models"
	"credvia/internal/repositories"
	"credvia/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// Service covers registration and the admin user-management surface.
type Service interface {
	// Register creates an APPLICANT account. The role is never taken from
	// the request; elevated accounts are provisioned by the seed tool or
	// an existing admin.
	Register(ctx context.Context, input models.CreateUserInput) (*models.User, error)

	// List returns one page of users, newest first. Admin surface.
	List(ctx context.Context, offset, limit int) ([]models.User, int64, error)

	// UpdateStatus moves a user's account status. Admin surface; users are
	// never hard-deleted.
	UpdateStatus(ctx context.Context, userID uint, status string) (*models.User, error)
}

type service struct {
	repo repositories.UserRepository
}

// NewService creates a new user service.
func NewService(repo repositories.UserRepository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, input models.CreateUserInput) (*models.User, error) {
	v := validation.New()
	v.UserRegistration(&input)
	if !v.Valid() {
		return nil, domainerrors.ErrValidation.WithMessage(v.First())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domainerrors.ErrInternal
	}

	user := &models.User{
		Email:        input.Email,
		Password:     string(hashed),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Role:         models.RoleApplicant,
		Status:       models.UserStatusActive,
		ConsentGiven: input.ConsentGiven,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if err == repositories.ErrEmailTaken {
			return nil, domainerrors.ErrEmailAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

func (s *service) List(ctx context.Context, offset, limit int) ([]models.User, int64, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *service) UpdateStatus(ctx context.Context, userID uint, status string) (*models.User, error) {
	v := validation.New()
	v.UserStatus(status)
	if !v.Valid() {
		return nil, domainerrors.ErrValidation.WithMessage(v.First())
	}

	if err := s.repo.UpdateStatus(ctx, userID, status); err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, err
	}
	return s.repo.GetByID(ctx, userID)
}
