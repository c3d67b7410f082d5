package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"camphq/platform/internal/model"
	"camphq/platform/internal/repository"
	"camphq/platform/pkg/crypto"
)

type CreateUserInput struct {
	Email      string
	Password   string
	FirstName  string
	LastName   string
	Phone      string
	Role       model.UserRole
	LicenseeID *uuid.UUID
}

type UpdateUserInput struct {
	FirstName  *string
	LastName   *string
	Phone      *string
	Role       *model.UserRole
	LicenseeID *uuid.UUID
}

// UserService covers admin-side account management. Self-service signup
// lives in AuthService.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*model.User, error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	List(ctx context.Context, page repository.Page) ([]model.User, int64, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*model.User, error)
	Disable(ctx context.Context, id uuid.UUID) error
	Enable(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(ctx context.Context, input CreateUserInput) (*model.User, error) {
	if _, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = model.RoleParent
	}
	user := &model.User{
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Role:         role,
		Status:       model.UserStatusActive,
		LicenseeID:   input.LicenseeID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, page repository.Page) ([]model.User, int64, error) {
	return s.userRepo.List(ctx, page)
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*model.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.LicenseeID != nil {
		user.LicenseeID = input.LicenseeID
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *userService) Disable(ctx context.Context, id uuid.UUID) error {
	return s.setStatus(ctx, id, model.UserStatusDisabled)
}

func (s *userService) Enable(ctx context.Context, id uuid.UUID) error {
	return s.setStatus(ctx, id, model.UserStatusActive)
}

func (s *userService) setStatus(ctx context.Context, id uuid.UUID, status model.UserStatus) error {
	user, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if user.Status == status {
		return nil
	}
	user.Status = status
	return s.userRepo.Update(ctx, user)
}
