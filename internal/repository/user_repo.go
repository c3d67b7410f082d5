package repository

import (
	"context"

	"github.com/google/uuid"

	"camphq/platform/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page Page) ([]model.User, int64, error)
	ListByRole(ctx context.Context, role model.UserRole) ([]model.User, error)
}
