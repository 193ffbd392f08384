package interfaces

import (
	"context"

	accounts "main/internal/domain/entity/accounts"

	"github.com/google/uuid"
)

type UsersRepository interface {
	CreateUser(ctx context.Context, user *accounts.User) error
	GetUser(ctx context.Context, id uuid.UUID) (*accounts.User, error)
	GetUserByEmail(ctx context.Context, email string) (*accounts.User, error)
	ListUsers(ctx context.Context) ([]accounts.User, error)
	UpdateUser(ctx context.Context, user *accounts.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	Close()
}
