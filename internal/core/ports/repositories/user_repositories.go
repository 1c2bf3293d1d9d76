package repositories

import (
	"context"

	"github.com/settleline/bizledger/internal/core/domain"
)

// UserRepositoryFacade persists users for the thin login collaborator.
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
