package services

import (
	"context"

	"github.com/settleline/bizledger/internal/dto"
)

// AuthSvcFacade authenticates users and issues access tokens.
type AuthSvcFacade interface {
	// Login verifies credentials and returns a signed token carrying the
	// user's tenant.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
