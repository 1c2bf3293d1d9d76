package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/settleline/bizledger/internal/apperrors"
	"github.com/settleline/bizledger/internal/core/domain"
	portssvc "github.com/settleline/bizledger/internal/core/ports/services"
	"github.com/settleline/bizledger/internal/core/services"
	"github.com/settleline/bizledger/internal/dto"
	"github.com/settleline/bizledger/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.AuthSvcFacade
	jwtSecret    string
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.jwtSecret = "test-secret"
	suite.service = services.NewAuthService(suite.mockUserRepo, suite.jwtSecret, time.Hour)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	password := "correct horse battery staple"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		TenantID:     uuid.NewString(),
		Username:     "asha",
		Name:         "Asha N.",
		PasswordHash: hash,
	}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "asha").Return(user, nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Username: "asha", Password: password})

	suite.Require().NoError(err)
	suite.Equal(user.UserID, resp.UserID)
	suite.Equal(user.TenantID, resp.TenantID)

	// The token must carry the user's tenant so every downstream request is scoped.
	parsed, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(suite.jwtSecret), nil
	})
	suite.Require().NoError(err)
	claims := parsed.Claims.(jwt.MapClaims)
	suite.Equal(user.UserID, claims["sub"])
	suite.Equal(user.TenantID, claims["tenantID"])
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUser() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "nobody").Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Username: "nobody", Password: "whatever"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(resp)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword_SameErrorAsUnknownUser() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the real password")
	suite.Require().NoError(err)

	user := &domain.User{UserID: uuid.NewString(), TenantID: uuid.NewString(), Username: "asha", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "asha").Return(user, nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Username: "asha", Password: "a guess"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(resp)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
