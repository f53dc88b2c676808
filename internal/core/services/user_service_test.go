package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/smartfin/smartfinance_backend/internal/apperrors"
	"github.com/smartfin/smartfinance_backend/internal/core/domain"
	portssvc "github.com/smartfin/smartfinance_backend/internal/core/ports/services"
	"github.com/smartfin/smartfinance_backend/internal/core/services"
	"github.com/smartfin/smartfinance_backend/internal/dto"
	"github.com/smartfin/smartfinance_backend/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) TestRegister_HashesPasswordAndLowercasesEmail() {
	var saved domain.User
	suite.mockRepo.On("SaveUser", mock.Anything, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
		Return(nil).Once()

	user, err := suite.service.Register(context.Background(), dto.RegisterRequest{
		Username: "tester",
		Email:    "Tester@Example.COM",
		Password: "super-secret",
	})

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.Equal("tester@example.com", user.Email)
	suite.Equal(domain.ProviderLocal, user.AuthProvider)
	suite.NotEqual("super-secret", saved.PasswordHash)
	suite.True(utils.CheckPasswordHash("super-secret", saved.PasswordHash))
}

func (suite *UserServiceTestSuite) TestRegister_DuplicatePropagates() {
	suite.mockRepo.On("SaveUser", mock.Anything, mock.AnythingOfType("domain.User")).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.Register(context.Background(), dto.RegisterRequest{
		Username: "tester",
		Email:    "tester@example.com",
		Password: "super-secret",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_ReturnsExisting() {
	existing := &domain.User{UserID: "u1", Username: "tester", AuthProvider: domain.ProviderGoogle, ProviderUserID: "goog-123"}
	suite.mockRepo.On("FindUserByProviderID", mock.Anything, domain.ProviderGoogle, "goog-123").
		Return(existing, nil).Once()

	user, err := suite.service.CreateOAuthUser(context.Background(), "Tester", "tester@example.com", domain.ProviderGoogle, "goog-123")

	suite.Require().NoError(err)
	suite.Equal(existing, user)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_CreatesOnFirstSignIn() {
	suite.mockRepo.On("FindUserByProviderID", mock.Anything, domain.ProviderGoogle, "goog-123").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", mock.Anything, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.CreateOAuthUser(context.Background(), "Tester", "tester@example.com", domain.ProviderGoogle, "goog-123")

	suite.Require().NoError(err)
	suite.Equal("Tester", user.Username)
	suite.Equal(domain.ProviderGoogle, user.AuthProvider)
	suite.Equal("goog-123", user.ProviderUserID)
	suite.Empty(user.PasswordHash)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_UsernameFallsBackToEmailLocalPart() {
	suite.mockRepo.On("FindUserByProviderID", mock.Anything, domain.ProviderGoogle, "goog-456").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", mock.Anything, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.CreateOAuthUser(context.Background(), "", "jane.doe@example.com", domain.ProviderGoogle, "goog-456")

	suite.Require().NoError(err)
	suite.Equal("jane.doe", user.Username)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
