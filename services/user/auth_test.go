package user

import (
	"context"
	"testing"

	providerMocks "needmeet/database/repository/provider/mocks"
	userRepo "needmeet/database/repository/user"
	userMocks "needmeet/database/repository/user/mocks"
	"needmeet/models"
	"needmeet/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestSignUp_Success(t *testing.T) {
	users := new(userMocks.MockUserRepository)
	providers := new(providerMocks.MockProviderRepository)
	service := &DefaultUserService{Repo: users, Providers: providers}

	ctx := context.Background()
	users.On("GetByEmail", ctx, "jane@example.com").Return(nil, userRepo.ErrUserNotFound)
	users.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil)

	resp, err := service.SignUp(ctx, SignUpInput{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "hunter2was",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleUser, resp.Role)
	providers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignUp_ProviderRoleCreatesProfile(t *testing.T) {
	users := new(userMocks.MockUserRepository)
	providers := new(providerMocks.MockProviderRepository)
	service := &DefaultUserService{Repo: users, Providers: providers}

	ctx := context.Background()
	users.On("GetByEmail", ctx, "ace@example.com").Return(nil, userRepo.ErrUserNotFound)
	users.On("Create", ctx, mock.Anything).Return(nil)

	var createdProvider *models.Provider
	providers.On("Create", ctx, mock.AnythingOfType("*models.Provider")).
		Run(func(args mock.Arguments) {
			createdProvider = args.Get(1).(*models.Provider)
		}).Return(nil)

	resp, err := service.SignUp(ctx, SignUpInput{
		Name:     "Ace Plumbing",
		Email:    "ace@example.com",
		Password: "pipewrench",
		Role:     models.RoleProvider,
		Services: []string{"plumbing"},
	})

	assert.NoError(t, err)
	assert.Equal(t, models.RoleProvider, resp.Role)
	assert.NotNil(t, createdProvider)
	assert.Equal(t, resp.ID, createdProvider.ID)
	assert.Equal(t, []string{"plumbing"}, createdProvider.Services)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	users := new(userMocks.MockUserRepository)
	service := &DefaultUserService{Repo: users}

	ctx := context.Background()
	existing := &models.User{ID: "u-1", Email: "jane@example.com"}
	users.On("GetByEmail", ctx, "jane@example.com").Return(existing, nil)

	resp, err := service.SignUp(ctx, SignUpInput{Name: "Jane", Email: "jane@example.com", Password: "hunter2was"})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
}

func TestSignUp_InvalidRole(t *testing.T) {
	service := &DefaultUserService{Repo: new(userMocks.MockUserRepository)}

	resp, err := service.SignUp(context.Background(), SignUpInput{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "hunter2was",
		Role:     "superadmin",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, utils.KindInvalidArgument, utils.KindOf(err))
}

func TestSignIn_Success(t *testing.T) {
	users := new(userMocks.MockUserRepository)
	service := &DefaultUserService{Repo: users}

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2was"), bcrypt.MinCost)
	assert.NoError(t, err)

	ctx := context.Background()
	existing := &models.User{ID: "u-1", Email: "jane@example.com", PasswordHash: string(hash), Role: models.RoleUser}
	users.On("GetByEmail", ctx, "jane@example.com").Return(existing, nil)

	resp, err := service.SignIn(ctx, "jane@example.com", "hunter2was")

	assert.NoError(t, err)
	assert.Equal(t, "u-1", resp.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestSignIn_WrongPassword(t *testing.T) {
	users := new(userMocks.MockUserRepository)
	service := &DefaultUserService{Repo: users}

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2was"), bcrypt.MinCost)
	assert.NoError(t, err)

	ctx := context.Background()
	existing := &models.User{ID: "u-1", Email: "jane@example.com", PasswordHash: string(hash)}
	users.On("GetByEmail", ctx, "jane@example.com").Return(existing, nil)

	resp, err := service.SignIn(ctx, "jane@example.com", "wrong")

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, utils.KindInvalidArgument, utils.KindOf(err))
}

func TestSignIn_UnknownEmail(t *testing.T) {
	users := new(userMocks.MockUserRepository)
	service := &DefaultUserService{Repo: users}

	ctx := context.Background()
	users.On("GetByEmail", ctx, "ghost@example.com").Return(nil, userRepo.ErrUserNotFound)

	resp, err := service.SignIn(ctx, "ghost@example.com", "whatever")

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, utils.KindInvalidArgument, utils.KindOf(err))
}
