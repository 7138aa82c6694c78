package provider

import (
	"context"
	"testing"

	providerRepo "needmeet/database/repository/provider"
	providerMocks "needmeet/database/repository/provider/mocks"
	"needmeet/models"
	"needmeet/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCreateProvider_Success(t *testing.T) {
	repo := new(providerMocks.MockProviderRepository)
	service := &DefaultProviderService{Repo: repo}

	ctx := context.Background()
	repo.On("Create", ctx, mock.AnythingOfType("*models.Provider")).Return(nil)

	p, err := service.CreateProvider(ctx, CreateProviderInput{
		Name:     "Ace Plumbing",
		Services: []string{"plumbing"},
		Location: "Springfield",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.NotNil(t, p.Reviews)
	assert.NotNil(t, p.ReportedBy)
	assert.Zero(t, p.Rating)
}

func TestCreateProvider_MissingFields(t *testing.T) {
	service := &DefaultProviderService{Repo: new(providerMocks.MockProviderRepository)}

	p, err := service.CreateProvider(context.Background(), CreateProviderInput{Name: "Ace"})

	assert.Error(t, err)
	assert.Nil(t, p)
	assert.Equal(t, utils.KindInvalidArgument, utils.KindOf(err))
}

func TestGetByID_NotFound(t *testing.T) {
	repo := new(providerMocks.MockProviderRepository)
	service := &DefaultProviderService{Repo: repo}

	ctx := context.Background()
	repo.On("GetByID", ctx, "ghost").Return(nil, providerRepo.ErrProviderNotFound)

	p, err := service.GetByID(ctx, "ghost")

	assert.Error(t, err)
	assert.Nil(t, p)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestUpdateProvider_PartialFields(t *testing.T) {
	repo := new(providerMocks.MockProviderRepository)
	service := &DefaultProviderService{Repo: repo}

	ctx := context.Background()
	var doc bson.M
	repo.On("UpdateWithDocument", ctx, "p-1", mock.AnythingOfType("primitive.M")).
		Run(func(args mock.Arguments) {
			doc = args.Get(2).(bson.M)
		}).Return(nil)
	updated := &models.Provider{ID: "p-1", Name: "Ace Plumbing", Phone: "555-0101"}
	repo.On("GetByID", ctx, "p-1").Return(updated, nil)

	p, err := service.UpdateProvider(ctx, "p-1", models.Provider{Phone: "555-0101"})

	assert.NoError(t, err)
	assert.Equal(t, "555-0101", p.Phone)
	assert.Contains(t, doc, "phone")
	assert.Contains(t, doc, "updatedAt")
	assert.NotContains(t, doc, "rating")
	assert.NotContains(t, doc, "reviews")
}

func TestUpdateProvider_NoFields(t *testing.T) {
	repo := new(providerMocks.MockProviderRepository)
	service := &DefaultProviderService{Repo: repo}

	p, err := service.UpdateProvider(context.Background(), "p-1", models.Provider{})

	assert.Error(t, err)
	assert.Nil(t, p)
	assert.Equal(t, utils.KindInvalidArgument, utils.KindOf(err))
	repo.AssertNotCalled(t, "UpdateWithDocument", mock.Anything, mock.Anything, mock.Anything)
}
