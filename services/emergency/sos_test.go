package emergency

import (
	"context"
	"errors"
	"testing"

	"needmeet/events"
	eventMocks "needmeet/events/mocks"
	"needmeet/models"
	"needmeet/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSendSOS_PublishesAlert(t *testing.T) {
	publisher := new(eventMocks.MockPublisher)
	service := &DefaultEmergencyService{Events: publisher}

	ctx := context.Background()
	publisher.On("Publish", ctx, mock.Anything).Return(nil)

	err := service.SendSOS(ctx, models.SOSAlert{
		UserID:   "user-1",
		Location: "12 Elm Street",
		Message:  "burst pipe flooding basement",
	})

	assert.NoError(t, err)
	assert.Len(t, publisher.Published, 1)
	assert.Equal(t, events.TypeSOSAlert, publisher.Published[0].EventType)
	assert.Equal(t, "user-1", publisher.Published[0].UserID)
}

func TestSendSOS_MissingFields(t *testing.T) {
	service := &DefaultEmergencyService{}

	err := service.SendSOS(context.Background(), models.SOSAlert{UserID: "user-1"})

	assert.Error(t, err)
	assert.Equal(t, utils.KindInvalidArgument, utils.KindOf(err))
}

func TestSendSOS_PublishFailureSurfaces(t *testing.T) {
	publisher := new(eventMocks.MockPublisher)
	service := &DefaultEmergencyService{Events: publisher}

	ctx := context.Background()
	publisher.On("Publish", ctx, mock.Anything).Return(errors.New("kafka down"))

	err := service.SendSOS(ctx, models.SOSAlert{
		UserID:   "user-1",
		Location: "12 Elm Street",
		Message:  "gas smell",
	})

	assert.Error(t, err)
	assert.Equal(t, utils.KindDependencyFailure, utils.KindOf(err))
}
