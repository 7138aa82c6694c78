package mocks

import (
	"context"

	"needmeet/events"

	"github.com/stretchr/testify/mock"
)

// MockPublisher is a testify mock for the event Publisher.
type MockPublisher struct {
	mock.Mock
	Published []events.Event
}

var _ events.Publisher = (*MockPublisher)(nil)

func (m *MockPublisher) Publish(ctx context.Context, event events.Event) error {
	m.Published = append(m.Published, event)
	args := m.Called(ctx, event)
	return args.Error(0)
}
