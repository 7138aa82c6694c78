package emergency

import (
	"context"
	"time"

	"needmeet/events"
	"needmeet/models"
	"needmeet/utils"

	"go.uber.org/zap"
)

// EmergencyService owns SOS alert dispatch.
type EmergencyService interface {
	SendSOS(ctx context.Context, alert models.SOSAlert) error
}

// DefaultEmergencyService logs the alert and publishes it to the event topic
// so downstream consumers (admin tooling, notification fan-out) can react.
type DefaultEmergencyService struct {
	Events events.Publisher
}

func (s *DefaultEmergencyService) SendSOS(ctx context.Context, alert models.SOSAlert) error {
	if alert.UserID == "" || alert.Location == "" || alert.Message == "" {
		return utils.InvalidArgumentError("userId, location, and message are required")
	}
	if alert.Timestamp.IsZero() {
		alert.Timestamp = time.Now()
	}

	utils.GetLogger().Warn("SOS alert received",
		zap.String("userID", alert.UserID),
		zap.String("location", alert.Location),
		zap.String("message", alert.Message))

	if s.Events != nil {
		event := events.Event{
			EventType: events.TypeSOSAlert,
			EntityID:  alert.UserID,
			UserID:    alert.UserID,
			Detail:    alert.Message,
			Timestamp: alert.Timestamp,
		}
		if err := s.Events.Publish(ctx, event); err != nil {
			return utils.DependencyError("failed to publish SOS alert", err)
		}
	}
	return nil
}
