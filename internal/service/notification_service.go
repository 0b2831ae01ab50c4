package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/hablalab/academy-service/internal/events"
)

// NotificationService surfaces admin-relevant domain events in the logs.
// Outbound messaging integrations live outside this service.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService builds the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to the events worth notifying about.
func (s *NotificationService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Subscribe(events.EventUserLoggedIn, s.onUserLoggedIn)
	s.dispatcher.Subscribe(events.EventReceiptTokenIssued, s.onReceiptTokenIssued)
}

func (s *NotificationService) onUserLoggedIn(_ context.Context, event events.Event) error {
	s.logger.Info("user logged in",
		zap.String("event_id", event.ID),
		zap.String("user_id", event.UserID),
	)
	return nil
}

func (s *NotificationService) onReceiptTokenIssued(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ReceiptTokenIssuedPayload)
	if !ok {
		return nil
	}
	s.logger.Info("receipt token issued",
		zap.String("event_id", event.ID),
		zap.String("user_id", event.UserID),
		zap.String("inscripcion_id", payload.InscripcionID),
		zap.Bool("issued_by_admin", payload.IssuedByAdmin),
	)
	return nil
}
