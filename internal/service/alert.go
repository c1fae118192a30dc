package service

import (
	"context"
	"time"

	"github.com/shenikar/sos_tracking_system/internal/models"
	"github.com/shenikar/sos_tracking_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// AlertBroadcaster определяет контракт рассылки событий подключённым подписчикам
type AlertBroadcaster interface {
	Publish(event models.AlertEvent)
}

// AlertService определяет контракт для публикации SOS-событий
type AlertService interface {
	PublishAlert(ctx context.Context, event models.AlertEvent) error
}

type alertService struct {
	hub              AlertBroadcaster
	webhookPublisher webhook.WebhookPublisher
	logger           *logrus.Logger
}

func NewAlertService(hub AlertBroadcaster, webhookPublisher webhook.WebhookPublisher, logger *logrus.Logger) AlertService {
	return &alertService{
		hub:              hub,
		webhookPublisher: webhookPublisher,
		logger:           logger,
	}
}

// PublishAlert рассылает SOS-событие всем подключённым подписчикам и ставит
// вебхук в очередь для внешнего потребителя. Событие эфемерно: в бд не пишется.
func (s *alertService) PublishAlert(ctx context.Context, event models.AlertEvent) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "PublishAlert",
		"name":    event.Name,
	})
	log.Info("Publishing SOS alert")

	s.hub.Publish(event)

	webhookEvent := webhook.WebhookEvent{
		Name:         event.Name,
		Email:        event.Email,
		MobileNumber: event.MobileNumber,
		Message:      event.Message,
		Location:     event.Location,
		Timestamp:    time.Now().UTC(),
	}
	// Доставка подписчикам не зависит от очереди вебхуков
	if err := s.webhookPublisher.Publish(ctx, webhookEvent); err != nil {
		log.WithError(err).Warn("Failed to enqueue SOS webhook")
	}

	log.Info("SOS alert published successfully")
	return nil
}
