package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/config"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/events"
)

// NotificationService handles emitting notifications for moderation events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventBusinessSubmitted, n.handleSubmitted)
	n.dispatcher.Subscribe(events.EventBusinessApproved, n.handleModerated)
	n.dispatcher.Subscribe(events.EventBusinessRejected, n.handleModerated)
	n.dispatcher.Subscribe(events.EventBusinessDelisted, n.handleModerated)
	n.dispatcher.Subscribe(events.EventEventSubmitted, n.handleSubmitted)
	n.dispatcher.Subscribe(events.EventEventApproved, n.handleModerated)
	n.dispatcher.Subscribe(events.EventEventRejected, n.handleModerated)
	n.dispatcher.Subscribe(events.EventEventDeleted, n.handleModerated)
}

func (n *NotificationService) handleSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("submission received",
		zap.String("event_type", string(event.Type)),
		zap.String("subject_id", event.SubjectID),
		zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleModerated(ctx context.Context, event events.Event) error {
	n.logger.Info("moderation outcome",
		zap.String("event_type", string(event.Type)),
		zap.String("subject_id", event.SubjectID),
		zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("subject_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("subject_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}
