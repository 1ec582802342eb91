package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/attendance-service/internal/config"
	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/events"
)

// NotificationService emits notifications for attendance events: late
// arrivals and manual overrides are forwarded to the configured webhook
// and email stubs.
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
	n.dispatcher.Subscribe(events.EventCheckInRecorded, n.handleCheckIn)
	n.dispatcher.Subscribe(events.EventCheckOutRecorded, n.handleCheckOut)
	n.dispatcher.Subscribe(events.EventManualEntry, n.handleManualEntry)
}

func (n *NotificationService) handleCheckIn(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.CheckInPayload)
	if !ok {
		return nil
	}
	n.logger.Info("CheckInRecorded",
		zap.String("staff_id", event.StaffID),
		zap.String("date", event.Date),
		zap.String("status", string(payload.Status)))
	if payload.Status == domain.StatusLate {
		n.sendWebhookNotificationStub(ctx, event)
	}
	return nil
}

func (n *NotificationService) handleCheckOut(ctx context.Context, event events.Event) error {
	n.logger.Info("CheckOutRecorded",
		zap.String("staff_id", event.StaffID),
		zap.String("date", event.Date),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleManualEntry(ctx context.Context, event events.Event) error {
	n.logger.Info("ManualEntryRecorded",
		zap.String("staff_id", event.StaffID),
		zap.String("date", event.Date),
		zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("staff_id", event.StaffID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("staff_id", event.StaffID),
		zap.String("event_type", string(event.Type)))
}
