package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"luma-companion-be/internal/dto"
	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/pkg/apperror"
	"luma-companion-be/internal/pkg/logger"
	"luma-companion-be/internal/repository/specification"
	"luma-companion-be/internal/repository/unitofwork"
	"luma-companion-be/pkg/events"
	pktNats "luma-companion-be/pkg/nats"

	"github.com/google/uuid"
)

// NotificationDelivery pushes a notification to connected clients.
// The websocket hub satisfies this.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification dto.NotificationResponse)
}

type INotificationService interface {
	Start() error
	GetNotifications(ctx context.Context, userId uuid.UUID) ([]*dto.NotificationResponse, error)
	MarkRead(ctx context.Context, userId uuid.UUID, notificationId uuid.UUID) error
}

type notificationService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	log        logger.ILogger
}

func NewNotificationService(
	uowFactory unitofwork.RepositoryFactory,
	subscriber *pktNats.Subscriber,
	delivery NotificationDelivery,
	log logger.ILogger,
) INotificationService {
	return &notificationService{
		uowFactory: uowFactory,
		subscriber: subscriber,
		delivery:   delivery,
		log:        log,
	}
}

func notificationResponse(n *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		Id:        n.Id,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Metadata:  n.Metadata,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// Start subscribes to the event stream and fans incoming events out as
// persisted notifications.
func (s *notificationService) Start() error {
	if s.subscriber == nil {
		return nil
	}
	return s.subscriber.Subscribe("events.>", "notification-worker", s.handleEvent)
}

func (s *notificationService) handleEvent(ctx context.Context, event events.Event) error {
	// Subjects arrive with the stream prefix attached.
	typeCode := strings.TrimPrefix(event.EventType(), "events.")
	payload := event.Payload()

	rawUserId, _ := payload["user_id"].(string)
	userId, err := uuid.Parse(rawUserId)
	if err != nil {
		s.log.Warn("notification", "event carries no usable user id, dropping", map[string]interface{}{
			"event_type": typeCode,
		})
		return nil
	}

	var title, message string
	switch typeCode {
	case events.TypeReminderDue:
		title = "Goal Reminder"
		message, _ = payload["message"].(string)
		if message == "" {
			goalText, _ := payload["goal_text"].(string)
			message = fmt.Sprintf("Time to work on your goal: %s", goalText)
		}
	case events.TypeMotivationSent:
		senderName, _ := payload["sender_name"].(string)
		goalText, _ := payload["goal_text"].(string)
		title = "Someone is cheering you on!"
		message = fmt.Sprintf("%s sent you motivation for your goal: %s", senderName, goalText)
	case events.TypeUserRegistered:
		title = "Welcome to Luma"
		message = "Your companion is ready whenever you want to talk."
	default:
		s.log.Warn("notification", "unhandled event type", map[string]interface{}{"event_type": typeCode})
		return nil
	}

	notification := &entity.Notification{
		Id:        uuid.New(),
		UserId:    userId,
		Type:      typeCode,
		Title:     title,
		Message:   message,
		Metadata:  payload,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NotificationRepository().Create(ctx, notification); err != nil {
		return err
	}

	if s.delivery != nil {
		s.delivery.Send(userId, *notificationResponse(notification))
	}

	return nil
}

func (s *notificationService) GetNotifications(ctx context.Context, userId uuid.UUID) ([]*dto.NotificationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notifications, err := uow.NotificationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = notificationResponse(n)
	}
	return responses, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userId uuid.UUID, notificationId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.NotificationRepository().MarkRead(ctx, notificationId, userId)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.New(apperror.KindNotFound, "notification not found")
	}
	return nil
}
