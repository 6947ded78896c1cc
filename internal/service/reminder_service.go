package service

import (
	"context"
	"fmt"
	"time"

	"luma-companion-be/internal/dto"
	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/pkg/apperror"
	"luma-companion-be/internal/pkg/logger"
	"luma-companion-be/internal/repository/specification"
	"luma-companion-be/internal/repository/unitofwork"
	"luma-companion-be/pkg/events"
	pktNats "luma-companion-be/pkg/nats"
	"luma-companion-be/pkg/push"

	"github.com/google/uuid"
)

type IReminderService interface {
	Upsert(ctx context.Context, userId uuid.UUID, req *dto.UpsertReminderRequest) (*dto.ReminderResponse, error)
	GetReminders(ctx context.Context, userId uuid.UUID, goalId string) ([]*dto.ReminderResponse, error)
	CheckDue(ctx context.Context) (*dto.CheckRemindersResponse, error)
}

type reminderService struct {
	uowFactory     unitofwork.RepositoryFactory
	pushClient     *push.Client
	eventPublisher *pktNats.Publisher
	clientURL      string
	log            logger.ILogger
}

func NewReminderService(
	uowFactory unitofwork.RepositoryFactory,
	pushClient *push.Client,
	eventPublisher *pktNats.Publisher,
	clientURL string,
	log logger.ILogger,
) IReminderService {
	return &reminderService{
		uowFactory:     uowFactory,
		pushClient:     pushClient,
		eventPublisher: eventPublisher,
		clientURL:      clientURL,
		log:            log,
	}
}

// shouldSendToday decides whether a reminder's frequency covers the day.
func shouldSendToday(frequency entity.ReminderFrequency, day time.Weekday) bool {
	switch frequency {
	case entity.ReminderFrequencyDaily:
		return true
	case entity.ReminderFrequencyWeekdays:
		return day >= time.Monday && day <= time.Friday
	case entity.ReminderFrequencyWeekends:
		return day == time.Saturday || day == time.Sunday
	case entity.ReminderFrequencyWeekly:
		return day == time.Monday
	default:
		return true
	}
}

func reminderResponse(r *entity.Reminder) *dto.ReminderResponse {
	return &dto.ReminderResponse{
		Id:            r.Id,
		GoalId:        r.GoalId,
		GoalText:      r.GoalText,
		Time:          r.Time,
		Frequency:     string(r.Frequency),
		CustomMessage: r.CustomMessage,
		AddToCalendar: r.AddToCalendar,
		Active:        r.Active,
		CreatedAt:     r.CreatedAt,
	}
}

func (s *reminderService) Upsert(ctx context.Context, userId uuid.UUID, req *dto.UpsertReminderRequest) (*dto.ReminderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.New(apperror.KindNotFound, "user not found")
	}
	if user.OneSignalPlayerId == nil || *user.OneSignalPlayerId == "" {
		return nil, apperror.New(apperror.KindValidation, "push registration required before setting reminders")
	}

	existing, err := uow.ReminderRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByGoalID{GoalID: req.GoalId},
	)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.GoalText = req.GoalText
		existing.Time = req.Reminder.Time
		existing.Frequency = entity.ReminderFrequency(req.Reminder.Frequency)
		existing.CustomMessage = req.Reminder.CustomMessage
		existing.AddToCalendar = req.Reminder.AddToCalendar
		existing.Active = true
		existing.UpdatedAt = time.Now()
		if err := uow.ReminderRepository().Update(ctx, existing); err != nil {
			return nil, err
		}
		return reminderResponse(existing), nil
	}

	reminder := &entity.Reminder{
		Id:            uuid.New(),
		UserId:        userId,
		GoalId:        req.GoalId,
		GoalText:      req.GoalText,
		Time:          req.Reminder.Time,
		Frequency:     entity.ReminderFrequency(req.Reminder.Frequency),
		CustomMessage: req.Reminder.CustomMessage,
		AddToCalendar: req.Reminder.AddToCalendar,
		Active:        true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := uow.ReminderRepository().Create(ctx, reminder); err != nil {
		return nil, err
	}

	return reminderResponse(reminder), nil
}

func (s *reminderService) GetReminders(ctx context.Context, userId uuid.UUID, goalId string) ([]*dto.ReminderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if goalId != "" {
		specs = append(specs, specification.ByGoalID{GoalID: goalId})
	}

	reminders, err := uow.ReminderRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ReminderResponse, len(reminders))
	for i, r := range reminders {
		responses[i] = reminderResponse(r)
	}
	return responses, nil
}

func (s *reminderService) CheckDue(ctx context.Context) (*dto.CheckRemindersResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	timeString := fmt.Sprintf("%02d:%02d", now.Hour(), now.Minute())

	reminders, err := uow.ReminderRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.ByReminderTime{Time: timeString},
	)
	if err != nil {
		return nil, err
	}

	sent := 0
	for _, reminder := range reminders {
		if !shouldSendToday(reminder.Frequency, now.Weekday()) {
			continue
		}

		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: reminder.UserId})
		if err != nil {
			s.log.Warn("reminder", "failed to load reminder owner", map[string]interface{}{
				"reminder_id": reminder.Id.String(),
				"error":       err.Error(),
			})
			continue
		}
		if user == nil || user.OneSignalPlayerId == nil || *user.OneSignalPlayerId == "" {
			continue
		}

		content := fmt.Sprintf("Time to work on your goal: %s", reminder.GoalText)
		if reminder.CustomMessage != nil && *reminder.CustomMessage != "" {
			content = *reminder.CustomMessage
		}

		notification := push.Notification{
			PlayerIds: []string{*user.OneSignalPlayerId},
			Heading:   "🎯 Goal Reminder",
			Content:   content,
			URL:       s.clientURL + "/goals",
		}
		if err := s.pushClient.Send(ctx, notification); err != nil {
			s.log.Warn("reminder", "push delivery failed", map[string]interface{}{
				"reminder_id": reminder.Id.String(),
				"error":       err.Error(),
			})
			continue
		}

		if s.eventPublisher != nil {
			event := events.ReminderDue(reminder.UserId.String(), reminder.GoalId, reminder.GoalText, content)
			if err := s.eventPublisher.Publish(ctx, event); err != nil {
				s.log.Warn("reminder", "failed to publish reminder event", map[string]interface{}{
					"reminder_id": reminder.Id.String(),
					"error":       err.Error(),
				})
			}
		}

		sent++
	}

	return &dto.CheckRemindersResponse{
		Checked: len(reminders),
		Sent:    sent,
		Time:    timeString,
	}, nil
}
