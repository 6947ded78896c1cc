package service

import (
	"context"
	"time"

	"luma-companion-be/internal/dto"
	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/pkg/logger"
	"luma-companion-be/internal/repository/specification"
	"luma-companion-be/internal/repository/unitofwork"
	"luma-companion-be/pkg/events"
	pktNats "luma-companion-be/pkg/nats"

	"github.com/google/uuid"
)

type IMotivationService interface {
	Send(ctx context.Context, req *dto.SendMotivationRequest) (*dto.MotivationResponse, error)
	GetReceived(ctx context.Context, userId uuid.UUID) ([]*dto.MotivationResponse, error)
}

type motivationService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewMotivationService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, log logger.ILogger) IMotivationService {
	return &motivationService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func motivationResponse(m *entity.Motivation) *dto.MotivationResponse {
	return &dto.MotivationResponse{
		Id:         m.Id,
		SenderName: m.SenderName,
		GoalText:   m.GoalText,
		Note:       m.Note,
		CreatedAt:  m.CreatedAt,
	}
}

func (s *motivationService) Send(ctx context.Context, req *dto.SendMotivationRequest) (*dto.MotivationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	motivation := &entity.Motivation{
		Id:         uuid.New(),
		ReceiverId: req.ReceiverId,
		SenderName: req.SenderName,
		GoalText:   req.GoalText,
		Note:       req.Note,
		CreatedAt:  time.Now(),
	}

	if err := uow.MotivationRepository().Create(ctx, motivation); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		note := ""
		if req.Note != nil {
			note = *req.Note
		}
		event := events.MotivationSent(req.ReceiverId.String(), req.SenderName, req.GoalText, note)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.log.Warn("motivation", "failed to publish motivation event", map[string]interface{}{
				"receiver_id": req.ReceiverId.String(),
				"error":       err.Error(),
			})
		}
	}

	return motivationResponse(motivation), nil
}

func (s *motivationService) GetReceived(ctx context.Context, userId uuid.UUID) ([]*dto.MotivationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	motivations, err := uow.MotivationRepository().FindAll(ctx,
		specification.Filter("receiver_id", userId),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.MotivationResponse, len(motivations))
	for i, m := range motivations {
		responses[i] = motivationResponse(m)
	}
	return responses, nil
}
