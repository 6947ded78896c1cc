package service

import (
	"context"
	"time"

	"luma-companion-be/internal/dto"
	"luma-companion-be/internal/pkg/apperror"
	"luma-companion-be/internal/repository/specification"
	"luma-companion-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IPushService interface {
	RegisterPlayer(ctx context.Context, userId uuid.UUID, req *dto.RegisterPlayerRequest) error
}

type pushService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPushService(uowFactory unitofwork.RepositoryFactory) IPushService {
	return &pushService{uowFactory: uowFactory}
}

func (s *pushService) RegisterPlayer(ctx context.Context, userId uuid.UUID, req *dto.RegisterPlayerRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.New(apperror.KindNotFound, "user not found")
	}

	user.OneSignalPlayerId = &req.PlayerId
	user.UpdatedAt = time.Now()
	return uow.UserRepository().Update(ctx, user)
}
