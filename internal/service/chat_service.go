package service

import (
	"context"
	"strings"
	"time"

	"luma-companion-be/internal/constant"
	"luma-companion-be/internal/dto"
	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/pkg/apperror"
	"luma-companion-be/internal/pkg/logger"
	"luma-companion-be/internal/repository/specification"
	"luma-companion-be/internal/repository/unitofwork"
	"luma-companion-be/pkg/llm"
	"luma-companion-be/pkg/rag"
	"luma-companion-be/pkg/rag/prompt"

	"github.com/google/uuid"
)

// IChatService is the conversational core: retrieval-grounded replies,
// session listing and the daily proactive check-in.
type IChatService interface {
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetSessions(ctx context.Context, userId uuid.UUID) ([]*dto.ChatSessionResponse, error)
	GetSessionMessages(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.ChatMessageResponse, error)
	Checkin(ctx context.Context, userId uuid.UUID) (*dto.CheckinResponse, error)
}

type chatService struct {
	uowFactory  unitofwork.RepositoryFactory
	retriever   *rag.Retriever
	llmProvider llm.LLMProvider
	log         logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	retriever *rag.Retriever,
	llmProvider llm.LLMProvider,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:  uowFactory,
		retriever:   retriever,
		llmProvider: llmProvider,
		log:         log,
	}
}

// sessionTitle derives a new session's title from its first message.
func sessionTitle(message string) string {
	runes := []rune(message)
	if len(runes) > constant.SessionTitleMaxLen {
		return string(runes[:constant.SessionTitleMaxLen]) + "..."
	}
	return message
}

func (s *chatService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	message := req.Message
	if strings.TrimSpace(message) == "" {
		return nil, apperror.New(apperror.KindValidation, "message is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Resolve the session up front so a foreign session fails before
	// anything is written.
	var session *entity.ChatSession
	if req.SessionId != nil {
		found, err := uow.ChatSessionRepository().FindOne(ctx,
			specification.ByID{ID: *req.SessionId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if found == nil {
			return nil, apperror.New(apperror.KindNotFound, "chat session not found or access denied")
		}
		session = found
	}

	emotion := prompt.NormalizeEmotion(req.EmotionAnalysis)

	docs := s.retriever.Retrieve(ctx, userId, message, constant.RetrievalTopK)

	lastMood := ""
	moodEntry, err := uow.MoodEntryRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if moodEntry != nil {
		lastMood = moodEntry.Mood
	}

	finalPrompt := prompt.Chat(message, lastMood, emotion, docs)

	reply, err := s.llmProvider.Generate(ctx, finalPrompt)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindUpstream, "language model request failed", err)
	}

	// Both turns commit together, after generation succeeded. A failed
	// turn leaves no orphaned user message behind.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := time.Now()
	if session == nil {
		session = &entity.ChatSession{
			Id:        uuid.New(),
			UserId:    userId,
			Title:     sessionTitle(message),
			CreatedAt: now,
		}
		if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
			return nil, err
		}
	}

	userMessage := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: session.Id,
		Role:      entity.ChatMessageRoleUser,
		Content:   message,
		CreatedAt: now,
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		return nil, err
	}

	assistantMessage := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: session.Id,
		Role:      entity.ChatMessageRoleAssistant,
		Content:   reply,
		CreatedAt: now,
	}
	if err := uow.ChatMessageRepository().Create(ctx, assistantMessage); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if req.SaveToDb {
		// Best effort: the vector index is a rebuildable cache, a failed
		// write must not fail the already-committed turn.
		if err := s.retriever.SaveExchange(ctx, userId, message, reply); err != nil {
			s.log.Warn("chat", "failed to index exchange", map[string]interface{}{
				"user_id": userId.String(),
				"error":   err.Error(),
			})
		}
	}

	return &dto.SendChatResponse{
		Result:    reply,
		SessionId: session.Id,
	}, nil
}

func (s *chatService) GetSessions(ctx context.Context, userId uuid.UUID) ([]*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ChatSessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = &dto.ChatSessionResponse{
			Id:        session.Id,
			Title:     session.Title,
			CreatedAt: session.CreatedAt,
			UpdatedAt: session.UpdatedAt,
		}
	}
	return responses, nil
}

func (s *chatService) GetSessionMessages(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.New(apperror.KindNotFound, "chat session not found or access denied")
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ChatMessageResponse, len(messages))
	for i, message := range messages {
		responses[i] = &dto.ChatMessageResponse{
			Id:        message.Id,
			Role:      string(message.Role),
			Content:   message.Content,
			CreatedAt: message.CreatedAt,
		}
	}
	return responses, nil
}

func (s *chatService) Checkin(ctx context.Context, userId uuid.UUID) (*dto.CheckinResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	existing, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.TitleStartsWith{Prefix: constant.CheckinSessionTitle},
		specification.CreatedSince{Since: startOfToday},
	)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		firstMessages, err := uow.ChatMessageRepository().FindAll(ctx,
			specification.BySessionID{SessionID: existing.Id},
			specification.OrderBy{Field: "created_at", Desc: false},
			specification.Pagination{Limit: 1},
		)
		if err != nil {
			return nil, err
		}
		if len(firstMessages) > 0 {
			existing.Title = constant.CheckinSessionTitleUpdated
			if err := uow.ChatSessionRepository().Update(ctx, existing); err != nil {
				return nil, err
			}
			return &dto.CheckinResponse{
				Message:        "Proactive check-in for today already exists.",
				CheckinMessage: firstMessages[0].Content,
				SessionId:      existing.Id,
			}, nil
		}
	}

	lastMood := ""
	moodEntry, err := uow.MoodEntryRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if moodEntry != nil {
		lastMood = moodEntry.Mood
	}

	weekAgo := now.AddDate(0, 0, -7)
	journals, err := uow.JournalEntryRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.CreatedSince{Since: weekAgo},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 3},
	)
	if err != nil {
		return nil, err
	}
	journalContents := make([]string, len(journals))
	for i, j := range journals {
		journalContents[i] = j.Content
	}

	checkinPrompt := prompt.Checkin(lastMood, journalContents)

	checkinMessage, err := s.llmProvider.Generate(ctx, checkinPrompt)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindUpstream, "language model request failed", err)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	session := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     constant.CheckinSessionTitle,
		CreatedAt: now,
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	assistantMessage := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: session.Id,
		Role:      entity.ChatMessageRoleAssistant,
		Content:   checkinMessage,
		CreatedAt: now,
	}
	if err := uow.ChatMessageRepository().Create(ctx, assistantMessage); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CheckinResponse{
		Message:        "Proactive check-in generated successfully.",
		CheckinMessage: checkinMessage,
		SessionId:      session.Id,
	}, nil
}
