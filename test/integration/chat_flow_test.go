package integration

import (
	"context"
	"log"
	"os"
	"strings"
	"testing"

	"luma-companion-be/internal/dto"
	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/repository/specification"
	"luma-companion-be/internal/repository/unitofwork"
	"luma-companion-be/internal/service"
	"luma-companion-be/pkg/database"
	"luma-companion-be/pkg/embedding"
	"luma-companion-be/pkg/llm"
	"luma-companion-be/pkg/rag"
	"luma-companion-be/pkg/vectorstore"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type stubEmbedder struct{}

func (stubEmbedder) Generate(text string, taskType string) ([]float32, error) {
	// Deterministic vector keyed off the text length so distinct texts
	// land at distinct points.
	vec := make([]float32, embedding.Dimensions)
	vec[0] = float32(len(text) % 97)
	vec[1] = 1
	return vec, nil
}

type fixedReplyProvider struct {
	reply string
}

func (p fixedReplyProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return p.reply, nil
}

func (p fixedReplyProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.reply, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, uowFactory unitofwork.RepositoryFactory) uuid.UUID {
	t.Helper()

	uow := uowFactory.NewUnitOfWork(context.Background())
	user := &entity.User{
		Id:       uuid.New(),
		Email:    "chat-flow-" + uuid.New().String() + "@example.com",
		FullName: "Chat Flow Test User",
	}
	if err := uow.UserRepository().Create(context.Background(), user); err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user.Id
}

func TestChatFlow(t *testing.T) {
	db := openTestDB(t)

	uowFactory := unitofwork.NewRepositoryFactory(db)
	store := vectorstore.NewPgVectorStore(db)
	retriever := rag.NewRetriever(stubEmbedder{}, store, nopLogger{})

	t.Run("new session persists both turns", func(t *testing.T) {
		userId := createTestUser(t, uowFactory)
		chatService := service.NewChatService(uowFactory, retriever, fixedReplyProvider{"That sounds like a lot. What happened?"}, nopLogger{})

		message := strings.Repeat("Today was really overwhelming at school ", 3)
		res, err := chatService.SendMessage(context.Background(), userId, &dto.SendChatRequest{Message: message})
		assert.NoError(t, err)
		assert.Equal(t, "That sounds like a lot. What happened?", res.Result)

		uow := uowFactory.NewUnitOfWork(context.Background())
		session, err := uow.ChatSessionRepository().FindOne(context.Background(),
			specification.ByID{ID: res.SessionId},
			specification.UserOwnedBy{UserID: userId},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, session) {
			assert.True(t, strings.HasSuffix(session.Title, "..."))
		}

		messages, err := uow.ChatMessageRepository().FindAll(context.Background(),
			specification.BySessionID{SessionID: res.SessionId},
			specification.OrderBy{Field: "created_at", Desc: false},
		)
		assert.NoError(t, err)
		if assert.Len(t, messages, 2) {
			assert.Equal(t, entity.ChatMessageRoleUser, messages[0].Role)
			assert.Equal(t, message, messages[0].Content)
			assert.Equal(t, entity.ChatMessageRoleAssistant, messages[1].Role)
		}
	})

	t.Run("foreign session is rejected without writes", func(t *testing.T) {
		ownerId := createTestUser(t, uowFactory)
		intruderId := createTestUser(t, uowFactory)
		chatService := service.NewChatService(uowFactory, retriever, fixedReplyProvider{"hello"}, nopLogger{})

		first, err := chatService.SendMessage(context.Background(), ownerId, &dto.SendChatRequest{Message: "my session"})
		assert.NoError(t, err)

		_, err = chatService.SendMessage(context.Background(), intruderId, &dto.SendChatRequest{
			Message:   "sneaking in",
			SessionId: &first.SessionId,
		})
		assert.Error(t, err)

		uow := uowFactory.NewUnitOfWork(context.Background())
		messages, err := uow.ChatMessageRepository().FindAll(context.Background(),
			specification.BySessionID{SessionID: first.SessionId},
		)
		assert.NoError(t, err)
		assert.Len(t, messages, 2)
	})

	t.Run("save-back indexes the exchange", func(t *testing.T) {
		userId := createTestUser(t, uowFactory)
		chatService := service.NewChatService(uowFactory, retriever, fixedReplyProvider{"I hear you."}, nopLogger{})

		_, err := chatService.SendMessage(context.Background(), userId, &dto.SendChatRequest{
			Message:  "Remember that I love hiking",
			SaveToDb: true,
		})
		assert.NoError(t, err)

		col, err := store.GetOrCreateCollection(context.Background(), vectorstore.UserHistoryCollection(userId), embedding.Dimensions)
		assert.NoError(t, err)

		vec, _ := stubEmbedder{}.Generate("Remember that I love hiking", embedding.TaskRetrievalQuery)
		results, err := store.Query(context.Background(), col, vec, 5)
		assert.NoError(t, err)
		if assert.NotEmpty(t, results) {
			assert.Contains(t, results[0].Document, "User: Remember that I love hiking")
			assert.Contains(t, results[0].Document, "Model: I hear you.")
		}
	})
}
