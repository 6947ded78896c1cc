package bootstrap

import (
	"context"
	"log"

	"luma-companion-be/internal/config"
	"luma-companion-be/internal/controller"
	"luma-companion-be/internal/pkg/logger"
	"luma-companion-be/internal/pkg/mailer"
	"luma-companion-be/internal/repository/unitofwork"
	"luma-companion-be/internal/service"
	"luma-companion-be/internal/websocket"
	"luma-companion-be/pkg/embedding"
	"luma-companion-be/pkg/llm/factory"
	pktNats "luma-companion-be/pkg/nats"
	"luma-companion-be/pkg/push"
	"luma-companion-be/pkg/rag"
	"luma-companion-be/pkg/tts"
	"luma-companion-be/pkg/vectorstore"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	OAuthController        controller.IOAuthController
	ChatController         controller.IChatController
	MoodController         controller.IMoodController
	JournalController      controller.IJournalController
	ReminderController     controller.IReminderController
	CommunityController    controller.ICommunityController
	MotivationController   controller.IMotivationController
	ProfileController      controller.IProfileController
	SpeechController       controller.ISpeechController
	PushController         controller.IPushController
	NotificationController controller.INotificationController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	WebSocketHub *websocket.Hub

	// Shared logger (server middleware logs through it too)
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		sysLogger.Info("Bootstrap", "Using Embedding Provider: OLLAMA", map[string]interface{}{"model": cfg.Ai.OllamaModel})
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.Gemini)
		sysLogger.Info("Bootstrap", "Using Embedding Provider: GEMINI", nil)
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.Gemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	sysLogger.Info("Bootstrap", "Using LLM Provider", map[string]interface{}{
		"provider": cfg.Ai.LLMProvider,
		"model":    cfg.Ai.LLMModel,
	})

	vectorStore := vectorstore.NewPgVectorStore(db)
	retriever := rag.NewRetriever(embeddingProvider, vectorStore, sysLogger)

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		sysLogger.Warn("Bootstrap", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err.Error()})
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		sysLogger.Warn("Bootstrap", "Failed to connect to NATS Subscriber", map[string]interface{}{"error": err.Error()})
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		sysLogger.Warn("Bootstrap", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		sysLogger.Warn("Bootstrap", "Failed to connect to Redis", map[string]interface{}{"error": err.Error()})
	}

	pushClient := push.NewClient(cfg.Keys.OneSignalAppId, cfg.Keys.OneSignalRestKey)
	ttsClient := tts.NewClient(cfg.Keys.ElevenLabs)

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Keys.JournalEmbedTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.JournalEmbedTopic,
		retriever,
		sysLogger,
	)

	authService := service.NewAuthService(uowFactory, emailService, natsPub, sysLogger)
	oauthService := service.NewOAuthService(uowFactory, cfg.OAuth)
	chatService := service.NewChatService(uowFactory, retriever, llmProvider, sysLogger)
	moodService := service.NewMoodService(uowFactory)
	journalService := service.NewJournalService(uowFactory, publisherService, sysLogger)
	reminderService := service.NewReminderService(uowFactory, pushClient, natsPub, cfg.App.ClientURL, sysLogger)
	communityService := service.NewCommunityService(uowFactory, rdb, sysLogger)
	motivationService := service.NewMotivationService(uowFactory, natsPub, sysLogger)
	profileService := service.NewProfileService(uowFactory)
	speechService := service.NewSpeechService(ttsClient, cfg.Keys.ElevenLabsVoiceId)
	pushService := service.NewPushService(uowFactory)

	notifService := service.NewNotificationService(uowFactory, natsSub, wsHub, wsLogger)
	if natsSub != nil {
		go func() {
			if err := notifService.Start(); err != nil {
				sysLogger.Warn("Bootstrap", "Notification worker failed to start", map[string]interface{}{"error": err.Error()})
			}
		}()
	}

	// 6. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		OAuthController:        controller.NewOAuthController(oauthService),
		ChatController:         controller.NewChatController(chatService),
		MoodController:         controller.NewMoodController(moodService),
		JournalController:      controller.NewJournalController(journalService),
		ReminderController:     controller.NewReminderController(reminderService, cfg.App.CronSecret),
		CommunityController:    controller.NewCommunityController(communityService),
		MotivationController:   controller.NewMotivationController(motivationService),
		ProfileController:      controller.NewProfileController(profileService),
		SpeechController:       controller.NewSpeechController(speechService),
		PushController:         controller.NewPushController(pushService),
		NotificationController: controller.NewNotificationController(notifService, wsHub),

		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
		Logger:          sysLogger,
	}
}
