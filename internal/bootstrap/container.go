package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"ai-procurement-be/internal/config"
	"ai-procurement-be/internal/controller"
	"ai-procurement-be/internal/handler"
	"ai-procurement-be/internal/pkg/logger"
	"ai-procurement-be/internal/pkg/mailer"
	"ai-procurement-be/internal/repository/memory"
	"ai-procurement-be/internal/repository/unitofwork"
	"ai-procurement-be/internal/service"
	"ai-procurement-be/internal/websocket"
	"ai-procurement-be/pkg/webhook"

	pktNats "ai-procurement-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// documentIndexTopic carries keyword indexing jobs between the
// document service and the background consumer.
const documentIndexTopic = "document.index"

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	OAuthController        controller.IOAuthController
	ConversationController controller.IConversationController
	DocumentController     controller.IDocumentController
	SupplierController     controller.ISupplierController
	AssistantController    controller.IAssistantController
	ProxyController        controller.IProxyController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & activity feed
	ActivityHandler *handler.ActivityHandler
	WebSocketHub    *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		fmt.Sprintf("%s <%s>", cfg.SMTP.SenderName, cfg.SMTP.Email),
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/activity.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// In-memory chat session storage
	sessionRepo := memory.NewSessionRepository()

	// n8n webhook client, shared by the assistant and the proxy
	n8nClient := webhook.NewN8NClient(cfg.Webhook.N8NURL)
	if cfg.Webhook.TimeoutSeconds > 0 {
		n8nClient.Timeout = time.Duration(cfg.Webhook.TimeoutSeconds) * time.Second
	}

	// 3. Services
	publisherService := service.NewPublisherService(documentIndexTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		documentIndexTopic,
		uowFactory,
	)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	oauthService := service.NewOAuthService(uowFactory)
	conversationService := service.NewConversationService(uowFactory)
	documentService := service.NewDocumentService(uowFactory, publisherService, natsPub)
	supplierService := service.NewSupplierService(uowFactory, natsPub)
	assistantService := service.NewAssistantService(
		uowFactory,
		sessionRepo,
		n8nClient,
		natsPub,
		sysLogger,
	)

	// 3.5 Activity feed worker
	activityHandler := handler.NewActivityHandler(natsSub, wsHub, wsLogger)
	if err := activityHandler.Start(); err != nil {
		log.Printf("[WARN] Failed to start activity feed: %v", err)
	}

	// 4. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		OAuthController:        controller.NewOAuthController(oauthService),
		ConversationController: controller.NewConversationController(conversationService),
		DocumentController:     controller.NewDocumentController(documentService),
		SupplierController:     controller.NewSupplierController(supplierService),
		AssistantController:    controller.NewAssistantController(assistantService),
		ProxyController:        controller.NewProxyController(n8nClient, sysLogger),

		ConsumerService: consumerService,

		ActivityHandler: activityHandler,
		WebSocketHub:    wsHub,
	}
}
