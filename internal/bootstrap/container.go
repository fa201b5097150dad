package bootstrap

import (
	"context"
	"log"
	"time"

	"bot-intake-be/internal/config"
	"bot-intake-be/internal/constant"
	"bot-intake-be/internal/controller"
	"bot-intake-be/internal/engine"
	"bot-intake-be/internal/handler"
	"bot-intake-be/internal/notifier"
	"bot-intake-be/internal/pkg/logger"
	"bot-intake-be/internal/pkg/mailer"
	"bot-intake-be/internal/refstore"
	"bot-intake-be/internal/service"
	"bot-intake-be/internal/storage"
	"bot-intake-be/pkg/database"

	pktNats "bot-intake-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WsChatHandler *handler.WsChatHandler
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Reference-data store
	backend, err := newReferenceStorage(cfg)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize %q storage backend: %v", cfg.Storage.Backend, err)
	}
	store, err := refstore.Open(context.Background(), backend, sysLogger)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load reference data: %v", err)
	}

	// 3. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 4. Outbound notifiers. NATS being down degrades to log-only delivery
	// instead of refusing to boot.
	notifiers := []notifier.Notifier{notifier.NewLogNotifier(sysLogger)}

	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		notifiers = append(notifiers, notifier.NewNatsNotifier(natsPub))
	}

	if cfg.SMTP.Host != "" && cfg.SMTP.OperatorTo != "" {
		emailService := mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.SenderName,
		)
		notifiers = append(notifiers, notifier.NewEmailNotifier(emailService, cfg.SMTP.OperatorTo))
	}

	// 5. Services
	submissionPublisher := service.NewSubmissionPublisher(constant.TopicSubmissionCompleted, pubSub)
	consumerService := service.NewConsumerService(pubSub, constant.TopicSubmissionCompleted, notifiers, sysLogger)

	machine := engine.NewMachine(store, cfg.Intake.AdminIDs, submissionPublisher, sysLogger)
	registry := engine.NewRegistry(time.Duration(cfg.Intake.SessionTTLMinutes) * time.Minute)
	intakeService := service.NewIntakeService(machine, registry, sysLogger)

	// 6. Transports
	chatController := controller.NewChatController(intakeService)
	wsChatHandler := handler.NewWsChatHandler(intakeService, sysLogger)

	return &Container{
		ChatController:  chatController,
		ConsumerService: consumerService,
		WsChatHandler:   wsChatHandler,
	}
}

func newReferenceStorage(cfg *config.Config) (storage.ReferenceStorage, error) {
	switch cfg.Storage.Backend {
	case "postgres":
		db, err := database.NewGormDBFromDSN(cfg.Storage.Connection)
		if err != nil {
			return nil, err
		}
		return storage.NewPostgresStorage(db)
	case "redis":
		opts, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			return nil, err
		}
		return storage.NewRedisStorage(redis.NewClient(opts)), nil
	default:
		return storage.NewFileStorage(cfg.Storage.DataFilePath), nil
	}
}
