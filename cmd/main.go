package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/shenikar/geofence_alert_service/internal/broadcast"
	"github.com/shenikar/geofence_alert_service/internal/config"
	"github.com/shenikar/geofence_alert_service/internal/geofence"
	v1 "github.com/shenikar/geofence_alert_service/internal/handler/http/v1"
	"github.com/shenikar/geofence_alert_service/internal/models"
	"github.com/shenikar/geofence_alert_service/internal/repository"
	mongorepo "github.com/shenikar/geofence_alert_service/internal/repository/mongodb"
	"github.com/shenikar/geofence_alert_service/internal/service"
	"github.com/shenikar/geofence_alert_service/internal/webhook"
	"github.com/shenikar/geofence_alert_service/pkg/logger"
	"github.com/shenikar/geofence_alert_service/pkg/mongodb"
	natsclient "github.com/shenikar/geofence_alert_service/pkg/nats"
	"github.com/shenikar/geofence_alert_service/pkg/postgres"
	redisclient "github.com/shenikar/geofence_alert_service/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/geofence_alert_service/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// stores - репозитории выбранного хранилища
type stores struct {
	regions  service.RegionRepository
	alerts   service.AlertRepository
	entities service.EntityRepository
	close    func()
}

// @title Geofence Alert Service API
// @version 1.0
// @description Geofence evaluation and alert ledger for tracked entities.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	if err := postgres.RunMigrations("file://migrations", cfg.DatabaseURL); err != nil {
		return err
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func openPostgres(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*stores, error) {
	if err := runMigrations(cfg, log); err != nil {
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	log.Info("Successfully connected to PostgreSQL")

	return &stores{
		regions:  repository.NewRegionRepository(dbpool),
		alerts:   repository.NewAlertRepository(dbpool),
		entities: repository.NewEntityRepository(dbpool),
		close:    dbpool.Close,
	}, nil
}

func openMongo(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*stores, error) {
	client, err := mongodb.NewMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := mongorepo.EnsureIndexes(ctx, client.Database); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to create MongoDB indexes: %w", err)
	}
	log.Info("Successfully connected to MongoDB")

	return &stores{
		regions:  mongorepo.NewRegionRepository(client.Database),
		alerts:   mongorepo.NewAlertRepository(client),
		entities: mongorepo.NewEntityRepository(client.Database),
		close: func() {
			if err := client.Close(); err != nil {
				log.WithError(err).Warn("Failed to disconnect from MongoDB")
			}
		},
	}, nil
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Authorization", "Content-Type", "X-API-Key"},
		MaxAge:       12 * time.Hour,
	}
	if len(cfg.CORSOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	return corsCfg
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Подключение к хранилищу
	var st *stores
	switch cfg.StoreDriver {
	case config.StoreDriverMongo:
		st, err = openMongo(ctx, cfg, log)
	default:
		st, err = openPostgres(ctx, cfg, log)
	}
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreDriver, err)
	}
	defer st.close()

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Получатели уведомлений о тревогах
	hub := broadcast.NewHub(log)
	go hub.Run(ctx)
	notifier := service.NewFanout(log, hub)

	var webhookWorker *webhook.WebhookWorker
	if cfg.WebhookURL != "" {
		notifier.Add(webhook.NewRedisWebhookPublisher(redisClient))
		webhookWorker = webhook.NewWebhookWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)
	} else {
		log.Info("WEBHOOK_URL is not set, webhook delivery disabled")
	}

	if cfg.NATSURL != "" {
		nc, err := natsclient.NewConnection(cfg.NATSURL, log)
		if err != nil {
			log.Fatalf("Failed to connect to NATS: %v", err)
		}
		defer nc.Drain()
		notifier.Add(broadcast.NewNATSNotifier(nc, cfg.NATSSubjectPrefix))
		log.Info("Successfully connected to NATS")
	}

	// Инициализация кеша и блокировок
	regionCache := repository.NewRegionCache(redisClient, cfg.RegionCacheTTL)
	entityLock := repository.NewEntityLock(redisClient, cfg.LockTTL, log)

	// Инициализация сервисов
	ids := models.NewAlertIDGenerator(nil)
	engine := geofence.NewEngine(log, ids, cfg.GeofenceConcurrency, cfg.GeofenceRegionTimeout)

	regionService := service.NewRegionService(st.regions, regionCache, log)
	alertService := service.NewAlertService(st.alerts, st.regions, st.entities, notifier, ids, log, cfg)
	trackingService := service.NewTrackingService(engine, regionService, st.alerts, st.entities, entityLock, notifier, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(regionService, alertService, trackingService, hub, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(cors.New(corsConfig(cfg)))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s (store: %s)", cfg.HTTPPort, cfg.StoreDriver)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// останавливаем фоновые воркеры до закрытия соединений
	cancel()
	if webhookWorker != nil {
		select {
		case <-webhookWorker.Done():
		case <-shutdownCtx.Done():
			log.Warn("Webhook worker did not stop in time")
		}
	}

	log.Info("Server gracefully stopped")
}
