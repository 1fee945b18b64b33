package main

import (
	"context"
	"time"

	"chatter-api/config"
	"chatter-api/internal/events"
	"chatter-api/internal/handler"
	"chatter-api/internal/metrics"
	redisclient "chatter-api/internal/redis"
	"chatter-api/internal/repository"
	"chatter-api/internal/server"
	"chatter-api/internal/services"
	"chatter-api/pkg/database"
	"chatter-api/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	l := logger.New(cfg.LogMode)
	logger.SetGlobalLogger(l)
	defer l.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Mongo.ConnectTimeoutSec+5)*time.Second)
	store, err := database.Connect(ctx, cfg.Mongo)
	if err != nil {
		cancel()
		l.Logger.Fatal("failed to connect to mongo", zap.Error(err), zap.String("database", cfg.Mongo.Database))
	}
	if err := database.EnsureIndexes(ctx, store.DB); err != nil {
		cancel()
		l.Logger.Fatal("failed to create indexes", zap.Error(err))
	}
	cancel()
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		if err := store.Close(closeCtx); err != nil {
			l.Errorf("Error closing mongo client: %s", err)
		}
	}()

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Redis.Enabled {
		rdb := redisclient.NewClient(cfg.Redis)
		defer rdb.Close()
		broker := redisclient.NewBroker(rdb, cfg.Redis.ChannelPrefix)

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := broker.Ping(pingCtx); err != nil {
			l.Warnf("Redis at %s:%s unreachable, events will be dropped until it recovers: %s", cfg.Redis.Host, cfg.Redis.Port, err)
		}
		pingCancel()

		publisher = events.NewBrokerPublisher(broker)
	}

	userRepo := repository.NewUserRepository(store.DB)
	groupRepo := repository.NewGroupRepository(store.DB)
	userGroupRepo := repository.NewUserGroupRepository(store.DB)
	messageRepo := repository.NewMessageRepository(store.DB)

	userService := services.NewUserService(userRepo, userGroupRepo, publisher, l)
	groupService := services.NewGroupService(groupRepo, userGroupRepo, userRepo, publisher, l)
	messageService := services.NewMessageService(messageRepo, publisher, l)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		User:    handler.NewUserHandler(userService),
		Group:   handler.NewGroupHandler(groupService),
		Message: handler.NewMessageHandler(messageService),
	}, store, &server.Observability{
		Collector: metrics.NewCollector(registry),
		Gatherer:  registry,
	})

	if err := srv.Start(); err != nil {
		l.Errorf("Server exited with error: %s", err)
	}
}
