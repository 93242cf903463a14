package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/taximeter/internal/pkg/config"
	"github.com/piresc/taximeter/internal/pkg/database"
	"github.com/piresc/taximeter/internal/pkg/health"
	"github.com/piresc/taximeter/internal/pkg/logger"
	"github.com/piresc/taximeter/internal/pkg/middleware"
	"github.com/piresc/taximeter/internal/pkg/models"
	"github.com/piresc/taximeter/internal/pkg/nats"
	nrpkg "github.com/piresc/taximeter/internal/pkg/newrelic"
	"github.com/piresc/taximeter/internal/pkg/server"
	wspkg "github.com/piresc/taximeter/internal/pkg/websocket"
	"github.com/piresc/taximeter/services/ride"
	"github.com/piresc/taximeter/services/ride/gateway"
	"github.com/piresc/taximeter/services/ride/handler"
	"github.com/piresc/taximeter/services/ride/repository"
	"github.com/piresc/taximeter/services/ride/usecase"
)

func main() {
	appName := "taximeter"
	configPath := "config/taximeter.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("location_source", configs.Location.Source),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdown := server.NewShutdownManager(zapLogger)
	healthService := health.NewHealthService()

	// NATS is only needed when it feeds locations or receives ride updates
	var natsClient *nats.Client
	if configs.Location.Source == models.LocationSourceNATS || configs.Feed.NATSEnabled {
		natsClient, err = nats.NewClient(configs.NATS.URL)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
		}
		shutdown.Register("nats", func(context.Context) error {
			natsClient.Close()
			return nil
		})
		healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
		logger.Info("NATS client initialized", logger.String("url", configs.NATS.URL))
	}

	var redisClient *database.RedisClient
	if configs.Feed.RedisEnabled {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		shutdown.Register("redis", func(context.Context) error {
			return redisClient.Close()
		})
		healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	}

	// Initialize repositories
	supplementRepo, err := repository.LoadSupplementRepository(configs.Supplements.CatalogPath)
	if err != nil {
		zapLogger.Fatal("Failed to load supplement catalog", logger.Err(err))
	}
	rideRepo := repository.NewRideRepository()

	// Initialize gateways
	priceGW := gateway.NewPriceGW(configs.Pricing)

	locationSource, err := newLocationSource(configs, natsClient)
	if err != nil {
		zapLogger.Fatal("Failed to initialize location source", logger.Err(err))
	}

	// Initialize usecase and background ride updates
	rideUC := usecase.NewRideUC(configs, rideRepo, supplementRepo, priceGW)
	coordinator := usecase.NewCoordinator(rideUC, locationSource, configs.Ride.RefreshInterval)
	healthService.AddDetail("ride_updates_running", func() interface{} { return coordinator.IsRunning() })

	var feeds []ride.RideFeedGW
	if configs.Feed.NATSEnabled {
		feeds = append(feeds, gateway.NewNATSFeedGW(natsClient, configs.Feed.NATSSubject))
	}
	if configs.Feed.RedisEnabled {
		feeds = append(feeds, gateway.NewRedisFeedGW(redisClient, configs.Feed.RedisKey, configs.Feed.RedisTTL))
	}
	feedPublisher := usecase.NewFeedPublisher(rideUC, feeds...)
	feedPublisher.Start(ctx)
	shutdown.Register("ride feeds", func(context.Context) error {
		feedPublisher.Stop()
		return nil
	})
	shutdown.Register("ride updates", func(context.Context) error {
		coordinator.StopRideUpdates()
		return nil
	})

	// Initialize handlers
	wsManager := wspkg.NewManager()
	healthService.AddDetail("websocket_clients", func() interface{} { return wsManager.ClientCount() })
	rideHandler := handler.NewHandler(ctx, rideUC, coordinator, wsManager)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Debug = configs.App.Debug
	if configs.Server.ReadTimeout > 0 {
		e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	}
	if configs.Server.WriteTimeout > 0 {
		e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second
	}

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)
	rideHandler.RegisterRoutes(e)

	addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
	if err := server.NewGracefulServer(e, zapLogger, addr).Start(ctx); err != nil {
		zapLogger.Error("HTTP server stopped with error", logger.Err(err))
	}

	// Close open ride streams before the components they read from
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer shutdownCancel()
	if err := shutdown.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Shutdown completed with errors", logger.Err(err))
	}

	if nrApp != nil {
		zapLogger.Info("Shutting down New Relic...")
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}

// newLocationSource builds the location source selected by configuration
func newLocationSource(configs *models.Config, natsClient *nats.Client) (ride.LocationSource, error) {
	switch configs.Location.Source {
	case models.LocationSourceSimulated, "":
		return gateway.NewSimulatedSource(configs.Location), nil
	case models.LocationSourceNATS:
		return gateway.NewNATSLocationSource(natsClient, configs.Location.Subject, configs.Location.BufferSize), nil
	case models.LocationSourceNSQ:
		return gateway.NewNSQLocationSource(configs.NSQ, configs.Location.Topic, configs.Location.Channel), nil
	default:
		return nil, fmt.Errorf("unknown location source %q", configs.Location.Source)
	}
}
