package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/service-pets/internal/application"
	"github.com/Kilat-Pet-Delivery/service-pets/internal/config"
	"github.com/Kilat-Pet-Delivery/service-pets/internal/platform/kafka"
	"github.com/Kilat-Pet-Delivery/service-pets/internal/platform/logger"
	"github.com/Kilat-Pet-Delivery/service-pets/internal/server"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

// eventProducer is what serve needs from a Kafka producer.
type eventProducer interface {
	application.EventPublisher
	Close() error
}

func newEventProducer(cfg config.KafkaConfig, log *zap.Logger) eventProducer {
	if !cfg.Enabled() {
		log.Info("KAFKA_BROKERS not set, pet events are not published")
		return kafka.NopProducer{}
	}
	log.Info("publishing pet events", zap.Strings("brokers", cfg.Brokers), zap.String("topic", cfg.Topic))
	return kafka.NewProducer(cfg.Brokers, log)
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewNamed(cfg.AppEnv, server.ServiceName)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-pets",
		zap.String("port", cfg.Port),
		zap.String("store", cfg.StoreDriver),
	)

	st, err := openStore(cfg, log)
	if err != nil {
		log.Error("failed to open pet store", zap.Error(err))
		return err
	}
	defer st.close()

	producer := newEventProducer(cfg.KafkaConfig, log)
	defer func() { _ = producer.Close() }()

	petService := application.NewPetService(st.repo, producer, cfg.KafkaConfig.Topic, log)

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(server.RouterConfig{
		Logger:        log,
		PetService:    petService,
		AllowedOrigin: cfg.AllowedOrigin,
		Ready:         st.ready,
	})

	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		if err != nil {
			log.Error("HTTP server error", zap.Error(err))
			return err
		}
		return nil
	case <-quit:
	}

	log.Info("shutting down service-pets...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-pets stopped")
	return nil
}
