// Package main запускает HTTP-сервер API пользователей и заказов.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/users-orders-api/internal/config"
	"github.com/mmeshcher/users-orders-api/internal/events"
	"github.com/mmeshcher/users-orders-api/internal/handler"
	"github.com/mmeshcher/users-orders-api/internal/logger"
	"github.com/mmeshcher/users-orders-api/internal/repository"
	"github.com/mmeshcher/users-orders-api/internal/service"
)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger initialization error: %v", err)
	}
	defer zl.Sync()

	sugar := zl.Sugar()

	pg, err := repository.NewPostgres(cfg.DatabaseURI)
	if err != nil {
		sugar.Fatalw("database initialization error", "error", err.Error())
	}

	users := service.NewUserService(repository.NewUserDAO(pg.Pool()))
	orders := service.NewOrderService(repository.NewOrderDAO(pg.Pool()))

	var publisher events.Publisher = events.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, zl)
		sugar.Infow("publishing change events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	h := handler.NewHandler(users, orders, publisher, zl)

	server := &http.Server{
		Addr:              cfg.RunAddress,
		Handler:           h.SetupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("starting users-orders server", "addr", cfg.RunAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown по сигналу или ошибке сервера
	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	err = g.Wait()
	closeResources(zl, publisher, pg)
	if err != nil {
		zl.Error("application terminated with error", zap.Error(err))
		_ = zl.Sync()
		os.Exit(1)
	}
}

// closeResources закрывает ресурсы по порядку. Публикатор идёт раньше пула,
// чтобы дослать буферизованные события.
func closeResources(logger *zap.Logger, resources ...io.Closer) {
	for _, r := range resources {
		if err := r.Close(); err != nil {
			logger.Warn("close resource error", zap.Error(err), zap.String("resource", fmt.Sprintf("%T", r)))
		}
	}
}
