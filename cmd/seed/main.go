// Package main наполняет БД сгенерированными пользователями и заказами.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mmeshcher/users-orders-api/internal/config"
	"github.com/mmeshcher/users-orders-api/internal/gen"
	"github.com/mmeshcher/users-orders-api/internal/logger"
	"github.com/mmeshcher/users-orders-api/internal/repository"
)

func main() {
	usersCount := flag.Int("users", 10, "number of users to generate")
	ordersPerUser := flag.Int("orders", 3, "number of orders per user")

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
	defer pg.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	users := repository.NewUserDAO(pg.Pool())
	orders := repository.NewOrderDAO(pg.Pool())

	var createdUsers, createdOrders int
	for i := 0; i < *usersCount; i++ {
		u, err := users.CreateUser(ctx, gen.FakeUser())
		if err != nil {
			sugar.Errorw("seed user error", "error", err)
			break
		}
		createdUsers++

		for j := 0; j < *ordersPerUser; j++ {
			if _, err := orders.CreateOrder(ctx, u.ID, gen.FakeOrder(u.ID)); err != nil {
				sugar.Errorw("seed order error", "userID", u.ID, "error", err)
				break
			}
			createdOrders++
		}
	}

	sugar.Infow("seeding finished", "users", createdUsers, "orders", createdOrders)
}
