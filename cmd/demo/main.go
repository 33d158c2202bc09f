// Command demo wires the three repositories against a configured database
// and walks through the safe-query patterns end to end: create a user, a
// wallet and a deposit, then query and search with hostile input. Internal
// error detail stays in the log; callers only ever see a generic failure.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ysfrando/SQLOtter/internal/config"
	"github.com/ysfrando/SQLOtter/internal/models"
	"github.com/ysfrando/SQLOtter/internal/repositories"
	"github.com/ysfrando/SQLOtter/internal/repositories/cache"
	"github.com/ysfrando/SQLOtter/internal/utils"
)

func main() {
	config.LoadEnv()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	db, err := repositories.New(config.DatabaseURL(), repositories.DefaultDBConfig())
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Init(); err != nil {
		logger.Fatalf("failed to ensure schema: %v", err)
	}

	ctx := context.Background()

	// Redis is optional; without it the repositories read straight from
	// the store.
	var cacheSvc *cache.Service
	redisClient := cache.NewClient(&cache.Config{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	})
	if err := redisClient.Ping(ctx).Err(); err == nil {
		cacheSvc = cache.NewService(redisClient, 24*time.Hour)
	} else {
		logger.WithError(err).Warn("redis unavailable, caching disabled")
	}

	userRepo := repositories.NewUserRepository(db, cacheSvc, logger.WithField("repo", "users"))
	walletRepo := repositories.NewWalletRepository(db, cacheSvc, logger.WithField("repo", "wallets"))
	txRepo := repositories.NewTransactionRepository(db, logger.WithField("repo", "transactions"))

	passwordHash, err := utils.HashPassword("S3cure!pass")
	if err != nil {
		logger.Fatalf("failed to hash password: %v", err)
	}

	user, err := userRepo.Create(ctx, "user@example.com", "crypto_user", passwordHash)
	if err != nil {
		fail(logger, "create user", err)
	}
	fmt.Printf("created user %s\n", user.ID)

	wallet, err := walletRepo.Create(ctx, user.ID, models.CurrencyBTC, "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq")
	if err != nil {
		fail(logger, "create wallet", err)
	}
	fmt.Printf("created wallet %s\n", wallet.ID)

	tx, err := txRepo.Create(ctx, user.ID, wallet.ID, models.TransactionTypeDeposit, 0.1, 0.0001, "")
	if err != nil {
		fail(logger, "create transaction", err)
	}
	fmt.Printf("created transaction %s\n", tx.ID)

	history, err := txRepo.GetUserTransactions(ctx, user.ID, 10, 0, models.TransactionTypeDeposit, "")
	if err != nil {
		fail(logger, "list transactions", err)
	}
	fmt.Printf("found %d transactions\n", len(history))

	results, err := txRepo.Search(ctx, "bc1q", 10, user.ID)
	if err != nil {
		fail(logger, "search transactions", err)
	}
	fmt.Printf("search returned %d results\n", len(results))

	// Hostile input is either rejected outright or bound as a harmless
	// parameter; it can never change query structure.
	probe := "x'; DROP TABLE users; --"
	if _, err := userRepo.Create(ctx, "probe@example.com", probe, passwordHash); err != nil {
		fmt.Println("injection probe rejected as a username")
	}
	matches, err := userRepo.Search(ctx, probe, 10)
	if err != nil {
		fail(logger, "search users", err)
	}
	fmt.Printf("injection probe matched %d users\n", len(matches))
}

// fail logs the detailed error and surfaces only a generic message.
func fail(logger *logrus.Logger, op string, err error) {
	logger.WithError(err).Errorf("%s failed", op)
	fmt.Fprintln(os.Stderr, "operation failed")
	os.Exit(1)
}
