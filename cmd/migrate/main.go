package main

import (
	"github.com/sirupsen/logrus"

	"github.com/ysfrando/SQLOtter/internal/config"
	"github.com/ysfrando/SQLOtter/internal/repositories"
)

func main() {
	config.LoadEnv()

	db, err := repositories.New(config.DatabaseURL(), repositories.DefaultDBConfig())
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Init(); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("migration completed")
}
