// cmd/migrate/main.go
package main

import (
	"log"
	"log/slog"
	"os"

	"go_flashcard_keep/internal/config"
	"go_flashcard_keep/internal/repository"
)

// サーバーを起動せずにスキーマだけを作成・更新する
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../configs"
	}
	if err := config.LoadConfig(configPath); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dbCfg := config.Cfg.Database
	dbCfg.AutoMigrate = false
	db, err := repository.NewDB(dbCfg, logger)
	if err != nil {
		log.Fatalf("Failed to connect database using GORM: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying sql.DB: %v", err)
	}
	defer sqlDB.Close()

	if err := repository.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}
	logger.Info("Database schema migrated", slog.String("driver", dbCfg.Driver))
}
