package repository

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"go_flashcard_keep/internal/config"
	"go_flashcard_keep/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	slogGorm "github.com/orandin/slog-gorm" // slogGormはエイリアス
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB は設定に従って GORM の接続を作成します
func NewDB(dbCfg config.DatabaseConfig, appLogger *slog.Logger) (*gorm.DB, error) {
	if appLogger == nil {
		appLogger = slog.Default()
	}

	// === slog を利用する GORM Logger の設定 ===
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}
	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	)
	finalGormLogger := slogGormLogger.LogMode(gormLogLevel)

	var dialector gorm.Dialector
	switch dbCfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(dbCfg.URL)
	case "postgres", "":
		dialector = postgres.Open(dbCfg.URL)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", dbCfg.Driver)
	}

	// === GORM 接続設定 ===
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: finalGormLogger,
		// タイムスタンプは UTC で保存する (SQLite は文字列比較になるため)
		NowFunc: func() time.Time { return time.Now().UTC() },
		// ドライバ固有の一意制約違反を gorm.ErrDuplicatedKey に変換する
		TranslateError: true,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	// Pingで接続確認
	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	// コネクションプールの設定
	if dbCfg.Driver == "sqlite" {
		// SQLite は書き込みが1本しか通らないので単一コネクションに絞る
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	appLogger.Info("Database connection established with GORM", slog.String("driver", dialector.Name()))

	if dbCfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			appLogger.Error("Failed to migrate database", slog.Any("error", err))
			return nil, err
		}
		appLogger.Info("Database schema migrated")
	}

	return db, nil
}

// Migrate はテーブルを作成・更新します
func Migrate(db *gorm.DB) error {
	// 参照される側から作成する
	return db.AutoMigrate(
		&model.GenerationSession{},
		&model.GenerationError{},
		&model.Deck{},
		&model.Flashcard{},
	)
}

// isUniqueViolation は一意制約違反かどうかを判定します
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// TranslateError が効かないドライバ向け
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
