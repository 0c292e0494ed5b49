// internal/handlers/main_test.go
package handlers_test

import (
	"fmt"
	"testing"

	"go_flashcard_keep/internal/config"
	"go_flashcard_keep/internal/handlers"
	"go_flashcard_keep/internal/repository"
	"go_flashcard_keep/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testApp は実際のサービスとリポジトリを組み立てたテスト用アプリケーション
type testApp struct {
	router    *chi.Mux
	db        *gorm.DB
	completer *stubCompleter
	cfg       *config.Config
}

// setupSQLiteApp はテストごとに独立したインメモリ SQLite でアプリケーション全体を組み立てます
func setupSQLiteApp(t *testing.T) *testApp {
	t.Helper()
	db, err := repository.NewDB(config.DatabaseConfig{
		Driver:      "sqlite",
		URL:         fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString()),
		AutoMigrate: true,
	}, discardLogger)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return buildApp(t, db)
}

func buildApp(t *testing.T, db *gorm.DB) *testApp {
	t.Helper()
	cfg := &config.Config{}
	cfg.Generation.Timezone = "UTC"
	cfg.ApplyDefaults()

	completer := &stubCompleter{response: flashcardsJSON(3)}

	deckRepo := repository.NewGormDeckRepository()
	cardRepo := repository.NewGormFlashcardRepository()
	genRepo := repository.NewGormGenerationRepository()

	h := handlers.Handlers{
		Deck:       handlers.NewDeckHandler(service.NewDeckService(db, deckRepo), discardLogger),
		Flashcard:  handlers.NewFlashcardHandler(service.NewFlashcardService(db, cardRepo, deckRepo, genRepo), discardLogger),
		Generation: handlers.NewGenerationHandler(service.NewGenerationService(db, genRepo, completer, cfg), discardLogger),
		Learn:      handlers.NewLearnHandler(service.NewLearnService(db, deckRepo, cardRepo, cfg), cfg.Learn.DefaultLimit, discardLogger),
	}
	return &testApp{
		router:    newTestRouter(h),
		db:        db,
		completer: completer,
		cfg:       cfg,
	}
}
