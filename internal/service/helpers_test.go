package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"go_flashcard_keep/internal/config"
	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --- テストヘルパー関数 ---

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// setupTestDB はテストごとに独立したインメモリ SQLite を作成します
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repository.NewDB(config.DatabaseConfig{
		Driver:      "sqlite",
		URL:         fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString()),
		AutoMigrate: true,
	}, testLogger)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Generation.Timezone = "UTC"
	cfg.ApplyDefaults()
	return cfg
}

func seedDeck(t *testing.T, db *gorm.DB, userID uuid.UUID, name string) *model.Deck {
	t.Helper()
	deck := &model.Deck{ID: uuid.New(), UserID: userID, Name: name}
	require.NoError(t, db.Create(deck).Error)
	return deck
}

func seedCard(t *testing.T, db *gorm.DB, userID uuid.UUID, deckID *uuid.UUID, status model.SpaceRepetition, updatedAt time.Time) *model.Flashcard {
	t.Helper()
	card := &model.Flashcard{
		ID:              uuid.New(),
		UserID:          userID,
		DeckID:          deckID,
		Front:           "front " + uuid.NewString()[:8],
		Back:            "back",
		Source:          model.SourceManual,
		SpaceRepetition: status,
		CreatedAt:       updatedAt,
		UpdatedAt:       updatedAt,
	}
	require.NoError(t, db.Create(card).Error)
	return card
}

func seedSession(t *testing.T, db *gorm.DB, userID uuid.UUID, generatedTotal int) *model.GenerationSession {
	t.Helper()
	session := &model.GenerationSession{
		SessionID:       uuid.New(),
		UserID:          userID,
		InputTextHash:   HashInputText(uuid.NewString()),
		InputTextLength: 1200,
		Model:           "test-model",
		Status:          model.GenerationStatusSuccess,
		GeneratedTotal:  generatedTotal,
	}
	require.NoError(t, db.Create(session).Error)
	return session
}

func loadCard(t *testing.T, db *gorm.DB, id uuid.UUID) *model.Flashcard {
	t.Helper()
	var card model.Flashcard
	require.NoError(t, db.First(&card, "id = ?", id).Error)
	return &card
}

// assertAppError はエラーが指定コードの AppError であることを確認します
func assertAppError(t *testing.T, err error, code model.ErrorCode) *model.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Detail.Code)
	return appErr
}

// fakeCompleter は Completer のテスト用実装
type fakeCompleter struct {
	response string
	err      error
	block    bool // ctx が終わるまで応答しない
	calls    int
	lastReq  CompletionRequest
}

func (f *fakeCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	f.calls++
	f.lastReq = req
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.response, f.err
}
