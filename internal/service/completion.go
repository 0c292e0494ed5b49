package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"go_flashcard_keep/internal/config"
	"go_flashcard_keep/internal/middleware"
	"go_flashcard_keep/internal/model"
)

// MessageRole は補完APIに渡すメッセージの役割
type MessageRole string

const (
	RoleSystem MessageRole = "system"
	RoleUser   MessageRole = "user"
)

type CompletionMessage struct {
	Role    MessageRole
	Content string
}

// SchemaType は JSON Schema の type
type SchemaType string

const (
	SchemaObject SchemaType = "object"
	SchemaArray  SchemaType = "array"
	SchemaString SchemaType = "string"
)

// JSONSchema は補完APIに渡す出力形式の制約 (必要な部分だけ)
type JSONSchema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*JSONSchema
	Required    []string
	Items       *JSONSchema
	MinItems    int
	MaxItems    int
	MaxLength   int
}

// CompletionRequest は1回分の補完リクエスト
type CompletionRequest struct {
	Model       string
	Messages    []CompletionMessage
	Schema      *JSONSchema
	Temperature float32
}

// Completer はプロンプトとスキーマを受け取り、JSON文字列を返すテキスト補完サービス。
// タイムアウトは ctx で制御する
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// UpstreamError は補完APIが返したエラー (HTTPステータス相当付き)
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion upstream error (status %d): %s", e.StatusCode, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return model.ErrUpstream
}

// --- LogCompleter ---

// LogCompleter は APIキー未設定の開発環境用。リクエストをログに出し、入力の冒頭から1枚だけ返す
type LogCompleter struct{}

func (c *LogCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	logger := middleware.GetLogger(ctx)

	var userText string
	for _, m := range req.Messages {
		if m.Role == RoleUser {
			userText = m.Content
		}
	}
	logger.Info("--- Completion request (LogCompleter) ---",
		"model", req.Model,
		"messages", len(req.Messages),
		"user_text_length", utf8.RuneCountInString(userText),
	)

	back := strings.TrimSpace(userText)
	if utf8.RuneCountInString(back) > model.FlashcardBackMaxLength {
		back = string([]rune(back)[:model.FlashcardBackMaxLength])
	}
	if back == "" {
		back = "(empty)"
	}
	payload := map[string]interface{}{
		"flashcards": []map[string]string{
			{"front": "サンプル問題 (LogCompleter)", "back": back},
		},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// --- NewCompleter ファクトリ関数 ---

// NewCompleter は設定に応じて補完クライアントを作成します。
// 返す close 関数はサーバー終了時に呼ぶこと
func NewCompleter(ctx context.Context, cfg config.AIConfig) (Completer, func(), error) {
	logger := slog.Default()
	if cfg.APIKey == "" {
		logger.Warn("AI API key is not set, using LogCompleter")
		return &LogCompleter{}, func() {}, nil
	}

	logger.Info("Initializing Gemini completer...", "model", cfg.Model)
	gc, err := NewGeminiCompleter(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return gc, func() {
		if err := gc.Close(); err != nil {
			logger.Error("Error closing Gemini client", "error", err)
		} else {
			logger.Info("Gemini client closed.")
		}
	}, nil
}
