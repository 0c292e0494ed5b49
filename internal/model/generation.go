// internal/model/generation.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	GenerationInputMinLength = 1000
	GenerationInputMaxLength = 10000

	// 履歴APIの取得範囲
	GenerationHistoryDays  = 30
	GenerationHistoryLimit = 100
)

type GenerationStatus string

const (
	GenerationStatusPending GenerationStatus = "pending"
	GenerationStatusSuccess GenerationStatus = "success"
	GenerationStatusError   GenerationStatus = "error"
)

// GenerationSession はAI生成リクエスト1回分の記録
type GenerationSession struct {
	SessionID       uuid.UUID        `gorm:"type:uuid;primaryKey" json:"session_id"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index:idx_generation_user_created,priority:1;index:idx_generation_user_hash,priority:1" json:"user_id"`
	InputTextHash   string           `gorm:"type:varchar(64);not null;index:idx_generation_user_hash,priority:2" json:"input_text_hash"`
	InputTextLength int              `gorm:"not null" json:"input_text_length"`
	Model           string           `gorm:"type:varchar(100);not null" json:"model"`
	Status          GenerationStatus `gorm:"type:varchar(20);not null" json:"status"`
	GeneratedTotal  int              `gorm:"not null" json:"generated_total"`
	AcceptedTotal   int              `gorm:"not null" json:"accepted_total"`
	CreatedAt       time.Time        `gorm:"index:idx_generation_user_created,priority:2" json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`

	// status が error のときだけ GetGeneration で埋める
	Error *GenerationError `gorm:"-" json:"error,omitempty"`
}

func (GenerationSession) TableName() string {
	return "generation_sessions"
}

// GenerationError は失敗したセッションの診断情報 (追記のみ)
type GenerationError struct {
	SessionID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"session_id"` // セッションと1:1
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	ErrorCode ErrorCode      `gorm:"type:varchar(50);not null" json:"error_code"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	Details   datatypes.JSON `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func (GenerationError) TableName() string {
	return "generation_errors"
}

// GenerationErrorDetails は GenerationError.Details に保存する内容
type GenerationErrorDetails struct {
	Model           string `json:"model"`
	InputTextLength int    `json:"input_text_length"`
	UpstreamStatus  int    `json:"upstream_status,omitempty"`
	Cause           string `json:"cause,omitempty"`
}

// FlashcardProposal はAIが提案したカード (まだ保存されていない)
type FlashcardProposal struct {
	Front  string          `json:"front"`
	Back   string          `json:"back"`
	Source FlashcardSource `json:"source"`
}

// GenerationResult は POST /api/generations のレスポンス
type GenerationResult struct {
	SessionID           uuid.UUID           `json:"session_id"`
	Status              GenerationStatus    `json:"status"`
	GeneratedTotal      int                 `json:"generated_total"`
	FlashcardsProposals []FlashcardProposal `json:"flashcards_proposals"`
}

// 生成リクエストDTO
type GenerateRequest struct {
	InputText string `json:"input_text" validate:"required,min=1000,max=10000"`
}

// 重複チェックリクエストDTO
type DuplicateCheckRequest struct {
	InputText string `json:"input_text" validate:"required,max=10000"`
}

// DuplicateCheckResult は同じ入力テキストの既存セッション有無
type DuplicateCheckResult struct {
	Duplicate bool       `json:"duplicate"`
	SessionID *uuid.UUID `json:"session_id,omitempty"`
}

// 採用数更新リクエストDTO
type UpdateAcceptedTotalRequest struct {
	AcceptedTotal *int `json:"accepted_total" validate:"required,min=0"`
}
