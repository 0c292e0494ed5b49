// internal/model/flashcard.go
package model

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	FlashcardFrontMaxLength = 200
	FlashcardBackMaxLength  = 500
	FlashcardsPerRequestMax = 50
)

// FlashcardSource はカードの作成経路
type FlashcardSource string

const (
	SourceAIFull   FlashcardSource = "ai_full"
	SourceAIEdited FlashcardSource = "ai_edited"
	SourceManual   FlashcardSource = "manual"
)

// SpaceRepetition は直近の復習結果
type SpaceRepetition string

const (
	RepetitionOK         SpaceRepetition = "OK"
	RepetitionNOK        SpaceRepetition = "NOK"
	RepetitionNotChecked SpaceRepetition = "not_checked"
)

// Flashcard は表 (front) と裏 (back) の問答ペア
type Flashcard struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	DeckID          *uuid.UUID      `gorm:"type:uuid;index" json:"deck_id"` // nil = 未割り当て
	Front           string          `gorm:"type:varchar(200);not null" json:"front"`
	Back            string          `gorm:"type:varchar(500);not null" json:"back"`
	Source          FlashcardSource `gorm:"type:varchar(20);not null" json:"source"`
	SpaceRepetition SpaceRepetition `gorm:"type:varchar(20);not null;index" json:"space_repetition"`
	LastRepetition  *time.Time      `json:"last_repetition"`
	GenerationID    *uuid.UUID      `gorm:"type:uuid;index" json:"generation_id"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `gorm:"index" json:"updated_at"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}

// PromoteSourceOnEdit は内容編集後の source を返します。
// ai_full だけが ai_edited に変わり、それ以外はそのまま
func PromoteSourceOnEdit(current FlashcardSource) FlashcardSource {
	if current == SourceAIFull {
		return SourceAIEdited
	}
	return current
}

// FlashcardSort はカード一覧の並び順
type FlashcardSort string

const (
	FlashcardSortCreatedAsc  FlashcardSort = "created_asc"
	FlashcardSortCreatedDesc FlashcardSort = "created_desc"
	FlashcardSortUpdatedAsc  FlashcardSort = "updated_asc"
	FlashcardSortUpdatedDesc FlashcardSort = "updated_desc"
	FlashcardSortFrontAsc    FlashcardSort = "front_asc"
	FlashcardSortFrontDesc   FlashcardSort = "front_desc"

	DefaultFlashcardSort = FlashcardSortCreatedDesc
)

func (s FlashcardSort) OrderClause() string {
	switch s {
	case FlashcardSortCreatedAsc:
		return "created_at ASC"
	case FlashcardSortUpdatedAsc:
		return "updated_at ASC"
	case FlashcardSortUpdatedDesc:
		return "updated_at DESC"
	case FlashcardSortFrontAsc:
		return "front ASC"
	case FlashcardSortFrontDesc:
		return "front DESC"
	default:
		return "created_at DESC"
	}
}

// FlashcardFilter は一覧取得の絞り込み条件
type FlashcardFilter struct {
	DeckID          *uuid.UUID
	Unassigned      bool
	Source          *FlashcardSource
	SpaceRepetition *SpaceRepetition
	Sort            FlashcardSort
}

// FlashcardListQuery は GET /api/flashcards のクエリ文字列 (バリデーション用)
type FlashcardListQuery struct {
	DeckID          string `json:"deck_id" validate:"omitempty,uuid"`
	Unassigned      string `json:"unassigned" validate:"omitempty,oneof=true false"`
	Source          string `json:"source" validate:"omitempty,oneof=ai_full ai_edited manual"`
	SpaceRepetition string `json:"space_repetition" validate:"omitempty,oneof=OK NOK not_checked"`
	Sort            string `json:"sort" validate:"omitempty,oneof=created_asc created_desc updated_asc updated_desc front_asc front_desc"`
}

// FlashcardInput は作成時の1枚分
type FlashcardInput struct {
	Front string `json:"front" validate:"required,max=200"`
	Back  string `json:"back" validate:"required,max=500"`
}

// フラッシュカード一括作成リクエストDTO
type CreateFlashcardsRequest struct {
	DeckID       *uuid.UUID       `json:"deck_id"`
	Source       FlashcardSource  `json:"source" validate:"required,oneof=ai_full ai_edited manual"`
	GenerationID *uuid.UUID       `json:"generation_id"`
	Flashcards   []FlashcardInput `json:"flashcards" validate:"required,min=1,max=50,dive"`
}

// OptionalUUID は「未指定」「null」「値あり」を区別するための型
type OptionalUUID struct {
	Set   bool
	Value *uuid.UUID
}

func (o *OptionalUUID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var id uuid.UUID
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	o.Value = &id
	return nil
}

// フラッシュカード更新（部分）リクエストDTO
type UpdateFlashcardRequest struct {
	Front  *string      `json:"front,omitempty" validate:"omitempty,min=1,max=200"`
	Back   *string      `json:"back,omitempty" validate:"omitempty,min=1,max=500"`
	DeckID OptionalUUID `json:"deck_id"`
}

// IsEmpty は更新対象が1つも指定されていないかを返します
func (r *UpdateFlashcardRequest) IsEmpty() bool {
	return r.Front == nil && r.Back == nil && !r.DeckID.Set
}
