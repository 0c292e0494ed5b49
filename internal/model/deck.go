// internal/model/deck.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const DeckNameMaxLength = 30

// Deck はユーザーが所有するフラッシュカードの束
type Deck struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_decks_user_name,priority:1" json:"user_id"`
	Name      string    `gorm:"type:varchar(30);not null;uniqueIndex:uq_decks_user_name,priority:2" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 関連 (削除はカスケード)
	Flashcards []Flashcard `gorm:"foreignKey:DeckID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Deck) TableName() string {
	return "decks"
}

// DeckWithCount は一覧表示用 (フラッシュカード数付き)
type DeckWithCount struct {
	Deck
	FlashcardCount int64 `json:"flashcard_count"`
}

// DeckSort はデッキ一覧の並び順
type DeckSort string

const (
	DeckSortNameAsc     DeckSort = "name_asc"
	DeckSortNameDesc    DeckSort = "name_desc"
	DeckSortCreatedAsc  DeckSort = "created_asc"
	DeckSortCreatedDesc DeckSort = "created_desc"
	DeckSortUpdatedAsc  DeckSort = "updated_asc"
	DeckSortUpdatedDesc DeckSort = "updated_desc"

	DefaultDeckSort = DeckSortUpdatedDesc
)

// OrderClause は並び順に対応する ORDER BY 句を返します。不明な値はデフォルト扱い
func (s DeckSort) OrderClause() string {
	switch s {
	case DeckSortNameAsc:
		return "name ASC"
	case DeckSortNameDesc:
		return "name DESC"
	case DeckSortCreatedAsc:
		return "created_at ASC"
	case DeckSortCreatedDesc:
		return "created_at DESC"
	case DeckSortUpdatedAsc:
		return "updated_at ASC"
	default:
		return "updated_at DESC"
	}
}

// デッキ作成リクエストDTO
type CreateDeckRequest struct {
	Name string `json:"name" validate:"required,notblank,trimmed_max=30"`
}

// デッキ名変更リクエストDTO
type RenameDeckRequest struct {
	Name string `json:"name" validate:"required,notblank,trimmed_max=30"`
}

// CreateDeckResponse はデッキ作成時のレスポンス
type CreateDeckResponse struct {
	ID uuid.UUID `json:"id"`
}

// DeckListQuery は GET /api/decks のクエリ
type DeckListQuery struct {
	Sort DeckSort `json:"sort" validate:"omitempty,oneof=name_asc name_desc created_asc created_desc updated_asc updated_desc"`
}
