// internal/model/learn.go
package model

import "github.com/google/uuid"

const ReviewBatchMax = 100

// DueMeta は学習バッチのメタ情報
type DueMeta struct {
	TotalDue  int   `json:"total_due"`
	Returned  int   `json:"returned"`
	DeckTotal int64 `json:"deck_total"`
}

// DueFlashcards は学習対象カードとメタ情報
type DueFlashcards struct {
	Flashcards []*Flashcard
	Meta       DueMeta
}

// ReviewItem は1枚分の回答結果
type ReviewItem struct {
	FlashcardID uuid.UUID       `json:"flashcard_id" validate:"required"`
	Response    SpaceRepetition `json:"response" validate:"required,space_repetition_response"`
}

// 復習結果送信リクエストDTO
type ReviewRequest struct {
	Review []ReviewItem `json:"review" validate:"required,min=1,max=100,unique=FlashcardID,dive"`
}

// ReviewResult は更新できた件数
type ReviewResult struct {
	Updated int `json:"updated"`
}
