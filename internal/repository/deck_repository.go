//go:generate mockery --name DeckRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_flashcard_keep/internal/middleware"
	"go_flashcard_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DeckRepository interface {
	Create(ctx context.Context, db *gorm.DB, deck *model.Deck) error
	FindByID(ctx context.Context, db *gorm.DB, userID, deckID uuid.UUID) (*model.Deck, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, sort model.DeckSort) ([]*model.Deck, error)
	CountFlashcards(ctx context.Context, db *gorm.DB, userID uuid.UUID, deckIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	UpdateName(ctx context.Context, db *gorm.DB, userID, deckID uuid.UUID, name string) error
	Delete(ctx context.Context, db *gorm.DB, userID, deckID uuid.UUID) error
	ResetProgress(ctx context.Context, db *gorm.DB, userID, deckID uuid.UUID) (int64, error)
}

type gormDeckRepository struct{}

func NewGormDeckRepository() DeckRepository {
	return &gormDeckRepository{}
}

func (r *gormDeckRepository) Create(ctx context.Context, db *gorm.DB, deck *model.Deck) error {
	logger := middleware.GetLogger(ctx)

	// 関連 (Flashcards) は保存しない
	result := db.WithContext(ctx).Omit(clause.Associations).Create(deck)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate deck name on create",
				"error", result.Error,
				"user_id", deck.UserID.String(),
				"name", deck.Name,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating deck in DB",
			"error", result.Error,
			"user_id", deck.UserID.String(),
		)
		return fmt.Errorf("gormDeckRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormDeckRepository) FindByID(ctx context.Context, db *gorm.DB, userID, deckID uuid.UUID) (*model.Deck, error) {
	logger := middleware.GetLogger(ctx)
	var deck model.Deck

	result := db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, deckID).First(&deck)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding deck by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"deck_id", deckID.String(),
		)
		return nil, fmt.Errorf("gormDeckRepository.FindByID: %w", result.Error)
	}
	return &deck, nil
}

func (r *gormDeckRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, sort model.DeckSort) ([]*model.Deck, error) {
	logger := middleware.GetLogger(ctx)
	var decks []*model.Deck

	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(sort.OrderClause()).
		Order("id ASC"). // 同値の並びを安定させる
		Find(&decks)
	if result.Error != nil {
		logger.Error("Error finding decks by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormDeckRepository.FindByUser: %w", result.Error)
	}
	return decks, nil
}

// CountFlashcards はデッキごとのカード枚数を返します。カードがないデッキはキー自体が存在しない
func (r *gormDeckRepository) CountFlashcards(ctx context.Context, db *gorm.DB, userID uuid.UUID, deckIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(deckIDs))
	if len(deckIDs) == 0 {
		return counts, nil
	}
	logger := middleware.GetLogger(ctx)

	var rows []struct {
		DeckID uuid.UUID
		Count  int64
	}
	result := db.WithContext(ctx).Model(&model.Flashcard{}).
		Select("deck_id, COUNT(*) AS count").
		Where("user_id = ? AND deck_id IN ?", userID, deckIDs).
		Group("deck_id").
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error counting flashcards per deck in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormDeckRepository.CountFlashcards: %w", result.Error)
	}
	for _, row := range rows {
		counts[row.DeckID] = row.Count
	}
	return counts, nil
}

func (r *gormDeckRepository) UpdateName(ctx context.Context, db *gorm.DB, userID, deckID uuid.UUID, name string) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Model(&model.Deck{}).
		Where("user_id = ? AND id = ?", userID, deckID).
		Update("name", name)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate deck name on rename",
				"error", result.Error,
				"user_id", userID.String(),
				"deck_id", deckID.String(),
				"name", name,
			)
			return model.ErrConflict
		}
		logger.Error("Error renaming deck in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"deck_id", deckID.String(),
		)
		return fmt.Errorf("gormDeckRepository.UpdateName: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete はデッキとその中のカードを削除します。
// FK の ON DELETE CASCADE が効かない環境 (SQLite の既定) でも同じ結果になるよう、カードを先に消す
func (r *gormDeckRepository) Delete(ctx context.Context, db *gorm.DB, userID, deckID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND deck_id = ?", userID, deckID).Delete(&model.Flashcard{}).Error; err != nil {
			logger.Error("Error deleting flashcards of deck in DB",
				"error", err,
				"user_id", userID.String(),
				"deck_id", deckID.String(),
			)
			return fmt.Errorf("gormDeckRepository.Delete(flashcards): %w", err)
		}

		result := tx.Where("user_id = ? AND id = ?", userID, deckID).Delete(&model.Deck{})
		if result.Error != nil {
			logger.Error("Error deleting deck in DB",
				"error", result.Error,
				"user_id", userID.String(),
				"deck_id", deckID.String(),
			)
			return fmt.Errorf("gormDeckRepository.Delete: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return model.ErrNotFound
		}
		return nil
	})
}

// ResetProgress はデッキ内の全カードを未確認に戻し、更新件数を返します
func (r *gormDeckRepository) ResetProgress(ctx context.Context, db *gorm.DB, userID, deckID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Model(&model.Flashcard{}).
		Where("user_id = ? AND deck_id = ?", userID, deckID).
		Updates(map[string]interface{}{
			"space_repetition": model.RepetitionNotChecked,
			"last_repetition":  nil,
		})
	if result.Error != nil {
		logger.Error("Error resetting deck progress in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"deck_id", deckID.String(),
		)
		return 0, fmt.Errorf("gormDeckRepository.ResetProgress: %w", result.Error)
	}
	return result.RowsAffected, nil
}
