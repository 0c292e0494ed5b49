//go:generate mockery --name FlashcardRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_flashcard_keep/internal/middleware"
	"go_flashcard_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FlashcardRepository interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, cards []*model.Flashcard) error
	FindByID(ctx context.Context, db *gorm.DB, userID, cardID uuid.UUID) (*model.Flashcard, error)
	FindByIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID, cardIDs []uuid.UUID) ([]*model.Flashcard, error)
	FindByFilter(ctx context.Context, db *gorm.DB, userID uuid.UUID, filter model.FlashcardFilter) ([]*model.Flashcard, error)
	FindByDeckAndRepetition(ctx context.Context, db *gorm.DB, userID, deckID uuid.UUID, statuses []model.SpaceRepetition, limit int) ([]*model.Flashcard, error)
	CountByDeck(ctx context.Context, db *gorm.DB, userID, deckID uuid.UUID) (int64, error)
	Update(ctx context.Context, tx *gorm.DB, userID, cardID uuid.UUID, updates map[string]interface{}) error
	UpdateRepetition(ctx context.Context, db *gorm.DB, userID, cardID uuid.UUID, status model.SpaceRepetition, reviewedAt time.Time) error
	Delete(ctx context.Context, tx *gorm.DB, userID, cardID uuid.UUID) error
}

type gormFlashcardRepository struct{}

func NewGormFlashcardRepository() FlashcardRepository {
	return &gormFlashcardRepository{}
}

func (r *gormFlashcardRepository) CreateBatch(ctx context.Context, tx *gorm.DB, cards []*model.Flashcard) error {
	if len(cards) == 0 {
		return nil
	}
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Omit(clause.Associations).Create(&cards)
	if result.Error != nil {
		logger.Error("Error creating flashcards in DB",
			"error", result.Error,
			"user_id", cards[0].UserID.String(),
			"count", len(cards),
		)
		return fmt.Errorf("gormFlashcardRepository.CreateBatch: %w", result.Error)
	}
	return nil
}

func (r *gormFlashcardRepository) FindByID(ctx context.Context, db *gorm.DB, userID, cardID uuid.UUID) (*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx)
	var card model.Flashcard

	result := db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, cardID).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding flashcard by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"flashcard_id", cardID.String(),
		)
		return nil, fmt.Errorf("gormFlashcardRepository.FindByID: %w", result.Error)
	}
	return &card, nil
}

// FindByIDs はユーザーが所有するカードのうち指定IDに一致するものを返します。存在しないIDは単に含まれない
func (r *gormFlashcardRepository) FindByIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID, cardIDs []uuid.UUID) ([]*model.Flashcard, error) {
	var cards []*model.Flashcard
	if len(cardIDs) == 0 {
		return cards, nil
	}
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Where("user_id = ? AND id IN ?", userID, cardIDs).Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding flashcards by IDs in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"count", len(cardIDs),
		)
		return nil, fmt.Errorf("gormFlashcardRepository.FindByIDs: %w", result.Error)
	}
	return cards, nil
}

func (r *gormFlashcardRepository) FindByFilter(ctx context.Context, db *gorm.DB, userID uuid.UUID, filter model.FlashcardFilter) ([]*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx)
	var cards []*model.Flashcard

	query := db.WithContext(ctx).Where("user_id = ?", userID)
	switch {
	case filter.DeckID != nil:
		query = query.Where("deck_id = ?", *filter.DeckID)
	case filter.Unassigned:
		query = query.Where("deck_id IS NULL")
	}
	if filter.Source != nil {
		query = query.Where("source = ?", *filter.Source)
	}
	if filter.SpaceRepetition != nil {
		query = query.Where("space_repetition = ?", *filter.SpaceRepetition)
	}

	result := query.Order(filter.Sort.OrderClause()).Order("id ASC").Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding flashcards by filter in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormFlashcardRepository.FindByFilter: %w", result.Error)
	}
	return cards, nil
}

// FindByDeckAndRepetition はデッキ内で指定ステータスのカードを updated_at の古い順 (同時刻は id 順) に最大 limit 件返します
func (r *gormFlashcardRepository) FindByDeckAndRepetition(ctx context.Context, db *gorm.DB, userID, deckID uuid.UUID, statuses []model.SpaceRepetition, limit int) ([]*model.Flashcard, error) {
	var cards []*model.Flashcard
	if limit <= 0 || len(statuses) == 0 {
		return cards, nil
	}
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).
		Where("user_id = ? AND deck_id = ? AND space_repetition IN ?", userID, deckID, statuses).
		Order("updated_at ASC").
		Order("id ASC").
		Limit(limit).
		Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding flashcards by repetition status in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"deck_id", deckID.String(),
			"statuses", statuses,
		)
		return nil, fmt.Errorf("gormFlashcardRepository.FindByDeckAndRepetition: %w", result.Error)
	}
	return cards, nil
}

func (r *gormFlashcardRepository) CountByDeck(ctx context.Context, db *gorm.DB, userID, deckID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64

	result := db.WithContext(ctx).Model(&model.Flashcard{}).
		Where("user_id = ? AND deck_id = ?", userID, deckID).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting flashcards of deck in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"deck_id", deckID.String(),
		)
		return 0, fmt.Errorf("gormFlashcardRepository.CountByDeck: %w", result.Error)
	}
	return count, nil
}

func (r *gormFlashcardRepository) Update(ctx context.Context, tx *gorm.DB, userID, cardID uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Model(&model.Flashcard{}).
		Where("user_id = ? AND id = ?", userID, cardID).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating flashcard in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"flashcard_id", cardID.String(),
		)
		return fmt.Errorf("gormFlashcardRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// UpdateRepetition は復習結果を1枚分書き込みます
func (r *gormFlashcardRepository) UpdateRepetition(ctx context.Context, db *gorm.DB, userID, cardID uuid.UUID, status model.SpaceRepetition, reviewedAt time.Time) error {
	result := db.WithContext(ctx).Model(&model.Flashcard{}).
		Where("user_id = ? AND id = ?", userID, cardID).
		Updates(map[string]interface{}{
			"space_repetition": status,
			"last_repetition":  reviewedAt,
			"updated_at":       reviewedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("gormFlashcardRepository.UpdateRepetition: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormFlashcardRepository) Delete(ctx context.Context, tx *gorm.DB, userID, cardID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Where("user_id = ? AND id = ?", userID, cardID).Delete(&model.Flashcard{})
	if result.Error != nil {
		logger.Error("Error deleting flashcard in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"flashcard_id", cardID.String(),
		)
		return fmt.Errorf("gormFlashcardRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
