//go:generate mockery --name GenerationRepository --output ./mocks --outpkg mocks --case=underscore
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
)

type GenerationRepository interface {
	CreateSession(ctx context.Context, db *gorm.DB, session *model.GenerationSession) error
	FindSessionByID(ctx context.Context, db *gorm.DB, userID, sessionID uuid.UUID) (*model.GenerationSession, error)
	FindLatestSessionByHash(ctx context.Context, db *gorm.DB, userID uuid.UUID, inputHash string) (*model.GenerationSession, error)
	FindSessionsSince(ctx context.Context, db *gorm.DB, userID uuid.UUID, since time.Time, limit int) ([]*model.GenerationSession, error)
	CountSessionsSince(ctx context.Context, db *gorm.DB, userID uuid.UUID, since time.Time) (int64, error)
	FinalizeSession(ctx context.Context, db *gorm.DB, userID, sessionID uuid.UUID, status model.GenerationStatus, generatedTotal int) error
	UpdateAcceptedTotal(ctx context.Context, db *gorm.DB, userID, sessionID uuid.UUID, acceptedTotal int) error
	CreateError(ctx context.Context, db *gorm.DB, genErr *model.GenerationError) error
	FindErrorBySession(ctx context.Context, db *gorm.DB, userID, sessionID uuid.UUID) (*model.GenerationError, error)
}

type gormGenerationRepository struct{}

func NewGormGenerationRepository() GenerationRepository {
	return &gormGenerationRepository{}
}

func (r *gormGenerationRepository) CreateSession(ctx context.Context, db *gorm.DB, session *model.GenerationSession) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(session)
	if result.Error != nil {
		logger.Error("Error creating generation session in DB",
			"error", result.Error,
			"user_id", session.UserID.String(),
		)
		return fmt.Errorf("gormGenerationRepository.CreateSession: %w", result.Error)
	}
	return nil
}

func (r *gormGenerationRepository) FindSessionByID(ctx context.Context, db *gorm.DB, userID, sessionID uuid.UUID) (*model.GenerationSession, error) {
	logger := middleware.GetLogger(ctx)
	var session model.GenerationSession

	result := db.WithContext(ctx).Where("user_id = ? AND session_id = ?", userID, sessionID).First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding generation session by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"session_id", sessionID.String(),
		)
		return nil, fmt.Errorf("gormGenerationRepository.FindSessionByID: %w", result.Error)
	}
	return &session, nil
}

// FindLatestSessionByHash は同じ入力ハッシュを持つ最新のセッションを返します
func (r *gormGenerationRepository) FindLatestSessionByHash(ctx context.Context, db *gorm.DB, userID uuid.UUID, inputHash string) (*model.GenerationSession, error) {
	logger := middleware.GetLogger(ctx)
	var session model.GenerationSession

	result := db.WithContext(ctx).
		Where("user_id = ? AND input_text_hash = ?", userID, inputHash).
		Order("created_at DESC").
		First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding generation session by hash in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormGenerationRepository.FindLatestSessionByHash: %w", result.Error)
	}
	return &session, nil
}

func (r *gormGenerationRepository) FindSessionsSince(ctx context.Context, db *gorm.DB, userID uuid.UUID, since time.Time, limit int) ([]*model.GenerationSession, error) {
	logger := middleware.GetLogger(ctx)
	var sessions []*model.GenerationSession

	result := db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Limit(limit).
		Find(&sessions)
	if result.Error != nil {
		logger.Error("Error finding generation sessions in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormGenerationRepository.FindSessionsSince: %w", result.Error)
	}
	return sessions, nil
}

func (r *gormGenerationRepository) CountSessionsSince(ctx context.Context, db *gorm.DB, userID uuid.UUID, since time.Time) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64

	result := db.WithContext(ctx).Model(&model.GenerationSession{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting generation sessions in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return 0, fmt.Errorf("gormGenerationRepository.CountSessionsSince: %w", result.Error)
	}
	return count, nil
}

// FinalizeSession は pending のセッションを終了状態にします。終了済みのセッションは変更しない
func (r *gormGenerationRepository) FinalizeSession(ctx context.Context, db *gorm.DB, userID, sessionID uuid.UUID, status model.GenerationStatus, generatedTotal int) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Model(&model.GenerationSession{}).
		Where("user_id = ? AND session_id = ? AND status = ?", userID, sessionID, model.GenerationStatusPending).
		Updates(map[string]interface{}{
			"status":          status,
			"generated_total": generatedTotal,
		})
	if result.Error != nil {
		logger.Error("Error finalizing generation session in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"session_id", sessionID.String(),
			"status", status,
		)
		return fmt.Errorf("gormGenerationRepository.FinalizeSession: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormGenerationRepository) UpdateAcceptedTotal(ctx context.Context, db *gorm.DB, userID, sessionID uuid.UUID, acceptedTotal int) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Model(&model.GenerationSession{}).
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Update("accepted_total", acceptedTotal)
	if result.Error != nil {
		logger.Error("Error updating accepted total in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"session_id", sessionID.String(),
		)
		return fmt.Errorf("gormGenerationRepository.UpdateAcceptedTotal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormGenerationRepository) CreateError(ctx context.Context, db *gorm.DB, genErr *model.GenerationError) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(genErr)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Generation error already recorded for session",
				"session_id", genErr.SessionID.String(),
			)
			return model.ErrConflict
		}
		logger.Error("Error creating generation error in DB",
			"error", result.Error,
			"session_id", genErr.SessionID.String(),
		)
		return fmt.Errorf("gormGenerationRepository.CreateError: %w", result.Error)
	}
	return nil
}

func (r *gormGenerationRepository) FindErrorBySession(ctx context.Context, db *gorm.DB, userID, sessionID uuid.UUID) (*model.GenerationError, error) {
	logger := middleware.GetLogger(ctx)
	var genErr model.GenerationError

	result := db.WithContext(ctx).Where("user_id = ? AND session_id = ?", userID, sessionID).First(&genErr)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding generation error in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return nil, fmt.Errorf("gormGenerationRepository.FindErrorBySession: %w", result.Error)
	}
	return &genErr, nil
}
