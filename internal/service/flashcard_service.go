// internal/service/flashcard_service.go
package service

import (
	"context"
	"errors"

	"go_flashcard_keep/internal/middleware"
	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockery --name FlashcardService --output ./mocks --outpkg mocks --case=underscore
type FlashcardService interface {
	ListFlashcards(ctx context.Context, userID uuid.UUID, filter model.FlashcardFilter) ([]*model.Flashcard, error)
	GetFlashcard(ctx context.Context, userID, cardID uuid.UUID) (*model.Flashcard, error)
	CreateFlashcards(ctx context.Context, userID uuid.UUID, req *model.CreateFlashcardsRequest) ([]*model.Flashcard, error)
	UpdateFlashcard(ctx context.Context, userID, cardID uuid.UUID, req *model.UpdateFlashcardRequest) (*model.Flashcard, error)
	DeleteFlashcard(ctx context.Context, userID, cardID uuid.UUID) error
}

type flashcardService struct {
	db       *gorm.DB
	cardRepo repository.FlashcardRepository
	deckRepo repository.DeckRepository
	genRepo  repository.GenerationRepository
}

func NewFlashcardService(db *gorm.DB, cardRepo repository.FlashcardRepository, deckRepo repository.DeckRepository, genRepo repository.GenerationRepository) FlashcardService {
	return &flashcardService{
		db:       db,
		cardRepo: cardRepo,
		deckRepo: deckRepo,
		genRepo:  genRepo,
	}
}

func errFlashcardNotFound() *model.AppError {
	return model.NewAppError(model.CodeFlashcardNotFound, "フラッシュカードが見つかりません。", "", model.ErrNotFound)
}

func errFlashcardDeckNotFound() *model.AppError {
	return model.NewAppError(model.CodeFlashcardDeckNotFound, "指定されたデッキが見つかりません。", "deck_id", model.ErrNotFound)
}

func errFlashcardGenerationNotFound() *model.AppError {
	return model.NewAppError(model.CodeFlashcardGenerationNotFound, "指定された生成セッションが見つかりません。", "generation_id", model.ErrNotFound)
}

func (s *flashcardService) ListFlashcards(ctx context.Context, userID uuid.UUID, filter model.FlashcardFilter) ([]*model.Flashcard, error) {
	if filter.DeckID != nil && filter.Unassigned {
		return nil, model.NewAppError(model.CodeInvalidInput, "deck_id と unassigned は同時に指定できません。", "deck_id", model.ErrInvalidInput)
	}
	if filter.Sort == "" {
		filter.Sort = model.DefaultFlashcardSort
	}

	cards, err := s.cardRepo.FindByFilter(ctx, s.db, userID, filter)
	if err != nil {
		return nil, model.NewDatabaseError("フラッシュカード一覧の取得に失敗しました。", err)
	}
	return cards, nil
}

func (s *flashcardService) GetFlashcard(ctx context.Context, userID, cardID uuid.UUID) (*model.Flashcard, error) {
	card, err := s.cardRepo.FindByID(ctx, s.db, userID, cardID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errFlashcardNotFound()
		}
		return nil, model.NewDatabaseError("フラッシュカードの取得に失敗しました。", err)
	}
	return card, nil
}

// validateSourceAndGeneration は source と generation_id の組み合わせを検証します
func validateSourceAndGeneration(source model.FlashcardSource, generationID *uuid.UUID) error {
	switch source {
	case model.SourceAIFull, model.SourceAIEdited:
		if generationID == nil {
			return model.NewAppError(model.CodeInvalidInput, "AI生成カードには generation_id が必要です。", "generation_id", model.ErrInvalidInput)
		}
	case model.SourceManual:
		if generationID != nil {
			return model.NewAppError(model.CodeInvalidInput, "手動作成カードに generation_id は指定できません。", "generation_id", model.ErrInvalidInput)
		}
	default:
		return model.NewAppError(model.CodeInvalidInput, "作成元が正しくありません。", "source", model.ErrInvalidInput)
	}
	return nil
}

func (s *flashcardService) CreateFlashcards(ctx context.Context, userID uuid.UUID, req *model.CreateFlashcardsRequest) ([]*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx)

	if len(req.Flashcards) == 0 || len(req.Flashcards) > model.FlashcardsPerRequestMax {
		return nil, model.NewAppError(model.CodeInvalidInput, "フラッシュカードは1〜50件で指定してください。", "flashcards", model.ErrInvalidInput)
	}
	if err := validateSourceAndGeneration(req.Source, req.GenerationID); err != nil {
		return nil, err
	}

	cards := make([]*model.Flashcard, 0, len(req.Flashcards))
	for _, in := range req.Flashcards {
		cards = append(cards, &model.Flashcard{
			ID:              uuid.New(),
			UserID:          userID,
			DeckID:          req.DeckID,
			Front:           in.Front,
			Back:            in.Back,
			Source:          req.Source,
			SpaceRepetition: model.RepetitionNotChecked,
			GenerationID:    req.GenerationID,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. デッキの所有確認
		if req.DeckID != nil {
			if _, err := s.deckRepo.FindByID(ctx, tx, userID, *req.DeckID); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return errFlashcardDeckNotFound()
				}
				return err
			}
		}

		// 2. 生成セッションの所有確認
		if req.GenerationID != nil {
			if _, err := s.genRepo.FindSessionByID(ctx, tx, userID, *req.GenerationID); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return errFlashcardGenerationNotFound()
				}
				return err
			}
		}

		// 3. 一括作成
		return s.cardRepo.CreateBatch(ctx, tx, cards)
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, model.NewDatabaseError("フラッシュカードの作成に失敗しました。", err)
	}

	logger.Info("Flashcards created", "count", len(cards), "source", req.Source)
	return cards, nil
}

func (s *flashcardService) UpdateFlashcard(ctx context.Context, userID, cardID uuid.UUID, req *model.UpdateFlashcardRequest) (*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx)

	if req.IsEmpty() {
		return nil, model.NewAppError(model.CodeInvalidInput, "更新する項目を指定してください。", "", model.ErrInvalidInput)
	}

	var updated *model.Flashcard
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 存在確認
		card, err := s.cardRepo.FindByID(ctx, tx, userID, cardID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return errFlashcardNotFound()
			}
			return err
		}

		// 2. 更新内容の準備
		updates := make(map[string]interface{})
		contentChanged := false
		if req.Front != nil && *req.Front != card.Front {
			updates["front"] = *req.Front
			contentChanged = true
		}
		if req.Back != nil && *req.Back != card.Back {
			updates["back"] = *req.Back
			contentChanged = true
		}
		if contentChanged {
			if next := model.PromoteSourceOnEdit(card.Source); next != card.Source {
				updates["source"] = next
			}
		}

		if req.DeckID.Set {
			if req.DeckID.Value != nil {
				// 移動先デッキの所有確認
				if _, err := s.deckRepo.FindByID(ctx, tx, userID, *req.DeckID.Value); err != nil {
					if errors.Is(err, model.ErrNotFound) {
						return errFlashcardDeckNotFound()
					}
					return err
				}
				updates["deck_id"] = *req.DeckID.Value
			} else {
				updates["deck_id"] = nil
			}
		}

		// 3. 更新実行 (更新内容がある場合のみ)
		if len(updates) > 0 {
			if err := s.cardRepo.Update(ctx, tx, userID, cardID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return errFlashcardNotFound()
				}
				return err
			}
		}

		updated, err = s.cardRepo.FindByID(ctx, tx, userID, cardID)
		return err
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, model.NewDatabaseError("フラッシュカードの更新に失敗しました。", err)
	}

	logger.Info("Flashcard updated", "flashcard_id", cardID.String(), "source", updated.Source)
	return updated, nil
}

func (s *flashcardService) DeleteFlashcard(ctx context.Context, userID, cardID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	if err := s.cardRepo.Delete(ctx, s.db, userID, cardID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return errFlashcardNotFound()
		}
		return model.NewDatabaseError("フラッシュカードの削除に失敗しました。", err)
	}

	logger.Info("Flashcard deleted", "flashcard_id", cardID.String())
	return nil
}
