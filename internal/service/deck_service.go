// internal/service/deck_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"go_flashcard_keep/internal/middleware"
	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockery --name DeckService --output ./mocks --outpkg mocks --case=underscore
type DeckService interface {
	CreateDeck(ctx context.Context, userID uuid.UUID, req *model.CreateDeckRequest) (*model.Deck, error)
	ListDecks(ctx context.Context, userID uuid.UUID, sort model.DeckSort) ([]*model.DeckWithCount, error)
	GetDeck(ctx context.Context, userID, deckID uuid.UUID) (*model.DeckWithCount, error)
	RenameDeck(ctx context.Context, userID, deckID uuid.UUID, req *model.RenameDeckRequest) (*model.Deck, error)
	DeleteDeck(ctx context.Context, userID, deckID uuid.UUID) error
	ResetProgress(ctx context.Context, userID, deckID uuid.UUID) error
}

type deckService struct {
	db       *gorm.DB
	deckRepo repository.DeckRepository
}

func NewDeckService(db *gorm.DB, deckRepo repository.DeckRepository) DeckService {
	return &deckService{
		db:       db,
		deckRepo: deckRepo,
	}
}

func errDeckNotFound() *model.AppError {
	return model.NewAppError(model.CodeDeckNotFound, "デッキが見つかりません。", "", model.ErrNotFound)
}

func errDeckNameConflict() *model.AppError {
	return model.NewAppError(model.CodeDeckNameConflict, "同じ名前のデッキが既に存在します。", "name", model.ErrConflict)
}

// normalizeDeckName は前後の空白を除き、長さを検証します
func normalizeDeckName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", model.NewAppError(model.CodeInvalidInput, "デッキ名は必須項目です。", "name", model.ErrInvalidInput)
	}
	if len([]rune(trimmed)) > model.DeckNameMaxLength {
		return "", model.NewAppError(model.CodeInvalidInput, "デッキ名は30文字以下で入力してください。", "name", model.ErrInvalidInput)
	}
	return trimmed, nil
}

func (s *deckService) CreateDeck(ctx context.Context, userID uuid.UUID, req *model.CreateDeckRequest) (*model.Deck, error) {
	logger := middleware.GetLogger(ctx)

	name, err := normalizeDeckName(req.Name)
	if err != nil {
		return nil, err
	}

	deck := &model.Deck{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name,
	}
	if err := s.deckRepo.Create(ctx, s.db, deck); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, errDeckNameConflict()
		}
		return nil, model.NewDatabaseError("デッキの作成に失敗しました。", err)
	}

	logger.Info("Deck created", "deck_id", deck.ID.String())
	return deck, nil
}

func (s *deckService) ListDecks(ctx context.Context, userID uuid.UUID, sort model.DeckSort) ([]*model.DeckWithCount, error) {
	if sort == "" {
		sort = model.DefaultDeckSort
	}

	decks, err := s.deckRepo.FindByUser(ctx, s.db, userID, sort)
	if err != nil {
		return nil, model.NewDatabaseError("デッキ一覧の取得に失敗しました。", err)
	}

	ids := make([]uuid.UUID, 0, len(decks))
	for _, d := range decks {
		ids = append(ids, d.ID)
	}
	counts, err := s.deckRepo.CountFlashcards(ctx, s.db, userID, ids)
	if err != nil {
		return nil, model.NewDatabaseError("デッキ一覧の取得に失敗しました。", err)
	}

	result := make([]*model.DeckWithCount, 0, len(decks))
	for _, d := range decks {
		result = append(result, &model.DeckWithCount{Deck: *d, FlashcardCount: counts[d.ID]})
	}
	return result, nil
}

func (s *deckService) GetDeck(ctx context.Context, userID, deckID uuid.UUID) (*model.DeckWithCount, error) {
	deck, err := s.deckRepo.FindByID(ctx, s.db, userID, deckID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errDeckNotFound()
		}
		return nil, model.NewDatabaseError("デッキの取得に失敗しました。", err)
	}

	counts, err := s.deckRepo.CountFlashcards(ctx, s.db, userID, []uuid.UUID{deckID})
	if err != nil {
		return nil, model.NewDatabaseError("デッキの取得に失敗しました。", err)
	}
	return &model.DeckWithCount{Deck: *deck, FlashcardCount: counts[deckID]}, nil
}

func (s *deckService) RenameDeck(ctx context.Context, userID, deckID uuid.UUID, req *model.RenameDeckRequest) (*model.Deck, error) {
	logger := middleware.GetLogger(ctx)

	name, err := normalizeDeckName(req.Name)
	if err != nil {
		return nil, err
	}

	var renamed *model.Deck
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.deckRepo.UpdateName(ctx, tx, userID, deckID, name); err != nil {
			return err
		}
		var err error
		renamed, err = s.deckRepo.FindByID(ctx, tx, userID, deckID)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			return nil, errDeckNotFound()
		case errors.Is(err, model.ErrConflict):
			return nil, errDeckNameConflict()
		default:
			return nil, model.NewDatabaseError("デッキ名の変更に失敗しました。", err)
		}
	}

	logger.Info("Deck renamed", "deck_id", deckID.String())
	return renamed, nil
}

func (s *deckService) DeleteDeck(ctx context.Context, userID, deckID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	if err := s.deckRepo.Delete(ctx, s.db, userID, deckID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return errDeckNotFound()
		}
		return model.NewDatabaseError("デッキの削除に失敗しました。", err)
	}

	logger.Info("Deck deleted", "deck_id", deckID.String())
	return nil
}

// ResetProgress はデッキ内の全カードの学習状態を not_checked に戻します
func (s *deckService) ResetProgress(ctx context.Context, userID, deckID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	var reset int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.deckRepo.FindByID(ctx, tx, userID, deckID); err != nil {
			return err
		}
		var err error
		reset, err = s.deckRepo.ResetProgress(ctx, tx, userID, deckID)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return errDeckNotFound()
		}
		return model.NewDatabaseError("学習状態のリセットに失敗しました。", err)
	}

	logger.Info("Deck progress reset", "deck_id", deckID.String(), "flashcards", reset)
	return nil
}
