// internal/service/learn_service.go
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go_flashcard_keep/internal/config"
	"go_flashcard_keep/internal/middleware"
	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

//go:generate mockery --name LearnService --output ./mocks --outpkg mocks --case=underscore
type LearnService interface {
	FetchDue(ctx context.Context, userID, deckID uuid.UUID, limit int) (*model.DueFlashcards, error)
	ApplyReviews(ctx context.Context, userID uuid.UUID, reviews []model.ReviewItem) (*model.ReviewResult, error)
}

type learnService struct {
	db          *gorm.DB
	deckRepo    repository.DeckRepository
	cardRepo    repository.FlashcardRepository
	concurrency int
	now         func() time.Time
}

func NewLearnService(db *gorm.DB, deckRepo repository.DeckRepository, cardRepo repository.FlashcardRepository, cfg *config.Config) LearnService {
	concurrency := cfg.Learn.ReviewConcurrency
	if concurrency <= 0 {
		concurrency = config.DefaultReviewConcurrency
	}
	return &learnService{
		db:          db,
		deckRepo:    deckRepo,
		cardRepo:    cardRepo,
		concurrency: concurrency,
		now:         time.Now,
	}
}

// 優先して出題する状態 (未確認・不正解)
var priorityRepetitions = []model.SpaceRepetition{model.RepetitionNotChecked, model.RepetitionNOK}

// FetchDue はデッキから学習対象のカードを最大 limit 件選びます。
//
// 未確認・不正解のカードを updated_at の古い順に取り、limit に満たなければ
// 正解済みのカードを同じ順で補充する。total_due は補充分を含まない
func (s *learnService) FetchDue(ctx context.Context, userID, deckID uuid.UUID, limit int) (*model.DueFlashcards, error) {
	logger := middleware.GetLogger(ctx)

	if limit < 1 || limit > model.ReviewBatchMax {
		return nil, model.NewAppError(model.CodeInvalidInput, "取得件数は1〜100で指定してください。", "limit", model.ErrInvalidInput)
	}

	// 1. デッキの所有確認
	if _, err := s.deckRepo.FindByID(ctx, s.db, userID, deckID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError(model.CodeLearnDeckNotFound, "デッキが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewDatabaseError("デッキの取得に失敗しました。", err)
	}

	// 2. デッキ内の総数
	deckTotal, err := s.cardRepo.CountByDeck(ctx, s.db, userID, deckID)
	if err != nil {
		return nil, model.NewDatabaseError("学習カードの取得に失敗しました。", err)
	}

	// 3. 優先カード
	priority, err := s.cardRepo.FindByDeckAndRepetition(ctx, s.db, userID, deckID, priorityRepetitions, limit)
	if err != nil {
		return nil, model.NewDatabaseError("学習カードの取得に失敗しました。", err)
	}

	// 4. 優先カードで埋まればそれを返す
	if len(priority) >= limit {
		return &model.DueFlashcards{
			Flashcards: priority,
			Meta:       model.DueMeta{TotalDue: len(priority), Returned: len(priority), DeckTotal: deckTotal},
		}, nil
	}

	// 5. 残りを正解済みカードで補充
	remaining := limit - len(priority)
	filler, err := s.cardRepo.FindByDeckAndRepetition(ctx, s.db, userID, deckID, []model.SpaceRepetition{model.RepetitionOK}, remaining)
	if err != nil {
		return nil, model.NewDatabaseError("学習カードの取得に失敗しました。", err)
	}

	// 6. 優先カード → 補充カードの順に連結
	cards := make([]*model.Flashcard, 0, len(priority)+len(filler))
	cards = append(cards, priority...)
	cards = append(cards, filler...)

	logger.Debug("Due flashcards selected",
		"deck_id", deckID.String(),
		"priority", len(priority),
		"filler", len(filler),
		"deck_total", deckTotal,
	)
	return &model.DueFlashcards{
		Flashcards: cards,
		Meta:       model.DueMeta{TotalDue: len(priority), Returned: len(cards), DeckTotal: deckTotal},
	}, nil
}

// ApplyReviews は回答結果をまとめて反映します。
// 所有確認は全件まとめて行い、更新は1件ずつ並行に実行して成功件数を返す
func (s *learnService) ApplyReviews(ctx context.Context, userID uuid.UUID, reviews []model.ReviewItem) (*model.ReviewResult, error) {
	logger := middleware.GetLogger(ctx)

	if len(reviews) == 0 || len(reviews) > model.ReviewBatchMax {
		return nil, model.NewAppError(model.CodeInvalidInput, "回答結果は1〜100件で指定してください。", "review", model.ErrInvalidInput)
	}

	// 1. 全IDの所有確認
	ids := make([]uuid.UUID, 0, len(reviews))
	seen := make(map[uuid.UUID]struct{}, len(reviews))
	for _, r := range reviews {
		if r.Response != model.RepetitionOK && r.Response != model.RepetitionNOK {
			return nil, model.NewAppError(model.CodeInvalidInput, "回答は OK または NOK を指定してください。", "response", model.ErrInvalidInput)
		}
		if _, ok := seen[r.FlashcardID]; ok {
			return nil, model.NewAppError(model.CodeInvalidInput, "同じフラッシュカードが重複しています。", "review", model.ErrInvalidInput)
		}
		seen[r.FlashcardID] = struct{}{}
		ids = append(ids, r.FlashcardID)
	}

	owned, err := s.cardRepo.FindByIDs(ctx, s.db, userID, ids)
	if err != nil {
		return nil, model.NewDatabaseError("フラッシュカードの取得に失敗しました。", err)
	}
	if len(owned) != len(ids) {
		found := make(map[uuid.UUID]struct{}, len(owned))
		for _, c := range owned {
			found[c.ID] = struct{}{}
		}
		var missing []string
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				missing = append(missing, id.String())
			}
		}
		logger.Warn("Review batch references unknown flashcards", "missing", missing)
		return nil, model.NewAppError(model.CodeLearnFlashcardNotFound, "フラッシュカードが見つかりません。", "flashcard_id", model.ErrNotFound)
	}

	// 2. 1件ずつ並行に更新し、結果を集める
	reviewedAt := s.now().UTC()
	var (
		mu      sync.Mutex
		updated int
		failed  []string
	)
	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)
	for _, r := range reviews {
		r := r
		g.Go(func() error {
			err := s.cardRepo.UpdateRepetition(ctx, s.db, userID, r.FlashcardID, r.Response, reviewedAt)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed = append(failed, r.FlashcardID.String())
				logger.Error("Failed to apply review", "flashcard_id", r.FlashcardID.String(), "error", err)
				return nil // 他の更新は続ける
			}
			updated++
			return nil
		})
	}
	g.Wait()

	// 3. 1件も更新できなければエラー
	if updated == 0 {
		return nil, model.NewDatabaseError("回答結果の反映に失敗しました。", errors.New("all review updates failed"))
	}
	if len(failed) > 0 {
		logger.Warn("Review batch partially applied", "updated", updated, "failed", failed)
	} else {
		logger.Info("Review batch applied", "updated", updated)
	}
	return &model.ReviewResult{Updated: updated}, nil
}
