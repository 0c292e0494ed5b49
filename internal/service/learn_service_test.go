// internal/service/learn_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/repository"
	"go_flashcard_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLearnServiceForTest(t *testing.T) (*learnService, *gorm.DB) {
	db := setupTestDB(t)
	svc := NewLearnService(db, repository.NewGormDeckRepository(), repository.NewGormFlashcardRepository(), testConfig()).(*learnService)
	return svc, db
}

func cardIDs(cards []*model.Flashcard) []uuid.UUID {
	ids := make([]uuid.UUID, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

func Test_learnService_FetchDue(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	// NOK 3枚 (古い順 n0, n1, n2) と OK 20枚 (古い順 o0..o19)
	seedMixedDeck := func(t *testing.T, db *gorm.DB) (*model.Deck, []*model.Flashcard, []*model.Flashcard) {
		deck := seedDeck(t, db, userID, "学習")
		var nok, ok []*model.Flashcard
		for i := 0; i < 20; i++ {
			ok = append(ok, seedCard(t, db, userID, &deck.ID, model.RepetitionOK, base.Add(time.Duration(i)*time.Minute)))
		}
		for i := 0; i < 3; i++ {
			nok = append(nok, seedCard(t, db, userID, &deck.ID, model.RepetitionNOK, base.Add(time.Hour+time.Duration(i)*time.Minute)))
		}
		return deck, nok, ok
	}

	t.Run("正常系: 不正解3枚を先に出し、正解済みの古い2枚で補充", func(t *testing.T) {
		svc, db := newLearnServiceForTest(t)
		deck, nok, ok := seedMixedDeck(t, db)

		got, err := svc.FetchDue(ctx, userID, deck.ID, 5)
		require.NoError(t, err)
		want := append(cardIDs(nok), ok[0].ID, ok[1].ID)
		assert.Equal(t, want, cardIDs(got.Flashcards))
		assert.Equal(t, model.DueMeta{TotalDue: 3, Returned: 5, DeckTotal: 23}, got.Meta)
	})

	t.Run("正常系: limit がデッキより大きければ全件", func(t *testing.T) {
		svc, db := newLearnServiceForTest(t)
		deck, nok, ok := seedMixedDeck(t, db)

		got, err := svc.FetchDue(ctx, userID, deck.ID, 25)
		require.NoError(t, err)
		want := append(cardIDs(nok), cardIDs(ok)...)
		assert.Equal(t, want, cardIDs(got.Flashcards))
		assert.Equal(t, model.DueMeta{TotalDue: 3, Returned: 23, DeckTotal: 23}, got.Meta)
	})

	t.Run("正常系: 優先カードだけで埋まる", func(t *testing.T) {
		svc, db := newLearnServiceForTest(t)
		deck := seedDeck(t, db, userID, "未確認")
		var notChecked []*model.Flashcard
		for i := 0; i < 4; i++ {
			notChecked = append(notChecked, seedCard(t, db, userID, &deck.ID, model.RepetitionNotChecked, base.Add(time.Duration(i)*time.Minute)))
		}
		nok := seedCard(t, db, userID, &deck.ID, model.RepetitionNOK, base.Add(-time.Minute))
		seedCard(t, db, userID, &deck.ID, model.RepetitionOK, base.Add(-time.Hour))

		got, err := svc.FetchDue(ctx, userID, deck.ID, 3)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{nok.ID, notChecked[0].ID, notChecked[1].ID}, cardIDs(got.Flashcards))
		assert.Equal(t, model.DueMeta{TotalDue: 3, Returned: 3, DeckTotal: 6}, got.Meta)
	})

	t.Run("正常系: 空のデッキ", func(t *testing.T) {
		svc, db := newLearnServiceForTest(t)
		deck := seedDeck(t, db, userID, "空")

		got, err := svc.FetchDue(ctx, userID, deck.ID, 50)
		require.NoError(t, err)
		assert.NotNil(t, got.Flashcards)
		assert.Empty(t, got.Flashcards)
		assert.Equal(t, model.DueMeta{}, got.Meta)
	})

	t.Run("正常系: 他のデッキや未割り当てのカードは含まない", func(t *testing.T) {
		svc, db := newLearnServiceForTest(t)
		deck := seedDeck(t, db, userID, "対象")
		other := seedDeck(t, db, userID, "別")
		target := seedCard(t, db, userID, &deck.ID, model.RepetitionNOK, base)
		seedCard(t, db, userID, &other.ID, model.RepetitionNOK, base)
		seedCard(t, db, userID, nil, model.RepetitionNOK, base)

		got, err := svc.FetchDue(ctx, userID, deck.ID, 10)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{target.ID}, cardIDs(got.Flashcards))
	})

	t.Run("異常系: 他人のデッキ", func(t *testing.T) {
		svc, db := newLearnServiceForTest(t)
		deck := seedDeck(t, db, uuid.New(), "他人")

		_, err := svc.FetchDue(ctx, userID, deck.ID, 10)
		assertAppError(t, err, model.CodeLearnDeckNotFound)
	})

	t.Run("異常系: limit が範囲外", func(t *testing.T) {
		svc, db := newLearnServiceForTest(t)
		deck := seedDeck(t, db, userID, "範囲")

		for _, limit := range []int{0, 101} {
			_, err := svc.FetchDue(ctx, userID, deck.ID, limit)
			assertAppError(t, err, model.CodeInvalidInput)
		}
	})
}

func Test_learnService_ApplyReviews(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	reviewedAt := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)

	t.Run("正常系: 回答結果が反映される", func(t *testing.T) {
		svc, db := newLearnServiceForTest(t)
		svc.now = func() time.Time { return reviewedAt }
		deck := seedDeck(t, db, userID, "復習")
		a := seedCard(t, db, userID, &deck.ID, model.RepetitionNotChecked, reviewedAt.Add(-time.Hour))
		b := seedCard(t, db, userID, &deck.ID, model.RepetitionOK, reviewedAt.Add(-time.Hour))

		got, err := svc.ApplyReviews(ctx, userID, []model.ReviewItem{
			{FlashcardID: a.ID, Response: model.RepetitionOK},
			{FlashcardID: b.ID, Response: model.RepetitionNOK},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, got.Updated)

		storedA := loadCard(t, db, a.ID)
		assert.Equal(t, model.RepetitionOK, storedA.SpaceRepetition)
		require.NotNil(t, storedA.LastRepetition)
		assert.True(t, reviewedAt.Equal(*storedA.LastRepetition))
		assert.True(t, storedA.UpdatedAt.After(a.UpdatedAt))
		assert.Equal(t, model.RepetitionNOK, loadCard(t, db, b.ID).SpaceRepetition)
	})

	t.Run("正常系: 同じ回答を2回送っても結果は同じ", func(t *testing.T) {
		svc, db := newLearnServiceForTest(t)
		card := seedCard(t, db, userID, nil, model.RepetitionNOK, reviewedAt.Add(-time.Hour))
		reviews := []model.ReviewItem{{FlashcardID: card.ID, Response: model.RepetitionOK}}

		first, err := svc.ApplyReviews(ctx, userID, reviews)
		require.NoError(t, err)
		second, err := svc.ApplyReviews(ctx, userID, reviews)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, model.RepetitionOK, loadCard(t, db, card.ID).SpaceRepetition)
	})

	t.Run("異常系: 他人のカードが含まれると1件も更新しない", func(t *testing.T) {
		svc, db := newLearnServiceForTest(t)
		mine := seedCard(t, db, userID, nil, model.RepetitionNOK, reviewedAt)
		theirs := seedCard(t, db, uuid.New(), nil, model.RepetitionNOK, reviewedAt)

		_, err := svc.ApplyReviews(ctx, userID, []model.ReviewItem{
			{FlashcardID: mine.ID, Response: model.RepetitionOK},
			{FlashcardID: theirs.ID, Response: model.RepetitionOK},
		})
		assertAppError(t, err, model.CodeLearnFlashcardNotFound)
		assert.Equal(t, model.RepetitionNOK, loadCard(t, db, mine.ID).SpaceRepetition)
		assert.Equal(t, model.RepetitionNOK, loadCard(t, db, theirs.ID).SpaceRepetition)
	})

	t.Run("異常系: 入力の検証", func(t *testing.T) {
		svc, _ := newLearnServiceForTest(t)
		id := uuid.New()

		_, err := svc.ApplyReviews(ctx, userID, nil)
		assertAppError(t, err, model.CodeInvalidInput)

		_, err = svc.ApplyReviews(ctx, userID, []model.ReviewItem{{FlashcardID: id, Response: model.RepetitionNotChecked}})
		assertAppError(t, err, model.CodeInvalidInput)

		_, err = svc.ApplyReviews(ctx, userID, []model.ReviewItem{
			{FlashcardID: id, Response: model.RepetitionOK},
			{FlashcardID: id, Response: model.RepetitionNOK},
		})
		assertAppError(t, err, model.CodeInvalidInput)

		tooMany := make([]model.ReviewItem, model.ReviewBatchMax+1)
		for i := range tooMany {
			tooMany[i] = model.ReviewItem{FlashcardID: uuid.New(), Response: model.RepetitionOK}
		}
		_, err = svc.ApplyReviews(ctx, userID, tooMany)
		assertAppError(t, err, model.CodeInvalidInput)
	})
}

func Test_learnService_ApplyReviews_PartialFailure(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	mockCardRepo := mocks.NewFlashcardRepository(t)
	svc := NewLearnService(db, mocks.NewDeckRepository(t), mockCardRepo, testConfig())
	userID := uuid.New()

	okID, failID := uuid.New(), uuid.New()
	owned := []*model.Flashcard{{ID: okID, UserID: userID}, {ID: failID, UserID: userID}}

	tests := []struct {
		name        string
		setupMock   func(m *mocks.FlashcardRepository)
		wantUpdated int
		wantCode    model.ErrorCode
	}{
		{
			name: "正常系: 一部失敗しても成功分は反映",
			setupMock: func(m *mocks.FlashcardRepository) {
				m.On("FindByIDs", ctx, db, userID, []uuid.UUID{okID, failID}).Return(owned, nil).Once()
				m.On("UpdateRepetition", ctx, db, userID, okID, model.RepetitionOK, mock.AnythingOfType("time.Time")).Return(nil).Once()
				m.On("UpdateRepetition", ctx, db, userID, failID, model.RepetitionNOK, mock.AnythingOfType("time.Time")).Return(errors.New("deadlock")).Once()
			},
			wantUpdated: 1,
		},
		{
			name: "異常系: 全件失敗",
			setupMock: func(m *mocks.FlashcardRepository) {
				m.On("FindByIDs", ctx, db, userID, []uuid.UUID{okID, failID}).Return(owned, nil).Once()
				m.On("UpdateRepetition", ctx, db, userID, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("model.SpaceRepetition"), mock.AnythingOfType("time.Time")).
					Return(errors.New("db down")).Twice()
			},
			wantCode: model.CodeDatabaseError,
		},
		{
			name: "異常系: 所有確認でDBエラー",
			setupMock: func(m *mocks.FlashcardRepository) {
				m.On("FindByIDs", ctx, db, userID, []uuid.UUID{okID, failID}).Return(nil, errors.New("db error")).Once()
			},
			wantCode: model.CodeDatabaseError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCardRepo.Mock = mock.Mock{} // モックをリセット
			tt.setupMock(mockCardRepo)

			got, err := svc.ApplyReviews(ctx, userID, []model.ReviewItem{
				{FlashcardID: okID, Response: model.RepetitionOK},
				{FlashcardID: failID, Response: model.RepetitionNOK},
			})

			if tt.wantCode != "" {
				assertAppError(t, err, tt.wantCode)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantUpdated, got.Updated)
			}
			mockCardRepo.AssertExpectations(t)
		})
	}
}
