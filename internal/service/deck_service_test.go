// internal/service/deck_service_test.go
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

func newDeckServiceForTest(t *testing.T) (DeckService, *gorm.DB) {
	db := setupTestDB(t)
	return NewDeckService(db, repository.NewGormDeckRepository()), db
}

func Test_deckService_CreateDeck(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name     string
		setup    func(t *testing.T, db *gorm.DB)
		reqName  string
		wantCode model.ErrorCode
		wantName string
	}{
		{
			name:     "正常系: デッキ作成成功",
			reqName:  "英単語",
			wantName: "英単語",
		},
		{
			name:     "正常系: 前後の空白は除去される",
			reqName:  "  歴史  ",
			wantName: "歴史",
		},
		{
			name:     "異常系: 空白のみ",
			reqName:  "   ",
			wantCode: model.CodeInvalidInput,
		},
		{
			name:     "異常系: 30文字超",
			reqName:  "あいうえおかきくけこさしすせそたちつてとなにぬねのはひふへほま",
			wantCode: model.CodeInvalidInput,
		},
		{
			name: "異常系: 同じユーザーで同名のデッキ",
			setup: func(t *testing.T, db *gorm.DB) {
				seedDeck(t, db, userID, "重複")
			},
			reqName:  "重複",
			wantCode: model.CodeDeckNameConflict,
		},
		{
			name: "正常系: 別ユーザーなら同名でも作成できる",
			setup: func(t *testing.T, db *gorm.DB) {
				seedDeck(t, db, uuid.New(), "共有名")
			},
			reqName:  "共有名",
			wantName: "共有名",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, db := newDeckServiceForTest(t)
			if tt.setup != nil {
				tt.setup(t, db)
			}

			deck, err := svc.CreateDeck(ctx, userID, &model.CreateDeckRequest{Name: tt.reqName})

			if tt.wantCode != "" {
				assertAppError(t, err, tt.wantCode)
				assert.Nil(t, deck)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, deck.ID)
			assert.Equal(t, tt.wantName, deck.Name)
			assert.Equal(t, userID, deck.UserID)
		})
	}
}

func Test_deckService_ListDecks(t *testing.T) {
	ctx := context.Background()
	svc, db := newDeckServiceForTest(t)
	userID := uuid.New()

	b := seedDeck(t, db, userID, "B")
	a := seedDeck(t, db, userID, "A")
	seedDeck(t, db, uuid.New(), "他人のデッキ")
	now := time.Now().UTC()
	seedCard(t, db, userID, &b.ID, model.RepetitionOK, now)
	seedCard(t, db, userID, &b.ID, model.RepetitionNOK, now)

	t.Run("正常系: 名前の昇順とカード数", func(t *testing.T) {
		decks, err := svc.ListDecks(ctx, userID, model.DeckSortNameAsc)
		require.NoError(t, err)
		require.Len(t, decks, 2)
		assert.Equal(t, a.ID, decks[0].ID)
		assert.Equal(t, int64(0), decks[0].FlashcardCount)
		assert.Equal(t, b.ID, decks[1].ID)
		assert.Equal(t, int64(2), decks[1].FlashcardCount)
	})

	t.Run("正常系: 名前の降順", func(t *testing.T) {
		decks, err := svc.ListDecks(ctx, userID, model.DeckSortNameDesc)
		require.NoError(t, err)
		require.Len(t, decks, 2)
		assert.Equal(t, "B", decks[0].Name)
	})

	t.Run("正常系: デッキがないユーザーは空", func(t *testing.T) {
		decks, err := svc.ListDecks(ctx, uuid.New(), "")
		require.NoError(t, err)
		assert.Empty(t, decks)
	})
}

func Test_deckService_GetDeck(t *testing.T) {
	ctx := context.Background()
	svc, db := newDeckServiceForTest(t)
	userID := uuid.New()
	deck := seedDeck(t, db, userID, "取得")
	seedCard(t, db, userID, &deck.ID, model.RepetitionNotChecked, time.Now().UTC())

	got, err := svc.GetDeck(ctx, userID, deck.ID)
	require.NoError(t, err)
	assert.Equal(t, "取得", got.Name)
	assert.Equal(t, int64(1), got.FlashcardCount)

	_, err = svc.GetDeck(ctx, uuid.New(), deck.ID)
	assertAppError(t, err, model.CodeDeckNotFound)
}

func Test_deckService_RenameDeck(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("正常系: 名前を変えて元に戻せる", func(t *testing.T) {
		svc, db := newDeckServiceForTest(t)
		deck := seedDeck(t, db, userID, "元の名前")

		renamed, err := svc.RenameDeck(ctx, userID, deck.ID, &model.RenameDeckRequest{Name: "新しい名前"})
		require.NoError(t, err)
		assert.Equal(t, "新しい名前", renamed.Name)

		restored, err := svc.RenameDeck(ctx, userID, deck.ID, &model.RenameDeckRequest{Name: "元の名前"})
		require.NoError(t, err)
		assert.Equal(t, "元の名前", restored.Name)
		assert.Equal(t, deck.ID, restored.ID)
	})

	t.Run("異常系: 既存のデッキ名と重複", func(t *testing.T) {
		svc, db := newDeckServiceForTest(t)
		seedDeck(t, db, userID, "既存")
		deck := seedDeck(t, db, userID, "対象")

		_, err := svc.RenameDeck(ctx, userID, deck.ID, &model.RenameDeckRequest{Name: "既存"})
		appErr := assertAppError(t, err, model.CodeDeckNameConflict)
		assert.Equal(t, "name", appErr.Detail.Field)
	})

	t.Run("異常系: 他人のデッキは見つからない", func(t *testing.T) {
		svc, db := newDeckServiceForTest(t)
		deck := seedDeck(t, db, uuid.New(), "他人")

		_, err := svc.RenameDeck(ctx, userID, deck.ID, &model.RenameDeckRequest{Name: "奪う"})
		assertAppError(t, err, model.CodeDeckNotFound)
	})
}

func Test_deckService_DeleteDeck(t *testing.T) {
	ctx := context.Background()
	svc, db := newDeckServiceForTest(t)
	userID := uuid.New()
	deck := seedDeck(t, db, userID, "削除")
	card := seedCard(t, db, userID, &deck.ID, model.RepetitionOK, time.Now().UTC())
	loose := seedCard(t, db, userID, nil, model.RepetitionOK, time.Now().UTC())

	require.NoError(t, svc.DeleteDeck(ctx, userID, deck.ID))

	var count int64
	require.NoError(t, db.Model(&model.Flashcard{}).Where("id = ?", card.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count, "デッキ内のカードも削除される")
	require.NoError(t, db.Model(&model.Flashcard{}).Where("id = ?", loose.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count, "未割り当てのカードは残る")

	err := svc.DeleteDeck(ctx, userID, deck.ID)
	assertAppError(t, err, model.CodeDeckNotFound)
}

func Test_deckService_ResetProgress(t *testing.T) {
	ctx := context.Background()
	svc, db := newDeckServiceForTest(t)
	userID := uuid.New()
	deck := seedDeck(t, db, userID, "リセット")
	ok := seedCard(t, db, userID, &deck.ID, model.RepetitionOK, time.Now().UTC())
	nok := seedCard(t, db, userID, &deck.ID, model.RepetitionNOK, time.Now().UTC())
	require.NoError(t, db.Model(&model.Flashcard{}).Where("id = ?", ok.ID).Update("last_repetition", time.Now().UTC()).Error)

	require.NoError(t, svc.ResetProgress(ctx, userID, deck.ID))

	for _, id := range []uuid.UUID{ok.ID, nok.ID} {
		card := loadCard(t, db, id)
		assert.Equal(t, model.RepetitionNotChecked, card.SpaceRepetition)
		assert.Nil(t, card.LastRepetition)
	}

	err := svc.ResetProgress(ctx, uuid.New(), deck.ID)
	assertAppError(t, err, model.CodeDeckNotFound)
}

func Test_deckService_CreateDeck_DBError(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	mockRepo := mocks.NewDeckRepository(t)
	svc := NewDeckService(db, mockRepo)
	userID := uuid.New()

	mockRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Deck")).
		Return(errors.New("connection reset")).Once()

	_, err := svc.CreateDeck(ctx, userID, &model.CreateDeckRequest{Name: "名前"})
	assertAppError(t, err, model.CodeDatabaseError)
	assert.ErrorIs(t, err, model.ErrInternalServer)
}
