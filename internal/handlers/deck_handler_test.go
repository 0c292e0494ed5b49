// internal/handlers/deck_handler_test.go
package handlers_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"go_flashcard_keep/internal/handlers"
	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeckHandler_CreateDeck(t *testing.T) {
	userID := uuid.New()
	deckID := uuid.New()

	tests := []struct {
		name           string
		userID         *uuid.UUID
		body           interface{}
		setupMock      func(m *mocks.DeckService)
		expectedStatus int
		expectedCode   model.ErrorCode
	}{
		{
			name:   "正常系: デッキ作成",
			userID: &userID,
			body:   map[string]string{"name": "英単語"},
			setupMock: func(m *mocks.DeckService) {
				m.On("CreateDeck", mock.Anything, userID, &model.CreateDeckRequest{Name: "英単語"}).
					Return(&model.Deck{ID: deckID, UserID: userID, Name: "英単語"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: ユーザーIDなし",
			body:           map[string]string{"name": "英単語"},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   model.CodeUnauthorized,
		},
		{
			name:           "異常系: 名前が空白のみ",
			userID:         &userID,
			body:           map[string]string{"name": "   "},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.CodeInvalidInput,
		},
		{
			name:           "異常系: JSONが壊れている",
			userID:         &userID,
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.CodeInvalidInput,
		},
		{
			name:   "異常系: 名前の重複",
			userID: &userID,
			body:   map[string]string{"name": "重複"},
			setupMock: func(m *mocks.DeckService) {
				m.On("CreateDeck", mock.Anything, userID, mock.AnythingOfType("*model.CreateDeckRequest")).
					Return(nil, model.NewAppError(model.CodeDeckNameConflict, "同じ名前のデッキが既に存在します。", "name", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   model.CodeDeckNameConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewDeckService(t)
			if tc.setupMock != nil {
				tc.setupMock(mockService)
			}
			router := newTestRouter(handlers.Handlers{Deck: handlers.NewDeckHandler(mockService, discardLogger)})

			rr := executeRequest(router, createRequest(t, http.MethodPost, "/api/decks", tc.body, tc.userID))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				verifyErrorResponse(t, rr.Body.Bytes(), tc.expectedCode)
				return
			}
			var created model.CreateDeckResponse
			decodeData(t, rr.Body.Bytes(), &created)
			assert.Equal(t, deckID, created.ID)
		})
	}
}

func TestDeckHandler_CreateDeck_InvalidInputCode(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name string
		body interface{}
	}{
		{name: "異常系: 空白のみ", body: map[string]string{"name": "   "}},
		{name: "異常系: 31文字", body: map[string]string{"name": strings.Repeat("あ", 31)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewDeckService(t)
			router := newTestRouter(handlers.Handlers{Deck: handlers.NewDeckHandler(mockService, discardLogger)})

			rr := executeRequest(router, createRequest(t, http.MethodPost, "/api/decks", tc.body, &userID))

			require.Equal(t, http.StatusBadRequest, rr.Code)
			var got struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
					Field   string `json:"field"`
				} `json:"error"`
			}
			decodeJSON(t, rr.Body.Bytes(), &got)
			assert.Equal(t, "INVALID_INPUT", got.Error.Code)
			assert.Equal(t, "name", got.Error.Field)
			assert.NotEmpty(t, got.Error.Message)
		})
	}
}

func TestDeckHandler_ListDecks(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: 並び順を渡してカード数付きで返す", func(t *testing.T) {
		mockService := mocks.NewDeckService(t)
		decks := []*model.DeckWithCount{
			{Deck: model.Deck{ID: uuid.New(), UserID: userID, Name: "A", CreatedAt: time.Now(), UpdatedAt: time.Now()}, FlashcardCount: 3},
		}
		mockService.On("ListDecks", mock.Anything, userID, model.DeckSortNameAsc).Return(decks, nil).Once()
		router := newTestRouter(handlers.Handlers{Deck: handlers.NewDeckHandler(mockService, discardLogger)})

		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/decks?sort=name_asc", nil, &userID))

		require.Equal(t, http.StatusOK, rr.Code)
		var got []model.DeckWithCount
		decodeData(t, rr.Body.Bytes(), &got)
		require.Len(t, got, 1)
		assert.Equal(t, int64(3), got[0].FlashcardCount)
	})

	t.Run("正常系: 0件でも空配列", func(t *testing.T) {
		mockService := mocks.NewDeckService(t)
		mockService.On("ListDecks", mock.Anything, userID, model.DeckSort("")).Return(nil, nil).Once()
		router := newTestRouter(handlers.Handlers{Deck: handlers.NewDeckHandler(mockService, discardLogger)})

		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/decks", nil, &userID))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"data":[]}`, rr.Body.String())
	})

	t.Run("異常系: 不明な並び順", func(t *testing.T) {
		mockService := mocks.NewDeckService(t)
		router := newTestRouter(handlers.Handlers{Deck: handlers.NewDeckHandler(mockService, discardLogger)})

		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/decks?sort=random", nil, &userID))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		detail := verifyErrorResponse(t, rr.Body.Bytes(), model.CodeInvalidInput)
		assert.Equal(t, "sort", detail.Field)
	})
}

func TestDeckHandler_ByID(t *testing.T) {
	userID := uuid.New()
	deckID := uuid.New()

	t.Run("異常系: IDがUUIDでない", func(t *testing.T) {
		mockService := mocks.NewDeckService(t)
		router := newTestRouter(handlers.Handlers{Deck: handlers.NewDeckHandler(mockService, discardLogger)})

		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/decks/not-a-uuid", nil, &userID))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		verifyErrorResponse(t, rr.Body.Bytes(), model.CodeInvalidInput)
	})

	t.Run("異常系: 見つからない", func(t *testing.T) {
		mockService := mocks.NewDeckService(t)
		mockService.On("GetDeck", mock.Anything, userID, deckID).
			Return(nil, model.NewAppError(model.CodeDeckNotFound, "デッキが見つかりません。", "", model.ErrNotFound)).Once()
		router := newTestRouter(handlers.Handlers{Deck: handlers.NewDeckHandler(mockService, discardLogger)})

		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/decks/"+deckID.String(), nil, &userID))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		verifyErrorResponse(t, rr.Body.Bytes(), model.CodeDeckNotFound)
	})

	t.Run("正常系: 名前変更", func(t *testing.T) {
		mockService := mocks.NewDeckService(t)
		mockService.On("RenameDeck", mock.Anything, userID, deckID, &model.RenameDeckRequest{Name: "新しい名前"}).
			Return(&model.Deck{ID: deckID, UserID: userID, Name: "新しい名前"}, nil).Once()
		router := newTestRouter(handlers.Handlers{Deck: handlers.NewDeckHandler(mockService, discardLogger)})

		rr := executeRequest(router, createRequest(t, http.MethodPatch, "/api/decks/"+deckID.String(), map[string]string{"name": "新しい名前"}, &userID))

		require.Equal(t, http.StatusOK, rr.Code)
		var got model.Deck
		decodeData(t, rr.Body.Bytes(), &got)
		assert.Equal(t, "新しい名前", got.Name)
	})

	t.Run("正常系: 削除と進捗リセットは204", func(t *testing.T) {
		mockService := mocks.NewDeckService(t)
		mockService.On("DeleteDeck", mock.Anything, userID, deckID).Return(nil).Once()
		mockService.On("ResetProgress", mock.Anything, userID, deckID).Return(nil).Once()
		router := newTestRouter(handlers.Handlers{Deck: handlers.NewDeckHandler(mockService, discardLogger)})

		rr := executeRequest(router, createRequest(t, http.MethodPost, "/api/decks/"+deckID.String()+"/reset-progress", nil, &userID))
		assert.Equal(t, http.StatusNoContent, rr.Code)

		rr = executeRequest(router, createRequest(t, http.MethodDelete, "/api/decks/"+deckID.String(), nil, &userID))
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})
}
