// internal/handlers/learn_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"go_flashcard_keep/internal/handlers"
	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLearnRouter(m *mocks.LearnService, defaultLimit int) http.Handler {
	return newTestRouter(handlers.Handlers{Learn: handlers.NewLearnHandler(m, defaultLimit, discardLogger)})
}

func TestLearnHandler_FetchDue(t *testing.T) {
	userID := uuid.New()
	deckID := uuid.New()
	path := "/api/learn/" + deckID.String()

	tests := []struct {
		name           string
		query          string
		defaultLimit   int
		wantLimit      int
		expectedStatus int
		expectedCode   model.ErrorCode
	}{
		{name: "正常系: limit 未指定はデフォルト50", query: "", defaultLimit: 0, wantLimit: 50, expectedStatus: http.StatusOK},
		{name: "正常系: 設定のデフォルト値", query: "", defaultLimit: 20, wantLimit: 20, expectedStatus: http.StatusOK},
		{name: "正常系: limit 指定", query: "?limit=5", defaultLimit: 50, wantLimit: 5, expectedStatus: http.StatusOK},
		{name: "正常系: 上限100", query: "?limit=100", defaultLimit: 50, wantLimit: 100, expectedStatus: http.StatusOK},
		{name: "異常系: 数値でない", query: "?limit=abc", defaultLimit: 50, expectedStatus: http.StatusBadRequest, expectedCode: model.CodeInvalidInput},
		{name: "異常系: 0", query: "?limit=0", defaultLimit: 50, expectedStatus: http.StatusBadRequest, expectedCode: model.CodeInvalidInput},
		{name: "異常系: 101", query: "?limit=101", defaultLimit: 50, expectedStatus: http.StatusBadRequest, expectedCode: model.CodeInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewLearnService(t)
			if tc.expectedCode == "" {
				mockService.On("FetchDue", mock.Anything, userID, deckID, tc.wantLimit).
					Return(&model.DueFlashcards{Flashcards: []*model.Flashcard{}}, nil).Once()
			}

			rr := executeRequest(newLearnRouter(mockService, tc.defaultLimit), createRequest(t, http.MethodGet, path+tc.query, nil, &userID))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				detail := verifyErrorResponse(t, rr.Body.Bytes(), tc.expectedCode)
				assert.Equal(t, "limit", detail.Field)
			}
		})
	}
}

func TestLearnHandler_FetchDue_Response(t *testing.T) {
	userID := uuid.New()
	deckID := uuid.New()

	t.Run("正常系: data と meta を返す", func(t *testing.T) {
		mockService := mocks.NewLearnService(t)
		cards := []*model.Flashcard{
			{ID: uuid.New(), UserID: userID, DeckID: &deckID, Front: "Q1", Back: "A1", SpaceRepetition: model.RepetitionNOK},
			{ID: uuid.New(), UserID: userID, DeckID: &deckID, Front: "Q2", Back: "A2", SpaceRepetition: model.RepetitionOK},
		}
		mockService.On("FetchDue", mock.Anything, userID, deckID, 2).Return(&model.DueFlashcards{
			Flashcards: cards,
			Meta:       model.DueMeta{TotalDue: 1, Returned: 2, DeckTotal: 10},
		}, nil).Once()

		rr := executeRequest(newLearnRouter(mockService, 50), createRequest(t, http.MethodGet, "/api/learn/"+deckID.String()+"?limit=2", nil, &userID))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp struct {
			Data []model.Flashcard `json:"data"`
			Meta model.DueMeta     `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 2)
		assert.Equal(t, "Q1", resp.Data[0].Front)
		assert.Equal(t, model.DueMeta{TotalDue: 1, Returned: 2, DeckTotal: 10}, resp.Meta)
	})

	t.Run("異常系: デッキが見つからない", func(t *testing.T) {
		mockService := mocks.NewLearnService(t)
		mockService.On("FetchDue", mock.Anything, userID, deckID, 50).
			Return(nil, model.NewAppError(model.CodeLearnDeckNotFound, "デッキが見つかりません。", "", model.ErrNotFound)).Once()

		rr := executeRequest(newLearnRouter(mockService, 50), createRequest(t, http.MethodGet, "/api/learn/"+deckID.String(), nil, &userID))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		verifyErrorResponse(t, rr.Body.Bytes(), model.CodeLearnDeckNotFound)
	})
}

func TestLearnHandler_SubmitReviews(t *testing.T) {
	userID := uuid.New()
	cardA := uuid.New()
	cardB := uuid.New()

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.LearnService)
		expectedStatus int
		expectedCode   model.ErrorCode
	}{
		{
			name: "正常系: 回答結果を反映",
			body: map[string]interface{}{"review": []map[string]string{
				{"flashcard_id": cardA.String(), "response": "OK"},
				{"flashcard_id": cardB.String(), "response": "NOK"},
			}},
			setupMock: func(m *mocks.LearnService) {
				m.On("ApplyReviews", mock.Anything, userID, []model.ReviewItem{
					{FlashcardID: cardA, Response: model.RepetitionOK},
					{FlashcardID: cardB, Response: model.RepetitionNOK},
				}).Return(&model.ReviewResult{Updated: 2}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: 空の配列",
			body:           map[string]interface{}{"review": []map[string]string{}},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.CodeInvalidInput,
		},
		{
			name: "異常系: 同じカードが重複",
			body: map[string]interface{}{"review": []map[string]string{
				{"flashcard_id": cardA.String(), "response": "OK"},
				{"flashcard_id": cardA.String(), "response": "NOK"},
			}},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.CodeInvalidInput,
		},
		{
			name: "異常系: not_checked は回答にできない",
			body: map[string]interface{}{"review": []map[string]string{
				{"flashcard_id": cardA.String(), "response": "not_checked"},
			}},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.CodeInvalidInput,
		},
		{
			name: "異常系: 他人のカードを含む",
			body: map[string]interface{}{"review": []map[string]string{
				{"flashcard_id": cardA.String(), "response": "OK"},
			}},
			setupMock: func(m *mocks.LearnService) {
				m.On("ApplyReviews", mock.Anything, userID, mock.Anything).
					Return(nil, model.NewAppError(model.CodeLearnFlashcardNotFound, "フラッシュカードが見つかりません。", "", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.CodeLearnFlashcardNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewLearnService(t)
			if tc.setupMock != nil {
				tc.setupMock(mockService)
			}

			rr := executeRequest(newLearnRouter(mockService, 50), createRequest(t, http.MethodPatch, "/api/learn/review", tc.body, &userID))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				verifyErrorResponse(t, rr.Body.Bytes(), tc.expectedCode)
				return
			}
			var got model.ReviewResult
			decodeData(t, rr.Body.Bytes(), &got)
			assert.Equal(t, 2, got.Updated)
		})
	}
}
