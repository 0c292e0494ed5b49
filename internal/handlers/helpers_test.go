// helpers_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_flashcard_keep/internal/handlers"
	"go_flashcard_keep/internal/middleware"
	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newTestRouter は開発用認証ミドルウェア付きで /api 配下にハンドラを登録したルーターを返します
func newTestRouter(h handlers.Handlers) *chi.Mux {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.DevUserContextMiddleware)
		handlers.RegisterRoutes(r, h)
	})
	return r
}

// createRequest はテスト用のHTTPリクエストを作成します。
// userID が指定されていれば X-User-ID ヘッダーを追加します。
func createRequest(t *testing.T, method, url string, body interface{}, userID *uuid.UUID) *http.Request {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reqBody = strings.NewReader(b)
		default:
			raw, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBody = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	return req
}

// executeRequest はルーターにリクエストを流してレスポンスレコーダーを返します
func executeRequest(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// decodeData は {"data": ...} の data 部分を dst にデコードします
func decodeData(t *testing.T, body []byte, dst interface{}) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope), "response is not a data envelope: %s", string(body))
	require.NoError(t, json.Unmarshal(envelope.Data, dst))
}

func decodeJSON(t *testing.T, body []byte, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body, dst), "invalid JSON response: %s", string(body))
}

// verifyErrorResponse はエラーレスポンスのコードを検証し、中身を返します
func verifyErrorResponse(t *testing.T, body []byte, wantCode model.ErrorCode) model.ErrorDetail {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp), "response is not an error envelope: %s", string(body))
	assert.Equal(t, wantCode, errResp.Error.Code)
	assert.NotEmpty(t, errResp.Error.Message)
	return errResp.Error
}

// clearTable は指定されたモデルのテーブルデータをクリアします。
func clearTable(t *testing.T, db *gorm.DB, modelInstance interface{}) {
	t.Helper()
	err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(modelInstance).Error
	require.NoError(t, err, fmt.Sprintf("Failed to clear table for model %T", modelInstance))
}

// stubCompleter は決まった応答を返す Completer
type stubCompleter struct {
	response string
	err      error
}

func (s *stubCompleter) Complete(ctx context.Context, req service.CompletionRequest) (string, error) {
	return s.response, s.err
}

// flashcardsJSON は補完APIの応答形式で n 枚分のカードを作ります
func flashcardsJSON(n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{"front":"問題%d","back":"答え%d"}`, i+1, i+1)
	}
	return `{"flashcards":[` + strings.Join(items, ",") + `]}`
}
