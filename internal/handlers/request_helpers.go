// internal/handlers/request_helpers.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_flashcard_keep/internal/middleware"
	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// handlerLogger はリクエストのロガー (req_id, user_id 付き) にハンドラ名を加えます。
// ミドルウェアを通っていない場合はハンドラ生成時のロガーを使う
func handlerLogger(r *http.Request, base *slog.Logger, name string) *slog.Logger {
	if logger, ok := middleware.LoggerFromContext(r.Context()); ok {
		base = logger
	}
	return base.With(slog.String("handler", name))
}

// requireUserID は認証済みユーザーIDを取り出します。失敗時は 401 を書き込んで false を返す
func requireUserID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return uuid.Nil, false
	}
	return userID, true
}

// uuidParam はURLパラメータをUUIDとして解釈します。失敗時は 400 を書き込んで false を返す
func uuidParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid ID format in URL", slog.String("param", name), slog.String("value", raw))
		appErr := model.NewAppError(model.CodeInvalidInput, "IDの形式が正しくありません。", name, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return id, true
}

// decodeAndValidate はボディをデコードして検証します。失敗時は 400 を書き込んで false を返す
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(w, r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return false
	}
	if err := webutil.ValidateStruct(dst); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return false
	}
	return true
}
