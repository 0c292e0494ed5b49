// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go_flashcard_keep/internal/model"
)

// codeStatus は ErrorCode ごとのHTTPステータス。model.AllErrorCodes の全コードを網羅すること
var codeStatus = map[model.ErrorCode]int{
	model.CodeInvalidInput:  http.StatusBadRequest,
	model.CodeUnauthorized:  http.StatusUnauthorized,
	model.CodeDatabaseError: http.StatusInternalServerError,
	model.CodeInternalError: http.StatusInternalServerError,

	model.CodeDeckNotFound:     http.StatusNotFound,
	model.CodeDeckNameConflict: http.StatusConflict,

	model.CodeFlashcardNotFound:           http.StatusNotFound,
	model.CodeFlashcardDeckNotFound:       http.StatusNotFound,
	model.CodeFlashcardGenerationNotFound: http.StatusNotFound,

	model.CodeAITimeout:             http.StatusTooManyRequests,
	model.CodeAIResponseInvalid:     http.StatusBadRequest,
	model.CodeAIGenerationError:     http.StatusInternalServerError,
	model.CodeDailyLimitExceeded:    http.StatusTooManyRequests,
	model.CodeDuplicateGeneration:   http.StatusConflict,
	model.CodeGenerationNotFound:    http.StatusNotFound,
	model.CodeExceedsGeneratedTotal: http.StatusBadRequest,

	model.CodeLearnDeckNotFound:      http.StatusNotFound,
	model.CodeLearnFlashcardNotFound: http.StatusNotFound,
}

// StatusForCode は ErrorCode に対応するHTTPステータスを返します。未登録なら ok=false
func StatusForCode(code model.ErrorCode) (int, bool) {
	status, ok := codeStatus[code]
	return status, ok
}

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
// これがアプリケーションのエラーハンドリングの中心となります。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		errResp = model.APIErrorResponse{Error: appErr.Detail}
		if statusCode >= http.StatusInternalServerError {
			logger.Error("Request failed", "code", appErr.Detail.Code, "status", statusCode, "error", err)
		} else {
			logger.Warn("Request rejected", "code", appErr.Detail.Code, "status", statusCode, "error", err)
		}
	} else {
		// 予期せぬエラー。詳細はログにだけ出す
		logger.Error("Unhandled error", "error", err)
		errResp = model.APIErrorResponse{
			Error: model.ErrorDetail{
				Code:    model.CodeInternalError,
				Message: "サーバー内部でエラーが発生しました。",
			},
		}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします。
// 優先順位: AppError.Status の明示指定 > ErrorCode 表 > センチネルエラー
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		if appErr.Status != 0 {
			return appErr.Status
		}
		if status, ok := codeStatus[appErr.Detail.Code]; ok {
			return status
		}
		err = appErr.Unwrap()
	}

	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrTooManyRequests):
		return http.StatusTooManyRequests
	case errors.Is(err, model.ErrUpstream), errors.Is(err, model.ErrInternalServer):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("Error marshaling JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_ERROR","message":"レスポンス生成中にエラーが発生しました。"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithData は成功レスポンスを {"data": ...} 形式で返します
func RespondWithData(w http.ResponseWriter, code int, data interface{}, logger *slog.Logger) {
	RespondWithJSON(w, code, model.DataResponse{Data: data}, logger)
}

// RespondNoContent は 204 を返します
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
