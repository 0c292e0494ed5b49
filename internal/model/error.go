// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternalServer  = errors.New("internal server error")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrConflict        = errors.New("resource conflict") // 重複エラー用
	ErrTooManyRequests = errors.New("too many requests")
	ErrUpstream        = errors.New("upstream service error")
)

// ErrorCode はクライアントに返す安定したエラーコード
type ErrorCode string

// 共通
const (
	CodeInvalidInput  ErrorCode = "INVALID_INPUT"
	CodeUnauthorized  ErrorCode = "UNAUTHORIZED"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// デッキ
const (
	CodeDeckNotFound     ErrorCode = "DECK_NOT_FOUND"
	CodeDeckNameConflict ErrorCode = "DECK_NAME_CONFLICT"
)

// フラッシュカード
const (
	CodeFlashcardNotFound           ErrorCode = "FLASHCARD_NOT_FOUND"
	CodeFlashcardDeckNotFound       ErrorCode = "FLASHCARD_DECK_NOT_FOUND"
	CodeFlashcardGenerationNotFound ErrorCode = "FLASHCARD_GENERATION_NOT_FOUND"
)

// AI生成
const (
	CodeAITimeout             ErrorCode = "AI_TIMEOUT"
	CodeAIResponseInvalid     ErrorCode = "AI_RESPONSE_INVALID"
	CodeAIGenerationError     ErrorCode = "AI_GENERATION_ERROR"
	CodeDailyLimitExceeded    ErrorCode = "DAILY_LIMIT_EXCEEDED"
	CodeDuplicateGeneration   ErrorCode = "DUPLICATE_GENERATION"
	CodeGenerationNotFound    ErrorCode = "GENERATION_NOT_FOUND"
	CodeExceedsGeneratedTotal ErrorCode = "EXCEEDS_GENERATED_TOTAL"
)

// 学習
const (
	CodeLearnDeckNotFound      ErrorCode = "LEARN_DECK_NOT_FOUND"
	CodeLearnFlashcardNotFound ErrorCode = "LEARN_FLASHCARD_NOT_FOUND"
)

// AllErrorCodes はHTTP層のマッピング表と突き合わせるための一覧
var AllErrorCodes = []ErrorCode{
	CodeInvalidInput, CodeUnauthorized, CodeDatabaseError, CodeInternalError,
	CodeDeckNotFound, CodeDeckNameConflict,
	CodeFlashcardNotFound, CodeFlashcardDeckNotFound, CodeFlashcardGenerationNotFound,
	CodeAITimeout, CodeAIResponseInvalid, CodeAIGenerationError, CodeDailyLimitExceeded,
	CodeDuplicateGeneration, CodeGenerationNotFound, CodeExceedsGeneratedTotal,
	CodeLearnDeckNotFound, CodeLearnFlashcardNotFound,
}

// ErrorDetail はエラーレスポンスの中身
type ErrorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体 ({"error": {...}})
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はドメインエラー。Err にはセンチネルエラーか原因エラーを入れる
type AppError struct {
	Detail ErrorDetail
	// Status が 0 以外ならHTTPステータスをこの値で上書きする
	Status int
	Err    error
}

func NewAppError(code ErrorCode, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

// WithStatus はHTTPステータスを明示したコピーを返します
func (e *AppError) WithStatus(status int) *AppError {
	cp := *e
	cp.Status = status
	return &cp
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Detail.Code, e.Detail.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Detail.Code, e.Detail.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Code はエラーチェーンから ErrorCode を取り出します。AppError でなければ空文字
func Code(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Detail.Code
	}
	return ""
}

// NewDatabaseError はDB起因の汎用エラー
func NewDatabaseError(message string, err error) *AppError {
	return NewAppError(CodeDatabaseError, message, "", fmt.Errorf("%w: %v", ErrInternalServer, err))
}
