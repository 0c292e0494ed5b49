package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go_flashcard_keep/internal/model"

	"github.com/go-playground/validator/v10"
)

// リクエストボディの上限 (生成APIの入力テキストが最大なので余裕を持たせる)
const maxRequestBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします。失敗時は INVALID_INPUT の AppError
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError(model.CodeInvalidInput, "リクエストボディが必要です。", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return model.NewAppError(model.CodeInvalidInput, "リクエストボディが空です。", "", model.ErrInvalidInput)
		case errors.As(err, &syntaxErr):
			return model.NewAppError(model.CodeInvalidInput, "JSONの形式が正しくありません。", "", fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		case errors.As(err, &typeErr):
			return model.NewAppError(model.CodeInvalidInput, "項目の型が正しくありません。", typeErr.Field, fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		case errors.As(err, &maxErr):
			return model.NewAppError(model.CodeInvalidInput, "リクエストボディが大きすぎます。", "", fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
			return model.NewAppError(model.CodeInvalidInput, "不明な項目が含まれています。", field, fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		default:
			return model.NewAppError(model.CodeInvalidInput, "リクエストボディを解析できませんでした。", "", fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		}
	}
	return nil
}

// ValidateStruct は構造体を検証し、失敗時は INVALID_INPUT の AppError を返します
func ValidateStruct(s interface{}) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return NewValidationErrorResponse(validationErrors)
	}
	return model.NewAppError(model.CodeInvalidInput, "入力内容が正しくありません。", "", fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
}
