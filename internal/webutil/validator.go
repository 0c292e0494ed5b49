package webutil

import (
	"fmt"
	"log"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"go_flashcard_keep/internal/model"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"name":             "デッキ名",
	"front":            "表面",
	"back":             "裏面",
	"source":           "作成元",
	"flashcards":       "フラッシュカード",
	"input_text":       "入力テキスト",
	"accepted_total":   "採用数",
	"review":           "回答結果",
	"flashcard_id":     "フラッシュカードID",
	"response":         "回答",
	"deck_id":          "デッキID",
	"unassigned":       "未割り当て",
	"space_repetition": "学習状態",
	"sort":             "並び順",
	"limit":            "取得件数",
}

func translateField(fe validator.FieldError) string {
	if name, ok := fieldNameTranslations[fe.Field()]; ok {
		return name
	}
	return fe.Field()
}

// trimmedMax は前後の空白を除いた文字数が上限以下かを検証します (trimmed_max=30)
func trimmedMax(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) <= limit
}

// spaceRepetitionResponse は復習の回答として受け付ける値 (OK / NOK) かを検証します
func spaceRepetitionResponse(fl validator.FieldLevel) bool {
	switch model.SpaceRepetition(fl.Field().String()) {
	case model.RepetitionOK, model.RepetitionNOK:
		return true
	}
	return false
}

func init() {
	Validator = validator.New(validator.WithRequiredStructEnabled())

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister := func(tag string, fn validator.Func) {
		if err := Validator.RegisterValidation(tag, fn); err != nil {
			log.Fatal(err)
		}
	}
	mustRegister("notblank", validators.NotBlank)
	mustRegister("trimmed_max", trimmedMax)
	mustRegister("space_repetition_response", spaceRepetitionResponse)

	// --- ここからが日本語化の処理 ---
	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// registerTranslation はフィールド名だけを埋め込むメッセージを登録するヘルパー関数
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translateField(fe))
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("notblank", "{0}は空白以外の文字を含めてください。")
	registerTranslation("uuid", "{0}は有効なUUIDではありません。")
	registerTranslation("space_repetition_response", "{0}は OK または NOK を指定してください。")
	registerTranslation("unique", "{0}に重複した項目が含まれています。")

	// oneof は許可される値を併記する
	Validator.RegisterTranslation("oneof", Trans, func(ut ut.Translator) error {
		return ut.Add("oneof", "{0}は[{1}]のいずれかを指定してください。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("oneof", translateField(fe), fe.Param())
		return t
	})

	Validator.RegisterTranslation("trimmed_max", Trans, func(ut ut.Translator) error {
		return ut.Add("trimmed_max", "{0}は{1}文字以下で入力してください。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("trimmed_max", translateField(fe), fe.Param())
		return t
	})

	// --- min / max は文字列・配列・数値で文言を変える ---
	for _, tag := range []string{"min", "max"} {
		tag := tag
		stringKey, sliceKey, numberKey := tag+"-string", tag+"-items", tag+"-number"
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			if tag == "min" {
				if err := ut.Add(stringKey, "{0}は{1}文字以上で入力してください。", true); err != nil {
					return err
				}
				if err := ut.Add(sliceKey, "{0}は{1}件以上指定してください。", true); err != nil {
					return err
				}
				return ut.Add(numberKey, "{0}は{1}以上で指定してください。", true)
			}
			if err := ut.Add(stringKey, "{0}は{1}文字以下で入力してください。", true); err != nil {
				return err
			}
			if err := ut.Add(sliceKey, "{0}は{1}件以下で指定してください。", true); err != nil {
				return err
			}
			return ut.Add(numberKey, "{0}は{1}以下で指定してください。", true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			key := stringKey
			switch fe.Kind() {
			case reflect.Slice, reflect.Array, reflect.Map:
				key = sliceKey
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
				reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
				reflect.Float32, reflect.Float64:
				key = numberKey
			}
			t, _ := ut.T(key, translateField(fe), fe.Param())
			return t
		})
	}
}

// NewValidationErrorResponse は検証エラーを INVALID_INPUT の AppError に変換します。
// field には最初のエラーの項目パス (例: flashcards[0].front) を入れる
func NewValidationErrorResponse(errs validator.ValidationErrors) *model.AppError {
	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		messages = append(messages, fe.Translate(Trans))
	}

	field := ""
	if len(errs) > 0 {
		field = fieldPath(errs[0])
	}

	return model.NewAppError(
		model.CodeInvalidInput,
		strings.Join(messages, " "),
		field,
		fmt.Errorf("%w: %v", model.ErrInvalidInput, errs),
	)
}

// fieldPath は Namespace から先頭の構造体名を取り除いたパスを返します
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
