// internal/service/generation_service.go
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"go_flashcard_keep/internal/config"
	"go_flashcard_keep/internal/middleware"
	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	// 入力文字数あたりのカード1枚の目安
	charsPerFlashcard  = 150
	minTargetFlashcard = 10
	maxTargetFlashcard = 50
)

//go:generate mockery --name GenerationService --output ./mocks --outpkg mocks --case=underscore
type GenerationService interface {
	Generate(ctx context.Context, userID uuid.UUID, req *model.GenerateRequest) (*model.GenerationResult, error)
	CheckDuplicate(ctx context.Context, userID uuid.UUID, inputText string) (*model.DuplicateCheckResult, error)
	ListGenerations(ctx context.Context, userID uuid.UUID) ([]*model.GenerationSession, error)
	GetGeneration(ctx context.Context, userID, sessionID uuid.UUID) (*model.GenerationSession, error)
	UpdateAcceptedTotal(ctx context.Context, userID, sessionID uuid.UUID, acceptedTotal int) (*model.GenerationSession, error)
}

type generationService struct {
	db        *gorm.DB
	genRepo   repository.GenerationRepository
	completer Completer
	aiCfg     config.AIConfig
	genCfg    config.GenerationConfig
	loc       *time.Location
	now       func() time.Time
}

func NewGenerationService(db *gorm.DB, genRepo repository.GenerationRepository, completer Completer, cfg *config.Config) GenerationService {
	return &generationService{
		db:        db,
		genRepo:   genRepo,
		completer: completer,
		aiCfg:     cfg.AI,
		genCfg:    cfg.Generation,
		loc:       cfg.Generation.Location(),
		now:       time.Now,
	}
}

// NormalizeInputText は連続する空白を1つにまとめ、前後の空白を除きます
func NormalizeInputText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// HashInputText は正規化した入力テキストの sha256 (16進) を返します
func HashInputText(text string) string {
	sum := sha256.Sum256([]byte(NormalizeInputText(text)))
	return hex.EncodeToString(sum[:])
}

// sanitizeInputText は正規化したうえで maxChars 文字に切り詰めます
func sanitizeInputText(text string, maxChars int) string {
	normalized := NormalizeInputText(text)
	if maxChars > 0 && utf8.RuneCountInString(normalized) > maxChars {
		normalized = string([]rune(normalized)[:maxChars])
	}
	return normalized
}

// TargetFlashcardCount は入力文字数から生成枚数の目安を求めます: clamp(floor(length/150), 10, 50)
func TargetFlashcardCount(length int) int {
	n := length / charsPerFlashcard
	if n < minTargetFlashcard {
		return minTargetFlashcard
	}
	if n > maxTargetFlashcard {
		return maxTargetFlashcard
	}
	return n
}

func flashcardResponseSchema() *JSONSchema {
	return &JSONSchema{
		Type: SchemaObject,
		Properties: map[string]*JSONSchema{
			"flashcards": {
				Type:     SchemaArray,
				MinItems: 1,
				MaxItems: model.FlashcardsPerRequestMax,
				Items: &JSONSchema{
					Type: SchemaObject,
					Properties: map[string]*JSONSchema{
						"front": {Type: SchemaString, Description: "question", MaxLength: model.FlashcardFrontMaxLength},
						"back":  {Type: SchemaString, Description: "answer", MaxLength: model.FlashcardBackMaxLength},
					},
					Required: []string{"front", "back"},
				},
			},
		},
		Required: []string{"flashcards"},
	}
}

func buildGenerationPrompt(text string, target int) []CompletionMessage {
	system := fmt.Sprintf("You create study flashcards from the text the user provides. "+
		"Each flashcard has a front (a question or term, at most %d characters) and a back "+
		"(the answer or explanation, at most %d characters). "+
		"Cover the most important facts and concepts, avoid duplicates, and write in the same language as the text. "+
		"Respond only with JSON that matches the schema.",
		model.FlashcardFrontMaxLength, model.FlashcardBackMaxLength)
	user := fmt.Sprintf("Create about %d flashcards from the following text.\n\n%s", target, text)
	return []CompletionMessage{
		{Role: RoleSystem, Content: system},
		{Role: RoleUser, Content: user},
	}
}

type completionPayload struct {
	Flashcards []struct {
		Front string `json:"front"`
		Back  string `json:"back"`
	} `json:"flashcards"`
}

// parseProposals は補完APIの応答を検証してカード候補に変換します
func parseProposals(raw string) ([]model.FlashcardProposal, error) {
	body := strings.TrimSpace(raw)
	// コードフェンス付きで返ってくることがある
	body = strings.TrimPrefix(body, "```json")
	body = strings.TrimPrefix(body, "```")
	body = strings.TrimSuffix(body, "```")
	body = strings.TrimSpace(body)

	var payload completionPayload
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}
	if len(payload.Flashcards) == 0 || len(payload.Flashcards) > model.FlashcardsPerRequestMax {
		return nil, fmt.Errorf("response has %d flashcards, want 1..%d", len(payload.Flashcards), model.FlashcardsPerRequestMax)
	}

	proposals := make([]model.FlashcardProposal, 0, len(payload.Flashcards))
	for i, fc := range payload.Flashcards {
		front := strings.TrimSpace(fc.Front)
		back := strings.TrimSpace(fc.Back)
		if front == "" || back == "" {
			return nil, fmt.Errorf("flashcard %d has empty front or back", i)
		}
		if utf8.RuneCountInString(front) > model.FlashcardFrontMaxLength {
			return nil, fmt.Errorf("flashcard %d front exceeds %d characters", i, model.FlashcardFrontMaxLength)
		}
		if utf8.RuneCountInString(back) > model.FlashcardBackMaxLength {
			return nil, fmt.Errorf("flashcard %d back exceeds %d characters", i, model.FlashcardBackMaxLength)
		}
		proposals = append(proposals, model.FlashcardProposal{Front: front, Back: back, Source: model.SourceAIFull})
	}
	return proposals, nil
}

// startOfDay は loc における当日0時を返します
func startOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

func (s *generationService) Generate(ctx context.Context, userID uuid.UUID, req *model.GenerateRequest) (*model.GenerationResult, error) {
	logger := middleware.GetLogger(ctx)

	length := utf8.RuneCountInString(req.InputText)
	if length < model.GenerationInputMinLength || length > model.GenerationInputMaxLength {
		return nil, model.NewAppError(model.CodeInvalidInput, "入力テキストは1000〜10000文字で入力してください。", "input_text", model.ErrInvalidInput)
	}
	inputHash := HashInputText(req.InputText)

	// 1. 重複チェック (設定で有効な場合のみ拒否する)
	if s.genCfg.RejectDuplicates {
		existing, err := s.genRepo.FindLatestSessionByHash(ctx, s.db, userID, inputHash)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return nil, model.NewDatabaseError("生成履歴の確認に失敗しました。", err)
		}
		if existing != nil {
			logger.Info("Duplicate generation rejected", "existing_session_id", existing.SessionID.String())
			return nil, model.NewAppError(model.CodeDuplicateGeneration, "同じテキストから既に生成されています。", "input_text", model.ErrConflict)
		}
	}

	// 2. 日次上限チェックと 3. pending セッションの作成
	session := &model.GenerationSession{
		SessionID:       uuid.New(),
		UserID:          userID,
		InputTextHash:   inputHash,
		InputTextLength: length,
		Model:           s.aiCfg.Model,
		Status:          model.GenerationStatusPending,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := s.genRepo.CountSessionsSince(ctx, tx, userID, startOfDay(s.now(), s.loc).UTC())
		if err != nil {
			return err
		}
		if count >= int64(s.genCfg.DailyLimit) {
			logger.Warn("Daily generation limit exceeded", "count", count, "limit", s.genCfg.DailyLimit)
			return model.NewAppError(model.CodeDailyLimitExceeded,
				fmt.Sprintf("本日の生成回数の上限 (%d回) に達しました。", s.genCfg.DailyLimit), "", model.ErrTooManyRequests)
		}
		return s.genRepo.CreateSession(ctx, tx, session)
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, model.NewDatabaseError("生成セッションの作成に失敗しました。", err)
	}
	logger = logger.With("session_id", session.SessionID.String())

	// 4. 入力の整形と 5. 生成枚数の決定
	text := sanitizeInputText(req.InputText, s.genCfg.MaxInputChars)
	target := TargetFlashcardCount(utf8.RuneCountInString(text))

	// 6. 補完APIの呼び出し
	callCtx, cancel := context.WithTimeout(ctx, s.aiCfg.Timeout)
	defer cancel()
	startedAt := time.Now()
	raw, err := s.completer.Complete(callCtx, CompletionRequest{
		Model:       s.aiCfg.Model,
		Messages:    buildGenerationPrompt(text, target),
		Schema:      flashcardResponseSchema(),
		Temperature: s.aiCfg.Temperature,
	})
	if err != nil {
		appErr, upstreamStatus := mapCompletionError(err)
		s.recordFailure(ctx, session, appErr, upstreamStatus, err)
		return nil, appErr
	}

	// 7. 応答の検証
	proposals, err := parseProposals(raw)
	if err != nil {
		appErr := model.NewAppError(model.CodeAIResponseInvalid, "AIの応答形式が正しくありません。", "", fmt.Errorf("%w: %v", model.ErrUpstream, err))
		s.recordFailure(ctx, session, appErr, 0, err)
		return nil, appErr
	}

	// 8. 成功として確定
	if err := s.genRepo.FinalizeSession(ctx, s.db, userID, session.SessionID, model.GenerationStatusSuccess, len(proposals)); err != nil {
		return nil, model.NewDatabaseError("生成セッションの更新に失敗しました。", err)
	}

	logger.Info("Generation succeeded",
		"target", target,
		"generated_total", len(proposals),
		"elapsed_ms", time.Since(startedAt).Milliseconds(),
	)
	return &model.GenerationResult{
		SessionID:           session.SessionID,
		Status:              model.GenerationStatusSuccess,
		GeneratedTotal:      len(proposals),
		FlashcardsProposals: proposals,
	}, nil
}

// mapCompletionError は補完APIのエラーを AppError に変換します。2つ目の戻り値は上流のステータス
func mapCompletionError(err error) (*model.AppError, int) {
	if errors.Is(err, context.DeadlineExceeded) {
		return model.NewAppError(model.CodeAITimeout, "AIの応答がタイムアウトしました。時間をおいて再度お試しください。", "",
			fmt.Errorf("%w: %v", model.ErrTooManyRequests, err)), 0
	}

	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		if upErr.StatusCode == http.StatusTooManyRequests {
			return model.NewAppError(model.CodeAIGenerationError, "AIサービスが混み合っています。時間をおいて再度お試しください。", "",
				fmt.Errorf("%w: %v", model.ErrTooManyRequests, err)).WithStatus(http.StatusTooManyRequests), upErr.StatusCode
		}
		return model.NewAppError(model.CodeAIGenerationError, "AIによる生成に失敗しました。", "",
			fmt.Errorf("%w: %v", model.ErrUpstream, err)), upErr.StatusCode
	}

	return model.NewAppError(model.CodeAIGenerationError, "AIによる生成に失敗しました。", "",
		fmt.Errorf("%w: %v", model.ErrUpstream, err)), 0
}

// recordFailure はセッションを error で確定し、GenerationError を保存します。
// ここでの失敗はログに残すだけで、呼び出し元には元のエラーを返す
func (s *generationService) recordFailure(ctx context.Context, session *model.GenerationSession, appErr *model.AppError, upstreamStatus int, cause error) {
	logger := middleware.GetLogger(ctx).With("session_id", session.SessionID.String())
	// リクエストがキャンセルされていても記録は残す
	ctx = context.WithoutCancel(ctx)

	details, err := json.Marshal(model.GenerationErrorDetails{
		Model:           session.Model,
		InputTextLength: session.InputTextLength,
		UpstreamStatus:  upstreamStatus,
		Cause:           cause.Error(),
	})
	if err != nil {
		logger.Error("Failed to marshal generation error details", "error", err)
		details = nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.genRepo.FinalizeSession(ctx, tx, session.UserID, session.SessionID, model.GenerationStatusError, 0); err != nil {
			return err
		}
		return s.genRepo.CreateError(ctx, tx, &model.GenerationError{
			SessionID: session.SessionID,
			UserID:    session.UserID,
			ErrorCode: appErr.Detail.Code,
			Message:   appErr.Detail.Message,
			Details:   datatypes.JSON(details),
		})
	})
	if err != nil {
		logger.Error("Failed to record generation failure", "error", err, "code", appErr.Detail.Code)
		return
	}
	logger.Warn("Generation failed", "code", appErr.Detail.Code, "upstream_status", upstreamStatus, "cause", cause)
}

// CheckDuplicate は同じ入力テキストから生成したセッションがあるかを返します
func (s *generationService) CheckDuplicate(ctx context.Context, userID uuid.UUID, inputText string) (*model.DuplicateCheckResult, error) {
	existing, err := s.genRepo.FindLatestSessionByHash(ctx, s.db, userID, HashInputText(inputText))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return &model.DuplicateCheckResult{Duplicate: false}, nil
		}
		return nil, model.NewDatabaseError("生成履歴の確認に失敗しました。", err)
	}
	id := existing.SessionID
	return &model.DuplicateCheckResult{Duplicate: true, SessionID: &id}, nil
}

// ListGenerations は直近30日の生成履歴を新しい順に最大100件返します
func (s *generationService) ListGenerations(ctx context.Context, userID uuid.UUID) ([]*model.GenerationSession, error) {
	since := s.now().AddDate(0, 0, -model.GenerationHistoryDays).UTC()
	sessions, err := s.genRepo.FindSessionsSince(ctx, s.db, userID, since, model.GenerationHistoryLimit)
	if err != nil {
		return nil, model.NewDatabaseError("生成履歴の取得に失敗しました。", err)
	}
	return sessions, nil
}

func errGenerationNotFound() *model.AppError {
	return model.NewAppError(model.CodeGenerationNotFound, "生成セッションが見つかりません。", "", model.ErrNotFound)
}

func (s *generationService) GetGeneration(ctx context.Context, userID, sessionID uuid.UUID) (*model.GenerationSession, error) {
	session, err := s.genRepo.FindSessionByID(ctx, s.db, userID, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errGenerationNotFound()
		}
		return nil, model.NewDatabaseError("生成セッションの取得に失敗しました。", err)
	}
	if session.Status != model.GenerationStatusError {
		return session, nil
	}

	genErr, err := s.genRepo.FindErrorBySession(ctx, s.db, userID, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return session, nil
		}
		return nil, model.NewDatabaseError("生成エラーの取得に失敗しました。", err)
	}
	session.Error = genErr
	return session, nil
}

// UpdateAcceptedTotal は採用されたカード数を記録します。generated_total を超える値は拒否する
func (s *generationService) UpdateAcceptedTotal(ctx context.Context, userID, sessionID uuid.UUID, acceptedTotal int) (*model.GenerationSession, error) {
	logger := middleware.GetLogger(ctx)

	if acceptedTotal < 0 {
		return nil, model.NewAppError(model.CodeInvalidInput, "採用数は0以上で指定してください。", "accepted_total", model.ErrInvalidInput)
	}

	var updated *model.GenerationSession
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session, err := s.genRepo.FindSessionByID(ctx, tx, userID, sessionID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return errGenerationNotFound()
			}
			return err
		}
		if acceptedTotal > session.GeneratedTotal {
			return model.NewAppError(model.CodeExceedsGeneratedTotal,
				fmt.Sprintf("採用数は生成数 (%d) 以下で指定してください。", session.GeneratedTotal), "accepted_total", model.ErrInvalidInput)
		}
		if err := s.genRepo.UpdateAcceptedTotal(ctx, tx, userID, sessionID, acceptedTotal); err != nil {
			return err
		}
		updated, err = s.genRepo.FindSessionByID(ctx, tx, userID, sessionID)
		return err
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, model.NewDatabaseError("採用数の更新に失敗しました。", err)
	}

	logger.Info("Accepted total updated", "session_id", sessionID.String(), "accepted_total", acceptedTotal)
	return updated, nil
}
