// internal/handlers/learn_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/service"
	"go_flashcard_keep/internal/webutil"
)

type LearnHandler struct {
	service      service.LearnService
	defaultLimit int
	logger       *slog.Logger
}

func NewLearnHandler(s service.LearnService, defaultLimit int, logger *slog.Logger) *LearnHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if defaultLimit <= 0 || defaultLimit > model.ReviewBatchMax {
		defaultLimit = 50
	}
	return &LearnHandler{
		service:      s,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

// parseLimit は limit クエリを 1〜100 の整数として解釈します。未指定ならデフォルト値
func (h *LearnHandler) parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return h.defaultLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > model.ReviewBatchMax {
		return 0, model.NewAppError(model.CodeInvalidInput, "取得件数は1〜100で指定してください。", "limit", model.ErrInvalidInput)
	}
	return limit, nil
}

// FetchDue はデッキから学習対象のカードを返すハンドラ
func (h *LearnHandler) FetchDue(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "FetchDue")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	deckID, ok := uuidParam(w, r, logger, "deckId")
	if !ok {
		return
	}
	limit, err := h.parseLimit(r)
	if err != nil {
		logger.Warn("Invalid limit query", slog.String("limit", r.URL.Query().Get("limit")))
		webutil.HandleError(w, logger, err)
		return
	}

	due, err := h.service.FetchDue(r.Context(), userID, deckID, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	cards := due.Flashcards
	if cards == nil {
		cards = []*model.Flashcard{}
	}

	logger.Info("Due flashcards fetched",
		slog.String("deck_id", deckID.String()),
		slog.Int("returned", due.Meta.Returned),
		slog.Int("total_due", due.Meta.TotalDue),
	)
	webutil.RespondWithJSON(w, http.StatusOK, model.DataResponse{Data: cards, Meta: due.Meta}, logger)
}

// SubmitReviews は回答結果をまとめて反映するハンドラ
func (h *LearnHandler) SubmitReviews(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "SubmitReviews")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	var req model.ReviewRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	result, err := h.service.ApplyReviews(r.Context(), userID, req.Review)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Reviews submitted", slog.Int("submitted", len(req.Review)), slog.Int("updated", result.Updated))
	webutil.RespondWithData(w, http.StatusOK, result, logger)
}
