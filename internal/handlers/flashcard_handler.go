// internal/handlers/flashcard_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/service"
	"go_flashcard_keep/internal/webutil"

	"github.com/google/uuid"
)

type FlashcardHandler struct {
	service service.FlashcardService
	logger  *slog.Logger
}

func NewFlashcardHandler(s service.FlashcardService, logger *slog.Logger) *FlashcardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FlashcardHandler{
		service: s,
		logger:  logger,
	}
}

// parseFlashcardFilter はクエリ文字列を検証して絞り込み条件に変換します
func parseFlashcardFilter(r *http.Request) (model.FlashcardFilter, error) {
	q := r.URL.Query()
	query := model.FlashcardListQuery{
		DeckID:          q.Get("deck_id"),
		Unassigned:      q.Get("unassigned"),
		Source:          q.Get("source"),
		SpaceRepetition: q.Get("space_repetition"),
		Sort:            q.Get("sort"),
	}
	if err := webutil.ValidateStruct(query); err != nil {
		return model.FlashcardFilter{}, err
	}

	filter := model.FlashcardFilter{
		Unassigned: query.Unassigned == "true",
		Sort:       model.FlashcardSort(query.Sort),
	}
	if query.DeckID != "" {
		id := uuid.MustParse(query.DeckID) // 検証済み
		filter.DeckID = &id
	}
	if filter.DeckID != nil && filter.Unassigned {
		return model.FlashcardFilter{}, model.NewAppError(model.CodeInvalidInput, "deck_id と unassigned は同時に指定できません。", "deck_id", model.ErrInvalidInput)
	}
	if query.Source != "" {
		source := model.FlashcardSource(query.Source)
		filter.Source = &source
	}
	if query.SpaceRepetition != "" {
		status := model.SpaceRepetition(query.SpaceRepetition)
		filter.SpaceRepetition = &status
	}
	return filter, nil
}

// ListFlashcards はフラッシュカード一覧を返すハンドラ
func (h *FlashcardHandler) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "ListFlashcards")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	filter, err := parseFlashcardFilter(r)
	if err != nil {
		logger.Warn("Invalid flashcard list query", slog.String("query", r.URL.RawQuery), slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	cards, err := h.service.ListFlashcards(r.Context(), userID, filter)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if cards == nil {
		cards = []*model.Flashcard{}
	}

	logger.Info("Flashcards listed successfully", slog.Int("count", len(cards)))
	webutil.RespondWithData(w, http.StatusOK, cards, logger)
}

func (h *FlashcardHandler) GetFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "GetFlashcard")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	cardID, ok := uuidParam(w, r, logger, "id")
	if !ok {
		return
	}

	card, err := h.service.GetFlashcard(r.Context(), userID, cardID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithData(w, http.StatusOK, card, logger)
}

// CreateFlashcards はフラッシュカードを一括作成するハンドラ
func (h *FlashcardHandler) CreateFlashcards(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "CreateFlashcards")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	var req model.CreateFlashcardsRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	cards, err := h.service.CreateFlashcards(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Flashcards created successfully", slog.Int("count", len(cards)), slog.String("source", string(req.Source)))
	webutil.RespondWithData(w, http.StatusCreated, cards, logger)
}

// UpdateFlashcard は表面・裏面・所属デッキを部分更新するハンドラ
func (h *FlashcardHandler) UpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "UpdateFlashcard")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	cardID, ok := uuidParam(w, r, logger, "id")
	if !ok {
		return
	}

	var req model.UpdateFlashcardRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	card, err := h.service.UpdateFlashcard(r.Context(), userID, cardID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Flashcard updated successfully", slog.String("flashcard_id", card.ID.String()))
	webutil.RespondWithData(w, http.StatusOK, card, logger)
}

func (h *FlashcardHandler) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "DeleteFlashcard")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	cardID, ok := uuidParam(w, r, logger, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteFlashcard(r.Context(), userID, cardID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Flashcard deleted successfully", slog.String("flashcard_id", cardID.String()))
	webutil.RespondNoContent(w)
}
