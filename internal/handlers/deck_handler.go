// internal/handlers/deck_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/service"
	"go_flashcard_keep/internal/webutil"
)

type DeckHandler struct {
	service service.DeckService
	logger  *slog.Logger
}

func NewDeckHandler(s service.DeckService, logger *slog.Logger) *DeckHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeckHandler{
		service: s,
		logger:  logger,
	}
}

// CreateDeck は新しいデッキを作成するためのハンドラ
func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "CreateDeck")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	var req model.CreateDeckRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	deck, err := h.service.CreateDeck(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Deck created successfully", slog.String("deck_id", deck.ID.String()))
	webutil.RespondWithData(w, http.StatusOK, model.CreateDeckResponse{ID: deck.ID}, logger)
}

// ListDecks はデッキ一覧 (カード数付き) を返すハンドラ
func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "ListDecks")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	query := model.DeckListQuery{Sort: model.DeckSort(r.URL.Query().Get("sort"))}
	if err := webutil.ValidateStruct(query); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	decks, err := h.service.ListDecks(r.Context(), userID, query.Sort)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if decks == nil {
		decks = []*model.DeckWithCount{}
	}

	logger.Info("Decks listed successfully", slog.Int("count", len(decks)))
	webutil.RespondWithData(w, http.StatusOK, decks, logger)
}

func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "GetDeck")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	deckID, ok := uuidParam(w, r, logger, "id")
	if !ok {
		return
	}

	deck, err := h.service.GetDeck(r.Context(), userID, deckID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithData(w, http.StatusOK, deck, logger)
}

// RenameDeck はデッキ名を変更するハンドラ
func (h *DeckHandler) RenameDeck(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "RenameDeck")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	deckID, ok := uuidParam(w, r, logger, "id")
	if !ok {
		return
	}

	var req model.RenameDeckRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	deck, err := h.service.RenameDeck(r.Context(), userID, deckID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Deck renamed successfully", slog.String("deck_id", deck.ID.String()))
	webutil.RespondWithData(w, http.StatusOK, deck, logger)
}

func (h *DeckHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "DeleteDeck")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	deckID, ok := uuidParam(w, r, logger, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteDeck(r.Context(), userID, deckID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Deck deleted successfully", slog.String("deck_id", deckID.String()))
	webutil.RespondNoContent(w)
}

// ResetProgress はデッキ内の学習状態をすべて未確認に戻すハンドラ
func (h *DeckHandler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "ResetProgress")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	deckID, ok := uuidParam(w, r, logger, "id")
	if !ok {
		return
	}

	if err := h.service.ResetProgress(r.Context(), userID, deckID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondNoContent(w)
}
