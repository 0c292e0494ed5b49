// internal/handlers/generation_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/service"
	"go_flashcard_keep/internal/webutil"
)

type GenerationHandler struct {
	service service.GenerationService
	logger  *slog.Logger
}

func NewGenerationHandler(s service.GenerationService, logger *slog.Logger) *GenerationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GenerationHandler{
		service: s,
		logger:  logger,
	}
}

// Generate は入力テキストからフラッシュカード候補を生成するハンドラ。候補は保存しない
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "Generate")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	var req model.GenerateRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	result, err := h.service.Generate(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Generation completed",
		slog.String("session_id", result.SessionID.String()),
		slog.Int("generated_total", result.GeneratedTotal),
	)
	webutil.RespondWithData(w, http.StatusOK, result, logger)
}

// CheckDuplicate は同じ入力テキストの生成履歴があるかを返すハンドラ
func (h *GenerationHandler) CheckDuplicate(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "CheckDuplicate")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	var req model.DuplicateCheckRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	result, err := h.service.CheckDuplicate(r.Context(), userID, req.InputText)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithData(w, http.StatusOK, result, logger)
}

// ListGenerations は直近の生成履歴を返すハンドラ
func (h *GenerationHandler) ListGenerations(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "ListGenerations")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	sessions, err := h.service.ListGenerations(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if sessions == nil {
		sessions = []*model.GenerationSession{}
	}
	webutil.RespondWithData(w, http.StatusOK, sessions, logger)
}

func (h *GenerationHandler) GetGeneration(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "GetGeneration")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(w, r, logger, "sessionId")
	if !ok {
		return
	}

	session, err := h.service.GetGeneration(r.Context(), userID, sessionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithData(w, http.StatusOK, session, logger)
}

// UpdateAcceptedTotal は生成候補のうち保存された枚数を記録するハンドラ
func (h *GenerationHandler) UpdateAcceptedTotal(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, h.logger, "UpdateAcceptedTotal")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(w, r, logger, "sessionId")
	if !ok {
		return
	}

	var req model.UpdateAcceptedTotalRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	session, err := h.service.UpdateAcceptedTotal(r.Context(), userID, sessionID, *req.AcceptedTotal)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithData(w, http.StatusOK, session, logger)
}
