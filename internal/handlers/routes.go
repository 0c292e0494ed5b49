// internal/handlers/routes.go
package handlers

import (
	"github.com/go-chi/chi/v5"
)

// Handlers はAPIのハンドラ一式
type Handlers struct {
	Deck       *DeckHandler
	Flashcard  *FlashcardHandler
	Generation *GenerationHandler
	Learn      *LearnHandler
}

// RegisterRoutes は /api 配下のルートを登録します。認証ミドルウェアは呼び出し側で r に適用しておくこと
func RegisterRoutes(r chi.Router, h Handlers) {
	r.Route("/decks", func(r chi.Router) {
		r.Post("/", h.Deck.CreateDeck)
		r.Get("/", h.Deck.ListDecks)
		r.Get("/{id}", h.Deck.GetDeck)
		r.Patch("/{id}", h.Deck.RenameDeck)
		r.Delete("/{id}", h.Deck.DeleteDeck)
		r.Post("/{id}/reset-progress", h.Deck.ResetProgress)
	})

	r.Route("/flashcards", func(r chi.Router) {
		r.Get("/", h.Flashcard.ListFlashcards)
		r.Post("/", h.Flashcard.CreateFlashcards)
		r.Get("/{id}", h.Flashcard.GetFlashcard)
		r.Patch("/{id}", h.Flashcard.UpdateFlashcard)
		r.Delete("/{id}", h.Flashcard.DeleteFlashcard)
	})

	r.Route("/generations", func(r chi.Router) {
		r.Post("/", h.Generation.Generate)
		r.Get("/", h.Generation.ListGenerations)
		r.Post("/check-duplicate", h.Generation.CheckDuplicate)
		r.Get("/{sessionId}", h.Generation.GetGeneration)
		r.Patch("/{sessionId}/accepted", h.Generation.UpdateAcceptedTotal)
	})

	r.Route("/learn", func(r chi.Router) {
		r.Patch("/review", h.Learn.SubmitReviews)
		r.Get("/{deckId}", h.Learn.FetchDue)
	})
}
