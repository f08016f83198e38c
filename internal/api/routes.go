package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Get("/flashcard-lists", s.handleFlashcardLists)
	r.Get("/flashcard-folder/{folderID}", s.handleFlashcardFolder)
	r.Get("/challenge-history", s.handleChallengeHistory)
	r.Get("/folder-statistics/{folderID}", s.handleFolderStatistics)
	r.Post("/done-challenge/{folderID}", s.handleDoneChallenge)

	return r
}
