package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/flashcord/internal/discord"
	"github.com/vytor/flashcord/internal/errors"
	"github.com/vytor/flashcord/internal/logger"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"message": "Discord Flashcard Bot API is running",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	state := s.Session.State()

	body := map[string]any{
		"status":     "healthy",
		"bot_status": string(state),
	}
	if state == discord.StateReady {
		body["bot_status"] = "connected"
	}

	if sctx, ok := s.Session.Context(); ok {
		body["guild_status"] = "discovered"
		body["guild_id"] = sctx.GuildID
		if sctx.CategoryID != "" {
			body["flashcard_category_id"] = sctx.CategoryID
		}
		if sctx.HistoryChannelID != "" {
			body["history_channel_id"] = sctx.HistoryChannelID
		}
	} else {
		body["guild_status"] = "pending"
	}

	writeJSON(w, r, http.StatusOK, body)
}

func (s *Server) handleFlashcardLists(w http.ResponseWriter, r *http.Request) {
	folders, err := s.Flashcards.ListFolders(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, folders)
}

func (s *Server) handleFlashcardFolder(w http.ResponseWriter, r *http.Request) {
	folderID := chi.URLParam(r, "folderID")

	flashcards, err := s.Flashcards.ListFlashcards(r.Context(), folderID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, flashcards)
}

func (s *Server) handleChallengeHistory(w http.ResponseWriter, r *http.Request) {
	records, err := s.History.ChallengeHistory(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"challenge_history": records,
		"total_challenges":  len(records),
	})
}

func (s *Server) handleFolderStatistics(w http.ResponseWriter, r *http.Request) {
	folderID := chi.URLParam(r, "folderID")

	stats, err := s.History.FolderStatistics(r.Context(), folderID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, stats)
}

// challengeResultRequest is the body of POST /done-challenge/{folderID}.
// Both counts are required.
type challengeResultRequest struct {
	Correct   *int `json:"correct"`
	Incorrect *int `json:"incorrect"`
}

func (s *Server) handleDoneChallenge(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	folderID := chi.URLParam(r, "folderID")

	var req challengeResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("malformed done-challenge body: %v", err)
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}
	if req.Correct == nil || req.Incorrect == nil {
		handleError(w, r, errors.NewValidationError("counts", "correct and incorrect are required"))
		return
	}

	if err := s.History.RecordChallenge(r.Context(), folderID, *req.Correct, *req.Incorrect); err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"message":   "Challenge history updated successfully",
		"folder_id": folderID,
		"correct":   *req.Correct,
		"incorrect": *req.Incorrect,
	})
}
