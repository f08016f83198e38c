package api

import (
	"github.com/vytor/flashcord/internal/discord"
	"github.com/vytor/flashcord/internal/services"
)

// SessionStatus exposes the Discord session lifecycle to the health
// endpoint. *discord.Session satisfies it.
type SessionStatus interface {
	State() discord.State
	Ready() bool
	Context() (discord.SessionContext, bool)
}

type Server struct {
	Flashcards services.FlashcardService
	History    services.HistoryService
	Session    SessionStatus
}
