package services

import (
	"context"

	"github.com/vytor/flashcord/internal/bridge"
	"github.com/vytor/flashcord/internal/discord"
)

// Session provides the discovered guild state and Discord API access.
// *discord.Session satisfies it.
type Session interface {
	Context() (discord.SessionContext, bool)
	Messenger() discord.Messenger
}

// Submitter schedules operations on the session bridge. *bridge.Bridge
// satisfies it.
type Submitter interface {
	Submit(ctx context.Context, name string, op bridge.Operation) error
}
