package services_test

import (
	"context"

	"github.com/vytor/flashcord/internal/bridge"
	"github.com/vytor/flashcord/internal/discord"
	"github.com/vytor/flashcord/internal/testutil/mocks"
)

// fakeSession hands out a fixed session context, standing in for the
// discovered Discord session.
type fakeSession struct {
	sctx       discord.SessionContext
	discovered bool
	messenger  *mocks.MockMessenger
}

func (f *fakeSession) Context() (discord.SessionContext, bool) {
	return f.sctx, f.discovered
}

func (f *fakeSession) Messenger() discord.Messenger {
	return f.messenger
}

// inlineSubmitter runs operations synchronously and counts submissions,
// so tests can verify what reaches the bridge.
type inlineSubmitter struct {
	calls int
	err   error
}

func (s *inlineSubmitter) Submit(ctx context.Context, name string, op bridge.Operation) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	return op(ctx)
}
