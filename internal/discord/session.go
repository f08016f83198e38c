package discord

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/vytor/flashcord/internal/logger"
)

// HistoryChannelName is the text channel holding the challenge history
// message. It is excluded from folder listings.
const HistoryChannelName = "challengehistory"

// categoryKeyword selects the category whose channels become folders.
const categoryKeyword = "flashcard"

// State tracks the session lifecycle.
type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateDiscovering  State = "discovering"
	StateReady        State = "ready"
)

// SessionContext holds the identifiers resolved by discovery. It is
// immutable once produced; CategoryID or HistoryChannelID may be empty
// when the guild has no matching category or channel.
type SessionContext struct {
	GuildID          string
	CategoryID       string
	HistoryChannelID string
}

// Config holds the configuration for the Discord session.
type Config struct {
	// Discord bot token
	Token string
}

// Session wraps the discordgo gateway session and owns discovery of the
// guild, the flashcard category, and the history channel.
type Session struct {
	dg  *discordgo.Session
	log *logger.Logger

	mu       sync.RWMutex
	state    State
	sctx     *SessionContext
	discover sync.Once
}

// New creates a Discord session for the given config. The connection is
// not opened until Open is called.
func New(cfg *Config) (*Session, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	s := &Session{
		dg:    dg,
		log:   logger.Default().WithPrefix("discord"),
		state: StateDisconnected,
	}

	dg.AddHandler(s.onReady)
	dg.AddHandler(s.onGuildCreate)
	dg.AddHandler(s.onDisconnect)

	return s, nil
}

// Open connects to the Discord gateway. Reconnection after a dropped
// connection is handled by discordgo itself.
func (s *Session) Open() error {
	s.setState(StateConnecting)
	if err := s.dg.Open(); err != nil {
		s.setState(StateDisconnected)
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}
	return nil
}

// Close shuts down the gateway connection.
func (s *Session) Close() error {
	s.setState(StateDisconnected)
	return s.dg.Close()
}

// Messenger returns the API surface used by service operations. Calls
// against it must run on the session bridge worker.
func (s *Session) Messenger() Messenger {
	return s.dg
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Ready reports whether the handshake and discovery have completed.
func (s *Session) Ready() bool {
	return s.State() == StateReady
}

// Context returns the discovered session context. The second return is
// false until discovery has run.
func (s *Session) Context() (SessionContext, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sctx == nil {
		return SessionContext{}, false
	}
	return *s.sctx, true
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *Session) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	s.log.Info("logged in as %s", r.User.String())

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sctx != nil {
		// Reconnect after discovery already ran.
		s.state = StateReady
		return
	}
	s.state = StateDiscovering
}

// onGuildCreate performs discovery against the first guild seen. Guild
// payloads arrive after Ready and carry the full channel list, so no
// extra REST call is needed.
func (s *Session) onGuildCreate(_ *discordgo.Session, g *discordgo.GuildCreate) {
	s.discover.Do(func() {
		s.log.Info("connected to guild: %s", g.Name)

		sctx := &SessionContext{GuildID: g.ID}

		for _, ch := range g.Channels {
			if ch.Type != discordgo.ChannelTypeGuildCategory {
				continue
			}
			if strings.Contains(strings.ToLower(ch.Name), categoryKeyword) {
				sctx.CategoryID = ch.ID
				s.log.Info("found flashcard category: %s", ch.Name)
				break
			}
		}
		if sctx.CategoryID == "" {
			s.log.Warn("no category containing %q found", categoryKeyword)
		}

		for _, ch := range g.Channels {
			if ch.Type != discordgo.ChannelTypeGuildText {
				continue
			}
			if strings.EqualFold(ch.Name, HistoryChannelName) {
				sctx.HistoryChannelID = ch.ID
				s.log.Info("found challenge history channel: %s", ch.Name)
				break
			}
		}
		if sctx.HistoryChannelID == "" {
			s.log.Warn("no channel named %q found", HistoryChannelName)
		}

		s.mu.Lock()
		s.sctx = sctx
		s.state = StateReady
		s.mu.Unlock()
	})
}

func (s *Session) onDisconnect(_ *discordgo.Session, _ *discordgo.Disconnect) {
	s.log.Warn("gateway connection lost")
	s.setState(StateDisconnected)
}
