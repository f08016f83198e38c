package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guildCreate(id string, channels ...*discordgo.Channel) *discordgo.GuildCreate {
	return &discordgo.GuildCreate{Guild: &discordgo.Guild{
		ID:       id,
		Name:     "test guild",
		Channels: channels,
	}}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(&Config{Token: "test-token"})
	require.NoError(t, err)
	return s
}

func TestNew_RequiresConfigAndToken(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(&Config{})
	assert.Error(t, err)
}

func TestDiscovery_FindsCategoryAndHistoryChannel(t *testing.T) {
	s := newTestSession(t)

	s.onGuildCreate(nil, guildCreate("g1",
		&discordgo.Channel{ID: "cat1", Name: "My Flashcards", Type: discordgo.ChannelTypeGuildCategory},
		&discordgo.Channel{ID: "ch1", Name: "biology", Type: discordgo.ChannelTypeGuildText, ParentID: "cat1"},
		&discordgo.Channel{ID: "ch2", Name: "ChallengeHistory", Type: discordgo.ChannelTypeGuildText},
	))

	sctx, ok := s.Context()
	require.True(t, ok)
	assert.Equal(t, "g1", sctx.GuildID)
	assert.Equal(t, "cat1", sctx.CategoryID)
	assert.Equal(t, "ch2", sctx.HistoryChannelID)
	assert.Equal(t, StateReady, s.State())
	assert.True(t, s.Ready())
}

func TestDiscovery_CategoryMatchIsCaseInsensitiveSubstring(t *testing.T) {
	s := newTestSession(t)

	s.onGuildCreate(nil, guildCreate("g1",
		&discordgo.Channel{ID: "cat1", Name: "FLASHCARD decks", Type: discordgo.ChannelTypeGuildCategory},
	))

	sctx, ok := s.Context()
	require.True(t, ok)
	assert.Equal(t, "cat1", sctx.CategoryID)
}

func TestDiscovery_MissingCategoryAndChannelStillReady(t *testing.T) {
	s := newTestSession(t)

	s.onGuildCreate(nil, guildCreate("g1",
		&discordgo.Channel{ID: "cat1", Name: "general", Type: discordgo.ChannelTypeGuildCategory},
	))

	sctx, ok := s.Context()
	require.True(t, ok)
	assert.Empty(t, sctx.CategoryID)
	assert.Empty(t, sctx.HistoryChannelID)
	assert.True(t, s.Ready())
}

func TestDiscovery_RunsOnceForFirstGuild(t *testing.T) {
	s := newTestSession(t)

	s.onGuildCreate(nil, guildCreate("g1"))
	s.onGuildCreate(nil, guildCreate("g2",
		&discordgo.Channel{ID: "cat2", Name: "flashcards", Type: discordgo.ChannelTypeGuildCategory},
	))

	sctx, ok := s.Context()
	require.True(t, ok)
	assert.Equal(t, "g1", sctx.GuildID)
	assert.Empty(t, sctx.CategoryID)
}

func TestReady_RestoredAfterReconnect(t *testing.T) {
	s := newTestSession(t)

	s.onGuildCreate(nil, guildCreate("g1"))
	require.True(t, s.Ready())

	s.onDisconnect(nil, nil)
	assert.Equal(t, StateDisconnected, s.State())
	assert.False(t, s.Ready())

	s.onReady(nil, &discordgo.Ready{User: &discordgo.User{Username: "bot"}})
	assert.True(t, s.Ready())
}

func TestContext_FalseBeforeDiscovery(t *testing.T) {
	s := newTestSession(t)

	_, ok := s.Context()
	assert.False(t, ok)
	assert.False(t, s.Ready())
}
