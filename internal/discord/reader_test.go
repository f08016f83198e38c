package discord_test

import (
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/flashcord/internal/discord"
	"github.com/vytor/flashcord/internal/testutil/mocks"
)

func messages(ids ...string) []*discordgo.Message {
	msgs := make([]*discordgo.Message, len(ids))
	for i, id := range ids {
		msgs[i] = &discordgo.Message{ID: id}
	}
	return msgs
}

func TestAllMessages_SinglePageReversedToOldestFirst(t *testing.T) {
	m := new(mocks.MockMessenger)
	m.On("ChannelMessages", "ch1", 100, "", "", "").Return(messages("m3", "m2", "m1"), nil)

	msgs, err := discord.AllMessages(m, "ch1")

	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "m1", msgs[0].ID)
	assert.Equal(t, "m3", msgs[2].ID)
}

func TestAllMessages_PagesBackwardsUntilExhausted(t *testing.T) {
	// Two full pages plus a short final one.
	first := make([]string, 100)
	second := make([]string, 100)
	for i := range first {
		first[i] = fmt.Sprintf("a%03d", 99-i)
		second[i] = fmt.Sprintf("b%03d", 99-i)
	}

	m := new(mocks.MockMessenger)
	m.On("ChannelMessages", "ch1", 100, "", "", "").Return(messages(first...), nil)
	m.On("ChannelMessages", "ch1", 100, "a000", "", "").Return(messages(second...), nil)
	m.On("ChannelMessages", "ch1", 100, "b000", "", "").Return(messages("c1"), nil)

	msgs, err := discord.AllMessages(m, "ch1")

	require.NoError(t, err)
	require.Len(t, msgs, 201)
	assert.Equal(t, "c1", msgs[0].ID)
	assert.Equal(t, "a099", msgs[200].ID)
	m.AssertExpectations(t)
}

func TestAllMessages_EmptyChannel(t *testing.T) {
	m := new(mocks.MockMessenger)
	m.On("ChannelMessages", "ch1", 100, "", "", "").Return(messages(), nil)

	msgs, err := discord.AllMessages(m, "ch1")

	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestLatestMessage_ReturnsNewest(t *testing.T) {
	m := new(mocks.MockMessenger)
	m.On("ChannelMessages", "ch1", 1, "", "", "").Return(messages("m9"), nil)

	msg, err := discord.LatestMessage(m, "ch1")

	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, "m9", msg.ID)
}

func TestLatestMessage_EmptyChannelIsNil(t *testing.T) {
	m := new(mocks.MockMessenger)
	m.On("ChannelMessages", "ch1", 1, "", "", "").Return(messages(), nil)

	msg, err := discord.LatestMessage(m, "ch1")

	require.NoError(t, err)
	assert.Nil(t, msg)
}
