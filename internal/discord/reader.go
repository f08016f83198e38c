package discord

import "github.com/bwmarrin/discordgo"

// pageSize is the Discord API ceiling for a single message fetch.
const pageSize = 100

// AllMessages walks the full history of a channel and returns it
// oldest-first. Discord serves history newest-first in pages of at most
// 100, so the scan pages backwards and reverses at the end.
func AllMessages(m Messenger, channelID string) ([]*discordgo.Message, error) {
	var all []*discordgo.Message
	beforeID := ""
	for {
		page, err := m.ChannelMessages(channelID, pageSize, beforeID, "", "")
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}
		all = append(all, page...)
		beforeID = page[len(page)-1].ID
		if len(page) < pageSize {
			break
		}
	}

	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	return all, nil
}

// LatestMessage returns the most recent message in a channel, or nil
// when the channel is empty.
func LatestMessage(m Messenger, channelID string) (*discordgo.Message, error) {
	msgs, err := m.ChannelMessages(channelID, 1, "", "", "")
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		return nil, nil
	}
	return msgs[0], nil
}
