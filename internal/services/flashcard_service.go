package services

import (
	"context"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/vytor/flashcord/internal/discord"
	"github.com/vytor/flashcord/internal/history"
	"github.com/vytor/flashcord/internal/logger"
	"github.com/vytor/flashcord/internal/models"
)

// FlashcardService projects live guild state into folders and flashcards.
type FlashcardService interface {
	ListFolders(ctx context.Context) ([]models.Folder, error)
	ListFlashcards(ctx context.Context, folderID string) ([]models.Flashcard, error)
}

type flashcardService struct {
	session Session
	bridge  Submitter
}

// NewFlashcardService creates a new FlashcardService
func NewFlashcardService(session Session, bridge Submitter) FlashcardService {
	return &flashcardService{session: session, bridge: bridge}
}

func (s *flashcardService) ListFolders(ctx context.Context) ([]models.Folder, error) {
	log := logger.FromContext(ctx)

	folders := make([]models.Folder, 0)
	err := s.bridge.Submit(ctx, "list-folders", func(ctx context.Context) error {
		sctx, ok := s.session.Context()
		if !ok || sctx.CategoryID == "" {
			log.Debug("no flashcard category discovered, returning no folders")
			return nil
		}
		m := s.session.Messenger()

		channels, err := folderChannels(m, sctx)
		if err != nil {
			return err
		}

		// One history decode covers statistics for every folder.
		records, err := loadHistory(m, sctx)
		if err != nil {
			log.Warn("challenge history unavailable, statistics default to zero: %v", err)
			records = nil
		}

		for _, ch := range channels {
			msgs, err := discord.AllMessages(m, ch.ID)
			if err != nil {
				// Permission or transient read failures on one channel
				// must not abort the whole listing.
				log.Warn("skipping channel %s: %v", ch.Name, err)
				continue
			}

			stats := history.Aggregate(records, ch.ID)
			folders = append(folders, models.Folder{
				FolderID:        ch.ID,
				FolderName:      ch.Name,
				TotalFlashcards: countTopLevel(msgs),
				TotalCorrect:    stats.TotalCorrect,
				TotalIncorrect:  stats.TotalIncorrect,
				TotalChallenges: stats.TotalChallenges,
			})
		}
		return nil
	})
	if err != nil {
		return nil, mapBridgeError(err)
	}
	return folders, nil
}

func (s *flashcardService) ListFlashcards(ctx context.Context, folderID string) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx)

	flashcards := make([]models.Flashcard, 0)
	err := s.bridge.Submit(ctx, "list-flashcards", func(ctx context.Context) error {
		sctx, ok := s.session.Context()
		if !ok {
			return nil
		}
		m := s.session.Messenger()

		resolved, err := resolveChannel(m, sctx.GuildID, folderID)
		if err != nil {
			return err
		}
		if !resolved {
			log.Debug("folder %s does not resolve to a channel, returning no flashcards", folderID)
			return nil
		}

		msgs, err := discord.AllMessages(m, folderID)
		if err != nil {
			return err
		}
		flashcards = projectFlashcards(msgs)
		return nil
	})
	if err != nil {
		return nil, mapBridgeError(err)
	}
	return flashcards, nil
}

// folderChannels returns the category's text channels in native position
// order, excluding the challenge history channel.
func folderChannels(m discord.Messenger, sctx discord.SessionContext) ([]*discordgo.Channel, error) {
	channels, err := m.GuildChannels(sctx.GuildID)
	if err != nil {
		return nil, err
	}

	var folders []*discordgo.Channel
	for _, ch := range channels {
		if ch.Type != discordgo.ChannelTypeGuildText || ch.ParentID != sctx.CategoryID {
			continue
		}
		if strings.EqualFold(ch.Name, discord.HistoryChannelName) {
			continue
		}
		folders = append(folders, ch)
	}
	sort.SliceStable(folders, func(i, j int) bool {
		return folders[i].Position < folders[j].Position
	})
	return folders, nil
}

func resolveChannel(m discord.Messenger, guildID, channelID string) (bool, error) {
	channels, err := m.GuildChannels(guildID)
	if err != nil {
		return false, err
	}
	for _, ch := range channels {
		if ch.ID == channelID {
			return true, nil
		}
	}
	return false, nil
}
