package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/vytor/flashcord/internal/bridge"
	"github.com/vytor/flashcord/internal/discord"
	"github.com/vytor/flashcord/internal/errors"
	"github.com/vytor/flashcord/internal/history"
	"github.com/vytor/flashcord/internal/logger"
	"github.com/vytor/flashcord/internal/models"
)

// HistoryService reads and updates the challenge history log stored in
// the history channel's most recent message.
type HistoryService interface {
	ChallengeHistory(ctx context.Context) ([]models.ChallengeRecord, error)
	FolderStatistics(ctx context.Context, folderID string) (models.FolderStats, error)
	RecordChallenge(ctx context.Context, folderID string, correct, incorrect int) error
}

type historyService struct {
	session Session
	bridge  Submitter
	now     func() time.Time
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(session Session, bridge Submitter) HistoryService {
	return &historyService{session: session, bridge: bridge, now: time.Now}
}

func (s *historyService) ChallengeHistory(ctx context.Context) ([]models.ChallengeRecord, error) {
	records := make([]models.ChallengeRecord, 0)
	err := s.bridge.Submit(ctx, "challenge-history", func(ctx context.Context) error {
		sctx, ok := s.session.Context()
		if !ok || sctx.HistoryChannelID == "" {
			return nil
		}
		loaded, err := loadHistory(s.session.Messenger(), sctx)
		if err != nil {
			return err
		}
		records = append(records, loaded...)
		return nil
	})
	if err != nil {
		return nil, mapBridgeError(err)
	}
	return records, nil
}

func (s *historyService) FolderStatistics(ctx context.Context, folderID string) (models.FolderStats, error) {
	log := logger.FromContext(ctx)

	var stats models.FolderStats
	err := s.bridge.Submit(ctx, "folder-statistics", func(ctx context.Context) error {
		sctx, ok := s.session.Context()
		if !ok || sctx.HistoryChannelID == "" {
			return nil
		}
		records, err := loadHistory(s.session.Messenger(), sctx)
		if err != nil {
			log.Warn("challenge history unavailable, statistics default to zero: %v", err)
			return nil
		}
		stats = history.Aggregate(records, folderID)
		return nil
	})
	if err != nil {
		return models.FolderStats{}, mapBridgeError(err)
	}
	return stats, nil
}

// RecordChallenge validates the counts before any Discord interaction,
// then performs the read-insert-encode-write of the history message as a
// single bridged operation so concurrent results cannot lose updates.
func (s *historyService) RecordChallenge(ctx context.Context, folderID string, correct, incorrect int) error {
	log := logger.FromContext(ctx)

	if correct < 0 || incorrect < 0 {
		return errors.NewValidationError("counts", "correct and incorrect must be non-negative")
	}

	rec := models.ChallengeRecord{
		FolderID:  folderID,
		Correct:   correct,
		Incorrect: incorrect,
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}

	err := s.bridge.Submit(ctx, "record-challenge", func(ctx context.Context) error {
		sctx, ok := s.session.Context()
		if !ok || sctx.HistoryChannelID == "" {
			return fmt.Errorf("challenge history channel not discovered")
		}
		m := s.session.Messenger()

		msg, err := discord.LatestMessage(m, sctx.HistoryChannelID)
		if err != nil {
			return err
		}

		var records []models.ChallengeRecord
		if msg != nil {
			records = history.Decode(msg.Content)
		}
		content := history.Encode(history.Insert(records, rec))

		if msg != nil {
			_, err = m.ChannelMessageEdit(sctx.HistoryChannelID, msg.ID, content)
		} else {
			// The backing message is created lazily on the first result.
			_, err = m.ChannelMessageSend(sctx.HistoryChannelID, content)
		}
		return err
	})
	if err != nil {
		return mapBridgeError(err)
	}

	log.Info("recorded challenge: folder_id=%s correct=%d incorrect=%d", folderID, correct, incorrect)
	return nil
}

// loadHistory decodes the history log from the single most recent
// message of the history channel. An empty channel is an empty log.
func loadHistory(m discord.Messenger, sctx discord.SessionContext) ([]models.ChallengeRecord, error) {
	if sctx.HistoryChannelID == "" {
		return nil, nil
	}
	msg, err := discord.LatestMessage(m, sctx.HistoryChannelID)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, nil
	}
	return history.Decode(msg.Content), nil
}

// mapBridgeError translates bridge conditions into client-visible
// AppErrors; anything else becomes an internal error.
func mapBridgeError(err error) error {
	var appErr *errors.AppError
	switch {
	case stderrors.As(err, &appErr):
		return appErr
	case stderrors.Is(err, bridge.ErrNotReady):
		return errors.NewNotReadyError()
	case stderrors.Is(err, bridge.ErrTimeout):
		return errors.NewTimeoutError(err)
	default:
		return errors.NewInternalError(err)
	}
}
