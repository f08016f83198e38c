package history

import "github.com/vytor/flashcord/internal/models"

// Aggregate folds the decoded log into per-folder totals. Folder IDs are
// matched by exact string equality; an empty or unrelated log yields
// zeros.
func Aggregate(records []models.ChallengeRecord, folderID string) models.FolderStats {
	var stats models.FolderStats
	for _, rec := range records {
		if rec.FolderID != folderID {
			continue
		}
		stats.TotalCorrect += rec.Correct
		stats.TotalIncorrect += rec.Incorrect
		stats.TotalChallenges++
	}
	return stats
}
