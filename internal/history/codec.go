package history

import (
	"encoding/json"
	"strings"

	"github.com/vytor/flashcord/internal/models"
)

// MaxRecords bounds the challenge history log. Inserting beyond the
// bound evicts the oldest record.
const MaxRecords = 50

// Decode parses the raw text of the history message into challenge
// records, newest first. It is total: JSON-object lines become records,
// digit-only lines are legacy entries normalized to zero counts, and
// anything else is dropped.
func Decode(raw string) []models.ChallengeRecord {
	var records []models.ChallengeRecord
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var rec models.ChallengeRecord
		if err := json.Unmarshal([]byte(line), &rec); err == nil {
			records = append(records, rec)
			continue
		}

		if isDigits(line) {
			records = append(records, models.ChallengeRecord{
				FolderID:  line,
				Correct:   0,
				Incorrect: 0,
				Timestamp: models.TimestampUnknown,
			})
		}
	}
	return records
}

// Encode serializes records to the wire format: one compact JSON object
// per line, preserving input order.
func Encode(records []models.ChallengeRecord) string {
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		b, err := json.Marshal(rec)
		if err != nil {
			// A struct of strings and ints cannot fail to marshal.
			continue
		}
		lines = append(lines, string(b))
	}
	return strings.Join(lines, "\n")
}

// Insert prepends rec and truncates the log to MaxRecords, evicting the
// oldest entry when full.
func Insert(records []models.ChallengeRecord, rec models.ChallengeRecord) []models.ChallengeRecord {
	updated := make([]models.ChallengeRecord, 0, len(records)+1)
	updated = append(updated, rec)
	updated = append(updated, records...)
	if len(updated) > MaxRecords {
		updated = updated[:MaxRecords]
	}
	return updated
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
