package models

// TimestampUnknown marks records decoded from the legacy digit-only
// history format, which recorded no time.
const TimestampUnknown = "unknown"

// ChallengeRecord is one completed study challenge against a folder.
// Timestamp is an ISO-8601 string, or "unknown" for legacy entries.
type ChallengeRecord struct {
	FolderID  string `json:"folder_id"`
	Correct   int    `json:"correct"`
	Incorrect int    `json:"incorrect"`
	Timestamp string `json:"timestamp"`
}

// FolderStats aggregates challenge records for a single folder.
type FolderStats struct {
	TotalCorrect    int `json:"total_correct"`
	TotalIncorrect  int `json:"total_incorrect"`
	TotalChallenges int `json:"total_challenges"`
}
