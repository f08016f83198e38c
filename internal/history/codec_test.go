package history_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/flashcord/internal/history"
	"github.com/vytor/flashcord/internal/models"
)

func TestDecode_JSONLines(t *testing.T) {
	raw := `{"folder_id":"111","correct":5,"incorrect":2,"timestamp":"2024-06-01T10:00:00"}
{"folder_id":"222","correct":1,"incorrect":0,"timestamp":"2024-06-02T11:30:00"}`

	records := history.Decode(raw)

	require.Len(t, records, 2)
	assert.Equal(t, "111", records[0].FolderID)
	assert.Equal(t, 5, records[0].Correct)
	assert.Equal(t, 2, records[0].Incorrect)
	assert.Equal(t, "2024-06-01T10:00:00", records[0].Timestamp)
	assert.Equal(t, "222", records[1].FolderID)
}

func TestDecode_LegacyDigitLine(t *testing.T) {
	records := history.Decode("123456789012345678")

	require.Len(t, records, 1)
	assert.Equal(t, "123456789012345678", records[0].FolderID)
	assert.Equal(t, 0, records[0].Correct)
	assert.Equal(t, 0, records[0].Incorrect)
	assert.Equal(t, models.TimestampUnknown, records[0].Timestamp)
}

func TestDecode_DropsMalformedLines(t *testing.T) {
	raw := strings.Join([]string{
		`{"folder_id":"111","correct":3,"incorrect":1,"timestamp":"t"}`,
		"not json and not digits",
		"{broken json",
		"12abc34",
		"",
		"   ",
		"999",
	}, "\n")

	records := history.Decode(raw)

	require.Len(t, records, 2)
	assert.Equal(t, "111", records[0].FolderID)
	assert.Equal(t, "999", records[1].FolderID)
}

func TestDecode_TrimsWhitespace(t *testing.T) {
	raw := "  {\"folder_id\":\"42\",\"correct\":1,\"incorrect\":0,\"timestamp\":\"t\"}  \r\n\n  777  "

	records := history.Decode(raw)

	require.Len(t, records, 2)
	assert.Equal(t, "42", records[0].FolderID)
	assert.Equal(t, "777", records[1].FolderID)
}

func TestDecode_Empty(t *testing.T) {
	assert.Empty(t, history.Decode(""))
	assert.Empty(t, history.Decode("\n\n\n"))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	records := make([]models.ChallengeRecord, 0, history.MaxRecords)
	for i := 0; i < history.MaxRecords; i++ {
		records = append(records, models.ChallengeRecord{
			FolderID:  fmt.Sprintf("%d", 100+i),
			Correct:   i,
			Incorrect: i % 3,
			Timestamp: fmt.Sprintf("2024-01-%02dT00:00:00", i%28+1),
		})
	}

	decoded := history.Decode(history.Encode(records))

	assert.Equal(t, records, decoded)
}

func TestInsert_Prepends(t *testing.T) {
	existing := []models.ChallengeRecord{
		{FolderID: "1", Timestamp: "a"},
		{FolderID: "2", Timestamp: "b"},
	}
	rec := models.ChallengeRecord{FolderID: "3", Correct: 4, Incorrect: 1, Timestamp: "c"}

	updated := history.Insert(existing, rec)

	require.Len(t, updated, 3)
	assert.Equal(t, rec, updated[0])
	assert.Equal(t, "1", updated[1].FolderID)
	assert.Equal(t, "2", updated[2].FolderID)
}

func TestInsert_EvictsOldestAtCapacity(t *testing.T) {
	full := make([]models.ChallengeRecord, history.MaxRecords)
	for i := range full {
		full[i] = models.ChallengeRecord{FolderID: fmt.Sprintf("%d", i)}
	}

	updated := history.Insert(full, models.ChallengeRecord{FolderID: "new"})

	require.Len(t, updated, history.MaxRecords)
	assert.Equal(t, "new", updated[0].FolderID)
	// Oldest (last) entry dropped; previous second-to-last is now last.
	assert.Equal(t, fmt.Sprintf("%d", history.MaxRecords-2), updated[history.MaxRecords-1].FolderID)
}

func TestInsert_DoesNotMutateInput(t *testing.T) {
	existing := []models.ChallengeRecord{{FolderID: "1"}}

	_ = history.Insert(existing, models.ChallengeRecord{FolderID: "2"})

	require.Len(t, existing, 1)
	assert.Equal(t, "1", existing[0].FolderID)
}

func TestAggregate_SumsMatchingFolder(t *testing.T) {
	records := []models.ChallengeRecord{
		{FolderID: "A", Correct: 3, Incorrect: 1},
		{FolderID: "B", Correct: 2, Incorrect: 0},
		{FolderID: "A", Correct: 1, Incorrect: 1},
	}

	stats := history.Aggregate(records, "A")

	assert.Equal(t, 4, stats.TotalCorrect)
	assert.Equal(t, 2, stats.TotalIncorrect)
	assert.Equal(t, 2, stats.TotalChallenges)
}

func TestAggregate_NoMatchYieldsZeros(t *testing.T) {
	records := []models.ChallengeRecord{
		{FolderID: "A", Correct: 3, Incorrect: 1},
	}

	stats := history.Aggregate(records, "Z")

	assert.Equal(t, models.FolderStats{}, stats)
}

func TestAggregate_ExactStringMatch(t *testing.T) {
	records := []models.ChallengeRecord{
		{FolderID: "007", Correct: 1},
		{FolderID: "7", Correct: 2},
	}

	stats := history.Aggregate(records, "7")

	assert.Equal(t, 2, stats.TotalCorrect)
	assert.Equal(t, 1, stats.TotalChallenges)
}
