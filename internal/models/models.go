package models

// CardContent is one side of a flashcard: the text of a Discord message
// plus the URL of its first attachment, if any. Messages with multiple
// attachments expose only the first one.
type CardContent struct {
	Text     string  `json:"text"`
	ImageURL *string `json:"image_url"`
}

// Flashcard is a top-level message in a folder channel (the question)
// together with every direct reply to it (the answers), in channel
// chronological order.
type Flashcard struct {
	QuestionID string        `json:"question_id"`
	Question   CardContent   `json:"question"`
	Answers    []CardContent `json:"answers"`
}

// Folder is a text channel under the flashcard category, presented as a
// deck: its channel ID and name, the number of top-level messages, and
// aggregated challenge statistics.
type Folder struct {
	FolderID        string `json:"folder_id"`
	FolderName      string `json:"folder_name"`
	TotalFlashcards int    `json:"total_flashcards"`
	TotalCorrect    int    `json:"total_correct"`
	TotalIncorrect  int    `json:"total_incorrect"`
	TotalChallenges int    `json:"total_challenges"`
}
