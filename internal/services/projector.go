package services

import (
	"github.com/bwmarrin/discordgo"
	"github.com/vytor/flashcord/internal/models"
)

// cardContent projects a message into one side of a flashcard. Only the
// first attachment becomes the image; further attachments are ignored.
func cardContent(msg *discordgo.Message) models.CardContent {
	content := models.CardContent{Text: msg.Content}
	if len(msg.Attachments) > 0 {
		url := msg.Attachments[0].URL
		content.ImageURL = &url
	}
	return content
}

// isTopLevel reports whether a message is a question rather than an
// answer, i.e. carries no reply reference.
func isTopLevel(msg *discordgo.Message) bool {
	return msg.MessageReference == nil
}

func countTopLevel(msgs []*discordgo.Message) int {
	count := 0
	for _, msg := range msgs {
		if isTopLevel(msg) {
			count++
		}
	}
	return count
}

// projectFlashcards partitions a channel's messages (oldest-first) into
// flashcards: top-level messages become questions, and every message
// whose reply reference points at a question becomes one of its answers,
// in channel order.
func projectFlashcards(msgs []*discordgo.Message) []models.Flashcard {
	flashcards := make([]models.Flashcard, 0)
	for _, msg := range msgs {
		if !isTopLevel(msg) {
			continue
		}

		answers := make([]models.CardContent, 0)
		for _, reply := range msgs {
			if reply.MessageReference != nil && reply.MessageReference.MessageID == msg.ID {
				answers = append(answers, cardContent(reply))
			}
		}

		flashcards = append(flashcards, models.Flashcard{
			QuestionID: msg.ID,
			Question:   cardContent(msg),
			Answers:    answers,
		})
	}
	return flashcards
}
