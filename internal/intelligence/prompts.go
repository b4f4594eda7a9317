package intelligence

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
)

const generateSystemPrompt = `You are a helpful AI assistant that generates flashcards from a given document.

Your task is to analyze the provided document and create a list of question-and-answer pairs suitable for flashcards. Identify the key concepts, definitions, important facts, and main ideas.

Here are two example flashcards showing the expected granularity:
- Question: What is the capital of France?
- Answer: Paris
- Question: What is the powerhouse of the cell?
- Answer: Mitochondria

Return the flashcards as a JSON array of objects, where each object has a "question" and "answer" field. If the document contains nothing worth studying, return an empty array []. Output ONLY the JSON array, no markdown fences, no text before or after.`

// buildGenerateUserPrompt embeds the document into the prompt. Text is
// carried verbatim; a file is carried as its data URI reference for
// multimodal interpretation.
func buildGenerateUserPrompt(input GenerateInput) string {
	var b strings.Builder

	if input.DocumentText != "" {
		b.WriteString("The document content is provided as plain text below. Analyze it to generate flashcards.\n")
		b.WriteString("Document Text: ")
		b.WriteString(input.DocumentText)
		b.WriteString("\n")
	}

	if input.DocumentFile != "" {
		if input.DocumentText != "" {
			b.WriteString("\n")
		}
		b.WriteString("The document is provided as a file. It may contain text, images, or a combination of both. Analyze all content within the file, including text and visual elements, to generate comprehensive flashcards. If there are images, create questions based on what is depicted.\n")
		b.WriteString("Document File: ")
		b.WriteString(input.DocumentFile)
		b.WriteString("\n")
	}

	return b.String()
}

const scheduleSystemPrompt = `You are an AI assistant that schedules flashcard reviews using spaced repetition.

Given the flashcard's review history, difficulty, and the current date, determine the next review date.

Consider these principles of spaced repetition:
- If the user answered correctly, increase the interval until the next review.
- If the user answered incorrectly, decrease the interval until the next review.
- Harder flashcards should be reviewed more frequently.

Output ONLY a JSON object of the form {"nextReviewDate": "YYYY-MM-DD"}, no markdown fences, no text before or after.`

// buildScheduleUserPrompt embeds the structured review history, the numeric
// difficulty, and the current calendar date. No date arithmetic happens
// here; the interval is the model's to choose.
func buildScheduleUserPrompt(input ScheduleInput, today time.Time) string {
	var b strings.Builder

	b.WriteString("Review History:\n")
	if len(input.ReviewHistory) == 0 {
		b.WriteString("- (no prior reviews)\n")
	}
	for _, entry := range input.ReviewHistory {
		fmt.Fprintf(&b, "- Date: %s, Correct: %t\n", entry.Date.Format(domain.DateLayout), entry.Correct)
	}

	fmt.Fprintf(&b, "\nDifficulty: %g\n", input.Difficulty)
	fmt.Fprintf(&b, "Current Date: %s\n", today.Format(domain.DateLayout))

	return b.String()
}

const chatSystemPrompt = `You are an AI chat tutor that helps students create flashcards and test their knowledge.

Your goal is to help the student understand the material and create effective flashcards for studying. You should engage the student in a conversation, ask questions, and provide feedback. If the student asks you to generate flashcards, generate a list of flashcards based on the conversation or the material under discussion.

Here are some example flashcards you can create if asked:
- Question: What is the capital of France?
- Answer: Paris
- Question: What is the powerhouse of the cell?
- Answer: Mitochondria

Output ONLY a JSON object of the form {"response": "your reply to the student", "flashcards": [{"question": "...", "answer": "..."}]}. Omit the "flashcards" field unless the student asked for flashcards. No markdown fences, no text before or after.`

// buildChatUserPrompt formats the optional flashcard-context preamble, the
// full history as alternating User/Assistant turns, and the new message.
func buildChatUserPrompt(input ChatInput) string {
	var b strings.Builder

	if input.FlashcardContext != nil {
		b.WriteString("The user is currently studying the following flashcard. Use this as the primary context for the conversation.\n")
		fmt.Fprintf(&b, "- Question: %s\n", input.FlashcardContext.Question)
		fmt.Fprintf(&b, "- Answer: %s\n\n", input.FlashcardContext.Answer)
	}

	if len(input.ChatHistory) > 0 {
		b.WriteString("Here is the chat history:\n")
		for _, turn := range input.ChatHistory {
			b.WriteString(formatChatRole(turn.Role))
			b.WriteString(": ")
			b.WriteString(turn.Content)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("User: ")
	b.WriteString(input.Message)
	b.WriteString("\nAssistant: ")

	return b.String()
}

func formatChatRole(role domain.ChatRole) string {
	if role == domain.RoleAssistant {
		return "Assistant"
	}
	return "User"
}
