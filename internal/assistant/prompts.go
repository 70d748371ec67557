package assistant

import (
	"fmt"
	"strings"
)

func sentimentPrompt(text string) string {
	return fmt.Sprintf(`Analyze the sentiment of the following text and respond with ONLY a JSON object containing "sentiment" (positive, negative, or neutral) and "explanation" fields. Text: "%s"`, text)
}

func summarizePrompt(text string, maxWords int) string {
	return fmt.Sprintf("Summarize the following text in no more than %d words: %s", maxWords, text)
}

func translatePrompt(text, lang string) string {
	return fmt.Sprintf("Translate the following text to %s: %s", lang, text)
}

func creativePrompt(topic string, kind ContentKind) string {
	return fmt.Sprintf("Write a creative %s about: %s", kind, topic)
}

func answerPrompt(passage, question string) string {
	return fmt.Sprintf("Based on the following context, answer the question.\n\nContext: %s\n\nQuestion: %s\n\nAnswer:", passage, question)
}

func keyPointsPrompt(text string, n int) string {
	return fmt.Sprintf("Extract %d key points from the following text. Return them as a JSON array of strings: %s", n, text)
}

func chatPrompt(history []Message, newMessage string) string {
	var b strings.Builder
	b.WriteString("Continue this conversation naturally:\n\n")
	for _, m := range history {
		if m.Role == RoleUser {
			b.WriteString("User: ")
		} else {
			b.WriteString("Assistant: ")
		}
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	b.WriteString("User: ")
	b.WriteString(newMessage)
	b.WriteString("\nAssistant:")
	return b.String()
}

func improvePrompt(text, instruction string) string {
	by := ""
	if instruction != "" {
		by = " by " + instruction
	}
	return fmt.Sprintf("Improve the following text%s:\n\n%s\n\nImproved version:", by, text)
}

func quickQuizPrompt(content string, n int) string {
	return fmt.Sprintf(`Generate %d quiz questions from the following content. Return as a JSON array with objects containing "question", "answer", and optionally "options" (array of 4 choices for multiple choice). Content: %s`, n, content)
}
