package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/saulo-duarte/quizgen/internal/aiquiz"
	"github.com/saulo-duarte/quizgen/internal/topics"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	questionStyle = lipgloss.NewStyle().Bold(true)
	correctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	linkStyle     = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("14"))
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
)

func renderQuiz(topic string, questions []aiquiz.QuizQuestion, showAnswers bool) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Quiz: "+topic) + "\n\n")

	for i, q := range questions {
		b.WriteString(questionStyle.Render(fmt.Sprintf("%d. %s", i+1, q.Question)) + "\n")
		for _, opt := range q.Options {
			line := fmt.Sprintf("   %s) %s", opt.Label, opt.Text)
			if showAnswers && opt.Label == q.CorrectAnswer {
				line = correctStyle.Render(line + "  ✓")
			}
			b.WriteString(line + "\n")
		}
		if showAnswers {
			b.WriteString(mutedStyle.Render("   "+q.Explanation.String()) + "\n")
			for _, src := range q.Sources {
				b.WriteString("   " + mutedStyle.Render(src.Title.String()+": ") + linkStyle.Render(src.URL.String()) + "\n")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderTopics(categories []topics.Category) string {
	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(categoryStyle.Render(cat.Name) + "\n")
		for _, t := range cat.Topics {
			b.WriteString("  • " + t + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
