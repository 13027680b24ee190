package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/quizboard/internal/board"
)

// styles
var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Underline(true)
	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("245"))
	activeTabStyle = tabStyle.Foreground(lipgloss.Color("212")).Bold(true).Underline(true)
	cardStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).BorderForeground(lipgloss.Color("240"))
	selectedCard   = cardStyle.BorderForeground(lipgloss.Color("212"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	buttonStyle    = lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230"))
	disabledButton = buttonStyle.Background(lipgloss.Color("238")).Foreground(lipgloss.Color("245"))
)

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Quiz Board"))
	b.WriteString("\n")
	b.WriteString(a.renderNav())
	b.WriteString("\n\n")

	var help []key.Binding
	if a.nav.IsActive(board.ViewCreate) {
		b.WriteString(a.renderCreate())
		help = a.keys.createHelp()
	} else {
		b.WriteString(a.renderList())
		help = a.keys.listHelp()
	}
	b.WriteString("\n")
	b.WriteString(renderHelp(help))
	if a.status != "" {
		b.WriteString("\n" + a.status)
	}
	return b.String()
}

func (a *App) renderNav() string {
	tabs := make([]string, 0, len(board.Views))
	for _, v := range board.Views {
		if a.nav.IsActive(v) {
			tabs = append(tabs, activeTabStyle.Render(v.Title()))
			continue
		}
		tabs = append(tabs, tabStyle.Render(v.Title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a *App) renderList() string {
	return renderListState(a.list, a.cursor, a.width)
}

// Sanitize makes backend text safe to print on a terminal: escape sequences
// and control characters other than newline are removed.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r != '\n' && unicode.IsControl(r) {
			return -1
		}
		return r
	}, ansi.Strip(s))
}

// renderListState draws the list container. Quiz text comes from the
// backend and goes through Sanitize.
func renderListState(s board.ListState, cursor, width int) string {
	switch s.Phase {
	case board.ListLoading:
		return mutedStyle.Render(board.LoadingText)
	case board.ListEmpty:
		return mutedStyle.Render(board.EmptyText)
	case board.ListFailed:
		return errorStyle.Render(strings.Join([]string{
			"✗ " + board.LoadFailedText,
			Sanitize(board.BackendHint(s.APIURL)),
			Sanitize(board.ErrorLine(s.Err)),
		}, "\n"))
	}

	cardWidth := 60
	if width > 10 && width-4 < cardWidth {
		cardWidth = width - 4
	}
	cards := make([]string, 0, len(s.Cards))
	for i, c := range s.Cards {
		body := fmt.Sprintf("%s\n%s\n%s",
			lipgloss.NewStyle().Bold(true).Render(Sanitize(c.Title)),
			Sanitize(c.Description),
			mutedStyle.Render("Created: "+c.Created+"   [s] Start Quiz →"),
		)
		style := cardStyle
		if i == cursor {
			style = selectedCard
		}
		cards = append(cards, style.Width(cardWidth).Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (a *App) renderCreate() string {
	var b strings.Builder
	b.WriteString("Title\n")
	b.WriteString(a.title.View())
	b.WriteString("\n\nDescription\n")
	b.WriteString(a.description.View())
	b.WriteString("\n\n")

	label := a.submission.ButtonLabel()
	if a.submission.ButtonDisabled() {
		b.WriteString(disabledButton.Render(label))
	} else {
		b.WriteString(buttonStyle.Render(label))
	}

	switch a.submission.Phase {
	case board.SubmitSucceeded:
		b.WriteString("\n\n" + successStyle.Render("✓ "+a.submission.Message))
	case board.SubmitFailed:
		b.WriteString("\n\n" + errorStyle.Render("✗ "+Sanitize(a.submission.Message)))
	}
	return b.String()
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, k := range bindings {
		h := k.Help()
		parts = append(parts, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	return mutedStyle.Render(strings.Join(parts, "  "))
}
