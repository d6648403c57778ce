// Package term renders the pieces of the interactive prompt.
package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ruleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	headStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	wordStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	termStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	termAltStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	warnBoldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	okBoldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// ruleWidth is the width of the divider drawn above each prompt.
const ruleWidth = 60

// Rule returns the horizontal divider drawn above each prompt.
func Rule() string {
	return ruleStyle.Render(strings.Repeat("─", ruleWidth))
}

// Progress renders the prompt progress bar, shown prompts out of total.
func Progress(shown, total, width int) string {
	percent := 100
	filled := width
	if total > 0 {
		percent = shown * 100 / total
		filled = width * shown / total
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return progressStyle.Render(fmt.Sprintf("[%s] %d/%d words (%d%%)", bar, shown, total, percent))
}

// Context renders the context block for the span [start,end) of text: the
// line holding the span, flanked by its neighbour lines when that line is
// shorter than shortLine. The span itself is highlighted.
func Context(text string, start, end, shortLine int) string {
	lineStart := strings.LastIndexByte(text[:start], '\n') + 1
	lineEnd := len(text)
	if i := strings.IndexByte(text[end:], '\n'); i >= 0 {
		lineEnd = end + i
	}

	target := text[lineStart:start] + wordStyle.Render(text[start:end]) + text[end:lineEnd]

	lines := []string{target}
	if lineEnd-lineStart < shortLine {
		if lineStart > 0 {
			prevStart := strings.LastIndexByte(text[:lineStart-1], '\n') + 1
			lines = append([]string{text[prevStart : lineStart-1]}, lines...)
		}
		if lineEnd < len(text) {
			nextEnd := len(text)
			if i := strings.IndexByte(text[lineEnd+1:], '\n'); i >= 0 {
				nextEnd = lineEnd + 1 + i
			}
			lines = append(lines, text[lineEnd+1:nextEnd])
		}
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("Context:"))
	for _, line := range lines {
		b.WriteString("\n  " + line)
	}
	return b.String()
}

// Menu renders the decision menu for a word. A non-empty terms list renders
// the known-abbreviation menu with numbered expansions, an empty list the
// unknown-word menu.
func Menu(word string, terms []string) string {
	var b strings.Builder
	if len(terms) > 0 {
		b.WriteString(headStyle.Render("Found abbreviation: ") + wordStyle.Render(word) + "\n")
		b.WriteString(termStyle.Render("Expansions:") + "\n")
		for i, t := range terms {
			b.WriteString(termStyle.Render(fmt.Sprintf("  [%d] %s", i+1, t)) + "\n")
		}
		b.WriteString(termAltStyle.Render("  [n] New expansion...") + "\n")
	} else {
		b.WriteString(headStyle.Render("Unknown word: ") + wordStyle.Render(word) + "\n")
		b.WriteString(termStyle.Render("Expansions:") + "\n")
		b.WriteString(termStyle.Render("  [e] Add expansion...") + "\n")
	}
	b.WriteString(dimStyle.Render("Actions:") + "\n")
	b.WriteString(dimStyle.Render("  [s] Skip    [i] Ignore    [o] Once...") + "\n")
	b.WriteString(dimStyle.Render("  [v] Save & stop    [a] Abort"))
	return b.String()
}

// ChoosePrompt renders the decision prompt with its default key.
func ChoosePrompt(def string) string {
	return fmt.Sprintf("Choose [%s]: ", def)
}

// InputPrompt renders a free-text prompt.
func InputPrompt(label string) string {
	return label + ": "
}

// Error renders an error notice.
func Error(s string) string { return errStyle.Render(s) }

// Warn renders a warning notice.
func Warn(s string) string { return warnStyle.Render(s) }

// WarnBold renders an emphasized warning notice.
func WarnBold(s string) string { return warnBoldStyle.Render(s) }

// Success renders a confirmation notice.
func Success(s string) string { return okStyle.Render(s) }

// SuccessBold renders an emphasized confirmation notice.
func SuccessBold(s string) string { return okBoldStyle.Render(s) }

// Info renders an informational notice.
func Info(s string) string { return infoStyle.Render(s) }
