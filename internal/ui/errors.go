package ui

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	minErrorWidth  = 10
	truncationMark = "..."
)

// ErrorManager holds the error shown in the status line and clears it
// after a delay
type ErrorManager struct {
	current         error
	errorClearDelay time.Duration
}

// NewErrorManager creates a new ErrorManager with the specified auto-clear delay
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{errorClearDelay: errorClearDelay}
}

// SetError replaces the displayed error and returns the command that clears it
func (em *ErrorManager) SetError(err error) tea.Cmd {
	em.current = err
	if err == nil || em.errorClearDelay <= 0 {
		return nil
	}
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

// ClearError clears the current error
func (em *ErrorManager) ClearError() {
	em.current = nil
}

// GetError returns the current error
func (em *ErrorManager) GetError() error {
	return em.current
}

// formatErrorForDisplay word-wraps err to at most maxErrorLines lines of
// maxWidth runes, prefixed with "Error: " and ending in "..." when cut
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}
	words := strings.Fields(err.Error())
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}
	if maxWidth < minErrorWidth {
		maxWidth = minErrorWidth
	}

	var lines []string
	var line strings.Builder
	limit := maxWidth - utf8.RuneCountInString(errorPrefix)
	truncated := false

	for _, word := range words {
		width := utf8.RuneCountInString(line.String())
		if width > 0 && width+1+utf8.RuneCountInString(word) > limit {
			lines = append(lines, line.String())
			line.Reset()
			limit = maxWidth
			if len(lines) == maxErrorLines {
				truncated = true
				break
			}
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 && len(lines) < maxErrorLines {
		lines = append(lines, line.String())
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		keep := maxWidth - utf8.RuneCountInString(truncationMark)
		if len(last) > keep && keep > 0 {
			last = last[:keep]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}
