// Package editor implements the diary editor's list auto-continuation and
// its bounded undo history.
package editor

import (
	"regexp"
	"strconv"
	"strings"
)

// Keys the editor reacts to. Anything else is passed through unchanged.
const (
	KeyEnter = "enter"
	KeyTab   = "tab"
)

const tabSpaces = "    "

var (
	numberedPrefix = regexp.MustCompile(`^(\d+)\.\s*`)
	bulletPrefix   = regexp.MustCompile(`^[-*•]\s*`)
)

// ApplyKey applies a keystroke to content at the cursor position and
// returns the new content and cursor.
//
// Enter on a numbered line inserts the next number prefix (no renumbering
// of earlier lines); Enter on a bulleted line continues with "• " whatever
// the original marker was; Enter elsewhere is a plain newline. Tab inserts
// four literal spaces.
func ApplyKey(content string, cursor int, key string) (string, int) {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(content) {
		cursor = len(content)
	}

	var insertion string
	switch key {
	case KeyEnter:
		insertion = "\n" + continuation(currentLine(content, cursor))
	case KeyTab:
		insertion = tabSpaces
	default:
		return content, cursor
	}

	return content[:cursor] + insertion + content[cursor:], cursor + len(insertion)
}

// currentLine returns the text of the line the cursor sits on, up to the
// cursor itself.
func currentLine(content string, cursor int) string {
	start := strings.LastIndexByte(content[:cursor], '\n') + 1
	return content[start:cursor]
}

// continuation decides what follows the newline for the given line.
func continuation(line string) string {
	if m := numberedPrefix.FindStringSubmatch(line); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return ""
		}
		return strconv.Itoa(n+1) + ". "
	}
	if bulletPrefix.MatchString(line) {
		return "• "
	}
	return ""
}

// HistoryLimit is the maximum number of content snapshots kept for undo.
const HistoryLimit = 50

// History is a bounded linear undo stack of full-content snapshots.
// Pushing past the limit drops the oldest snapshot; pushing after an undo
// discards the redo tail.
type History struct {
	snapshots []string
	index     int
}

// NewHistory creates a history seeded with the initial content.
func NewHistory(initial string) *History {
	return &History{snapshots: []string{initial}}
}

// Push records a new snapshot as the latest state.
func (h *History) Push(content string) {
	h.snapshots = append(h.snapshots[:h.index+1], content)
	if len(h.snapshots) > HistoryLimit {
		h.snapshots = append(h.snapshots[:0], h.snapshots[len(h.snapshots)-HistoryLimit:]...)
	}
	h.index = len(h.snapshots) - 1
}

// Undo steps back one snapshot. The second return value is false when
// there is nothing to undo.
func (h *History) Undo() (string, bool) {
	if h.index == 0 {
		return h.snapshots[h.index], false
	}
	h.index--
	return h.snapshots[h.index], true
}

// Redo steps forward one snapshot. The second return value is false when
// there is nothing to redo.
func (h *History) Redo() (string, bool) {
	if h.index >= len(h.snapshots)-1 {
		return h.snapshots[h.index], false
	}
	h.index++
	return h.snapshots[h.index], true
}

// Current returns the snapshot the history currently points at.
func (h *History) Current() string {
	return h.snapshots[h.index]
}
