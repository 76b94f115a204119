package editor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyKeyEnterContinuesNumberedList(t *testing.T) {
	content, cursor := ApplyKey("1. milk", len("1. milk"), KeyEnter)
	assert.Equal(t, "1. milk\n2. ", content)
	assert.Equal(t, len(content), cursor)
}

func TestApplyKeyEnterDoesNotRenumberEarlierLines(t *testing.T) {
	input := "1. a\n5. b"
	content, _ := ApplyKey(input, len(input), KeyEnter)
	assert.Equal(t, "1. a\n5. b\n6. ", content)
}

func TestApplyKeyEnterNormalizesBullets(t *testing.T) {
	for _, marker := range []string{"- ", "* ", "• "} {
		line := marker + "item"
		content, cursor := ApplyKey(line, len(line), KeyEnter)
		assert.Equal(t, line+"\n• ", content, "marker %q", marker)
		assert.Equal(t, len(content), cursor)
	}
}

func TestApplyKeyEnterPlainLine(t *testing.T) {
	content, cursor := ApplyKey("hello", 5, KeyEnter)
	assert.Equal(t, "hello\n", content)
	assert.Equal(t, 6, cursor)
}

func TestApplyKeyEnterMidContent(t *testing.T) {
	// Cursor sits at the end of the first line; the second line is
	// untouched and the continuation lands between them.
	content, cursor := ApplyKey("1. a\nplain", 4, KeyEnter)
	assert.Equal(t, "1. a\n2. \nplain", content)
	assert.Equal(t, len("1. a\n2. "), cursor)
}

func TestApplyKeyTabInsertsFourSpaces(t *testing.T) {
	content, cursor := ApplyKey("ab", 1, KeyTab)
	assert.Equal(t, "a    b", content)
	assert.Equal(t, 5, cursor)
}

func TestApplyKeyClampsCursor(t *testing.T) {
	content, cursor := ApplyKey("abc", 99, KeyTab)
	assert.Equal(t, "abc    ", content)
	assert.Equal(t, 7, cursor)

	content, cursor = ApplyKey("abc", -1, KeyTab)
	assert.Equal(t, "    abc", content)
	assert.Equal(t, 4, cursor)
}

func TestApplyKeyUnknownKeyIsNoop(t *testing.T) {
	content, cursor := ApplyKey("abc", 1, "escape")
	assert.Equal(t, "abc", content)
	assert.Equal(t, 1, cursor)
}

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory("")
	h.Push("a")
	h.Push("ab")

	content, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, "a", content)

	content, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, "ab", content)

	_, ok = h.Redo()
	assert.False(t, ok)
}

func TestHistoryUndoStopsAtInitial(t *testing.T) {
	h := NewHistory("start")
	h.Push("next")

	_, ok := h.Undo()
	require.True(t, ok)

	content, ok := h.Undo()
	assert.False(t, ok)
	assert.Equal(t, "start", content)
}

func TestHistoryPushDiscardsRedoTail(t *testing.T) {
	h := NewHistory("")
	h.Push("a")
	h.Push("ab")
	h.Undo()
	h.Push("ax")

	_, ok := h.Redo()
	assert.False(t, ok)
	assert.Equal(t, "ax", h.Current())
}

func TestHistoryBounded(t *testing.T) {
	h := NewHistory("0")
	for i := 1; i <= HistoryLimit+10; i++ {
		h.Push(fmt.Sprintf("%d", i))
	}

	undos := 0
	for {
		if _, ok := h.Undo(); !ok {
			break
		}
		undos++
	}

	// The oldest snapshots were dropped at the bound.
	assert.Equal(t, HistoryLimit-1, undos)
	assert.Equal(t, fmt.Sprintf("%d", 11), h.Current())
}
