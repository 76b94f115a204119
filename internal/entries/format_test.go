package entries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatContentNumberedList(t *testing.T) {
	got := FormatContent("1. a\n2. b\nplain")
	assert.Equal(t, "<ol><li>a</li><li>b</li></ol><p>plain</p>", got)
}

func TestFormatContentBulletMarkersNormalize(t *testing.T) {
	got := FormatContent("- x\n* y\n• z")
	assert.Equal(t, "<ul><li>x</li><li>y</li><li>z</li></ul>", got)
}

func TestFormatContentSwitchingListTypeClosesWrapper(t *testing.T) {
	got := FormatContent("1. first\n- second")
	assert.Equal(t, "<ol><li>first</li></ol><ul><li>second</li></ul>", got)

	got = FormatContent("- first\n1. second")
	assert.Equal(t, "<ul><li>first</li></ul><ol><li>second</li></ol>", got)
}

func TestFormatContentBlankAndPlainLines(t *testing.T) {
	got := FormatContent("hello\n\nworld")
	assert.Equal(t, "<p>hello</p><br><p>world</p>", got)
}

func TestFormatContentListClosedAtEndOfInput(t *testing.T) {
	got := FormatContent("intro\n1. only item")
	assert.Equal(t, "<p>intro</p><ol><li>only item</li></ol>", got)
}

func TestFormatContentListInterruptedByBlank(t *testing.T) {
	got := FormatContent("1. a\n\n2. b")
	assert.Equal(t, "<ol><li>a</li></ol><br><ol><li>b</li></ol>", got)
}
