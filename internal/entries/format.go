package entries

import (
	"regexp"
	"strings"
)

var (
	numberedLine = regexp.MustCompile(`^\d+\.\s*`)
	bulletLine   = regexp.MustCompile(`^[-*•]\s*`)
)

// FormatContent renders diary content as HTML, turning runs of numbered
// lines into <ol> and runs of bulleted lines into <ul>. A line belongs to
// at most one list; switching list type closes the previous wrapper first.
// Non-blank plain lines become <p>, blank lines become <br>.
func FormatContent(content string) string {
	var b strings.Builder
	inNumbered := false
	inBullet := false

	closeLists := func() {
		if inNumbered {
			b.WriteString("</ol>")
			inNumbered = false
		}
		if inBullet {
			b.WriteString("</ul>")
			inBullet = false
		}
	}

	for _, line := range strings.Split(content, "\n") {
		switch {
		case numberedLine.MatchString(line):
			if inBullet {
				b.WriteString("</ul>")
				inBullet = false
			}
			if !inNumbered {
				b.WriteString("<ol>")
				inNumbered = true
			}
			b.WriteString("<li>")
			b.WriteString(numberedLine.ReplaceAllString(line, ""))
			b.WriteString("</li>")

		case bulletLine.MatchString(line):
			if inNumbered {
				b.WriteString("</ol>")
				inNumbered = false
			}
			if !inBullet {
				b.WriteString("<ul>")
				inBullet = true
			}
			b.WriteString("<li>")
			b.WriteString(bulletLine.ReplaceAllString(line, ""))
			b.WriteString("</li>")

		default:
			closeLists()
			if strings.TrimSpace(line) == "" {
				b.WriteString("<br>")
			} else {
				b.WriteString("<p>")
				b.WriteString(line)
				b.WriteString("</p>")
			}
		}
	}

	closeLists()
	return b.String()
}
