package model

import (
	"strings"

	"golang.org/x/net/html"
)

// SummaryLimit is the rune budget of a description summary.
const SummaryLimit = 50

// Summary flattens rich-text markup into a one-line plain-text preview:
// list items get a bullet, whitespace collapses, and the result is cut
// to SummaryLimit runes followed by "...". Empty input gives "".
func Summary(markup string) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		switch tt {
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "li":
				b.WriteString(" • ")
			case "p", "br", "div":
				b.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "li", "p", "div":
				b.WriteByte(' ')
			}
		}
	}
	text := strings.Join(strings.Fields(b.String()), " ")
	if text == "" {
		return ""
	}
	r := []rune(text)
	if len(r) > SummaryLimit {
		r = r[:SummaryLimit]
	}
	return string(r) + "..."
}
