package steam

import (
	"strings"

	"golang.org/x/net/html"
)

// CleanText strips HTML markup from a rich-text field and returns plain text.
// Text nodes are joined with single spaces and surrounding whitespace is
// trimmed. Malformed markup degrades to best-effort extraction; the tokenizer
// never fails, so neither does this function.
func CleanText(markup string) string {
	if markup == "" {
		return ""
	}

	var parts []string
	tokenizer := html.NewTokenizer(strings.NewReader(markup))

	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			// io.EOF or malformed input; either way we keep what we have
			break
		}
		if tokenType == html.TextToken {
			text := strings.TrimSpace(tokenizer.Token().Data)
			if text != "" {
				parts = append(parts, text)
			}
		}
	}

	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
