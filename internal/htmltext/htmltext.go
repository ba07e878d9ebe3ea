// Package htmltext extracts plain text lines from HTML documents so web
// content can be fed into the tokenizer.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// skip elements whose text content is not document text
var skipElements = map[string]struct{}{
	"script": {},
	"style":  {},
	"head":   {},
}

// block elements that force a line break around their text
var blockElements = map[string]struct{}{
	"p": {}, "div": {}, "br": {}, "li": {}, "tr": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"blockquote": {}, "pre": {}, "section": {}, "article": {},
}

// Lines parses HTML and returns its visible text as trimmed, non-blank
// lines, with block elements starting new lines. Unparseable input falls
// back to a single line of the raw string.
func Lines(s string) []string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		if t := strings.TrimSpace(s); t != "" {
			return []string{t}
		}
		return nil
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, skip := skipElements[n.Data]; skip {
				return
			}
			if _, block := blockElements[n.Data]; block {
				buf.WriteString("\n")
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode {
			if _, block := blockElements[n.Data]; block {
				buf.WriteString("\n")
			}
		}
	}
	walk(doc)

	var lines []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if l := strings.TrimSpace(collapseSpace(line)); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Text returns the visible text as one space-joined string.
func Text(s string) string {
	return strings.Join(Lines(s), " ")
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
