package htmltext

import (
	"strings"
	"testing"
)

func TestLinesBasic(t *testing.T) {
	html := `<html><head><title>ignored</title><script>var x;</script></head>
<body><p>First paragraph.</p><p>Second one.</p></body></html>`

	lines := Lines(html)
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %v", len(lines), lines)
	}
	if lines[0] != "First paragraph." || lines[1] != "Second one." {
		t.Errorf("got %v", lines)
	}
}

func TestScriptAndStyleSkipped(t *testing.T) {
	html := `<body><style>.a{color:red}</style><script>alert(1)</script><p>kept</p></body>`

	text := Text(html)
	if strings.Contains(text, "color") || strings.Contains(text, "alert") {
		t.Errorf("script/style leaked into text: %q", text)
	}
	if text != "kept" {
		t.Errorf("got %q, want %q", text, "kept")
	}
}

func TestInlineMarkupStaysOnOneLine(t *testing.T) {
	lines := Lines(`<p>a <b>bold</b> and <i>italic</i> word</p>`)
	if len(lines) != 1 || lines[0] != "a bold and italic word" {
		t.Errorf("got %v", lines)
	}
}

func TestBlockElementsBreakLines(t *testing.T) {
	lines := Lines(`<div>one</div><div>two</div><ul><li>three</li><li>four</li></ul>`)
	want := []string{"one", "two", "three", "four"}
	if len(lines) != len(want) {
		t.Fatalf("got %v", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWhitespaceCollapsed(t *testing.T) {
	lines := Lines("<p>spaced   \n\t  out</p>")
	if len(lines) != 1 || lines[0] != "spaced out" {
		t.Errorf("got %v", lines)
	}
}

func TestEmptyInput(t *testing.T) {
	if lines := Lines(""); len(lines) != 0 {
		t.Errorf("got %v from empty input", lines)
	}
	if lines := Lines("<p></p><div>  </div>"); len(lines) != 0 {
		t.Errorf("got %v from blank elements", lines)
	}
}

func TestPlainTextPassesThrough(t *testing.T) {
	lines := Lines("no markup here")
	if len(lines) != 1 || lines[0] != "no markup here" {
		t.Errorf("got %v", lines)
	}
}
