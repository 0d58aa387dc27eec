package markdown

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hanpama/mdword/internal/document"
)

func TestStylize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"**bold** and *italic* and `code` and [text](http://x)", "bold and italic and code and text"},
		{"plain text", "plain text"},
		{"**a** **b**", "a b"},
		{"*a **b** c*", "a b c"},
		{"2 * 3 * 4", "2  3  4"},
		{"unclosed **bold", "unclosed bold"},
		{"[a](x) and [b](y)", "a and b"},
		{"[](x)", "[](x)"},
		{"`**not bold**`", "not bold"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Stylize(tt.in); got != tt.want {
			t.Errorf("Stylize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSpans(t *testing.T) {
	got := Spans("**bold** and *italic* and `code` and [text](http://x)")
	want := []document.Run{
		{Text: "bold", Style: document.Style{Bold: true}},
		{Text: " and "},
		{Text: "italic", Style: document.Style{Italic: true}},
		{Text: " and "},
		{Text: "code", Style: document.Style{Code: true}},
		{Text: " and "},
		{Text: "text", Style: document.Style{Link: "http://x"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Spans mismatch (-want +got):\n%s", diff)
	}
}

func TestSpansOverlappingStyles(t *testing.T) {
	got := Spans("*a **b** c*")
	want := []document.Run{
		{Text: "a ", Style: document.Style{Italic: true}},
		{Text: "b", Style: document.Style{Bold: true, Italic: true}},
		{Text: " c", Style: document.Style{Italic: true}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Spans mismatch (-want +got):\n%s", diff)
	}
}

func TestSpansMatchStylize(t *testing.T) {
	inputs := []string{
		"**bold** and *italic* and `code` and [text](http://x)",
		"*a **b** c*",
		"**",
		"****",
		"a * b * c",
		"**[z](w)** then `[q](r)`",
		"한글 **굵게** 그리고 *기울임*",
		"[unterminated](link",
		"",
	}

	for _, in := range inputs {
		var sb strings.Builder
		for _, run := range Spans(in) {
			sb.WriteString(run.Text)
		}
		if got, want := sb.String(), Stylize(in); got != want {
			t.Errorf("Spans(%q) joined = %q, Stylize = %q", in, got, want)
		}
	}
}

func TestSpansEmpty(t *testing.T) {
	if runs := Spans(""); runs != nil {
		t.Errorf("Spans(\"\") = %v, want nil", runs)
	}
}
