package markdown

import (
	"regexp"

	"github.com/hanpama/mdword/internal/document"
)

// inlinePass is one markup substitution. The first submatch is the text that
// survives; a second submatch, when present, is the link target.
type inlinePass struct {
	pattern *regexp.Regexp
	mark    func(style *document.Style, target string)
}

// Order matters: bold pairs must be gone before the single-asterisk pass runs.
var inlinePasses = []inlinePass{
	{
		pattern: regexp.MustCompile(`\*\*(.*?)\*\*`),
		mark:    func(s *document.Style, _ string) { s.Bold = true },
	},
	{
		pattern: regexp.MustCompile(`\*(.*?)\*`),
		mark:    func(s *document.Style, _ string) { s.Italic = true },
	},
	{
		pattern: regexp.MustCompile("`(.*?)`"),
		mark:    func(s *document.Style, _ string) { s.Code = true },
	},
	{
		pattern: regexp.MustCompile(`\[([^\]]+)\]\(([^\)]+)\)`),
		mark:    func(s *document.Style, target string) { s.Link = target },
	},
}

// Stylize removes bold, italic, inline code and link markup from raw,
// keeping link display text.
func Stylize(raw string) string {
	text := raw
	for _, pass := range inlinePasses {
		text = pass.pattern.ReplaceAllString(text, "$1")
	}
	return text
}

// styledText is text with one style per byte.
type styledText struct {
	text   []byte
	styles []document.Style
}

// Spans applies the same substitutions as Stylize but keeps what each marker
// meant. The returned runs concatenate to Stylize(raw).
func Spans(raw string) []document.Run {
	st := &styledText{
		text:   []byte(raw),
		styles: make([]document.Style, len(raw)),
	}
	for _, pass := range inlinePasses {
		st = st.apply(pass)
	}
	return st.runs()
}

func (st *styledText) apply(pass inlinePass) *styledText {
	matches := pass.pattern.FindAllSubmatchIndex(st.text, -1)
	if len(matches) == 0 {
		return st
	}

	out := &styledText{
		text:   make([]byte, 0, len(st.text)),
		styles: make([]document.Style, 0, len(st.styles)),
	}

	last := 0
	for _, m := range matches {
		out.text = append(out.text, st.text[last:m[0]]...)
		out.styles = append(out.styles, st.styles[last:m[0]]...)

		var target string
		if len(m) >= 6 && m[4] >= 0 {
			target = string(st.text[m[4]:m[5]])
		}

		for i := m[2]; i < m[3]; i++ {
			style := st.styles[i]
			pass.mark(&style, target)
			out.text = append(out.text, st.text[i])
			out.styles = append(out.styles, style)
		}

		last = m[1]
	}
	out.text = append(out.text, st.text[last:]...)
	out.styles = append(out.styles, st.styles[last:]...)

	return out
}

// runs coalesces neighbouring bytes of equal style.
func (st *styledText) runs() []document.Run {
	if len(st.text) == 0 {
		return nil
	}

	var runs []document.Run
	start := 0
	for i := 1; i <= len(st.text); i++ {
		if i < len(st.text) && st.styles[i] == st.styles[start] {
			continue
		}
		runs = append(runs, document.Run{
			Text:  string(st.text[start:i]),
			Style: st.styles[start],
		})
		start = i
	}
	return runs
}
