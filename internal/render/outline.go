package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"

	"github.com/hanpama/mdword/internal/document"
)

// outlineTextWidth bounds the content column of the outline.
const outlineTextWidth = 60

// RenderOutline writes one table row per element, naming its kind and a
// short preview of its content.
func RenderOutline(elems []document.Element, w io.Writer) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", "Kind", "Content"})

	for i, elem := range elems {
		kind, content := describe(elem)
		tw.AppendRow(table.Row{i + 1, kind, runewidth.Truncate(content, outlineTextWidth, "…")})
	}

	tw.AppendFooter(table.Row{"", "Total", len(elems)})
	tw.Render()
}

func describe(elem document.Element) (kind string, content string) {
	switch e := elem.(type) {
	case *document.Heading:
		return fmt.Sprintf("Heading %d", e.Level), e.Text
	case *document.Rule:
		return "Rule", ""
	case *document.Table:
		return "Table", fmt.Sprintf("%d rows × %d cols", len(e.Rows), e.Cols())
	case *document.CodeBlock:
		if e.Language != "" {
			return "Code", fmt.Sprintf("%s, %d lines", e.Language, len(e.Lines))
		}
		return "Code", fmt.Sprintf("%d lines", len(e.Lines))
	case *document.BulletListItem:
		return "Bullet", e.Text
	case *document.NumberedListItem:
		return fmt.Sprintf("Numbered %d", e.Number), e.Text
	case *document.Paragraph:
		return "Paragraph", e.Text
	}
	return "Unknown", ""
}
