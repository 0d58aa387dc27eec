package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/hanpama/mdword/internal/document"
)

// RuleWidth is the width of the underscore line standing in for a rule.
const RuleWidth = 80

// RenderText renders an ElementScanner to plain text with ASCII tables.
func RenderText(scanner document.ElementScanner, w io.Writer) error {
	for {
		elem, err := scanner.Next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("error reading content: %w", err)
		}

		if err := renderElement(elem, w); err != nil {
			return err
		}
	}
}

func renderElement(elem document.Element, w io.Writer) error {
	switch e := elem.(type) {
	case *document.Heading:
		return renderHeading(e, w)
	case *document.Rule:
		_, err := fmt.Fprintln(w, strings.Repeat("_", RuleWidth))
		return err
	case *document.Table:
		return renderTable(e, w)
	case *document.CodeBlock:
		return renderCodeBlock(e, w)
	case *document.BulletListItem:
		_, err := fmt.Fprintf(w, "  • %s\n", e.Text)
		return err
	case *document.NumberedListItem:
		_, err := fmt.Fprintf(w, "  %d. %s\n", e.Number, e.Text)
		return err
	case *document.Paragraph:
		_, err := fmt.Fprintln(w, e.Text)
		return err
	}
	return nil
}

// Level 1 and 2 headings are underlined, setext style.
func renderHeading(h *document.Heading, w io.Writer) error {
	if _, err := fmt.Fprintln(w, h.Text); err != nil {
		return err
	}

	var underline string
	switch h.Level {
	case 1:
		underline = "="
	case 2:
		underline = "-"
	default:
		return nil
	}

	width := displayWidth(h.Text)
	if width == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, strings.Repeat(underline, width))
	return err
}

func renderTable(docTable *document.Table, w io.Writer) error {
	if docTable.Cols() == 0 {
		return nil
	}

	t := &Table{
		Rows:   docTable.Rows,
		Header: docTable.HeaderRowIsFirst,
	}

	if _, err := fmt.Fprint(w, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func renderCodeBlock(code *document.CodeBlock, w io.Writer) error {
	for _, line := range code.Lines {
		if _, err := fmt.Fprintf(w, "    %s\n", line); err != nil {
			return err
		}
	}
	return nil
}
