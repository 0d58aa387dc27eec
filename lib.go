// Package mdword converts Markdown documents into Word (.docx) documents.
//
// The converter understands the subset of Markdown found in typical technical
// write-ups: ATX headings up to level 4, pipe tables, fenced code blocks,
// bullet and numbered list items, horizontal rules and paragraphs, with bold,
// italic, code and link spans inside text.
//
// # Example Usage
//
//	if err := mdword.ConvertFile("JOURNEY.md", "JOURNEY.docx", mdword.DefaultOptions()); err != nil {
//		log.Fatal(err)
//	}
//
// # Output Formats
//
// Docx (.docx): Office Open XML package
//   - Heading1..Heading4 styles, list numbering, bold header rows
//   - Code blocks in a monospaced font, links as hyperlinks
//
// Text (.txt): plain text with ASCII-bordered tables
//
// Outline: one table row per element, for checking how lines were classified
package mdword

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hanpama/mdword/internal/document"
	"github.com/hanpama/mdword/internal/docx"
	"github.com/hanpama/mdword/internal/markdown"
	"github.com/hanpama/mdword/internal/render"
	"github.com/hanpama/mdword/internal/source"
)

// Element is one block of a converted document.
type Element = document.Element

// Options configures the generated .docx document.
type Options = docx.Options

// DefaultOptions returns Calibri 11pt body text with Courier New 9pt code.
func DefaultOptions() Options {
	return docx.DefaultOptions()
}

// Format selects the output written by Convert.
type Format int

const (
	FormatDocx Format = iota
	FormatText
	FormatOutline
)

func (f Format) String() string {
	switch f {
	case FormatDocx:
		return "docx"
	case FormatText:
		return "text"
	case FormatOutline:
		return "outline"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the format named by s: "docx", "text" or "outline".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "docx":
		return FormatDocx, nil
	case "text", "txt":
		return FormatText, nil
	case "outline":
		return FormatOutline, nil
	}
	return 0, fmt.Errorf("unknown format %q", s)
}

// FormatForPath picks the format from the file extension:
//   - .txt → FormatText
//   - .docx or other → FormatDocx
func FormatForPath(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".txt" {
		return FormatText
	}
	return FormatDocx
}

// Transcode classifies lines into document elements in input order.
func Transcode(lines []string) []Element {
	return markdown.Transcode(lines)
}

// Convert reads Markdown from in and writes it to out in the given format.
func Convert(in io.Reader, out io.Writer, format Format, opts Options) error {
	lines, err := source.ReadLines(in)
	if err != nil {
		return err
	}

	return write(markdown.Transcode(lines), out, format, opts)
}

// ConvertFile converts the Markdown file src and writes it to dst, picking the
// output format from dst's extension. A missing src is reported with an error
// matching fs.ErrNotExist.
func ConvertFile(src, dst string, opts Options) error {
	lines, err := source.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}

	elems := markdown.Transcode(lines)

	format := FormatForPath(dst)
	if format == FormatDocx {
		if err := docx.WriteFile(dst, elems, opts); err != nil {
			return fmt.Errorf("failed to write %s: %w", dst, err)
		}
		return nil
	}

	file, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	if err := write(elems, file, format, opts); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func write(elems []Element, out io.Writer, format Format, opts Options) error {
	switch format {
	case FormatDocx:
		if err := docx.Write(out, elems, opts); err != nil {
			return fmt.Errorf("failed to write docx: %w", err)
		}
	case FormatText:
		if err := render.RenderText(document.NewSliceScanner(elems), out); err != nil {
			return fmt.Errorf("failed to render text: %w", err)
		}
	case FormatOutline:
		render.RenderOutline(elems, out)
	default:
		return fmt.Errorf("unsupported format %v", format)
	}
	return nil
}
