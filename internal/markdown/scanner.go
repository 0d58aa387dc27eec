// Package markdown turns lines of a small Markdown subset into document
// elements.
//
// Each line is classified by trying a fixed list of block matchers in
// priority order. Tables and fenced code blocks look ahead and consume the
// whole run of lines that belongs to them; everything else consumes a single
// line. Inline markup is rewritten by Stylize and Spans.
//
// Malformed input never fails: it degrades into paragraphs.
package markdown

import (
	"context"
	"io"

	"github.com/hanpama/mdword/internal/document"
)

// Scanner implements document.ElementScanner over a sequence of lines.
type Scanner struct {
	cur *cursor
}

// NewScanner creates a Scanner. The lines must not carry line terminators.
func NewScanner(lines []string) *Scanner {
	return &Scanner{cur: newCursor(lines)}
}

// Next returns the next element, or io.EOF when the input is exhausted
func (s *Scanner) Next() (document.Element, error) {
	for !s.cur.atEnd() {
		if elem := s.step(); elem != nil {
			return elem, nil
		}
	}
	return nil, io.EOF
}

// step classifies the line under the cursor and consumes its block.
func (s *Scanner) step() document.Element {
	for _, match := range blockMatchers {
		if elem, ok := match(s.cur); ok {
			return elem
		}
	}
	s.cur.advance(1)
	return nil
}

// Transcode converts lines into document elements in source order.
func Transcode(lines []string) []document.Element {
	elems, _ := TranscodeContext(context.Background(), lines)
	return elems
}

// TranscodeContext is Transcode with cancellation. ctx is checked between
// blocks; on cancellation the elements produced so far are returned along
// with ctx.Err().
func TranscodeContext(ctx context.Context, lines []string) ([]document.Element, error) {
	s := NewScanner(lines)
	elems := make([]document.Element, 0)
	for !s.cur.atEnd() {
		if err := ctx.Err(); err != nil {
			return elems, err
		}
		if elem := s.step(); elem != nil {
			elems = append(elems, elem)
		}
	}
	return elems, nil
}
