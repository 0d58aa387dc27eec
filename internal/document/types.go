package document

import (
	"io"
	"strings"
)

// Element is the interface for block-level document elements
type Element interface {
	IsElement()
}

// Style is the set of inline styles carried by a run of text.
// Link holds the target URL when the run is link display text.
type Style struct {
	Bold   bool
	Italic bool
	Code   bool
	Link   string
}

// Plain reports whether no style is set.
func (s Style) Plain() bool {
	return s == Style{}
}

// Run is a piece of inline text sharing one style
type Run struct {
	Text  string
	Style Style
}

// Heading represents a heading of level 1 to 4
type Heading struct {
	Level int
	Text  string
	Runs  []Run
}

func (h *Heading) IsElement() {}

// Rule represents a horizontal rule
type Rule struct{}

func (r *Rule) IsElement() {}

// Table represents a table. Every row has the same number of cells.
type Table struct {
	Rows             [][]string
	HeaderRowIsFirst bool
}

func (t *Table) IsElement() {}

// Cols returns the column count of the table.
func (t *Table) Cols() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// CodeBlock represents a fenced code block. Lines are stored verbatim.
type CodeBlock struct {
	Language string
	Lines    []string
}

func (c *CodeBlock) IsElement() {}

// Text returns the code joined with newlines.
func (c *CodeBlock) Text() string {
	return strings.Join(c.Lines, "\n")
}

// BulletListItem represents an unordered list item
type BulletListItem struct {
	Text string
	Runs []Run
}

func (b *BulletListItem) IsElement() {}

// NumberedListItem represents an ordered list item.
// Number is the ordinal written in the source.
type NumberedListItem struct {
	Number int
	Text   string
	Runs   []Run
}

func (n *NumberedListItem) IsElement() {}

// Paragraph represents a paragraph with text
type Paragraph struct {
	Text string
	Runs []Run
}

func (p *Paragraph) IsElement() {}

type ElementScanner interface {
	Next() (Element, error)
}

// SliceScanner scans a materialized element list.
type SliceScanner struct {
	elems []Element
	pos   int
}

func NewSliceScanner(elems []Element) *SliceScanner {
	return &SliceScanner{elems: elems}
}

// Next returns the next element, or io.EOF when the list is exhausted
func (s *SliceScanner) Next() (Element, error) {
	if s.pos >= len(s.elems) {
		return nil, io.EOF
	}
	elem := s.elems[s.pos]
	s.pos++
	return elem, nil
}

// Collect drains a scanner into a slice.
func Collect(scanner ElementScanner) ([]Element, error) {
	var elems []Element
	for {
		elem, err := scanner.Next()
		if err == io.EOF {
			return elems, nil
		}
		if err != nil {
			return elems, err
		}
		elems = append(elems, elem)
	}
}
