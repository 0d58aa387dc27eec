package markdown

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/hanpama/mdword/internal/document"
)

const (
	fence     = "```"
	ruleMark  = "---"
	cellSplit = "|"
)

// blockMatcher inspects the line under the cursor. When it recognizes its
// block kind it consumes the lines of the block and reports ok; elem may
// still be nil when the block produces no output (blank lines, empty tables).
type blockMatcher func(c *cursor) (elem document.Element, ok bool)

// blockMatchers are tried in order and the first match wins. matchParagraph
// accepts any line and must stay last.
var blockMatchers = []blockMatcher{
	matchBlank,
	matchHeading,
	matchRule,
	matchTable,
	matchCodeBlock,
	matchBulletItem,
	matchNumberedItem,
	matchParagraph,
}

// current returns the line under the cursor without trailing whitespace.
func current(c *cursor) string {
	line, _ := c.peek(0)
	return strings.TrimRightFunc(line, unicode.IsSpace)
}

func matchBlank(c *cursor) (document.Element, bool) {
	if current(c) != "" {
		return nil, false
	}
	c.advance(1)
	return nil, true
}

// Longest prefix first so "## x" is never read as a level 1 heading.
var headingPrefixes = []struct {
	prefix string
	level  int
}{
	{"#### ", 4},
	{"### ", 3},
	{"## ", 2},
	{"# ", 1},
}

func matchHeading(c *cursor) (document.Element, bool) {
	line := current(c)
	for _, h := range headingPrefixes {
		if strings.HasPrefix(line, h.prefix) {
			raw := line[len(h.prefix):]
			c.advance(1)
			return &document.Heading{
				Level: h.level,
				Text:  Stylize(raw),
				Runs:  Spans(raw),
			}, true
		}
	}
	return nil, false
}

func matchRule(c *cursor) (document.Element, bool) {
	if !strings.HasPrefix(current(c), ruleMark) {
		return nil, false
	}
	c.advance(1)
	return &document.Rule{}, true
}

func matchTable(c *cursor) (document.Element, bool) {
	next, ok := c.peek(1)
	if !strings.Contains(current(c), cellSplit) || !ok || !strings.Contains(next, cellSplit) {
		return nil, false
	}

	var rows [][]string
	n := 0
	for {
		line, ok := c.peek(n)
		if !ok || !strings.Contains(line, cellSplit) {
			break
		}
		n++
		if strings.Contains(line, ruleMark) {
			// separator row
			continue
		}
		rows = append(rows, splitRow(line))
	}
	c.advance(n)

	if len(rows) == 0 {
		return nil, true
	}

	return &document.Table{
		Rows:             normalizeRows(rows),
		HeaderRowIsFirst: true,
	}, true
}

// splitRow drops the segments outside the outer pipes and trims each cell.
func splitRow(line string) []string {
	parts := strings.Split(line, cellSplit)
	if len(parts) < 3 {
		return []string{}
	}
	cells := make([]string, 0, len(parts)-2)
	for _, part := range parts[1 : len(parts)-1] {
		cells = append(cells, strings.TrimSpace(part))
	}
	return cells
}

// normalizeRows fits every row to the width of the first one: short rows are
// padded with empty cells and long rows are cut.
func normalizeRows(rows [][]string) [][]string {
	cols := len(rows[0])
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		fitted := make([]string, cols)
		copy(fitted, row)
		out = append(out, fitted)
	}
	return out
}

func matchCodeBlock(c *cursor) (document.Element, bool) {
	line := current(c)
	if !strings.HasPrefix(line, fence) {
		return nil, false
	}

	block := &document.CodeBlock{
		Language: strings.TrimSpace(line[len(fence):]),
	}

	// An unterminated fence takes the rest of the input.
	n := 1
	for {
		line, ok := c.peek(n)
		if !ok {
			break
		}
		n++
		if strings.HasPrefix(strings.TrimSpace(line), fence) {
			break
		}
		block.Lines = append(block.Lines, line)
	}
	c.advance(n)

	if len(block.Lines) == 0 {
		return nil, true
	}
	return block, true
}

func matchBulletItem(c *cursor) (document.Element, bool) {
	line := current(c)
	if !strings.HasPrefix(line, "- ") && !strings.HasPrefix(line, "* ") {
		return nil, false
	}
	raw := strings.TrimSpace(line[2:])
	c.advance(1)
	return &document.BulletListItem{
		Text: Stylize(raw),
		Runs: Spans(raw),
	}, true
}

var numberedPrefix = regexp.MustCompile(`^(\d+)\. `)

func matchNumberedItem(c *cursor) (document.Element, bool) {
	line := current(c)
	m := numberedPrefix.FindStringSubmatchIndex(line)
	if m == nil {
		return nil, false
	}
	number, err := strconv.Atoi(line[m[2]:m[3]])
	if err != nil {
		number = 1
	}
	raw := strings.TrimSpace(line[m[1]:])
	c.advance(1)
	return &document.NumberedListItem{
		Number: number,
		Text:   Stylize(raw),
		Runs:   Spans(raw),
	}, true
}

func matchParagraph(c *cursor) (document.Element, bool) {
	raw := current(c)
	c.advance(1)
	return &document.Paragraph{
		Text: Stylize(raw),
		Runs: Spans(raw),
	}, true
}
