package markdown

// cursor is the scan position over the source lines. It only moves forward.
type cursor struct {
	lines []string
	pos   int
}

func newCursor(lines []string) *cursor {
	return &cursor{lines: lines}
}

func (c *cursor) atEnd() bool {
	return c.pos >= len(c.lines)
}

// peek returns the line k positions past the cursor.
func (c *cursor) peek(k int) (string, bool) {
	i := c.pos + k
	if k < 0 || i >= len(c.lines) {
		return "", false
	}
	return c.lines[i], true
}

func (c *cursor) advance(k int) {
	if k < 1 {
		k = 1
	}
	c.pos += k
	if c.pos > len(c.lines) {
		c.pos = len(c.lines)
	}
}
