// Package source loads Markdown input as lines.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// MaxLineSize is the longest line ReadLines accepts.
const MaxLineSize = 16 << 20

// ReadLines reads all lines from r with their terminators removed.
//
// Input is UTF-8 unless it starts with a byte order mark, in which case
// UTF-8 or UTF-16 (either byte order) is decoded accordingly. Line content
// is otherwise returned byte for byte.
func ReadLines(r io.Reader) ([]string, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	lines := make([]string, 0)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}

	return lines, nil
}

// ReadFile reads the lines of the named file. A missing file yields an
// error matching fs.ErrNotExist.
func ReadFile(name string) ([]string, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	lines, err := ReadLines(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return lines, nil
}
