package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/fatih/color"
)

func TestReportError(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"missing", fmt.Errorf("failed to read in.md: %w", fs.ErrNotExist), "❌ Error: in.md not found\n"},
		{"other", errors.New("disk full"), "❌ Error: disk full\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reportError(&buf, "in.md", tt.err)
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
