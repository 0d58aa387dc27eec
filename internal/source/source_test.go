package source

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/encoding/unicode"
)

func TestReadLines(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []string
	}{
		{"empty", nil, []string{}},
		{"lf", []byte("# A\n\nb\n"), []string{"# A", "", "b"}},
		{"crlf", []byte("# A\r\n\r\nb"), []string{"# A", "", "b"}},
		{"utf8 bom", append([]byte{0xEF, 0xBB, 0xBF}, "# 제목\n"...), []string{"# 제목"}},
		{"trailing spaces kept", []byte("code  \n"), []string{"code  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLines(bytes.NewReader(tt.in))
			if err != nil {
				t.Fatalf("ReadLines: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadLinesUTF16(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	in, err := enc.String("| 가 | 나 |\r\n| 1 | 2 |\r\n")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := ReadLines(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []string{"| 가 | 나 |", "| 1 | 2 |"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestReadLinesKeepsDecomposedText(t *testing.T) {
	got, err := ReadLines(strings.NewReader("cafe\u0301\n"))
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if got[0] != "cafe\u0301" {
		t.Errorf("got %q, want %q", got[0], "cafe\u0301")
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(name, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if diff := cmp.Diff([]string{"one", "two"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.md"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}
