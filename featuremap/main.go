package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fatih/color"

	"github.com/hanpama/mdword/internal/featuremap"
)

func main() {
	in := flag.String("in", "vectorizer.json", "vectorizer export with a vocabulary_ object")
	out := flag.String("out", "feature_map.json", "feature map to write")
	flag.Parse()

	n, err := featuremap.Export(*in, *out)
	if err != nil {
		reportError(os.Stderr, *in, err)
		os.Exit(1)
	}

	fmt.Printf("Saved feature map with %d terms to %s\n", n, *out)
}

func reportError(w io.Writer, src string, err error) {
	red := color.New(color.FgRed)
	if errors.Is(err, fs.ErrNotExist) {
		red.Fprintf(w, "Error: %s not found\n", src)
		return
	}
	red.Fprintf(w, "Error: %v\n", err)
}
