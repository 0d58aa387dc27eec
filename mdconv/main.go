package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/hanpama/mdword"
)

func main() {
	output := flag.String("o", "", "output file (default: input with .docx extension)")
	format := flag.String("format", "", "output format: docx, text or outline (default: from output extension)")
	font := flag.String("font", "", "body font family")
	size := flag.Float64("size", 0, "body font size in points")
	title := flag.String("title", "", "document title")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <markdown-file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	src := flag.Arg(0)

	opts := mdword.DefaultOptions()
	if *font != "" {
		opts.FontFamily = *font
	}
	if *size > 0 {
		opts.FontSize = *size
	}
	opts.Title = *title

	if err := run(src, *output, *format, opts); err != nil {
		reportError(os.Stderr, src, err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, src string, err error) {
	red := color.New(color.FgRed)
	if errors.Is(err, fs.ErrNotExist) {
		red.Fprintf(w, "❌ Error: %s not found\n", src)
		return
	}
	red.Fprintf(w, "❌ Error: %v\n", err)
}

// run converts src. Without -format the output format follows dst's
// extension; text and outline without -o are written to stdout.
func run(src, dst, format string, opts mdword.Options) error {
	if format == "" {
		if dst == "" {
			dst = strings.TrimSuffix(src, filepath.Ext(src)) + ".docx"
		}
		if err := mdword.ConvertFile(src, dst, opts); err != nil {
			return err
		}
		color.Green("✅ Converted %s to %s", src, dst)
		return nil
	}

	f, err := mdword.ParseFormat(format)
	if err != nil {
		return err
	}
	if dst == "" && f == mdword.FormatDocx {
		dst = strings.TrimSuffix(src, filepath.Ext(src)) + ".docx"
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if dst == "" {
		return mdword.Convert(in, os.Stdout, f, opts)
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := mdword.Convert(in, out, f, opts); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	color.Green("✅ Converted %s to %s", src, dst)
	return nil
}
