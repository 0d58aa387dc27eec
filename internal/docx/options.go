package docx

import "math"

// Options configures the generated document. Zero fields take the value
// from DefaultOptions.
type Options struct {
	FontFamily     string
	FontSize       float64 // points
	CodeFontFamily string
	CodeFontSize   float64 // points
	TableStyle     string  // style ID applied to every table
	Title          string
	Author         string
}

// DefaultOptions returns Calibri 11pt body text with Courier New 9pt code.
func DefaultOptions() Options {
	return Options{
		FontFamily:     "Calibri",
		FontSize:       11,
		CodeFontFamily: "Courier New",
		CodeFontSize:   9,
		TableStyle:     "LightGrid-Accent1",
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.FontFamily == "" {
		o.FontFamily = def.FontFamily
	}
	if o.FontSize <= 0 {
		o.FontSize = def.FontSize
	}
	if o.CodeFontFamily == "" {
		o.CodeFontFamily = def.CodeFontFamily
	}
	if o.CodeFontSize <= 0 {
		o.CodeFontSize = def.CodeFontSize
	}
	if o.TableStyle == "" {
		o.TableStyle = def.TableStyle
	}
	return o
}

// halfPoints converts points to the half-point unit used by w:sz.
func halfPoints(pt float64) int {
	return int(math.Round(pt * 2))
}
