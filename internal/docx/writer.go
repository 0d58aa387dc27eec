// Package docx writes document elements as an Office Open XML (.docx) package.
//
// The package holds the main document part, style and numbering definitions,
// core properties, and the relationships tying them together. Inline styles
// carried by runs are kept: bold, italic, code (set in the code font) and
// links (written as external hyperlinks).
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shurcooL/sanitized_anchor_name"

	"github.com/hanpama/mdword/internal/document"
)

// RuleWidth is the number of underscores written for a horizontal rule.
const RuleWidth = 80

// textWidth is the usable page width in twips (US Letter less 1in margins).
const textWidth = 9360

// maxBookmarkName is the longest bookmark name Word accepts.
const maxBookmarkName = 40

const (
	relIDStyles    = "rId1"
	relIDNumbering = "rId2"
	firstLinkRelID = 3
)

// Write encodes elems as a .docx package to w.
func Write(w io.Writer, elems []document.Element, opts Options) error {
	opts = opts.withDefaults()

	b := newBuilder(opts)
	for _, elem := range elems {
		b.add(elem)
	}

	parts, err := b.parts()
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	for _, part := range parts {
		fw, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", part.name, err)
		}
		if _, err := fw.Write(part.data); err != nil {
			return fmt.Errorf("failed to write %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish package: %w", err)
	}
	return nil
}

// WriteFile writes elems to the named file, replacing it if it exists.
func WriteFile(name string, elems []document.Element, opts Options) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}

	if err := Write(file, elems, opts); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

type part struct {
	name string
	data []byte
}

// builder accumulates the body of word/document.xml together with the
// hyperlink relationships and numbering instances it refers to.
type builder struct {
	opts Options
	body []any

	links     []relationshipXML
	linkIDs   map[string]string
	numbered  []numberedList
	inNumList bool
	bookmarkNames map[string]bool
	bookmarks     int
}

func newBuilder(opts Options) *builder {
	return &builder{
		opts:    opts,
		body:    make([]any, 0),
		linkIDs: make(map[string]string),
		bookmarkNames: make(map[string]bool),
	}
}

func (b *builder) add(elem document.Element) {
	_, numbered := elem.(*document.NumberedListItem)
	if !numbered {
		b.inNumList = false
	}

	switch e := elem.(type) {
	case *document.Heading:
		b.body = append(b.body, paragraphXML{
			Props:   &paragraphPropsXML{Style: &valXML{Val: "Heading" + strconv.Itoa(clampLevel(e.Level))}},
			Content: b.bookmark(e.Text, b.inline(e.Text, e.Runs)),
		})
	case *document.Rule:
		b.body = append(b.body, paragraphXML{
			Content: []any{plainRun(strings.Repeat("_", RuleWidth), nil)},
		})
	case *document.Table:
		if e.Cols() > 0 {
			b.body = append(b.body, b.table(e))
		}
	case *document.CodeBlock:
		b.body = append(b.body, b.codeBlock(e))
	case *document.BulletListItem:
		b.body = append(b.body, paragraphXML{
			Props: &paragraphPropsXML{
				Style: &valXML{Val: "ListBullet"},
				NumPr: numPr(bulletNumID),
			},
			Content: b.inline(e.Text, e.Runs),
		})
	case *document.NumberedListItem:
		if !b.inNumList {
			b.numbered = append(b.numbered, numberedList{
				NumID: bulletNumID + 1 + len(b.numbered),
				Start: max(e.Number, 1),
			})
			b.inNumList = true
		}
		current := b.numbered[len(b.numbered)-1]
		b.body = append(b.body, paragraphXML{
			Props: &paragraphPropsXML{
				Style: &valXML{Val: "ListNumber"},
				NumPr: numPr(current.NumID),
			},
			Content: b.inline(e.Text, e.Runs),
		})
	case *document.Paragraph:
		b.body = append(b.body, paragraphXML{
			Content: b.inline(e.Text, e.Runs),
		})
	}
}

func clampLevel(level int) int {
	return min(max(level, 1), len(headingSizes))
}

// bookmark wraps content in a bookmark named after text. A name already in
// use gets the first free numeric suffix.
func (b *builder) bookmark(text string, content []any) []any {
	anchor := sanitized_anchor_name.Create(text)
	if anchor == "" {
		return content
	}

	base := []rune("_" + anchor)
	name := truncateRunes(base, maxBookmarkName)
	for n := 1; b.bookmarkNames[name]; n++ {
		suffix := fmt.Sprintf("-%d", n)
		name = truncateRunes(base, maxBookmarkName-len(suffix)) + suffix
	}
	b.bookmarkNames[name] = true

	id := b.bookmarks
	b.bookmarks++

	wrapped := make([]any, 0, len(content)+2)
	wrapped = append(wrapped, bookmarkStartXML{ID: id, Name: name})
	wrapped = append(wrapped, content...)
	return append(wrapped, bookmarkEndXML{ID: id})
}

func truncateRunes(r []rune, n int) string {
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}

func numPr(numID int) *numPrXML {
	return &numPrXML{
		ILvl:  valXML{Val: "0"},
		NumID: valXML{Val: strconv.Itoa(numID)},
	}
}

func plainRun(text string, props *runPropsXML) runXML {
	return runXML{
		Props: props,
		Text:  &textXML{Space: "preserve", Value: text},
	}
}

// inline converts runs into w:r elements, grouping consecutive runs that
// share a link target into one w:hyperlink.
func (b *builder) inline(text string, runs []document.Run) []any {
	if len(runs) == 0 {
		if text == "" {
			return nil
		}
		runs = []document.Run{{Text: text}}
	}

	content := make([]any, 0, len(runs))
	var link *hyperlinkXML
	for _, run := range runs {
		r := plainRun(run.Text, b.runProps(run.Style))

		if run.Style.Link == "" {
			link = nil
			content = append(content, r)
			continue
		}

		id := b.linkID(run.Style.Link)
		if link == nil || link.ID != id {
			link = &hyperlinkXML{ID: id}
			content = append(content, link)
		}
		link.Runs = append(link.Runs, r)
	}
	return content
}

func (b *builder) runProps(style document.Style) *runPropsXML {
	if style.Plain() {
		return nil
	}

	props := &runPropsXML{}
	if style.Link != "" {
		props.Style = &valXML{Val: "Hyperlink"}
	}
	if style.Code {
		props.Fonts = b.codeFonts()
	}
	if style.Bold {
		props.Bold = &struct{}{}
	}
	if style.Italic {
		props.Italic = &struct{}{}
	}
	return props
}

func (b *builder) codeFonts() *fontsXML {
	return &fontsXML{
		ASCII: b.opts.CodeFontFamily,
		HAnsi: b.opts.CodeFontFamily,
		CS:    b.opts.CodeFontFamily,
	}
}

// linkID returns the relationship ID for url, registering it once.
func (b *builder) linkID(url string) string {
	if id, ok := b.linkIDs[url]; ok {
		return id
	}
	id := "rId" + strconv.Itoa(firstLinkRelID+len(b.links))
	b.linkIDs[url] = id
	b.links = append(b.links, relationshipXML{
		ID:         id,
		Type:       relLink,
		Target:     url,
		TargetMode: "External",
	})
	return id
}

// codeBlock writes the code in one paragraph with a line break between lines.
func (b *builder) codeBlock(code *document.CodeBlock) paragraphXML {
	props := &runPropsXML{
		Fonts: b.codeFonts(),
		Size:  &valXML{Val: strconv.Itoa(halfPoints(b.opts.CodeFontSize))},
	}

	content := make([]any, 0, 2*len(code.Lines))
	for i, line := range code.Lines {
		if i > 0 {
			content = append(content, runXML{Props: props, Break: &struct{}{}})
		}
		// tabs inside w:t are not rendered
		for j, piece := range strings.Split(line, "\t") {
			if j > 0 {
				content = append(content, runXML{Props: props, Tab: &struct{}{}})
			}
			if piece != "" {
				content = append(content, plainRun(piece, props))
			}
		}
	}

	return paragraphXML{
		Props:   &paragraphPropsXML{Style: &valXML{Val: "NoSpacing"}},
		Content: content,
	}
}

// table writes cells verbatim; the header row is bold and repeats on each page.
func (b *builder) table(t *document.Table) tableXML {
	cols := t.Cols()
	colWidth := textWidth / cols

	tbl := tableXML{
		Props: tablePropsXML{
			Style: valXML{Val: b.opts.TableStyle},
			Width: widthXML{W: 0, Type: "auto"},
			Look:  lookXML{FirstRow: "1", NoHBand: "0", NoVBand: "1"},
		},
	}
	for i := 0; i < cols; i++ {
		tbl.Grid.Cols = append(tbl.Grid.Cols, gridColXML{W: colWidth})
	}

	for rowIdx, row := range t.Rows {
		header := rowIdx == 0 && t.HeaderRowIsFirst

		var tr tableRowXML
		var props *runPropsXML
		if header {
			tr.Props = &rowPropsXML{Header: &struct{}{}}
			props = &runPropsXML{Bold: &struct{}{}}
		}

		for col := 0; col < cols; col++ {
			var text string
			if col < len(row) {
				text = row[col]
			}

			p := paragraphXML{}
			if text != "" {
				p.Content = []any{plainRun(text, props)}
			}
			tr.Cells = append(tr.Cells, tableCellXML{
				Props:      cellPropsXML{Width: widthXML{W: colWidth, Type: "dxa"}},
				Paragraphs: []paragraphXML{p},
			})
		}
		tbl.Rows = append(tbl.Rows, tr)
	}

	return tbl
}

func (b *builder) parts() ([]part, error) {
	doc := documentXML{
		NSW: nsW,
		NSR: nsR,
		Body: bodyXML{
			Content: b.body,
			SectPr: sectPrXML{
				PgSz:  pgSzXML{W: 12240, H: 15840},
				PgMar: pgMarXML{Top: 1440, Right: 1440, Bottom: 1440, Left: 1440, Header: 720, Footer: 720},
			},
		},
	}

	docRels := relationshipsXML{
		NS: nsPkgRels,
		Relationships: append([]relationshipXML{
			{ID: relIDStyles, Type: relStyles, Target: "styles.xml"},
			{ID: relIDNumbering, Type: relNumber, Target: "numbering.xml"},
		}, b.links...),
	}

	pkgRels := relationshipsXML{
		NS: nsPkgRels,
		Relationships: []relationshipXML{
			{ID: "rId1", Type: relDoc, Target: "word/document.xml"},
			{ID: "rId2", Type: relCore, Target: "docProps/core.xml"},
		},
	}

	types := contentTypesXML{
		NS: nsTypes,
		Defaults: []defaultXML{
			{Extension: "rels", ContentType: ctRels},
			{Extension: "xml", ContentType: "application/xml"},
		},
		Overrides: []overrideXML{
			{PartName: "/word/document.xml", ContentType: ctDocument},
			{PartName: "/word/styles.xml", ContentType: ctStyles},
			{PartName: "/word/numbering.xml", ContentType: ctNumber},
			{PartName: "/docProps/core.xml", ContentType: ctCore},
		},
	}

	core := corePropertiesXML{
		NSCP:      nsCP,
		NSDC:      nsDC,
		NSDCTerms: nsDCTerms,
		NSXSI:     nsXSI,
		Title:     b.opts.Title,
		Creator:   b.opts.Author,
	}

	styles, err := renderStyles(b.opts)
	if err != nil {
		return nil, err
	}
	numbering, err := renderNumbering(b.numbered)
	if err != nil {
		return nil, err
	}

	var parts []part
	for _, p := range []struct {
		name string
		v    any
	}{
		{"[Content_Types].xml", types},
		{"_rels/.rels", pkgRels},
		{"word/document.xml", doc},
		{"word/_rels/document.xml.rels", docRels},
		{"docProps/core.xml", core},
	} {
		data, err := marshalPart(p.v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", p.name, err)
		}
		parts = append(parts, part{name: p.name, data: data})
	}

	return append(parts,
		part{name: "word/styles.xml", data: styles},
		part{name: "word/numbering.xml", data: numbering},
	), nil
}

func marshalPart(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}
