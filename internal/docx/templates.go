package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"text/template"
)

var templateFuncs = template.FuncMap{
	"attr": func(s string) (string, error) {
		var buf bytes.Buffer
		if err := xml.EscapeText(&buf, []byte(s)); err != nil {
			return "", err
		}
		return buf.String(), nil
	},
	"half":              halfPoints,
	"bulletAbstractID":  func() int { return bulletAbstractID },
	"decimalAbstractID": func() int { return decimalAbstractID },
	"bulletNumID":       func() int { return bulletNumID },
}

// headingSizes are the Heading1..Heading4 font sizes in points.
var headingSizes = []float64{16, 13, 12, 11}

type stylesData struct {
	Options
	Headings []headingStyle
}

type headingStyle struct {
	Level   int
	Outline int
	Size    float64
}

var stylesTemplate = template.Must(template.New("styles").Funcs(templateFuncs).Parse(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:docDefaults>
<w:rPrDefault><w:rPr><w:rFonts w:ascii="{{attr .FontFamily}}" w:hAnsi="{{attr .FontFamily}}" w:eastAsia="{{attr .FontFamily}}" w:cs="{{attr .FontFamily}}"/><w:sz w:val="{{half .FontSize}}"/><w:szCs w:val="{{half .FontSize}}"/></w:rPr></w:rPrDefault>
<w:pPrDefault><w:pPr><w:spacing w:after="160" w:line="259" w:lineRule="auto"/></w:pPr></w:pPrDefault>
</w:docDefaults>
<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>
<w:style w:type="character" w:default="1" w:styleId="DefaultParagraphFont"><w:name w:val="Default Paragraph Font"/><w:uiPriority w:val="1"/><w:semiHidden/></w:style>
{{range .Headings}}<w:style w:type="paragraph" w:styleId="Heading{{.Level}}"><w:name w:val="heading {{.Level}}"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/><w:pPr><w:keepNext/><w:spacing w:before="240" w:after="80"/><w:outlineLvl w:val="{{.Outline}}"/></w:pPr><w:rPr><w:b/><w:color w:val="2F5496"/><w:sz w:val="{{half .Size}}"/><w:szCs w:val="{{half .Size}}"/></w:rPr></w:style>
{{end}}<w:style w:type="paragraph" w:styleId="ListBullet"><w:name w:val="List Bullet"/><w:basedOn w:val="Normal"/><w:pPr><w:numPr><w:numId w:val="{{bulletNumID}}"/></w:numPr><w:ind w:left="720" w:hanging="360"/><w:contextualSpacing/></w:pPr></w:style>
<w:style w:type="paragraph" w:styleId="ListNumber"><w:name w:val="List Number"/><w:basedOn w:val="Normal"/><w:pPr><w:ind w:left="720" w:hanging="360"/><w:contextualSpacing/></w:pPr></w:style>
<w:style w:type="paragraph" w:styleId="NoSpacing"><w:name w:val="No Spacing"/><w:qFormat/><w:pPr><w:spacing w:after="0" w:line="240" w:lineRule="auto"/></w:pPr></w:style>
<w:style w:type="character" w:styleId="Hyperlink"><w:name w:val="Hyperlink"/><w:basedOn w:val="DefaultParagraphFont"/><w:rPr><w:color w:val="0563C1"/><w:u w:val="single"/></w:rPr></w:style>
<w:style w:type="table" w:default="1" w:styleId="TableNormal"><w:name w:val="Normal Table"/><w:semiHidden/><w:tblPr><w:tblInd w:w="0" w:type="dxa"/><w:tblCellMar><w:top w:w="0" w:type="dxa"/><w:left w:w="108" w:type="dxa"/><w:bottom w:w="0" w:type="dxa"/><w:right w:w="108" w:type="dxa"/></w:tblCellMar></w:tblPr></w:style>
<w:style w:type="table" w:styleId="{{attr .TableStyle}}"><w:name w:val="{{attr .TableStyle}}"/><w:basedOn w:val="TableNormal"/><w:pPr><w:spacing w:after="0" w:line="240" w:lineRule="auto"/></w:pPr><w:tblPr><w:tblBorders><w:top w:val="single" w:sz="8" w:space="0" w:color="4F81BD"/><w:left w:val="single" w:sz="8" w:space="0" w:color="4F81BD"/><w:bottom w:val="single" w:sz="8" w:space="0" w:color="4F81BD"/><w:right w:val="single" w:sz="8" w:space="0" w:color="4F81BD"/><w:insideH w:val="single" w:sz="8" w:space="0" w:color="4F81BD"/><w:insideV w:val="single" w:sz="8" w:space="0" w:color="4F81BD"/></w:tblBorders></w:tblPr><w:tblStylePr w:type="firstRow"><w:rPr><w:b/></w:rPr><w:tcPr><w:shd w:val="clear" w:color="auto" w:fill="D3DFEE"/></w:tcPr></w:tblStylePr></w:style>
</w:styles>
`))

// numberedList is one run of consecutive numbered items, numbered from Start.
type numberedList struct {
	NumID int
	Start int
}

type numberingData struct {
	Numbered []numberedList
}

const (
	bulletAbstractID  = 0
	decimalAbstractID = 1
	bulletNumID       = 1
)

var numberingTemplate = template.Must(template.New("numbering").Funcs(templateFuncs).Parse(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:abstractNum w:abstractNumId="{{bulletAbstractID}}"><w:multiLevelType w:val="singleLevel"/><w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="•"/><w:lvlJc w:val="left"/><w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:lvl></w:abstractNum>
<w:abstractNum w:abstractNumId="{{decimalAbstractID}}"><w:multiLevelType w:val="singleLevel"/><w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="decimal"/><w:lvlText w:val="%1."/><w:lvlJc w:val="left"/><w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:lvl></w:abstractNum>
<w:num w:numId="{{bulletNumID}}"><w:abstractNumId w:val="{{bulletAbstractID}}"/></w:num>
{{range .Numbered}}<w:num w:numId="{{.NumID}}"><w:abstractNumId w:val="{{decimalAbstractID}}"/><w:lvlOverride w:ilvl="0"><w:startOverride w:val="{{.Start}}"/></w:lvlOverride></w:num>
{{end}}</w:numbering>
`))

func renderStyles(opts Options) ([]byte, error) {
	data := stylesData{Options: opts}
	for i, size := range headingSizes {
		data.Headings = append(data.Headings, headingStyle{Level: i + 1, Outline: i, Size: size})
	}

	var buf bytes.Buffer
	if err := stylesTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render styles: %w", err)
	}
	return buf.Bytes(), nil
}

func renderNumbering(lists []numberedList) ([]byte, error) {
	var buf bytes.Buffer
	if err := numberingTemplate.Execute(&buf, numberingData{Numbered: lists}); err != nil {
		return nil, fmt.Errorf("failed to render numbering: %w", err)
	}
	return buf.Bytes(), nil
}
