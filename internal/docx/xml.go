package docx

import "encoding/xml"

// XML namespaces used in DOCX files
const (
	nsW        = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPkgRels  = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsTypes    = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsCP       = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsDC       = "http://purl.org/dc/elements/1.1/"
	nsDCTerms  = "http://purl.org/dc/terms/"
	nsXSI      = "http://www.w3.org/2001/XMLSchema-instance"
	relDoc     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCore    = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relStyles  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relNumber  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
	relLink    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
	ctDocument = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctStyles   = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ctNumber   = "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"
	ctCore     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctRels     = "application/vnd.openxmlformats-package.relationships+xml"
)

// documentXML is word/document.xml (<w:document>).
type documentXML struct {
	XMLName xml.Name `xml:"w:document"`
	NSW     string   `xml:"xmlns:w,attr"`
	NSR     string   `xml:"xmlns:r,attr"`
	Body    bodyXML  `xml:"w:body"`
}

// bodyXML keeps paragraphs and tables in one slice to preserve their order.
type bodyXML struct {
	Content []any     `xml:",any"`
	SectPr  sectPrXML `xml:"w:sectPr"`
}

// paragraphXML represents a paragraph element (<w:p>).
// Content holds runs and hyperlinks.
type paragraphXML struct {
	XMLName xml.Name           `xml:"w:p"`
	Props   *paragraphPropsXML `xml:"w:pPr,omitempty"`
	Content []any              `xml:",any"`
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style *valXML   `xml:"w:pStyle,omitempty"`
	NumPr *numPrXML `xml:"w:numPr,omitempty"`
}

type valXML struct {
	Val string `xml:"w:val,attr"`
}

// numPrXML attaches a paragraph to a numbering instance.
type numPrXML struct {
	ILvl  valXML `xml:"w:ilvl"`
	NumID valXML `xml:"w:numId"`
}

// runXML represents a text run (<w:r>).
type runXML struct {
	XMLName xml.Name     `xml:"w:r"`
	Props   *runPropsXML `xml:"w:rPr,omitempty"`
	Break   *struct{}    `xml:"w:br,omitempty"`
	Tab     *struct{}    `xml:"w:tab,omitempty"`
	Text    *textXML     `xml:"w:t,omitempty"`
}

// runPropsXML represents run properties (<w:rPr>), in schema order.
type runPropsXML struct {
	Style  *valXML   `xml:"w:rStyle,omitempty"`
	Fonts  *fontsXML `xml:"w:rFonts,omitempty"`
	Bold   *struct{} `xml:"w:b,omitempty"`
	Italic *struct{} `xml:"w:i,omitempty"`
	Size   *valXML   `xml:"w:sz,omitempty"`
}

type fontsXML struct {
	ASCII string `xml:"w:ascii,attr"`
	HAnsi string `xml:"w:hAnsi,attr"`
	CS    string `xml:"w:cs,attr"`
}

// textXML represents text content (<w:t>).
type textXML struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

// hyperlinkXML represents an external hyperlink (<w:hyperlink>).
type hyperlinkXML struct {
	XMLName xml.Name `xml:"w:hyperlink"`
	ID      string   `xml:"r:id,attr"`
	Runs    []runXML `xml:"w:r"`
}

// bookmarkStartXML opens a bookmark (<w:bookmarkStart>).
type bookmarkStartXML struct {
	XMLName xml.Name `xml:"w:bookmarkStart"`
	ID      int      `xml:"w:id,attr"`
	Name    string   `xml:"w:name,attr"`
}

// bookmarkEndXML closes the bookmark with the same ID (<w:bookmarkEnd>).
type bookmarkEndXML struct {
	XMLName xml.Name `xml:"w:bookmarkEnd"`
	ID      int      `xml:"w:id,attr"`
}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	XMLName xml.Name      `xml:"w:tbl"`
	Props   tablePropsXML `xml:"w:tblPr"`
	Grid    tableGridXML  `xml:"w:tblGrid"`
	Rows    []tableRowXML `xml:"w:tr"`
}

type tablePropsXML struct {
	Style valXML   `xml:"w:tblStyle"`
	Width widthXML `xml:"w:tblW"`
	Look  lookXML  `xml:"w:tblLook"`
}

type widthXML struct {
	W    int    `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type lookXML struct {
	FirstRow string `xml:"w:firstRow,attr"`
	NoHBand  string `xml:"w:noHBand,attr"`
	NoVBand  string `xml:"w:noVBand,attr"`
}

type tableGridXML struct {
	Cols []gridColXML `xml:"w:gridCol"`
}

type gridColXML struct {
	W int `xml:"w:w,attr"`
}

type tableRowXML struct {
	Props *rowPropsXML   `xml:"w:trPr,omitempty"`
	Cells []tableCellXML `xml:"w:tc"`
}

type rowPropsXML struct {
	Header *struct{} `xml:"w:tblHeader,omitempty"`
}

type tableCellXML struct {
	Props      cellPropsXML   `xml:"w:tcPr"`
	Paragraphs []paragraphXML `xml:"w:p"`
}

type cellPropsXML struct {
	Width widthXML `xml:"w:tcW"`
}

// sectPrXML sets a US Letter page with one inch margins.
type sectPrXML struct {
	PgSz  pgSzXML  `xml:"w:pgSz"`
	PgMar pgMarXML `xml:"w:pgMar"`
}

type pgSzXML struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type pgMarXML struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

// relationshipsXML is a package or part relationships file.
type relationshipsXML struct {
	XMLName       xml.Name          `xml:"Relationships"`
	NS            string            `xml:"xmlns,attr"`
	Relationships []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// contentTypesXML is [Content_Types].xml.
type contentTypesXML struct {
	XMLName   xml.Name      `xml:"Types"`
	NS        string        `xml:"xmlns,attr"`
	Defaults  []defaultXML  `xml:"Default"`
	Overrides []overrideXML `xml:"Override"`
}

type defaultXML struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type overrideXML struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// corePropertiesXML is docProps/core.xml.
type corePropertiesXML struct {
	XMLName   xml.Name `xml:"cp:coreProperties"`
	NSCP      string   `xml:"xmlns:cp,attr"`
	NSDC      string   `xml:"xmlns:dc,attr"`
	NSDCTerms string   `xml:"xmlns:dcterms,attr"`
	NSXSI     string   `xml:"xmlns:xsi,attr"`
	Title     string   `xml:"dc:title,omitempty"`
	Creator   string   `xml:"dc:creator,omitempty"`
}
