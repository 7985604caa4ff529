// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package generator

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/nguyenthenguyen/docx"
)

const (
	docxLineBytes   = 56   // "DOCX_Line_<n>_<token>_FillerTextToIncreaseFileSize_"
	docxMaxLines    = 360  // lines per paragraph, about 20 KB of text
	docxLineDivisor = 2000 // target bytes per paragraph line below the cap
	docxAttempts    = 12
	docxSafety      = 0.95
	wordNamespace   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
)

// CreateDocx returns a DOCX document normalized to the target size
func (g *Generator) CreateDocx() ([]byte, error) {
	return g.Create(FormatDOCX)
}

// encodeDocx fills a word document with paragraphs of unique filler lines.
// The package skeleton is written once and the docx editor swaps in the body
// for every size attempt.
func (g *Generator) encodeDocx(target int64) ([]byte, error) {
	skeleton, err := docxSkeleton(g.baseName)
	if err != nil {
		return nil, fmt.Errorf("failed to build DOCX skeleton: %w", err)
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(skeleton), int64(len(skeleton)))
	if err != nil {
		return nil, fmt.Errorf("failed to open DOCX skeleton: %w", err)
	}
	defer doc.Close()

	lines := int(clamp(target/docxLineDivisor, 4, docxMaxLines))
	plan := newFillPlan(target, int64(lines*docxLineBytes), deflateShrink, docxAttempts, docxSafety)

	next := func(i int) string {
		var sb strings.Builder
		sb.Grow(lines * docxLineBytes)
		for j := 0; j < lines; j++ {
			fmt.Fprintf(&sb, "DOCX_Line_%d_%s_FillerTextToIncreaseFileSize_", i*lines+j, token(8))
		}
		return sb.String()
	}
	encode := func(paragraphs []string) ([]byte, error) {
		editable := doc.Editable()
		editable.SetContent(renderDocumentXML(paragraphs))
		var buf bytes.Buffer
		if err := editable.Write(&buf); err != nil {
			return nil, fmt.Errorf("failed to write DOCX: %w", err)
		}
		return buf.Bytes(), nil
	}

	data, kept, err := fitUnits(target, plan, next, encode)
	if err != nil {
		return nil, err
	}
	g.log.Debugf("docx: %d paragraphs of %d lines, %d bytes encoded", kept, lines, len(data))
	return data, nil
}

func renderDocumentXML(paragraphs []string) string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<w:document xmlns:w="` + wordNamespace + `"><w:body>`)
	for _, p := range paragraphs {
		sb.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		xml.EscapeText(&sb, []byte(p))
		sb.WriteString(`</w:t></w:r></w:p>`)
	}
	sb.WriteString(`<w:sectPr/></w:body></w:document>`)
	return sb.String()
}

// docxSkeleton writes a minimal WordprocessingML package with an empty body
func docxSkeleton(title string) ([]byte, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	parts := []zipPart{
		{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>
</Types>`},
		{"_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>
</Relationships>`},
		{"docProps/core.xml", coreProperties(title, timestamp)},
		{"docProps/app.xml", appProperties("Microsoft Office Word")},
		{"word/document.xml", renderDocumentXML(nil)},
		{"word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`},
		{"word/styles.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="` + wordNamespace + `">
<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>
</w:styles>`},
	}
	return writeZip(parts)
}

type zipPart struct {
	name string
	body string
}

func writeZip(parts []zipPart) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	now := time.Now()
	for _, part := range parts {
		header := &zip.FileHeader{Name: part.name, Method: zip.Deflate}
		header.Modified = now
		w, err := zw.CreateHeader(header)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(part.body)); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func coreProperties(title, timestamp string) string {
	var escaped bytes.Buffer
	xml.EscapeText(&escaped, []byte(title))
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
<dc:title>%s</dc:title>
<dc:creator>dummy-forge</dc:creator>
<cp:lastModifiedBy>dummy-forge</cp:lastModifiedBy>
<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>
<dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>
</cp:coreProperties>`, escaped.String(), timestamp, timestamp)
}

func appProperties(application string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">
<Application>` + application + `</Application>
</Properties>`
}
