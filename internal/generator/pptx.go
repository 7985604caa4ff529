// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package generator

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

const (
	pptxItemBytes    = 32 // "Slide_<i>_Item_<j>_<token>_"
	pptxItemDivisor  = 5000
	pptxMinItems     = 10
	pptxMaxItems     = 2000
	pptxAttempts     = 12
	pptxSafety       = 0.90
	presentationNS   = "http://schemas.openxmlformats.org/presentationml/2006/main"
	drawingNS        = "http://schemas.openxmlformats.org/drawingml/2006/main"
	relationshipNS   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	packageRelNS     = "http://schemas.openxmlformats.org/package/2006/relationships"
	officeRelTypes   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/"
	presentationMime = "application/vnd.openxmlformats-officedocument.presentationml."
)

// CreatePptx returns a PPTX slideshow normalized to the target size
func (g *Generator) CreatePptx() ([]byte, error) {
	return g.Create(FormatPPTX)
}

// encodePptx adds slides holding a single text box of unique items
func (g *Generator) encodePptx(target int64) ([]byte, error) {
	items := int(clamp(target/pptxItemDivisor, pptxMinItems, pptxMaxItems))
	plan := newFillPlan(target, int64(items*pptxItemBytes), deflateShrink, pptxAttempts, pptxSafety)
	created := time.Now().UTC().Format(time.RFC3339)

	next := func(i int) string {
		var sb strings.Builder
		sb.Grow(items * pptxItemBytes)
		for j := 0; j < items; j++ {
			fmt.Fprintf(&sb, "Slide_%d_Item_%d_%s_", i, j, token(8))
		}
		return sb.String()
	}
	encode := func(slides []string) ([]byte, error) {
		data, err := writeZip(presentationParts(g.baseName, created, slides))
		if err != nil {
			return nil, fmt.Errorf("failed to write PPTX: %w", err)
		}
		return data, nil
	}

	data, kept, err := fitUnits(target, plan, next, encode)
	if err != nil {
		return nil, err
	}
	g.log.Debugf("pptx: %d slides of %d items, %d bytes encoded", kept, items, len(data))
	return data, nil
}

// presentationParts lays out a PresentationML package: one master, one blank
// layout, one theme and a slide per text block.
func presentationParts(title, created string, slides []string) []zipPart {
	var types, presRels, slideIDs strings.Builder
	for i := range slides {
		n := i + 1
		fmt.Fprintf(&types, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="%sslide+xml"/>`, n, presentationMime)
		fmt.Fprintf(&presRels, `<Relationship Id="rId%d" Type="%sslide" Target="slides/slide%d.xml"/>`, n+2, officeRelTypes, n)
		fmt.Fprintf(&slideIDs, `<p:sldId id="%d" r:id="rId%d"/>`, 255+n, n+2)
	}

	parts := []zipPart{
		{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/ppt/presentation.xml" ContentType="` + presentationMime + `presentation.main+xml"/>
<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="` + presentationMime + `slideMaster+xml"/>
<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="` + presentationMime + `slideLayout+xml"/>
<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>
<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>
` + types.String() + `</Types>`},
		{"_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="` + packageRelNS + `">
<Relationship Id="rId1" Type="` + officeRelTypes + `officeDocument" Target="ppt/presentation.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
<Relationship Id="rId3" Type="` + officeRelTypes + `extended-properties" Target="docProps/app.xml"/>
</Relationships>`},
		{"docProps/core.xml", coreProperties(title, created)},
		{"docProps/app.xml", appProperties("Microsoft Office PowerPoint")},
		{"ppt/presentation.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:a="` + drawingNS + `" xmlns:r="` + relationshipNS + `" xmlns:p="` + presentationNS + `">
<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>
<p:sldIdLst>` + slideIDs.String() + `</p:sldIdLst>
<p:sldSz cx="9144000" cy="6858000" type="screen4x3"/>
<p:notesSz cx="6858000" cy="9144000"/>
</p:presentation>`},
		{"ppt/_rels/presentation.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="` + packageRelNS + `">
<Relationship Id="rId1" Type="` + officeRelTypes + `slideMaster" Target="slideMasters/slideMaster1.xml"/>
<Relationship Id="rId2" Type="` + officeRelTypes + `theme" Target="theme/theme1.xml"/>
` + presRels.String() + `</Relationships>`},
		{"ppt/slideMasters/slideMaster1.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldMaster xmlns:a="` + drawingNS + `" xmlns:r="` + relationshipNS + `" xmlns:p="` + presentationNS + `">
<p:cSld><p:spTree>` + groupShapeHeader + `</p:spTree></p:cSld>
<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>
<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>
</p:sldMaster>`},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="` + packageRelNS + `">
<Relationship Id="rId1" Type="` + officeRelTypes + `slideLayout" Target="../slideLayouts/slideLayout1.xml"/>
<Relationship Id="rId2" Type="` + officeRelTypes + `theme" Target="../theme/theme1.xml"/>
</Relationships>`},
		{"ppt/slideLayouts/slideLayout1.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldLayout xmlns:a="` + drawingNS + `" xmlns:r="` + relationshipNS + `" xmlns:p="` + presentationNS + `" type="blank" preserve="1">
<p:cSld name="Blank"><p:spTree>` + groupShapeHeader + `</p:spTree></p:cSld>
<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>
</p:sldLayout>`},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="` + packageRelNS + `">
<Relationship Id="rId1" Type="` + officeRelTypes + `slideMaster" Target="../slideMasters/slideMaster1.xml"/>
</Relationships>`},
		{"ppt/theme/theme1.xml", themeXML},
	}

	for i, text := range slides {
		n := i + 1
		parts = append(parts,
			zipPart{fmt.Sprintf("ppt/slides/slide%d.xml", n), renderSlideXML(text)},
			zipPart{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="` + packageRelNS + `">
<Relationship Id="rId1" Type="` + officeRelTypes + `slideLayout" Target="../slideLayouts/slideLayout1.xml"/>
</Relationships>`},
		)
	}
	return parts
}

const groupShapeHeader = `<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`

// renderSlideXML places the text in a box anchored at (20pt, 20pt), 680x500pt
func renderSlideXML(text string) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString(`<p:sld xmlns:a="` + drawingNS + `" xmlns:r="` + relationshipNS + `" xmlns:p="` + presentationNS + `">`)
	sb.WriteString(`<p:cSld><p:spTree>` + groupShapeHeader)
	sb.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="2" name="TextBox 1"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`)
	sb.WriteString(`<p:spPr><a:xfrm><a:off x="254000" y="254000"/><a:ext cx="8636000" cy="6350000"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`)
	sb.WriteString(`<p:txBody><a:bodyPr wrap="square"><a:normAutofit/></a:bodyPr><a:lstStyle/><a:p><a:r><a:rPr lang="en-US" sz="1000" dirty="0"/><a:t>`)
	xml.EscapeText(&sb, []byte(text))
	sb.WriteString(`</a:t></a:r></a:p></p:txBody></p:sp>`)
	sb.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return sb.String()
}

const themeXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:theme xmlns:a="` + drawingNS + `" name="Office Theme">
<a:themeElements>
<a:clrScheme name="Office">
<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>
<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>
<a:dk2><a:srgbClr val="1F497D"/></a:dk2>
<a:lt2><a:srgbClr val="EEECE1"/></a:lt2>
<a:accent1><a:srgbClr val="4F81BD"/></a:accent1>
<a:accent2><a:srgbClr val="C0504D"/></a:accent2>
<a:accent3><a:srgbClr val="9BBB59"/></a:accent3>
<a:accent4><a:srgbClr val="8064A2"/></a:accent4>
<a:accent5><a:srgbClr val="4BACC6"/></a:accent5>
<a:accent6><a:srgbClr val="F79646"/></a:accent6>
<a:hlink><a:srgbClr val="0000FF"/></a:hlink>
<a:folHlink><a:srgbClr val="800080"/></a:folHlink>
</a:clrScheme>
<a:fontScheme name="Office">
<a:majorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>
<a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>
</a:fontScheme>
<a:fmtScheme name="Office">
<a:fillStyleLst>
<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
</a:fillStyleLst>
<a:lnStyleLst>
<a:ln w="9525"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
<a:ln w="25400"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
<a:ln w="38100"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
</a:lnStyleLst>
<a:effectStyleLst>
<a:effectStyle><a:effectLst/></a:effectStyle>
<a:effectStyle><a:effectLst/></a:effectStyle>
<a:effectStyle><a:effectLst/></a:effectStyle>
</a:effectStyleLst>
<a:bgFillStyleLst>
<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
</a:bgFillStyleLst>
</a:fmtScheme>
</a:themeElements>
<a:objectDefaults/>
<a:extraClrSchemeLst/>
</a:theme>`
