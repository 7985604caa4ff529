package inspect

import (
	"bytes"
	"encoding/binary"

	"github.com/dummy-forge/internal/generator"
)

var (
	zipEndOfDirectory = []byte{0x50, 0x4B, 0x05, 0x06}
	pdfEOF            = []byte("%%EOF")
	jpegEOI           = []byte{0xFF, 0xD9}
)

// zipEndRecordLen is the fixed part of the end-of-central-directory record
const zipEndRecordLen = 22

// contentEnd locates where the format's own bytes stop and NUL padding begins.
// Readers that scan from the end of the file (zip, pdf xref) fail on padded data,
// so inspection always works on data[:contentEnd].
// When no trailer is found the whole input counts as content.
func contentEnd(format generator.Format, data []byte) int64 {
	size := int64(len(data))
	var end int64 = -1

	switch format {
	case generator.FormatDOCX, generator.FormatXLSX, generator.FormatPPTX:
		end = zipEnd(data)
	case generator.FormatPDF:
		end = pdfEnd(data)
	case generator.FormatJPG:
		if idx := bytes.LastIndex(data, jpegEOI); idx >= 0 {
			end = int64(idx + len(jpegEOI))
		}
	}

	if end < 0 || end > size {
		return size
	}
	return end
}

func zipEnd(data []byte) int64 {
	idx := bytes.LastIndex(data, zipEndOfDirectory)
	if idx < 0 || idx+zipEndRecordLen > len(data) {
		return -1
	}
	comment := binary.LittleEndian.Uint16(data[idx+20:])
	return int64(idx + zipEndRecordLen + int(comment))
}

func pdfEnd(data []byte) int64 {
	idx := bytes.LastIndex(data, pdfEOF)
	if idx < 0 {
		return -1
	}
	end := idx + len(pdfEOF)
	switch {
	case bytes.HasPrefix(data[end:], []byte("\r\n")):
		end += 2
	case bytes.HasPrefix(data[end:], []byte("\n")), bytes.HasPrefix(data[end:], []byte("\r")):
		end++
	}
	return int64(end)
}

// nonZero counts bytes in tail that are not NUL
func nonZero(tail []byte) int {
	n := 0
	for _, b := range tail {
		if b != 0 {
			n++
		}
	}
	return n
}
