// Package extract turns uploaded resume files into analyzable text.
//
// Extraction is deliberately naive: any payload is read as UTF-8 text with
// control characters stripped, regardless of the declared MIME type. Binary
// formats such as PDF and DOCX therefore yield best-effort text only. This is
// a documented limitation of the service, not a parsing bug.
package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Text extracts raw text from an in-memory upload. It treats every declared
// MIME type uniformly and is total over any byte slice.
func Text(data []byte, mimeType string, fileName string) (string, error) {
	_ = mimeType
	_ = fileName

	var b strings.Builder
	b.Grow(len(data))
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		i += size
		if r == utf8.RuneError && size == 1 {
			continue
		}
		if r == '\n' || r == '\t' || !unicode.IsControl(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String()), nil
}
