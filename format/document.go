package format

import "strings"

const (
	maxDocumentBase = 20
	minDocumentBase = 9
	ellipsis        = "..."
)

// DocumentName is a document file name split for display.
type DocumentName struct {
	// Base is the name without its extension, shortened with an ellipsis when it was too long.
	Base string

	// Extension is the part after the last dot, without the dot. It is empty if the name has no dot.
	Extension string

	// Truncated reports whether Base was shortened.
	Truncated bool
}

// String joins the base name and the extension again.
func (d DocumentName) String() string {
	if d.Extension == "" {
		return d.Base
	}
	return d.Base + "." + d.Extension
}

// TruncateDocumentName shortens a document name so that siblings names fit in one row.
//
// The room for the base name starts at 20 characters for a single document and shrinks by
// 2 for every additional sibling, down to 9. A longer base name is cut to that length and
// followed by an ellipsis; the extension is always kept.
func TruncateDocumentName(name string, siblings int) DocumentName {
	base, ext := name, ""
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		base, ext = name[:i], name[i+1:]
	}

	limit := min(max(maxDocumentBase-2*(siblings-1), minDocumentBase), maxDocumentBase)
	runes := []rune(base)
	if len(runes) <= limit {
		return DocumentName{Base: base, Extension: ext}
	}
	return DocumentName{
		Base:      string(runes[:limit]) + ellipsis,
		Extension: ext,
		Truncated: true,
	}
}
