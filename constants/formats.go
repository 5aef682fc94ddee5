package constants

import "strings"

// FileFormats holds the allowed values for the format field on documents.
var FileFormats = []string{"PDF", "DOCX", "DOC", "TXT", "RTF"}

const (
	PDF  = "PDF"
	DOCX = "DOCX"
	DOC  = "DOC"
	TXT  = "TXT"
	RTF  = "RTF"
)

var extToFormat = map[string]string{
	"pdf":  PDF,
	"docx": DOCX,
	"doc":  DOC,
	"txt":  TXT,
	"rtf":  RTF,
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat returns the document format for a file extension, or ""
// when the extension is not supported.
func MapExtToFormat(ext string) string {
	return extToFormat[NormalizeExt(ext)]
}
