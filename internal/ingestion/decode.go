// Package ingestion converts resume documents (PDF, DOCX, plain text)
// and saved job-posting HTML into raw text for the extraction core.
package ingestion

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// minViableChars mirrors the extraction core's minimum: a decoder output
// below this is reported as a failed document rather than handed on.
const minViableChars = 50

// ErrTooShort is returned when a decoded document yields too little text
// to be worth extracting.
var ErrTooShort = errors.New("could not extract sufficient text")

// ErrUnsupportedFormat is returned for file extensions the decoder does
// not handle.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Document is one decoded input: the name the caller knows it by and its
// raw UTF-8 text.
type Document struct {
	Name string
	Text string
}

// DecodeFile reads and decodes one document from disk.
func DecodeFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Decode(filepath.Base(path), data)
}

// Decode converts raw document bytes into text, dispatching on the file
// extension. The returned document always has at least minViableChars
// non-whitespace characters; anything less fails with ErrTooShort so the
// caller can report the document by name.
func Decode(name string, data []byte) (*Document, error) {
	var (
		text string
		err  error
	)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		text, err = decodePDF(data)
	case ".docx":
		text, err = decodeDocx(data)
	case ".txt":
		text, err = decodeText(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	if countNonWhitespace(text) < minViableChars {
		return nil, fmt.Errorf("%w from %s", ErrTooShort, name)
	}

	return &Document{Name: name, Text: text}, nil
}

// decodePDF extracts plain text page by page. When structured extraction
// fails it falls back to a lossy byte decode, which recovers at least
// the readable fragments of malformed files.
func decodePDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return strings.ToValidUTF8(string(data), ""), nil
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String()), nil
}

func decodeDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return strings.TrimSpace(doc.Editable().GetContent()), nil
}

// decodeText decodes plain text as UTF-8, falling back to Latin-1 for
// legacy exports.
func decodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return strings.TrimSpace(string(data)), nil
	}

	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return strings.TrimSpace(string(runes)), nil
}

func countNonWhitespace(text string) int {
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}
