package statement

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dslipak/pdf"
)

// TextSource yields the full plain-text content of a document, page
// texts concatenated in reading order.
type TextSource interface {
	PlainText() (string, error)
}

type pdfSource struct {
	reader *pdf.Reader
}

// Open returns a TextSource backed by the PDF file at path.
func Open(path string) (src TextSource, err error) {
	// The pdf library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			src, err = nil, fmt.Errorf("%w: %v", ErrUnreadable, r)
		}
	}()

	r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return &pdfSource{reader: r}, nil
}

// NewSource returns a TextSource for an in-memory PDF byte stream.
func NewSource(r io.ReaderAt, size int64) (src TextSource, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			src, err = nil, fmt.Errorf("%w: %v", ErrUnreadable, rec)
		}
	}()

	rd, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return &pdfSource{reader: rd}, nil
}

func (s *pdfSource) PlainText() (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: %v", ErrUnreadable, r)
		}
	}()

	b, err := s.reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(b); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return buf.String(), nil
}
