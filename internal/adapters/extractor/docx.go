package extractor

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DOCXExtractor pulls paragraph text from DOCX specifications.
// A .docx file is a zip container; the body lives in word/document.xml and
// visible text sits in <w:t> runs grouped into <w:p> paragraphs. Reading those
// two elements directly avoids dragging in a full OOXML object model.
type DOCXExtractor struct{}

// NewDOCXExtractor creates a DOCX extractor.
func NewDOCXExtractor() *DOCXExtractor {
	return &DOCXExtractor{}
}

// Extract returns up to maxChars of normalized paragraph text.
func (e *DOCXExtractor) Extract(ctx context.Context, path string, maxChars int) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("opening docx: %w", err)
	}
	defer zr.Close()

	var body *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			body = f
			break
		}
	}
	if body == nil {
		return "", errors.New("docx: word/document.xml not found")
	}

	rc, err := body.Open()
	if err != nil {
		return "", fmt.Errorf("opening document.xml: %w", err)
	}
	defer rc.Close()

	paras, err := readParagraphs(ctx, rc, maxChars)
	if err != nil {
		return "", err
	}
	return Truncate(CleanText(strings.Join(paras, "\n")), maxChars), nil
}

// readParagraphs walks the XML token stream collecting non-empty paragraphs
// until the budget is exceeded.
func readParagraphs(ctx context.Context, r io.Reader, maxChars int) ([]string, error) {
	dec := xml.NewDecoder(r)
	var paras []string
	var current strings.Builder
	total := 0

	for total <= maxChars {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				var run string
				if err := dec.DecodeElement(&run, &t); err != nil {
					return nil, fmt.Errorf("decoding text run: %w", err)
				}
				current.WriteString(run)
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				if text := strings.TrimSpace(current.String()); text != "" {
					paras = append(paras, text)
					total += len(text)
				}
				current.Reset()
			}
		}
	}
	return paras, nil
}

// Kind returns the format tag.
func (e *DOCXExtractor) Kind() string {
	return "docx"
}

// Extensions returns the file extensions this extractor handles.
func (e *DOCXExtractor) Extensions() []string {
	return []string{".docx"}
}
