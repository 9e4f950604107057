package extract

import (
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PDF extracts page text in order. Every page contributes one normalized
// line (possibly empty when a page carries no extractable text) and the
// unit count is the page count, validated up front with pdfcpu so corrupt
// files fail before any partial text is produced.
func PDF(path string) (string, int, error) {
	pageCount, err := api.PageCountFile(path)
	if err != nil {
		return "", 0, &ExtractionError{Path: path, Err: err}
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", 0, &ExtractionError{Path: path, Err: err}
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		b.WriteString(normalizeLine(pageText(reader, i)))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), " \t\n"), pageCount, nil
}

// pageText never fails: a page whose text cannot be decoded yields "".
func pageText(reader *pdf.Reader, num int) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	page := reader.Page(num)
	if page.V.IsNull() {
		return ""
	}
	plain, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return plain
}
