package extract

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var slideEntryPattern = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// PPTX extracts slide text in slide order. Each text-bearing shape
// contributes its concatenated runs as one normalized line; the unit count
// is the number of slides, text or not.
func PPTX(path string) (string, int, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", 0, &ExtractionError{Path: path, Err: err}
	}
	defer zr.Close()

	type slideEntry struct {
		num  int
		file *zip.File
	}
	var slides []slideEntry
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		m := slideEntryPattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		num, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		slides = append(slides, slideEntry{num: num, file: f})
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].num < slides[j].num })

	var b strings.Builder
	for _, slide := range slides {
		rc, err := slide.file.Open()
		if err != nil {
			return "", 0, &ExtractionError{Path: path, Err: err}
		}
		shapes, err := slideShapeTexts(rc)
		rc.Close()
		if err != nil {
			return "", 0, &ExtractionError{Path: path, Err: err}
		}
		for _, shape := range shapes {
			b.WriteString(normalizeLine(shape))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), " \t\n"), len(slides), nil
}

// slideShapeTexts walks one slide's XML and returns the text of every shape
// that has a text body. A shape's text is the concatenation of its a:t runs.
func slideShapeTexts(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var shapes []string
	var current strings.Builder
	inBody := false
	inRun := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "txBody":
				inBody = true
				current.Reset()
			case "t":
				if inBody {
					inRun = true
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "txBody":
				if inBody {
					shapes = append(shapes, current.String())
					inBody = false
				}
			case "t":
				inRun = false
			}
		case xml.CharData:
			if inRun {
				current.Write(t)
			}
		}
	}
	return shapes, nil
}
