// Package document handles the text inputs an analysis runs over:
// raw strings, plain-text files and HTML files.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/cognicore/sentimeter/pkg/sentimeter/internalerr"
)

// Document is an immutable analysis input.
type Document struct {
	text string
}

// FromText wraps a raw text string.
func FromText(text string) Document {
	return Document{text: text}
}

// FromFile reads a document from disk. A missing file fails with
// internalerr.ErrFileNotFound before any analysis can start. Files with
// an .html or .htm extension have their visible text extracted.
func FromFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, fmt.Errorf("%w: %s", internalerr.ErrFileNotFound, path)
		}
		return Document{}, err
	}

	text := string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text = ExtractText(text)
	}

	return Document{text: text}, nil
}

// Text returns the document contents.
func (d Document) Text() string { return d.text }

// ExtractText strips markup from an HTML fragment, returning the
// concatenated text nodes. Script and style contents are skipped. If the
// input cannot be parsed the raw string is returned unchanged.
func ExtractText(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to string if parsing fails
		return s
	}

	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(doc)

	return strings.TrimSpace(buf.String())
}
