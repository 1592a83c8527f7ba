// Package document reads, renders and writes single HTML files.
package document

import (
	"bytes"
	"os"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Load reads the whole file at path and parses it.
func Load(path string) (*goquery.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ProcessingError{Path: path, Message: "file not found"}
		}
		return nil, &ProcessingError{Path: path, Message: "failed to stat file", Cause: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &ProcessingError{Path: path, Message: "not a regular file"}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ProcessingError{Path: path, Message: "failed to read file", Cause: err}
	}

	return Parse(path, content)
}

// Parse parses content; path is only used for error reporting.
func Parse(path string, content []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, &ProcessingError{Path: path, Message: "failed to parse HTML", Cause: err}
	}
	return doc, nil
}

// Render serializes the whole document tree.
func Render(doc *goquery.Document) ([]byte, error) {
	var buf bytes.Buffer
	for _, n := range doc.Nodes {
		if err := html.Render(&buf, n); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// Save renders doc and replaces the file at path with the result. The file is
// only opened for writing once rendering has fully succeeded, and it keeps
// its existing permissions.
func Save(path string, doc *goquery.Document) error {
	content, err := Render(doc)
	if err != nil {
		return &ProcessingError{Path: path, Message: "failed to render HTML", Cause: err}
	}

	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.WriteFile(path, content, perm); err != nil {
		return &ProcessingError{Path: path, Message: "failed to write file", Cause: err}
	}
	return nil
}
