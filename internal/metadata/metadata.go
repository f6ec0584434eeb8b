// Package metadata models the descriptive fields attached to a retrieved
// document chunk and the rules for displaying them.
package metadata

import (
	"strings"
	"unicode/utf16"
)

// ChunkMetadata is the metadata record returned with a chunk's contents.
// Every field is optional; nil means the backend did not supply it.
type ChunkMetadata struct {
	RowNumber  *int    `json:"row_number,omitempty"`
	PageNumber *int    `json:"page_number,omitempty"`
	HeaderPath *string `json:"header_path,omitempty"`
}

// BreadcrumbItem is one section title in a document location trail.
type BreadcrumbItem struct {
	Title string `json:"title"`
}

// HasMetadata reports whether any displayable field is present.
//
// header_path counts only when its raw length is greater than one, so "/"
// and single-letter paths are treated as absent. Length is measured in
// UTF-16 code units, the unit browsers use for string length, so a path
// made of one astral character such as an emoji has length 2.
func (m ChunkMetadata) HasMetadata() bool {
	return m.Row() != 0 ||
		m.Page() != 0 ||
		(m.HeaderPath != nil && utf16Len(*m.HeaderPath) > 1)
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// Row returns the row number, or 0 when absent.
func (m ChunkMetadata) Row() int {
	if m.RowNumber == nil {
		return 0
	}
	return *m.RowNumber
}

// Page returns the page number, or 0 when absent.
func (m ChunkMetadata) Page() int {
	if m.PageNumber == nil {
		return 0
	}
	return *m.PageNumber
}

// Path returns the header path, or "" when absent.
func (m ChunkMetadata) Path() string {
	if m.HeaderPath == nil {
		return ""
	}
	return *m.HeaderPath
}

// Breadcrumb returns the trail for the record's header path.
func (m ChunkMetadata) Breadcrumb() []BreadcrumbItem {
	return Breadcrumb(m.Path())
}

// Breadcrumb splits a slash-delimited header path into section titles,
// outermost first. Empty segments are dropped and each kept segment is
// trimmed. An empty path, or one made only of slashes, yields nil.
func Breadcrumb(headerPath string) []BreadcrumbItem {
	if headerPath == "" {
		return nil
	}
	var items []BreadcrumbItem
	for _, seg := range strings.Split(headerPath, "/") {
		if seg == "" {
			continue
		}
		items = append(items, BreadcrumbItem{Title: strings.TrimSpace(seg)})
	}
	return items
}

// Int returns a pointer to n, for building records by hand.
func Int(n int) *int { return &n }

// String returns a pointer to s.
func String(s string) *string { return &s }
