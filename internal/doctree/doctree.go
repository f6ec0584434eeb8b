// Package doctree holds the section tree a parsed upload is reduced to
// before chunking.
package doctree

// DocTree is the root of a parsed document.
type DocTree struct {
	Title    string     // Document title (from metadata or filename)
	Children []*DocNode // Top-level sections
}

// DocNode is a recursive section in the document tree.
type DocNode struct {
	Title    string     // Section heading (empty for leaf text)
	Text     string     // Text content of this node (may be empty for container nodes)
	Page     int        // Source page (0 if N/A)
	Row      int        // First source row for tabular input (0 if N/A)
	Children []*DocNode // Subsections
}

// Chunk is a sized text segment with its location in the source document.
type Chunk struct {
	Text       string   // Chunk text content
	Index      int      // Sequence number within document
	Breadcrumb []string // Heading hierarchy, e.g. ["Financial Results", "Revenue", "Q4"]
	PageStart  int
	PageEnd    int
	Row        int
}
