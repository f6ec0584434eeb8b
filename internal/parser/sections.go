package parser

import (
	"strings"

	"github.com/dgallion1/ragview/internal/doctree"
)

// sectionBuilder nests headings by level and attaches body text to the
// innermost open section. Text seen before the first heading lands on
// the root and is kept only if no heading ever appears.
type sectionBuilder struct {
	root    *doctree.DocNode
	stack   []openSection
	pending strings.Builder
}

type openSection struct {
	node  *doctree.DocNode
	level int
}

func newSectionBuilder(title string) *sectionBuilder {
	root := &doctree.DocNode{Title: title}
	return &sectionBuilder{
		root:  root,
		stack: []openSection{{node: root, level: 0}},
	}
}

// heading opens a new section at level (1 = outermost).
func (b *sectionBuilder) heading(level int, title string) {
	b.flush()
	node := &doctree.DocNode{Title: title}
	for len(b.stack) > 1 && b.stack[len(b.stack)-1].level >= level {
		b.stack = b.stack[:len(b.stack)-1]
	}
	parent := b.stack[len(b.stack)-1].node
	parent.Children = append(parent.Children, node)
	b.stack = append(b.stack, openSection{node: node, level: level})
}

// text buffers a paragraph for the current section.
func (b *sectionBuilder) text(t string) {
	if t == "" {
		return
	}
	if b.pending.Len() > 0 {
		b.pending.WriteString("\n\n")
	}
	b.pending.WriteString(t)
}

func (b *sectionBuilder) flush() {
	t := strings.TrimSpace(b.pending.String())
	b.pending.Reset()
	if t == "" {
		return
	}
	top := b.stack[len(b.stack)-1].node
	if top.Text != "" {
		top.Text += "\n\n" + t
	} else {
		top.Text = t
	}
}

// children finishes the tree and returns the top-level sections.
func (b *sectionBuilder) children() []*doctree.DocNode {
	b.flush()
	if len(b.root.Children) == 0 && b.root.Text != "" {
		return []*doctree.DocNode{{Text: b.root.Text}}
	}
	return b.root.Children
}
