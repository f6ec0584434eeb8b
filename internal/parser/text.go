package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/ragview/internal/doctree"
)

// TextParser handles plain text files. Paragraphs are separated by blank
// lines. Form feeds, as written by pdftotext, start a new page; when a file
// contains any, each paragraph carries its 1-based page number.
type TextParser struct{}

type textParagraph struct {
	text string
	page int
}

func (p *TextParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		paras []textParagraph
		lines []string
		page  = 1
		paged bool
	)
	flush := func() {
		if len(lines) > 0 {
			paras = append(paras, textParagraph{text: strings.Join(lines, "\n"), page: page})
			lines = lines[:0]
		}
	}

	for scanner.Scan() {
		segments := strings.Split(scanner.Text(), "\f")
		for i, seg := range segments {
			if i > 0 {
				flush()
				page++
				paged = true
			}
			if strings.TrimSpace(seg) == "" {
				// A blank line ends a paragraph; an empty tail after a form
				// feed does not.
				if len(segments) == 1 {
					flush()
				}
				continue
			}
			lines = append(lines, strings.TrimRight(seg, " \t"))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()

	tree := &doctree.DocTree{Title: strings.TrimSuffix(filename, ".txt")}
	for _, para := range paras {
		node := &doctree.DocNode{Text: para.text}
		if paged {
			node.Page = para.page
		}
		tree.Children = append(tree.Children, node)
	}
	return tree, nil
}
