package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/ragview/internal/doctree"
)

// rowsPerNode groups CSV data rows so each chunk stays a manageable size.
const rowsPerNode = 20

// CSVParser handles CSV files. Each batch of rows becomes an untitled node
// whose Row is the 1-indexed line of its first data row.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	tree := &doctree.DocTree{
		Title: strings.TrimSuffix(filename, ".csv"),
	}
	if len(records) == 0 {
		return tree, nil
	}

	headers := records[0]
	dataRows := records[1:]

	for start := 0; start < len(dataRows); start += rowsPerNode {
		end := min(start+rowsPerNode, len(dataRows))

		var text strings.Builder
		for _, row := range dataRows[start:end] {
			text.WriteString(formatRow(headers, row))
			text.WriteString("\n")
		}

		tree.Children = append(tree.Children, &doctree.DocNode{
			Text: strings.TrimSpace(text.String()),
			Row:  start + 2, // line 1 is the header
		})
	}

	return tree, nil
}

func formatRow(headers, row []string) string {
	cells := make([]string, len(row))
	for j, cell := range row {
		if j < len(headers) && headers[j] != "" {
			cells[j] = headers[j] + ": " + cell
		} else {
			cells[j] = cell
		}
	}
	return strings.Join(cells, ", ")
}
