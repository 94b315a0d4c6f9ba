package descr

import (
	"fmt"
	"io"
	"strings"
)

var defaultMarkdownHeader = []string{"Field", "Value"}

// writeMarkdown renders each item as a two-column GitHub-flavored Markdown
// table. Multiple items are separated by a blank line so consecutive tables
// stay distinct when rendered.
func writeMarkdown[T Describable](w io.Writer, items []T) error {
	for i, item := range items {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeItemMarkdown(w, item); err != nil {
			return err
		}
	}
	return nil
}

func writeItemMarkdown[T Describable](w io.Writer, item T) error {
	f := build(item)
	rows := componentRows(f)

	header := defaultMarkdownHeader
	if h, ok := any(item).(Headed); ok {
		header = h.Header()
	}

	var aligns []Alignment
	if a, ok := any(item).(Aligned); ok {
		aligns = a.Alignments()
	}
	aligns = extendAligns(aligns, 2)

	// Column widths, minimum 3 for alignment markers.
	widths := computeWidths(header, rows)
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}

	sep := make([]string, len(widths))
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = alignCell(cell, width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
