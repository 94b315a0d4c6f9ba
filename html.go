package descr

import (
	"fmt"
	"html"
	"io"
)

// writeHTML renders each item as a two-column HTML table. The caption
// defaults to the description's type name; [Headed] adds a header row and
// [Aligned] sets per-column text-align styles.
func writeHTML[T Describable](w io.Writer, items []T) error {
	for _, item := range items {
		if err := writeItemHTML(w, item); err != nil {
			return err
		}
	}
	return nil
}

func writeItemHTML[T Describable](w io.Writer, item T) error {
	f := build(item)

	var aligns []Alignment
	if a, ok := any(item).(Aligned); ok {
		aligns = a.Alignments()
	}

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	caption := f.TypeName
	if t, ok := any(item).(Titled); ok {
		caption = t.Title()
	}
	if caption != "" {
		if _, err := fmt.Fprintf(w, "  <caption>%s</caption>\n", html.EscapeString(caption)); err != nil {
			return err
		}
	}

	if h, ok := any(item).(Headed); ok {
		if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for i, col := range h.Header() {
			style := alignStyle(aligns, i)
			if _, err := fmt.Fprintf(w, "      <th%s>%s</th>\n", style, html.EscapeString(col)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range componentRows(f) {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for i, cell := range row {
			style := alignStyle(aligns, i)
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", style, html.EscapeString(cell)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func alignStyle(aligns []Alignment, col int) string {
	if col >= len(aligns) {
		return ""
	}
	switch aligns[col] {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
