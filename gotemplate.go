package descr

import (
	"fmt"
	"io"
	"text/template"
)

// writeGoTemplate executes tmplStr against each item's description view
// (fields: Type, Components with Label, Value). Each item is written on its
// own line.
func writeGoTemplate[T Describable](w io.Writer, tmplStr string, items []T) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for _, item := range items {
		if err := tmpl.Execute(w, makeView(build(item))); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
