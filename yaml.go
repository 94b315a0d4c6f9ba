package descr

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML[T Describable](w io.Writer, items []T) error {
	enc := yaml.NewEncoder(w)
	if len(items) > 0 {
		if ind, ok := any(items[0]).(Indented); ok {
			enc.SetIndent(len(ind.Indent()))
		}
	}
	if len(items) == 1 {
		if err := enc.Encode(makeView(build(items[0]))); err != nil {
			return err
		}
	} else {
		views := make([]view, len(items))
		for i, item := range items {
			views[i] = makeView(build(item))
		}
		if err := enc.Encode(views); err != nil {
			return err
		}
	}
	return enc.Close()
}
