package descr

import (
	"io"
	"strings"
)

func writeList[T Describable](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	sep := "\n"
	if s, ok := any(items[0]).(Separator); ok {
		sep = s.Sep()
	}
	var all []string
	for _, item := range items {
		for _, c := range build(item).filtered() {
			all = append(all, c.render())
		}
	}
	if len(all) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(all, sep)+"\n")
	return err
}
