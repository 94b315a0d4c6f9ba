package descr

import (
	"encoding/json"
	"io"
)

// view is the document shape shared by the JSON and YAML formats. Absent
// values encode as null; the IncludeNilValues policy is applied before
// encoding, so dropped components never reach the document.
type view struct {
	Type       string      `json:"type,omitempty" yaml:"type,omitempty"`
	Components []viewEntry `json:"components" yaml:"components"`
}

type viewEntry struct {
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
	Value *string `json:"value" yaml:"value"`
}

func makeView(f *Formatter) view {
	v := view{Type: f.TypeName, Components: []viewEntry{}}
	for _, c := range f.filtered() {
		e := viewEntry{Label: c.label}
		if c.present {
			text := c.text
			e.Value = &text
		}
		v.Components = append(v.Components, e)
	}
	return v
}

func writeJSON[T Describable](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	if len(items) > 0 {
		if ind, ok := any(items[0]).(Indented); ok {
			enc.SetIndent("", ind.Indent())
		}
	}
	if len(items) == 1 {
		return enc.Encode(makeView(build(items[0])))
	}
	views := make([]view, len(items))
	for i, item := range items {
		views[i] = makeView(build(item))
	}
	return enc.Encode(views)
}
