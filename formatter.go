package descr

import (
	"fmt"
	"reflect"
	"strings"
)

// nilText is the literal rendered for absent values.
const nilText = "nil"

// Formatter accumulates labeled components and renders them into a single
// description string. A Formatter is built fresh for each rendering; it is
// not safe for concurrent use.
type Formatter struct {
	// TypeName is the prefix of the rendered description. [String] seeds it
	// with the runtime type name of the value being described. Set it to a
	// different string to override, or to "" to drop the prefix entirely.
	TypeName string

	// IncludeNilValues controls whether components with absent values appear
	// in the output. Default true: absent values render as "nil". When false,
	// absent components are dropped at render time, label and all. Toggling
	// never affects the stored text of already-appended components.
	IncludeNilValues bool

	components []component
}

type component struct {
	label   string // "" means unlabeled
	text    string // converted at append time, never re-resolved
	present bool   // false: value was absent
	quoted  bool   // value was string-like; wrap text in double quotes
}

// Component is a read-only view of one appended component.
type Component struct {
	Label  string
	Value  string
	Nil    bool
	Quoted bool
}

// Style converts a typed value to its textual rendering. It is supplied at
// append time via [AppendWith] or [AppendLabeledWith] to override the default
// conversion.
type Style[T any] func(T) string

// New returns a Formatter with the given type name, an empty component
// sequence, and IncludeNilValues set to true.
func New(typeName string) *Formatter {
	return &Formatter{TypeName: typeName, IncludeNilValues: true}
}

// Append appends an unlabeled component. A nil value (nil interface or typed
// nil pointer, map, slice, channel, or function) is recorded as absent.
// Present values are converted to text immediately: via [fmt.Stringer] when
// implemented, otherwise with the %v verb. Non-nil pointers are dereferenced
// first. Values of string kind are quoted in text output.
func (f *Formatter) Append(value any) *Formatter {
	f.append("", value)
	return f
}

// AppendLabeled appends a component rendered as "label: value". An empty
// label is equivalent to [Formatter.Append].
func (f *Formatter) AppendLabeled(label string, value any) *Formatter {
	f.append(label, value)
	return f
}

// AppendWith appends an unlabeled component converted with style instead of
// the default conversion. A nil value is recorded as absent and style is not
// invoked, so the IncludeNilValues policy applies uniformly to both append
// paths.
func AppendWith[T any](f *Formatter, value *T, style Style[T]) *Formatter {
	return AppendLabeledWith(f, "", value, style)
}

// AppendLabeledWith is [AppendWith] with a label.
func AppendLabeledWith[T any](f *Formatter, label string, value *T, style Style[T]) *Formatter {
	if value == nil {
		f.components = append(f.components, component{label: label})
		return f
	}
	f.components = append(f.components, component{
		label:   label,
		text:    style(*value),
		present: true,
		quoted:  stringLike(*value),
	})
	return f
}

func (f *Formatter) append(label string, value any) {
	if absent(value) {
		f.components = append(f.components, component{label: label})
		return
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Pointer {
		// Nil behind another pointer.
		f.components = append(f.components, component{label: label})
		return
	}
	// Check Stringer on the original value so pointer-receiver
	// implementations are not lost by the dereference above.
	var text string
	if s, ok := value.(fmt.Stringer); ok {
		text = s.String()
	} else {
		text = fmt.Sprintf("%v", rv.Interface())
	}
	f.components = append(f.components, component{
		label:   label,
		text:    text,
		present: true,
		quoted:  rv.Kind() == reflect.String,
	})
}

// Components returns a copy of the appended components in append order,
// before any IncludeNilValues filtering.
func (f *Formatter) Components() []Component {
	out := make([]Component, len(f.components))
	for i, c := range f.components {
		out[i] = Component{Label: c.label, Value: c.text, Nil: !c.present, Quoted: c.quoted}
	}
	return out
}

// String renders the accumulated components as
//
//	TypeName(label: value, "text", nil, ...)
//
// in append order. It is idempotent: repeated calls without intervening
// mutation return identical strings.
func (f *Formatter) String() string {
	parts := make([]string, 0, len(f.components))
	for _, c := range f.filtered() {
		parts = append(parts, c.render())
	}
	return f.TypeName + "(" + strings.Join(parts, ", ") + ")"
}

// filtered returns the components that survive the IncludeNilValues policy.
func (f *Formatter) filtered() []component {
	if f.IncludeNilValues {
		return f.components
	}
	var out []component
	for _, c := range f.components {
		if c.present {
			out = append(out, c)
		}
	}
	return out
}

func (c component) render() string {
	var sb strings.Builder
	if c.label != "" {
		sb.WriteString(c.label)
		sb.WriteString(": ")
	}
	switch {
	case !c.present:
		sb.WriteString(nilText)
	case c.quoted:
		sb.WriteByte('"')
		sb.WriteString(c.text)
		sb.WriteByte('"')
	default:
		sb.WriteString(c.text)
	}
	return sb.String()
}

// fieldName is the table/markdown field column text for a component:
// the label when present, otherwise the positional index.
func (c component) fieldName(i int) string {
	if c.label != "" {
		return c.label
	}
	return fmt.Sprintf("[%d]", i)
}

// valueText is the unquoted value column text for a component.
func (c component) valueText() string {
	if !c.present {
		return nilText
	}
	return c.text
}

func absent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// stringLike reports whether v is of string kind. This is the canonical set
// of quoted types: string itself and any named type whose underlying type is
// string.
func stringLike(v any) bool {
	t := reflect.TypeOf(v)
	return t != nil && t.Kind() == reflect.String
}
