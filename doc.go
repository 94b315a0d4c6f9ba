// Package descr builds human-readable descriptions of values declaratively.
//
// A type implements [Describable] by populating a [Formatter] with the
// components it wants to expose, and gets a conventional string rendering
// for free via [String]:
//
//	type Person struct {
//		FirstName string
//		LastName  string
//		Age       int
//		Pet       *Pet
//	}
//
//	func (p Person) Describe(f *descr.Formatter) {
//		f.IncludeNilValues = false
//		f.Append(p.FirstName + " " + p.LastName)
//		f.AppendLabeled("age", p.Age)
//		f.AppendLabeled("pet", p.Pet)
//	}
//
//	func (p Person) String() string { return descr.String(p) }
//
// With a nil Pet this renders as:
//
//	Person("Matt Comi", age: 42)
//
// # Components
//
// Each [Formatter.Append] or [Formatter.AppendLabeled] call records one
// component: an optional label, the value's text (converted once, at append
// time), and whether the value was string-like. String-like values — string
// and named string types — are wrapped in double quotes in text output. Nil
// values (nil interfaces and typed nil pointers, maps, slices, channels, and
// functions) render as the literal nil, or are dropped entirely when
// [Formatter.IncludeNilValues] is false. Components render in append order;
// duplicate labels are preserved.
//
// # Styles
//
// [AppendWith] and [AppendLabeledWith] accept a [Style] that replaces the
// default conversion for a typed value:
//
//	progress := 0.2
//	descr.AppendLabeledWith(f, "progress", &progress, descr.Percent(0))
//	// progress: 20%
//
// [Percent], [TimeLayout], and [Ellipsis] are provided; any func(T) string
// works.
//
// # Output Formats
//
// Beyond the canonical single-line text, a described value can be rendered
// in several formats through [Write] and [Marshal]:
//
//   - [Text] — the canonical TypeName(label: value, ...) line
//   - [JSON], [YAML] — a {type, components} document; nil values encode as null
//   - [List] — one component per line
//   - [Table] — a two-column field/value table
//   - [Markdown] — a two-column GitHub-flavored Markdown table
//   - [CSV] — one field,value record per component
//   - [HTML] — a two-column HTML table with escaped cells
//   - [GoTemplate] — a Go text/template executed against the description
//
// Optional interfaces on the described type tune the rendering:
//
//   - [Indented] — JSON/YAML indentation
//   - [Headed] — column headers for Table, Markdown, CSV, and HTML
//   - [Titled] — table title and HTML caption (default: the type name)
//   - [Bordered] — table border style (default [BorderRounded])
//   - [Aligned] — per-column alignment
//   - [Truncated] — max column widths with "..." truncation
//   - [Captioned] — line below the table
//   - [Separator] — delimiter between List lines
//   - [Delimited] — CSV field delimiter
//
// [Renderer] is a per-value escape hatch: returning non-nil bytes bypasses
// default rendering for that format.
//
// Use [ParseFormat] to convert a CLI flag string into a [Format]. It
// recognizes all static formats and "go-template=<tmpl>" strings:
//
//	f, err := descr.ParseFormat(flagValue)
//	descr.Write(os.Stdout, f, person)
//
// # Errors
//
// Building a description cannot fail: Append, field mutation, and String are
// total. Only the format entry points return errors, with sentinels for
// programmatic handling:
//
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrInvalidTemplate] — invalid go-template syntax
//
// # Concurrency
//
// A Formatter belongs to a single rendering and must not be shared across
// goroutines. Concurrent renderings of the same value are safe because each
// entry point constructs its own Formatter.
package descr
