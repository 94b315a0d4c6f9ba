package descr

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format represents an output format for descriptions.
type Format string

const (
	Text     Format = "text"
	JSON     Format = "json"
	YAML     Format = "yaml"
	List     Format = "list"
	Table    Format = "table"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	HTML     Format = "html"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Text, JSON, YAML, List, Table, Markdown, CSV, HTML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each item's description view
// using a Go text/template. The template executes against a document with
// Type and Components fields.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// --- Optional Interfaces ---
//
// A Describable type declares its components once; the optional interfaces
// below tune how individual formats render them. All are checked on the
// value being described.

// Indented controls JSON/YAML indentation.
// Without it, JSON is compact and YAML uses its default indent.
type Indented interface {
	Indent() string
}

// Headed overrides the two column headers for Table, Markdown, CSV, and
// HTML. Default: no header row for Table, CSV, and HTML; "Field"/"Value"
// for Markdown.
type Headed interface {
	Header() []string
}

// Titled renders a title above the table.
// Default: the description's type name.
type Titled interface {
	Title() string
}

// Bordered controls the table border style.
// Default: BorderRounded.
type Bordered interface {
	Border() BorderStyle
}

// Aligned sets per-column alignment for Table. Also used by Markdown for
// alignment markers. Default: AlignLeft.
type Aligned interface {
	Alignments() []Alignment
}

// Captioned renders a line below the table.
// Default: no caption.
type Captioned interface {
	Caption() string
}

// Truncated sets maximum column widths for Table format.
// Cells exceeding the max are truncated with "...".
// A zero value means no limit for that column.
type Truncated interface {
	MaxWidths() []int
}

// Separator controls the delimiter between lines in List format.
// Default: newline.
type Separator interface {
	Sep() string
}

// Delimited controls the CSV field delimiter.
// Default: comma.
type Delimited interface {
	Delimiter() rune
}

// Renderer is an escape hatch checked per-item. If Render returns non-nil
// bytes, those bytes are written directly. If it returns (nil, nil), the
// item falls through to default rendering.
type Renderer interface {
	Render(Format) ([]byte, error)
}

// --- Value Types ---

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Write renders the descriptions of items in format f and writes them to w.
// Each item is described into its own fresh [Formatter].
func Write[T Describable](w io.Writer, f Format, items ...T) error {
	if len(items) > 0 {
		if _, ok := any(items[0]).(Renderer); ok {
			return writeRendered(w, f, items)
		}
	}
	return dispatch(w, f, items)
}

func dispatch[T Describable](w io.Writer, f Format, items []T) error {
	switch f {
	case Text:
		return writeText(w, items)
	case JSON:
		return writeJSON(w, items)
	case YAML:
		return writeYAML(w, items)
	case List:
		return writeList(w, items)
	case Table:
		return writeTable(w, items)
	case Markdown:
		return writeMarkdown(w, items)
	case CSV:
		return writeCSV(w, items)
	case HTML:
		return writeHTML(w, items)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, items)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func writeRendered[T Describable](w io.Writer, f Format, items []T) error {
	var fallback []T
	for _, item := range items {
		r := any(item).(Renderer)
		data, err := r.Render(f)
		if err != nil {
			return err
		}
		if data != nil {
			if _, werr := w.Write(data); werr != nil {
				return werr
			}
			continue
		}
		fallback = append(fallback, item)
	}
	if len(fallback) == 0 {
		return nil
	}
	return dispatch(w, f, fallback)
}

// Marshal renders the descriptions of items and returns the bytes.
func Marshal[T Describable](f Format, items ...T) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, items...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeText[T Describable](w io.Writer, items []T) error {
	for _, item := range items {
		if _, err := fmt.Fprintln(w, build(item).String()); err != nil {
			return err
		}
	}
	return nil
}
