package descr

import (
	"strconv"
	"time"

	"github.com/mattn/go-runewidth"
)

// Built-in styles for [AppendWith] and [AppendLabeledWith].

// Percent renders a fraction as a percentage with the given number of decimal
// places: Percent(0) turns 0.2 into "20%".
func Percent(decimals int) Style[float64] {
	return func(v float64) string {
		return strconv.FormatFloat(v*100, 'f', decimals, 64) + "%"
	}
}

// TimeLayout renders a time using the given layout string.
func TimeLayout(layout string) Style[time.Time] {
	return func(t time.Time) string {
		return t.Format(layout)
	}
}

// Ellipsis truncates a string to at most max display columns, appending
// "..." when truncation occurs. Width is measured per terminal cell, so
// full-width characters count as two columns.
func Ellipsis(max int) Style[string] {
	return func(s string) string {
		if runewidth.StringWidth(s) <= max {
			return s
		}
		return runewidth.Truncate(s, max, "...")
	}
}
