package descr

import (
	"encoding/csv"
	"io"
)

// writeCSV renders components as field,value records. Each item contributes
// one record per surviving component; a header record is written first when
// the first item implements [Headed].
func writeCSV[T Describable](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	if d, ok := any(items[0]).(Delimited); ok {
		cw.Comma = d.Delimiter()
	}
	if h, ok := any(items[0]).(Headed); ok {
		if err := cw.Write(h.Header()); err != nil {
			return err
		}
	}
	for _, item := range items {
		for _, row := range componentRows(build(item)) {
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
