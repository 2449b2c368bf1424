// Package csvutil writes report CSVs: UTF-8 with a BOM, comma delimited,
// one header row, CRLF line endings.
package csvutil

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// bom makes Excel read the file as UTF-8.
var bom = []byte{0xEF, 0xBB, 0xBF}

// EscapeField quotes v when it contains a comma, double quote, CR or LF,
// doubling any embedded quotes. Everything else passes through unchanged.
func EscapeField(v string) string {
	if !strings.ContainsAny(v, ",\"\r\n") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// Record renders one CSV line without the terminator.
func Record(fields []string) string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = EscapeField(f)
	}
	return strings.Join(out, ",")
}

// Writer emits CSV records.
type Writer struct {
	w       io.Writer
	started bool
	err     error
}

// NewWriter wraps w. The BOM is written with the first record.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Write emits one record.
func (cw *Writer) Write(fields []string) error {
	if cw.err != nil {
		return cw.err
	}
	if !cw.started {
		cw.started = true
		if _, cw.err = cw.w.Write(bom); cw.err != nil {
			return cw.err
		}
	}
	_, cw.err = io.WriteString(cw.w, Record(fields)+"\r\n")
	return cw.err
}

// Err returns the first write error.
func (cw *Writer) Err() error { return cw.err }

// WriteAll writes header followed by rows.
func WriteAll(w io.Writer, header []string, rows [][]string) error {
	cw := NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Filename returns "<kind>-<YYYY-MM-DD>.csv" for the given day.
func Filename(kind string, day time.Time) string {
	return fmt.Sprintf("%s-%s.csv", kind, day.Format("2006-01-02"))
}

// Attach sets download headers for a CSV response.
func Attach(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(filename)))
	w.Header().Set("Cache-Control", "no-store")
}
