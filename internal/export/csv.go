// Package export serializes batches of generated credentials.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// ContentTypeCSV is the media type written by WriteCSV.
const ContentTypeCSV = "text/csv; charset=utf-8"

// WriteCSV writes an "index,password" header followed by one 1-based row per
// value. Quoting follows RFC 4180, so separators and quotes inside a value
// survive a round trip.
func WriteCSV(w io.Writer, values []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "password"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for i, v := range values {
		if err := cw.Write([]string{strconv.Itoa(i + 1), v}); err != nil {
			return fmt.Errorf("writing csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
