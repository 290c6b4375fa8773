package batch

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes records as CSV with a header row.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	header := []string{"base", "modulus", "ok", "method", "reason", "inverse", "steps", "explored_nodes"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			strconv.FormatUint(r.Base, 10),
			strconv.FormatUint(r.Modulus, 10),
			strconv.FormatBool(r.OK),
			r.Method.String(),
			r.Reason.String(),
			strconv.FormatUint(r.Inverse, 10),
			strconv.Itoa(r.Steps),
			strconv.Itoa(r.ExploredNodes),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
