package rois

import (
	"encoding/csv"
	"io"
	"strconv"
)

// csvHeader matches the column order of the Table.
var csvHeader = []string{"onset", "fmin", "offset", "fmax"}

// WriteCSV writes the table as comma-separated values with a header
// row. An empty table produces no output at all, not even the header;
// consumers distinguish "no detection" by the empty file.
func WriteCSV(w io.Writer, t Table) error {
	if len(t) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range t {
		row := []string{
			formatFloat(r.Onset),
			formatFloat(r.FMin),
			formatFloat(r.Offset),
			formatFloat(r.FMax),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
