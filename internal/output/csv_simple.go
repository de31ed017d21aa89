package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVSummarizer writes one row per household member followed by total and
// waste rows, and one row for a quick estimate if present
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *Report) ([]byte, error) {
	r := report.Rounded()
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Section", "Label", "Calories", "DailyCost", "MonthlyCost"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	var rows [][]string
	if h := r.Household; h != nil {
		for _, b := range h.Breakdown {
			rows = append(rows, []string{"member", b.Label, strconv.Itoa(b.Calories), b.DailyCost.StringFixed(2), ""})
		}
		rows = append(rows,
			[]string{"total", "Household", strconv.Itoa(h.TotalCalories), h.TotalDailyCost.StringFixed(2), h.TotalMonthlyCost.StringFixed(2)},
			[]string{"waste", h.WasteModel, h.WastedCalories.String(), "", h.WastedCost.StringFixed(2)},
		)
	}
	if q := r.Quick; q != nil {
		rows = append(rows, []string{"quick", q.Mode, strconv.Itoa(q.Calories), q.Daily.StringFixed(2), q.Monthly.StringFixed(2)})
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
