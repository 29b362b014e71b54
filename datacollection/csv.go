package datacollection

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteModelCSV writes the collected model series as CSV: one row per
// Collect call, a leading "step" column, then the series sorted by name.
func (dc *DataCollector) WriteModelCSV(w io.Writer) error {
	names := dc.ModelVarNames()
	steps := dc.Steps()

	series := make(map[string][]any, len(names))
	for _, name := range names {
		s, err := dc.ModelSeries(name)
		if err != nil {
			return err
		}
		series[name] = s
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"step"}, names...)); err != nil {
		return fmt.Errorf("datacollection: write csv header: %w", err)
	}

	for i, step := range steps {
		row := make([]string, 0, len(names)+1)
		row = append(row, strconv.Itoa(step))
		for _, name := range names {
			row = append(row, formatValue(series[name][i]))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("datacollection: write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteAgentCSV writes the collected agent records as CSV: one row per agent
// and step, leading "step" and "agent_id" columns, then the variables sorted
// by name.
func (dc *DataCollector) WriteAgentCSV(w io.Writer) error {
	names := dc.AgentVarNames()

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"step", "agent_id"}, names...)); err != nil {
		return fmt.Errorf("datacollection: write csv header: %w", err)
	}

	for _, rec := range dc.AgentRecords() {
		row := make([]string, 0, len(names)+2)
		row = append(row, strconv.Itoa(rec.Step), strconv.Itoa(rec.AgentID))
		for _, name := range names {
			row = append(row, formatValue(rec.Values[name]))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("datacollection: write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteTableCSV writes one collected table as CSV in its declared column
// order.
func (dc *DataCollector) WriteTableCSV(name string, w io.Writer) error {
	columns, err := dc.TableColumns(name)
	if err != nil {
		return err
	}
	rows, err := dc.TableRows(name)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("datacollection: write csv header: %w", err)
	}

	for _, row := range rows {
		out := make([]string, 0, len(columns))
		for _, col := range columns {
			out = append(out, formatValue(row[col]))
		}
		if err := cw.Write(out); err != nil {
			return fmt.Errorf("datacollection: write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	default:
		return fmt.Sprint(t)
	}
}
