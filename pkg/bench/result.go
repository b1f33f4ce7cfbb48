package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"
)

// Result is one row of the comparison report: one table variant exercised
// against one dataset with one hash kind.
type Result struct {
	RunID      string
	Table      string
	Capacity   int
	Keys       int
	Hash       string
	InsertTime time.Duration
	SearchTime time.Duration
	Collisions int
	LoadFactor float64
}

// csvHeader is the column layout of the saved report.
var csvHeader = []string{
	"run_id", "table", "capacity", "keys", "hash",
	"insert_ms", "search_ms", "collisions", "load_factor",
}

func (r Result) record() []string {
	return []string{
		r.RunID,
		r.Table,
		fmt.Sprintf("%d", r.Capacity),
		fmt.Sprintf("%d", r.Keys),
		r.Hash,
		fmt.Sprintf("%0.6f", float64(r.InsertTime.Nanoseconds())/1e6),
		fmt.Sprintf("%0.6f", float64(r.SearchTime.Nanoseconds())/1e6),
		fmt.Sprintf("%d", r.Collisions),
		fmt.Sprintf("%0.4f", r.LoadFactor),
	}
}

// WriteCSV saves the results to path as comma-separated rows.
func WriteCSV(path string, results []Result) error {
	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fd.Close()
	w := csv.NewWriter(fd)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		if err := w.Write(r.record()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Report pretty-prints the results as an aligned table.
func Report(w io.Writer, results []Result) {
	tw := new(tabwriter.Writer)
	tw.Init(w, 5, 4, 4, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "table\tcapacity\tkeys\thash\tinsert\tsearch\tcollisions\tload\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%v\t%v\t%d\t%0.4f\t\n",
			r.Table, r.Capacity, r.Keys, r.Hash,
			r.InsertTime, r.SearchTime, r.Collisions, r.LoadFactor)
	}
	tw.Flush()
}
