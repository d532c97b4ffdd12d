package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/i474232898/temperature-series/internal/config"
	"github.com/i474232898/temperature-series/internal/ingest"
	"github.com/i474232898/temperature-series/internal/stats"
	"github.com/i474232898/temperature-series/internal/store"
	"github.com/i474232898/temperature-series/internal/temperature"
)

// report is everything the command prints for one series.
type report struct {
	Count         int                 `json:"count"`
	Summary       temperature.Summary `json:"summary"`
	ClosestToZero float64             `json:"closestToZeroC"`

	Target         *float64 `json:"targetC,omitempty"`
	ClosestToValue *float64 `json:"closestToTargetC,omitempty"`

	Threshold   *float64  `json:"thresholdC,omitempty"`
	LessThan    []float64 `json:"lessThan,omitempty"`
	GreaterThan []float64 `json:"greaterThan,omitempty"`
}

func main() {
	var input string
	if len(os.Args) > 1 {
		input = os.Args[1]
	}

	cfg, err := config.Load(input)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	series := store.New()
	opts := ingest.DefaultOptions()
	opts.Column = cfg.Column
	opts.BatchSize = cfg.BatchSize

	n, err := ingest.LoadFile(cfg.Input, opts, series)
	if err != nil {
		log.Fatalf("failed to load readings from %s: %v", cfg.Input, err)
	}
	log.Printf("INFO: loaded %d readings from %s", n, cfg.Input)

	rep, err := buildReport(series, cfg)
	if err != nil {
		log.Fatalf("failed to compute statistics: %v", err)
	}

	if err := writeReport(os.Stdout, cfg.Format, rep); err != nil {
		log.Fatalf("failed to write report: %v", err)
	}
}

func buildReport(series *store.SeriesStore, cfg *config.AppConfig) (report, error) {
	rep := report{Count: series.Len()}

	summary, err := stats.Summarize(series)
	if err != nil {
		return rep, err
	}
	rep.Summary = summary

	if rep.ClosestToZero, err = stats.ClosestToZero(series); err != nil {
		return rep, err
	}

	if cfg.Target != nil {
		closest, err := stats.ClosestToValue(series, *cfg.Target)
		if err != nil {
			return rep, err
		}
		rep.Target = cfg.Target
		rep.ClosestToValue = &closest
	}

	if cfg.Threshold != nil {
		rep.Threshold = cfg.Threshold
		if rep.LessThan, err = stats.LessThan(series, *cfg.Threshold); err != nil {
			return rep, err
		}
		if rep.GreaterThan, err = stats.GreaterThan(series, *cfg.Threshold); err != nil {
			return rep, err
		}
	}

	return rep, nil
}

func writeReport(w io.Writer, format string, rep report) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "readings:        %d\n", rep.Count)
	fmt.Fprintf(&buf, "average:         %.3f\n", rep.Summary.Average)
	fmt.Fprintf(&buf, "deviation:       %.3f\n", rep.Summary.Deviation)
	fmt.Fprintf(&buf, "min:             %.3f\n", rep.Summary.Min)
	fmt.Fprintf(&buf, "max:             %.3f\n", rep.Summary.Max)
	fmt.Fprintf(&buf, "closest to zero: %.3f\n", rep.ClosestToZero)
	if rep.ClosestToValue != nil {
		fmt.Fprintf(&buf, "closest to %.3f: %.3f\n", *rep.Target, *rep.ClosestToValue)
	}
	if rep.Threshold != nil {
		fmt.Fprintf(&buf, "below %.3f:     %v\n", *rep.Threshold, rep.LessThan)
		fmt.Fprintf(&buf, "above %.3f:     %v\n", *rep.Threshold, rep.GreaterThan)
	}
	buf.WriteByte('\n')

	_, err := buf.WriteTo(w)
	return err
}
