package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/geofence/constraint"
	"github.com/katalvlaran/geofence/narrow"
	"github.com/katalvlaran/geofence/report"
)

// runFlags carries the run command's options.
type runFlags struct {
	clues       string
	geojsonOut  string
	mapOut      string
	convergeKm  float64
	maxRangeKm  float64
	vertices    int
	skipInvalid bool
}

// newRunCmd builds the `run` subcommand: stream a clue file through an
// engine and report.
func newRunCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "apply a YAML clue file and print the convergence report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNarrowing(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.clues, "clues", "", "path to the YAML clue file (required)")
	cmd.Flags().StringVar(&flags.geojsonOut, "geojson", "", "write the feasible region as GeoJSON to this path")
	cmd.Flags().StringVar(&flags.mapOut, "map", "", "write a Leaflet HTML map to this path")
	cmd.Flags().Float64Var(&flags.convergeKm, "converge-km", narrow.DefaultConvergenceKm, "bounding diameter declaring convergence")
	cmd.Flags().Float64Var(&flags.maxRangeKm, "max-range-km", narrow.DefaultMaxRangeKm, "range cap for bearing wedges")
	cmd.Flags().IntVar(&flags.vertices, "vertices", narrow.DefaultCircleVertices, "circle discretization vertex count")
	cmd.Flags().BoolVar(&flags.skipInvalid, "skip-invalid", false, "skip clues failing validation instead of stopping")
	_ = cmd.MarkFlagRequired("clues")

	return cmd
}

// runNarrowing loads, applies, and reports.
func runNarrowing(cmd *cobra.Command, flags runFlags) error {
	records, err := loadClues(flags.clues)
	if err != nil {
		return err
	}

	eng := narrow.New(
		narrow.WithConvergenceKm(flags.convergeKm),
		narrow.WithMaxRangeKm(flags.maxRangeKm),
		narrow.WithCircleVertices(flags.vertices),
	)

	for _, rec := range records {
		_, err = eng.ApplyRecord(rec)
		switch {
		case err == nil:
			continue
		case errors.Is(err, narrow.ErrInfeasible):
			// Terminal but reportable: the report carries the cause.
			fmt.Fprintf(cmd.ErrOrStderr(), "clue #%d: %v\n", rec.Ordinal, err)
		case errors.Is(err, narrow.ErrEngineTerminal):
			// Converged before the stream ended; remaining clues are moot.
		case flags.skipInvalid &&
			(errors.Is(err, constraint.ErrInvalidConstraint) || errors.Is(err, constraint.ErrUnknownKind)):
			fmt.Fprintf(cmd.ErrOrStderr(), "skipping clue #%d: %v\n", rec.Ordinal, err)

			continue
		default:
			return fmt.Errorf("clue #%d: %w", rec.Ordinal, err)
		}

		break // terminal phase: stop applying, still report
	}

	if err = report.Text(cmd.OutOrStdout(), eng); err != nil {
		return err
	}
	if flags.geojsonOut != "" {
		if err = writeGeoJSON(flags.geojsonOut, eng); err != nil {
			return err
		}
	}
	if flags.mapOut != "" {
		if err = writeMap(flags.mapOut, eng); err != nil {
			return err
		}
	}

	return nil
}

// loadClues reads the YAML clue list.
func loadClues(path string) ([]constraint.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read clues: %w", err)
	}

	var records []constraint.Record
	if err = yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse clues: %w", err)
	}

	return records, nil
}

// writeGeoJSON exports the feasible region boundary.
func writeGeoJSON(path string, eng *narrow.Engine) error {
	doc, err := report.GeoJSON(eng)
	if err != nil {
		return err
	}

	return os.WriteFile(path, doc, 0o644)
}

// writeMap writes the Leaflet page.
func writeMap(path string, eng *narrow.Engine) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return report.HTMLMap(f, eng)
}
