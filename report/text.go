package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/geofence/geo"
	"github.com/katalvlaran/geofence/narrow"
)

// Text writes the convergence report: one row per applied constraint,
// then the phase line and the contradiction account when present.
//
// Complexity: O(history).
func Text(w io.Writer, eng *narrow.Engine) error {
	var (
		hist = eng.History()
		tw   = tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
		err  error
	)

	if _, err = fmt.Fprintln(tw, "ORDINAL\tKIND\tAREA km²\tAREA mi²\tDIAMETER km\tDRIFT km\tCENTROID"); err != nil {
		return err
	}
	for _, s := range hist {
		if _, err = fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%s\n",
			s.Ordinal, s.Kind, s.AreaKm2, s.AreaKm2/(geo.KmPerMile*geo.KmPerMile),
			s.DiameterKm, s.CentroidDriftKm, s.Centroid); err != nil {
			return err
		}
	}
	if err = tw.Flush(); err != nil {
		return err
	}

	if _, err = fmt.Fprintf(w, "phase: %s\n", eng.Phase()); err != nil {
		return err
	}
	if cause := eng.Cause(); cause != nil {
		if _, err = fmt.Fprintf(w, "contradiction: %s\n", cause.Description); err != nil {
			return err
		}
	}

	return nil
}
