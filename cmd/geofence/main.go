// Command geofence runs a progressive geofence narrowing over a YAML clue
// file and reports convergence: a per-day text table plus optional GeoJSON
// and Leaflet map artifacts.
//
// Clue file schema (one list item per clue, strictly increasing ordinals):
//
//	- ordinal: 1
//	  kind: circle_include
//	  lat: 40.2153
//	  lon: -74.9070
//	  radius_km: 95
//	- ordinal: 2
//	  kind: bearing_ray
//	  lat: 40.2493
//	  lon: -74.8150
//	  bearing_deg: 90
//	  tolerance_deg: 5
//	- ordinal: 3
//	  kind: sector_exclude
//	  lat: 40.4477
//	  lon: -74.5304
//	  inner_km: 6.4
//	  outer_km: 11.3
//	  start_deg: 300
//	  end_deg: 80
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "geofence:", err)
		os.Exit(1)
	}
}

// newRootCmd assembles the CLI.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "geofence",
		Short:         "progressive geofence narrowing over a clue stream",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd())

	return root
}
