package cmd

import (
	"bufio"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"ev-newsroom/internal/model"
	"ev-newsroom/internal/render"
	"ev-newsroom/internal/search"
	"ev-newsroom/worker"

	"github.com/spf13/cobra"
)

var vehiclesCmd = &cobra.Command{
	Use:   "vehicles",
	Short: "Vehicle specification reference",
}

var vehiclesSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Filter vehicle specs by manufacturer or model",
	Long: "With a query, print the matching vehicles once. Without one, read queries " +
		"from stdin line by line; each line replaces the query and results are " +
		"printed once input has been quiet for search.debounce.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, err := loadDeps(ctx)
		if err != nil {
			return err
		}
		defer d.close()

		specs, err := d.client.VehicleSpecs(ctx)
		if err != nil {
			return err
		}
		slog.Debug("vehicle specs loaded", "count", len(specs))

		return searchVehicles(specs, d.dur.Debounce, strings.Join(args, " "), len(args) > 0, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// searchVehicles runs the debounced engine over specs. With oneShot the
// query is applied once; otherwise every input line replaces the query and
// pending work is flushed at end of input so the last query is never lost.
// When no pass ran at all, the current (empty) result is still printed.
func searchVehicles(specs []model.VehicleSpec, window time.Duration, query string, oneShot bool, in io.Reader, w io.Writer) error {
	out := worker.NewSyncWriter(w)
	var reported atomic.Bool
	report := func(r search.Result[model.VehicleSpec]) {
		reported.Store(true)
		_ = render.Vehicles(out, render.VehicleResult{Searched: r.Searched, Items: r.Items})
	}
	eng := search.NewEngine[model.VehicleSpec](window, report)
	defer eng.Cancel()
	eng.SetCollection(specs)

	var err error
	if oneShot {
		eng.OnQueryChange(query)
	} else {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			eng.OnQueryChange(sc.Text())
		}
		err = sc.Err()
	}
	if !eng.Flush() && !reported.Load() {
		report(eng.Result())
	}
	return err
}

func init() {
	vehiclesCmd.AddCommand(vehiclesSearchCmd)
	rootCmd.AddCommand(vehiclesCmd)
}
