// Command oilinfo looks up oils in the ADIOS database from the command line.
// It can search the listing or fetch one oil by id and print its derived,
// simulation-ready properties.
//
// Usage:
//
//	go run ./cmd/oilinfo -search "alaska north slope"
//	go run ./cmd/oilinfo -id AD00020
//	go run ./cmd/oilinfo -id AD00020 -temp 283.15 -json
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	adiosadapter "github.com/couchcryptid/adios-oil-etl/internal/adapter/adios"
	"github.com/couchcryptid/adios-oil-etl/internal/domain"
	"github.com/couchcryptid/adios-oil-etl/internal/observability"
)

func main() {
	baseURL := flag.String("api", "https://adios.orr.noaa.gov/api", "ADIOS API base URL")
	search := flag.String("search", "", "text query against the oil listing")
	id := flag.String("id", "", "oil id to fetch")
	temp := flag.Float64("temp", 288.15, "temperature in Kelvin for derived properties")
	limit := flag.Int("limit", 20, "maximum listing entries to print")
	asJSON := flag.Bool("json", false, "print the snapshot as JSON")
	flag.Parse()

	if (*search == "") == (*id == "") {
		fmt.Fprintln(os.Stderr, "exactly one of -search or -id is required")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*baseURL, *search, *id, *temp, *limit, *asJSON); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(baseURL, search, id string, temp float64, limit int, asJSON bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := adiosadapter.NewClient(baseURL, 10*time.Second, observability.NewMetricsForTesting(), logger)

	if search != "" {
		return printListing(ctx, client, search, limit)
	}
	return printOil(ctx, client, id, temp, asJSON)
}

func printListing(ctx context.Context, client *adiosadapter.Client, query string, limit int) error {
	oils, err := client.List(ctx, query, limit, 0)
	if err != nil {
		return err
	}
	for _, thin := range oils {
		suitable := " "
		if thin.GnomeSuitable {
			suitable = "*"
		}
		fmt.Printf("%s %-10s API %5.1f  %s\n", suitable, thin.ID, thin.API, thin.Name)
	}
	fmt.Printf("%d oils (* = GNOME suitable)\n", len(oils))
	return nil
}

func printOil(ctx context.Context, client *adiosadapter.Client, id string, temp float64, asJSON bool) error {
	oil, err := client.GetFullOil(ctx, id)
	if err != nil {
		return err
	}

	snapshot, err := domain.BuildSnapshot(oil)
	if errors.Is(err, domain.ErrNotFullOil) {
		fmt.Printf("%s\noil is not GNOME suitable; no derived properties available\n", oil)
		return nil
	}
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snapshot)
	}

	fmt.Println(oil)
	fmt.Printf("product type:        %s\n", snapshot.ProductType)
	fmt.Printf("API gravity:         %.2f\n", snapshot.API)
	fmt.Printf("pseudo-components:   %d\n", len(snapshot.MassFraction))
	fmt.Printf("bullwinkle fraction: %.4f\n", snapshot.BullwinkleFraction)
	fmt.Printf("emulsion max water:  %.2f\n", snapshot.EmulsionWaterFractionMax)

	density, err := oil.DensityAtTemp(temp, "K")
	if err != nil {
		return err
	}
	kvis, err := oil.KvisAtTemp(temp, "K")
	if err != nil {
		return err
	}
	tension, err := oil.OilWaterSurfaceTension()
	if err != nil {
		return err
	}
	fmt.Printf("at %.2f K: density %.1f kg/m³, kvis %.3e m²/s, tension %.4f N/m\n",
		temp, density, kvis, tension)

	pressures, err := oil.VaporPressure(temp)
	if err != nil {
		return err
	}
	fmt.Println("component  mass_frac  boiling_K  vapor_Pa")
	for i, p := range pressures {
		fmt.Printf("%9d  %9.4f  %9.1f  %8.3e\n",
			i, snapshot.MassFraction[i], snapshot.BoilingPoint[i], p)
	}
	return nil
}
