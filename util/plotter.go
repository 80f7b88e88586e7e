package util

import (
	"fmt"
	"os"

	"github.com/mfiume/toronto-free-skates/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// PlotRinkMap generates an HTML file rendering every rink in the set as
// a geo scatter point valued by its session count. This is the dev-side
// stand-in for the hosted map view.
func PlotRinkMap(set models.SessionSet, outputPath string) error {
	counts := make(map[int]int)
	for _, e := range set.Sessions {
		counts[e.Rink.ID]++
	}

	points := make([]opts.GeoData, 0, len(set.Rinks))
	for _, r := range set.Rinks {
		points = append(points, opts.GeoData{
			Name:  r.Name,
			Value: []float64{r.Lng, r.Lat, float64(counts[r.ID])},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Rink Session Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Rinks", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer f.Close()

	if err := geo.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	return nil
}
