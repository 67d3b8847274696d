// Package render draws figures as PNG images with go-chart.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/station-dashboard/internal/figure"
	apperrors "github.com/station-dashboard/internal/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 512
)

// PNG writes fig to w. A figure without data points is an ErrEmptyFigure,
// go-chart cannot lay out an empty range.
func PNG(w io.Writer, fig *figure.Figure, width, height int) error {
	if fig == nil || len(fig.Data) == 0 || fig.Points() == 0 {
		return apperrors.ErrEmptyFigure
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	var err error
	switch fig.Data[0].Type {
	case figure.KindBar:
		err = barChart(fig, width, height).Render(chart.PNG, w)
	case figure.KindPie:
		err = pieChart(fig, width, height).Render(chart.PNG, w)
	case figure.KindScatterMap:
		err = scatterChart(fig, width, height).Render(chart.PNG, w)
	default:
		return apperrors.ErrBuild.Wrap(fmt.Errorf("no renderer for %q", fig.Data[0].Type))
	}
	if err != nil {
		return fmt.Errorf("render %s chart: %w", fig.Data[0].Type, err)
	}
	return nil
}

func barChart(fig *figure.Figure, width, height int) chart.BarChart {
	tr := fig.Data[0]
	bars := make([]chart.Value, 0, len(tr.X))
	for i, label := range tr.X {
		bars = append(bars, chart.Value{
			Label: label,
			Value: tr.Y[i],
			Style: chart.Style{
				FillColor:   hexColor(markerColor(tr, 0)),
				StrokeColor: hexColor(markerColor(tr, 0)),
			},
		})
	}

	barWidth := 0
	if n := len(bars); n > 0 {
		barWidth = max(8, min(60, width/(2*n)))
	}

	// bars start at zero; a fixed range also covers a single bar or equal bars
	maxY := 0.0
	for _, y := range tr.Y {
		maxY = math.Max(maxY, y)
	}

	return chart.BarChart{
		Title:  titleText(fig),
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Bottom: 60},
		},
		BarWidth: barWidth,
		Bars:     bars,
		YAxis: chart.YAxis{
			Name:           axisTitle(fig.Layout.YAxis),
			ValueFormatter: integerFormatter,
			Range:          &chart.ContinuousRange{Min: 0, Max: math.Max(maxY*1.1, 1)},
		},
	}
}

func pieChart(fig *figure.Figure, width, height int) chart.PieChart {
	tr := fig.Data[0]

	// sum repeated labels like the browser renderer does
	order := make([]string, 0, len(tr.Labels))
	sums := make(map[string]float64, len(tr.Labels))
	colors := make(map[string]string, len(tr.Labels))
	for i, l := range tr.Labels {
		if _, ok := sums[l]; !ok {
			order = append(order, l)
			colors[l] = figure.Color(len(colors))
			if tr.Marker != nil && i < len(tr.Marker.Colors) {
				colors[l] = tr.Marker.Colors[i]
			}
		}
		sums[l] += tr.Values[i]
	}

	values := make([]chart.Value, 0, len(order))
	for _, l := range order {
		values = append(values, chart.Value{
			Label: l,
			Value: sums[l],
			Style: chart.Style{FillColor: hexColor(colors[l])},
		})
	}

	return chart.PieChart{
		Title:  titleText(fig),
		Width:  width,
		Height: height,
		Values: values,
	}
}

// scatterChart draws map traces as a plain lon/lat scatter; tiles are a
// browser concern.
func scatterChart(fig *figure.Figure, width, height int) *chart.Chart {
	series := make([]chart.Series, 0, len(fig.Data))
	minLat, maxLat := math.Inf(1), math.Inf(-1)
	minLon, maxLon := math.Inf(1), math.Inf(-1)

	for i, tr := range fig.Data {
		for j := range tr.Lat {
			minLat, maxLat = math.Min(minLat, tr.Lat[j]), math.Max(maxLat, tr.Lat[j])
			minLon, maxLon = math.Min(minLon, tr.Lon[j]), math.Max(maxLon, tr.Lon[j])
		}
		col := hexColor(markerColor(tr, i))
		series = append(series, chart.ContinuousSeries{
			Name:    tr.Name,
			XValues: tr.Lon,
			YValues: tr.Lat,
			Style: chart.Style{
				StrokeWidth: 0,
				StrokeColor: drawing.ColorTransparent,
				DotWidth:    3,
				DotColor:    col,
			},
		})
	}

	c := &chart.Chart{
		Title:  titleText(fig),
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 28},
		},
		XAxis: chart.XAxis{
			Name:  "Longitude",
			Range: padRange(minLon, maxLon),
		},
		YAxis: chart.YAxis{
			Name:  "Latitude",
			Range: padRange(minLat, maxLat),
		},
		Series: series,
	}
	c.Elements = []chart.Renderable{chart.Legend(c)}
	return c
}

// padRange widens a degenerate range so a single point still renders.
func padRange(lo, hi float64) *chart.ContinuousRange {
	if hi <= lo {
		lo, hi = lo-0.01, hi+0.01
	}
	pad := (hi - lo) * 0.05
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func markerColor(tr figure.Trace, i int) string {
	if tr.Marker != nil && tr.Marker.Color != "" {
		return tr.Marker.Color
	}
	return figure.Color(i)
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func titleText(fig *figure.Figure) string {
	if fig.Layout.Title == nil {
		return ""
	}
	return fig.Layout.Title.Text
}

func axisTitle(a *figure.Axis) string {
	if a == nil {
		return ""
	}
	return a.Title.Text
}

func integerFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return ""
}
