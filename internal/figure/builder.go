package figure

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	apperrors "github.com/station-dashboard/internal/pkg/errors"
	"github.com/station-dashboard/internal/pkg/frame"
	"github.com/station-dashboard/internal/pkg/utils"
)

// Mapping binds table columns to visual channels. Which fields are read
// depends on the Kind.
type Mapping struct {
	X string
	Y string

	Values string
	Names  string

	Lat   string
	Lon   string
	Color string
	Hover string
}

// Options tune a figure without changing its data.
type Options struct {
	// Labels renames columns in axis titles, legends and hover text.
	Labels   map[string]string
	Title    string
	MapStyle string
	MapZoom  float64
}

func (o Options) label(col string) string {
	if l, ok := o.Labels[col]; ok {
		return l
	}
	return col
}

// Build maps df to a figure of the given kind. A mapped column missing from
// df is an ErrBuild.
func Build(df dataframe.DataFrame, kind Kind, m Mapping, opts Options) (*Figure, error) {
	switch kind {
	case KindBar:
		return Bar(df, m.X, m.Y, opts)
	case KindPie:
		return Pie(df, m.Values, m.Names, opts)
	case KindScatterMap:
		return ScatterMap(df, m, opts)
	}
	return nil, apperrors.ErrBuild.Wrap(fmt.Errorf("unsupported kind %q", kind))
}

// Bar builds a single-series bar chart of y against the categories in x.
func Bar(df dataframe.DataFrame, x, y string, opts Options) (*Figure, error) {
	if err := require(df, KindBar, x, y); err != nil {
		return nil, err
	}

	xl, yl := opts.label(x), opts.label(y)
	fig := &Figure{
		Data: []Trace{{
			Type:          KindBar,
			X:             df.Col(x).Records(),
			Y:             df.Col(y).Float(),
			HoverTemplate: fmt.Sprintf("%s=%%{x}<br>%s=%%{y}<extra></extra>", xl, yl),
			Marker:        &Marker{Color: Color(0)},
		}},
		Layout: Layout{
			XAxis:  &Axis{Title: Text{Text: xl}},
			YAxis:  &Axis{Title: Text{Text: yl}},
			Margin: &Margin{T: 60},
		},
	}
	fig.Layout.Title = title(opts)
	return fig, nil
}

// Pie builds a pie chart whose slices are named by names and sized by values.
// Repeated names are summed by the renderer.
func Pie(df dataframe.DataFrame, values, names string, opts Options) (*Figure, error) {
	if err := require(df, KindPie, values, names); err != nil {
		return nil, err
	}

	labels := df.Col(names).Records()
	fig := &Figure{
		Data: []Trace{{
			Type:   KindPie,
			Labels: labels,
			Values: df.Col(values).Float(),
			HoverTemplate: fmt.Sprintf("%s=%%{label}<br>%s=%%{value}<extra></extra>",
				opts.label(names), opts.label(values)),
			Marker:     &Marker{Colors: sliceColors(labels)},
			ShowLegend: true,
		}},
		Layout: Layout{
			Legend: &Legend{Title: Text{Text: opts.label(names)}},
			Margin: &Margin{T: 60},
		},
	}
	fig.Layout.Title = title(opts)
	return fig, nil
}

// ScatterMap builds one map trace per distinct value of m.Color, in order of
// first appearance, centered on the mean of all points.
func ScatterMap(df dataframe.DataFrame, m Mapping, opts Options) (*Figure, error) {
	if err := require(df, KindScatterMap, m.Lat, m.Lon, m.Color, m.Hover); err != nil {
		return nil, err
	}

	lats := df.Col(m.Lat).Float()
	lons := df.Col(m.Lon).Float()
	hover := df.Col(m.Hover).Records()
	colors := df.Col(m.Color).Records()

	groups := frame.Distinct(df, m.Color)
	traces := make([]Trace, 0, len(groups))
	index := make(map[string]int, len(groups))
	for i, g := range groups {
		index[g] = i
		traces = append(traces, Trace{
			Type: KindScatterMap,
			Name: g,
			Mode: "markers",
			HoverTemplate: fmt.Sprintf("<b>%%{hovertext}</b><br><br>%s=%s<br>%s=%%{lat}<br>%s=%%{lon}<extra></extra>",
				opts.label(m.Color), g, opts.label(m.Lat), opts.label(m.Lon)),
			Marker:      &Marker{Color: Color(i)},
			ShowLegend:  true,
			LegendGroup: g,
		})
	}
	for row, c := range colors {
		t := &traces[index[c]]
		t.Lat = append(t.Lat, lats[row])
		t.Lon = append(t.Lon, lons[row])
		t.HoverText = append(t.HoverText, hover[row])
	}

	center := utils.Centroid(lats, lons)
	fig := &Figure{
		Data: traces,
		Layout: Layout{
			Legend: &Legend{Title: Text{Text: opts.label(m.Color)}},
			Mapbox: &Mapbox{
				Style:  opts.MapStyle,
				Zoom:   opts.MapZoom,
				Center: LatLon{Lat: center.Lat, Lon: center.Lon},
			},
			Margin: &Margin{T: 60},
		},
	}
	fig.Layout.Title = title(opts)
	return fig, nil
}

func require(df dataframe.DataFrame, kind Kind, cols ...string) error {
	for _, c := range cols {
		if err := frame.Require(df, c); err != nil {
			return apperrors.ErrBuild.Wrap(err).WithDetails(map[string]interface{}{
				"kind":   string(kind),
				"column": c,
			})
		}
	}
	return nil
}

func title(opts Options) *Text {
	if opts.Title == "" {
		return nil
	}
	return &Text{Text: opts.Title}
}

// sliceColors gives repeated labels the same color.
func sliceColors(labels []string) []string {
	seen := make(map[string]string)
	out := make([]string, len(labels))
	for i, l := range labels {
		c, ok := seen[l]
		if !ok {
			c = Color(len(seen))
			seen[l] = c
		}
		out[i] = c
	}
	return out
}
