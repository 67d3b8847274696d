// Package figure maps tables to plotly-compatible chart descriptions.
//
// A Figure marshals to the {"data": [...], "layout": {...}} shape that
// Plotly.react accepts, and is also the input of the PNG renderer.
package figure

// Kind selects a trace type.
type Kind string

const (
	KindBar        Kind = "bar"
	KindPie        Kind = "pie"
	KindScatterMap Kind = "scattermapbox"
)

// Palette is the default qualitative color sequence.
var Palette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// Color returns the palette color for the i-th category.
func Color(i int) string {
	return Palette[i%len(Palette)]
}

type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one plotly trace. Only the fields relevant to its Type are set.
type Trace struct {
	Type          Kind      `json:"type"`
	Name          string    `json:"name,omitempty"`
	X             []string  `json:"x,omitempty"`
	Y             []float64 `json:"y,omitempty"`
	Labels        []string  `json:"labels,omitempty"`
	Values        []float64 `json:"values,omitempty"`
	Lat           []float64 `json:"lat,omitempty"`
	Lon           []float64 `json:"lon,omitempty"`
	HoverText     []string  `json:"hovertext,omitempty"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
	Mode          string    `json:"mode,omitempty"`
	Marker        *Marker   `json:"marker,omitempty"`
	ShowLegend    bool      `json:"showlegend"`
	LegendGroup   string    `json:"legendgroup,omitempty"`
}

type Marker struct {
	Color  string   `json:"color,omitempty"`
	Colors []string `json:"colors,omitempty"`
	Size   float64  `json:"size,omitempty"`
}

type Layout struct {
	Title  *Text   `json:"title,omitempty"`
	XAxis  *Axis   `json:"xaxis,omitempty"`
	YAxis  *Axis   `json:"yaxis,omitempty"`
	Legend *Legend `json:"legend,omitempty"`
	Mapbox *Mapbox `json:"mapbox,omitempty"`
	Margin *Margin `json:"margin,omitempty"`
}

type Text struct {
	Text string `json:"text"`
}

type Axis struct {
	Title Text `json:"title"`
}

type Legend struct {
	Title Text `json:"title"`
}

type Mapbox struct {
	Style  string  `json:"style"`
	Zoom   float64 `json:"zoom"`
	Center LatLon  `json:"center"`
}

type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Margin struct {
	T int `json:"t"`
	L int `json:"l"`
	R int `json:"r"`
	B int `json:"b"`
}

// Points counts the data points across all traces.
func (f *Figure) Points() int {
	n := 0
	for _, t := range f.Data {
		n += len(t.Y) + len(t.Values) + len(t.Lat)
	}
	return n
}
