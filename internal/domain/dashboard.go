package domain

// InputID identifies a dropdown on the dashboard page.
type InputID string

// ChartID identifies a chart region on the dashboard page.
type ChartID string

const (
	InputNetwork  InputID = "reseau-filter"
	InputOperator InputID = "exploitant-filter"
)

const (
	ChartTopStations ChartID = "bar-chart"
	ChartCityShare   ChartID = "pie-chart"
	ChartOperators   ChartID = "bar-chart2"
	ChartLines       ChartID = "bar-chart3"
	ChartMap         ChartID = "map-graph"
)

// Charts lists every chart region in page order.
var Charts = []ChartID{ChartTopStations, ChartCityShare, ChartOperators, ChartLines, ChartMap}

// Inputs lists every dropdown in page order.
var Inputs = []InputID{InputNetwork, InputOperator}

// Filter is the current value of one dropdown: unset or a single category.
type Filter struct {
	Value string
	Set   bool
}

// NoFilter - dropdown cleared
func NoFilter() Filter {
	return Filter{}
}

// FilterOf returns a filter restricted to value.
func FilterOf(value string) Filter {
	return Filter{Value: value, Set: true}
}

// FilterFromPtr maps a nullable dropdown value to a Filter. nil and "" both
// mean the dropdown is cleared.
func FilterFromPtr(value *string) Filter {
	if value == nil {
		return NoFilter()
	}
	return FilterFromValue(*value)
}

// FilterFromValue maps a plain dropdown value to a Filter; "" is unset.
func FilterFromValue(value string) Filter {
	if value == "" {
		return NoFilter()
	}
	return FilterOf(value)
}

// String is used in logs.
func (f Filter) String() string {
	if !f.Set {
		return "<unset>"
	}
	return f.Value
}

// FilterSelection holds the state of both dropdowns.
type FilterSelection struct {
	Network  Filter
	Operator Filter
}

// ForInput returns the component of the selection bound to input.
func (s FilterSelection) ForInput(input InputID) Filter {
	switch input {
	case InputNetwork:
		return s.Network
	case InputOperator:
		return s.Operator
	}
	return NoFilter()
}
