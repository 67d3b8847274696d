package usecase

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/station-dashboard/internal/config"
	"github.com/station-dashboard/internal/domain"
	apperrors "github.com/station-dashboard/internal/pkg/errors"
	"github.com/station-dashboard/internal/pkg/frame"
	"github.com/station-dashboard/internal/pkg/utils"
)

// Aggregator derives the dashboard views from the source tables. Every
// method is a pure function of its arguments; a filter value absent from the
// data yields an empty table.
type Aggregator struct {
	topPerNetwork      int
	pieUnfilteredLimit int
	pieFilteredLimit   int
}

// NewAggregator returns an Aggregator using the configured view limits.
func NewAggregator(cfg config.DashboardConfig) *Aggregator {
	return &Aggregator{
		topPerNetwork:      cfg.TopPerNetwork,
		pieUnfilteredLimit: cfg.PieUnfilteredLimit,
		pieFilteredLimit:   cfg.PieFilteredLimit,
	}
}

// TopStationsByTraffic sorts stations by traffic (descending, ties in source
// order), optionally keeps one network, then keeps the first topPerNetwork
// rows of every network.
func (a *Aggregator) TopStationsByTraffic(traffic dataframe.DataFrame, network domain.Filter) dataframe.DataFrame {
	view := traffic
	if network.Set {
		view = frame.FilterEq(view, domain.ColNetwork, network.Value)
	}
	view = frame.SortDesc(view, domain.ColTraffic)
	return frame.HeadPerGroup(view, domain.ColNetwork, a.topPerNetwork)
}

// TopTrafficByCity feeds the city pie chart.
//
// Unfiltered, it is the first pieUnfilteredLimit rows of the table as loaded,
// not sorted by traffic. Filtered, it sums traffic per city within the
// network and keeps the pieFilteredLimit largest cities.
func (a *Aggregator) TopTrafficByCity(traffic dataframe.DataFrame, network domain.Filter) (dataframe.DataFrame, error) {
	if !network.Set {
		return frame.Head(traffic, a.pieUnfilteredLimit), nil
	}

	view := frame.FilterEq(traffic, domain.ColNetwork, network.Value)
	sums, err := frame.SumBy(view, domain.ColCity, domain.ColTraffic)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("sum traffic by city: %w", err)
	}
	return frame.Head(frame.SortDesc(sums, domain.ColTraffic), a.pieFilteredLimit), nil
}

// StationCountByOperator counts stations per operator. With an operator set
// the result is that operator's single row, or no rows.
func (a *Aggregator) StationCountByOperator(locations dataframe.DataFrame, operator domain.Filter) dataframe.DataFrame {
	counts := frame.CountBy(locations, domain.ColOperator, domain.ColCount)
	if !operator.Set {
		return counts
	}
	return frame.FilterEq(counts, domain.ColOperator, operator.Value)
}

// StationCountByLine counts stations per line, restricted to one operator's
// stations when set.
func (a *Aggregator) StationCountByLine(locations dataframe.DataFrame, operator domain.Filter) dataframe.DataFrame {
	view := locations
	if operator.Set {
		view = frame.FilterEq(view, domain.ColOperator, operator.Value)
	}
	return frame.CountBy(view, domain.ColLine, domain.ColCount)
}

// GeoPoints parses the "lat,lng" column into float lat and lng columns.
// The first malformed value is an ErrParse carrying its row and value.
func (a *Aggregator) GeoPoints(locations dataframe.DataFrame) (dataframe.DataFrame, error) {
	if err := frame.Require(locations, domain.ColGeoPoint); err != nil {
		return dataframe.DataFrame{}, apperrors.ErrParse.Wrap(err)
	}

	raw := locations.Col(domain.ColGeoPoint).Records()
	lats := make([]float64, len(raw))
	lngs := make([]float64, len(raw))
	for i, s := range raw {
		p, err := utils.ParseLatLng(s)
		if err != nil {
			return dataframe.DataFrame{}, apperrors.ErrParse.Wrap(err).WithDetails(map[string]interface{}{
				"row":   i + 1,
				"value": s,
			})
		}
		lats[i], lngs[i] = p.Lat, p.Lon
	}

	out := locations.
		Mutate(series.New(lats, series.Float, domain.ColLat)).
		Mutate(series.New(lngs, series.Float, domain.ColLng))
	if out.Err != nil {
		return dataframe.DataFrame{}, apperrors.ErrParse.Wrap(out.Err)
	}
	return out, nil
}

// countMap turns a CountBy result into key -> count.
func countMap(counts dataframe.DataFrame, keyCol string) (map[string]int, error) {
	keys := counts.Col(keyCol).Records()
	values, err := counts.Col(domain.ColCount).Int()
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", domain.ColCount, err)
	}
	out := make(map[string]int, len(keys))
	for i, k := range keys {
		out[k] = values[i]
	}
	return out, nil
}
