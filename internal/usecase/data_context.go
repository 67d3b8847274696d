package usecase

import (
	"fmt"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/station-dashboard/internal/domain"
	"github.com/station-dashboard/internal/pkg/frame"
	"github.com/station-dashboard/internal/repository/dataset"
)

// DataContext is the read-only state shared by every update rule: the two
// source tables, built once at startup. Accessors hand out the frames by
// value and gota operations never modify their receiver.
type DataContext struct {
	traffic   dataframe.DataFrame
	locations dataframe.DataFrame
	networks  []string
	operators []string
	loadedAt  time.Time
}

// NewDataContext derives the lat/lng columns and the dropdown options.
func NewDataContext(tables *dataset.Tables, agg *Aggregator) (*DataContext, error) {
	locations, err := agg.GeoPoints(tables.Locations)
	if err != nil {
		return nil, fmt.Errorf("derive geo points: %w", err)
	}

	// networks are listed as they appear in the traffic-sorted table
	networks := frame.Distinct(frame.SortDesc(tables.Traffic, domain.ColTraffic), domain.ColNetwork)

	return &DataContext{
		traffic:   tables.Traffic,
		locations: locations,
		networks:  networks,
		operators: frame.Distinct(locations, domain.ColOperator),
		loadedAt:  tables.LoadedAt,
	}, nil
}

func (d *DataContext) Traffic() dataframe.DataFrame {
	return d.traffic
}

func (d *DataContext) Locations() dataframe.DataFrame {
	return d.locations
}

// NetworkOptions returns a copy of the network dropdown values.
func (d *DataContext) NetworkOptions() []string {
	return append([]string(nil), d.networks...)
}

// OperatorOptions returns a copy of the operator dropdown values.
func (d *DataContext) OperatorOptions() []string {
	return append([]string(nil), d.operators...)
}

func (d *DataContext) LoadedAt() time.Time {
	return d.loadedAt
}
