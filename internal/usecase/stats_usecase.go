package usecase

import (
	"fmt"

	"github.com/station-dashboard/internal/domain"
	"github.com/station-dashboard/internal/pkg/frame"
	"github.com/station-dashboard/internal/pkg/utils"
	"go.uber.org/zap"
)

// StatsUseCase summarizes the loaded tables.
type StatsUseCase struct {
	data   *DataContext
	logger *zap.Logger
}

func NewStatsUseCase(data *DataContext, logger *zap.Logger) *StatsUseCase {
	return &StatsUseCase{
		data:   data,
		logger: logger,
	}
}

// GetStatistics summarizes both source tables. It is recomputed on every call.
func (uc *StatsUseCase) GetStatistics() (*domain.Statistics, error) {
	traffic := uc.data.Traffic()
	locations := uc.data.Locations()

	amounts, err := traffic.Col(domain.ColTraffic).Int()
	if err != nil {
		return nil, fmt.Errorf("read traffic column: %w", err)
	}
	var total int64
	for _, a := range amounts {
		total += int64(a)
	}

	byNetwork, err := countMap(frame.CountBy(traffic, domain.ColNetwork, domain.ColCount), domain.ColNetwork)
	if err != nil {
		return nil, fmt.Errorf("count stations by network: %w", err)
	}
	byOperator, err := countMap(frame.CountBy(locations, domain.ColOperator, domain.ColCount), domain.ColOperator)
	if err != nil {
		return nil, fmt.Errorf("count stations by operator: %w", err)
	}

	lats := locations.Col(domain.ColLat).Float()
	lons := locations.Col(domain.ColLng).Float()
	center := utils.Centroid(lats, lons)

	stats := &domain.Statistics{
		Traffic: domain.TrafficStats{
			TotalStations: traffic.Nrow(),
			TotalTraffic:  total,
			ByNetwork:     byNetwork,
			Cities:        len(frame.Distinct(traffic, domain.ColCity)),
		},
		Locations: domain.LocationStats{
			TotalStations: locations.Nrow(),
			TotalLines:    len(frame.Distinct(locations, domain.ColLine)),
			ByOperator:    byOperator,
		},
		Coverage: domain.CoverageStats{
			BoundingBox: utils.Bounds(lats, lons),
			CenterLat:   center.Lat,
			CenterLon:   center.Lon,
		},
		LoadedAt: uc.data.LoadedAt(),
	}

	uc.logger.Debug("Statistics computed",
		zap.Int("traffic_rows", stats.Traffic.TotalStations),
		zap.Int("location_rows", stats.Locations.TotalStations),
	)

	return stats, nil
}
