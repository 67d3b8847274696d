package usecase

import (
	"fmt"

	"github.com/station-dashboard/internal/config"
	"github.com/station-dashboard/internal/domain"
	"github.com/station-dashboard/internal/figure"
	apperrors "github.com/station-dashboard/internal/pkg/errors"
	"github.com/station-dashboard/internal/usecase/dto"
	"go.uber.org/zap"
)

const dashboardTitle = "RATP & IDF : Stations visualization"

// DashboardUseCase wires the aggregator, the figure builder and the
// dispatcher for the five dashboard charts.
type DashboardUseCase struct {
	data       *DataContext
	agg        *Aggregator
	dispatcher *Dispatcher
	mapCfg     config.MapConfig
	logger     *zap.Logger
}

// NewDashboardUseCase registers the four dropdown update rules on dispatcher.
func NewDashboardUseCase(
	data *DataContext,
	agg *Aggregator,
	dispatcher *Dispatcher,
	mapCfg config.MapConfig,
	logger *zap.Logger,
) (*DashboardUseCase, error) {
	uc := &DashboardUseCase{
		data:       data,
		agg:        agg,
		dispatcher: dispatcher,
		mapCfg:     mapCfg,
		logger:     logger,
	}

	err := dispatcher.Register(
		Rule{Input: domain.InputNetwork, Output: domain.ChartTopStations, Update: uc.topStationsFigure},
		Rule{Input: domain.InputNetwork, Output: domain.ChartCityShare, Update: uc.cityShareFigure},
		Rule{Input: domain.InputOperator, Output: domain.ChartOperators, Update: uc.operatorsFigure},
		Rule{Input: domain.InputOperator, Output: domain.ChartLines, Update: uc.linesFigure},
	)
	if err != nil {
		return nil, fmt.Errorf("register update rules: %w", err)
	}

	return uc, nil
}

func (uc *DashboardUseCase) topStationsFigure(network domain.Filter) (*figure.Figure, error) {
	view := uc.agg.TopStationsByTraffic(uc.data.Traffic(), network)
	return figure.Bar(view, domain.ColStation, domain.ColTraffic, figure.Options{})
}

func (uc *DashboardUseCase) cityShareFigure(network domain.Filter) (*figure.Figure, error) {
	view, err := uc.agg.TopTrafficByCity(uc.data.Traffic(), network)
	if err != nil {
		return nil, err
	}
	return figure.Pie(view, domain.ColTraffic, domain.ColCity, figure.Options{})
}

func (uc *DashboardUseCase) operatorsFigure(operator domain.Filter) (*figure.Figure, error) {
	view := uc.agg.StationCountByOperator(uc.data.Locations(), operator)
	return figure.Bar(view, domain.ColOperator, domain.ColCount, figure.Options{
		Labels: countLabels(domain.ColOperator, "Exploitant"),
	})
}

func (uc *DashboardUseCase) linesFigure(operator domain.Filter) (*figure.Figure, error) {
	view := uc.agg.StationCountByLine(uc.data.Locations(), operator)
	return figure.Bar(view, domain.ColLine, domain.ColCount, figure.Options{
		Labels: countLabels(domain.ColLine, "Ligne"),
	})
}

func (uc *DashboardUseCase) mapFigure() (*figure.Figure, error) {
	return figure.ScatterMap(uc.data.Locations(), figure.Mapping{
		Lat:   domain.ColLat,
		Lon:   domain.ColLng,
		Color: domain.ColOperator,
		Hover: domain.ColName,
	}, figure.Options{
		Labels: map[string]string{
			domain.ColOperator: "Exploitant",
			domain.ColLat:      "Latitude",
			domain.ColLng:      "Longitude",
		},
		MapStyle: uc.mapCfg.Style,
		MapZoom:  uc.mapCfg.Zoom,
	})
}

func countLabels(category, label string) map[string]string {
	return map[string]string{
		category:        label,
		domain.ColCount: "Number of stations",
	}
}

// Figure returns one chart under filter. The map has no dropdown and
// ignores filter.
func (uc *DashboardUseCase) Figure(chart domain.ChartID, filter domain.Filter) (*figure.Figure, error) {
	if chart == domain.ChartMap {
		return uc.mapFigure()
	}

	fig, ok, err := uc.dispatcher.Evaluate(chart, filter)
	if !ok {
		return nil, apperrors.ErrUnknownChart.WithDetails(map[string]interface{}{"chart": string(chart)})
	}
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", chart, err)
	}
	return fig, nil
}

// InitialFigures returns every chart with both dropdowns unset.
func (uc *DashboardUseCase) InitialFigures() (*dto.FiguresResponse, error) {
	figures := make(map[domain.ChartID]*figure.Figure, len(domain.Charts))
	for _, chart := range domain.Charts {
		fig, err := uc.Figure(chart, domain.NoFilter())
		if err != nil {
			return nil, err
		}
		figures[chart] = fig
	}
	return &dto.FiguresResponse{Figures: figures}, nil
}

// Dispatch recomputes the charts bound to req.Input.
func (uc *DashboardUseCase) Dispatch(req dto.CallbackRequest) (*dto.CallbackResponse, error) {
	outputs, err := uc.dispatcher.Dispatch(domain.InputID(req.Input), domain.FilterFromPtr(req.Value))
	if err != nil {
		return nil, err
	}

	return &dto.CallbackResponse{
		Input:   req.Input,
		Value:   req.Value,
		Outputs: outputs,
	}, nil
}

// Layout describes the page: headings, dropdowns with their options, and
// chart slots.
func (uc *DashboardUseCase) Layout() *dto.LayoutResponse {
	return &dto.LayoutResponse{
		Title: dashboardTitle,
		Sections: []dto.Section{
			{
				Heading: "TOP 10 of the station with the biggest traffic and pie chart that represents trafic per cities",
				Dropdown: &dto.Dropdown{
					ID:          domain.InputNetwork,
					Placeholder: "Select a reseau",
					Options:     options(uc.data.NetworkOptions()),
					Outputs:     uc.dispatcher.Outputs(domain.InputNetwork),
				},
				Charts: []dto.ChartSlot{
					{ID: domain.ChartTopStations, Half: true},
					{ID: domain.ChartCityShare, Half: true},
				},
			},
			{
				Heading: "Bar chart that represents the number of Stations per Exploitant",
				Dropdown: &dto.Dropdown{
					ID:          domain.InputOperator,
					Placeholder: "Select an exploitant",
					Options:     options(uc.data.OperatorOptions()),
					Outputs:     uc.dispatcher.Outputs(domain.InputOperator),
				},
				Charts: []dto.ChartSlot{{ID: domain.ChartOperators}},
			},
			{
				Heading: "Chart that represents the number of Stations per ligne",
				Charts:  []dto.ChartSlot{{ID: domain.ChartLines}},
			},
			{
				Heading: "Position of the stations",
				Charts:  []dto.ChartSlot{{ID: domain.ChartMap}},
			},
		},
	}
}

func options(values []string) []dto.Option {
	out := make([]dto.Option, 0, len(values))
	for _, v := range values {
		out = append(out, dto.Option{Label: v, Value: v})
	}
	return out
}
