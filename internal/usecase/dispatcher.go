package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/station-dashboard/internal/domain"
	"github.com/station-dashboard/internal/figure"
	apperrors "github.com/station-dashboard/internal/pkg/errors"
	"github.com/station-dashboard/internal/pkg/metrics"
	"go.uber.org/zap"
)

// UpdateFunc recomputes one chart from the current value of its dropdown.
type UpdateFunc func(domain.Filter) (*figure.Figure, error)

// Rule binds a dropdown to the chart it recomputes.
type Rule struct {
	Input  domain.InputID
	Output domain.ChartID
	Update UpdateFunc
}

// Dispatcher maps inputs to their update rules and runs them one event at a
// time.
type Dispatcher struct {
	mu       sync.Mutex
	byInput  map[domain.InputID][]Rule
	byOutput map[domain.ChartID]Rule
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewDispatcher(m *metrics.Metrics, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		byInput:  make(map[domain.InputID][]Rule),
		byOutput: make(map[domain.ChartID]Rule),
		metrics:  m,
		logger:   logger,
	}
}

// Register adds rules. A chart can be driven by one rule only.
func (d *Dispatcher) Register(rules ...Rule) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, r := range rules {
		if _, exists := d.byOutput[r.Output]; exists {
			return fmt.Errorf("chart %q already has an update rule", r.Output)
		}
		d.byInput[r.Input] = append(d.byInput[r.Input], r)
		d.byOutput[r.Output] = r
	}
	return nil
}

// Outputs lists the charts recomputed when input changes, in registration order.
func (d *Dispatcher) Outputs(input domain.InputID) []domain.ChartID {
	d.mu.Lock()
	defer d.mu.Unlock()

	rules := d.byInput[input]
	out := make([]domain.ChartID, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.Output)
	}
	return out
}

// Dispatch handles a change of input to filter: every rule bound to input
// runs to completion and replaces its chart.
func (d *Dispatcher) Dispatch(input domain.InputID, filter domain.Filter) (map[domain.ChartID]*figure.Figure, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	start := time.Now()
	outputs, err := d.dispatch(input, filter)
	d.metrics.ObserveCallback(string(input), time.Since(start), err)
	return outputs, err
}

func (d *Dispatcher) dispatch(input domain.InputID, filter domain.Filter) (map[domain.ChartID]*figure.Figure, error) {
	rules, ok := d.byInput[input]
	if !ok {
		return nil, apperrors.ErrUnknownInput.WithDetails(map[string]interface{}{"input": string(input)})
	}

	outputs := make(map[domain.ChartID]*figure.Figure, len(rules))
	for _, r := range rules {
		fig, err := r.Update(filter)
		if err != nil {
			return nil, fmt.Errorf("update %s from %s: %w", r.Output, input, err)
		}
		outputs[r.Output] = fig
	}

	d.logger.Debug("Dispatched input change",
		zap.String("input", string(input)),
		zap.Stringer("filter", filter),
		zap.Int("outputs", len(outputs)),
	)

	return outputs, nil
}

// Evaluate runs the single rule driving output. ok is false when no rule
// drives it.
func (d *Dispatcher) Evaluate(output domain.ChartID, filter domain.Filter) (fig *figure.Figure, ok bool, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	r, ok := d.byOutput[output]
	if !ok {
		return nil, false, nil
	}
	fig, err = r.Update(filter)
	return fig, true, err
}
