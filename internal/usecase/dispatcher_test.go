package usecase_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/station-dashboard/internal/domain"
	"github.com/station-dashboard/internal/figure"
	apperrors "github.com/station-dashboard/internal/pkg/errors"
	"github.com/station-dashboard/internal/pkg/metrics"
	"github.com/station-dashboard/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// echoRule records the filters it saw and returns a figure named after them.
type echoRule struct {
	mu   sync.Mutex
	seen []domain.Filter
}

func (e *echoRule) update(f domain.Filter) (*figure.Figure, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.seen = append(e.seen, f)
	return &figure.Figure{Data: []figure.Trace{{Type: figure.KindBar, Name: f.String()}}}, nil
}

func TestDispatcher_Dispatch(t *testing.T) {
	d := usecase.NewDispatcher(metrics.New(), zap.NewNop())
	bar, pie, ops := &echoRule{}, &echoRule{}, &echoRule{}

	require.NoError(t, d.Register(
		usecase.Rule{Input: domain.InputNetwork, Output: domain.ChartTopStations, Update: bar.update},
		usecase.Rule{Input: domain.InputNetwork, Output: domain.ChartCityShare, Update: pie.update},
		usecase.Rule{Input: domain.InputOperator, Output: domain.ChartOperators, Update: ops.update},
	))

	t.Run("runs only the rules of the changed input", func(t *testing.T) {
		outputs, err := d.Dispatch(domain.InputNetwork, domain.FilterOf("RER"))
		require.NoError(t, err)

		assert.Len(t, outputs, 2)
		assert.Equal(t, "RER", outputs[domain.ChartTopStations].Data[0].Name)
		assert.Equal(t, "RER", outputs[domain.ChartCityShare].Data[0].Name)
		assert.Empty(t, ops.seen)
	})

	t.Run("clearing the dropdown passes an unset filter", func(t *testing.T) {
		outputs, err := d.Dispatch(domain.InputNetwork, domain.NoFilter())
		require.NoError(t, err)

		assert.Equal(t, "<unset>", outputs[domain.ChartTopStations].Data[0].Name)
		assert.Equal(t, []domain.Filter{domain.FilterOf("RER"), domain.NoFilter()}, bar.seen)
	})

	t.Run("unknown input", func(t *testing.T) {
		_, err := d.Dispatch("line-filter", domain.NoFilter())
		assert.True(t, errors.Is(err, apperrors.ErrUnknownInput))
	})

	t.Run("outputs in registration order", func(t *testing.T) {
		assert.Equal(t, []domain.ChartID{domain.ChartTopStations, domain.ChartCityShare}, d.Outputs(domain.InputNetwork))
		assert.Empty(t, d.Outputs("line-filter"))
	})
}

func TestDispatcher_RuleErrorStopsDispatch(t *testing.T) {
	d := usecase.NewDispatcher(nil, zap.NewNop())
	boom := apperrors.ErrBuild.Wrap(errors.New("missing column"))

	require.NoError(t, d.Register(usecase.Rule{
		Input:  domain.InputOperator,
		Output: domain.ChartLines,
		Update: func(domain.Filter) (*figure.Figure, error) { return nil, boom },
	}))

	outputs, err := d.Dispatch(domain.InputOperator, domain.FilterOf("RATP"))
	assert.Nil(t, outputs)
	assert.True(t, errors.Is(err, apperrors.ErrBuild))
}

func TestDispatcher_RegisterTwiceForOneChart(t *testing.T) {
	d := usecase.NewDispatcher(nil, zap.NewNop())
	rule := usecase.Rule{Input: domain.InputOperator, Output: domain.ChartLines, Update: (&echoRule{}).update}

	require.NoError(t, d.Register(rule))
	assert.Error(t, d.Register(rule))
}

func TestDispatcher_Evaluate(t *testing.T) {
	d := usecase.NewDispatcher(nil, zap.NewNop())
	ops := &echoRule{}
	require.NoError(t, d.Register(usecase.Rule{Input: domain.InputOperator, Output: domain.ChartOperators, Update: ops.update}))

	fig, ok, err := d.Evaluate(domain.ChartOperators, domain.FilterOf("SNCF"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "SNCF", fig.Data[0].Name)

	_, ok, err = d.Evaluate(domain.ChartMap, domain.NoFilter())
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestDispatcher_ConcurrentEventsAreSerialized(t *testing.T) {
	d := usecase.NewDispatcher(nil, zap.NewNop())

	active := 0
	overlapped := false
	require.NoError(t, d.Register(usecase.Rule{
		Input:  domain.InputNetwork,
		Output: domain.ChartTopStations,
		Update: func(f domain.Filter) (*figure.Figure, error) {
			active++
			if active > 1 {
				overlapped = true
			}
			active--
			return &figure.Figure{}, nil
		},
	}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = d.Dispatch(domain.InputNetwork, domain.FilterOf("RER"))
		}()
	}
	wg.Wait()

	assert.False(t, overlapped)
}
