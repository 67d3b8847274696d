package metrics

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveCallback(t *testing.T) {
	m := New()

	m.ObserveCallback("reseau-filter", 5*time.Millisecond, nil)
	m.ObserveCallback("reseau-filter", 5*time.Millisecond, errors.New("boom"))
	m.ObserveCallback("exploitant-filter", time.Millisecond, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CallbacksTotal.WithLabelValues("reseau-filter", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CallbacksTotal.WithLabelValues("reseau-filter", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CallbacksTotal.WithLabelValues("exploitant-filter", "ok")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveCallback("reseau-filter", time.Millisecond, nil)
		m.ObserveRequest("GET", "/", 200, time.Millisecond)
		m.SetDatasetRows("traffic", 10)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.SetDatasetRows("traffic", 42)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `dashboard_dataset_rows{table="traffic"} 42`)
}
