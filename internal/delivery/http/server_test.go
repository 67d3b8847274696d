package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/station-dashboard/internal/config"
	httpDelivery "github.com/station-dashboard/internal/delivery/http"
	"github.com/station-dashboard/internal/delivery/http/handler"
	"github.com/station-dashboard/internal/domain"
	"github.com/station-dashboard/internal/pkg/metrics"
	"github.com/station-dashboard/internal/repository/dataset"
	"github.com/station-dashboard/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *httpDelivery.Server {
	t.Helper()
	logger := zap.NewNop()

	tables := &dataset.Tables{
		Traffic: dataframe.New(
			series.New([]string{"Métro", "RER", "Métro", "RER"}, series.String, domain.ColNetwork),
			series.New([]string{"GARE DU NORD", "SAINT-LAZARE", "LA DEFENSE", "NANTERRE"}, series.String, domain.ColStation),
			series.New([]int{34503097, 33128384, 14071831, 2000000}, series.Int, domain.ColTraffic),
			series.New([]string{"Paris", "Paris", "Puteaux", "Nanterre"}, series.String, domain.ColCity),
		),
		Locations: dataframe.New(
			series.New([]string{"Gare du Nord", "Chatelet", "Versailles"}, series.String, domain.ColName),
			series.New([]string{"B", "A", "C"}, series.String, domain.ColLine),
			series.New([]string{"RATP", "RATP", "SNCF"}, series.String, domain.ColOperator),
			series.New([]string{"48.880,2.355", "48.858,2.347", "48.800,2.130"}, series.String, domain.ColGeoPoint),
		),
		LoadedAt: time.Now(),
	}

	cfg := &config.Config{
		Server:    config.ServerConfig{Host: "127.0.0.1", Port: 8050, CORSOrigins: "*"},
		Dashboard: config.DashboardConfig{TopPerNetwork: 5, PieUnfilteredLimit: 20, PieFilteredLimit: 5},
		Map:       config.MapConfig{Style: "open-street-map", Zoom: 6},
		Metrics:   config.MetricsConfig{Enabled: true},
	}
	m := metrics.New()

	agg := usecase.NewAggregator(cfg.Dashboard)
	data, err := usecase.NewDataContext(tables, agg)
	require.NoError(t, err)
	dashboardUC, err := usecase.NewDashboardUseCase(data, agg, usecase.NewDispatcher(m, logger), cfg.Map, logger)
	require.NoError(t, err)

	pageHandler, err := handler.NewPageHandler(dashboardUC, logger)
	require.NoError(t, err)

	return httpDelivery.NewServer(
		cfg,
		logger,
		m,
		pageHandler,
		handler.NewDashboardHandler(dashboardUC, logger),
		handler.NewStatsHandler(usecase.NewStatsUseCase(data, logger), logger),
	)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string                 `json:"code"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func do(t *testing.T, s *httpDelivery.Server, req *http.Request) (*http.Response, envelope) {
	t.Helper()
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)

	var body envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	}
	return resp, body
}

func TestServer_Page(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(raw)

	assert.Contains(t, page, "RATP &amp; IDF : Stations visualization")
	assert.Contains(t, page, `id="reseau-filter"`)
	assert.Contains(t, page, `id="map-graph"`)
	assert.Contains(t, page, "Select an exploitant")
	assert.Contains(t, page, "plotly")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestServer_Figures(t *testing.T) {
	s := newTestServer(t)

	resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/api/v1/figures", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var figures struct {
		Figures map[string]json.RawMessage `json:"figures"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &figures))
	assert.Len(t, figures.Figures, 5)
}

func TestServer_Figure(t *testing.T) {
	s := newTestServer(t)

	t.Run("filtered bar chart", func(t *testing.T) {
		resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/api/v1/figures/bar-chart?value=RER", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var fig struct {
			Data []struct {
				X []string `json:"x"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(body.Data, &fig))
		assert.Equal(t, []string{"SAINT-LAZARE", "NANTERRE"}, fig.Data[0].X)
	})

	t.Run("unknown chart", func(t *testing.T) {
		resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/api/v1/figures/histogram", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.NotNil(t, body.Error)
		assert.Equal(t, "UNKNOWN_CHART", body.Error.Code)
	})
}

func TestServer_FigurePNG(t *testing.T) {
	s := newTestServer(t)

	t.Run("renders", func(t *testing.T) {
		resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/api/v1/figures/bar-chart2/png?width=400&height=300", nil), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "\x89PNG", string(raw[:4]))
	})

	t.Run("single operator", func(t *testing.T) {
		resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/api/v1/figures/bar-chart2/png?value=RATP", nil), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "\x89PNG", string(raw[:4]))
	})

	t.Run("empty figure", func(t *testing.T) {
		resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/api/v1/figures/bar-chart2/png?value=Keolis", nil))
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "EMPTY_FIGURE", body.Error.Code)
	})

	t.Run("size out of range", func(t *testing.T) {
		resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/api/v1/figures/bar-chart/png?width=10", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_REQUEST", body.Error.Code)
		assert.Equal(t, "min", body.Error.Details["Width"])
	})
}

func TestServer_Callback(t *testing.T) {
	s := newTestServer(t)

	post := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/callbacks", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	t.Run("operator change", func(t *testing.T) {
		resp, body := do(t, s, post(`{"input":"exploitant-filter","value":"SNCF"}`))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Input   string                     `json:"input"`
			Value   *string                    `json:"value"`
			Outputs map[string]json.RawMessage `json:"outputs"`
		}
		require.NoError(t, json.Unmarshal(body.Data, &out))
		assert.Equal(t, "exploitant-filter", out.Input)
		assert.Equal(t, "SNCF", *out.Value)
		assert.Contains(t, out.Outputs, "bar-chart2")
		assert.Contains(t, out.Outputs, "bar-chart3")
	})

	t.Run("cleared value", func(t *testing.T) {
		resp, body := do(t, s, post(`{"input":"reseau-filter","value":null}`))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Value   *string                    `json:"value"`
			Outputs map[string]json.RawMessage `json:"outputs"`
		}
		require.NoError(t, json.Unmarshal(body.Data, &out))
		assert.Nil(t, out.Value)
		assert.Len(t, out.Outputs, 2)
	})

	t.Run("unknown input", func(t *testing.T) {
		resp, body := do(t, s, post(`{"input":"ligne-filter","value":"A"}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "UNKNOWN_INPUT", body.Error.Code)
	})

	t.Run("missing input", func(t *testing.T) {
		resp, body := do(t, s, post(`{"value":"A"}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_REQUEST", body.Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, body := do(t, s, post(`{"input":`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_REQUEST", body.Error.Code)
	})
}

func TestServer_LayoutAndStats(t *testing.T) {
	s := newTestServer(t)

	resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/api/v1/layout", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body.Data), `"reseau-filter"`)

	resp, body = do(t, s, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats domain.Statistics
	require.NoError(t, json.Unmarshal(body.Data, &stats))
	assert.Equal(t, 4, stats.Traffic.TotalStations)
	assert.Equal(t, map[string]int{"RATP": 2, "SNCF": 1}, stats.Locations.ByOperator)
}

func TestServer_MetricsAndHealth(t *testing.T) {
	s := newTestServer(t)

	resp, _ := do(t, s, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "dashboard_http_requests_total")
}

func TestServer_UnknownRoute(t *testing.T) {
	s := newTestServer(t)

	resp, _ := do(t, s, httptest.NewRequest(http.MethodGet, "/api/v1/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
