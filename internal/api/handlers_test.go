package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyberrisk/adapters/memory"
	"cyberrisk/internal"
	"cyberrisk/internal/config"
	"cyberrisk/internal/worker"
)

type testServer struct {
	router *gin.Engine
	runner *worker.Runner
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0", GinMode: gin.TestMode},
		Simulation: config.SimulationConfig{
			MaxIterations:     100_000,
			MaxConcurrentRuns: 2,
			Currency:          "GBP",
		},
	}
	logger := internal.NewLogger(internal.LogLevelError)
	repo := memory.NewRunRepository()
	runner := worker.NewRunner(repo, logger, cfg.Simulation.MaxConcurrentRuns, cfg.Simulation.Currency)
	handler := NewHandler(runner, repo, cfg, logger)
	return &testServer{router: handler.Router(), runner: runner}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func simulateBody() map[string]interface{} {
	return map[string]interface{}{
		"asset_value_min":          50_000,
		"asset_value_mode":         150_000,
		"asset_value_max":          500_000,
		"occurrence_counts":        []int{0, 1, 2, 3, 4, 5},
		"occurrence_probabilities": []float64{0.3, 0.4, 0.2, 0.06, 0.03, 0.01},
		"iterations":               10_000,
		"flaw_a_mu":                9.2,
		"flaw_a_sigma":             1.0,
		"flaw_b_scale":             5_000,
		"flaw_b_alpha":             2.5,
		"threshold_point1":         100_000,
		"threshold_point2":         50_000,
		"range_point3":             20_000,
		"range_point4":             100_000,
		"scenario_name":            "api test",
		"random_seed":              42,
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSimulateLifecycle(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/simulate", simulateBody())
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

	var accepted struct {
		RunID  string `json:"run_id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &accepted))
	require.NotEmpty(t, accepted.RunID)
	assert.Equal(t, "pending", accepted.Status)

	s.runner.Wait()

	w = s.do(t, http.MethodGet, "/api/v1/results/"+accepted.RunID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var rn struct {
		Status  string `json:"status"`
		Results *struct {
			ALE         float64            `json:"ale"`
			Prob1       float64            `json:"prob1"`
			Percentiles map[string]float64 `json:"percentiles"`
			Currency    string             `json:"currency"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rn))
	require.Equal(t, "completed", rn.Status)
	require.NotNil(t, rn.Results)
	assert.InDelta(t, 1.0/18.0, rn.Results.Prob1, 1e-9)
	assert.Greater(t, rn.Results.ALE, 0.0)
	assert.Equal(t, "GBP", rn.Results.Currency)
	assert.Contains(t, rn.Results.Percentiles, "P95")
}

func TestSimulateRejectsMalformedBody(t *testing.T) {
	s := newTestServer(t)

	body := simulateBody()
	delete(body, "iterations")
	w := s.do(t, http.MethodPost, "/api/v1/simulate", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSimulateRejectsInvalidParameters(t *testing.T) {
	s := newTestServer(t)

	body := simulateBody()
	body["asset_value_mode"] = 900_000 // above max
	w := s.do(t, http.MethodPost, "/api/v1/simulate", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "PARAMETER_ERROR")
}

func TestSimulateAcceptsZeroMu(t *testing.T) {
	// Zero is a valid log-normal location; it must pass the binding
	// layer and the engine's own validation.
	s := newTestServer(t)

	body := simulateBody()
	body["flaw_a_mu"] = 0
	w := s.do(t, http.MethodPost, "/api/v1/simulate", body)
	assert.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	s.runner.Wait()
}

func TestSimulateRejectsExcessiveIterations(t *testing.T) {
	s := newTestServer(t)

	body := simulateBody()
	body["iterations"] = 10_000_000
	w := s.do(t, http.MethodPost, "/api/v1/simulate", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAndDelete(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/simulate", simulateBody())
	require.Equal(t, http.StatusAccepted, w.Code)
	var accepted struct {
		RunID string `json:"run_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &accepted))
	s.runner.Wait()

	w = s.do(t, http.MethodGet, "/api/v1/simulations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Count)

	w = s.do(t, http.MethodDelete, "/api/v1/results/"+accepted.RunID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/results/"+accepted.RunID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetResultsUnknownRun(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/api/v1/results/0190b7c2-1111-7abc-8def-0123456789ab", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnalyze(t *testing.T) {
	s := newTestServer(t)

	body := map[string]interface{}{
		"total_cases": 290,
		"table": [][]int{
			{25, 35, 20, 15},
			{30, 40, 25, 10},
			{15, 25, 30, 20},
		},
		"test_probabilities": []float64{0.8, 0.75, 0.7, 0.65, 0.6, 0.55},
	}
	w := s.do(t, http.MethodPost, "/api/v1/analyze", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result struct {
		Prob1 float64 `json:"prob1"`
		Prob2 float64 `json:"prob2"`
		Prob3 float64 `json:"prob3"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.InDelta(t, 175.0/290.0, result.Prob1, 1e-9)
	assert.InDelta(t, 165.0/290.0, result.Prob2, 1e-9)
	assert.InDelta(t, 98.0/212.75, result.Prob3, 1e-9)
}

func TestAnalyzeRejectsWrongShape(t *testing.T) {
	s := newTestServer(t)

	body := map[string]interface{}{
		"total_cases":        10,
		"table":              [][]int{{5, 5}},
		"test_probabilities": []float64{0.8, 0.75, 0.7, 0.65, 0.6, 0.55},
	}
	w := s.do(t, http.MethodPost, "/api/v1/analyze", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "PARAMETER_ERROR")
}

func optimizeBody() map[string]interface{} {
	return map[string]interface{}{
		"historical_data": [][]float64{
			{2, 3, 1, 4, 2, 3, 1, 2, 3},
			{1, 2, 3, 2, 1, 2, 3, 1, 2},
			{3, 2, 4, 1, 3, 2, 4, 3, 2},
			{1, 1, 2, 2, 1, 1, 2, 1, 1},
		},
		"safeguard_effects": []float64{85, 78, 92, 70, 88, 82, 95, 87, 80},
		"maintenance_loads": []float64{45, 52, 38, 65, 42, 48, 35, 44, 50},
		"current_controls":  []int{2, 1, 3, 1},
		"control_costs":     []float64{10_000, 15_000, 8_000, 5_000},
		"control_limits":    []int{5, 4, 6, 3},
		"safeguard_target":  90.0,
		"maintenance_limit": 50.0,
		"control_names":     []string{"Firewalls", "IDS/IPS", "Endpoint Protection", "Security Training"},
	}
}

func TestOptimize(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/optimize", optimizeBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Result struct {
			AdditionalControls  [4]float64 `json:"additional_controls"`
			TotalAdditionalCost float64    `json:"total_additional_cost"`
		} `json:"result"`
		Recommendations []struct {
			ControlName string `json:"control_name"`
		} `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 0.171687465225, resp.Result.AdditionalControls[2], 1e-6)
	assert.InDelta(t, 1373.4997218, resp.Result.TotalAdditionalCost, 1e-3)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "Endpoint Protection", resp.Recommendations[0].ControlName)
}

func TestOptimizeInfeasibleReturns422(t *testing.T) {
	s := newTestServer(t)

	body := optimizeBody()
	body["safeguard_target"] = 100_000.0
	w := s.do(t, http.MethodPost, "/api/v1/optimize", body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "OPTIMIZATION_ERROR")
}

func TestOptimizeAcceptsZeroMaintenanceLimit(t *testing.T) {
	// A zero limit is a legal (if harsh) constraint: the request must
	// reach the solver, which reports infeasibility, not fail binding.
	s := newTestServer(t)

	body := optimizeBody()
	body["maintenance_limit"] = 0.0
	w := s.do(t, http.MethodPost, "/api/v1/optimize", body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "OPTIMIZATION_ERROR")
}

func TestOptimizeAcceptsZeroSafeguardTarget(t *testing.T) {
	// A zero target is already met, so nothing needs deploying.
	s := newTestServer(t)

	body := optimizeBody()
	body["safeguard_target"] = 0.0
	w := s.do(t, http.MethodPost, "/api/v1/optimize", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Result struct {
			TotalAdditionalCost float64 `json:"total_additional_cost"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 0.0, resp.Result.TotalAdditionalCost, 1e-6)
}

func TestOptimizeRejectsWrongShape(t *testing.T) {
	s := newTestServer(t)

	body := optimizeBody()
	body["current_controls"] = []int{1, 2}
	w := s.do(t, http.MethodPost, "/api/v1/optimize", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
