package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/sells-group/advisor-cli/internal/config"
	"github.com/sells-group/advisor-cli/internal/engine"
	"github.com/sells-group/advisor-cli/internal/model"
	"github.com/sells-group/advisor-cli/internal/orchestrator"
)

func testAPIServer() *apiServer {
	cfg = &config.Config{}
	cfg.Engines.Default = engine.TraditionalID
	cfg.Engines.TimeoutSecs = 30

	reg := engine.NewRegistry()
	reg.Register(engine.NewLocalEngine())
	return &apiServer{
		orch: orchestrator.New(reg, orchestrator.WithEngineTimeout(30*time.Second)),
	}
}

func testHandler() http.Handler {
	return testAPIServer().routes(rate.Limit(1000), 1000)
}

func apiSubmission() *model.Submission {
	evidence := make(map[model.Competency]model.CompetencyEvidence)
	for _, c := range model.Competencies {
		evidence[c] = model.CompetencyEvidence{
			Competency: c,
			SelfRating: 3,
			Evidence:   strings.Repeat("Routine work continued without notable change day by day. ", 4),
		}
	}
	return &model.Submission{
		Evidence:         evidence,
		Interests:        "software and automation",
		CapitalAvailable: 100000,
		LoanAmount:       50000,
		MinAnnualIncome:  80000,
	}
}

func TestServeHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestServeEngines(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/engines", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var descs []model.EngineDescriptor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &descs))
	require.Len(t, descs, 1)
	assert.Equal(t, engine.TraditionalID, descs[0].ID)
	assert.True(t, descs[0].Available)
}

func TestServeAnalyze(t *testing.T) {
	body, err := json.Marshal(analyzeRequest{
		Engine:     engine.TraditionalID,
		Submission: apiSubmission(),
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/analyze", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Result *model.AnalysisResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Equal(t, engine.TraditionalID, resp.Result.Engine)
	assert.NotEmpty(t, resp.Result.Archetype.Title)
	assert.Len(t, resp.Result.Buybox, 9)
}

func TestServeAnalyzeInvalidBody(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServeAnalyzeMissingSubmission(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(`{"engine":"traditional"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "submission is required")
}

func TestServeAnalyzeValidationFailure(t *testing.T) {
	sub := apiSubmission()
	sub.CapitalAvailable = 0
	body, err := json.Marshal(analyzeRequest{Engine: engine.TraditionalID, Submission: sub})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/analyze", bytes.NewReader(body)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "capital_available")
}

func TestServeAnalyzeUnknownEngine(t *testing.T) {
	body, err := json.Marshal(analyzeRequest{Engine: "ghost", Submission: apiSubmission()})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/analyze", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ghost")
}

func TestServeCompareSingleEngine(t *testing.T) {
	body, err := json.Marshal(compareRequest{Submission: apiSubmission()})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/compare", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Results    map[string]*model.AnalysisResult `json:"results"`
		Comparison *model.EngineComparison          `json:"comparison"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Results, 1)
	assert.Nil(t, resp.Comparison, "no comparison with fewer than two results")
}

func TestServeGetRunWithoutStore(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/runs/abc", nil))

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestServeRateLimit(t *testing.T) {
	h := testAPIServer().routes(rate.Limit(0.001), 1)

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
