package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wellcheck/internal/catalog"
	"github.com/abhisek/wellcheck/internal/logging"
	"github.com/abhisek/wellcheck/internal/metrics"
	"github.com/abhisek/wellcheck/internal/report"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	reg, err := catalog.Builtin()
	require.NoError(t, err)

	promReg := prometheus.NewRegistry()
	return NewRouter(Config{
		Registry:       reg,
		Logger:         logging.Discard(),
		Metrics:        metrics.NewScoringMetrics(promReg),
		MetricsHandler: promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}),
	})
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListCatalogs(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/api/catalogs", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []CatalogInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "ayurveda", got[0].ID)
	assert.Equal(t, 12, got[0].Questions)
	assert.Equal(t, "tcm", got[1].ID)
}

func TestGetCatalog(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/catalogs/tcm", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var c catalog.Catalog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, "tcm", c.ID)
	assert.Equal(t, "wood-element", c.Sections[1].Questions[0].SectionID)

	rec = do(t, h, http.MethodGet, "/api/catalogs/unani", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScoreAnswers(t *testing.T) {
	h := newTestRouter(t)
	body := `{"answers": {"phys-frame": "vata", "phys-skin": "vata", "mind-stress": "pitta"}}`

	rec := do(t, h, http.MethodPost, "/api/catalogs/ayurveda/results", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var doc report.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.NotEmpty(t, doc.ID)
	require.NotNil(t, doc.Summary)
	assert.Equal(t, 3, doc.Summary.Answered)
	assert.False(t, doc.Summary.Complete)

	dosha, ok := doc.Summary.Dimension("dosha")
	require.True(t, ok)
	assert.Equal(t, "vata", dosha.Dominant)
	assert.Equal(t, 67, dosha.Percent("vata"))
}

func TestScoreAnswers_Formats(t *testing.T) {
	h := newTestRouter(t)
	body := `{"answers": {"yy-temperature": "yin"}}`

	for _, f := range report.Formats {
		t.Run(string(f), func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/catalogs/tcm/results?format="+string(f), body)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, report.ContentType(f), rec.Header().Get("Content-Type"))
			assert.NotZero(t, rec.Body.Len())
		})
	}
}

func TestScoreAnswers_Errors(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name   string
		target string
		body   string
		status int
	}{
		{"unknown catalog", "/api/catalogs/unani/results", `{"answers": {}}`, http.StatusNotFound},
		{"unknown question", "/api/catalogs/tcm/results", `{"answers": {"nope": "yin"}}`, http.StatusUnprocessableEntity},
		{"unknown category", "/api/catalogs/tcm/results", `{"answers": {"yy-energy": "wood"}}`, http.StatusUnprocessableEntity},
		{"malformed body", "/api/catalogs/tcm/results", `{"answers": `, http.StatusBadRequest},
		{"unknown field", "/api/catalogs/tcm/results", `{"answer": {}}`, http.StatusBadRequest},
		{"unknown format", "/api/catalogs/tcm/results?format=pdf", `{"answers": {}}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, tt.status, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestRouter(t)
	do(t, h, http.MethodPost, "/api/catalogs/tcm/results", `{"answers": {"yy-voice": "yang"}}`)

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `wellcheck_scoring_results_total{catalog="tcm",outcome="partial"} 1`)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)
	h := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/brew", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request completed", entry["msg"])
	assert.Equal(t, "/brew", entry["path"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
	assert.NotEmpty(t, entry["request_id"])
}
