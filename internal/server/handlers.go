package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/wellcheck/internal/assessment"
	"github.com/abhisek/wellcheck/internal/catalog"
	"github.com/abhisek/wellcheck/internal/metrics"
	"github.com/abhisek/wellcheck/internal/report"
)

const maxBodyBytes = 1 << 20

type handler struct {
	registry *catalog.Registry
	logger   *slog.Logger
	metrics  *metrics.ScoringMetrics
}

// CatalogInfo is the list view of a catalog.
type CatalogInfo struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Sections    int      `json:"sections"`
	Questions   int      `json:"questions"`
	Dimensions  []string `json:"dimensions"`
}

// ScoreRequest is the body of POST /api/catalogs/{catalogID}/results.
type ScoreRequest struct {
	Answers map[string]string `json:"answers"`
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// listCatalogs returns every registered catalog.
// GET /api/catalogs
func (h *handler) listCatalogs(w http.ResponseWriter, r *http.Request) {
	all := h.registry.All()
	out := make([]CatalogInfo, 0, len(all))
	for _, c := range all {
		out = append(out, CatalogInfo{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Sections:    len(c.Sections),
			Questions:   c.QuestionCount(),
			Dimensions:  c.DimensionIDs(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// getCatalog returns a full catalog.
// GET /api/catalogs/{catalogID}
func (h *handler) getCatalog(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// scoreAnswers scores an answer set with a fresh engine and renders the
// result in the requested format.
// POST /api/catalogs/{catalogID}/results?format=json|text|html|xlsx
func (h *handler) scoreAnswers(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}

	format := report.FormatJSON
	if f := r.URL.Query().Get("format"); f != "" {
		var err error
		if format, err = report.ParseFormat(f); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	var req ScoreRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	engine := assessment.NewEngine()
	engine.Initialize(c)
	for _, qid := range slices.Sorted(maps.Keys(req.Answers)) {
		if err := engine.RecordAnswer(qid, req.Answers[qid]); err != nil {
			h.metrics.ObserveResult(c.ID, "invalid", 0)
			if errors.Is(err, assessment.ErrInvalidReference) {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			h.logger.Error("record answer failed", "catalog", c.ID, "question", qid, "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	summary := engine.Finalize()
	outcome := "partial"
	if summary.Complete {
		outcome = "complete"
	}
	h.metrics.ObserveResult(c.ID, outcome, summary.Answered)

	doc := report.NewDocument(summary)
	var buf bytes.Buffer
	start := time.Now()
	if err := report.Render(&buf, format, doc); err != nil {
		h.logger.Error("render report failed", "catalog", c.ID, "format", format, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to render report")
		return
	}
	h.metrics.ObserveRender(string(format), time.Since(start).Seconds())

	h.logger.Info("answers scored",
		"catalog", c.ID,
		"report_id", doc.ID,
		"answered", summary.Answered,
		"total", summary.Total,
		"format", format,
	)

	w.Header().Set("Content-Type", report.ContentType(format))
	if format == report.FormatXLSX {
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-%s.xlsx"`, c.ID, doc.ID))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("write report failed", "catalog", c.ID, "error", err)
	}
}

func (h *handler) lookup(w http.ResponseWriter, r *http.Request) (*catalog.Catalog, bool) {
	id := chi.URLParam(r, "catalogID")
	c, err := h.registry.Get(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return nil, false
		}
		h.logger.Error("catalog lookup failed", "catalog", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return nil, false
	}
	return c, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
