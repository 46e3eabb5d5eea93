package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestScoringMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewScoringMetrics(reg)
	m.ObserveResult("tcm", "complete", 14)
	m.ObserveResult("tcm", "invalid", 0)
	m.ObserveRender("json", 0.002)

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	got := make(map[string]int)
	for _, f := range families {
		got[f.GetName()] = len(f.GetMetric())
	}

	want := map[string]int{
		"wellcheck_scoring_results_total": 2,
		"wellcheck_scoring_answers_total": 1,
		"wellcheck_report_render_seconds": 1,
	}
	for name, n := range want {
		if got[name] != n {
			t.Errorf("%s: %d series, want %d", name, got[name], n)
		}
	}

	for _, f := range families {
		if f.GetName() != "wellcheck_scoring_answers_total" {
			continue
		}
		if v := f.GetMetric()[0].GetCounter().GetValue(); v != 14 {
			t.Errorf("answers_total = %v, want 14", v)
		}
	}
}

func TestScoringMetricsNilSafe(t *testing.T) {
	var m *ScoringMetrics
	m.ObserveResult("tcm", "partial", 3)
	m.ObserveRender("text", 0.1)
}
