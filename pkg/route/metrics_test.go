package route

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsObserverCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := NewMetricsObserver(WithRegistry(reg), WithNamespace("test"))

	obs.ObserveEvaluation(Evaluation{Location: "/a", Pattern: "/a", Matched: true, Duration: time.Millisecond})
	obs.ObserveEvaluation(Evaluation{Location: "/a", Pattern: "/a", Matched: true, Duration: time.Millisecond})
	obs.ObserveEvaluation(Evaluation{Location: "/zzz", Matched: false, Duration: time.Millisecond})

	if got := testutil.ToFloat64(obs.evaluations.WithLabelValues("match")); got != 2 {
		t.Errorf("match count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(obs.evaluations.WithLabelValues("miss")); got != 1 {
		t.Errorf("miss count = %v, want 1", got)
	}
}

func TestMetricsObserverRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := NewMetricsObserver(WithRegistry(reg), WithNamespace("test2"), WithSubsystem("router"))
	obs.ObserveEvaluation(Evaluation{Matched: true})

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) != 2 {
		t.Fatalf("expected 2 metric families, got %d", len(families))
	}
}
