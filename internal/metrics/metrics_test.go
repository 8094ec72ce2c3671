package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecording(t *testing.T) {
	Init()
	Init() // second call is a no-op

	before := testutil.ToFloat64(renderCycles.WithLabelValues(OutcomeFetchFailure))
	RecordCycle(OutcomeFetchFailure, 0)
	if got := testutil.ToFloat64(renderCycles.WithLabelValues(OutcomeFetchFailure)); got != before+1 {
		t.Errorf("fetch_failure cycles = %v, want %v", got, before+1)
	}

	RecordCycle(OutcomeRendered, 42)
	if got := testutil.ToFloat64(recordsRendered); got != 42 {
		t.Errorf("records rendered = %v, want 42", got)
	}

	SetSourceUp("srfi-info", true)
	SetSourceUp("srfi-symbols", false)
	if got := testutil.ToFloat64(sourceUp.WithLabelValues("srfi-info")); got != 1 {
		t.Errorf("srfi-info up = %v, want 1", got)
	}
	if got := testutil.ToFloat64(sourceUp.WithLabelValues("srfi-symbols")); got != 0 {
		t.Errorf("srfi-symbols up = %v, want 0", got)
	}

	ObserveFetch("srfi-info", 10*time.Millisecond, nil)
	ObserveFetch("srfi-info", time.Second, errors.New("boom"))
	if n := testutil.CollectAndCount(fetchDuration); n != 2 {
		t.Errorf("fetch duration series = %d, want 2", n)
	}
}
