package storage

import (
	"math"
	"testing"
)

func TestStore_RoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	times := []float64{0, 0.01, 0.02}
	series := [][]float64{{1.0, 0.0}, {0.99, -0.1}, {0.96, -0.2}}
	params := map[string]float64{"frequency": 3.0}

	runID, err := st.Save("integrate", 0.01, 0.02, params, times, series)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.Kind != "integrate" {
		t.Errorf("kind = %q, want integrate", meta.Kind)
	}
	if meta.Samples != 3 {
		t.Errorf("samples = %d, want 3", meta.Samples)
	}
	if meta.Params["frequency"] != 3.0 {
		t.Errorf("params lost: %v", meta.Params)
	}

	gotSeries, gotTimes, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatalf("LoadSeries: %v", err)
	}
	if len(gotSeries) != 3 || len(gotTimes) != 3 {
		t.Fatalf("expected 3 rows, got %d series / %d times", len(gotSeries), len(gotTimes))
	}
	for i := range series {
		if math.Abs(gotTimes[i]-times[i]) > 1e-6 {
			t.Errorf("time %d = %v, want %v", i, gotTimes[i], times[i])
		}
		for j := range series[i] {
			if math.Abs(gotSeries[i][j]-series[i][j]) > 1e-6 {
				t.Errorf("series[%d][%d] = %v, want %v", i, j, gotSeries[i][j], series[i][j])
			}
		}
	}
}

func TestStore_List(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty store, got %d runs", len(runs))
	}

	if _, err := st.Save("transform", 0.01, 1.0, nil, []float64{0}, [][]float64{{1}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStore_ListMissingDir(t *testing.T) {
	st := New(t.TempDir() + "/never-created")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("List on missing dir: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}
