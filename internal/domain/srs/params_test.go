package srs

import (
	"testing"
	"time"
)

func TestNewDefaultParams(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	day := 24 * time.Hour
	expected := []time.Duration{0, day, 3 * day, 7 * day, 14 * day, 30 * day}

	for box, want := range expected {
		if params.Intervals[box] != want {
			t.Errorf("box %d: expected interval %v, got %v", box, want, params.Intervals[box])
		}
	}

	if params.FailDelay != time.Minute {
		t.Errorf("expected fail delay %v, got %v", time.Minute, params.FailDelay)
	}

	// The ladder must be monotonically non-decreasing.
	for box := 1; box < len(params.Intervals); box++ {
		if params.Intervals[box] < params.Intervals[box-1] {
			t.Errorf("interval for box %d is shorter than box %d", box, box-1)
		}
	}
}

func TestNewParams(t *testing.T) {
	t.Parallel()

	t.Run("overrides fail delay", func(t *testing.T) {
		params := NewParams(ParamsConfig{FailDelay: 30 * time.Second})

		if params.FailDelay != 30*time.Second {
			t.Errorf("expected fail delay 30s, got %v", params.FailDelay)
		}
	})

	t.Run("partial interval override keeps the remaining ladder", func(t *testing.T) {
		params := NewParams(ParamsConfig{
			Intervals: []time.Duration{0, 12 * time.Hour},
		})

		if params.Intervals[1] != 12*time.Hour {
			t.Errorf("expected box 1 interval 12h, got %v", params.Intervals[1])
		}
		if params.Intervals[2] != 3*24*time.Hour {
			t.Errorf("expected box 2 interval unchanged, got %v", params.Intervals[2])
		}
	})

	t.Run("zero config keeps defaults", func(t *testing.T) {
		params := NewParams(ParamsConfig{})
		defaults := NewDefaultParams()

		if *params != *defaults {
			t.Errorf("expected defaults, got %+v", params)
		}
	})
}
