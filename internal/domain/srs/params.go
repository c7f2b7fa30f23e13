package srs

import (
	"time"

	"github.com/prasetyo/ingatkata/internal/domain"
)

// Params defines all configurable parameters for the box-ladder scheduler.
type Params struct {
	// Intervals maps each box level to the delay until the next review.
	// Indexed by box 0..domain.MaxBox and monotonically non-decreasing.
	Intervals [domain.MaxBox + 1]time.Duration

	// FailDelay is how long a failed card waits before resurfacing.
	// Deliberately short so failed items come back within the same or
	// next session instead of being deferred a full day.
	FailDelay time.Duration
}

// ParamsConfig allows overriding the default parameters when creating a
// new Params instance. Zero values keep the defaults.
type ParamsConfig struct {
	Intervals []time.Duration
	FailDelay time.Duration
}

// NewDefaultParams creates a new Params instance with default values:
// the 0 / 1d / 3d / 7d / 14d / 30d ladder and a one-minute fail delay.
func NewDefaultParams() *Params {
	day := 24 * time.Hour
	return &Params{
		Intervals: [domain.MaxBox + 1]time.Duration{
			0,        // box 0: immediate
			day,      // box 1
			3 * day,  // box 2
			7 * day,  // box 3
			14 * day, // box 4
			30 * day, // box 5
		},
		FailDelay: time.Minute,
	}
}

// NewParams creates a new Params instance with custom configuration.
// A partial Intervals slice overrides the ladder from box 0 upward.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	for i, interval := range config.Intervals {
		if i > domain.MaxBox {
			break
		}
		if interval >= 0 {
			params.Intervals[i] = interval
		}
	}

	if config.FailDelay > 0 {
		params.FailDelay = config.FailDelay
	}

	return params
}
