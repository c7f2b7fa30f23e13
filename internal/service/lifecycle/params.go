package lifecycle

// Default tuning values for card activation.
const (
	// DefaultActiveCap is how many cards an import may leave in rotation.
	DefaultActiveCap = 5

	// DefaultBatchFull is the replenishment batch after a strong session.
	DefaultBatchFull = 5

	// DefaultBatchPartial is the replenishment batch after a middling
	// session.
	DefaultBatchPartial = 2

	// DefaultHighAccuracy is the accuracy at or above which a full batch
	// is released.
	DefaultHighAccuracy = 0.8

	// DefaultLowAccuracy is the accuracy below which no new cards are
	// released at all.
	DefaultLowAccuracy = 0.5
)

// Params tunes how imports and replenishment feed cards into rotation.
type Params struct {
	// ActiveCap limits how many active cards an import will fill up to.
	// Manual single-card adds are exempt.
	ActiveCap int

	// BatchFull is how many reserve cards are activated when the learner's
	// last session met HighAccuracy, or when no session has happened yet.
	BatchFull int

	// BatchPartial is how many reserve cards are activated when the last
	// session landed between LowAccuracy and HighAccuracy.
	BatchPartial int

	// HighAccuracy and LowAccuracy are the gate thresholds, as fractions
	// in [0, 1].
	HighAccuracy float64
	LowAccuracy  float64
}

// NewDefaultParams returns the standard activation tuning.
func NewDefaultParams() Params {
	return Params{
		ActiveCap:    DefaultActiveCap,
		BatchFull:    DefaultBatchFull,
		BatchPartial: DefaultBatchPartial,
		HighAccuracy: DefaultHighAccuracy,
		LowAccuracy:  DefaultLowAccuracy,
	}
}
