// Package priority holds the prioritization core: the score formula,
// the Eisenhower quadrant classifier, the Pareto high-impact flag,
// task ranking/filtering and time-window aggregation. Everything here
// is a pure function over already-fetched tasks; no I/O, no shared state.
package priority

import (
	"fmt"

	"lifeTracker/internal/models/task"
)

const RatingMin = 1
const RatingMax = 10

// Score weights. Impact carries the most, urgency less, effort subtracts
// so that cheaper tasks edge out costlier ones of equal value.
const impactWeight = 2.0
const urgencyWeight = 1.5
const effortWeight = 0.5

// RatingError reports an impact/urgency/effort value outside [1,10].
// Out-of-range ratings are rejected, never clamped: clamping would hide
// data-entry bugs upstream.
type RatingError struct {
	Field string
	Value int
}

func (e *RatingError) Error() string {
	return fmt.Sprintf("rating %q must be between %d and %d, got %d", e.Field, RatingMin, RatingMax, e.Value)
}

func checkRating(field string, value int) error {
	if value < RatingMin || value > RatingMax {
		return &RatingError{Field: field, Value: value}
	}
	return nil
}

// Score computes the priority score impact*2 + urgency*1.5 - effort*0.5.
// The result ranges from -1.5 to 34.5; callers must not assume [0,10].
func Score(impact, urgency, effort int) (float64, error) {
	if err := checkRating("impact", impact); err != nil {
		return 0, err
	}
	if err := checkRating("urgency", urgency); err != nil {
		return 0, err
	}
	if err := checkRating("effort", effort); err != nil {
		return 0, err
	}

	return float64(impact)*impactWeight + float64(urgency)*urgencyWeight - float64(effort)*effortWeight, nil
}

// Policy carries the tunable thresholds of the classifier and the
// high-impact flag. Thresholds are a policy decision, not magic numbers
// baked into call sites.
type Policy struct {
	// ImportantAt and UrgentAt split the 1-10 scale into the 2x2 matrix.
	// A rating at or above the threshold counts as important/urgent.
	ImportantAt int
	UrgentAt    int
	// HighImpactAt marks the "vital few": impact at or above it flags the task.
	HighImpactAt int
	// MaxHighImpactEffort, when > 0, additionally requires effort at or
	// below it for the high-impact flag (the stricter two-factor rule).
	MaxHighImpactEffort int
}

// DefaultPolicy uses the midpoint of the scale for the matrix (6/6)
// and the top quintile for the high-impact flag (8), effort ignored.
func DefaultPolicy() Policy {
	return Policy{
		ImportantAt:  6,
		UrgentAt:     6,
		HighImpactAt: 8,
	}
}

// StrictHighImpactPolicy is the named two-factor alternative:
// impact >= 8 and effort <= 5.
func StrictHighImpactPolicy() Policy {
	p := DefaultPolicy()
	p.MaxHighImpactEffort = 5
	return p
}

// Classify maps (impact, urgency) to an Eisenhower quadrant.
// Independent of effort and of the score.
func (p Policy) Classify(impact, urgency int) (task.Quadrant, error) {
	if err := checkRating("impact", impact); err != nil {
		return "", err
	}
	if err := checkRating("urgency", urgency); err != nil {
		return "", err
	}

	important := impact >= p.ImportantAt
	urgent := urgency >= p.UrgentAt

	switch {
	case important && urgent:
		return task.QuadrantDo, nil
	case important:
		return task.QuadrantSchedule, nil
	case urgent:
		return task.QuadrantDelegate, nil
	default:
		return task.QuadrantEliminate, nil
	}
}

// IsHighImpact flags 80/20 tasks: high payoff, and with the strict
// policy also low cost.
func (p Policy) IsHighImpact(impact, effort int) (bool, error) {
	if err := checkRating("impact", impact); err != nil {
		return false, err
	}
	if err := checkRating("effort", effort); err != nil {
		return false, err
	}

	if impact < p.HighImpactAt {
		return false, nil
	}
	if p.MaxHighImpactEffort > 0 && effort > p.MaxHighImpactEffort {
		return false, nil
	}
	return true, nil
}

// Classify applies the default policy.
func Classify(impact, urgency int) (task.Quadrant, error) {
	return DefaultPolicy().Classify(impact, urgency)
}

// IsHighImpact applies the default policy.
func IsHighImpact(impact, effort int) (bool, error) {
	return DefaultPolicy().IsHighImpact(impact, effort)
}
