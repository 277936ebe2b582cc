// Package scoring ranks analysis-queue candidates by wait time and amount.
package scoring

import "time"

// SLABand classifies how long a request has been waiting for analysis.
type SLABand string

const (
	BandGreen  SLABand = "green"
	BandYellow SLABand = "yellow"
	BandOrange SLABand = "orange"
	BandRed    SLABand = "red"
	BandBlack  SLABand = "black"
)

// slaThresholdMinutes is the wait beyond which a request outranks any fresher
// one regardless of amount.
const slaThresholdMinutes = 30

// prioritySentinel dominates every amount-based score.
const prioritySentinel = 1_000_000

// WaitMinutes returns whole minutes elapsed since submission, clamped at zero
// so clock skew never produces a negative wait.
func WaitMinutes(submittedAt, now time.Time) int64 {
	m := int64(now.Sub(submittedAt) / time.Minute)
	if m < 0 {
		return 0
	}
	return m
}

// PriorityScore implements the two-tier ranking: below the SLA threshold the
// requested amount orders the queue (larger loans first); at or past it the
// sentinel takes over, so SLA breach risk trumps deal size.
func PriorityScore(waitMinutes int64, amount float64) float64 {
	if waitMinutes < slaThresholdMinutes {
		return amount
	}
	return prioritySentinel
}

// Band maps wait minutes to the severity band shown to analysts. Upper bounds
// are inclusive: 30 is still green, 42 yellow, 51 orange, 60 red.
func Band(waitMinutes int64) SLABand {
	switch {
	case waitMinutes <= 30:
		return BandGreen
	case waitMinutes <= 42:
		return BandYellow
	case waitMinutes <= 51:
		return BandOrange
	case waitMinutes <= 60:
		return BandRed
	default:
		return BandBlack
	}
}
