// Package rating aggregates per-section interview ratings.
package rating

import "math"

// MaxRating is the highest score a section may receive.
const MaxRating = 5.0

// Section is a single rated section of a feedback form.
type Section struct {
	Rating   *float64 `json:"rating"`
	Comments string   `json:"comments"`
}

// Average returns the mean of all section ratings. Sections without a rating
// count as 0. An empty form averages to 0.
func Average(sections map[string]Section) float64 {
	if len(sections) == 0 {
		return 0
	}
	var sum float64
	for _, s := range sections {
		if s.Rating != nil {
			sum += *s.Rating
		}
	}
	return sum / float64(len(sections))
}

// RunningMean folds next into an average computed over count earlier values.
func RunningMean(avg float64, count int, next float64) float64 {
	if count <= 0 {
		return next
	}
	return (avg*float64(count) + next) / float64(count+1)
}

// Valid reports whether every present rating lies within [0, MaxRating].
func Valid(sections map[string]Section) bool {
	for _, s := range sections {
		if s.Rating == nil {
			continue
		}
		r := *s.Rating
		if math.IsNaN(r) || r < 0 || r > MaxRating {
			return false
		}
	}
	return true
}

// Round2 rounds to two decimals for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
