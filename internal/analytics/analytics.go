// Package analytics derives progress statistics from logged workout history.
// Everything here is a pure computation over models; the history store owns
// the cached results.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/claude/ironlog/internal/models"
	"github.com/google/uuid"
)

// CanonicalRepCounts are the rep counts tracked as labeled personal bests
// ("1RM".."15RM"). Sets at other rep counts stay in raw history but get no
// labeled PB.
var CanonicalRepCounts = []int{1, 3, 5, 8, 10, 12, 15}

// Thresholds are the tunable policy constants for trend classification and
// progressive overload.
type Thresholds struct {
	// Improving is the minimum weight spread (kg) across the recent window
	// for a monotonic run to count as improving.
	Improving float64
	// Plateau is the weight spread below which recent work counts as
	// plateaued.
	Plateau float64
	// OverloadStep is the weight adjustment (kg) applied when the last
	// session was easy (avg RPE <= 7) or very hard (avg RPE >= 9).
	OverloadStep float64
	// RPEFloor and RPECeil clamp the suggested RPE, inclusive.
	RPEFloor int
	RPECeil  int
	// TrendWindow is how many recent sets the trend inspects.
	TrendWindow int
}

// DefaultThresholds returns the stock policy.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Improving:    5.0,
		Plateau:      2.5,
		OverloadStep: 2.5,
		RPEFloor:     6,
		RPECeil:      9,
		TrendWindow:  10,
	}
}

// PersonalBest returns the heaviest set logged at exactly the given rep
// count, or false if none exists.
func PersonalBest(sets []models.WorkoutSet, reps int) (models.WorkoutSet, bool) {
	var best models.WorkoutSet
	found := false
	for _, s := range sets {
		if s.Reps != reps {
			continue
		}
		if !found || s.Weight > best.Weight {
			best = s
			found = true
		}
	}
	return best, found
}

// PersonalBests returns the best set per canonical rep count, keyed by the
// "NRM" label. Returned sets carry the personal-best flag.
func PersonalBests(sets []models.WorkoutSet) map[string]models.WorkoutSet {
	pbs := make(map[string]models.WorkoutSet)
	for _, reps := range CanonicalRepCounts {
		if best, ok := PersonalBest(sets, reps); ok {
			best.PersonalBest = true
			pbs[fmt.Sprintf("%dRM", reps)] = best
		}
	}
	return pbs
}

// MarkPersonalBests rewrites the personal-best flag across a history bucket
// so that exactly the heaviest set at each canonical rep count carries it.
// Flags are recomputed, never hand-edited.
func MarkPersonalBests(sets []models.WorkoutSet) {
	best := make(map[int]int) // rep count -> index of heaviest set
	for i, s := range sets {
		sets[i].PersonalBest = false
		j, ok := best[s.Reps]
		if !ok || s.Weight > sets[j].Weight {
			best[s.Reps] = i
		}
	}
	for _, reps := range CanonicalRepCounts {
		if i, ok := best[reps]; ok {
			sets[i].PersonalBest = true
		}
	}
}

// TotalVolume sums weight x reps over sets whose date falls within the
// period ending at now.
func TotalVolume(sets []models.WorkoutSet, period models.Period, now time.Time) float64 {
	cutoff := period.CutoffFrom(now)
	var total float64
	for _, s := range sets {
		if !s.Date.Before(cutoff) {
			total += s.Volume()
		}
	}
	return total
}

// SessionCount counts the sessions containing the exercise whose date falls
// within the period ending at now.
func SessionCount(sessions []models.WorkoutSession, exerciseID uuid.UUID, period models.Period, now time.Time) int {
	cutoff := period.CutoffFrom(now)
	count := 0
	for _, sess := range sessions {
		if sess.Date.Before(cutoff) {
			continue
		}
		if sess.Includes(exerciseID) {
			count++
		}
	}
	return count
}

// AverageRPE averages RPE over the sets that recorded one, or nil if none
// did.
func AverageRPE(sets []models.WorkoutSet) *float64 {
	sum, n := 0, 0
	for _, s := range sets {
		if s.RPE != nil {
			sum += *s.RPE
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := float64(sum) / float64(n)
	return &avg
}

// Trend classifies recent progress from the most recent TrendWindow sets.
// Fewer than three sets is insufficient data. A chronologically
// non-decreasing weight run with spread above the improving threshold is
// improving; a spread below the plateau threshold is plateaued; anything
// else is declining.
func Trend(sets []models.WorkoutSet, th Thresholds) models.ProgressTrend {
	// Stable ascending sort keeps append order for sets sharing a timestamp,
	// which is the norm when a whole session is stamped with one date.
	recent := make([]models.WorkoutSet, len(sets))
	copy(recent, sets)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date.Before(recent[j].Date) })
	if len(recent) > th.TrendWindow {
		recent = recent[len(recent)-th.TrendWindow:]
	}
	if len(recent) < 3 {
		return models.TrendInsufficient
	}

	weights := make([]float64, len(recent))
	for i, s := range recent {
		weights[i] = s.Weight
	}

	nonDecreasing := true
	minW, maxW := weights[0], weights[0]
	for i, w := range weights {
		if i > 0 && w < weights[i-1] {
			nonDecreasing = false
		}
		if w < minW {
			minW = w
		}
		if w > maxW {
			maxW = w
		}
	}
	spread := maxW - minW

	switch {
	case nonDecreasing && spread > th.Improving:
		return models.TrendImproving
	case spread < th.Plateau:
		return models.TrendPlateaued
	default:
		return models.TrendDeclining
	}
}

// Suggest proposes weight/reps/RPE for the next session of an exercise based
// on its most recent log. With no prior log it returns the default starting
// template.
func Suggest(lastLog *models.ExerciseLog, th Thresholds) models.Suggestion {
	if lastLog == nil || len(lastLog.Sets) == 0 {
		rpe := 7
		return models.Suggestion{
			Reps:    "3x5",
			RPE:     &rpe,
			BasedOn: "Default starting point",
		}
	}

	sets := lastLog.Sets
	var weightSum float64
	repsSum := 0
	for _, s := range sets {
		weightSum += s.Weight
		repsSum += s.Reps
	}
	avgWeight := weightSum / float64(len(sets))
	avgReps := repsSum / len(sets) // integer average, rounded down

	suggestion := models.Suggestion{
		Reps:    fmt.Sprintf("%dx%d", len(sets), avgReps),
		BasedOn: fmt.Sprintf("Last session on %s", lastLog.Date.Format("2006-01-02")),
	}

	// Progressive overload: bump the weight after an easy session, back off
	// after a very hard one. Without RPE data the weight stays as logged.
	weight := avgWeight
	if avg := AverageRPE(sets); avg != nil {
		if *avg <= 7 {
			weight += th.OverloadStep
		} else if *avg >= 9 {
			weight -= th.OverloadStep
		}
		rpe := int(*avg)
		if rpe < th.RPEFloor {
			rpe = th.RPEFloor
		}
		if rpe > th.RPECeil {
			rpe = th.RPECeil
		}
		suggestion.RPE = &rpe
	}
	suggestion.Weight = &weight

	return suggestion
}

// Compute rebuilds the full derived analytics view for one exercise from its
// raw history. The result is a cache entry, never a source of truth.
func Compute(exerciseID uuid.UUID, sets []models.WorkoutSet, sessions []models.WorkoutSession, th Thresholds) models.ExerciseAnalytics {
	a := models.ExerciseAnalytics{
		ExerciseID:    exerciseID,
		PersonalBests: PersonalBests(sets),
		AverageRPE:    AverageRPE(sets),
		ProgressTrend: Trend(sets, th),
	}
	for _, s := range sets {
		a.TotalVolume += s.Volume()
	}
	for _, sess := range sessions {
		if !sess.Includes(exerciseID) {
			continue
		}
		a.TotalSessions++
		if a.LastUsed == nil || sess.Date.After(*a.LastUsed) {
			d := sess.Date
			a.LastUsed = &d
		}
	}
	return a
}
