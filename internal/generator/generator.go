// Package generator builds the daily workout cycle from the exercise
// catalog: primaries are index-cycled deterministically, secondary and
// accessory slots are picked at random so accessory work varies run to run.
package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/claude/ironlog/internal/catalog"
	"github.com/claude/ironlog/internal/models"
	"github.com/google/uuid"
)

// ErrNoCandidates reports a category/pattern combination with no catalog
// entries. This is a configuration error: the generator fails loudly rather
// than force-selecting an unrelated exercise.
var ErrNoCandidates = errors.New("no candidate exercises")

// Policy sets how many days each primary pattern gets in a generated cycle.
type Policy struct {
	SquatDays int
	HingeDays int
	PressDays int
}

// DefaultPolicy returns the stock 10/15/15 cycle.
func DefaultPolicy() Policy {
	return Policy{SquatDays: 10, HingeDays: 15, PressDays: 15}
}

// Generator produces daily workout templates from a catalog.
type Generator struct {
	cat    *catalog.Catalog
	policy Policy
	rng    *rand.Rand
}

// New creates a Generator. The rng is injectable so tests can seed it for
// deterministic output.
func New(cat *catalog.Catalog, policy Policy, rng *rand.Rand) *Generator {
	return &Generator{cat: cat, policy: policy, rng: rng}
}

// patternBlock describes one run of days sharing a primary pattern.
type patternBlock struct {
	pattern models.MovementPattern
	days    int
	name    string
}

// Generate builds the full cycle: squat days first, then hinge, then press,
// with continuous day numbering. Primary exercises cycle by index through
// the pattern's primary list; secondary, superset, and conditioning slots
// are random picks.
func (g *Generator) Generate() ([]models.GeneratedWorkout, error) {
	blocks := []patternBlock{
		{models.PatternSquat, g.policy.SquatDays, "Squat Day"},
		{models.PatternHinge, g.policy.HingeDays, "Deadlift/RDL Day"},
		{models.PatternPress, g.policy.PressDays, "Bench Press Day"},
	}

	var workouts []models.GeneratedWorkout
	day := 0
	for _, b := range blocks {
		primaries := g.cat.List(catalog.Filter{Pattern: b.pattern, Category: models.CategoryPrimary})
		if len(primaries) == 0 {
			return nil, fmt.Errorf("%w: category=primary pattern=%s", ErrNoCandidates, b.pattern)
		}
		for i := 0; i < b.days; i++ {
			day++
			primary := primaries[i%len(primaries)]
			secondary, err := g.pickSecondary(b.pattern)
			if err != nil {
				return nil, err
			}
			supersetA, supersetB, err := g.pickSupersetPair()
			if err != nil {
				return nil, err
			}
			conditioning, err := g.pickConditioning()
			if err != nil {
				return nil, err
			}
			workouts = append(workouts, models.GeneratedWorkout{
				ID:             uuid.New(),
				Day:            day,
				Name:           fmt.Sprintf("%s %d", b.name, i+1),
				PrimaryPattern: b.pattern,
				Primary:        primary,
				Secondary:      secondary,
				SupersetA:      supersetA,
				SupersetB:      supersetB,
				Conditioning:   conditioning,
			})
		}
	}
	return workouts, nil
}

// complementaryPattern maps a day's primary pattern to the movement its
// secondary slot should train: squat days press, hinge and press days pull.
func complementaryPattern(primary models.MovementPattern) models.MovementPattern {
	if primary == models.PatternSquat {
		return models.PatternPress
	}
	return models.PatternPull
}

// pickSecondary picks a secondary exercise complementary to the day's
// primary pattern. An empty complementary set broadens to any secondary; an
// empty secondary category is a configuration error.
func (g *Generator) pickSecondary(primary models.MovementPattern) (models.Exercise, error) {
	candidates := g.cat.List(catalog.Filter{
		Pattern:  complementaryPattern(primary),
		Category: models.CategorySecondary,
	})
	if len(candidates) == 0 {
		candidates = g.cat.List(catalog.Filter{Category: models.CategorySecondary})
	}
	if len(candidates) == 0 {
		return models.Exercise{}, fmt.Errorf("%w: category=secondary", ErrNoCandidates)
	}
	return candidates[g.rng.Intn(len(candidates))], nil
}

// pickSupersetPair picks two accessories, the second from a different
// movement pattern than the first when possible.
func (g *Generator) pickSupersetPair() (models.Exercise, models.Exercise, error) {
	accessories := g.cat.List(catalog.Filter{Category: models.CategoryAccessory})
	if len(accessories) == 0 {
		return models.Exercise{}, models.Exercise{}, fmt.Errorf("%w: category=accessory", ErrNoCandidates)
	}
	first := accessories[g.rng.Intn(len(accessories))]

	var other []models.Exercise
	for _, a := range accessories {
		if a.Pattern != first.Pattern {
			other = append(other, a)
		}
	}
	if len(other) == 0 {
		other = accessories
	}
	second := other[g.rng.Intn(len(other))]
	return first, second, nil
}

// pickConditioning picks one conditioning exercise at random.
func (g *Generator) pickConditioning() (models.Exercise, error) {
	candidates := g.cat.List(catalog.Filter{Category: models.CategoryConditioning})
	if len(candidates) == 0 {
		return models.Exercise{}, fmt.Errorf("%w: category=conditioning", ErrNoCandidates)
	}
	return candidates[g.rng.Intn(len(candidates))], nil
}

// Swap substitutes the exercise in the named slot of a generated workout.
// The replacement must share the current occupant's category, and for the
// primary, secondary, and conditioning slots its movement pattern as well.
// Superset slots may change pattern (the pair spans patterns on purpose).
func Swap(w *models.GeneratedWorkout, slot models.WorkoutSlot, replacement models.Exercise) error {
	current, err := w.Slot(slot)
	if err != nil {
		return err
	}
	if replacement.Category != current.Category {
		return fmt.Errorf("swap %s: category %s does not match %s", slot, replacement.Category, current.Category)
	}
	if slot != models.SlotSupersetA && slot != models.SlotSupersetB && replacement.Pattern != current.Pattern {
		return fmt.Errorf("swap %s: pattern %s does not match %s", slot, replacement.Pattern, current.Pattern)
	}
	switch slot {
	case models.SlotPrimary:
		w.Primary = replacement
	case models.SlotSecondary:
		w.Secondary = replacement
	case models.SlotSupersetA:
		w.SupersetA = replacement
	case models.SlotSupersetB:
		w.SupersetB = replacement
	case models.SlotConditioning:
		w.Conditioning = replacement
	}
	return nil
}
