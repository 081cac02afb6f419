package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Exercise is one entry in the fixed catalog. Immutable once created.
type Exercise struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Pattern   MovementPattern  `json:"pattern"`
	Category  ExerciseCategory `json:"category"`
	Equipment Equipment        `json:"equipment"`
}

// WorkoutSet is a single logged set. Immutable after save except the
// personal-best flag, which analytics recomputes retroactively.
type WorkoutSet struct {
	ID           uuid.UUID `json:"id"`
	Weight       float64   `json:"weight"`
	Reps         int       `json:"reps"`
	RPE          *int      `json:"rpe,omitempty"`
	Date         time.Time `json:"date"`
	Notes        string    `json:"notes,omitempty"`
	RestSeconds  *float64  `json:"rest_seconds,omitempty"`
	PersonalBest bool      `json:"personal_best"`
}

// Volume returns weight x reps for the set.
func (s WorkoutSet) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// Validate checks the set-entry rules: non-negative weight, positive reps,
// RPE within 1-10 when present.
func (s WorkoutSet) Validate() error {
	if s.Weight < 0 {
		return fmt.Errorf("weight must be non-negative, got %.2f", s.Weight)
	}
	if s.Reps <= 0 {
		return fmt.Errorf("reps must be positive, got %d", s.Reps)
	}
	if s.RPE != nil && (*s.RPE < 1 || *s.RPE > 10) {
		return fmt.Errorf("rpe must be in 1..10, got %d", *s.RPE)
	}
	return nil
}

// ExerciseLog is one exercise's sets within one session. The exercise name is
// denormalized so history renders even if the catalog changes.
type ExerciseLog struct {
	ID             uuid.UUID    `json:"id"`
	ExerciseID     uuid.UUID    `json:"exercise_id"`
	ExerciseName   string       `json:"exercise_name"`
	Sets           []WorkoutSet `json:"sets"`
	Notes          string       `json:"notes,omitempty"`
	Date           time.Time    `json:"date"`
	TargetReps     string       `json:"target_reps,omitempty"`
	TargetWeight   *float64     `json:"target_weight,omitempty"`
	LastUsedWeight *float64     `json:"last_used_weight,omitempty"`
}

// WorkoutSession is one completed (or in-progress) training session.
// Append-only once stored.
type WorkoutSession struct {
	ID              uuid.UUID     `json:"id"`
	Date            time.Time     `json:"date"`
	Exercises       []ExerciseLog `json:"exercises"`
	DurationSeconds float64       `json:"duration_seconds"`
	GeneralNotes    string        `json:"general_notes,omitempty"`
	Completed       bool          `json:"completed"`
	WorkoutName     string        `json:"workout_name,omitempty"`
}

// Includes reports whether the session contains a log for the exercise.
func (s WorkoutSession) Includes(exerciseID uuid.UUID) bool {
	for _, l := range s.Exercises {
		if l.ExerciseID == exerciseID {
			return true
		}
	}
	return false
}

// WorkoutDay is a block-planning placeholder for one day of a training week.
type WorkoutDay struct {
	ID                 uuid.UUID           `json:"id"`
	PrimaryPattern     MovementPattern     `json:"primary_pattern"`
	SecondaryMovement  *Exercise           `json:"secondary_movement,omitempty"`
	PairedMovement     *Exercise           `json:"paired_movement,omitempty"`
	ConditioningFormat *ConditioningFormat `json:"conditioning_format,omitempty"`
	AccessoryPair      []Exercise          `json:"accessory_pair,omitempty"`
	Notes              string              `json:"notes,omitempty"`
	RestDay            bool                `json:"rest_day"`
}

// WorkoutBlock is a named multi-week training plan.
type WorkoutBlock struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Weeks       [][]WorkoutDay    `json:"weeks"`
	CurrentWeek int               `json:"current_week"`
	RepRanges   map[string]string `json:"rep_ranges,omitempty"`
}

// WorkoutSlot names one of the five positions in a generated workout.
type WorkoutSlot string

const (
	SlotPrimary      WorkoutSlot = "primary"
	SlotSecondary    WorkoutSlot = "secondary"
	SlotSupersetA    WorkoutSlot = "superset_a"
	SlotSupersetB    WorkoutSlot = "superset_b"
	SlotConditioning WorkoutSlot = "conditioning"
)

// ParseWorkoutSlot converts a wire value to a WorkoutSlot.
func ParseWorkoutSlot(s string) (WorkoutSlot, error) {
	switch WorkoutSlot(s) {
	case SlotPrimary, SlotSecondary, SlotSupersetA, SlotSupersetB, SlotConditioning:
		return WorkoutSlot(s), nil
	}
	return "", fmt.Errorf("unknown workout slot %q", s)
}

// GeneratedWorkout is one day's template produced by the generator. Held in
// memory only; slots other than the five exercises are immutable after
// generation.
type GeneratedWorkout struct {
	ID             uuid.UUID       `json:"id"`
	Day            int             `json:"day"`
	Name           string          `json:"name"`
	PrimaryPattern MovementPattern `json:"primary_pattern"`
	Primary        Exercise        `json:"primary"`
	Secondary      Exercise        `json:"secondary"`
	SupersetA      Exercise        `json:"superset_a"`
	SupersetB      Exercise        `json:"superset_b"`
	Conditioning   Exercise        `json:"conditioning"`
}

// Slot returns the exercise currently occupying the named slot.
func (w GeneratedWorkout) Slot(slot WorkoutSlot) (Exercise, error) {
	switch slot {
	case SlotPrimary:
		return w.Primary, nil
	case SlotSecondary:
		return w.Secondary, nil
	case SlotSupersetA:
		return w.SupersetA, nil
	case SlotSupersetB:
		return w.SupersetB, nil
	case SlotConditioning:
		return w.Conditioning, nil
	}
	return Exercise{}, fmt.Errorf("unknown workout slot %q", slot)
}

// Format renders the day's listing in the A/B/C1/C2/D convention.
func (w GeneratedWorkout) Format() string {
	return fmt.Sprintf("A) %s (Primary %s)\nB) %s (Secondary)\nC1) %s (Superset)\nC2) %s (Superset)\nD) %s (Conditioning)",
		w.Primary.Name, w.PrimaryPattern.Label(), w.Secondary.Name,
		w.SupersetA.Name, w.SupersetB.Name, w.Conditioning.Name)
}

// ExerciseAnalytics is the derived per-exercise view: always recomputable by
// replaying session history, cached for display.
type ExerciseAnalytics struct {
	ExerciseID    uuid.UUID             `json:"exercise_id"`
	TotalSessions int                   `json:"total_sessions"`
	TotalVolume   float64               `json:"total_volume"`
	PersonalBests map[string]WorkoutSet `json:"personal_bests"`
	LastUsed      *time.Time            `json:"last_used,omitempty"`
	AverageRPE    *float64              `json:"average_rpe,omitempty"`
	ProgressTrend ProgressTrend         `json:"progress_trend"`
}

// Suggestion is a weight/reps/RPE proposal for the next session of an
// exercise.
type Suggestion struct {
	Weight  *float64 `json:"weight,omitempty"`
	Reps    string   `json:"reps"`
	RPE     *int     `json:"rpe,omitempty"`
	BasedOn string   `json:"based_on"`
}
