package models

import (
	"fmt"
	"time"
)

// MovementPattern is the broad biomechanical category of an exercise.
type MovementPattern string

const (
	PatternSquat    MovementPattern = "squat"
	PatternHinge    MovementPattern = "hinge"
	PatternPress    MovementPattern = "press"
	PatternPull     MovementPattern = "pull"
	PatternCore     MovementPattern = "core"
	PatternFullBody MovementPattern = "full_body"
	PatternCardio   MovementPattern = "cardio"
)

// MovementPatterns lists all patterns in display order.
var MovementPatterns = []MovementPattern{
	PatternSquat, PatternHinge, PatternPress, PatternPull,
	PatternCore, PatternFullBody, PatternCardio,
}

// ParseMovementPattern converts a wire value to a MovementPattern.
func ParseMovementPattern(s string) (MovementPattern, error) {
	for _, p := range MovementPatterns {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown movement pattern %q", s)
}

// Label returns the human-readable name of the pattern.
func (p MovementPattern) Label() string {
	switch p {
	case PatternFullBody:
		return "Full Body"
	case PatternSquat:
		return "Squat"
	case PatternHinge:
		return "Hinge"
	case PatternPress:
		return "Press"
	case PatternPull:
		return "Pull"
	case PatternCore:
		return "Core"
	case PatternCardio:
		return "Cardio"
	}
	return string(p)
}

// ExerciseCategory is the role an exercise plays in a daily template.
type ExerciseCategory string

const (
	CategoryPrimary      ExerciseCategory = "primary"
	CategorySecondary    ExerciseCategory = "secondary"
	CategoryAccessory    ExerciseCategory = "accessory"
	CategoryConditioning ExerciseCategory = "conditioning"
	CategoryWarmup       ExerciseCategory = "warmup"
)

// ExerciseCategories lists all categories in display order.
var ExerciseCategories = []ExerciseCategory{
	CategoryPrimary, CategorySecondary, CategoryAccessory,
	CategoryConditioning, CategoryWarmup,
}

// ParseExerciseCategory converts a wire value to an ExerciseCategory.
func ParseExerciseCategory(s string) (ExerciseCategory, error) {
	for _, c := range ExerciseCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown exercise category %q", s)
}

// Equipment is what an exercise is performed with.
type Equipment string

const (
	EquipmentBarbell    Equipment = "barbell"
	EquipmentDumbbell   Equipment = "dumbbell"
	EquipmentBodyweight Equipment = "bodyweight"
	EquipmentMachine    Equipment = "machine"
	EquipmentBands      Equipment = "bands"
	EquipmentKettlebell Equipment = "kettlebell"
	EquipmentCable      Equipment = "cable"
	EquipmentNone       Equipment = "none"
)

// EquipmentKinds lists all equipment values in display order.
var EquipmentKinds = []Equipment{
	EquipmentBarbell, EquipmentDumbbell, EquipmentBodyweight, EquipmentMachine,
	EquipmentBands, EquipmentKettlebell, EquipmentCable, EquipmentNone,
}

// ParseEquipment converts a wire value to an Equipment.
func ParseEquipment(s string) (Equipment, error) {
	for _, e := range EquipmentKinds {
		if string(e) == s {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown equipment %q", s)
}

// ConditioningFormat describes how a conditioning piece is structured.
type ConditioningFormat string

const (
	FormatEMOM      ConditioningFormat = "emom"
	FormatForTime   ConditioningFormat = "for_time"
	FormatAMRAP     ConditioningFormat = "amrap"
	FormatTabata    ConditioningFormat = "tabata"
	FormatCircuits  ConditioningFormat = "circuits"
	FormatIntervals ConditioningFormat = "intervals"
)

// ProgressTrend summarizes recent weight movement for one exercise.
type ProgressTrend string

const (
	TrendImproving    ProgressTrend = "improving"
	TrendPlateaued    ProgressTrend = "plateaued"
	TrendDeclining    ProgressTrend = "declining"
	TrendInsufficient ProgressTrend = "insufficient_data"
)

// Period selects a trailing time window for statistics.
type Period string

const (
	PeriodWeek        Period = "last_7_days"
	PeriodMonth       Period = "last_30_days"
	PeriodThreeMonths Period = "last_3_months"
	PeriodAllTime     Period = "all_time"
)

// ParsePeriod converts a wire value to a Period. An empty value means all time.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodWeek, PeriodMonth, PeriodThreeMonths, PeriodAllTime:
		return Period(s), nil
	case "":
		return PeriodAllTime, nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// CutoffFrom returns the inclusive lower time bound for the period ending at
// now. The zero time is returned for PeriodAllTime so every date qualifies.
func (p Period) CutoffFrom(now time.Time) time.Time {
	switch p {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodMonth:
		return now.AddDate(0, -1, 0)
	case PeriodThreeMonths:
		return now.AddDate(0, -3, 0)
	}
	return time.Time{}
}
