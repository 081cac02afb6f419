package analytics

import (
	"testing"
	"time"

	"github.com/claude/ironlog/internal/models"
	"github.com/google/uuid"
)

func intPtr(v int) *int { return &v }

// setAt builds a set logged daysAgo days before the reference date.
func setAt(weight float64, reps int, daysAgo int) models.WorkoutSet {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return models.WorkoutSet{
		ID:     uuid.New(),
		Weight: weight,
		Reps:   reps,
		Date:   base.AddDate(0, 0, -daysAgo),
	}
}

// TestPersonalBest verifies the heaviest set at an exact rep count wins.
func TestPersonalBest(t *testing.T) {
	sets := []models.WorkoutSet{
		setAt(100, 5, 3),
		setAt(110, 5, 2),
		setAt(90, 5, 1),
		setAt(120, 3, 1),
	}

	best, ok := PersonalBest(sets, 5)
	if !ok {
		t.Fatal("expected a 5-rep PB")
	}
	if best.Weight != 110 {
		t.Errorf("5-rep PB weight = %v, want 110", best.Weight)
	}

	if _, ok := PersonalBest(sets, 8); ok {
		t.Error("no 8-rep sets logged, expected no PB")
	}
}

// TestPersonalBestsCanonicalOnly verifies only canonical rep counts get
// labeled entries: 7-rep sets stay in raw history but earn no label.
func TestPersonalBestsCanonicalOnly(t *testing.T) {
	sets := []models.WorkoutSet{
		setAt(100, 5, 3),
		setAt(110, 5, 2),
		setAt(90, 5, 1),
		setAt(130, 7, 1),
	}

	pbs := PersonalBests(sets)
	best, ok := pbs["5RM"]
	if !ok {
		t.Fatal("missing 5RM entry")
	}
	if best.Weight != 110 {
		t.Errorf("5RM weight = %v, want 110", best.Weight)
	}
	if !best.PersonalBest {
		t.Error("5RM entry should carry the personal-best flag")
	}
	if _, ok := pbs["7RM"]; ok {
		t.Error("7 is not a canonical rep count, no 7RM entry expected")
	}
}

// TestMarkPersonalBests verifies exactly the heaviest set per canonical rep
// count carries the flag after recompute, and stale flags are cleared.
func TestMarkPersonalBests(t *testing.T) {
	sets := []models.WorkoutSet{
		setAt(100, 5, 3),
		setAt(110, 5, 2),
		setAt(90, 5, 1),
	}
	sets[2].PersonalBest = true // stale hand-set flag

	MarkPersonalBests(sets)

	for i, s := range sets {
		wantFlag := s.Weight == 110
		if s.PersonalBest != wantFlag {
			t.Errorf("set %d (%.0fkg): personal_best = %v, want %v", i, s.Weight, s.PersonalBest, wantFlag)
		}
	}
}

// TestTotalVolume verifies volume sums weight x reps: 100x5 + 50x10 = 1000.
func TestTotalVolume(t *testing.T) {
	sets := []models.WorkoutSet{
		setAt(100, 5, 1),
		setAt(50, 10, 1),
	}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if got := TotalVolume(sets, models.PeriodAllTime, now); got != 1000 {
		t.Errorf("all-time volume = %v, want 1000", got)
	}
}

// TestTotalVolumePeriodFilter verifies old sets fall outside trailing
// windows but stay in all-time.
func TestTotalVolumePeriodFilter(t *testing.T) {
	sets := []models.WorkoutSet{
		setAt(100, 5, 1),  // recent: 500
		setAt(100, 5, 60), // two months back: 500
	}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if got := TotalVolume(sets, models.PeriodWeek, now); got != 500 {
		t.Errorf("7-day volume = %v, want 500", got)
	}
	if got := TotalVolume(sets, models.PeriodThreeMonths, now); got != 1000 {
		t.Errorf("3-month volume = %v, want 1000", got)
	}
}

// TestSessionCount verifies only sessions containing the exercise within the
// period are counted.
func TestSessionCount(t *testing.T) {
	exID := uuid.New()
	otherID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	sessions := []models.WorkoutSession{
		{Date: now.AddDate(0, 0, -1), Exercises: []models.ExerciseLog{{ExerciseID: exID}}},
		{Date: now.AddDate(0, 0, -2), Exercises: []models.ExerciseLog{{ExerciseID: otherID}}},
		{Date: now.AddDate(0, 0, -60), Exercises: []models.ExerciseLog{{ExerciseID: exID}}},
	}

	if got := SessionCount(sessions, exID, models.PeriodAllTime, now); got != 2 {
		t.Errorf("all-time count = %d, want 2", got)
	}
	if got := SessionCount(sessions, exID, models.PeriodWeek, now); got != 1 {
		t.Errorf("7-day count = %d, want 1", got)
	}
}

// TestTrendImproving verifies a chronologically non-decreasing run with
// spread above the threshold reads as improving: (5,100),(5,105),(5,110).
func TestTrendImproving(t *testing.T) {
	sets := []models.WorkoutSet{
		setAt(100, 5, 3),
		setAt(105, 5, 2),
		setAt(110, 5, 1),
	}
	if got := Trend(sets, DefaultThresholds()); got != models.TrendImproving {
		t.Errorf("trend = %s, want improving", got)
	}
}

// TestTrendImprovingSameTimestamp verifies sets stamped with one session date
// keep their logged order: an ascending run within a single session still
// reads as improving.
func TestTrendImprovingSameTimestamp(t *testing.T) {
	date := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	sets := []models.WorkoutSet{
		{ID: uuid.New(), Weight: 100, Reps: 5, Date: date},
		{ID: uuid.New(), Weight: 105, Reps: 5, Date: date},
		{ID: uuid.New(), Weight: 110, Reps: 5, Date: date},
	}
	if got := Trend(sets, DefaultThresholds()); got != models.TrendImproving {
		t.Errorf("trend = %s, want improving", got)
	}
}

// TestTrendInsufficientData verifies fewer than three sets always reads as
// insufficient data regardless of values.
func TestTrendInsufficientData(t *testing.T) {
	sets := []models.WorkoutSet{
		setAt(100, 5, 2),
		setAt(200, 5, 1),
	}
	if got := Trend(sets, DefaultThresholds()); got != models.TrendInsufficient {
		t.Errorf("trend = %s, want insufficient_data", got)
	}
	if got := Trend(nil, DefaultThresholds()); got != models.TrendInsufficient {
		t.Errorf("trend(empty) = %s, want insufficient_data", got)
	}
}

// TestTrendPlateaued verifies a tight spread reads as plateaued.
func TestTrendPlateaued(t *testing.T) {
	sets := []models.WorkoutSet{
		setAt(100, 5, 3),
		setAt(101, 5, 2),
		setAt(100, 5, 1),
	}
	if got := Trend(sets, DefaultThresholds()); got != models.TrendPlateaued {
		t.Errorf("trend = %s, want plateaued", got)
	}
}

// TestTrendDeclining verifies a wide non-monotonic spread reads as
// declining.
func TestTrendDeclining(t *testing.T) {
	sets := []models.WorkoutSet{
		setAt(110, 5, 3),
		setAt(100, 5, 2),
		setAt(104, 5, 1),
	}
	if got := Trend(sets, DefaultThresholds()); got != models.TrendDeclining {
		t.Errorf("trend = %s, want declining", got)
	}
}

// TestTrendWindowLimit verifies only the 10 most recent sets are inspected.
func TestTrendWindowLimit(t *testing.T) {
	// An ancient heavy outlier beyond the window must not affect the trend.
	sets := []models.WorkoutSet{setAt(500, 5, 100)}
	for i := 10; i >= 1; i-- {
		sets = append(sets, setAt(100+float64(10-i), 5, i))
	}
	if got := Trend(sets, DefaultThresholds()); got != models.TrendImproving {
		t.Errorf("trend = %s, want improving (outlier outside window)", got)
	}
}

// TestSuggestNoHistory verifies the default starting template.
func TestSuggestNoHistory(t *testing.T) {
	got := Suggest(nil, DefaultThresholds())
	if got.Weight != nil {
		t.Errorf("weight = %v, want absent", *got.Weight)
	}
	if got.Reps != "3x5" {
		t.Errorf("reps = %q, want 3x5", got.Reps)
	}
	if got.RPE == nil || *got.RPE != 7 {
		t.Errorf("rpe = %v, want 7", got.RPE)
	}
	if got.BasedOn != "Default starting point" {
		t.Errorf("based_on = %q", got.BasedOn)
	}
}

// TestSuggestEasySession verifies the progressive-overload bump: sets
// averaging 100kg at RPE 6 suggest 102.5kg, RPE clamped to the floor of 6.
func TestSuggestEasySession(t *testing.T) {
	date := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	lastLog := &models.ExerciseLog{
		Date: date,
		Sets: []models.WorkoutSet{
			{Weight: 100, Reps: 5, RPE: intPtr(6), Date: date},
			{Weight: 100, Reps: 5, RPE: intPtr(6), Date: date},
			{Weight: 100, Reps: 5, RPE: intPtr(6), Date: date},
		},
	}

	got := Suggest(lastLog, DefaultThresholds())
	if got.Weight == nil || *got.Weight != 102.5 {
		t.Errorf("weight = %v, want 102.5", got.Weight)
	}
	if got.Reps != "3x5" {
		t.Errorf("reps = %q, want 3x5", got.Reps)
	}
	if got.RPE == nil || *got.RPE != 6 {
		t.Errorf("rpe = %v, want 6 (clamp floor inclusive)", got.RPE)
	}
	if got.BasedOn != "Last session on 2025-05-20" {
		t.Errorf("based_on = %q", got.BasedOn)
	}
}

// TestSuggestHardSession verifies the deload branch: avg RPE >= 9 backs the
// weight off by one overload step and clamps RPE to the ceiling.
func TestSuggestHardSession(t *testing.T) {
	date := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	lastLog := &models.ExerciseLog{
		Date: date,
		Sets: []models.WorkoutSet{
			{Weight: 140, Reps: 3, RPE: intPtr(10), Date: date},
			{Weight: 140, Reps: 3, RPE: intPtr(9), Date: date},
		},
	}

	got := Suggest(lastLog, DefaultThresholds())
	if got.Weight == nil || *got.Weight != 137.5 {
		t.Errorf("weight = %v, want 137.5", got.Weight)
	}
	if got.RPE == nil || *got.RPE != 9 {
		t.Errorf("rpe = %v, want 9 (clamp ceiling)", got.RPE)
	}
	if got.Reps != "2x3" {
		t.Errorf("reps = %q, want 2x3", got.Reps)
	}
}

// TestSuggestNoRPEData verifies sets without any RPE leave the weight
// unadjusted and the suggested RPE absent.
func TestSuggestNoRPEData(t *testing.T) {
	date := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	lastLog := &models.ExerciseLog{
		Date: date,
		Sets: []models.WorkoutSet{
			{Weight: 80, Reps: 8, Date: date},
			{Weight: 80, Reps: 8, Date: date},
		},
	}

	got := Suggest(lastLog, DefaultThresholds())
	if got.Weight == nil || *got.Weight != 80 {
		t.Errorf("weight = %v, want 80 (no adjustment without RPE)", got.Weight)
	}
	if got.RPE != nil {
		t.Errorf("rpe = %v, want absent", *got.RPE)
	}
}

// TestCompute verifies the full derived view: volume, session count, last
// used, average RPE, and PBs all derive from raw history.
func TestCompute(t *testing.T) {
	exID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	sets := []models.WorkoutSet{
		{Weight: 100, Reps: 5, RPE: intPtr(7), Date: now.AddDate(0, 0, -2)},
		{Weight: 105, Reps: 5, RPE: intPtr(8), Date: now.AddDate(0, 0, -1)},
	}
	sessions := []models.WorkoutSession{
		{Date: now.AddDate(0, 0, -2), Exercises: []models.ExerciseLog{{ExerciseID: exID}}},
		{Date: now.AddDate(0, 0, -1), Exercises: []models.ExerciseLog{{ExerciseID: exID}}},
		{Date: now.AddDate(0, 0, -1), Exercises: []models.ExerciseLog{{ExerciseID: uuid.New()}}},
	}

	a := Compute(exID, sets, sessions, DefaultThresholds())
	if a.TotalSessions != 2 {
		t.Errorf("total_sessions = %d, want 2", a.TotalSessions)
	}
	if a.TotalVolume != 1025 {
		t.Errorf("total_volume = %v, want 1025", a.TotalVolume)
	}
	if a.LastUsed == nil || !a.LastUsed.Equal(now.AddDate(0, 0, -1)) {
		t.Errorf("last_used = %v, want %v", a.LastUsed, now.AddDate(0, 0, -1))
	}
	if a.AverageRPE == nil || *a.AverageRPE != 7.5 {
		t.Errorf("average_rpe = %v, want 7.5", a.AverageRPE)
	}
	if pb, ok := a.PersonalBests["5RM"]; !ok || pb.Weight != 105 {
		t.Errorf("5RM = %v, want 105kg set", pb)
	}
}
