package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/claude/ironlog/internal/analytics"
	"github.com/claude/ironlog/internal/catalog"
	"github.com/claude/ironlog/internal/history"
	"github.com/claude/ironlog/internal/models"
	"github.com/claude/ironlog/internal/storage"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

func newTestHandlers(t *testing.T) *handlers {
	t.Helper()
	return &handlers{
		cat:   catalog.Default(),
		store: history.New(storage.NewMemory(), analytics.DefaultThresholds(), slog.New(slog.NewTextHandler(io.Discard, nil))),
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func callReq(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	tc, ok := mcp.AsTextContent(res.Content[0])
	if !ok {
		t.Fatalf("result content is not text: %T", res.Content[0])
	}
	return tc.Text
}

func TestResolveExercise(t *testing.T) {
	h := newTestHandlers(t)

	byName, err := h.resolveExercise("Back Squat")
	if err != nil {
		t.Fatalf("by name: %v", err)
	}
	byID, err := h.resolveExercise(byName.ID.String())
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if byID.ID != byName.ID {
		t.Error("id and name lookups disagree")
	}

	if _, err := h.resolveExercise("No Such Lift"); err == nil {
		t.Error("unknown name should fail")
	}
	if _, err := h.resolveExercise(uuid.NewString()); err == nil {
		t.Error("unknown id should fail")
	}
}

func TestListExercisesTool(t *testing.T) {
	h := newTestHandlers(t)

	res, err := h.listExercises(context.Background(), callReq(map[string]any{
		"pattern":  "squat",
		"category": "primary",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool errored: %s", resultText(t, res))
	}

	var got []models.Exercise
	if err := json.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
		t.Fatalf("result not JSON: %v", err)
	}
	if len(got) != 10 {
		t.Errorf("squat primaries = %d, want 10", len(got))
	}

	res, err = h.listExercises(context.Background(), callReq(map[string]any{"pattern": "yoga"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Error("unknown pattern should produce a tool error")
	}
}

func TestToolsRequireExercise(t *testing.T) {
	h := newTestHandlers(t)
	ctx := context.Background()

	calls := map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error){
		"get_exercise_history": h.getExerciseHistory,
		"get_personal_bests":   h.getPersonalBests,
		"get_progress_trend":   h.getProgressTrend,
		"get_total_volume":     h.getTotalVolume,
		"suggest_next_session": h.suggestNextSession,
		"get_swap_options":     h.getSwapOptions,
	}
	for name, fn := range calls {
		res, err := fn(ctx, callReq(nil))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if !res.IsError {
			t.Errorf("%s: missing exercise should produce a tool error", name)
		}
	}
}

func TestHistoryAndBestsTools(t *testing.T) {
	h := newTestHandlers(t)
	ctx := context.Background()
	ex, _ := h.cat.ByName("Back Squat")

	rpe := 8
	session := models.WorkoutSession{
		ID:   uuid.New(),
		Date: time.Now().AddDate(0, 0, -1),
		Exercises: []models.ExerciseLog{{
			ID:           uuid.New(),
			ExerciseID:   ex.ID,
			ExerciseName: ex.Name,
			Date:         time.Now().AddDate(0, 0, -1),
			Sets: []models.WorkoutSet{
				{ID: uuid.New(), Weight: 100, Reps: 5, RPE: &rpe, Date: time.Now().AddDate(0, 0, -1)},
			},
		}},
		Completed: true,
	}
	if err := h.store.AddSession(ctx, session); err != nil {
		t.Fatal(err)
	}

	res, err := h.getExerciseHistory(ctx, callReq(map[string]any{"exercise": "Back Squat"}))
	if err != nil || res.IsError {
		t.Fatalf("history tool failed: err=%v isError=%v", err, res.IsError)
	}
	if !strings.Contains(resultText(t, res), `"weight":100`) {
		t.Errorf("history result missing logged set: %s", resultText(t, res))
	}

	res, err = h.getPersonalBests(ctx, callReq(map[string]any{"exercise": ex.ID.String()}))
	if err != nil || res.IsError {
		t.Fatalf("bests tool failed: err=%v isError=%v", err, res.IsError)
	}
	if !strings.Contains(resultText(t, res), "5RM") {
		t.Errorf("bests result missing 5RM: %s", resultText(t, res))
	}

	res, err = h.getTotalVolume(ctx, callReq(map[string]any{"exercise": "Back Squat", "period": "last_7_days"}))
	if err != nil || res.IsError {
		t.Fatalf("volume tool failed: err=%v isError=%v", err, res.IsError)
	}
	if !strings.Contains(resultText(t, res), `"total_volume":500`) {
		t.Errorf("volume result = %s", resultText(t, res))
	}
}

func TestSuggestToolDefault(t *testing.T) {
	h := newTestHandlers(t)

	res, err := h.suggestNextSession(context.Background(), callReq(map[string]any{"exercise": "Back Squat"}))
	if err != nil || res.IsError {
		t.Fatalf("suggest tool failed: err=%v isError=%v", err, res.IsError)
	}
	if !strings.Contains(resultText(t, res), `"3x5"`) {
		t.Errorf("default suggestion missing 3x5: %s", resultText(t, res))
	}
}

func TestGenerateWorkoutsTool(t *testing.T) {
	h := newTestHandlers(t)

	res, err := h.generateWorkouts(context.Background(), callReq(map[string]any{"seed": 42}))
	if err != nil || res.IsError {
		t.Fatalf("generate tool failed: err=%v isError=%v", err, res.IsError)
	}

	var workouts []models.GeneratedWorkout
	if err := json.Unmarshal([]byte(resultText(t, res)), &workouts); err != nil {
		t.Fatalf("result not JSON: %v", err)
	}
	if len(workouts) != 40 {
		t.Fatalf("cycle length = %d, want 40", len(workouts))
	}
	if workouts[0].Name != "Squat Day 1" {
		t.Errorf("day 1 = %q, want Squat Day 1", workouts[0].Name)
	}
	if workouts[39].PrimaryPattern != models.PatternPress {
		t.Errorf("day 40 pattern = %s, want press", workouts[39].PrimaryPattern)
	}

	// The same seed reproduces the same exercise assignments.
	res2, err := h.generateWorkouts(context.Background(), callReq(map[string]any{"seed": 42}))
	if err != nil || res2.IsError {
		t.Fatalf("second generate failed: err=%v isError=%v", err, res2.IsError)
	}
	var again []models.GeneratedWorkout
	if err := json.Unmarshal([]byte(resultText(t, res2)), &again); err != nil {
		t.Fatal(err)
	}
	for i := range workouts {
		if workouts[i].Secondary.ID != again[i].Secondary.ID {
			t.Fatalf("day %d differs between identically seeded cycles", i+1)
		}
	}
}

func TestCatalogResource(t *testing.T) {
	h := newTestHandlers(t)

	var req mcp.ReadResourceRequest
	req.Params.URI = "ironlog://catalog"
	contents, err := h.exerciseCatalog(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(contents))
	}
	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("contents[0] is %T, want TextResourceContents", contents[0])
	}
	var exercises []models.Exercise
	if err := json.Unmarshal([]byte(tc.Text), &exercises); err != nil {
		t.Fatalf("catalog resource not JSON: %v", err)
	}
	if len(exercises) != h.cat.Len() {
		t.Errorf("catalog resource has %d exercises, want %d", len(exercises), h.cat.Len())
	}
}
