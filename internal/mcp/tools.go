package mcp

import (
	"context"
	"math/rand"
	"time"

	"github.com/claude/ironlog/internal/analytics"
	"github.com/claude/ironlog/internal/catalog"
	"github.com/claude/ironlog/internal/generator"
	"github.com/claude/ironlog/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List catalog exercises, optionally filtered by movement pattern, category, and equipment. Filters combine with AND."),
	mcp.WithString("pattern", mcp.Description("Movement pattern filter"), mcp.Enum("squat", "hinge", "press", "pull", "core", "full_body", "cardio")),
	mcp.WithString("category", mcp.Description("Category filter"), mcp.Enum("primary", "secondary", "accessory", "conditioning", "warmup")),
	mcp.WithString("equipment", mcp.Description("Equipment filter"), mcp.Enum("barbell", "dumbbell", "bodyweight", "machine", "bands", "kettlebell", "cable", "none")),
)

var toolGetExerciseHistory = mcp.NewTool("get_exercise_history",
	mcp.WithDescription("Logged sets for one exercise, most recent first."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise id or exact name (e.g. 'Back Squat')")),
	mcp.WithNumber("limit", mcp.Description("Maximum number of sets to return. Defaults to 20.")),
)

var toolGetPersonalBests = mcp.NewTool("get_personal_bests",
	mcp.WithDescription("Personal bests per canonical rep count (1RM, 3RM, 5RM, 8RM, 10RM, 12RM, 15RM) for one exercise."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise id or exact name")),
)

var toolGetProgressTrend = mcp.NewTool("get_progress_trend",
	mcp.WithDescription("Progress trend (improving, plateaued, declining, insufficient_data) plus the full analytics view for one exercise."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise id or exact name")),
)

var toolGetTotalVolume = mcp.NewTool("get_total_volume",
	mcp.WithDescription("Total volume (sum of weight x reps) and session count for one exercise over a trailing period."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise id or exact name")),
	mcp.WithString("period", mcp.Description("Trailing window. Defaults to all_time."), mcp.Enum("last_7_days", "last_30_days", "last_3_months", "all_time")),
)

var toolSuggestNextSession = mcp.NewTool("suggest_next_session",
	mcp.WithDescription("Weight/reps/RPE suggestion for the next session of an exercise, based on the most recent log with progressive overload applied."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise id or exact name")),
)

var toolGenerateWorkouts = mcp.NewTool("generate_workouts",
	mcp.WithDescription("Generate a fresh training cycle: 10 squat days, 15 deadlift/RDL days, 15 bench days, each with primary, secondary, superset pair, and conditioning slots filled from the catalog."),
	mcp.WithNumber("seed", mcp.Description("Random seed for the secondary/superset/conditioning picks. Omit for a fresh random cycle.")),
)

var toolGetSwapOptions = mcp.NewTool("get_swap_options",
	mcp.WithDescription("Exercises that can substitute for the given one: same movement pattern and category."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise id or exact name")),
)

// --- Tool handlers ---

func (h *handlers) listExercises(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var f catalog.Filter
	if v := req.GetString("pattern", ""); v != "" {
		p, err := models.ParseMovementPattern(v)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		f.Pattern = p
	}
	if v := req.GetString("category", ""); v != "" {
		c, err := models.ParseExerciseCategory(v)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		f.Category = c
	}
	if v := req.GetString("equipment", ""); v != "" {
		e, err := models.ParseEquipment(v)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		f.Equipment = e
	}

	result, err := mcp.NewToolResultJSON(h.cat.List(f))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExerciseHistory(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	ex, err := h.resolveExercise(ref)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit := req.GetInt("limit", 20)

	result, err := mcp.NewToolResultJSON(map[string]any{
		"exercise": ex,
		"sets":     h.store.HistoryN(ex.ID, limit),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPersonalBests(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	ex, err := h.resolveExercise(ref)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"exercise":       ex,
		"personal_bests": analytics.PersonalBests(h.store.History(ex.ID)),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgressTrend(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	ex, err := h.resolveExercise(ref)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	view, ok := h.store.Analytics(ex.ID)
	if !ok {
		view = models.ExerciseAnalytics{
			ExerciseID:    ex.ID,
			PersonalBests: map[string]models.WorkoutSet{},
			ProgressTrend: models.TrendInsufficient,
		}
	}
	result, err := mcp.NewToolResultJSON(map[string]any{
		"exercise":  ex,
		"analytics": view,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTotalVolume(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	ex, err := h.resolveExercise(ref)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	period, err := models.ParsePeriod(req.GetString("period", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"exercise":      ex,
		"period":        period,
		"total_volume":  h.store.TotalVolume(ex.ID, period),
		"session_count": h.store.SessionCount(ex.ID, period),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) suggestNextSession(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	ex, err := h.resolveExercise(ref)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"exercise":   ex,
		"suggestion": h.store.Suggestion(ex.ID),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) generateWorkouts(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seed := int64(req.GetInt("seed", 0))
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := generator.New(h.cat, generator.DefaultPolicy(), rand.New(rand.NewSource(seed)))
	workouts, err := gen.Generate()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(workouts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSwapOptions(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	ex, err := h.resolveExercise(ref)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(h.cat.SwapOptions(ex))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
