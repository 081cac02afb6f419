// Package mcp exposes the catalog, history, and analytics to LLM tooling
// over the Model Context Protocol.
package mcp

import (
	"fmt"
	"log/slog"

	"github.com/claude/ironlog/internal/catalog"
	"github.com/claude/ironlog/internal/history"
	"github.com/claude/ironlog/internal/models"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(cat *catalog.Catalog, store *history.Store, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("IronLog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("IronLog workout tracker. Query the exercise catalog, logged set history, personal bests, progress trends, and next-session suggestions."),
	)

	h := &handlers{cat: cat, store: store, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolGetExerciseHistory, Handler: h.getExerciseHistory},
		server.ServerTool{Tool: toolGetPersonalBests, Handler: h.getPersonalBests},
		server.ServerTool{Tool: toolGetProgressTrend, Handler: h.getProgressTrend},
		server.ServerTool{Tool: toolGetTotalVolume, Handler: h.getTotalVolume},
		server.ServerTool{Tool: toolSuggestNextSession, Handler: h.suggestNextSession},
		server.ServerTool{Tool: toolGenerateWorkouts, Handler: h.generateWorkouts},
		server.ServerTool{Tool: toolGetSwapOptions, Handler: h.getSwapOptions},
	)

	s.AddResources(
		server.ServerResource{Resource: resCatalog, Handler: h.exerciseCatalog},
		server.ServerResource{Resource: resRecentSessions, Handler: h.recentSessions},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	cat   *catalog.Catalog
	store *history.Store
	log   *slog.Logger
}

// resolveExercise accepts either a catalog id or an exact exercise name.
func (h *handlers) resolveExercise(ref string) (models.Exercise, error) {
	if id, err := uuid.Parse(ref); err == nil {
		if ex, ok := h.cat.ByID(id); ok {
			return ex, nil
		}
		return models.Exercise{}, fmt.Errorf("no exercise with id %s", ref)
	}
	if ex, ok := h.cat.ByName(ref); ok {
		return ex, nil
	}
	return models.Exercise{}, fmt.Errorf("no exercise named %q", ref)
}

// --- Resource definitions ---

var resCatalog = mcp.NewResource(
	"ironlog://catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All known exercises with movement pattern, category, and equipment"),
	mcp.WithMIMEType("application/json"),
)

var resRecentSessions = mcp.NewResource(
	"ironlog://recent_sessions",
	"Recent Sessions",
	mcp.WithResourceDescription("Workout sessions from the last 14 days"),
	mcp.WithMIMEType("application/json"),
)
