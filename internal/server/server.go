package server

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/claude/ironlog/internal/catalog"
	"github.com/claude/ironlog/internal/history"
	"github.com/claude/ironlog/internal/models"
	"github.com/claude/ironlog/internal/timer"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Server holds dependencies for the dashboard API handlers. The generated
// workout cycle lives here in memory only; each process start produces a
// fresh randomized cycle.
type Server struct {
	cat    *catalog.Catalog
	store  *history.Store
	sw     *timer.Stopwatch
	log    *slog.Logger
	router chi.Router

	mu       sync.Mutex
	workouts []models.GeneratedWorkout
	byID     map[uuid.UUID]int
}

// New creates a Server with all routes configured, serving the given
// generated workout cycle.
func New(cat *catalog.Catalog, store *history.Store, workouts []models.GeneratedWorkout, log *slog.Logger) *Server {
	s := &Server{
		cat:      cat,
		store:    store,
		sw:       timer.New(),
		log:      log,
		router:   chi.NewRouter(),
		workouts: workouts,
		byID:     make(map[uuid.UUID]int, len(workouts)),
	}
	for i, w := range workouts {
		s.byID[w.ID] = i
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/exercises", s.handleListExercises)
		r.Get("/exercises/{id}", s.handleGetExercise)
		r.Get("/exercises/{id}/swaps", s.handleSwapOptions)
		r.Get("/exercises/{id}/history", s.handleExerciseHistory)
		r.Get("/exercises/{id}/analytics", s.handleExerciseAnalytics)
		r.Get("/exercises/{id}/stats", s.handleExerciseStats)
		r.Get("/exercises/{id}/suggestion", s.handleSuggestion)

		r.Get("/workouts", s.handleListWorkouts)
		r.Get("/workouts/{id}", s.handleGetWorkout)
		r.Post("/workouts/{id}/swap", s.handleSwapWorkout)

		r.Get("/sessions", s.handleListSessions)
		r.Post("/sessions", s.handleAddSession)

		r.Get("/blocks", s.handleListBlocks)
		r.Post("/blocks", s.handleAddBlock)
		r.Delete("/blocks/{id}", s.handleRemoveBlock)

		r.Get("/timer", s.handleTimerStatus)
		r.Post("/timer/start", s.handleTimerStart)
		r.Post("/timer/stop", s.handleTimerStop)
		r.Post("/timer/reset", s.handleTimerReset)
	})
}
