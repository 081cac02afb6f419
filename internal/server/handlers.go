package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/claude/ironlog/internal/catalog"
	"github.com/claude/ironlog/internal/generator"
	"github.com/claude/ironlog/internal/history"
	"github.com/claude/ironlog/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// exerciseFromPath resolves the {id} path parameter to a catalog exercise.
func (s *Server) exerciseFromPath(w http.ResponseWriter, r *http.Request) (models.Exercise, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid exercise id")
		return models.Exercise{}, false
	}
	ex, ok := s.cat.ByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "exercise not found")
		return models.Exercise{}, false
	}
	return ex, true
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	var f catalog.Filter
	q := r.URL.Query()
	if v := q.Get("pattern"); v != "" {
		p, err := models.ParseMovementPattern(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.Pattern = p
	}
	if v := q.Get("category"); v != "" {
		c, err := models.ParseExerciseCategory(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.Category = c
	}
	if v := q.Get("equipment"); v != "" {
		e, err := models.ParseEquipment(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.Equipment = e
	}
	writeJSON(w, http.StatusOK, s.cat.List(f))
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	ex, ok := s.exerciseFromPath(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ex)
}

func (s *Server) handleSwapOptions(w http.ResponseWriter, r *http.Request) {
	ex, ok := s.exerciseFromPath(w, r)
	if !ok {
		return
	}
	var sf catalog.SwapFilter
	q := r.URL.Query()
	if v := q.Get("equipment"); v != "" {
		e, err := models.ParseEquipment(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		sf.Equipment = e
	}
	sf.Search = q.Get("search")
	writeJSON(w, http.StatusOK, s.cat.SwapOptionsFiltered(ex, sf))
}

func (s *Server) handleExerciseHistory(w http.ResponseWriter, r *http.Request) {
	ex, ok := s.exerciseFromPath(w, r)
	if !ok {
		return
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		writeJSON(w, http.StatusOK, s.store.HistoryN(ex.ID, limit))
		return
	}
	writeJSON(w, http.StatusOK, s.store.History(ex.ID))
}

func (s *Server) handleExerciseAnalytics(w http.ResponseWriter, r *http.Request) {
	ex, ok := s.exerciseFromPath(w, r)
	if !ok {
		return
	}
	a, ok := s.store.Analytics(ex.ID)
	if !ok {
		// Nothing logged yet: an empty derived view, not an error.
		a = models.ExerciseAnalytics{
			ExerciseID:    ex.ID,
			PersonalBests: map[string]models.WorkoutSet{},
			ProgressTrend: models.TrendInsufficient,
		}
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleExerciseStats(w http.ResponseWriter, r *http.Request) {
	ex, ok := s.exerciseFromPath(w, r)
	if !ok {
		return
	}
	period, err := models.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"exercise_id":   ex.ID,
		"period":        period,
		"total_volume":  s.store.TotalVolume(ex.ID, period),
		"session_count": s.store.SessionCount(ex.ID, period),
	})
}

func (s *Server) handleSuggestion(w http.ResponseWriter, r *http.Request) {
	ex, ok := s.exerciseFromPath(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.store.Suggestion(ex.ID))
}

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]models.GeneratedWorkout, len(s.workouts))
	copy(out, s.workouts)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid workout id")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byID[id]
	if !ok {
		writeError(w, http.StatusNotFound, "workout not found")
		return
	}
	writeJSON(w, http.StatusOK, s.workouts[i])
}

type swapRequest struct {
	Slot       string    `json:"slot"`
	ExerciseID uuid.UUID `json:"exercise_id"`
}

func (s *Server) handleSwapWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid workout id")
		return
	}
	var req swapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	slot, err := models.ParseWorkoutSlot(req.Slot)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	replacement, ok := s.cat.ByID(req.ExerciseID)
	if !ok {
		writeError(w, http.StatusNotFound, "exercise not found")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byID[id]
	if !ok {
		writeError(w, http.StatusNotFound, "workout not found")
		return
	}
	if err := generator.Swap(&s.workouts[i], slot, replacement); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.workouts[i])
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	if v := r.URL.Query().Get("on"); v != "" {
		day, err := time.Parse("2006-01-02", v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
			return
		}
		writeJSON(w, http.StatusOK, s.store.SessionsOn(day))
		return
	}
	writeJSON(w, http.StatusOK, s.store.Sessions())
}

func (s *Server) handleAddSession(w http.ResponseWriter, r *http.Request) {
	var session models.WorkoutSession
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	if session.Date.IsZero() {
		session.Date = time.Now()
	}
	for i := range session.Exercises {
		if session.Exercises[i].ID == uuid.Nil {
			session.Exercises[i].ID = uuid.New()
		}
		if session.Exercises[i].Date.IsZero() {
			session.Exercises[i].Date = session.Date
		}
		for j := range session.Exercises[i].Sets {
			if session.Exercises[i].Sets[j].ID == uuid.Nil {
				session.Exercises[i].Sets[j].ID = uuid.New()
			}
			if session.Exercises[i].Sets[j].Date.IsZero() {
				session.Exercises[i].Sets[j].Date = session.Date
			}
		}
	}

	if err := s.store.AddSession(r.Context(), session); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (s *Server) handleListBlocks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Blocks())
}

func (s *Server) handleAddBlock(w http.ResponseWriter, r *http.Request) {
	var block models.WorkoutBlock
	if err := json.NewDecoder(r.Body).Decode(&block); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if block.ID == uuid.Nil {
		block.ID = uuid.New()
	}
	if block.Name == "" {
		writeError(w, http.StatusBadRequest, "block name is required")
		return
	}
	if err := s.store.AddBlock(r.Context(), block); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, block)
}

func (s *Server) handleRemoveBlock(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid block id")
		return
	}
	if err := s.store.RemoveBlock(r.Context(), id); err != nil {
		if errors.Is(err, history.ErrNotFound) {
			writeError(w, http.StatusNotFound, "block not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// timerStatus is the wire representation of the session stopwatch.
type timerStatus struct {
	Running        bool    `json:"running"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	Formatted      string  `json:"formatted"`
}

func (s *Server) timerStatusNow() timerStatus {
	return timerStatus{
		Running:        s.sw.Running(),
		ElapsedSeconds: s.sw.Elapsed().Seconds(),
		Formatted:      s.sw.FormattedElapsed(),
	}
}

func (s *Server) handleTimerStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.timerStatusNow())
}

func (s *Server) handleTimerStart(w http.ResponseWriter, r *http.Request) {
	s.sw.Start()
	writeJSON(w, http.StatusOK, s.timerStatusNow())
}

func (s *Server) handleTimerStop(w http.ResponseWriter, r *http.Request) {
	s.sw.Stop()
	writeJSON(w, http.StatusOK, s.timerStatusNow())
}

func (s *Server) handleTimerReset(w http.ResponseWriter, r *http.Request) {
	s.sw.Reset()
	writeJSON(w, http.StatusOK, s.timerStatusNow())
}
