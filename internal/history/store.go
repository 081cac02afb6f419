// Package history owns the logged workout state: sessions, training blocks,
// per-exercise set history, and the derived analytics cache. State lives in
// memory and is persisted through the storage.Blobs collaborator after every
// mutation.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/claude/ironlog/internal/analytics"
	"github.com/claude/ironlog/internal/models"
	"github.com/claude/ironlog/internal/storage"
	"github.com/google/uuid"
)

// ErrNotFound reports a lookup by id that missed.
var ErrNotFound = errors.New("not found")

// Store holds all logged workout state. Methods are safe for concurrent use;
// saves never run in parallel (last writer wins, acceptable for
// single-device state).
type Store struct {
	mu    sync.Mutex
	blobs storage.Blobs
	log   *slog.Logger
	th    analytics.Thresholds

	sessions  []models.WorkoutSession
	blocks    []models.WorkoutBlock
	history   map[uuid.UUID][]models.WorkoutSet
	analytics map[uuid.UUID]models.ExerciseAnalytics
}

// New creates an empty Store persisting through blobs.
func New(blobs storage.Blobs, th analytics.Thresholds, log *slog.Logger) *Store {
	return &Store{
		blobs:     blobs,
		log:       log,
		th:        th,
		history:   make(map[uuid.UUID][]models.WorkoutSet),
		analytics: make(map[uuid.UUID]models.ExerciseAnalytics),
	}
}

// Load reconstitutes sessions, blocks, and exercise history from the blob
// store. A missing or undecodable blob reads as an empty collection — a
// corrupt value must never block startup. The analytics cache is rebuilt
// from the loaded history so it stays derivable, never trusted from disk.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := loadKey(ctx, s, storage.KeySessions, &s.sessions); err != nil {
		return err
	}
	if err := loadKey(ctx, s, storage.KeyBlocks, &s.blocks); err != nil {
		return err
	}
	if err := loadKey(ctx, s, storage.KeyHistory, &s.history); err != nil {
		return err
	}
	if s.history == nil {
		s.history = make(map[uuid.UUID][]models.WorkoutSet)
	}

	s.analytics = make(map[uuid.UUID]models.ExerciseAnalytics)
	for id := range s.history {
		s.recomputeLocked(id)
	}
	return nil
}

// loadKey reads and decodes one blob into dst. Decode failures are logged
// and treated as absent data; decoding goes through a temporary so a failure
// partway through a blob never leaves partial state in dst.
func loadKey[T any](ctx context.Context, s *Store, key string, dst *T) error {
	data, ok, err := s.blobs.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("loading %s: %w", key, err)
	}
	if !ok {
		return nil
	}
	var decoded T
	if err := json.Unmarshal(data, &decoded); err != nil {
		s.log.Warn("discarding undecodable blob", "key", key, "error", err)
		return nil
	}
	*dst = decoded
	return nil
}

// Save serializes all collections back to the blob store. Keys are written
// independently; a partial save is tolerated on next load.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

func (s *Store) saveLocked(ctx context.Context) error {
	for _, kv := range []struct {
		key string
		val any
	}{
		{storage.KeySessions, s.sessions},
		{storage.KeyBlocks, s.blocks},
		{storage.KeyHistory, s.history},
		{storage.KeyAnalytics, s.analytics},
	} {
		data, err := json.Marshal(kv.val)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", kv.key, err)
		}
		if err := s.blobs.Set(ctx, kv.key, data); err != nil {
			return fmt.Errorf("saving %s: %w", kv.key, err)
		}
	}
	return nil
}

// AddSession validates and appends a session, extends the history bucket of
// every exercise it touches, recomputes their analytics and personal-best
// flags, and persists.
func (s *Store) AddSession(ctx context.Context, session models.WorkoutSession) error {
	for _, l := range session.Exercises {
		for _, set := range l.Sets {
			if err := set.Validate(); err != nil {
				return fmt.Errorf("exercise %s: %w", l.ExerciseName, err)
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = append(s.sessions, session)
	for _, l := range session.Exercises {
		s.history[l.ExerciseID] = append(s.history[l.ExerciseID], l.Sets...)
		s.recomputeLocked(l.ExerciseID)
	}
	return s.saveLocked(ctx)
}

// recomputeLocked rebuilds the derived analytics view and personal-best
// flags for one exercise from raw history.
func (s *Store) recomputeLocked(exerciseID uuid.UUID) {
	bucket := s.history[exerciseID]
	analytics.MarkPersonalBests(bucket)
	s.analytics[exerciseID] = analytics.Compute(exerciseID, bucket, s.sessions, s.th)
}

// AddBlock appends a training block and persists.
func (s *Store) AddBlock(ctx context.Context, block models.WorkoutBlock) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocks = append(s.blocks, block)
	return s.saveLocked(ctx)
}

// RemoveBlock deletes a training block by id and persists. Returns
// ErrNotFound if no block has that id.
func (s *Store) RemoveBlock(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.blocks {
		if b.ID == id {
			s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
			return s.saveLocked(ctx)
		}
	}
	return fmt.Errorf("block %s: %w", id, ErrNotFound)
}

// History returns the exercise's logged sets sorted by date descending.
func (s *Store) History(exerciseID uuid.UUID) []models.WorkoutSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	bucket := s.history[exerciseID]
	out := make([]models.WorkoutSet, len(bucket))
	copy(out, bucket)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// HistoryN returns at most n of the exercise's most recent sets.
func (s *Store) HistoryN(exerciseID uuid.UUID, n int) []models.WorkoutSet {
	h := s.History(exerciseID)
	if len(h) > n {
		h = h[:n]
	}
	return h
}

// LastLogged returns the most recent ExerciseLog for the exercise across all
// sessions, considering sessions most-recent-first.
func (s *Store) LastLogged(exerciseID uuid.UUID) (models.ExerciseLog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var best *models.WorkoutSession
	for i := range s.sessions {
		sess := &s.sessions[i]
		if !sess.Includes(exerciseID) {
			continue
		}
		if best == nil || sess.Date.After(best.Date) {
			best = sess
		}
	}
	if best == nil {
		return models.ExerciseLog{}, false
	}
	for _, l := range best.Exercises {
		if l.ExerciseID == exerciseID {
			return l, true
		}
	}
	return models.ExerciseLog{}, false
}

// Sessions returns a copy of all stored sessions.
func (s *Store) Sessions() []models.WorkoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WorkoutSession, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// SessionsOn returns the sessions logged on the given calendar day.
func (s *Store) SessionsOn(day time.Time) []models.WorkoutSession {
	y, m, d := day.Date()
	var out []models.WorkoutSession
	for _, sess := range s.Sessions() {
		sy, sm, sd := sess.Date.Date()
		if sy == y && sm == m && sd == d {
			out = append(out, sess)
		}
	}
	return out
}

// Blocks returns a copy of all stored training blocks.
func (s *Store) Blocks() []models.WorkoutBlock {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WorkoutBlock, len(s.blocks))
	copy(out, s.blocks)
	return out
}

// Analytics returns the cached derived view for an exercise.
func (s *Store) Analytics(exerciseID uuid.UUID) (models.ExerciseAnalytics, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.analytics[exerciseID]
	return a, ok
}

// TotalVolume sums weight x reps for the exercise over the trailing period.
func (s *Store) TotalVolume(exerciseID uuid.UUID, period models.Period) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return analytics.TotalVolume(s.history[exerciseID], period, time.Now())
}

// SessionCount counts sessions containing the exercise over the trailing
// period.
func (s *Store) SessionCount(exerciseID uuid.UUID, period models.Period) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return analytics.SessionCount(s.sessions, exerciseID, period, time.Now())
}

// Suggestion proposes weight/reps/RPE for the exercise's next session.
func (s *Store) Suggestion(exerciseID uuid.UUID) models.Suggestion {
	last, ok := s.LastLogged(exerciseID)
	if !ok {
		return analytics.Suggest(nil, s.th)
	}
	return analytics.Suggest(&last, s.th)
}
