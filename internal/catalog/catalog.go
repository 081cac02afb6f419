// Package catalog holds the fixed, process-wide exercise catalog and the
// filtered views the rest of the application reads from it.
package catalog

import (
	"sort"
	"strings"

	"github.com/claude/ironlog/internal/models"
	"github.com/google/uuid"
)

// namespace seeds deterministic exercise ids so the same catalog entry keeps
// the same id across process restarts. History rows reference these ids.
var namespace = uuid.MustParse("9f2c1b4e-7a63-4d15-8c2a-5e90d3f1b7aa")

// Catalog is the immutable set of known exercises.
type Catalog struct {
	exercises []models.Exercise
	byID      map[uuid.UUID]models.Exercise
}

// New builds a catalog from the given entries. Ids are derived from the
// exercise name, so entries must have unique names.
func New(entries []Entry) *Catalog {
	c := &Catalog{byID: make(map[uuid.UUID]models.Exercise, len(entries))}
	for _, e := range entries {
		ex := models.Exercise{
			ID:        uuid.NewSHA1(namespace, []byte(e.Name)),
			Name:      e.Name,
			Pattern:   e.Pattern,
			Category:  e.Category,
			Equipment: e.Equipment,
		}
		c.exercises = append(c.exercises, ex)
		c.byID[ex.ID] = ex
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(defaultEntries)
}

// Entry describes one exercise before id assignment.
type Entry struct {
	Name      string
	Pattern   models.MovementPattern
	Category  models.ExerciseCategory
	Equipment models.Equipment
}

// Filter restricts List results. Zero-valued fields are unset and place no
// constraint on their axis; set fields combine conjunctively.
type Filter struct {
	Pattern   models.MovementPattern
	Category  models.ExerciseCategory
	Equipment models.Equipment
}

func (f Filter) matches(ex models.Exercise) bool {
	if f.Pattern != "" && ex.Pattern != f.Pattern {
		return false
	}
	if f.Category != "" && ex.Category != f.Category {
		return false
	}
	if f.Equipment != "" && ex.Equipment != f.Equipment {
		return false
	}
	return true
}

// List returns the matching exercises sorted by name ascending. An empty
// result is valid.
func (c *Catalog) List(f Filter) []models.Exercise {
	var out []models.Exercise
	for _, ex := range c.exercises {
		if f.matches(ex) {
			out = append(out, ex)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ByID looks up an exercise by id.
func (c *Catalog) ByID(id uuid.UUID) (models.Exercise, bool) {
	ex, ok := c.byID[id]
	return ex, ok
}

// SwapOptions returns every exercise sharing ex's pattern and category,
// excluding ex itself, sorted by name.
func (c *Catalog) SwapOptions(ex models.Exercise) []models.Exercise {
	opts := c.List(Filter{Pattern: ex.Pattern, Category: ex.Category})
	out := opts[:0]
	for _, o := range opts {
		if o.ID != ex.ID {
			out = append(out, o)
		}
	}
	return out
}

// SwapFilter narrows SwapOptions further for the swap picker: by equipment
// and by a case-insensitive name substring.
type SwapFilter struct {
	Equipment models.Equipment
	Search    string
}

// SwapOptionsFiltered returns SwapOptions narrowed by the given filter.
func (c *Catalog) SwapOptionsFiltered(ex models.Exercise, f SwapFilter) []models.Exercise {
	opts := c.SwapOptions(ex)
	out := opts[:0]
	needle := strings.ToLower(f.Search)
	for _, o := range opts {
		if f.Equipment != "" && o.Equipment != f.Equipment {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(o.Name), needle) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// ByName looks up an exercise by exact name, case-insensitively.
func (c *Catalog) ByName(name string) (models.Exercise, bool) {
	for _, ex := range c.exercises {
		if strings.EqualFold(ex.Name, name) {
			return ex, true
		}
	}
	return models.Exercise{}, false
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.exercises)
}
