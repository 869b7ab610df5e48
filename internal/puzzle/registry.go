package puzzle

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Days run from 1 to 25, one puzzle each.
const (
	FirstDay = 1
	LastDay  = 25
)

var (
	ErrSolverExists    = errors.New("solver already exists")
	ErrSolverNil       = errors.New("solver is nil")
	ErrInvalidMetadata = errors.New("invalid solver metadata")
	ErrPartMissing     = errors.New("solver part not implemented")
	ErrUnknownDay      = errors.New("no solver registered for day")
)

// Registry stores solvers by stable identifier.
type Registry struct {
	items map[string]Solver
	byDay map[int]string
}

// NewRegistry creates an empty solver registry.
func NewRegistry() *Registry {
	return &Registry{
		items: make(map[string]Solver),
		byDay: make(map[int]string),
	}
}

// ValidateMetadata checks required metadata fields, the id format and the day range.
func ValidateMetadata(meta Metadata) error {
	id := strings.TrimSpace(meta.ID)
	name := strings.TrimSpace(meta.Name)
	desc := strings.TrimSpace(meta.Description)
	if id == "" || name == "" || desc == "" {
		return fmt.Errorf("%w: id, name, and description are required", ErrInvalidMetadata)
	}
	if !isValidID(id) {
		return fmt.Errorf("%w: invalid id format %q", ErrInvalidMetadata, id)
	}
	if meta.Day < FirstDay || meta.Day > LastDay {
		return fmt.Errorf("%w: day %d out of range [%d,%d]", ErrInvalidMetadata, meta.Day, FirstDay, LastDay)
	}
	return nil
}

// Register adds a solver to the registry. Both the id and the day must be unused.
func (r *Registry) Register(solver Solver) error {
	if solver == nil {
		return ErrSolverNil
	}

	meta := solver.Metadata()
	if err := ValidateMetadata(meta); err != nil {
		return err
	}

	if _, ok := r.items[meta.ID]; ok {
		return fmt.Errorf("%w: %s", ErrSolverExists, meta.ID)
	}
	if existing, ok := r.byDay[meta.Day]; ok {
		return fmt.Errorf("%w: day %d registered as %s", ErrSolverExists, meta.Day, existing)
	}
	r.items[meta.ID] = solver
	r.byDay[meta.Day] = meta.ID
	return nil
}

// MustRegister is Register for static wiring; it panics on error.
func (r *Registry) MustRegister(solvers ...Solver) *Registry {
	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
	return r
}

// Resolve returns a solver by id.
func (r *Registry) Resolve(id string) (Solver, bool) {
	solver, ok := r.items[id]
	return solver, ok
}

// ResolveDay returns the solver registered for day.
func (r *Registry) ResolveDay(day int) (Solver, bool) {
	id, ok := r.byDay[day]
	if !ok {
		return nil, false
	}
	return r.Resolve(id)
}

// Len reports how many solvers are registered.
func (r *Registry) Len() int {
	return len(r.items)
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.byDay))
	for day := range r.byDay {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// ListMetadata returns deterministic metadata ordering by day.
func (r *Registry) ListMetadata() []Metadata {
	list := make([]Metadata, 0, len(r.items))
	for _, solver := range r.items {
		list = append(list, solver.Metadata())
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Day < list[j].Day
	})
	return list
}

func isValidID(id string) bool {
	if id == "" {
		return false
	}
	lastSep := false
	for i := 0; i < len(id); i++ {
		c := id[i]
		isLower := c >= 'a' && c <= 'z'
		isDigit := c >= '0' && c <= '9'
		isSep := c == '.' || c == '-' || c == '_'
		if !(isLower || isDigit || isSep) {
			return false
		}
		if i == 0 || i == len(id)-1 {
			if isSep {
				return false
			}
		}
		if isSep && lastSep {
			return false
		}
		lastSep = isSep
	}
	return true
}
