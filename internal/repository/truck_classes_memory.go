package repository

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/guttosm/fuel-service/internal/domain/model"
)

// MemoryTruckClassRepository keeps truck classes in process memory.
// It backs the default development setup and handler tests.
type MemoryTruckClassRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[string]model.TruckClass
}

// NewMemoryTruckClassRepository creates an empty in-memory repository.
func NewMemoryTruckClassRepository() *MemoryTruckClassRepository {
	return &MemoryTruckClassRepository{
		byID: make(map[string]model.TruckClass),
	}
}

// List returns truck classes ordered by name.
func (r *MemoryTruckClassRepository) List(_ context.Context, activeOnly bool) ([]model.TruckClass, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	classes := make([]model.TruckClass, 0, len(r.byID))
	for _, tc := range r.byID {
		if activeOnly && !tc.IsActive {
			continue
		}
		classes = append(classes, tc)
	}
	sort.Slice(classes, func(i, j int) bool {
		return classes[i].Name < classes[j].Name
	})
	return classes, nil
}

// GetByID returns a copy of the stored truck class.
func (r *MemoryTruckClassRepository) GetByID(_ context.Context, id string) (*model.TruckClass, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tc, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &tc, nil
}

// GetByName returns a copy of the truck class with the given name.
func (r *MemoryTruckClassRepository) GetByName(_ context.Context, name string) (*model.TruckClass, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name = strings.TrimSpace(name)
	for _, tc := range r.byID {
		if tc.Name == name {
			found := tc
			return &found, nil
		}
	}
	return nil, nil
}

// Create stores a truck class under the next sequence id.
func (r *MemoryTruckClassRepository) Create(_ context.Context, tc *model.TruckClass) (*model.TruckClass, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(tc.Name, "") {
		return nil, ErrDuplicateName
	}

	r.nextID++
	now := time.Now().UTC()
	stored := *tc
	stored.ID = strconv.FormatInt(r.nextID, 10)
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.byID[stored.ID] = stored
	return &stored, nil
}

// Update replaces the mutable fields of an existing truck class.
func (r *MemoryTruckClassRepository) Update(_ context.Context, tc *model.TruckClass) (*model.TruckClass, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[tc.ID]
	if !ok {
		return nil, nil
	}
	if r.nameTaken(tc.Name, tc.ID) {
		return nil, ErrDuplicateName
	}

	current.Name = tc.Name
	current.BaseKmPerLiter = tc.BaseKmPerLiter
	current.LoadedMultiplier = tc.LoadedMultiplier
	current.IsActive = tc.IsActive
	current.UpdatedAt = time.Now().UTC()
	r.byID[current.ID] = current
	return &current, nil
}

// Ping always succeeds.
func (r *MemoryTruckClassRepository) Ping(context.Context) error {
	return nil
}

// nameTaken must be called with mu held.
func (r *MemoryTruckClassRepository) nameTaken(name, exceptID string) bool {
	for id, tc := range r.byID {
		if id != exceptID && tc.Name == name {
			return true
		}
	}
	return false
}
