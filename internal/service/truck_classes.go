package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/fuel-service/internal/domain/model"
	"github.com/guttosm/fuel-service/internal/metrics"
	"github.com/guttosm/fuel-service/internal/repository"
	"github.com/guttosm/fuel-service/internal/service/cache"
)

var (
	// ErrRepositoryNotConfigured is returned when the repository is not configured.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	// ErrDuplicateTruckClass is returned when a truck class name is already taken.
	ErrDuplicateTruckClass = repository.ErrDuplicateName
)

const (
	cacheKeyActive = "truck_classes:active"
	cacheKeyAll    = "truck_classes:all"
	cacheKeyByID   = "truck_class:id:"
)

// TruckClassPatch carries the fields of a partial truck class update.
type TruckClassPatch struct {
	Name             *string
	BaseKmPerLiter   *float64
	LoadedMultiplier *float64
	IsActive         *bool
}

// apply copies the set fields onto tc.
func (p TruckClassPatch) apply(tc *model.TruckClass) {
	if p.Name != nil {
		tc.Name = strings.TrimSpace(*p.Name)
	}
	if p.BaseKmPerLiter != nil {
		tc.BaseKmPerLiter = *p.BaseKmPerLiter
	}
	if p.LoadedMultiplier != nil {
		tc.LoadedMultiplier = *p.LoadedMultiplier
	}
	if p.IsActive != nil {
		tc.IsActive = *p.IsActive
	}
}

// TruckClassService manages the truck class lookup table.
type TruckClassService interface {
	ListActive(ctx context.Context) ([]model.TruckClass, error)
	ListAll(ctx context.Context) ([]model.TruckClass, error)
	Get(ctx context.Context, id string) (*model.TruckClass, error)
	GetByName(ctx context.Context, name string) (*model.TruckClass, error)
	Create(ctx context.Context, tc *model.TruckClass) (*model.TruckClass, error)
	Update(ctx context.Context, id string, patch TruckClassPatch) (*model.TruckClass, error)
	Deactivate(ctx context.Context, id string) (*model.TruckClass, error)
	Seed(ctx context.Context, classes []model.TruckClass) (int, error)
}

// TruckClassServiceImpl implements TruckClassService with read-through caching.
type TruckClassServiceImpl struct {
	repo  repository.TruckClassRepositoryInterface
	cache cache.Cache[[]model.TruckClass]
}

// NewTruckClassService creates a truck class service. A nil cache disables caching.
func NewTruckClassService(repo repository.TruckClassRepositoryInterface, c cache.Cache[[]model.TruckClass]) *TruckClassServiceImpl {
	if c == nil {
		c = cache.Noop[[]model.TruckClass]{}
	}
	return &TruckClassServiceImpl{
		repo:  repo,
		cache: c,
	}
}

// ListActive returns the classes offered for selection, ordered by name.
func (s *TruckClassServiceImpl) ListActive(ctx context.Context) ([]model.TruckClass, error) {
	classes, err := s.list(ctx, cacheKeyActive, true)
	if err == nil {
		metrics.SetActiveTruckClasses(len(classes))
	}
	return classes, err
}

// ListAll returns every class, active or not, ordered by name.
func (s *TruckClassServiceImpl) ListAll(ctx context.Context) ([]model.TruckClass, error) {
	return s.list(ctx, cacheKeyAll, false)
}

func (s *TruckClassServiceImpl) list(ctx context.Context, key string, activeOnly bool) ([]model.TruckClass, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if classes, ok := s.cache.Get(ctx, key); ok {
		return classes, nil
	}

	classes, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list truck classes: %w", err)
	}
	if classes == nil {
		classes = []model.TruckClass{}
	}
	s.cache.Set(ctx, key, classes)
	return classes, nil
}

// Get returns the truck class with the given id or ErrTruckClassNotFound.
func (s *TruckClassServiceImpl) Get(ctx context.Context, id string) (*model.TruckClass, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrTruckClassNotFound
	}

	if cached, ok := s.cache.Get(ctx, cacheKeyByID+id); ok && len(cached) == 1 {
		tc := cached[0]
		return &tc, nil
	}

	tc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get truck class %s: %w", id, err)
	}
	if tc == nil {
		return nil, ErrTruckClassNotFound
	}
	s.cache.Set(ctx, cacheKeyByID+id, []model.TruckClass{*tc})
	return tc, nil
}

// GetByName returns the truck class with the given name or ErrTruckClassNotFound.
func (s *TruckClassServiceImpl) GetByName(ctx context.Context, name string) (*model.TruckClass, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	tc, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get truck class %q: %w", name, err)
	}
	if tc == nil {
		return nil, ErrTruckClassNotFound
	}
	return tc, nil
}

// Create validates and stores a new truck class.
func (s *TruckClassServiceImpl) Create(ctx context.Context, tc *model.TruckClass) (*model.TruckClass, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	candidate := *tc
	candidate.Name = strings.TrimSpace(candidate.Name)
	if candidate.LoadedMultiplier == 0 {
		candidate.LoadedMultiplier = model.DefaultLoadedMultiplier
	}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &candidate)
	if err != nil {
		return nil, err
	}
	s.cache.Clear(ctx)

	log.Info().
		Str("truck_class_id", created.ID).
		Str("name", created.Name).
		Msg("truck class created")
	return created, nil
}

// Update applies patch to an existing truck class.
func (s *TruckClassServiceImpl) Update(ctx context.Context, id string, patch TruckClassPatch) (*model.TruckClass, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get truck class %s: %w", id, err)
	}
	if current == nil {
		return nil, ErrTruckClassNotFound
	}

	patch.apply(current)
	if err := current.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrTruckClassNotFound
	}
	s.cache.Clear(ctx)

	log.Info().
		Str("truck_class_id", updated.ID).
		Str("name", updated.Name).
		Bool("is_active", updated.IsActive).
		Msg("truck class updated")
	return updated, nil
}

// Deactivate hides a truck class from selection without deleting it.
func (s *TruckClassServiceImpl) Deactivate(ctx context.Context, id string) (*model.TruckClass, error) {
	inactive := false
	return s.Update(ctx, id, TruckClassPatch{IsActive: &inactive})
}

// Seed creates each class whose name does not exist yet and returns how many were added.
// Existing classes are left untouched.
func (s *TruckClassServiceImpl) Seed(ctx context.Context, classes []model.TruckClass) (int, error) {
	if s.repo == nil {
		return 0, ErrRepositoryNotConfigured
	}

	created := 0
	for i := range classes {
		existing, err := s.repo.GetByName(ctx, classes[i].Name)
		if err != nil {
			return created, fmt.Errorf("seed %q: %w", classes[i].Name, err)
		}
		if existing != nil {
			log.Debug().Str("name", existing.Name).Msg("truck class already present, skipping")
			continue
		}

		_, err = s.Create(ctx, &classes[i])
		switch {
		case errors.Is(err, ErrDuplicateTruckClass):
			continue
		case err != nil:
			return created, fmt.Errorf("seed %q: %w", classes[i].Name, err)
		}
		created++
	}
	return created, nil
}
