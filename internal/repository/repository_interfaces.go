// Package repository provides the truck class and log stores.
package repository

import (
	"context"
	"errors"

	"github.com/guttosm/fuel-service/internal/domain/model"
)

var (
	// ErrDuplicateName is returned when a truck class name is already taken.
	ErrDuplicateName = errors.New("truck class name already exists")
)

// TruckClassRepositoryInterface defines truck class storage operations.
// Lookups return nil, nil when nothing matches. Lists are ordered by name.
type TruckClassRepositoryInterface interface {
	List(ctx context.Context, activeOnly bool) ([]model.TruckClass, error)
	GetByID(ctx context.Context, id string) (*model.TruckClass, error)
	GetByName(ctx context.Context, name string) (*model.TruckClass, error)
	Create(ctx context.Context, tc *model.TruckClass) (*model.TruckClass, error)
	Update(ctx context.Context, tc *model.TruckClass) (*model.TruckClass, error)
	Ping(ctx context.Context) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
