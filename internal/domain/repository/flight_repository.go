package repository

import (
	"context"
	"errors"

	"flights-service/internal/domain/entity"
)

var (
	// ErrFlightNotFound is returned when no record matches the flight id.
	ErrFlightNotFound = errors.New("flight not found")
	// ErrDuplicateFlight is returned when the flight id is already taken.
	// The primary key constraint in the store is the authority here, not
	// the application-level existence check.
	ErrDuplicateFlight = errors.New("flight already exists")
)

// FlightRepository defines the interface for flight record operations
type FlightRepository interface {
	GetByID(ctx context.Context, flightID string) (*entity.Flight, error)
	Search(ctx context.Context, filter entity.FlightFilter) ([]entity.Flight, error)
	Create(ctx context.Context, flight *entity.Flight) error
	Delete(ctx context.Context, flightID string) error
	// ReplaceAll overwrites the entire table with the given records in a
	// single transaction. Used by the batch loader.
	ReplaceAll(ctx context.Context, flights []entity.Flight) error
}
