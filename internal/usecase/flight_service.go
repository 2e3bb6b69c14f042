package usecase

import (
	"context"
	"errors"

	"flights-service/internal/domain/entity"
	"flights-service/internal/domain/repository"
	"flights-service/pkg/logger"
)

var (
	ErrFlightIDRequired = errors.New("flight_id is required")
	ErrFlightNotFound   = errors.New("flight not found")
	ErrFlightExists     = errors.New("flight with this flight_id already exists")
)

// FlightService exposes the flight record operations
type FlightService struct {
	flights repository.FlightRepository
	log     logger.Logger
}

// NewFlightService creates a new flight service
func NewFlightService(flights repository.FlightRepository, log logger.Logger) *FlightService {
	return &FlightService{
		flights: flights,
		log:     log,
	}
}

// Get returns a single flight by its id
func (s *FlightService) Get(ctx context.Context, flightID string) (*entity.Flight, error) {
	flight, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return flight, nil
}

// Search returns every flight matching the filter. An empty filter
// matches everything; no match yields an empty list, not an error.
func (s *FlightService) Search(ctx context.Context, filter entity.FlightFilter) ([]entity.Flight, error) {
	flights, err := s.flights.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	if flights == nil {
		flights = []entity.Flight{}
	}
	return flights, nil
}

// Add persists a new flight. The id is checked with an exact primary
// key lookup first; the unique constraint in the store settles any race
// between concurrent adds for the same id.
func (s *FlightService) Add(ctx context.Context, flight *entity.Flight) (*entity.Flight, error) {
	if flight.FlightID == "" {
		return nil, ErrFlightIDRequired
	}

	if _, err := s.flights.GetByID(ctx, flight.FlightID); err == nil {
		return nil, ErrFlightExists
	} else if !errors.Is(err, repository.ErrFlightNotFound) {
		return nil, err
	}

	if err := s.flights.Create(ctx, flight); err != nil {
		if errors.Is(err, repository.ErrDuplicateFlight) {
			return nil, ErrFlightExists
		}
		return nil, err
	}

	s.log.Info("flight added", "flight_id", flight.FlightID)
	return flight, nil
}

// Delete removes exactly one flight by id
func (s *FlightService) Delete(ctx context.Context, flightID string) error {
	if err := s.flights.Delete(ctx, flightID); err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			return ErrFlightNotFound
		}
		return err
	}

	s.log.Info("flight deleted", "flight_id", flightID)
	return nil
}
