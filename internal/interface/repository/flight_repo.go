package repository

import (
	"context"
	"errors"

	"flights-service/internal/domain/entity"
	"flights-service/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// insertBatchSize bounds the parameter count per INSERT during bulk loads.
const insertBatchSize = 500

// GormFlightRepository implements FlightRepository on PostgreSQL
type GormFlightRepository struct {
	db *gorm.DB
}

// NewGormFlightRepository creates a new GORM flight repository
func NewGormFlightRepository(db *gorm.DB) repository.FlightRepository {
	return &GormFlightRepository{
		db: db,
	}
}

// GetByID finds a flight by its primary key
func (r *GormFlightRepository) GetByID(ctx context.Context, flightID string) (*entity.Flight, error) {
	var flight entity.Flight
	result := r.db.WithContext(ctx).Where("flight_id = ?", flightID).First(&flight)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFlightNotFound
		}
		return nil, result.Error
	}

	return &flight, nil
}

// Search returns every flight matching the filter. Absent filter fields
// impose no constraint; present fields are exact-match AND conditions.
func (r *GormFlightRepository) Search(ctx context.Context, filter entity.FlightFilter) ([]entity.Flight, error) {
	q := r.db.WithContext(ctx).Model(&entity.Flight{})

	if filter.Airline != "" {
		q = q.Where("airline_id = ?", filter.Airline)
	}
	if filter.Origin != "" {
		q = q.Where("origin = ?", filter.Origin)
	}
	if filter.Destination != "" {
		q = q.Where("destination = ?", filter.Destination)
	}
	if filter.Weekday != "" {
		q = q.Where("weekday = ?", filter.Weekday)
	}

	flights := []entity.Flight{}
	if err := q.Find(&flights).Error; err != nil {
		return nil, err
	}
	return flights, nil
}

// Create inserts a new flight. A unique violation on the primary key is
// mapped to ErrDuplicateFlight so concurrent adds for the same id lose
// cleanly at the database rather than in application code.
func (r *GormFlightRepository) Create(ctx context.Context, flight *entity.Flight) error {
	result := r.db.WithContext(ctx).Create(flight)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return repository.ErrDuplicateFlight
		}
		return result.Error
	}
	return nil
}

// Delete removes exactly one flight by id
func (r *GormFlightRepository) Delete(ctx context.Context, flightID string) error {
	result := r.db.WithContext(ctx).Where("flight_id = ?", flightID).Delete(&entity.Flight{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrFlightNotFound
	}
	return nil
}

// ReplaceAll overwrites the whole table inside one transaction. Either
// the full snapshot lands or nothing changes.
func (r *GormFlightRepository) ReplaceAll(ctx context.Context, flights []entity.Flight) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM flights").Error; err != nil {
			return err
		}
		if len(flights) == 0 {
			return nil
		}
		return tx.CreateInBatches(flights, insertBatchSize).Error
	})
}

// isUniqueViolation checks for PostgreSQL error 23505 (unique_violation)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
