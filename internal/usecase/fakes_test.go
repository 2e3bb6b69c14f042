package usecase

import (
	"context"

	"flights-service/internal/domain/entity"
	"flights-service/internal/domain/repository"
	"flights-service/pkg/logger"
)

func testLogger() logger.Logger {
	return logger.NewLogger("error")
}

func strPtr(s string) *string { return &s }

// fakeFlightRepo is an in-memory FlightRepository.
type fakeFlightRepo struct {
	flights map[string]entity.Flight
}

func newFakeFlightRepo() *fakeFlightRepo {
	return &fakeFlightRepo{flights: map[string]entity.Flight{}}
}

func (f *fakeFlightRepo) GetByID(_ context.Context, flightID string) (*entity.Flight, error) {
	flight, ok := f.flights[flightID]
	if !ok {
		return nil, repository.ErrFlightNotFound
	}
	return &flight, nil
}

func fieldMatches(field *string, want string) bool {
	if want == "" {
		return true
	}
	return field != nil && *field == want
}

func (f *fakeFlightRepo) Search(_ context.Context, filter entity.FlightFilter) ([]entity.Flight, error) {
	var out []entity.Flight
	for _, flight := range f.flights {
		if fieldMatches(flight.AirlineID, filter.Airline) &&
			fieldMatches(flight.Origin, filter.Origin) &&
			fieldMatches(flight.Destination, filter.Destination) &&
			fieldMatches(flight.Weekday, filter.Weekday) {
			out = append(out, flight)
		}
	}
	return out, nil
}

func (f *fakeFlightRepo) Create(_ context.Context, flight *entity.Flight) error {
	if _, ok := f.flights[flight.FlightID]; ok {
		return repository.ErrDuplicateFlight
	}
	f.flights[flight.FlightID] = *flight
	return nil
}

func (f *fakeFlightRepo) Delete(_ context.Context, flightID string) error {
	if _, ok := f.flights[flightID]; !ok {
		return repository.ErrFlightNotFound
	}
	delete(f.flights, flightID)
	return nil
}

func (f *fakeFlightRepo) ReplaceAll(_ context.Context, flights []entity.Flight) error {
	f.flights = map[string]entity.Flight{}
	for _, flight := range flights {
		f.flights[flight.FlightID] = flight
	}
	return nil
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users  map[string]entity.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if _, ok := f.users[user.Username]; ok {
		return repository.ErrDuplicateUsername
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.Username] = *user
	return nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &user, nil
}

func (f *fakeUserRepo) UpdatePasswordHash(_ context.Context, userID uint, hash string) error {
	for username, user := range f.users {
		if user.ID == userID {
			user.PasswordHash = hash
			f.users[username] = user
			return nil
		}
	}
	return repository.ErrUserNotFound
}
