package rest

import (
	"context"
	"time"

	"flights-service/internal/domain/entity"
	"flights-service/internal/domain/repository"
	"flights-service/internal/usecase"
	"flights-service/pkg/logger"
	"flights-service/pkg/metrics"

	"github.com/go-chi/chi/v5"
)

const testJWTSecret = "test-secret"

// Shared across the package's tests: promauto registers collectors in
// the default registry, which tolerates only one registration.
var testMetrics = metrics.NewMetrics("flights_test")

func strPtr(s string) *string { return &s }

// In-memory FlightRepository.
type memFlightRepo struct {
	flights map[string]entity.Flight
}

func newMemFlightRepo() *memFlightRepo {
	return &memFlightRepo{flights: map[string]entity.Flight{}}
}

func (m *memFlightRepo) GetByID(_ context.Context, id string) (*entity.Flight, error) {
	f, ok := m.flights[id]
	if !ok {
		return nil, repository.ErrFlightNotFound
	}
	return &f, nil
}

func matches(field *string, want string) bool {
	return want == "" || (field != nil && *field == want)
}

func (m *memFlightRepo) Search(_ context.Context, filter entity.FlightFilter) ([]entity.Flight, error) {
	var out []entity.Flight
	for _, f := range m.flights {
		if matches(f.AirlineID, filter.Airline) && matches(f.Origin, filter.Origin) &&
			matches(f.Destination, filter.Destination) && matches(f.Weekday, filter.Weekday) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memFlightRepo) Create(_ context.Context, f *entity.Flight) error {
	if _, ok := m.flights[f.FlightID]; ok {
		return repository.ErrDuplicateFlight
	}
	m.flights[f.FlightID] = *f
	return nil
}

func (m *memFlightRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.flights[id]; !ok {
		return repository.ErrFlightNotFound
	}
	delete(m.flights, id)
	return nil
}

func (m *memFlightRepo) ReplaceAll(_ context.Context, flights []entity.Flight) error {
	m.flights = map[string]entity.Flight{}
	for _, f := range flights {
		m.flights[f.FlightID] = f
	}
	return nil
}

// In-memory UserRepository.
type memUserRepo struct {
	users  map[string]entity.User
	nextID uint
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]entity.User{}}
}

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := m.users[u.Username]; ok {
		return repository.ErrDuplicateUsername
	}
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	m.nextID++
	u.ID = m.nextID
	m.users[u.Username] = *u
	return nil
}

func (m *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	u, ok := m.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

func (m *memUserRepo) UpdatePasswordHash(_ context.Context, userID uint, hash string) error {
	for username, u := range m.users {
		if u.ID == userID {
			u.PasswordHash = hash
			m.users[username] = u
			return nil
		}
	}
	return repository.ErrUserNotFound
}

// newTestRouter assembles the full route table over in-memory stores.
func newTestRouter() (chi.Router, *memFlightRepo, *memUserRepo) {
	log := logger.NewLogger("error")
	flightRepo := newMemFlightRepo()
	userRepo := newMemUserRepo()

	authService := usecase.NewAuthService(userRepo, testJWTSecret, 300*time.Minute, "@flughafenabc", "FlughafenABC", log)
	flightService := usecase.NewFlightService(flightRepo, log)

	authHandler := NewAuthHandler(authService, testMetrics)
	flightHandler := NewFlightHandler(flightService)

	return NewRouter(authHandler, flightHandler, testJWTSecret, log, testMetrics), flightRepo, userRepo
}
