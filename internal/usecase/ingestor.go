package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"flights-service/internal/domain/entity"
	"flights-service/internal/domain/repository"
	"flights-service/pkg/logger"
	"flights-service/pkg/utils"
)

// ErrMissingFlightColumn means the snapshot has no base flight code
// column to derive record identities from.
var ErrMissingFlightColumn = errors.New("snapshot is missing the flight column")

// Ingestor loads a CSV snapshot into the flight table, replacing
// whatever is there. Identity is derived per row by concatenating the
// base flight code with the 1-based row counter, so reloading the same
// snapshot produces the same ids.
type Ingestor struct {
	flights repository.FlightRepository
	log     logger.Logger
}

// NewIngestor creates a new ingestor
func NewIngestor(flights repository.FlightRepository, log logger.Logger) *Ingestor {
	return &Ingestor{
		flights: flights,
		log:     log,
	}
}

// LoadCSV parses the snapshot and overwrites the flight table in one
// transaction. Returns the number of rows loaded.
func (ing *Ingestor) LoadCSV(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("reading header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	if _, ok := col["flight"]; !ok {
		return 0, ErrMissingFlightColumn
	}

	cell := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	var flights []entity.Flight
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("reading row %d: %w", rowNum+1, err)
		}
		rowNum++

		flights = append(flights, entity.Flight{
			FlightID:             cell(row, "flight") + strconv.Itoa(rowNum),
			AirlineID:            utils.OptionalString(cell(row, "airline_id")),
			Airline:              utils.OptionalString(cell(row, "airline")),
			AircraftID:           utils.OptionalString(cell(row, "aircraft_id")),
			ScheduledDeparture:   utils.OptionalTime(cell(row, "scheduled_departure")),
			Departure:            utils.OptionalTime(cell(row, "departure")),
			DepartureDelay:       utils.OptionalFloat(cell(row, "departure_delay")),
			ScheduledArrival:     utils.OptionalTime(cell(row, "scheduled_arrival")),
			Arrival:              utils.OptionalTime(cell(row, "arrival")),
			ArrivalDelay:         utils.OptionalFloat(cell(row, "arrival_delay")),
			AirTime:              utils.OptionalFloat(cell(row, "air_time")),
			Distance:             utils.OptionalFloat(cell(row, "distance")),
			Manufacturer:         utils.OptionalString(cell(row, "manufacturer")),
			Model:                utils.OptionalString(cell(row, "model")),
			Year:                 utils.OptionalFloat(cell(row, "year")),
			Engines:              utils.OptionalFloat(cell(row, "engines")),
			Seats:                utils.OptionalFloat(cell(row, "seats")),
			MaxWeightPounds:      utils.OptionalString(cell(row, "max_weight_pounds")),
			Origin:               utils.OptionalString(cell(row, "origin")),
			NameOrigin:           utils.OptionalString(cell(row, "name_origin")),
			LatitudeOrigin:       utils.OptionalFloat(cell(row, "latitude_origin")),
			LongitudeOrigin:      utils.OptionalFloat(cell(row, "longitude_origin")),
			Destination:          utils.OptionalString(cell(row, "destination")),
			NameDestination:      utils.OptionalString(cell(row, "name_destination")),
			LatitudeDestination:  utils.OptionalFloat(cell(row, "latitude_destination")),
			LongitudeDestination: utils.OptionalFloat(cell(row, "longitude_destination")),
			Weekday:              utils.OptionalString(cell(row, "weekday")),
			Hour:                 utils.OptionalInt(cell(row, "hour")),
			Cancelled:            utils.OptionalBool(cell(row, "cancelled")),
		})
	}

	if err := ing.flights.ReplaceAll(ctx, flights); err != nil {
		return 0, err
	}

	ing.log.Info("snapshot loaded", "rows", len(flights))
	return len(flights), nil
}
