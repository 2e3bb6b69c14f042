package entity

import (
	"time"
)

// Flight represents a single flight record. Every column except the
// primary key is nullable: an absent value is distinct from zero.
type Flight struct {
	FlightID             string     `gorm:"column:flight_id;primaryKey" json:"flight_id"`
	AirlineID            *string    `gorm:"column:airline_id;index:idx_flights_airline_id" json:"airline_id"`
	Airline              *string    `gorm:"column:airline" json:"airline"`
	AircraftID           *string    `gorm:"column:aircraft_id" json:"aircraft_id"`
	ScheduledDeparture   *time.Time `gorm:"column:scheduled_departure" json:"scheduled_departure"`
	Departure            *time.Time `gorm:"column:departure" json:"departure"`
	DepartureDelay       *float64   `gorm:"column:departure_delay" json:"departure_delay"`
	ScheduledArrival     *time.Time `gorm:"column:scheduled_arrival" json:"scheduled_arrival"`
	Arrival              *time.Time `gorm:"column:arrival" json:"arrival"`
	ArrivalDelay         *float64   `gorm:"column:arrival_delay" json:"arrival_delay"`
	AirTime              *float64   `gorm:"column:air_time" json:"air_time"`
	Distance             *float64   `gorm:"column:distance" json:"distance"`
	Manufacturer         *string    `gorm:"column:manufacturer" json:"manufacturer"`
	Model                *string    `gorm:"column:model" json:"model"`
	Year                 *float64   `gorm:"column:year" json:"year"`
	Engines              *float64   `gorm:"column:engines" json:"engines"`
	Seats                *float64   `gorm:"column:seats" json:"seats"`
	MaxWeightPounds      *string    `gorm:"column:max_weight_pounds" json:"max_weight_pounds"`
	Origin               *string    `gorm:"column:origin;index:idx_flights_origin" json:"origin"`
	NameOrigin           *string    `gorm:"column:name_origin" json:"name_origin"`
	LatitudeOrigin       *float64   `gorm:"column:latitude_origin" json:"latitude_origin"`
	LongitudeOrigin      *float64   `gorm:"column:longitude_origin" json:"longitude_origin"`
	Destination          *string    `gorm:"column:destination;index:idx_flights_destination" json:"destination"`
	NameDestination      *string    `gorm:"column:name_destination" json:"name_destination"`
	LatitudeDestination  *float64   `gorm:"column:latitude_destination" json:"latitude_destination"`
	LongitudeDestination *float64   `gorm:"column:longitude_destination" json:"longitude_destination"`
	Weekday              *string    `gorm:"column:weekday;index:idx_flights_weekday" json:"weekday"`
	Hour                 *int       `gorm:"column:hour" json:"hour"`
	Cancelled            *bool      `gorm:"column:cancelled" json:"cancelled"`
}

// TableName overrides the default table name
func (Flight) TableName() string {
	return "flights"
}

// FlightFilter narrows a search. An empty field imposes no constraint;
// present fields combine as exact-match AND conditions. Airline matches
// the airline_id column (carrier code).
type FlightFilter struct {
	Airline     string `json:"airline"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Weekday     string `json:"weekday"`
}
