package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"flights-service/internal/domain/entity"
	"flights-service/internal/usecase"

	"github.com/go-chi/chi/v5"
)

// FlightHandler handles HTTP requests for flight records.
type FlightHandler struct {
	service *usecase.FlightService
}

// NewFlightHandler creates a new FlightHandler.
func NewFlightHandler(svc *usecase.FlightService) *FlightHandler {
	return &FlightHandler{service: svc}
}

// HandleGet handles GET /flights/{flight_id} requests.
func (h *FlightHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "flight_id")

	flight, err := h.service.Get(r.Context(), flightID)
	if err != nil {
		if errors.Is(err, usecase.ErrFlightNotFound) {
			writeJSON(w, http.StatusNotFound, detailResponse("Flight not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, detailResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, flight)
}

// HandleSearch handles POST /flights/search requests.
func (h *FlightHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var filter entity.FlightFilter
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil {
		writeJSON(w, http.StatusBadRequest, detailResponse("invalid request body"))
		return
	}

	flights, err := h.service.Search(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, detailResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, flights)
}

// HandleAdd handles POST /flights/add requests.
func (h *FlightHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var flight entity.Flight
	if err := json.NewDecoder(r.Body).Decode(&flight); err != nil {
		writeJSON(w, http.StatusBadRequest, detailResponse("invalid request body"))
		return
	}

	created, err := h.service.Add(r.Context(), &flight)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrFlightIDRequired):
			writeJSON(w, http.StatusBadRequest, detailResponse(err.Error()))
		case errors.Is(err, usecase.ErrFlightExists):
			writeJSON(w, http.StatusBadRequest, detailResponse("Flight with this flight_id already exists"))
		default:
			writeJSON(w, http.StatusInternalServerError, detailResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, created)
}

// HandleDelete handles DELETE /flights/{flight_id} requests.
func (h *FlightHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "flight_id")

	if err := h.service.Delete(r.Context(), flightID); err != nil {
		if errors.Is(err, usecase.ErrFlightNotFound) {
			writeJSON(w, http.StatusNotFound, detailResponse("Flight not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, detailResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, detailResponse(fmt.Sprintf("Flight %s deleted successfully", flightID)))
}
