package app

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mfortes/eventstay/api"
	"github.com/mfortes/eventstay/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	ticketTypesCacheKey = "ticket_types"
	ticketTypesCacheTTL = 5 * time.Minute
)

// GetTicketTypes serves the catalog through a read-through redis cache.
// Ticket types are immutable reference data, so a short TTL is plenty and
// a cache failure only costs a database round trip.
func (app *Application) GetTicketTypes(w http.ResponseWriter, r *http.Request) {
	cached, err := app.redis.Get(r.Context(), ticketTypesCacheKey).Bytes()
	if err == nil {
		var resp []api.TicketTypeResponse

		if err := json.Unmarshal(cached, &resp); err != nil {
			app.logger.Warn("discarding malformed ticket types cache entry", "error", err)
		} else {
			err = app.writeJSON(w, http.StatusOK, resp, nil)
			if err != nil {
				app.serverErrorResponse(w, r, err)
			}

			return
		}
	} else if !errors.Is(err, redis.Nil) {
		app.logger.Warn("ticket types cache read failed", "error", err)
	}

	ticketTypes, err := app.ticketRepo.GetTicketTypes(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.TicketTypeResponse, 0, len(ticketTypes))
	for _, ticketType := range ticketTypes {
		resp = append(resp, toTicketTypeResponse(ticketType))
	}

	if encoded, err := json.Marshal(resp); err == nil {
		err = app.redis.Set(r.Context(), ticketTypesCacheKey, encoded, ticketTypesCacheTTL).Err()
		if err != nil {
			app.logger.Warn("ticket types cache write failed", "error", err)
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetUserTicket(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	enrollment, err := app.enrollmentRepo.GetByUserId(r.Context(), userId)
	if err != nil {
		app.ticketErrorResponse(w, r, err)
		return
	}

	ticket, err := app.ticketRepo.GetByEnrollmentId(r.Context(), enrollment.ID)
	if err != nil {
		app.ticketErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toTicketResponse(ticket), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var input api.CreateTicketRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)

	ticketType, err := app.ticketRepo.GetTicketTypeById(r.Context(), input.TicketTypeId)
	if err != nil {
		app.ticketErrorResponse(w, r, err)
		return
	}

	enrollment, err := app.enrollmentRepo.GetByUserId(r.Context(), userId)
	if err != nil {
		app.ticketErrorResponse(w, r, err)
		return
	}

	ticket := domain.Ticket{
		TicketTypeID: ticketType.ID,
		EnrollmentID: enrollment.ID,
		Status:       domain.TicketStatusReserved,
		TicketType:   *ticketType,
	}

	err = app.ticketRepo.Create(r.Context(), &ticket)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toTicketResponse(&ticket), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ticketErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func toTicketTypeResponse(ticketType domain.TicketType) api.TicketTypeResponse {
	return api.TicketTypeResponse{
		Id:            ticketType.ID,
		Name:          ticketType.Name,
		Price:         ticketType.Price,
		IsRemote:      ticketType.IsRemote,
		IncludesHotel: ticketType.IncludesHotel,
		CreatedAt:     ticketType.CreatedAt,
		UpdatedAt:     ticketType.UpdatedAt,
	}
}

func toTicketResponse(ticket *domain.Ticket) api.TicketResponse {
	return api.TicketResponse{
		Id:           ticket.ID,
		Status:       string(ticket.Status),
		TicketTypeId: ticket.TicketTypeID,
		EnrollmentId: ticket.EnrollmentID,
		TicketType:   toTicketTypeResponse(ticket.TicketType),
		CreatedAt:    ticket.CreatedAt,
		UpdatedAt:    ticket.UpdatedAt,
	}
}
