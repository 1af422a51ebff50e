package app

import (
	"errors"
	"net/http"

	"github.com/mfortes/eventstay/api"
	"github.com/mfortes/eventstay/internal/domain"
)

func (app *Application) GetHotels(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	err := app.checkHotelEntitlement(r.Context(), userId)
	if err != nil {
		app.hotelErrorResponse(w, r, err)
		return
	}

	hotels, err := app.hotelRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		resp = append(resp, api.HotelResponse{
			Id:        hotel.ID,
			Name:      hotel.Name,
			Image:     hotel.Image,
			CreatedAt: hotel.CreatedAt,
			UpdatedAt: hotel.UpdatedAt,
		})
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetHotelRooms(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	err := app.checkHotelEntitlement(r.Context(), userId)
	if err != nil {
		app.hotelErrorResponse(w, r, err)
		return
	}

	hotelId, err := readIDParam(r, "hotelId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// An unknown hotel id counts as bad input here, not as a missing
	// resource. Only an existing hotel with zero rooms is a 404.
	_, err = app.hotelRepo.GetById(r.Context(), hotelId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.badRequestResponse(w, r, errors.New("hotel does not exist"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	rooms, err := app.roomRepo.GetByHotelId(r.Context(), hotelId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if len(rooms) == 0 {
		app.notFoundResponse(w, r)
		return
	}

	resp := make([]api.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		resp = append(resp, toRoomResponse(room))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// hotelErrorResponse maps entitlement failures for the hotel routes:
// unpaid tickets are 402, everything the policy rejects is 400.
func (app *Application) hotelErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var policyErr *domain.PolicyViolationError
	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrPaymentRequired):
		app.paymentRequiredResponse(w, r, err)
	case errors.As(err, &policyErr), errors.As(err, &validationErr):
		app.badRequestResponse(w, r, err)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func toRoomResponse(room domain.Room) api.RoomResponse {
	return api.RoomResponse{
		Id:          room.ID,
		Name:        room.Name,
		Capacity:    room.Capacity,
		HotelId:     room.HotelID,
		BookedCount: len(room.Bookings),
		CreatedAt:   room.CreatedAt,
		UpdatedAt:   room.UpdatedAt,
	}
}
