package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/mfortes/eventstay/api"
	"github.com/mfortes/eventstay/internal/domain"
)

func (app *Application) GetBooking(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	err := app.checkHotelEntitlement(r.Context(), userId)
	if err != nil {
		app.hotelErrorResponse(w, r, err)
		return
	}

	booking, err := app.bookingRepo.GetByUserId(r.Context(), userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.BookingResponse{
		Id:   booking.ID,
		Room: toRoomResponse(booking.Room),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var input api.CreateBookingRequest

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

	err = app.checkHotelEntitlement(r.Context(), userId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	err = app.checkRoom(r.Context(), input.RoomId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	booking := domain.Booking{
		UserID: userId,
		RoomID: input.RoomId,
	}

	// The repository re-checks capacity under a room lock, so losing a race
	// after the check above surfaces as ErrRoomFull instead of overbooking.
	err = app.bookingRepo.Create(r.Context(), &booking)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.BookingIdResponse{BookingId: booking.ID}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	var input api.CreateBookingRequest

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

	err = app.checkHotelEntitlement(r.Context(), userId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	bookingId, err := readIDParam(r, "bookingId")
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	booking, err := app.bookingRepo.GetById(r.Context(), bookingId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			// Deliberately the same outcome as not owning the booking.
			app.bookingErrorResponse(w, r, &domain.PolicyViolationError{Msg: "user does not have this booking"})
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if booking.UserID != userId {
		app.bookingErrorResponse(w, r, &domain.PolicyViolationError{Msg: "user does not have this booking"})
		return
	}

	err = app.checkRoom(r.Context(), input.RoomId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	err = app.bookingRepo.UpdateRoom(r.Context(), booking.ID, input.RoomId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.BookingIdResponse{BookingId: booking.ID}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// checkRoom verifies the target room exists and still has a free spot.
func (app *Application) checkRoom(ctx context.Context, roomId int) error {
	room, err := app.roomRepo.GetWithBookings(ctx, roomId)
	if err != nil {
		return err
	}

	if len(room.Bookings) >= room.Capacity {
		return domain.ErrRoomFull
	}

	return nil
}

// bookingErrorResponse maps failures for the booking write routes: anything
// a rule rejects is 403, a missing room is 404.
func (app *Application) bookingErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var policyErr *domain.PolicyViolationError
	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrRoomFull):
		app.forbiddenResponse(w, r, err)
	case errors.Is(err, domain.ErrPaymentRequired):
		app.forbiddenResponse(w, r, err)
	case errors.As(err, &policyErr), errors.As(err, &validationErr):
		app.forbiddenResponse(w, r, err)
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	default:
		app.serverErrorResponse(w, r, err)
	}
}
