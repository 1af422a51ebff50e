package app

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/mfortes/eventstay/api"
	"github.com/mfortes/eventstay/internal/domain"
)

func (app *Application) GetPayment(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	ticketIdParam := r.URL.Query().Get("ticketId")
	if ticketIdParam == "" {
		app.badRequestResponse(w, r, errors.New("missing ticketId query parameter"))
		return
	}

	ticketId, err := strconv.Atoi(ticketIdParam)
	if err != nil || ticketId < 1 {
		app.badRequestResponse(w, r, &domain.ValidationError{Field: "ticketId", Msg: "must be a positive number"})
		return
	}

	ticket, err := app.ticketRepo.GetById(r.Context(), ticketId)
	if err != nil {
		app.paymentErrorResponse(w, r, err)
		return
	}

	err = app.checkTicketOwnership(r.Context(), userId, ticket.EnrollmentID)
	if err != nil {
		app.paymentErrorResponse(w, r, err)
		return
	}

	payment, err := app.paymentRepo.GetByTicketId(r.Context(), ticketId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// A reserved ticket has no payment yet; that is a valid empty result.
	if payment == nil {
		err = app.writeJSON(w, http.StatusOK, nil, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toPaymentResponse(payment), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var input api.CreatePaymentRequest

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

	ticket, err := app.ticketRepo.GetById(r.Context(), input.TicketId)
	if err != nil {
		app.paymentErrorResponse(w, r, err)
		return
	}

	ticketType, err := app.ticketRepo.GetTicketTypeById(r.Context(), ticket.TicketTypeID)
	if err != nil {
		app.paymentErrorResponse(w, r, err)
		return
	}

	err = app.checkTicketOwnership(r.Context(), userId, ticket.EnrollmentID)
	if err != nil {
		app.paymentErrorResponse(w, r, err)
		return
	}

	cardNumber := input.CardData.Number

	payment := domain.Payment{
		TicketID:       ticket.ID,
		Value:          ticketType.Price,
		CardIssuer:     input.CardData.Issuer,
		CardLastDigits: cardNumber[len(cardNumber)-4:],
	}

	// One transaction: the payment row and the PAID status land together.
	err = app.paymentRepo.Create(r.Context(), &payment)
	if err != nil {
		app.paymentErrorResponse(w, r, err)
		return
	}

	app.sendPaymentConfirmation(r, userId, &payment)

	err = app.writeJSON(w, http.StatusOK, toPaymentResponse(&payment), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// sendPaymentConfirmation emails the payer without blocking the response.
func (app *Application) sendPaymentConfirmation(r *http.Request, userId int, payment *domain.Payment) {
	user, err := app.userRepo.GetById(r.Context(), userId)
	if err != nil {
		app.logger.Error("failed to load payer for confirmation email", "error", err, "user_id", userId)
		return
	}

	go func() {
		defer func() {
			if err := recover(); err != nil {
				app.logger.Error("panic occurred during sending payment confirmation", "panic", err)
			}
		}()

		data := map[string]any{
			"ticketId": payment.TicketID,
			"amount":   payment.Value.StringFixed(2),
		}

		err := app.mailer.Send(user.Email, "payment_confirmation.tmpl", data)
		if err != nil {
			app.logger.Error("failed to send payment confirmation", "error", err)
		}
	}()
}

// checkTicketOwnership verifies that the ticket's enrollment belongs to the
// requesting user. Failure is a policy violation rather than a not-found,
// so probing other users' ticket ids does not reveal which ones exist.
func (app *Application) checkTicketOwnership(ctx context.Context, userId, enrollmentId int) error {
	enrollment, err := app.enrollmentRepo.GetByUserId(ctx, userId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return &domain.PolicyViolationError{Msg: "user is not associated with ticket"}
		}

		return err
	}

	if enrollment.ID != enrollmentId {
		return &domain.PolicyViolationError{Msg: "user is not associated with ticket"}
	}

	return nil
}

// paymentErrorResponse maps failures for the payment routes: missing records
// are 404, ownership violations are 401.
func (app *Application) paymentErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var policyErr *domain.PolicyViolationError

	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	case errors.As(err, &policyErr):
		app.notOwnerResponse(w, r, err)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func toPaymentResponse(payment *domain.Payment) api.PaymentResponse {
	return api.PaymentResponse{
		Id:             payment.ID,
		TicketId:       payment.TicketID,
		Value:          payment.Value,
		CardIssuer:     payment.CardIssuer,
		CardLastDigits: payment.CardLastDigits,
		CreatedAt:      payment.CreatedAt,
		UpdatedAt:      payment.UpdatedAt,
	}
}
