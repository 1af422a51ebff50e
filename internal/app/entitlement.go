package app

import (
	"context"
	"errors"

	"github.com/mfortes/eventstay/internal/domain"
)

// checkHotelEntitlement walks the chain that gates every hotel and booking
// operation: enrollment, then ticket, then payment status, then ticket type.
// The order is part of the contract; each step short-circuits, so a user
// with no enrollment is reported as such even if they also lack a ticket.
func (app *Application) checkHotelEntitlement(ctx context.Context, userId int) error {
	enrollment, err := app.enrollmentRepo.GetByUserId(ctx, userId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return &domain.PolicyViolationError{Msg: "user must have an enrollment"}
		}

		return err
	}

	ticket, err := app.ticketRepo.GetByEnrollmentId(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return &domain.PolicyViolationError{Msg: "user must have a ticket"}
		}

		return err
	}

	if ticket.Status != domain.TicketStatusPaid {
		return domain.ErrPaymentRequired
	}

	if !ticket.TicketType.IncludesHotel || ticket.TicketType.IsRemote {
		return &domain.PolicyViolationError{Msg: "ticket must include hotel and must not be remote"}
	}

	return nil
}
