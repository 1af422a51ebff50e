package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID             int
	TicketID       int
	Value          decimal.Decimal
	CardIssuer     string
	CardLastDigits string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PaymentRepository interface {
	// GetByTicketId returns (nil, nil) when the ticket has no payment yet.
	// A reserved-but-unpaid ticket is a legal state, not a lookup failure.
	GetByTicketId(ctx context.Context, ticketId int) (*Payment, error)

	// Create records the payment and flips the ticket to PAID in a single
	// transaction, so a crash can never leave a paid-for ticket RESERVED.
	Create(ctx context.Context, payment *Payment) error
}
