package integration_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PaymentTestSuite struct {
	BaseSuite
}

func TestPaymentSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(PaymentTestSuite))
}

func (s *PaymentTestSuite) TestPaymentFlow() {
	truncateAll(s.T(), s.app.DB)
	s.app.Mailer.Reset()

	userId := insertTestUser(s.T(), s.app.DB)
	enrollmentId := insertEnrollment(s.T(), s.app.DB, userId)
	ticketTypeId := insertTicketType(s.T(), s.app.DB, false, true)
	ticketId := insertTicket(s.T(), s.app.DB, enrollmentId, ticketTypeId, "RESERVED")

	headers := authenticatedHeaders(s.T(), s.app)

	paymentBody := fmt.Sprintf(`{
		"ticketId": %d,
		"cardData": {
			"issuer": %q,
			"number": %q,
			"name": %q,
			"expirationDate": %q,
			"cvv": %q
		}
	}`, ticketId, TestCardIssuer, TestCardNumber, TestCardHolder, TestCardExpiry, TestCardCvv)

	scenarios := []Scenario{
		{
			Name:           "returns 400 without the ticketId query parameter",
			Method:         "GET",
			URL:            "/payments",
			Headers:        headers,
			ExpectedStatus: http.StatusBadRequest,
			ExpectedResponse: `{
				"message": "missing ticketId query parameter"
			}`,
		},
		{
			Name:           "returns 404 for a ticket that does not exist",
			Method:         "GET",
			URL:            "/payments?ticketId=999",
			Headers:        headers,
			ExpectedStatus: http.StatusNotFound,
		},
		{
			Name:             "returns null while the ticket is unpaid",
			Method:           "GET",
			URL:              fmt.Sprintf("/payments?ticketId=%d", ticketId),
			Headers:          headers,
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `null`,
		},
		{
			Name:           "rejects a payment with an expired card",
			Method:         "POST",
			URL:            "/payments/process",
			Headers:        headers,
			Body:           strings.NewReader(strings.Replace(paymentBody, TestCardExpiry, "01/20", 1)),
			ExpectedStatus: http.StatusUnprocessableEntity,
		},
		{
			Name:           "records the payment and marks the ticket as paid",
			Method:         "POST",
			URL:            "/payments/process",
			Headers:        headers,
			Body:           strings.NewReader(paymentBody),
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: fmt.Sprintf(`{
				"id": 1,
				"ticketId": %d,
				"value": %q,
				"cardIssuer": %q,
				"cardLastDigits": %q
			}`, ticketId, TestTicketPrice, TestCardIssuer, TestCardLast4),
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				var status string
				err := app.DB.QueryRow(context.Background(),
					`SELECT status FROM tickets WHERE id = $1`, ticketId).Scan(&status)
				require.NoError(t, err)
				require.Equal(t, "PAID", status)

				require.Eventually(t, func() bool {
					return len(app.Mailer.SentEmails()) == 1
				}, 2*time.Second, 10*time.Millisecond, "expected a confirmation email")

				email := app.Mailer.SentEmails()[0]
				require.Equal(t, TestUserEmail, email.Recipient)
				require.Equal(t, "payment_confirmation.tmpl", email.TemplateFile)
			},
		},
		{
			Name:           "returns the recorded payment",
			Method:         "GET",
			URL:            fmt.Sprintf("/payments?ticketId=%d", ticketId),
			Headers:        headers,
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: fmt.Sprintf(`{
				"id": 1,
				"ticketId": %d,
				"value": %q,
				"cardIssuer": %q,
				"cardLastDigits": %q
			}`, ticketId, TestTicketPrice, TestCardIssuer, TestCardLast4),
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *PaymentTestSuite) TestPaymentOwnership() {
	truncateAll(s.T(), s.app.DB)

	// The ticket belongs to another user's enrollment.
	otherUserId := insertUser(s.T(), s.app.DB, "other@example.com")
	otherEnrollmentId := insertEnrollment(s.T(), s.app.DB, otherUserId)
	ticketTypeId := insertTicketType(s.T(), s.app.DB, false, true)
	ticketId := insertTicket(s.T(), s.app.DB, otherEnrollmentId, ticketTypeId, "RESERVED")

	insertTestUser(s.T(), s.app.DB)
	headers := authenticatedHeaders(s.T(), s.app)

	scenarios := []Scenario{
		{
			Name:           "refuses to show another user's payment",
			Method:         "GET",
			URL:            fmt.Sprintf("/payments?ticketId=%d", ticketId),
			Headers:        headers,
			ExpectedStatus: http.StatusUnauthorized,
			ExpectedResponse: `{
				"message": "user is not associated with ticket"
			}`,
		},
		{
			Name:    "refuses to pay for another user's ticket",
			Method:  "POST",
			URL:     "/payments/process",
			Headers: headers,
			Body: strings.NewReader(fmt.Sprintf(`{
				"ticketId": %d,
				"cardData": {
					"issuer": %q,
					"number": %q,
					"name": %q,
					"expirationDate": %q,
					"cvv": %q
				}
			}`, ticketId, TestCardIssuer, TestCardNumber, TestCardHolder, TestCardExpiry, TestCardCvv)),
			ExpectedStatus: http.StatusUnauthorized,
			ExpectedResponse: `{
				"message": "user is not associated with ticket"
			}`,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}
