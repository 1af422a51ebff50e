package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
	"updatedAt": {},
	"token":     {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	// ignore indeterministic fields while comparing
	actual = cleanValue(actual)

	var expected any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, nested := range val {
			if _, ok := keysToIgnore[k]; ok {
				delete(val, k)
				continue
			}
			val[k] = cleanValue(nested)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = cleanValue(item)
		}
		return val
	default:
		return v
	}
}

func truncateAll(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(),
		`TRUNCATE users, sessions, enrollments, ticket_types, tickets, payments, hotels, rooms, bookings RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func resetTickets(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), `DELETE FROM tickets`)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(), `DELETE FROM ticket_types`)
	require.NoError(t, err)
}

func insertTestUser(t testing.TB, db *pgxpool.Pool) int {
	return insertUser(t, db, TestUserEmail)
}

func insertUser(t testing.TB, db *pgxpool.Pool, email string) int {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestUserPassword), 4)
	require.NoError(t, err)

	var id int
	err = db.QueryRow(context.Background(),
		`INSERT INTO users (email, password) VALUES ($1, $2) RETURNING id`,
		email, hash).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertEnrollment(t testing.TB, db *pgxpool.Pool, userId int) int {
	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO enrollments (user_id, name, document, birthday, phone)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		userId, TestEnrollmentName, TestEnrollmentDocument, TestEnrollmentBirthday, TestEnrollmentPhone).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertTicketType(t testing.TB, db *pgxpool.Pool, isRemote, includesHotel bool) int {
	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO ticket_types (name, price, is_remote, includes_hotel)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		TestTicketName, TestTicketPrice, isRemote, includesHotel).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertTicket(t testing.TB, db *pgxpool.Pool, enrollmentId, ticketTypeId int, status string) int {
	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO tickets (ticket_type_id, enrollment_id, status)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		ticketTypeId, enrollmentId, status).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertHotel(t testing.TB, db *pgxpool.Pool) int {
	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO hotels (name, image) VALUES ($1, $2) RETURNING id`,
		TestHotelName, TestHotelImage).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertRoom(t testing.TB, db *pgxpool.Pool, hotelId, capacity int) int {
	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO rooms (name, capacity, hotel_id) VALUES ($1, $2, $3) RETURNING id`,
		fmt.Sprintf("Room %d", capacity), capacity, hotelId).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertBooking(t testing.TB, db *pgxpool.Pool, userId, roomId int) int {
	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO bookings (user_id, room_id) VALUES ($1, $2) RETURNING id`,
		userId, roomId).Scan(&id)
	require.NoError(t, err)

	return id
}

func deleteBooking(t testing.TB, db *pgxpool.Pool, bookingId int) {
	_, err := db.Exec(context.Background(), `DELETE FROM bookings WHERE id = $1`, bookingId)
	require.NoError(t, err)
}

// seedEntitledUser creates a user who passes the hotel entitlement chain:
// enrolled, ticketed, paid, in-person with hotel.
func seedEntitledUser(t testing.TB, db *pgxpool.Pool) (userId, enrollmentId, ticketId int) {
	userId = insertTestUser(t, db)
	enrollmentId = insertEnrollment(t, db, userId)
	ticketTypeId := insertTicketType(t, db, false, true)
	ticketId = insertTicket(t, db, enrollmentId, ticketTypeId, "PAID")

	return userId, enrollmentId, ticketId
}

// authenticatedHeaders signs in through the API and returns the bearer
// token header the authenticated routes expect.
func authenticatedHeaders(t testing.TB, testApp *TestApp) map[string]string {
	body := strings.NewReader(fmt.Sprintf(`{"email": %q, "password": %q}`, TestUserEmail, TestUserPassword))

	req := httptest.NewRequest(http.MethodPost, "/auth/sign-in", body)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	testApp.App.Routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, "sign-in failed: %s", rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	return map[string]string{"Authorization": "Bearer " + resp.Token}
}
