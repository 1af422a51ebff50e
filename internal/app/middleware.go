package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mfortes/eventstay/internal/domain"
)

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// requireAuthentication resolves the bearer token to a user id. The token
// must both carry a valid signature and still have a session row; a signed
// token whose session was revoked is rejected.
func (app *Application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Authorization")

		authHeader := r.Header.Get("Authorization")

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		userId, err := app.parseSessionToken(token)
		if err != nil {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		_, err = app.sessionRepo.GetByToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrRecordNotFound):
				app.unauthorizedAccessResponse(w, r)
			default:
				app.serverErrorResponse(w, r, err)
			}

			return
		}

		ctx := context.WithValue(r.Context(), userIdContextKey, userId)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

func (app *Application) parseSessionToken(token string) (int, error) {
	var claims jwt.RegisteredClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(app.config.JWTSecret), nil
	})

	if err != nil || !parsed.Valid {
		return 0, fmt.Errorf("invalid session token: %w", err)
	}

	userId, err := strconv.Atoi(claims.Subject)
	if err != nil || userId < 1 {
		return 0, fmt.Errorf("invalid subject claim: %q", claims.Subject)
	}

	return userId, nil
}
