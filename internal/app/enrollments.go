package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/mfortes/eventstay/api"
	"github.com/mfortes/eventstay/internal/domain"
)

const birthdayLayout = "2006-01-02"

func (app *Application) GetEnrollment(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	enrollment, err := app.enrollmentRepo.GetByUserId(r.Context(), userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toEnrollmentResponse(enrollment), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpsertEnrollment(w http.ResponseWriter, r *http.Request) {
	var input api.EnrollmentRequest

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

	// The validator already guarantees the layout.
	birthday, err := time.Parse(birthdayLayout, input.Birthday)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	enrollment := domain.Enrollment{
		UserID:   app.contextGetUserId(r),
		Name:     input.Name,
		Document: input.Document,
		Birthday: birthday,
		Phone:    input.Phone,
	}

	err = app.enrollmentRepo.Upsert(r.Context(), &enrollment)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toEnrollmentResponse(&enrollment), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toEnrollmentResponse(enrollment *domain.Enrollment) api.EnrollmentResponse {
	return api.EnrollmentResponse{
		Id:       enrollment.ID,
		Name:     enrollment.Name,
		Document: enrollment.Document,
		Birthday: enrollment.Birthday.Format(birthdayLayout),
		Phone:    enrollment.Phone,
	}
}
