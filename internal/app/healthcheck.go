package app

import (
	"net/http"

	"github.com/mfortes/eventstay/api"
)

func (app *Application) Healthcheck(w http.ResponseWriter, r *http.Request) {
	resp := api.HealthResponse{
		Status: "available",
		SystemInfo: api.SystemInfo{
			Environment: app.config.Env,
			Version:     version,
		},
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
