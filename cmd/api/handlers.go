package main

import (
	"net/http"
)

func (app *Application) healthcheck(w http.ResponseWriter, r *http.Request) {
	app.Http.Ok(w, r, struct {
		Status  string `json:"status"`
		Debug   bool   `json:"debug"`
		Storage string `json:"storage"`
		Version string `json:"version"`
	}{
		Status:  "available",
		Debug:   app.cfg.Debug,
		Storage: app.cfg.Storage,
		Version: version,
	})
}
