package controllers

import (
	"net/http"
	"time"

	"github.com/smartcitysecure/smartcity-api/api/responses"
)

// Root answers GET / with the project banner existing clients poll.
func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{
			"Proyecto": "SmartCity Secure",
			"Status":   "Online 🟢",
		})
	}
}

// Ping is the keep-alive endpoint hit by the hosting platform's uptime checks.
func Ping() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}
