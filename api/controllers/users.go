package controllers

import (
	"net/http"

	"github.com/smartcitysecure/smartcity-api/api/responses"
	"github.com/smartcitysecure/smartcity-api/api/validators"
	"github.com/smartcitysecure/smartcity-api/internal/users"
	pkgerrors "github.com/smartcitysecure/smartcity-api/pkg/errors"
	"github.com/smartcitysecure/smartcity-api/pkg/logger"
)

// UsersCreate handles POST /usuarios/.
func UsersCreate(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		var body users.CreateUserRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithField(r.Context(), logger.FieldUserID, created.ID), "user.created")
		}
		responses.WriteSuccess(w, created)
	}
}

// UsersList handles GET /usuarios/.
func UsersList(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}
