package controllers

import (
	"net/http"

	"github.com/smartcitysecure/smartcity-api/api/responses"
	"github.com/smartcitysecure/smartcity-api/api/validators"
	"github.com/smartcitysecure/smartcity-api/internal/auth"
	pkgerrors "github.com/smartcitysecure/smartcity-api/pkg/errors"
	"github.com/smartcitysecure/smartcity-api/pkg/logger"
)

// AuthLogin wires the login endpoint into the HTTP layer.
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithField(r.Context(), logger.FieldUserID, result.IDUsuario), "auth.login.success")
		}
		responses.WriteSuccess(w, result)
	}
}
