package controllers

import (
	"context"
	"net/http"

	"github.com/smartcitysecure/smartcity-api/api/responses"
	"github.com/smartcitysecure/smartcity-api/api/validators"
	"github.com/smartcitysecure/smartcity-api/internal/alerts"
	"github.com/smartcitysecure/smartcity-api/internal/energy"
	"github.com/smartcitysecure/smartcity-api/internal/luminaires"
	"github.com/smartcitysecure/smartcity-api/internal/postes"
	"github.com/smartcitysecure/smartcity-api/internal/sensors"
	pkgerrors "github.com/smartcitysecure/smartcity-api/pkg/errors"
	"github.com/smartcitysecure/smartcity-api/pkg/logger"
)

// recordService is the create/list pair every record collection exposes.
type recordService[Req, Resp any] interface {
	Create(ctx context.Context, req Req) (*Resp, error)
	List(ctx context.Context) ([]Resp, error)
}

func createRecord[Req, Resp any](svc recordService[Req, Resp], name string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, name+" service unavailable"))
			return
		}

		var body Req
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, created)
	}
}

func listRecords[Req, Resp any](svc recordService[Req, Resp], name string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, name+" service unavailable"))
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

func SensorsCreate(svc sensors.Service, logg *logger.Logger) http.HandlerFunc {
	return createRecord[sensors.CreateSensorRequest, sensors.SensorDTO](svc, "sensors", logg)
}

func SensorsList(svc sensors.Service, logg *logger.Logger) http.HandlerFunc {
	return listRecords[sensors.CreateSensorRequest, sensors.SensorDTO](svc, "sensors", logg)
}

func LuminairesCreate(svc luminaires.Service, logg *logger.Logger) http.HandlerFunc {
	return createRecord[luminaires.CreateLuminaireRequest, luminaires.LuminaireDTO](svc, "luminaires", logg)
}

func LuminairesList(svc luminaires.Service, logg *logger.Logger) http.HandlerFunc {
	return listRecords[luminaires.CreateLuminaireRequest, luminaires.LuminaireDTO](svc, "luminaires", logg)
}

func EnergyCreate(svc energy.Service, logg *logger.Logger) http.HandlerFunc {
	return createRecord[energy.CreateRecordRequest, energy.RecordDTO](svc, "energy", logg)
}

func EnergyList(svc energy.Service, logg *logger.Logger) http.HandlerFunc {
	return listRecords[energy.CreateRecordRequest, energy.RecordDTO](svc, "energy", logg)
}

func AlertsCreate(svc alerts.Service, logg *logger.Logger) http.HandlerFunc {
	return createRecord[alerts.CreateAlertRequest, alerts.AlertDTO](svc, "alerts", logg)
}

func AlertsList(svc alerts.Service, logg *logger.Logger) http.HandlerFunc {
	return listRecords[alerts.CreateAlertRequest, alerts.AlertDTO](svc, "alerts", logg)
}

func PostesCreate(svc postes.Service, logg *logger.Logger) http.HandlerFunc {
	return createRecord[postes.CreatePosteRequest, postes.PosteDTO](svc, "postes", logg)
}

func PostesList(svc postes.Service, logg *logger.Logger) http.HandlerFunc {
	return listRecords[postes.CreatePosteRequest, postes.PosteDTO](svc, "postes", logg)
}
