package alerts

import (
	"time"

	"github.com/smartcitysecure/smartcity-api/pkg/db/models"
	"github.com/smartcitysecure/smartcity-api/pkg/enums"
	"github.com/smartcitysecure/smartcity-api/pkg/types"
)

// CreateAlertRequest is the body of POST /alertas/. TipoAlerta is free text,
// e.g. "Ciberataque" or "Falla técnica".
type CreateAlertRequest struct {
	TipoAlerta  string           `json:"tipo_alerta" validate:"required"`
	Descripcion string           `json:"descripcion" validate:"required"`
	FechaAlerta *types.Timestamp `json:"fecha_alerta"`
	Estado      enums.AlertState `json:"estado" validate:"required,enum"`
}

type AlertDTO struct {
	ID          string           `json:"id_alerta"`
	TipoAlerta  string           `json:"tipo_alerta"`
	Descripcion string           `json:"descripcion"`
	FechaAlerta time.Time        `json:"fecha_alerta"`
	Estado      enums.AlertState `json:"estado"`
}

func (r CreateAlertRequest) ToModel(now time.Time) models.SecurityAlert {
	return models.SecurityAlert{
		TipoAlerta:  r.TipoAlerta,
		Descripcion: r.Descripcion,
		FechaAlerta: types.DefaultTimestamp(r.FechaAlerta, now),
		Estado:      r.Estado,
	}
}

func FromModel(a *models.SecurityAlert) AlertDTO {
	return AlertDTO{
		ID:          a.ID.Hex(),
		TipoAlerta:  a.TipoAlerta,
		Descripcion: a.Descripcion,
		FechaAlerta: a.FechaAlerta,
		Estado:      a.Estado,
	}
}
