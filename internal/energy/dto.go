package energy

import (
	"time"

	"github.com/smartcitysecure/smartcity-api/pkg/db/models"
	"github.com/smartcitysecure/smartcity-api/pkg/enums"
	"github.com/smartcitysecure/smartcity-api/pkg/types"
)

// CreateRecordRequest is the body of POST /consumo/.
type CreateRecordRequest struct {
	IDLuminaria      string           `json:"id_luminaria" validate:"required"`
	EnergiaConsumida *float64         `json:"energia_consumida" validate:"required"`
	FechaMedicion    *types.Timestamp `json:"fecha_medicion"`
	Alerta           enums.AlertFlag  `json:"alerta" validate:"required,enum"`
}

type RecordDTO struct {
	ID               string          `json:"id_consumo"`
	IDLuminaria      string          `json:"id_luminaria"`
	EnergiaConsumida float64         `json:"energia_consumida"`
	FechaMedicion    time.Time       `json:"fecha_medicion"`
	Alerta           enums.AlertFlag `json:"alerta"`
}

func (r CreateRecordRequest) ToModel(now time.Time) models.EnergyRecord {
	return models.EnergyRecord{
		IDLuminaria:      r.IDLuminaria,
		EnergiaConsumida: *r.EnergiaConsumida,
		FechaMedicion:    types.DefaultTimestamp(r.FechaMedicion, now),
		Alerta:           r.Alerta,
	}
}

func FromModel(e *models.EnergyRecord) RecordDTO {
	return RecordDTO{
		ID:               e.ID.Hex(),
		IDLuminaria:      e.IDLuminaria,
		EnergiaConsumida: e.EnergiaConsumida,
		FechaMedicion:    e.FechaMedicion,
		Alerta:           e.Alerta,
	}
}
