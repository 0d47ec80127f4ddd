package luminaires

import (
	"time"

	"github.com/smartcitysecure/smartcity-api/pkg/db/models"
	"github.com/smartcitysecure/smartcity-api/pkg/enums"
	"github.com/smartcitysecure/smartcity-api/pkg/types"
)

// CreateLuminaireRequest is the body of POST /luminarias/. IDSensor is kept
// as sent; no sensor lookup happens.
type CreateLuminaireRequest struct {
	IDSensor            string               `json:"id_sensor" validate:"required"`
	Estado              enums.LuminaireState `json:"estado" validate:"required,enum"`
	ConsumoActual       *float64             `json:"consumo_actual" validate:"required"`
	UltimaActualizacion *types.Timestamp     `json:"ultima_actualizacion"`
}

type LuminaireDTO struct {
	ID                  string               `json:"id_luminaria"`
	IDSensor            string               `json:"id_sensor"`
	Estado              enums.LuminaireState `json:"estado"`
	ConsumoActual       float64              `json:"consumo_actual"`
	UltimaActualizacion time.Time            `json:"ultima_actualizacion"`
}

func (r CreateLuminaireRequest) ToModel(now time.Time) models.Luminaire {
	return models.Luminaire{
		IDSensor:            r.IDSensor,
		Estado:              r.Estado,
		ConsumoActual:       *r.ConsumoActual,
		UltimaActualizacion: types.DefaultTimestamp(r.UltimaActualizacion, now),
	}
}

func FromModel(l *models.Luminaire) LuminaireDTO {
	return LuminaireDTO{
		ID:                  l.ID.Hex(),
		IDSensor:            l.IDSensor,
		Estado:              l.Estado,
		ConsumoActual:       l.ConsumoActual,
		UltimaActualizacion: l.UltimaActualizacion,
	}
}
