package sensors

import (
	"time"

	"github.com/smartcitysecure/smartcity-api/pkg/db/models"
	"github.com/smartcitysecure/smartcity-api/pkg/enums"
	"github.com/smartcitysecure/smartcity-api/pkg/types"
)

// CreateSensorRequest is the body of POST /sensores/.
type CreateSensorRequest struct {
	Ubicacion     string            `json:"ubicacion" validate:"required"`
	Estado        enums.SensorState `json:"estado" validate:"required,enum"`
	NivelLuz      *float64          `json:"nivel_luz" validate:"required"`
	FechaRegistro *types.Timestamp  `json:"fecha_registro"`
}

type SensorDTO struct {
	ID            string            `json:"id_sensor"`
	Ubicacion     string            `json:"ubicacion"`
	Estado        enums.SensorState `json:"estado"`
	NivelLuz      float64           `json:"nivel_luz"`
	FechaRegistro time.Time         `json:"fecha_registro"`
}

// ToModel builds the document to insert; a missing registration time becomes now.
func (r CreateSensorRequest) ToModel(now time.Time) models.Sensor {
	return models.Sensor{
		Ubicacion:     r.Ubicacion,
		Estado:        r.Estado,
		NivelLuz:      *r.NivelLuz,
		FechaRegistro: types.DefaultTimestamp(r.FechaRegistro, now),
	}
}

func FromModel(s *models.Sensor) SensorDTO {
	return SensorDTO{
		ID:            s.ID.Hex(),
		Ubicacion:     s.Ubicacion,
		Estado:        s.Estado,
		NivelLuz:      s.NivelLuz,
		FechaRegistro: s.FechaRegistro,
	}
}
