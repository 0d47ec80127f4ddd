package postes

import (
	"github.com/smartcitysecure/smartcity-api/pkg/db/models"
	"github.com/smartcitysecure/smartcity-api/pkg/types"
)

// CoordinatesRequest is an optional {lat, lng} pair; both halves are required
// once the object is present.
type CoordinatesRequest struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
}

// CreatePosteRequest is the body of POST /postes/. Fecha is stored verbatim.
type CreatePosteRequest struct {
	LampID         string              `json:"lamp_id" validate:"required"`
	Zona           *int                `json:"zona" validate:"required"`
	TipoLampara    string              `json:"tipo_lampara" validate:"required"`
	ConsumoKWh     *float64            `json:"consumo_kwh" validate:"required"`
	Voltaje        *float64            `json:"voltaje" validate:"required"`
	Corriente      *float64            `json:"corriente" validate:"required"`
	PotenciaW      *float64            `json:"potencia_w" validate:"required"`
	HorasOperacion *float64            `json:"horas_operacion" validate:"required"`
	EstadoTecnico  string              `json:"estado_tecnico" validate:"required"`
	Fecha          string              `json:"fecha" validate:"required"`
	Status         string              `json:"status" validate:"required"`
	Coordenadas    *CoordinatesRequest `json:"coordenadas" validate:"omitempty"`
}

type PosteDTO struct {
	ID             string          `json:"id_poste"`
	LampID         string          `json:"lamp_id"`
	Zona           int             `json:"zona"`
	TipoLampara    string          `json:"tipo_lampara"`
	ConsumoKWh     float64         `json:"consumo_kwh"`
	Voltaje        float64         `json:"voltaje"`
	Corriente      float64         `json:"corriente"`
	PotenciaW      float64         `json:"potencia_w"`
	HorasOperacion float64         `json:"horas_operacion"`
	EstadoTecnico  string          `json:"estado_tecnico"`
	Fecha          string          `json:"fecha"`
	Status         string          `json:"status"`
	Coordenadas    *types.GeoPoint `json:"coordenadas,omitempty"`
}

func (r CreatePosteRequest) ToModel() models.Poste {
	poste := models.Poste{
		LampID:         r.LampID,
		Zona:           *r.Zona,
		TipoLampara:    r.TipoLampara,
		ConsumoKWh:     *r.ConsumoKWh,
		Voltaje:        *r.Voltaje,
		Corriente:      *r.Corriente,
		PotenciaW:      *r.PotenciaW,
		HorasOperacion: *r.HorasOperacion,
		EstadoTecnico:  r.EstadoTecnico,
		Fecha:          r.Fecha,
		Status:         r.Status,
	}
	if r.Coordenadas != nil {
		poste.Coordenadas = &types.GeoPoint{Lat: *r.Coordenadas.Lat, Lng: *r.Coordenadas.Lng}
	}
	return poste
}

func FromModel(p *models.Poste) PosteDTO {
	dto := PosteDTO{
		ID:             p.ID.Hex(),
		LampID:         p.LampID,
		Zona:           p.Zona,
		TipoLampara:    p.TipoLampara,
		ConsumoKWh:     p.ConsumoKWh,
		Voltaje:        p.Voltaje,
		Corriente:      p.Corriente,
		PotenciaW:      p.PotenciaW,
		HorasOperacion: p.HorasOperacion,
		EstadoTecnico:  p.EstadoTecnico,
		Fecha:          p.Fecha,
		Status:         p.Status,
	}
	if p.Coordenadas != nil {
		point := *p.Coordenadas
		dto.Coordenadas = &point
	}
	return dto
}
