package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/smartcitysecure/smartcity-api/pkg/types"
)

// Poste is one streetlight pole: the sensor, lamp and consumption readings
// that used to live in three collections, flattened into a single document.
type Poste struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	LampID         string             `bson:"lamp_id"`
	Zona           int                `bson:"zona"`
	TipoLampara    string             `bson:"tipo_lampara"`
	ConsumoKWh     float64            `bson:"consumo_kwh"`
	Voltaje        float64            `bson:"voltaje"`
	Corriente      float64            `bson:"corriente"`
	PotenciaW      float64            `bson:"potencia_w"`
	HorasOperacion float64            `bson:"horas_operacion"`
	EstadoTecnico  string             `bson:"estado_tecnico"`
	// Fecha is stored exactly as received; clients send several formats.
	Fecha       string          `bson:"fecha"`
	Status      string          `bson:"status"`
	Coordenadas *types.GeoPoint `bson:"coordenadas,omitempty"`
}
