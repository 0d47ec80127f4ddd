package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/smartcitysecure/smartcity-api/pkg/enums"
)

type Luminaire struct {
	ID primitive.ObjectID `bson:"_id,omitempty"`
	// IDSensor references a sensores document; it is never checked.
	IDSensor            string               `bson:"id_sensor"`
	Estado              enums.LuminaireState `bson:"estado"`
	ConsumoActual       float64              `bson:"consumo_actual"`
	UltimaActualizacion time.Time            `bson:"ultima_actualizacion"`
}
