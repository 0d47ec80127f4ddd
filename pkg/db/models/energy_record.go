package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/smartcitysecure/smartcity-api/pkg/enums"
)

type EnergyRecord struct {
	ID primitive.ObjectID `bson:"_id,omitempty"`
	// IDLuminaria references a luminarias document; it is never checked.
	IDLuminaria      string          `bson:"id_luminaria"`
	EnergiaConsumida float64         `bson:"energia_consumida"`
	FechaMedicion    time.Time       `bson:"fecha_medicion"`
	Alerta           enums.AlertFlag `bson:"alerta"`
}
