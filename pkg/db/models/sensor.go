package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/smartcitysecure/smartcity-api/pkg/enums"
)

type Sensor struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Ubicacion     string             `bson:"ubicacion"`
	Estado        enums.SensorState  `bson:"estado"`
	NivelLuz      float64            `bson:"nivel_luz"`
	FechaRegistro time.Time          `bson:"fecha_registro"`
}
