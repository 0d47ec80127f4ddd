package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/smartcitysecure/smartcity-api/pkg/enums"
)

type SecurityAlert struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	TipoAlerta  string             `bson:"tipo_alerta"`
	Descripcion string             `bson:"descripcion"`
	FechaAlerta time.Time          `bson:"fecha_alerta"`
	Estado      enums.AlertState   `bson:"estado"`
}
