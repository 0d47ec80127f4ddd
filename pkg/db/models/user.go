package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a document in the Usuarios collection.
type User struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Nombre string             `bson:"nombre"`
	// Rol is nil for accounts created before roles were stored.
	Rol        *string `bson:"rol,omitempty"`
	Correo     string  `bson:"correo"`
	Contrasena string  `bson:"contrasena"` // bcrypt hash, never plaintext
}
