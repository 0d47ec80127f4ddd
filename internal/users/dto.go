package users

import (
	"strings"

	"github.com/smartcitysecure/smartcity-api/pkg/db/models"
)

// DefaultRole is stored when a user is created without a role.
const DefaultRole = "Usuario"

// CreateUserRequest is the body of POST /usuarios/.
type CreateUserRequest struct {
	Nombre     string  `json:"nombre" validate:"required"`
	Rol        *string `json:"rol"`
	Correo     string  `json:"correo" validate:"required,email"`
	Contrasena string  `json:"contrasena" validate:"required,min=6,max=72"`
}

// UserDTO is the public shape of a user. Contrasena carries the stored hash
// and is omitted when hash exposure is disabled.
type UserDTO struct {
	ID         string  `json:"id_usuario"`
	Nombre     string  `json:"nombre"`
	Rol        *string `json:"rol"`
	Correo     string  `json:"correo"`
	Contrasena string  `json:"contrasena,omitempty"`
}

// NormalizeEmail trims and lower-cases an address so lookups and the unique
// index agree on one spelling.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r CreateUserRequest) ToModel(passwordHash string) models.User {
	role := DefaultRole
	if r.Rol != nil && strings.TrimSpace(*r.Rol) != "" {
		role = *r.Rol
	}
	return models.User{
		Nombre:     r.Nombre,
		Rol:        &role,
		Correo:     NormalizeEmail(r.Correo),
		Contrasena: passwordHash,
	}
}

// FromModel maps a stored user onto its public shape.
func FromModel(u *models.User, exposeHash bool) UserDTO {
	dto := UserDTO{
		ID:     u.ID.Hex(),
		Nombre: u.Nombre,
		Rol:    u.Rol,
		Correo: u.Correo,
	}
	if exposeHash {
		dto.Contrasena = u.Contrasena
	}
	return dto
}
