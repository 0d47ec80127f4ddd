package auth

// LoginRequest is the body of POST /login. Correo is not format-checked; an
// unknown address simply fails the lookup.
type LoginRequest struct {
	Correo     string `json:"correo" validate:"required"`
	Contrasena string `json:"contrasena" validate:"required"`
}

// LoginResponse confirms a successful credential check. It never carries the
// password or its hash.
type LoginResponse struct {
	Mensaje   string  `json:"mensaje"`
	IDUsuario string  `json:"id_usuario"`
	Nombre    string  `json:"nombre"`
	Rol       *string `json:"rol"`
	Status    string  `json:"status"`
}
