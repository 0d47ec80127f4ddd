package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartcitysecure/smartcity-api/internal/repo"
	"github.com/smartcitysecure/smartcity-api/internal/users"
	"github.com/smartcitysecure/smartcity-api/pkg/db/models"
	pkgerrors "github.com/smartcitysecure/smartcity-api/pkg/errors"
)

const (
	loginSuccessMessage       = "Login exitoso"
	loginStatusOK             = "ok"
	userNotFoundMessage       = "Usuario no encontrado"
	invalidCredentialsMessage = "Contraseña incorrecta"
)

// Service defines the behavior needed by the login controller.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
}

type userLookup interface {
	FindOneBy(ctx context.Context, field string, value any) (*models.User, error)
}

type passwordVerifier interface {
	Verify(password, encoded string) bool
}

type service struct {
	users    userLookup
	verifier passwordVerifier
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	Users    userLookup
	Verifier passwordVerifier
}

// NewService constructs a login service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Users == nil {
		return nil, fmt.Errorf("user store is required")
	}
	if params.Verifier == nil {
		return nil, fmt.Errorf("password verifier is required")
	}
	return &service{
		users:    params.Users,
		verifier: params.Verifier,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.FindOneBy(ctx, users.EmailField, users.NormalizeEmail(req.Correo))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUserNotFound, userNotFoundMessage)
		}
		return nil, err
	}

	// Verify fails closed on hashes it cannot parse.
	if !s.verifier.Verify(req.Contrasena, user.Contrasena) {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidCredentials, invalidCredentialsMessage)
	}

	return &LoginResponse{
		Mensaje:   loginSuccessMessage,
		IDUsuario: user.ID.Hex(),
		Nombre:    user.Nombre,
		Rol:       user.Rol,
		Status:    loginStatusOK,
	}, nil
}
