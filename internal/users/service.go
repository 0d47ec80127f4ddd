package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartcitysecure/smartcity-api/internal/repo"
	"github.com/smartcitysecure/smartcity-api/pkg/db/models"
	pkgerrors "github.com/smartcitysecure/smartcity-api/pkg/errors"
)

// EmailField is the document field holding the login email.
const EmailField = "correo"

const duplicateEmailMessage = "el correo ya está registrado"

// Service creates and lists user accounts.
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (*UserDTO, error)
	List(ctx context.Context) ([]UserDTO, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

type service struct {
	store      repo.Store[models.User]
	hasher     passwordHasher
	exposeHash bool
}

// ServiceParams bundles the dependencies required to build a users service.
type ServiceParams struct {
	Store  repo.Store[models.User]
	Hasher passwordHasher
	// ExposePasswordHash keeps the stored hash in responses.
	ExposePasswordHash bool
}

func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("user store is required")
	}
	if params.Hasher == nil {
		return nil, fmt.Errorf("password hasher is required")
	}
	return &service{
		store:      params.Store,
		hasher:     params.Hasher,
		exposeHash: params.ExposePasswordHash,
	}, nil
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (*UserDTO, error) {
	email := NormalizeEmail(req.Correo)

	_, err := s.store.FindOneBy(ctx, EmailField, email)
	switch {
	case err == nil:
		return nil, duplicateEmail(email)
	case !errors.Is(err, repo.ErrNotFound):
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Contrasena)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed").
			WithDetails(map[string]string{"contrasena": "must be at most 72 bytes"})
	}

	user := req.ToModel(hash)
	id, err := s.store.Insert(ctx, user)
	if err != nil {
		// lost a race against a concurrent registration of the same email
		if errors.Is(err, repo.ErrDuplicateKey) {
			return nil, duplicateEmail(email)
		}
		return nil, err
	}
	user.ID = id

	dto := FromModel(&user, s.exposeHash)
	return &dto, nil
}

func (s *service) List(ctx context.Context) ([]UserDTO, error) {
	stored, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserDTO, 0, len(stored))
	for i := range stored {
		out = append(out, FromModel(&stored[i], s.exposeHash))
	}
	return out, nil
}

func duplicateEmail(email string) error {
	return pkgerrors.New(pkgerrors.CodeDuplicateEmail, duplicateEmailMessage).
		WithDetails(map[string]string{"correo": email})
}
