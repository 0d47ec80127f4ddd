package auth

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/smartcitysecure/smartcity-api/internal/repo"
	"github.com/smartcitysecure/smartcity-api/internal/users"
	"github.com/smartcitysecure/smartcity-api/pkg/config"
	"github.com/smartcitysecure/smartcity-api/pkg/db/models"
	pkgerrors "github.com/smartcitysecure/smartcity-api/pkg/errors"
	"github.com/smartcitysecure/smartcity-api/pkg/security"
)

func TestServiceLoginAfterRegistration(t *testing.T) {
	ctx := context.Background()
	hasher := security.NewHasher(config.PasswordConfig{BcryptCost: 4})
	store := repo.NewMemoryCollection[models.User](models.CollectionUsers, users.EmailField)

	usersSvc, err := users.NewService(users.ServiceParams{Store: store, Hasher: hasher})
	if err != nil {
		t.Fatalf("build users service: %v", err)
	}
	created, err := usersSvc.Create(ctx, users.CreateUserRequest{
		Nombre:     "Ana",
		Correo:     "ana@x.com",
		Contrasena: "secret123",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	svc := buildTestService(t, store, hasher)
	resp, err := svc.Login(ctx, LoginRequest{Correo: "Ana@X.com", Contrasena: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if resp.IDUsuario != created.ID {
		t.Fatalf("expected id %s, got %s", created.ID, resp.IDUsuario)
	}
	if resp.Status != "ok" || resp.Mensaje != "Login exitoso" {
		t.Fatalf("unexpected confirmation %+v", resp)
	}
	if resp.Nombre != "Ana" {
		t.Fatalf("unexpected name %q", resp.Nombre)
	}
	if resp.Rol == nil || *resp.Rol != users.DefaultRole {
		t.Fatalf("expected default role, got %v", resp.Rol)
	}
}

func TestServiceLoginUnknownEmail(t *testing.T) {
	store := repo.NewMemoryCollection[models.User](models.CollectionUsers)
	svc := buildTestService(t, store, security.NewHasher(config.PasswordConfig{}))

	_, err := svc.Login(context.Background(), LoginRequest{Correo: "ghost@x.com", Contrasena: "whatever"})
	assertCode(t, err, pkgerrors.CodeUserNotFound)
}

func TestServiceLoginWrongPassword(t *testing.T) {
	hasher := security.NewHasher(config.PasswordConfig{BcryptCost: 4})
	store := seededStore(t, mustHash(t, hasher, "secret123"), nil)
	svc := buildTestService(t, store, hasher)

	_, err := svc.Login(context.Background(), LoginRequest{Correo: "ana@x.com", Contrasena: "secret124"})
	assertCode(t, err, pkgerrors.CodeInvalidCredentials)
}

func TestServiceLoginMalformedStoredHashFailsClosed(t *testing.T) {
	store := seededStore(t, "plaintext-from-an-old-import", nil)
	svc := buildTestService(t, store, security.NewHasher(config.PasswordConfig{}))

	_, err := svc.Login(context.Background(), LoginRequest{Correo: "ana@x.com", Contrasena: "plaintext-from-an-old-import"})
	assertCode(t, err, pkgerrors.CodeInvalidCredentials)
}

func TestServiceLoginNullRole(t *testing.T) {
	hasher := security.NewHasher(config.PasswordConfig{BcryptCost: 4})
	store := seededStore(t, mustHash(t, hasher, "secret123"), nil)
	svc := buildTestService(t, store, hasher)

	resp, err := svc.Login(context.Background(), LoginRequest{Correo: "ana@x.com", Contrasena: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Rol != nil {
		t.Fatalf("expected nil role, got %q", *resp.Rol)
	}
}

func TestServiceLoginStoreFailure(t *testing.T) {
	unavailable := pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, errors.New("timeout"), "find_one Usuarios")
	svc := buildTestService(t, stubLookup{err: unavailable}, security.NewHasher(config.PasswordConfig{}))

	_, err := svc.Login(context.Background(), LoginRequest{Correo: "ana@x.com", Contrasena: "secret123"})
	assertCode(t, err, pkgerrors.CodeStoreUnavailable)
}

func buildTestService(t *testing.T, lookup userLookup, verifier passwordVerifier) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Users: lookup, Verifier: verifier})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func seededStore(t *testing.T, hash string, role *string) *repo.MemoryCollection[models.User] {
	t.Helper()
	store := repo.NewMemoryCollection[models.User](models.CollectionUsers, users.EmailField)
	_, err := store.Insert(context.Background(), models.User{
		ID:         primitive.NewObjectID(),
		Nombre:     "Ana",
		Rol:        role,
		Correo:     "ana@x.com",
		Contrasena: hash,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return store
}

func mustHash(t *testing.T, hasher *security.Hasher, password string) string {
	t.Helper()
	hash, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

func assertCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != code {
		t.Fatalf("expected %s, got %v", code, err)
	}
}

type stubLookup struct {
	err error
}

func (s stubLookup) FindOneBy(context.Context, string, any) (*models.User, error) {
	return nil, s.err
}
