package users

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/smartcitysecure/smartcity-api/internal/repo"
	"github.com/smartcitysecure/smartcity-api/pkg/config"
	"github.com/smartcitysecure/smartcity-api/pkg/db/models"
	pkgerrors "github.com/smartcitysecure/smartcity-api/pkg/errors"
	"github.com/smartcitysecure/smartcity-api/pkg/security"
)

func newTestService(t *testing.T, store repo.Store[models.User], expose bool) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Store:              store,
		Hasher:             security.NewHasher(config.PasswordConfig{BcryptCost: 4}),
		ExposePasswordHash: expose,
	})
	require.NoError(t, err)
	return svc
}

func TestServiceCreateHashesPassword(t *testing.T) {
	store := repo.NewMemoryCollection[models.User](models.CollectionUsers, EmailField)
	svc := newTestService(t, store, true)

	created, err := svc.Create(context.Background(), CreateUserRequest{
		Nombre:     "Ana",
		Correo:     " Ana@X.com ",
		Contrasena: "secret123",
	})
	require.NoError(t, err)

	_, err = primitive.ObjectIDFromHex(created.ID)
	require.NoError(t, err, "id must be an ObjectID hex string")
	assert.Equal(t, "ana@x.com", created.Correo)
	require.NotNil(t, created.Rol)
	assert.Equal(t, DefaultRole, *created.Rol)
	assert.NotEqual(t, "secret123", created.Contrasena)

	stored, err := store.FindOneBy(context.Background(), EmailField, "ana@x.com")
	require.NoError(t, err)
	assert.True(t, security.NewHasher(config.PasswordConfig{}).Verify("secret123", stored.Contrasena))
}

func TestServiceCreateKeepsExplicitRole(t *testing.T) {
	store := repo.NewMemoryCollection[models.User](models.CollectionUsers, EmailField)
	svc := newTestService(t, store, true)
	role := "Administrador"

	created, err := svc.Create(context.Background(), CreateUserRequest{
		Nombre:     "Luis",
		Rol:        &role,
		Correo:     "luis@x.com",
		Contrasena: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Administrador", *created.Rol)
}

func TestServiceCreateRejectsDuplicateEmail(t *testing.T) {
	store := repo.NewMemoryCollection[models.User](models.CollectionUsers, EmailField)
	svc := newTestService(t, store, true)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateUserRequest{Nombre: "Ana", Correo: "ana@x.com", Contrasena: "secret123"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateUserRequest{Nombre: "Otra", Correo: "ANA@x.com", Contrasena: "another1"})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeDuplicateEmail), "got %v", err)
	assert.Equal(t, 1, store.Len())
}

func TestServiceCreateMapsInsertRaceToDuplicateEmail(t *testing.T) {
	store := &stubStore{insertErr: repo.ErrDuplicateKey}
	svc := newTestService(t, store, true)

	_, err := svc.Create(context.Background(), CreateUserRequest{Nombre: "Ana", Correo: "ana@x.com", Contrasena: "secret123"})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeDuplicateEmail), "got %v", err)
}

func TestServiceCreatePropagatesStoreFailure(t *testing.T) {
	unavailable := pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, errors.New("no reachable servers"), "find_one Usuarios")
	store := &stubStore{findErr: unavailable}
	svc := newTestService(t, store, true)

	_, err := svc.Create(context.Background(), CreateUserRequest{Nombre: "Ana", Correo: "ana@x.com", Contrasena: "secret123"})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeStoreUnavailable))
	assert.Zero(t, store.inserts, "nothing may be written after a failed lookup")
}

func TestServiceCreateRejectsOverlongPassword(t *testing.T) {
	store := repo.NewMemoryCollection[models.User](models.CollectionUsers, EmailField)
	svc := newTestService(t, store, true)

	// 40 two-byte runes pass the rune-based max tag but exceed bcrypt's byte limit.
	long := ""
	for i := 0; i < 40; i++ {
		long += "ñ"
	}
	_, err := svc.Create(context.Background(), CreateUserRequest{Nombre: "Ana", Correo: "ana@x.com", Contrasena: long})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation), "got %v", err)
	assert.Zero(t, store.Len())
}

func TestServiceListHonoursHashExposure(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryCollection[models.User](models.CollectionUsers, EmailField)

	exposing := newTestService(t, store, true)
	_, err := exposing.Create(ctx, CreateUserRequest{Nombre: "Ana", Correo: "ana@x.com", Contrasena: "secret123"})
	require.NoError(t, err)

	listed, err := exposing.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.NotEmpty(t, listed[0].Contrasena)

	hiding := newTestService(t, store, false)
	listed, err = hiding.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Empty(t, listed[0].Contrasena)
}

func TestServiceListEmpty(t *testing.T) {
	svc := newTestService(t, repo.NewMemoryCollection[models.User](models.CollectionUsers), true)

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, listed)
	assert.Empty(t, listed)
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	_, err := NewService(ServiceParams{})
	assert.Error(t, err)
}

type stubStore struct {
	findErr   error
	insertErr error
	inserts   int
}

func (s *stubStore) Insert(context.Context, models.User) (primitive.ObjectID, error) {
	s.inserts++
	if s.insertErr != nil {
		return primitive.NilObjectID, s.insertErr
	}
	return primitive.NewObjectID(), nil
}

func (s *stubStore) FindAll(context.Context) ([]models.User, error) {
	return nil, nil
}

func (s *stubStore) FindOneBy(context.Context, string, any) (*models.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return nil, repo.ErrNotFound
}
