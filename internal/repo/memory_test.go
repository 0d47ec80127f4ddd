package repo

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	pkgerrors "github.com/smartcitysecure/smartcity-api/pkg/errors"
)

type sample struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Email   string             `bson:"email"`
	Reading float64            `bson:"reading"`
	At      time.Time          `bson:"at"`
}

func TestMemoryCollectionInsertAssignsIDs(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryCollection[sample]("samples")

	first, err := coll.Insert(ctx, sample{Email: "a@x.com"})
	require.NoError(t, err)
	second, err := coll.Insert(ctx, sample{Email: "b@x.com"})
	require.NoError(t, err)

	assert.False(t, first.IsZero())
	assert.NotEqual(t, first, second)

	docs, err := coll.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, first, docs[0].ID)
	assert.Equal(t, "a@x.com", docs[0].Email)
	assert.Equal(t, second, docs[1].ID)
}

func TestMemoryCollectionRoundTripsValues(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryCollection[sample]("samples")
	at := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)

	id, err := coll.Insert(ctx, sample{Email: "a@x.com", Reading: 12.5, At: at})
	require.NoError(t, err)

	doc, err := coll.FindOneBy(ctx, "_id", id)
	require.NoError(t, err)
	assert.Equal(t, 12.5, doc.Reading)
	assert.True(t, doc.At.Equal(at))
}

func TestMemoryCollectionFindOneBy(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryCollection[sample]("samples")
	_, err := coll.Insert(ctx, sample{Email: "a@x.com"})
	require.NoError(t, err)

	doc, err := coll.FindOneBy(ctx, "email", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", doc.Email)

	_, err = coll.FindOneBy(ctx, "email", "missing@x.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = coll.FindOneBy(ctx, "unknown_field", "a@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCollectionUniqueFields(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryCollection[sample]("samples", "email")

	_, err := coll.Insert(ctx, sample{Email: "a@x.com"})
	require.NoError(t, err)

	_, err = coll.Insert(ctx, sample{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, 1, coll.Len())
}

func TestMemoryCollectionEmptyFindAll(t *testing.T) {
	docs, err := NewMemoryCollection[sample]("samples").FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestMemoryCollectionCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	coll := NewMemoryCollection[sample]("samples")

	_, err := coll.Insert(ctx, sample{Email: "a@x.com"})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeStoreUnavailable))
	assert.True(t, errors.Is(err, context.Canceled))

	_, err = coll.FindAll(ctx)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeStoreUnavailable))
}

func TestMemoryCollectionConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryCollection[sample]("samples")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := coll.Insert(ctx, sample{Reading: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, coll.Len())
}
