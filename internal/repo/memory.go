package repo

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	pkgerrors "github.com/smartcitysecure/smartcity-api/pkg/errors"
)

// MemoryCollection is an in-process Store. Documents go through the same bson
// encoding as the Mongo-backed Collection, so struct tags behave identically.
type MemoryCollection[T any] struct {
	mu     sync.RWMutex
	name   string
	unique []string
	docs   []bson.Raw
}

// NewMemoryCollection creates an empty collection enforcing uniqueness on the
// given top-level fields.
func NewMemoryCollection[T any](name string, uniqueFields ...string) *MemoryCollection[T] {
	return &MemoryCollection[T]{name: name, unique: uniqueFields}
}

func (m *MemoryCollection[T]) Name() string {
	return m.name
}

func (m *MemoryCollection[T]) Insert(ctx context.Context, doc T) (primitive.ObjectID, error) {
	if err := ctx.Err(); err != nil {
		return primitive.NilObjectID, pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "insert "+m.name)
	}

	encoded, err := bson.Marshal(doc)
	if err != nil {
		return primitive.NilObjectID, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode "+m.name)
	}
	var fields bson.D
	if err := bson.Unmarshal(encoded, &fields); err != nil {
		return primitive.NilObjectID, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode "+m.name)
	}

	id, fields := ensureID(fields)
	raw, err := bson.Marshal(fields)
	if err != nil {
		return primitive.NilObjectID, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode "+m.name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, field := range append([]string{"_id"}, m.unique...) {
		candidate, err := bson.Raw(raw).LookupErr(field)
		if err != nil {
			continue
		}
		for _, existing := range m.docs {
			if value, err := existing.LookupErr(field); err == nil && value.Equal(candidate) {
				return primitive.NilObjectID, fmt.Errorf("insert %s: %w on %s", m.name, ErrDuplicateKey, field)
			}
		}
	}

	m.docs = append(m.docs, raw)
	return id, nil
}

func (m *MemoryCollection[T]) FindAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "find_all "+m.name)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, 0, len(m.docs))
	for _, raw := range m.docs {
		var doc T
		if err := bson.Unmarshal(raw, &doc); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode "+m.name)
		}
		out = append(out, doc)
	}
	return out, nil
}

func (m *MemoryCollection[T]) FindOneBy(ctx context.Context, field string, value any) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "find_one "+m.name)
	}

	typ, data, err := bson.MarshalValue(value)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode filter "+m.name)
	}
	want := bson.RawValue{Type: typ, Value: data}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, raw := range m.docs {
		got, err := raw.LookupErr(field)
		if err != nil || !got.Equal(want) {
			continue
		}
		var doc T
		if err := bson.Unmarshal(raw, &doc); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode "+m.name)
		}
		return &doc, nil
	}
	return nil, ErrNotFound
}

// Len reports how many documents are stored.
func (m *MemoryCollection[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}

// ensureID returns the document's ObjectID, generating and prepending one when
// the document carries none, as the server does on insert.
func ensureID(fields bson.D) (primitive.ObjectID, bson.D) {
	for _, e := range fields {
		if e.Key != "_id" {
			continue
		}
		if id, ok := e.Value.(primitive.ObjectID); ok && !id.IsZero() {
			return id, fields
		}
	}
	id := primitive.NewObjectID()
	return id, append(bson.D{{Key: "_id", Value: id}}, fields...)
}
