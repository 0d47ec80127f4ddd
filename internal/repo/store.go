package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound is returned by FindOneBy when no document matches.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateKey is returned by Insert when a unique field already holds the value.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Store is the per-collection accessor every entity service depends on.
// Identifiers stay in their native ObjectID form here; services turn them into
// strings when building responses.
type Store[T any] interface {
	Insert(ctx context.Context, doc T) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]T, error)
	FindOneBy(ctx context.Context, field string, value any) (*T, error)
}
