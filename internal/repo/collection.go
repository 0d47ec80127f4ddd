package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	pkgerrors "github.com/smartcitysecure/smartcity-api/pkg/errors"
	"github.com/smartcitysecure/smartcity-api/pkg/metrics"
)

// Collection is a Store backed by a MongoDB collection.
type Collection[T any] struct {
	coll    *mongo.Collection
	timeout time.Duration
	metrics *metrics.StoreMetrics
}

// NewCollection binds a typed accessor to coll. Each operation runs under
// timeout when it is positive.
func NewCollection[T any](coll *mongo.Collection, timeout time.Duration, m *metrics.StoreMetrics) *Collection[T] {
	return &Collection[T]{coll: coll, timeout: timeout, metrics: m}
}

// Name returns the underlying collection name.
func (c *Collection[T]) Name() string {
	return c.coll.Name()
}

func (c *Collection[T]) Insert(ctx context.Context, doc T) (primitive.ObjectID, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	res, err := c.coll.InsertOne(ctx, doc)
	c.observe("insert", start, err)
	if err != nil {
		return primitive.NilObjectID, translateError(c.Name(), "insert", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, pkgerrors.New(pkgerrors.CodeInternal, fmt.Sprintf("insert %s: unexpected id type %T", c.Name(), res.InsertedID))
	}
	return id, nil
}

func (c *Collection[T]) FindAll(ctx context.Context) ([]T, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	docs, err := c.findAll(ctx)
	c.observe("find_all", start, err)
	if err != nil {
		return nil, translateError(c.Name(), "find_all", err)
	}
	return docs, nil
}

func (c *Collection[T]) findAll(ctx context.Context) ([]T, error) {
	cursor, err := c.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *Collection[T]) FindOneBy(ctx context.Context, field string, value any) (*T, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	var doc T
	err := c.coll.FindOne(ctx, bson.D{{Key: field, Value: value}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.observe("find_one", start, nil)
		return nil, ErrNotFound
	}
	c.observe("find_one", start, err)
	if err != nil {
		return nil, translateError(c.Name(), "find_one", err)
	}
	return &doc, nil
}

func (c *Collection[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Collection[T]) observe(op string, start time.Time, err error) {
	c.metrics.Observe(c.Name(), op, time.Since(start), err)
}

// translateError maps driver failures onto the API error taxonomy. Duplicate
// keys stay distinguishable; everything else means the store could not serve
// the request.
func translateError(collection, op string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s %s: %w: %w", op, collection, ErrDuplicateKey, err)
	default:
		return pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, fmt.Sprintf("%s %s", op, collection))
	}
}
