package db

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/smartcitysecure/smartcity-api/pkg/config"
	"github.com/smartcitysecure/smartcity-api/pkg/db/models"
	"github.com/smartcitysecure/smartcity-api/pkg/logger"
)

const disconnectTimeout = 5 * time.Second

// Client wraps the shared, pooled MongoDB connection. The driver client is safe
// for concurrent use, so one Client serves every request.
type Client struct {
	raw       *mongo.Client
	db        *mongo.Database
	opTimeout time.Duration
}

// New connects to MongoDB, retrying the initial ping with exponential backoff
// until cfg.ConnectMaxElapsed runs out.
func New(ctx context.Context, cfg config.StoreConfig, logg *logger.Logger) (*Client, error) {
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("mongo uri is required")
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("mongo database name is required")
	}

	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	raw, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("opening mongo connection: %w", err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = cfg.ConnectMaxElapsed

	attempt := 0
	ping := func() error {
		attempt++
		return raw.Ping(ctx, readpref.Primary())
	}
	notify := func(err error, wait time.Duration) {
		if logg == nil {
			return
		}
		logCtx := logg.WithFields(ctx, map[string]any{
			"attempt":  attempt,
			"retry_in": wait.String(),
		})
		logg.Warn(logCtx, "mongo.ping.retry", err)
	}

	if err := backoff.RetryNotify(ping, backoff.WithContext(bo, ctx), notify); err != nil {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
		defer cancel()
		_ = raw.Disconnect(disconnectCtx)
		return nil, fmt.Errorf("ping mongo after %d attempts: %w", attempt, err)
	}

	if logg != nil {
		logCtx := logg.WithFields(ctx, map[string]any{"database": cfg.Database, "attempts": attempt})
		logg.Info(logCtx, "mongo connection established")
	}

	return &Client{
		raw:       raw,
		db:        raw.Database(cfg.Database),
		opTimeout: cfg.OperationTimeout,
	}, nil
}

func optionsFromConfig(cfg config.StoreConfig) (*options.ClientOptions, error) {
	opts := options.Client().ApplyURI(cfg.MongoURI)
	if cfg.AppName != "" {
		opts.SetAppName(cfg.AppName)
	}
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.MinPoolSize > 0 {
		opts.SetMinPoolSize(cfg.MinPoolSize)
	}
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}
	if cfg.ServerSelectionTimeout > 0 {
		opts.SetServerSelectionTimeout(cfg.ServerSelectionTimeout)
	}
	if cfg.TLSCAFile != "" {
		tlsCfg, err := tlsConfigFromCAFile(cfg.TLSCAFile)
		if err != nil {
			return nil, err
		}
		opts.SetTLSConfig(tlsCfg)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mongo options: %w", err)
	}
	return opts, nil
}

func tlsConfigFromCAFile(path string) (*tls.Config, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mongo CA file: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("mongo CA file contains no certificates")
	}
	return &tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12}, nil
}

// Collection returns a handle to the named collection of the configured database.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// OperationTimeout is the deadline applied to each store operation.
func (c *Client) OperationTimeout() time.Duration {
	return c.opTimeout
}

// EnsureIndexes creates the indexes the API relies on. Creating an index that
// already exists is a no-op on the server.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	_, err := c.Collection(models.CollectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "correo", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("correo_unique"),
	})
	if err != nil {
		return fmt.Errorf("creating Usuarios.correo index: %w", err)
	}
	return nil
}

// Ping verifies the primary is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.raw == nil {
		return errors.New("mongo client not initialized")
	}
	return c.raw.Ping(ctx, readpref.Primary())
}

// Close drains the connection pool.
func (c *Client) Close() error {
	if c == nil || c.raw == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	return c.raw.Disconnect(ctx)
}
