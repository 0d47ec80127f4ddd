package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartcitysecure/smartcity-api/pkg/config"
)

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.StoreConfig{
		MongoURI:               "mongodb://localhost:27017",
		Database:               "SmartCitySecure",
		AppName:                "smartcity-api",
		MaxPoolSize:            50,
		MinPoolSize:            5,
		ConnectTimeout:         3 * time.Second,
		ServerSelectionTimeout: 4 * time.Second,
	}

	opts, err := optionsFromConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.MaxPoolSize == nil || *opts.MaxPoolSize != 50 {
		t.Fatalf("unexpected max pool size %v", opts.MaxPoolSize)
	}
	if opts.MinPoolSize == nil || *opts.MinPoolSize != 5 {
		t.Fatalf("unexpected min pool size %v", opts.MinPoolSize)
	}
	if opts.ServerSelectionTimeout == nil || *opts.ServerSelectionTimeout != 4*time.Second {
		t.Fatalf("unexpected server selection timeout %v", opts.ServerSelectionTimeout)
	}
	if opts.AppName == nil || *opts.AppName != "smartcity-api" {
		t.Fatalf("unexpected app name %v", opts.AppName)
	}
}

func TestOptionsFromConfig_BadCAFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ca.pem")
	if err := os.WriteFile(path, []byte("not a certificate"), 0o600); err != nil {
		t.Fatalf("write ca file: %v", err)
	}

	_, err := optionsFromConfig(config.StoreConfig{MongoURI: "mongodb://localhost:27017", TLSCAFile: path})
	if err == nil {
		t.Fatal("expected error for CA file without certificates")
	}

	_, err = optionsFromConfig(config.StoreConfig{MongoURI: "mongodb://localhost:27017", TLSCAFile: path + ".missing"})
	if err == nil {
		t.Fatal("expected error for missing CA file")
	}
}

func TestPingWithoutConnection(t *testing.T) {
	var c *Client
	if err := c.Ping(context.Background()); err == nil {
		t.Fatal("expected error from uninitialised client")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("closing nil client should be a no-op: %v", err)
	}
}
