package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	Server        ServerConfig
	Store         StoreConfig
	Redis         RedisConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Users         UsersConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Store.ensureURI(); err != nil {
		return nil, err
	}
	if cfg.App.IsProd() && cfg.Store.UsesMemory() {
		return nil, fmt.Errorf("%s=%s is not allowed when %s=%s", EnvStoreDriver, StoreDriverMemory, EnvAppEnv, AppEnvProd)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SMARTCITY_APP_ENV" default:"dev"`
	Port         string `envconfig:"SMARTCITY_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"SMARTCITY_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"SMARTCITY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServerConfig struct {
	ReadHeaderTimeout time.Duration `envconfig:"SMARTCITY_SERVER_READ_HEADER_TIMEOUT" default:"10s"`
	ShutdownTimeout   time.Duration `envconfig:"SMARTCITY_SHUTDOWN_TIMEOUT" default:"15s"`
}

// StoreConfig selects and tunes the document store backing every collection.
type StoreConfig struct {
	Driver   string `envconfig:"SMARTCITY_STORE_DRIVER" default:"mongo"`
	MongoURI string `envconfig:"SMARTCITY_MONGO_URI"`
	Database string `envconfig:"SMARTCITY_MONGO_DATABASE" default:"SmartCitySecure"`
	AppName  string `envconfig:"SMARTCITY_MONGO_APP_NAME" default:"smartcity-api"`
	// TLSCAFile points at a PEM bundle used to verify Atlas-style TLS endpoints.
	TLSCAFile string `envconfig:"SMARTCITY_MONGO_TLS_CA_FILE"`

	MaxPoolSize            uint64        `envconfig:"SMARTCITY_MONGO_MAX_POOL_SIZE" default:"100"`
	MinPoolSize            uint64        `envconfig:"SMARTCITY_MONGO_MIN_POOL_SIZE" default:"0"`
	ConnectTimeout         time.Duration `envconfig:"SMARTCITY_MONGO_CONNECT_TIMEOUT" default:"10s"`
	ServerSelectionTimeout time.Duration `envconfig:"SMARTCITY_MONGO_SERVER_SELECTION_TIMEOUT" default:"10s"`
	OperationTimeout       time.Duration `envconfig:"SMARTCITY_MONGO_OPERATION_TIMEOUT" default:"10s"`
	ConnectMaxElapsed      time.Duration `envconfig:"SMARTCITY_MONGO_CONNECT_MAX_ELAPSED" default:"30s"`
}

// UsesMemory reports whether collections are served from process memory.
func (s StoreConfig) UsesMemory() bool {
	return strings.EqualFold(strings.TrimSpace(s.Driver), StoreDriverMemory)
}

type RedisConfig struct {
	URL          string        `envconfig:"SMARTCITY_REDIS_URL"`
	Address      string        `envconfig:"SMARTCITY_REDIS_ADDR"`
	Password     string        `envconfig:"SMARTCITY_REDIS_PASSWORD"`
	DB           int           `envconfig:"SMARTCITY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SMARTCITY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SMARTCITY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SMARTCITY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SMARTCITY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SMARTCITY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured. Redis is optional;
// without it the auth rate limiter is skipped.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type PasswordConfig struct {
	BcryptCost int `envconfig:"SMARTCITY_BCRYPT_COST" default:"12"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"SMARTCITY_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"SMARTCITY_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"SMARTCITY_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"SMARTCITY_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"SMARTCITY_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"SMARTCITY_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type UsersConfig struct {
	// ExposePasswordHash keeps the stored bcrypt hash in user responses, which
	// is what existing clients of GET /usuarios/ receive today.
	ExposePasswordHash bool `envconfig:"SMARTCITY_USERS_EXPOSE_PASSWORD_HASH" default:"true"`
}

func (s *StoreConfig) ensureURI() error {
	if s.UsesMemory() {
		return nil
	}
	if !strings.EqualFold(strings.TrimSpace(s.Driver), StoreDriverMongo) {
		return fmt.Errorf("unsupported %s %q", EnvStoreDriver, s.Driver)
	}
	if s.MongoURI != "" {
		return nil
	}
	if legacy := strings.TrimSpace(os.Getenv(EnvLegacyMongoURI)); legacy != "" {
		s.MongoURI = legacy
		return nil
	}
	return fmt.Errorf("either %s or %s is required", EnvMongoURI, EnvLegacyMongoURI)
}
