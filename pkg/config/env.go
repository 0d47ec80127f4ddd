package config

// EnvPrefix is empty because every field carries its fully qualified name.
const EnvPrefix = ""

const (
	AppEnvProd = "prod"

	StoreDriverMongo  = "mongo"
	StoreDriverMemory = "memory"
)

// Variables referenced outside the envconfig struct tags.
const (
	EnvAppEnv      = "SMARTCITY_APP_ENV"
	EnvPort        = "SMARTCITY_APP_PORT"
	EnvStoreDriver = "SMARTCITY_STORE_DRIVER"
	EnvMongoURI    = "SMARTCITY_MONGO_URI"
	EnvRedisURL    = "SMARTCITY_REDIS_URL"

	// EnvLogFormat is read before the rest of the config so that config
	// errors are logged in the requested format.
	EnvLogFormat = "LOG_FORMAT"

	// EnvLegacyMongoURI is the variable the first deployments on Render used.
	EnvLegacyMongoURI = "MONGO_URI"
)
