package config

// EnvPrefix is applied by envconfig to every variable lookup.
const EnvPrefix = "SOLESTOCK"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "SOLESTOCK_APP_ENV"
	EnvPort     = "SOLESTOCK_APP_PORT"
	EnvDBDSN    = "SOLESTOCK_DB_DSN"
	EnvDBHost   = "SOLESTOCK_DB_HOST"
	EnvDBUser   = "SOLESTOCK_DB_USER"
	EnvDBName   = "SOLESTOCK_DB_NAME"
	EnvRedisURL = "SOLESTOCK_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
