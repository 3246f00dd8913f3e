package config

// EnvPrefix namespaces every StockTrail environment variable.
const EnvPrefix = "stocktrail"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv     = "STOCKTRAIL_APP_ENV"
	EnvPort       = "STOCKTRAIL_APP_PORT"
	EnvDBDSN      = "STOCKTRAIL_DB_DSN"
	EnvDBHost     = "STOCKTRAIL_DB_HOST"
	EnvDBUser     = "STOCKTRAIL_DB_USER"
	EnvDBName     = "STOCKTRAIL_DB_NAME"
	EnvRedisURL   = "STOCKTRAIL_REDIS_URL"
	EnvJWTSecret  = "STOCKTRAIL_JWT_SECRET"
	EnvJWTIssuer  = "STOCKTRAIL_JWT_ISSUER"
	EnvJWTExpMins = "STOCKTRAIL_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
