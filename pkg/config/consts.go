package config

// EnvPrefix is the envconfig prefix shared by every variable below.
const EnvPrefix = "LESTAHUB"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv     = "LESTAHUB_APP_ENV"
	EnvPort       = "LESTAHUB_APP_PORT"
	EnvDBDSN      = "LESTAHUB_DB_DSN"
	EnvDBHost     = "LESTAHUB_DB_HOST"
	EnvDBUser     = "LESTAHUB_DB_USER"
	EnvDBName     = "LESTAHUB_DB_NAME"
	EnvRedisURL   = "LESTAHUB_REDIS_URL"
	EnvJWTSecret  = "LESTAHUB_JWT_SECRET"
	EnvJWTIssuer  = "LESTAHUB_JWT_ISSUER"
	EnvJWTExpMins = "LESTAHUB_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
