package config

// EnvPrefix is the envconfig prefix shared by every Scolay variable.
const EnvPrefix = "SCOLAY"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv     = "SCOLAY_APP_ENV"
	EnvPort       = "SCOLAY_APP_PORT"
	EnvDBDSN      = "SCOLAY_DB_DSN"
	EnvDBHost     = "SCOLAY_DB_HOST"
	EnvDBUser     = "SCOLAY_DB_USER"
	EnvDBName     = "SCOLAY_DB_NAME"
	EnvRedisURL   = "SCOLAY_REDIS_URL"
	EnvJWTSecret  = "SCOLAY_JWT_SECRET"
	EnvJWTIssuer  = "SCOLAY_JWT_ISSUER"
	EnvJWTExpMins = "SCOLAY_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
