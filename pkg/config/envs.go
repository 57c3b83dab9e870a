package config

const (
	EnvPrefix = "SARAYA"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	EnvAppEnv           = "SARAYA_APP_ENV"
	EnvPort             = "SARAYA_APP_PORT"
	EnvDBDSN            = "SARAYA_DB_DSN"
	EnvDBHost           = "SARAYA_DB_HOST"
	EnvDBUser           = "SARAYA_DB_USER"
	EnvDBName           = "SARAYA_DB_NAME"
	EnvJWTSecret        = "SARAYA_JWT_SECRET"
	EnvJWTRefreshSecret = "SARAYA_JWT_REFRESH_SECRET"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
