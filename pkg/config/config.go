package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	CORS          CORSConfig
	Upload        UploadConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SARAYA_APP_ENV" required:"true"`
	Port         string `envconfig:"SARAYA_APP_PORT" default:"3001"`
	LogLevel     string `envconfig:"SARAYA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SARAYA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SARAYA_DB_DSN"`
	Driver string `envconfig:"SARAYA_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SARAYA_DB_HOST"`
	LegacyPort     int    `envconfig:"SARAYA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SARAYA_DB_USER"`
	LegacyPassword string `envconfig:"SARAYA_DB_PASSWORD"`
	LegacyName     string `envconfig:"SARAYA_DB_NAME"`
	LegacySSLMode  string `envconfig:"SARAYA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SARAYA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SARAYA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SARAYA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SARAYA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// RedisConfig is optional; login rate limiting is skipped when no URL or
// address is configured.
type RedisConfig struct {
	URL          string        `envconfig:"SARAYA_REDIS_URL"`
	Address      string        `envconfig:"SARAYA_REDIS_ADDR"`
	Password     string        `envconfig:"SARAYA_REDIS_PASSWORD"`
	DB           int           `envconfig:"SARAYA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SARAYA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SARAYA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SARAYA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SARAYA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SARAYA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Configured() bool {
	return r.URL != "" || r.Address != ""
}

// JWTConfig keeps the access and refresh token families on separate secrets
// so a compromise of one does not compromise the other.
type JWTConfig struct {
	AccessSecret      string `envconfig:"SARAYA_JWT_SECRET" required:"true"`
	RefreshSecret     string `envconfig:"SARAYA_JWT_REFRESH_SECRET" required:"true"`
	Issuer            string `envconfig:"SARAYA_JWT_ISSUER" default:"saraya-menu"`
	AccessTTLMinutes  int    `envconfig:"SARAYA_JWT_EXPIRATION_MINUTES" default:"15"`
	RefreshTTLMinutes int    `envconfig:"SARAYA_REFRESH_TOKEN_TTL_MINUTES" default:"10080"`
}

// AccessTTL returns the access token lifetime.
func (j JWTConfig) AccessTTL() time.Duration {
	if j.AccessTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.AccessTTLMinutes) * time.Minute
}

// RefreshTTL returns the refresh token lifetime.
func (j JWTConfig) RefreshTTL() time.Duration {
	if j.RefreshTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"SARAYA_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"SARAYA_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"SARAYA_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"SARAYA_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"SARAYA_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"SARAYA_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"SARAYA_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"SARAYA_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SARAYA_CORS_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:3000"`
}

type UploadConfig struct {
	Path      string `envconfig:"SARAYA_UPLOAD_PATH" default:"./uploads"`
	MaxSizeMB int    `envconfig:"SARAYA_MAX_UPLOAD_MB" default:"5"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"SARAYA_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"SARAYA_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	if strings.EqualFold(db.Driver, DriverSQLite) {
		return fmt.Errorf("%s is required when the sqlite driver is selected", EnvDBDSN)
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
