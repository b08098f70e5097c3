package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	Service      ServiceConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	FeatureFlags FeatureFlagsConfig
	Cron         CronConfig
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
	Env          string `envconfig:"LESTAHUB_APP_ENV" required:"true"`
	Port         string `envconfig:"LESTAHUB_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"LESTAHUB_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LESTAHUB_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"LESTAHUB_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"LESTAHUB_DB_DSN"`
	Driver string `envconfig:"LESTAHUB_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"LESTAHUB_DB_HOST"`
	LegacyPort     int    `envconfig:"LESTAHUB_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"LESTAHUB_DB_USER"`
	LegacyPassword string `envconfig:"LESTAHUB_DB_PASSWORD"`
	LegacyName     string `envconfig:"LESTAHUB_DB_NAME"`
	LegacySSLMode  string `envconfig:"LESTAHUB_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"LESTAHUB_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"LESTAHUB_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"LESTAHUB_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"LESTAHUB_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"LESTAHUB_REDIS_URL" required:"true"`
	Address      string        `envconfig:"LESTAHUB_REDIS_ADDR"`
	Password     string        `envconfig:"LESTAHUB_REDIS_PASSWORD"`
	DB           int           `envconfig:"LESTAHUB_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"LESTAHUB_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"LESTAHUB_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"LESTAHUB_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"LESTAHUB_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"LESTAHUB_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"LESTAHUB_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"LESTAHUB_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"LESTAHUB_JWT_EXPIRATION_MINUTES" required:"true"`
}

// Expiration returns the access token TTL configured in minutes.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"LESTAHUB_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"LESTAHUB_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"LESTAHUB_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"LESTAHUB_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"LESTAHUB_ARGON_KEY_LEN" default:"32"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"LESTAHUB_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"LESTAHUB_AUTO_MIGRATE" default:"false"`
}

type CronConfig struct {
	OverdueSweepInterval time.Duration `envconfig:"LESTAHUB_CRON_OVERDUE_SWEEP_INTERVAL" default:"1h"`
	LockTTL              time.Duration `envconfig:"LESTAHUB_CRON_LOCK_TTL" default:"5m"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
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
