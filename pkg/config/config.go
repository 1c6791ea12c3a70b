package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable read by Load.
const EnvPrefix = "BITEAFFAIR"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "BITEAFFAIR_DB_DSN"
	EnvDBHost = "BITEAFFAIR_DB_HOST"
	EnvDBUser = "BITEAFFAIR_DB_USER"
	EnvDBName = "BITEAFFAIR_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Session      SessionConfig
	Admin        AdminConfig
	Orders       OrdersConfig
	Notify       NotifyConfig
	GCP          GCPConfig
	PubSub       PubSubConfig
	FeatureFlags FeatureFlagsConfig
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
	Env          string `envconfig:"BITEAFFAIR_APP_ENV" required:"true"`
	Port         string `envconfig:"BITEAFFAIR_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BITEAFFAIR_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BITEAFFAIR_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"BITEAFFAIR_DB_DSN"`
	Driver string `envconfig:"BITEAFFAIR_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"BITEAFFAIR_DB_HOST"`
	LegacyPort     int    `envconfig:"BITEAFFAIR_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"BITEAFFAIR_DB_USER"`
	LegacyPassword string `envconfig:"BITEAFFAIR_DB_PASSWORD"`
	LegacyName     string `envconfig:"BITEAFFAIR_DB_NAME"`
	LegacySSLMode  string `envconfig:"BITEAFFAIR_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"BITEAFFAIR_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BITEAFFAIR_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BITEAFFAIR_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BITEAFFAIR_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"BITEAFFAIR_REDIS_URL" required:"true"`
	Address      string        `envconfig:"BITEAFFAIR_REDIS_ADDR"`
	Password     string        `envconfig:"BITEAFFAIR_REDIS_PASSWORD"`
	DB           int           `envconfig:"BITEAFFAIR_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BITEAFFAIR_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BITEAFFAIR_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BITEAFFAIR_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BITEAFFAIR_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BITEAFFAIR_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// SessionConfig controls the storefront session store (carts, wizard state,
// saved location preference).
type SessionConfig struct {
	TTL time.Duration `envconfig:"BITEAFFAIR_SESSION_TTL" default:"24h"`
}

// AdminConfig guards the admin order-review endpoints. The approval actor is
// an out-of-band operator, not a storefront user, so a shared token is enough.
type AdminConfig struct {
	Token string `envconfig:"BITEAFFAIR_ADMIN_TOKEN" required:"true"`
}

type OrdersConfig struct {
	IDPrefix     string        `envconfig:"BITEAFFAIR_ORDER_ID_PREFIX" default:"ORD"`
	PollInterval time.Duration `envconfig:"BITEAFFAIR_ORDER_POLL_INTERVAL" default:"30s"`
}

// NotifyConfig selects the order notification channel.
type NotifyConfig struct {
	Mode          string `envconfig:"BITEAFFAIR_NOTIFY_MODE" default:"log"`
	AdminEmail    string `envconfig:"BITEAFFAIR_NOTIFY_ADMIN_EMAIL" default:"orders@biteaffair.com"`
	CustomerTopic string `envconfig:"BITEAFFAIR_NOTIFY_CUSTOMER_TOPIC"`
	AdminTopic    string `envconfig:"BITEAFFAIR_NOTIFY_ADMIN_TOPIC"`
}

// NotifyModePubSub enables the Pub/Sub backed notifier; anything else keeps
// the log-only notifier used in dev.
const NotifyModePubSub = "pubsub"

type GCPConfig struct {
	ProjectID       string `envconfig:"BITEAFFAIR_GCP_PROJECT_ID"`
	CredentialsJSON string `envconfig:"BITEAFFAIR_GCP_CREDENTIALS_JSON"`
}

type PubSubConfig struct {
	OrderEventsTopic string `envconfig:"BITEAFFAIR_PUBSUB_ORDER_EVENTS_TOPIC" default:"ba-order-events"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"BITEAFFAIR_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"BITEAFFAIR_AUTO_MIGRATE" default:"false"`
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
