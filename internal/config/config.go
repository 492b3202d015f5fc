package config

import (
	"log/slog"
	"time"

	"github.com/heartmarshall/contentflow-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Workflow WorkflowConfig `yaml:"workflow"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// WriteRateLimit caps workflow writes per caller per minute; 0 disables it.
	WriteRateLimit int `yaml:"write_rate_limit" env:"SERVER_WRITE_RATE_LIMIT" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"contentflow"`
}

// AuthConfig holds bearer token settings. Tokens are issued by the
// identity layer in front of this service; workflowctl can mint dev tokens.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"contentflow"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings. Level accepts the slog level names,
// optionally with an offset such as "warn+2".
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
	// Source adds file:line to every record; text output always has it.
	Source bool `yaml:"source" env:"LOG_SOURCE" env-default:"false"`
}

// SlogLevel parses Level, falling back to info.
func (c LogConfig) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// WorkflowConfig holds the publication policy and advisory deadlines.
//
// The two approval flags default to true in LoadFile. They carry no
// env-default tag because cleanenv would apply it over a YAML false.
type WorkflowConfig struct {
	PostRequiresApproval        bool          `yaml:"post_requires_approval"         env:"WORKFLOW_POST_REQUIRES_APPROVAL"`
	PublicEventRequiresApproval bool          `yaml:"public_event_requires_approval" env:"WORKFLOW_PUBLIC_EVENT_REQUIRES_APPROVAL"`
	SelfPublishRole             string        `yaml:"self_publish_role"              env:"WORKFLOW_SELF_PUBLISH_ROLE"              env-default:"POST_SELF_PUBLISH"`
	PublicEventPublishRole      string        `yaml:"public_event_publish_role"      env:"WORKFLOW_PUBLIC_EVENT_PUBLISH_ROLE"      env-default:"PUBLIC_EVENT_PUBLISH"`
	ActivityTTL                 time.Duration `yaml:"activity_ttl"                   env:"WORKFLOW_ACTIVITY_TTL"                   env-default:"0s"`
	ProcessTTL                  time.Duration `yaml:"process_ttl"                    env:"WORKFLOW_PROCESS_TTL"                    env-default:"0s"`
}

// Policy returns the publication policy passed to the domain functions.
func (w WorkflowConfig) Policy() domain.PolicyConfig {
	return domain.PolicyConfig{
		PostRequiresApproval:        w.PostRequiresApproval,
		PublicEventRequiresApproval: w.PublicEventRequiresApproval,
		SelfPublishRole:             domain.Role(w.SelfPublishRole),
		PublicEventPublishRole:      domain.Role(w.PublicEventPublishRole),
	}
}
