package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	SRS      SRSConfig      `mapstructure:"srs"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig selects and configures the deck storage backend.
type DatabaseConfig struct {
	// Driver is the storage backend: "memory" keeps decks in process,
	// "sqlite" uses a local file, "postgres" a server.
	Driver string `mapstructure:"driver" validate:"required,oneof=memory sqlite postgres"`

	// Path is the SQLite database file. Required for the sqlite driver.
	Path string `mapstructure:"path" validate:"required_if=Driver sqlite"`

	// URL is the PostgreSQL connection string. Required for the postgres
	// driver.
	URL string `mapstructure:"url" validate:"required_if=Driver postgres"`
}

// AuthConfig contains all authentication settings.
type AuthConfig struct {
	// JWTSecret signs access tokens. Must be long enough to resist
	// brute force.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes bounds how long an issued token stays valid.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// PasswordHash is the bcrypt hash of the owner password.
	PasswordHash string `mapstructure:"password_hash" validate:"required"`
}

// SRSConfig tunes review scheduling and card activation. Zero values fall
// back to the built-in defaults, so a config file only needs the knobs it
// changes.
type SRSConfig struct {
	// FailDelaySeconds is how soon a failed card comes back.
	FailDelaySeconds int `mapstructure:"fail_delay_seconds" validate:"gte=0"`

	// ActiveCap limits how many active cards an import fills up to.
	ActiveCap int `mapstructure:"active_cap" validate:"gte=0"`

	// BatchFull and BatchPartial size accuracy-gated replenishment.
	BatchFull    int `mapstructure:"batch_full" validate:"gte=0"`
	BatchPartial int `mapstructure:"batch_partial" validate:"gte=0"`

	// HighAccuracy and LowAccuracy are the replenishment gate thresholds.
	HighAccuracy float64 `mapstructure:"high_accuracy" validate:"gte=0,lte=1"`
	LowAccuracy  float64 `mapstructure:"low_accuracy" validate:"gte=0,lte=1"`
}
