package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups; each service binary reads the
// sections it needs and verifies their presence at startup.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Billing  BillingConfig  `mapstructure:"billing"`
}

// ServerConfig contains all HTTP-server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	// JWTSecret signs every issued token; it must be shared by the auth
	// and patient services for stateless verification to work.
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"omitempty,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// SeedEmail/SeedPassword, when both set, make the auth server ensure a
	// login credential exists at startup. Meant for dev and test
	// environments only.
	SeedEmail    string `mapstructure:"seed_email"    validate:"omitempty,email"`
	SeedPassword string `mapstructure:"seed_password" validate:"omitempty,min=8"`
}

// BillingConfig contains the billing gRPC endpoint settings.
type BillingConfig struct {
	Address        string `mapstructure:"address"         validate:"required"`
	Port           int    `mapstructure:"port"            validate:"required,gt=0,lt=65536"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"required,gt=0"`
}

// Timeout returns the per-call deadline for billing RPCs.
func (c BillingConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// TokenLifetime returns the access token lifetime as a duration.
func (c AuthConfig) TokenLifetime() time.Duration {
	return time.Duration(c.TokenLifetimeMinutes) * time.Minute
}
