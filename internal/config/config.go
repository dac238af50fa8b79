// Package config provides configuration management for the league rankings application.
package config

// Config represents the complete application configuration
type Config struct {
	App    AppConfig    `mapstructure:"app" validate:"required"`
	Output OutputConfig `mapstructure:"output" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// OutputConfig represents report output configuration
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"required,outputformat"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsStaging checks if the application is running in staging mode
func (c *Config) IsStaging() bool {
	return c.App.Environment == "staging"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
