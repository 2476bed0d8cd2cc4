/**
 * @description
 * This file handles the configuration management for the account-service.
 * It uses the Viper library to read settings from environment variables or a
 * .env file.
 *
 * @dependencies
 * - github.com/spf13/viper: For configuration management.
 */
package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config stores all configuration for the application.
type Config struct {
	DatabaseURL          string `mapstructure:"DATABASE_URL"`
	ServerPort           string `mapstructure:"SERVER_PORT"`
	JWTSecret            string `mapstructure:"JWT_SECRET"`
	AdminJWTSecret       string `mapstructure:"ADMIN_JWT_SECRET"`
	AccessTokenTTLMinute int    `mapstructure:"ACCESS_TOKEN_TTL_MINUTES"`
	SMTPHost             string `mapstructure:"SMTP_HOST"`
	SMTPPort             string `mapstructure:"SMTP_PORT"`
	SMTPUsername         string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword         string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom             string `mapstructure:"SMTP_FROM"`
	RabbitMQURL          string `mapstructure:"RABBITMQ_URL"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ACCESS_TOKEN_TTL_MINUTES", 60)
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", "587")

	// Bind envs explicitly so containers pick them up reliably
	_ = viper.BindEnv("DATABASE_URL")
	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("JWT_SECRET")
	_ = viper.BindEnv("ADMIN_JWT_SECRET")
	_ = viper.BindEnv("ACCESS_TOKEN_TTL_MINUTES")
	_ = viper.BindEnv("SMTP_HOST")
	_ = viper.BindEnv("SMTP_PORT")
	_ = viper.BindEnv("SMTP_USERNAME")
	_ = viper.BindEnv("SMTP_PASSWORD")
	_ = viper.BindEnv("SMTP_FROM")
	_ = viper.BindEnv("RABBITMQ_URL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: Error reading config file: %s", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// The admin endpoints default to the same signing secret as sign-in
	// tokens unless a dedicated one is configured.
	if config.AdminJWTSecret == "" {
		config.AdminJWTSecret = config.JWTSecret
	}

	return &config, nil
}
