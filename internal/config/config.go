package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DatabaseConfig holds the Postgres connection settings for the catalog
// database.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the GORM/pgx connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// KafkaConfig holds the lead-event broker settings.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// WhatsAppConfig holds the handoff channel settings. Loaded once at start
// and never mutated.
type WhatsAppConfig struct {
	Host      string
	Recipient string
}

// ServiceConfig holds all configuration for the funnel service.
type ServiceConfig struct {
	Port         string
	AppEnv       string
	ClientOrigin string
	DB           DatabaseConfig
	Kafka        KafkaConfig
	WhatsApp     WhatsAppConfig
}

// Load reads configuration from FUNNEL_-prefixed environment variables with
// development defaults.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("FUNNEL")
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CLIENT_ORIGIN", "http://localhost:3000")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "kubaxi")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_TOPIC", "funnel.events")
	v.SetDefault("WHATSAPP_HOST", "wa.me")
	v.SetDefault("WHATSAPP_RECIPIENT", "")

	cfg := &ServiceConfig{
		Port:         ":" + v.GetString("SERVICE_PORT"),
		AppEnv:       v.GetString("APP_ENV"),
		ClientOrigin: v.GetString("CLIENT_ORIGIN"),
		DB: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(v.GetString("KAFKA_BROKERS"), ","),
			Topic:   v.GetString("KAFKA_TOPIC"),
		},
		WhatsApp: WhatsAppConfig{
			Host:      v.GetString("WHATSAPP_HOST"),
			Recipient: v.GetString("WHATSAPP_RECIPIENT"),
		},
	}

	if cfg.WhatsApp.Recipient == "" {
		return nil, fmt.Errorf("FUNNEL_WHATSAPP_RECIPIENT is required")
	}

	return cfg, nil
}
