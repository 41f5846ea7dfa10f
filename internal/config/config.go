package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	MongoDB struct {
		URI                    string `yaml:"uri"`
		Database               string `yaml:"database"`
		DriverCollection       string `yaml:"driver_collection"`
		AssignmentCollection   string `yaml:"assignment_collection"`
		NotificationCollection string `yaml:"notification_collection"`
		ConnectTimeoutSeconds  int    `yaml:"connect_timeout_seconds"`
	} `yaml:"mongodb"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`
}

var AppConfig *Config

// LoadConfig reads configuration from config.yaml, or entirely from
// environment variables when MONGO_URI is set (test/container mode).
func LoadConfig() {
	var cfg Config

	mongoURI := os.Getenv("MONGO_URI")

	if mongoURI == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.MongoDB.URI = mongoURI
	cfg.MongoDB.Database = getEnv("MONGO_DATABASE", "delivery_management")
	cfg.Server.Env = getEnv("SERVER_ENV", "development")
	cfg.Server.Host = getEnv("SERVER_HOST", "0.0.0.0")
	cfg.Server.Port, _ = strconv.Atoi(getEnv("SERVER_PORT", "4000"))

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(getEnv("SMTP_PORT", "587"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = getEnv("SMTP_FROM", "noreply@delivery-management.local")
	cfg.Email.FromName = "Delivery Management Team"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.MongoDB.DriverCollection == "" {
		cfg.MongoDB.DriverCollection = "Drivers"
	}
	if cfg.MongoDB.AssignmentCollection == "" {
		cfg.MongoDB.AssignmentCollection = "DeliveryAssignments"
	}
	if cfg.MongoDB.NotificationCollection == "" {
		cfg.MongoDB.NotificationCollection = "Notifications"
	}
	if cfg.MongoDB.ConnectTimeoutSeconds <= 0 {
		cfg.MongoDB.ConnectTimeoutSeconds = 10
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetConfig returns the loaded configuration, loading it on first use.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
