// Package config assembles the console settings from .env, the process
// environment and an optional YAML file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Session store backends.
const (
	StoreFile      = "file"
	StoreFirestore = "firestore"
	StoreMemory    = "memory"
)

type Config struct {
	LeagueAPIURL   string        `yaml:"league_api_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	Port           string        `yaml:"port"`
	CORSHosts      []string      `yaml:"cors_hosts"`
	LogLevel       string        `yaml:"log_level"`
	Env            string        `yaml:"app_env"`
	Timezone       string        `yaml:"timezone"`

	Session  SessionConfig  `yaml:"session"`
	Firebase FirebaseConfig `yaml:"firebase"`
	Mail     MailConfig     `yaml:"mail"`
}

type SessionConfig struct {
	Store   string `yaml:"store"`
	File    string `yaml:"file"`
	Profile string `yaml:"profile"`
}

type FirebaseConfig struct {
	ProjectID       string `yaml:"project_id"`
	CredentialsJSON string `yaml:"credentials_json"`
}

type MailConfig struct {
	ResendKey string `yaml:"resend_key"`
	From      string `yaml:"from"`
}

// Location resolves Timezone, falling back to the machine zone.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", c.Timezone).Msg("unknown timezone, using local")
		return time.Local
	}
	return loc
}

func (c *Config) Development() bool {
	return c.Env == "" || c.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	// Plain numbers are seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	log.Warn().Str("key", key).Str("value", value).Msg("invalid duration, using default")
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".league-desk-session.json"
	}
	return dir + string(os.PathSeparator) + "league-desk" + string(os.PathSeparator) + "session.json"
}

// FromEnv reads the environment. Unset keys get their defaults.
func FromEnv() *Config {
	return &Config{
		LeagueAPIURL:   getEnv("LEAGUE_API_URL", "http://localhost:8080/api/v1"),
		RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", 30*time.Second),
		Port:           getEnv("PORT", "8090"),
		CORSHosts:      splitList(os.Getenv("CORS_HOSTS")),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Env:            getEnv("APP_ENV", "development"),
		Timezone:       os.Getenv("TIMEZONE"),
		Session: SessionConfig{
			Store:   getEnv("SESSION_STORE", StoreFile),
			File:    getEnv("SESSION_FILE", defaultSessionFile()),
			Profile: getEnv("SESSION_PROFILE", "default"),
		},
		Firebase: FirebaseConfig{
			ProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
			CredentialsJSON: os.Getenv("FIREBASE_CREDENTIALS_JSON"),
		},
		Mail: MailConfig{
			ResendKey: os.Getenv("RESEND_KEY"),
			From:      getEnv("MAIL_FROM", "onboarding@resend.dev"),
		},
	}
}

// Apply overlays the YAML file at path onto c. Keys absent from the file
// keep their current values.
func (c *Config) Apply(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

// Validate rejects settings the console cannot start with.
func (c *Config) Validate() error {
	if c.LeagueAPIURL == "" {
		return fmt.Errorf("league API URL is empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	switch c.Session.Store {
	case StoreFile:
		if c.Session.File == "" {
			return fmt.Errorf("session store %q needs a file path", StoreFile)
		}
	case StoreMemory:
	case StoreFirestore:
		if c.Firebase.ProjectID == "" {
			return fmt.Errorf("session store %q needs FIREBASE_PROJECT_ID", StoreFirestore)
		}
	default:
		return fmt.Errorf("unknown session store %q", c.Session.Store)
	}
	return nil
}

// Load reads .env (if present), the environment and CONFIG_FILE (if set).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	cfg := FromEnv()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.Apply(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
