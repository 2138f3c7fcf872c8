package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Timeblock specifics
	Backend        BackendConfig
	Schedule       ScheduleConfig
	Notify         NotifyConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// BackendConfig points at the record store the service reads and
// writes (a PocketBase-style collections API).
type BackendConfig struct {
	URL         string
	AccessToken string
}

// ScheduleConfig tunes recurrence expansion and the timeline.
type ScheduleConfig struct {
	Timezone string
	// MaxInstances caps one generation run.
	MaxInstances int
	// TaskHorizonDays bounds unbounded task recurrences.
	TaskHorizonDays int
	// EventHorizonMonths bounds the rolling virtual expansion window.
	EventHorizonMonths int
}

// NotifyConfig tunes the reminder scheduler.
type NotifyConfig struct {
	Enabled bool
	// UserID is the account this service instance watches.
	UserID string
	Lead   time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Backend record store
	cfg.Backend.URL = viper.GetString("backend.url")
	cfg.Backend.AccessToken = viper.GetString("backend.access_token")
	if backendURL := viper.GetString("backend_url"); backendURL != "" {
		cfg.Backend.URL = backendURL
	}
	if backendToken := viper.GetString("backend_access_token"); backendToken != "" {
		cfg.Backend.AccessToken = backendToken
	}
	if cfg.Backend.URL == "" {
		return nil, fmt.Errorf("backend.url is required")
	}

	// Schedule
	cfg.Schedule.Timezone = viper.GetString("schedule.timezone")
	cfg.Schedule.MaxInstances = viper.GetInt("schedule.max_instances")
	cfg.Schedule.TaskHorizonDays = viper.GetInt("schedule.task_horizon_days")
	cfg.Schedule.EventHorizonMonths = viper.GetInt("schedule.event_horizon_months")

	// Notify
	cfg.Notify.Enabled = viper.GetBool("notify.enabled")
	cfg.Notify.UserID = viper.GetString("notify.user_id")
	cfg.Notify.Lead = viper.GetDuration("notify.lead")
	if cfg.Notify.Enabled && cfg.Notify.UserID == "" {
		return nil, fmt.Errorf("notify.user_id is required when notify is enabled")
	}

	// Google Calendar mirror (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("schedule.timezone", "UTC")
	viper.SetDefault("schedule.max_instances", 100)
	viper.SetDefault("schedule.task_horizon_days", 365)
	viper.SetDefault("schedule.event_horizon_months", 3)

	viper.SetDefault("notify.enabled", false)
	viper.SetDefault("notify.lead", "15m")
}
