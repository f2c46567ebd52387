package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultSlotCount is the number of hub slots used when none is configured.
const DefaultSlotCount = 7

// Config is the root configuration structure for Gray Logic Hub.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	Hub      HubConfig      `yaml:"hub"`
	Devices  []DeviceConfig `yaml:"devices"`
	Database DatabaseConfig `yaml:"database"`
	MQTT     MQTTConfig     `yaml:"mqtt"`
	InfluxDB InfluxDBConfig `yaml:"influxdb"`
	Logging  LoggingConfig  `yaml:"logging"`
	Console  ConsoleConfig  `yaml:"console"`
}

// SiteConfig contains site-specific information.
type SiteConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// HubConfig contains the dispatcher slot table settings.
type HubConfig struct {
	// Slots is the fixed number of slots in the hub.
	Slots int `yaml:"slots"`

	// Bindings assign a device's canonical action pair to a slot.
	Bindings []SlotBinding `yaml:"bindings"`
}

// SlotBinding binds the activate/deactivate actions of a device to a slot.
type SlotBinding struct {
	Slot   int    `yaml:"slot"`
	Device string `yaml:"device"`
}

// DeviceConfig describes a single device model to create at startup.
type DeviceConfig struct {
	ID       string `yaml:"id"`
	Kind     string `yaml:"kind"` // light, music_player, thermostat
	Location string `yaml:"location"`

	// Temperature is the initial set point (thermostats only). It is not
	// range-checked; only later adjustments are clamped.
	Temperature int `yaml:"temperature,omitempty"`
}

// DatabaseConfig contains SQLite settings for the audit trail.
type DatabaseConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Path        string `yaml:"path"`
	WALMode     bool   `yaml:"wal_mode"`
	BusyTimeout int    `yaml:"busy_timeout"`
}

// MQTTConfig contains MQTT broker connection settings.
type MQTTConfig struct {
	Enabled   bool                `yaml:"enabled"`
	Broker    MQTTBrokerConfig    `yaml:"broker"`
	Auth      MQTTAuthConfig      `yaml:"auth"`
	QoS       int                 `yaml:"qos"`
	Reconnect MQTTReconnectConfig `yaml:"reconnect"`
}

// MQTTBrokerConfig contains MQTT broker connection details.
type MQTTBrokerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	TLS      bool   `yaml:"tls"`
	ClientID string `yaml:"client_id"`
}

// MQTTAuthConfig contains MQTT authentication credentials.
type MQTTAuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MQTTReconnectConfig contains MQTT reconnection settings.
type MQTTReconnectConfig struct {
	InitialDelay int `yaml:"initial_delay"`
	MaxDelay     int `yaml:"max_delay"`
	MaxAttempts  int `yaml:"max_attempts"`
}

// InfluxDBConfig contains InfluxDB connection settings.
type InfluxDBConfig struct {
	Enabled       bool   `yaml:"enabled"`
	URL           string `yaml:"url"`
	Token         string `yaml:"token"`
	Org           string `yaml:"org"`
	Bucket        string `yaml:"bucket"`
	BatchSize     int    `yaml:"batch_size"`
	FlushInterval int    `yaml:"flush_interval"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// ConsoleConfig controls the console notification sink.
type ConsoleConfig struct {
	Enabled bool `yaml:"enabled"`
	Color   bool `yaml:"color"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: GRAYLOGIC_SECTION_KEY
// For example: GRAYLOGIC_DATABASE_PATH, GRAYLOGIC_HUB_SLOTS
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("applying environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the built-in configuration: the reference four-device
// home with every external sink disabled. It is what the hub runs with
// when no config file exists.
func Default() *Config {
	cfg := defaultConfig()
	cfg.Devices = []DeviceConfig{
		{ID: "living-room-light", Kind: "light", Location: "Living Room"},
		{ID: "bedroom-light", Kind: "light", Location: "Bedroom"},
		{ID: "main-speaker", Kind: "music_player", Location: "Main Speaker"},
		{ID: "main-floor-thermostat", Kind: "thermostat", Location: "Main Floor", Temperature: 22},
	}
	cfg.Hub.Bindings = []SlotBinding{
		{Slot: 0, Device: "living-room-light"},
		{Slot: 1, Device: "bedroom-light"},
		{Slot: 2, Device: "main-speaker"},
		{Slot: 3, Device: "main-floor-thermostat"},
	}
	return cfg
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			ID:   "site-001",
			Name: "Gray Logic Hub",
		},
		Hub: HubConfig{
			Slots: DefaultSlotCount,
		},
		Database: DatabaseConfig{
			Path:        "./data/graylogic-hub.db",
			WALMode:     true,
			BusyTimeout: 5,
		},
		MQTT: MQTTConfig{
			Broker: MQTTBrokerConfig{
				Host:     "localhost",
				Port:     1883,
				ClientID: "graylogic-hub",
			},
			QoS: 1,
			Reconnect: MQTTReconnectConfig{
				InitialDelay: 1,
				MaxDelay:     60,
			},
		},
		InfluxDB: InfluxDBConfig{
			BatchSize:     100,
			FlushInterval: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Console: ConsoleConfig{
			Enabled: true,
			Color:   true,
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: GRAYLOGIC_SECTION_KEY
// A set variable that cannot be parsed is an error.
func applyEnvOverrides(cfg *Config) error {
	// Hub
	if v := os.Getenv("GRAYLOGIC_HUB_SLOTS"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("GRAYLOGIC_HUB_SLOTS %q is not an integer", v)
		}
		cfg.Hub.Slots = n
	}

	// Database
	if v := os.Getenv("GRAYLOGIC_DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}

	// MQTT
	if v := os.Getenv("GRAYLOGIC_MQTT_HOST"); v != "" {
		cfg.MQTT.Broker.Host = v
	}
	if v := os.Getenv("GRAYLOGIC_MQTT_USERNAME"); v != "" {
		cfg.MQTT.Auth.Username = v
	}
	if v := os.Getenv("GRAYLOGIC_MQTT_PASSWORD"); v != "" {
		cfg.MQTT.Auth.Password = v
	}

	// InfluxDB
	if v := os.Getenv("GRAYLOGIC_INFLUXDB_TOKEN"); v != "" {
		cfg.InfluxDB.Token = v
	}
	return nil
}

// Validate checks the configuration for structural errors.
//
// Device kinds are not checked here; the home builder owns the list of
// supported kinds and rejects unknown ones.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	if c.Site.ID == "" {
		errs = append(errs, "site.id is required")
	}

	if c.Hub.Slots < 1 {
		errs = append(errs, "hub.slots must be at least 1")
	}

	// Devices: IDs must be present and unique
	seen := make(map[string]bool, len(c.Devices))
	for i, d := range c.Devices {
		switch {
		case d.ID == "":
			errs = append(errs, fmt.Sprintf("devices[%d].id is required", i))
		case seen[d.ID]:
			errs = append(errs, fmt.Sprintf("devices[%d].id %q is duplicated", i, d.ID))
		default:
			seen[d.ID] = true
		}
		if d.Kind == "" {
			errs = append(errs, fmt.Sprintf("devices[%d].kind is required", i))
		}
	}

	// Bindings must reference known devices and existing slots
	for i, b := range c.Hub.Bindings {
		if !seen[b.Device] {
			errs = append(errs, fmt.Sprintf("hub.bindings[%d].device %q is not a configured device", i, b.Device))
		}
		if b.Slot < 0 || b.Slot >= c.Hub.Slots {
			errs = append(errs, fmt.Sprintf("hub.bindings[%d].slot %d is outside 0..%d", i, b.Slot, c.Hub.Slots-1))
		}
	}

	if c.Database.Enabled && c.Database.Path == "" {
		errs = append(errs, "database.path is required when the audit trail is enabled")
	}

	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		errs = append(errs, "mqtt.qos must be 0, 1, or 2")
	}

	if c.InfluxDB.Enabled && c.InfluxDB.URL == "" {
		errs = append(errs, "influxdb.url is required when influxdb is enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}
