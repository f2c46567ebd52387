package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	_ "github.com/nerrad567/gray-logic-hub/migrations"

	"github.com/nerrad567/gray-logic-hub/internal/audit"
	"github.com/nerrad567/gray-logic-hub/internal/device"
	"github.com/nerrad567/gray-logic-hub/internal/events"
	"github.com/nerrad567/gray-logic-hub/internal/home"
	"github.com/nerrad567/gray-logic-hub/internal/hub"
	"github.com/nerrad567/gray-logic-hub/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-hub/internal/infrastructure/database"
	"github.com/nerrad567/gray-logic-hub/internal/infrastructure/influxdb"
	"github.com/nerrad567/gray-logic-hub/internal/infrastructure/logging"
	"github.com/nerrad567/gray-logic-hub/internal/infrastructure/mqtt"
	"github.com/nerrad567/gray-logic-hub/internal/notify"
	"github.com/nerrad567/gray-logic-hub/internal/telemetry"
)

// errAuditDisabled is returned by history when no database is configured.
var errAuditDisabled = errors.New("audit trail disabled")

// app is an assembled hub with its sinks.
type app struct {
	cfg  *config.Config
	log  *logging.Logger
	home *home.Home

	db        *database.DB
	mqtt      *mqtt.Client
	influx    *influxdb.Client
	publisher *events.Publisher
	recorder  *audit.Recorder
	auditLogs audit.Repository

	source string // audit source column: "demo" or "shell"

	closers []func()
}

// newApp loads configuration, connects the enabled sinks and builds the home.
// On error every sink opened so far is closed again.
func newApp(ctx context.Context, flagPath, source string, out io.Writer) (*app, error) {
	a := &app{log: logging.Default(), source: source}
	if err := a.init(ctx, flagPath, out); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) init(ctx context.Context, flagPath string, out io.Writer) error {
	cfg, path, err := loadConfig(flagPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg
	a.log = logging.New(cfg.Logging, version)
	if path == "" {
		a.log.Info("no config file found, using built-in configuration")
	} else {
		a.log.Info("configuration loaded", "path", path)
	}

	var notifiers notify.Fanout
	if cfg.Console.Enabled {
		notifiers = append(notifiers, notify.NewConsole(out, cfg.Console.Color))
	} else {
		notifiers = append(notifiers, notify.NewLog(a.log))
	}

	registry := device.NewRegistry()
	var observers []hub.Observer

	if cfg.Database.Enabled {
		recorder, dbErr := a.openAudit(ctx, registry)
		if dbErr != nil {
			return dbErr
		}
		observers = append(observers, recorder)
	} else {
		a.log.Info("audit trail disabled")
	}

	if cfg.MQTT.Enabled {
		if mqttErr := a.connectMQTT(); mqttErr != nil {
			return mqttErr
		}
		notifiers = append(notifiers, a.publisher)
		observers = append(observers, a.publisher)
	} else {
		a.log.Info("MQTT disabled")
	}

	if cfg.InfluxDB.Enabled {
		if influxErr := a.connectInflux(); influxErr != nil {
			return influxErr
		}
		observers = append(observers, telemetry.NewRecorder(a.influx, cfg.Site.ID, registry))
	} else {
		a.log.Info("InfluxDB disabled")
	}

	if err := healthCheck(ctx, a.db, a.mqtt, a.influx); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	a.home, err = home.Build(cfg, home.Options{
		Notifier:  notifiers,
		Observers: observers,
		Logger:    a.log,
		Devices:   registry,
	})
	if err != nil {
		return err
	}

	// Retained state is lost when the broker restarts; republish it on
	// every reconnect.
	if a.mqtt != nil {
		a.mqtt.SetOnConnect(a.publishRetained)
	}
	return nil
}

// loadConfig resolves the config path: -config flag, then GRAYLOGIC_CONFIG,
// then the default path. Only a missing default file falls back to the
// built-in configuration; an explicit path must exist.
func loadConfig(flagPath string) (*config.Config, string, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv("GRAYLOGIC_CONFIG")
	}
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); errors.Is(err, fs.ErrNotExist) {
			return config.Default(), "", nil
		}
		path = defaultConfigPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

func (a *app) openAudit(ctx context.Context, registry *device.Registry) (*audit.Recorder, error) {
	db, err := database.Open(database.ConfigFrom(a.cfg.Database))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	a.db = db
	a.closers = append(a.closers, func() {
		a.log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			a.log.Error("error closing database", "error", closeErr)
		}
	})
	a.log.Info("database connected", "path", db.Path())

	if err := db.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	a.log.Info("database migrations complete")

	a.auditLogs = audit.NewSQLiteRepository(db.DB)
	a.recorder = audit.NewRecorder(
		a.auditLogs,
		a.cfg.Site.ID,
		audit.WithSource(a.source),
		audit.WithSnapshot(registry.Snapshot),
		audit.WithLogger(a.log),
	)
	a.closers = append(a.closers, func() {
		if closeErr := a.recorder.Close(); closeErr != nil {
			a.log.Error("error flushing audit trail", "error", closeErr)
		}
	})
	return a.recorder, nil
}

// migrateDown rolls back the most recent audit database migration and
// reports the migrations still applied.
func migrateDown(ctx context.Context, flagPath string, out io.Writer) error {
	cfg, _, err := loadConfig(flagPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if !cfg.Database.Enabled {
		return errAuditDisabled
	}

	db, err := database.Open(database.ConfigFrom(cfg.Database))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := db.MigrateDown(ctx); err != nil {
		return fmt.Errorf("rolling back migration: %w", err)
	}
	applied, pending, err := db.GetMigrationStatus(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "migrations: %d applied, %d pending\n", len(applied), len(pending))
	return nil
}

// history returns the newest audit entries, newest first. Queued entries
// are written before the query runs.
func (a *app) history(ctx context.Context, limit int) ([]audit.AuditLog, error) {
	if a.auditLogs == nil {
		return nil, errAuditDisabled
	}
	if err := a.recorder.Flush(ctx); err != nil {
		return nil, fmt.Errorf("flushing audit trail: %w", err)
	}
	result, err := a.auditLogs.List(ctx, audit.Filter{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("listing audit trail: %w", err)
	}
	return result.Logs, nil
}

func (a *app) connectMQTT() error {
	client, err := mqtt.Connect(a.cfg.MQTT, a.cfg.Site.ID)
	if err != nil {
		return fmt.Errorf("connecting to MQTT: %w", err)
	}
	a.mqtt = client
	a.closers = append(a.closers, func() {
		a.log.Info("disconnecting from MQTT")
		if closeErr := client.Close(); closeErr != nil {
			a.log.Error("error closing MQTT", "error", closeErr)
		}
	})

	client.SetLogger(a.log)
	client.SetOnDisconnect(func(err error) {
		a.log.Warn("MQTT events are dropped until the broker is back", "error", err)
	})
	a.log.Info("MQTT connected",
		"broker", fmt.Sprintf("%s:%d", a.cfg.MQTT.Broker.Host, a.cfg.MQTT.Broker.Port),
		"client_id", a.cfg.MQTT.Broker.ClientID,
	)

	a.publisher = events.NewPublisher(client, a.cfg.Site.ID, client.QoS(), a.log)
	a.closers = append(a.closers, func() {
		if closeErr := a.publisher.Close(); closeErr != nil {
			a.log.Error("error flushing MQTT events", "error", closeErr)
		}
	})
	return nil
}

func (a *app) connectInflux() error {
	client, err := influxdb.Connect(a.cfg.InfluxDB)
	if err != nil {
		return fmt.Errorf("connecting to InfluxDB: %w", err)
	}
	a.influx = client
	a.closers = append(a.closers, func() {
		a.log.Info("closing InfluxDB connection")
		if closeErr := client.Close(); closeErr != nil {
			a.log.Error("error closing InfluxDB", "error", closeErr)
		}
	})

	client.SetOnError(func(err error) {
		a.log.Error("InfluxDB write error", "error", err)
	})
	a.log.Info("InfluxDB connected",
		"url", a.cfg.InfluxDB.URL,
		"org", a.cfg.InfluxDB.Org,
		"bucket", a.cfg.InfluxDB.Bucket,
	)
	return nil
}

// publishStatus sends the status report to every notifier and, when MQTT
// is enabled, publishes the structured report and device states.
func (a *app) publishStatus() {
	a.home.Hub.PublishStatus()
	a.publishRetained()
}

func (a *app) publishRetained() {
	if a.publisher == nil {
		return
	}
	a.publisher.PublishStatus(a.home.Hub.StatusReport())
	a.publisher.PublishDeviceStates(a.home.Devices.Snapshot())
}

// Close releases sinks in reverse order of opening.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// healthCheck verifies the enabled infrastructure connections.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - db: Database connection (nil if the audit trail is disabled)
//   - mqttClient: MQTT client (nil if disabled)
//   - influxClient: InfluxDB client (nil if disabled)
//
// Returns:
//   - error: First health check failure, or nil if all healthy
func healthCheck(ctx context.Context, db *database.DB, mqttClient *mqtt.Client, influxClient *influxdb.Client) error {
	if db != nil {
		if err := db.HealthCheck(ctx); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}

	if mqttClient != nil {
		if err := mqttClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("mqtt: %w", err)
		}
	}

	if influxClient != nil {
		if err := influxClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("influxdb: %w", err)
		}
	}

	return nil
}
