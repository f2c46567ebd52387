package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nerrad567/gray-logic-hub/internal/audit"
	"github.com/nerrad567/gray-logic-hub/internal/infrastructure/database"
)

const testHome = `
site:
  id: test-site
hub:
  slots: 7
  bindings:
    - { slot: 0, device: living-room-light }
    - { slot: 1, device: bedroom-light }
    - { slot: 2, device: main-speaker }
    - { slot: 3, device: main-floor-thermostat }
devices:
  - { id: living-room-light, kind: light, location: Living Room }
  - { id: bedroom-light, kind: light, location: Bedroom }
  - { id: main-speaker, kind: music_player, location: Main Speaker }
  - { id: main-floor-thermostat, kind: thermostat, location: Main Floor, temperature: 22 }
logging:
  level: error
console:
  enabled: true
  color: false
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-config", "/etc/hub.yaml", "-demo"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if opts.configPath != "/etc/hub.yaml" {
		t.Errorf("configPath = %q, want /etc/hub.yaml", opts.configPath)
	}
	if !opts.demo {
		t.Error("demo = false, want true")
	}
	if opts.migrateDown {
		t.Error("migrateDown = true, want false")
	}

	if _, err := parseFlags([]string{"-bogus"}, &bytes.Buffer{}); err == nil {
		t.Error("parseFlags() expected error for unknown flag")
	}
}

func TestLoadConfig_BuiltInWhenNoFile(t *testing.T) {
	// Equivalent of t.Chdir (Go 1.24+) for older toolchains.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("GRAYLOGIC_CONFIG", "")

	cfg, path, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if path != "" {
		t.Errorf("path = %q, want empty for built-in config", path)
	}
	if len(cfg.Devices) != 4 {
		t.Errorf("len(Devices) = %d, want 4", len(cfg.Devices))
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	path := writeConfig(t, testHome)
	t.Setenv("GRAYLOGIC_CONFIG", path)

	cfg, got, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	if cfg.Site.ID != "test-site" {
		t.Errorf("Site.ID = %q, want test-site", cfg.Site.ID)
	}
}

func TestLoadConfig_FlagWinsOverEnv(t *testing.T) {
	t.Setenv("GRAYLOGIC_CONFIG", "/nonexistent/env.yaml")

	if _, _, err := loadConfig(writeConfig(t, testHome)); err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	err := run(testContext(t), []string{"-config", "/nonexistent/path/config.yaml"}, strings.NewReader(""), &bytes.Buffer{})
	if err == nil {
		t.Fatal("run() should fail with invalid config path")
	}
}

func TestRun_Demo(t *testing.T) {
	var out bytes.Buffer
	err := run(testContext(t), []string{"-demo", "-config", writeConfig(t, testHome)}, nil, &out)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	for _, want := range []string{
		"=== Smart Home Hub Status ===",
		"Living Room light is ON (Brightness: 75%)",
		"Main Floor thermostat is ON - Set to 22°C",
		"Main Floor temperature increased to 24°C",
		"Main Floor temperature decreased to 22°C",
		"Main Speaker music player is OFF",
		"Smart TV Light: ON (Brightness: 75%)",
		"Slot 4: LightOn | LightOff",
		"Last Command: LightOn",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("demo output missing %q", want)
		}
	}
}

func TestRun_Shell(t *testing.T) {
	in := strings.NewReader("on 0\noff 9\nundo\npower main-speaker on\nbogus\nstatus\nquit\non 1\n")
	var out bytes.Buffer

	if err := run(testContext(t), []string{"-config", writeConfig(t, testHome)}, in, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Living Room light is ON (Brightness: 75%)",
		"Living Room light is OFF",
		"no slot 9 (hub has slots 0..6)",
		"Main Speaker music player is ON - Playing: Default Playlist (Volume: 50)",
		`unknown command "bogus"`,
		"Last Command: LightOn",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("shell output missing %q\n%s", want, got)
		}
	}
	if strings.Contains(got, "Bedroom light is ON") {
		t.Error("commands after quit should not run")
	}
}

func TestRun_ShellStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pr, pw, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	defer pw.Close()
	defer pr.Close()

	cfgPath := writeConfig(t, testHome)
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, []string{"-config", cfgPath}, pr, &bytes.Buffer{})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run() error = %v, want nil on cancellation", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run() did not return after context cancellation")
	}
}

func TestRun_DemoWritesAuditTrail(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "hub.db")
	cfg := testHome + `
database:
  enabled: true
  path: "` + dbPath + `"
  wal_mode: true
  busy_timeout: 5
`
	if err := run(testContext(t), []string{"-demo", "-config", writeConfig(t, cfg)}, nil, &bytes.Buffer{}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	db, err := database.Open(database.Config{Path: dbPath, BusyTimeout: 5})
	if err != nil {
		t.Fatalf("database.Open() error = %v", err)
	}
	defer db.Close()

	result, err := audit.NewSQLiteRepository(db.DB).List(testContext(t), audit.Filter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	// 6 activates, 2 undos, 2 deactivates
	if result.Total != 10 {
		t.Errorf("Total = %d, want 10", result.Total)
	}

	undos, err := audit.NewSQLiteRepository(db.DB).List(testContext(t), audit.Filter{Op: "undo"})
	if err != nil {
		t.Fatalf("List(undo) error = %v", err)
	}
	for _, l := range undos.Logs {
		if l.Action != "ThermostatUp" || l.Slot != nil {
			t.Errorf("undo entry = %+v, want ThermostatUp without slot", l)
		}
		if l.Source != "demo" {
			t.Errorf("undo entry source = %q, want demo", l.Source)
		}
	}
}

func TestRun_ShellHistory(t *testing.T) {
	cfg := testHome + `
database:
  enabled: true
  path: "` + filepath.Join(t.TempDir(), "hub.db") + `"
  wal_mode: true
  busy_timeout: 5
`
	in := strings.NewReader("on 0\nON 1\nundo\nhistory 2\nhistory x\nquit\n")
	var out bytes.Buffer

	if err := run(testContext(t), []string{"-config", writeConfig(t, cfg)}, in, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	var entries []string
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.HasSuffix(line, " shell") {
			entries = append(entries, strings.Fields(strings.TrimLeft(line, "> "))[2])
		}
	}
	// newest first, limited to two
	if want := []string{"undo", "activate"}; strings.Join(entries, ",") != strings.Join(want, ",") {
		t.Errorf("history ops = %v, want %v\n%s", entries, want, out.String())
	}
	if !strings.Contains(out.String(), `invalid count "x"`) {
		t.Errorf("shell output missing invalid count message\n%s", out.String())
	}
}

func TestRun_ShellHistoryWithoutDatabase(t *testing.T) {
	in := strings.NewReader("history\nquit\n")
	var out bytes.Buffer

	if err := run(testContext(t), []string{"-config", writeConfig(t, testHome)}, in, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out.String(), "audit trail disabled") {
		t.Errorf("shell output missing %q\n%s", "audit trail disabled", out.String())
	}
}

func TestRun_ShellKeepsDeviceIDCase(t *testing.T) {
	cfg := `
site:
  id: test-site
devices:
  - { id: Hall-Lamp, kind: light, location: Hall }
logging:
  level: error
console:
  enabled: true
  color: false
`
	in := strings.NewReader("POWER Hall-Lamp ON\npower hall-lamp off\nquit\n")
	var out bytes.Buffer

	if err := run(testContext(t), []string{"-config", writeConfig(t, cfg)}, in, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Hall light is ON (Brightness: 75%)",
		"hall-lamp: device: not found (known: Hall-Lamp)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("shell output missing %q\n%s", want, got)
		}
	}
	if strings.Contains(got, "Hall light is OFF") {
		t.Error("a differently-cased ID should not match")
	}
}

func TestRun_MigrateDown(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "hub.db")
	cfgPath := writeConfig(t, testHome+`
database:
  enabled: true
  path: "`+dbPath+`"
  wal_mode: true
  busy_timeout: 5
`)
	if err := run(testContext(t), []string{"-demo", "-config", cfgPath}, nil, &bytes.Buffer{}); err != nil {
		t.Fatalf("run(-demo) error = %v", err)
	}

	var out bytes.Buffer
	if err := run(testContext(t), []string{"-migrate-down", "-config", cfgPath}, nil, &out); err != nil {
		t.Fatalf("run(-migrate-down) error = %v", err)
	}
	if !strings.Contains(out.String(), "migrations: 0 applied, 1 pending") {
		t.Errorf("output = %q, want migration status", out.String())
	}

	db, err := database.Open(database.Config{Path: dbPath, BusyTimeout: 5})
	if err != nil {
		t.Fatalf("database.Open() error = %v", err)
	}
	defer db.Close()
	var n int
	if err := db.QueryRowContext(testContext(t),
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'audit_logs'").Scan(&n); err != nil {
		t.Fatalf("query error = %v", err)
	}
	if n != 0 {
		t.Error("audit_logs table still exists after rollback")
	}
}

func TestRun_MigrateDownWithoutDatabase(t *testing.T) {
	err := run(testContext(t), []string{"-migrate-down", "-config", writeConfig(t, testHome)}, nil, &bytes.Buffer{})
	if !errors.Is(err, errAuditDisabled) {
		t.Errorf("run(-migrate-down) error = %v, want errAuditDisabled", err)
	}
}
