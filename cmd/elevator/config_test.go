package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("ELEVATOR_AUTH_SIGNING_KEY", "k")

	cfg, err := loadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Port != "8080" || cfg.DBPath != "elevator.db" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	d := cfg.Dispatch
	if d.MinFloor != 0 || d.MaxFloor != 9 || d.InitialFloor != 0 {
		t.Fatalf("floor defaults: %+v", d)
	}
	if d.DwellDuration != 3*time.Second || d.TravelTimePerFloor != time.Second || cfg.Tick != 100*time.Millisecond {
		t.Fatalf("timing defaults: dwell=%v travel=%v tick=%v", d.DwellDuration, d.TravelTimePerFloor, cfg.Tick)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Fatalf("token ttl = %v", cfg.Auth.TokenTTL)
	}
}

func TestLoadConfig_FileThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yml", `
port: "9000"
auth:
  signing_key: "from-file"
  token_ttl: 30m
elevator:
  min_floor: -2
  max_floor: 20
  initial_floor: 0
  dwell: 5s
  travel_per_floor: 1500ms
  tick: 50ms
`)
	t.Setenv("ELEVATOR_ELEVATOR_MAX_FLOOR", "12")
	t.Setenv("ELEVATOR_PORT", "9100")

	cfg, err := loadConfig(dir)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Port != "9100" {
		t.Fatalf("env should override port, got %q", cfg.Port)
	}
	if cfg.Dispatch.MinFloor != -2 || cfg.Dispatch.MaxFloor != 12 {
		t.Fatalf("floors = [%d, %d]", cfg.Dispatch.MinFloor, cfg.Dispatch.MaxFloor)
	}
	if cfg.Dispatch.DwellDuration != 5*time.Second || cfg.Dispatch.TravelTimePerFloor != 1500*time.Millisecond {
		t.Fatalf("timings = %+v", cfg.Dispatch)
	}
	if cfg.Auth.SigningKey != "from-file" || cfg.Auth.TokenTTL != 30*time.Minute {
		t.Fatalf("auth = %+v", cfg.Auth)
	}
	if cfg.Tick != 50*time.Millisecond {
		t.Fatalf("tick = %v", cfg.Tick)
	}
}

func TestLoadConfig_RequiresSigningKey(t *testing.T) {
	t.Setenv("ELEVATOR_AUTH_SIGNING_KEY", "")
	_, err := loadConfig(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "signing_key") {
		t.Fatalf("expected signing key error, got %v", err)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yml", "elevator: [unclosed\n")
	t.Setenv("ELEVATOR_AUTH_SIGNING_KEY", "k")

	if _, err := loadConfig(dir); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadDotEnv(t *testing.T) {
	if err := loadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing .env should be fine: %v", err)
	}

	dir := t.TempDir()
	p := writeFile(t, dir, ".env", "ELEVATOR_DOTENV_MARKER=from-dotenv\n")
	t.Setenv("ELEVATOR_DOTENV_MARKER", "")
	os.Unsetenv("ELEVATOR_DOTENV_MARKER")

	if err := loadDotEnv(p); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}
	if got := os.Getenv("ELEVATOR_DOTENV_MARKER"); got != "from-dotenv" {
		t.Fatalf("marker = %q", got)
	}
}
