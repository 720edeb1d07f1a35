package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"SCHEDULE_TAG_KEY", "SCHEDULE_DRY_RUN", "SCHEDULE_TIMEZONE", "SCHEDULE_LOG_LEVEL", "SCHEDULE_LOG_FORMAT", "SCHEDULE_CRON"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TagKey != "Schedule" {
		t.Errorf("TagKey = %q, want Schedule", cfg.TagKey)
	}
	if !cfg.DryRun {
		t.Error("DryRun should default to true")
	}
	if cfg.Location.String() != "UTC" {
		t.Errorf("Location = %s, want UTC", cfg.Location)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Errorf("log = %s/%s, want info/json", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.Cron != "" {
		t.Errorf("Cron = %q, want empty", cfg.Cron)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SCHEDULE_TAG_KEY", "PowerSchedule")
	t.Setenv("SCHEDULE_DRY_RUN", "false")
	t.Setenv("SCHEDULE_TIMEZONE", "Asia/Tokyo")
	t.Setenv("SCHEDULE_LOG_FORMAT", "console")
	t.Setenv("SCHEDULE_CRON", " 0 * * * * ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TagKey != "PowerSchedule" || cfg.DryRun || cfg.LogFormat != "console" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Location.String() != "Asia/Tokyo" {
		t.Errorf("Location = %s, want Asia/Tokyo", cfg.Location)
	}
	if cfg.Cron != "0 * * * *" {
		t.Errorf("Cron = %q, want trimmed expression", cfg.Cron)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad bool", "SCHEDULE_DRY_RUN", "maybe"},
		{"bad timezone", "SCHEDULE_TIMEZONE", "Mars/Olympus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SCHEDULE_DRY_RUN", "")
			t.Setenv("SCHEDULE_TIMEZONE", "")
			t.Setenv(tt.key, tt.val)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.val)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := map[string]bool{"true": true, "1": true, "yes": true, "ON": true, "false": false, "0": false, "no": false, "off": false}
	for val, want := range tests {
		t.Setenv("X_BOOL", val)
		got, err := getEnvBool("X_BOOL", !want)
		if err != nil || got != want {
			t.Errorf("getEnvBool(%q) = %v, %v; want %v", val, got, err, want)
		}
	}
}
