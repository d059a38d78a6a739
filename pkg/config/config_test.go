package config

import (
	"strings"
	"testing"
)

func productionConfig() *Config {
	return &Config{
		Environment:        EnvProduction,
		TagStorePath:       "/var/lib/cims/rfid_tags.json",
		ReportDir:          "/var/lib/cims/reports",
		CORSAllowedOrigins: "https://app.example.com",
		LogLevel:           "info",
	}
}

func TestValidateForProduction_ValidConfig(t *testing.T) {
	if err := ValidateForProduction(productionConfig()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateForProduction_NonProductionSkipsChecks(t *testing.T) {
	cfg := &Config{
		Environment:        EnvDevelopment,
		TagStorePath:       "rfid_tags.json",
		ReportDir:          ".",
		CORSAllowedOrigins: "*",
		LogLevel:           "debug",
	}
	if err := ValidateForProduction(cfg); err != nil {
		t.Errorf("non-production config should not be validated: %v", err)
	}
}

func TestValidateForProduction_Failures(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "relative tag store path",
			mutate:  func(c *Config) { c.TagStorePath = "rfid_tags.json" },
			wantMsg: "RFID_TAG_STORE_PATH",
		},
		{
			name:    "relative report dir",
			mutate:  func(c *Config) { c.ReportDir = "reports" },
			wantMsg: "RFID_REPORT_DIR",
		},
		{
			name:    "wildcard CORS",
			mutate:  func(c *Config) { c.CORSAllowedOrigins = "*" },
			wantMsg: "CORS_ALLOWED_ORIGINS",
		},
		{
			name:    "debug logging",
			mutate:  func(c *Config) { c.LogLevel = "debug" },
			wantMsg: "LOG_LEVEL",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := productionConfig()
			tc.mutate(cfg)
			err := ValidateForProduction(cfg)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("error %q should mention %q", err, tc.wantMsg)
			}
		})
	}
}

func TestValidateForProduction_CollectsAllFailures(t *testing.T) {
	cfg := productionConfig()
	cfg.TagStorePath = "relative.json"
	cfg.CORSAllowedOrigins = "*"

	err := ValidateForProduction(cfg)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "RFID_TAG_STORE_PATH") || !strings.Contains(err.Error(), "CORS_ALLOWED_ORIGINS") {
		t.Errorf("error should report every failure, got: %v", err)
	}
}
