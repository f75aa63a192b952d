package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Port != "8080" {
		t.Fatalf("unexpected port: %q", s.Port)
	}
	if s.DataDir != "data" || s.SubnetFile != "subnets.json" || s.SiteFile != "sites.json" {
		t.Fatalf("unexpected store settings: %+v", s)
	}
	if s.RejectOverlaps {
		t.Fatal("overlap rejection should default off")
	}
	if s.LogLevel != slog.LevelInfo {
		t.Fatalf("unexpected log level: %v", s.LogLevel)
	}
	if s.ReadTimeout != 3*time.Second || s.WriteTimeout != 3*time.Second {
		t.Fatalf("unexpected timeouts: %v / %v", s.ReadTimeout, s.WriteTimeout)
	}
	if s.AuthEnabled {
		t.Fatal("auth should default off")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv(Port, "9090")
	t.Setenv(DataDir, "/var/lib/subnetreg")
	t.Setenv(RejectOverlaps, "true")
	t.Setenv(LogLevel, "debug")
	t.Setenv(ReadTimeout, "10s")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Port != "9090" {
		t.Fatalf("unexpected port: %q", s.Port)
	}
	if s.DataDir != "/var/lib/subnetreg" {
		t.Fatalf("unexpected data dir: %q", s.DataDir)
	}
	if !s.RejectOverlaps {
		t.Fatal("expected overlap rejection on")
	}
	if s.LogLevel != slog.LevelDebug {
		t.Fatalf("unexpected log level: %v", s.LogLevel)
	}
	if s.ReadTimeout != 10*time.Second {
		t.Fatalf("unexpected read timeout: %v", s.ReadTimeout)
	}
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	t.Setenv(LogLevel, "loud")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an unknown log level")
	}
}

func TestLoadRequiresIssuerWhenAuthEnabled(t *testing.T) {
	t.Setenv(AuthEnabled, "true")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error when auth is enabled without an issuer")
	}

	t.Setenv(AuthIssuer, "https://idp.example.com/realms/netops")
	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !s.AuthEnabled || s.AuthIssuer == "" {
		t.Fatalf("unexpected auth settings: %+v", s)
	}
}

func TestStorePaths(t *testing.T) {
	s := Settings{DataDir: "data", SubnetFile: "subnets.json", SiteFile: "sites.json"}

	if got := s.SubnetStorePath(); got != "data/subnets.json" {
		t.Fatalf("unexpected subnet path: %q", got)
	}
	if got := s.SiteStorePath(); got != "data/sites.json" {
		t.Fatalf("unexpected site path: %q", got)
	}
}
