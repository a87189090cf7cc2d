package config

import "testing"

func TestDefault_BindsLoopback(t *testing.T) {
	cfg := Default()
	if cfg.Server.Host != "127.0.0.1" {
		t.Fatalf("expected loopback host, got %q", cfg.Server.Host)
	}
	if cfg.Server.Port != 62879 {
		t.Fatalf("expected port 62879, got %d", cfg.Server.Port)
	}
}

func TestServerConfig_Addr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 62879}
	if got := s.Addr(); got != "127.0.0.1:62879" {
		t.Fatalf("Addr() = %q, want %q", got, "127.0.0.1:62879")
	}
}

func TestDefault_ScanTunables(t *testing.T) {
	cfg := Default()
	if cfg.Scan.BatchSize != 200 {
		t.Fatalf("expected BatchSize 200, got %d", cfg.Scan.BatchSize)
	}
	if cfg.Scan.MaxConcurrency <= 0 {
		t.Fatal("expected a positive MaxConcurrency cap")
	}
}
