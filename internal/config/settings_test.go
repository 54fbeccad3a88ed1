package config

import (
	"os"
	"testing"
	"time"
)

func TestResolveDefaults(t *testing.T) {
	s := &Static{Sections: map[string]map[string]string{}}
	cfg := Resolve(s)

	if cfg.FastLaneInterval != 2*time.Second {
		t.Fatalf("FastLaneInterval = %v, want 2s", cfg.FastLaneInterval)
	}
	if cfg.TCPServerPort != defaultTCPPort {
		t.Fatalf("TCPServerPort = %d, want %d", cfg.TCPServerPort, defaultTCPPort)
	}
	if !cfg.EnableTCPServer {
		t.Fatalf("EnableTCPServer default should be true")
	}
}

func TestResolveBelowMinimumFallsBackToDefault(t *testing.T) {
	s := &Static{Sections: map[string]map[string]string{
		"monitor": {"ProdModeFastLaneInt": "500000"}, // 500ms, below the 1s minimum
	}}
	cfg := Resolve(s)
	if cfg.FastLaneInterval != 2*time.Second {
		t.Fatalf("FastLaneInterval = %v, want fallback to 2s default", cfg.FastLaneInterval)
	}
}

func TestResolveMalformedIntegerFallsBack(t *testing.T) {
	s := &Static{Sections: map[string]map[string]string{
		"netserver": {"TCPServerPort": "not-a-number"},
	}}
	cfg := Resolve(s)
	if cfg.TCPServerPort != defaultTCPPort {
		t.Fatalf("TCPServerPort = %d, want default %d", cfg.TCPServerPort, defaultTCPPort)
	}
}

func TestResolveProfileModeSwitch(t *testing.T) {
	dir := t.TempDir()
	markerPath := dir + "/profile-marker"
	f, err := os.Create(markerPath)
	if err != nil {
		t.Fatal(err)
	}
	f.Close()

	s := &Static{Sections: map[string]map[string]string{
		"monitor": {"ProfModeIfPath": markerPath},
	}}
	cfg := Resolve(s)
	if cfg.FastLaneInterval != time.Second {
		t.Fatalf("FastLaneInterval = %v, want 1s profile-mode default", cfg.FastLaneInterval)
	}
}

func TestBlacklistKeys(t *testing.T) {
	s := &Static{Sections: map[string]map[string]string{
		"blacklist": {"kworker": "", "ksoftirqd": ""},
	}}
	cfg := Resolve(s)
	if len(cfg.Blacklist) != 2 {
		t.Fatalf("Blacklist = %v, want 2 entries", cfg.Blacklist)
	}
}
