package app

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/anpopa/taskmonitor/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// minimalSettings disables every component that needs elevated privileges
// so construction works in an unprivileged test environment.
func minimalSettings() *config.Settings {
	return &config.Settings{
		HealthAddress:            "127.0.0.1:0",
		FastLaneInterval:         2 * time.Second,
		PaceLaneInterval:         5 * time.Second,
		SlowLaneInterval:         30 * time.Second,
		CollectorInactiveTimeout: 10 * time.Second,
		StartupDataCleanupTime:   10 * time.Second,
		EnableStartupData:        true,
	}
}

func TestSecondConstructionFails(t *testing.T) {
	a, err := New(minimalSettings(), testLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.close()

	if _, err := New(minimalSettings(), testLogger()); !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("second New = %v, want ErrAlreadyInitialized", err)
	}
}

func TestSingletonSlotReleasedOnClose(t *testing.T) {
	a, err := New(minimalSettings(), testLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.close()

	b, err := New(minimalSettings(), testLogger())
	if err != nil {
		t.Fatalf("New after close: %v", err)
	}
	b.close()
}

func TestHealthHandlerServesLivenessAndMetrics(t *testing.T) {
	a, err := New(minimalSettings(), testLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.close()

	handler := a.healthHandler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/healthz = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/metrics = %d, want 200", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Fatal("metrics body empty")
	}
}

func TestShouldStartServersGate(t *testing.T) {
	settings := minimalSettings()
	a, err := New(settings, testLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.close()

	// No condition path configured: start unconditionally.
	if !a.shouldStartServers() {
		t.Fatal("servers must start when no condition path is set")
	}

	settings.TCPServerStartIfPath = "/nonexistent/flag/file"
	if a.shouldStartServers() {
		t.Fatal("servers must not start when the condition path is missing")
	}

	flag, err := os.CreateTemp(t.TempDir(), "flag")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	settings.TCPServerStartIfPath = flag.Name()
	if !a.shouldStartServers() {
		t.Fatal("servers must start when the condition path exists")
	}
}
