package postcode

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"postcode_nl/platform/config"
	"postcode_nl/platform/logger"
)

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestNewModuleDisabledWithoutToken(t *testing.T) {
	m := NewModule(&config.Config{}, testLogger())

	if m.IsEnabled() {
		t.Fatal("expected module disabled without a token")
	}
	if m.Service() != nil {
		t.Fatal("expected nil service when disabled")
	}

	var nilModule *Module
	if nilModule.IsEnabled() {
		t.Fatal("expected nil module to report disabled")
	}
	if nilModule.Service() != nil {
		t.Fatal("expected nil service from nil module")
	}
}

func TestNewModuleEnabled(t *testing.T) {
	cfg := &config.Config{
		PostcodeAPIToken:    "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx",
		PostcodeHTTPTimeout: 3 * time.Second,
	}

	m := NewModule(cfg, testLogger())

	if !m.IsEnabled() {
		t.Fatal("expected module enabled")
	}

	var svc AddressService = m.Service()
	if svc == nil {
		t.Fatal("expected a service")
	}
}
