package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"postcode_nl/platform/logger"
	"postcode_nl/postcode/client"
)

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestGetAddressInvalidInputMakesNoRequest(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := New(client.New("token", testLogger(), client.WithBaseURL(srv.URL)), testLogger())

	if _, _, err := svc.GetAddress(context.Background(), "abcdEF", 147); !errors.Is(err, ErrInvalidPostcode) {
		t.Fatalf("expected ErrInvalidPostcode, got %v", err)
	}
	if _, _, err := svc.GetAddress(context.Background(), "1012RJ", 0); !errors.Is(err, ErrInvalidHouseNumber) {
		t.Fatalf("expected ErrInvalidHouseNumber, got %v", err)
	}
	if _, _, err := svc.GetExtendedAddress(context.Background(), "0012RJ", 147); !errors.Is(err, ErrInvalidPostcode) {
		t.Fatalf("expected ErrInvalidPostcode, got %v", err)
	}

	if got := calls.Load(); got != 0 {
		t.Fatalf("expected no requests for invalid input, server saw %d", got)
	}
}

func TestGetAddressCanonicalizesPostcode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("postcode"); got != "1012RJ" {
			t.Errorf("expected canonical postcode 1012RJ in query, got %q", got)
		}
		if got := r.URL.Query().Get("number"); got != "147" {
			t.Errorf("expected number 147 in query, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"street":"Nieuwezijds Voorburgwal","city":"Amsterdam"}`))
	}))
	defer srv.Close()

	svc := New(client.New("token", testLogger(), client.WithBaseURL(srv.URL)), testLogger())

	addr, _, err := svc.GetAddress(context.Background(), "1012 rj", 147)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr == nil {
		t.Fatal("expected an address")
	}
	if addr.Postcode != "1012RJ" {
		t.Errorf("expected canonical postcode in result, got %q", addr.Postcode)
	}
	if addr.Street != "Nieuwezijds Voorburgwal" || addr.City != "Amsterdam" {
		t.Errorf("unexpected address fields: %+v", addr)
	}
}

func TestGetAddressNotFoundIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Api-Remaining", "9999")
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	svc := New(client.New("token", testLogger(), client.WithBaseURL(srv.URL)), testLogger())

	addr, limits, err := svc.GetAddress(context.Background(), "9999ZZ", 1)
	if err != nil {
		t.Fatalf("expected not-found to be a non-error outcome, got %v", err)
	}
	if addr != nil {
		t.Fatalf("expected nil address, got %+v", addr)
	}
	if limits.APIRemaining != 9999 {
		t.Errorf("expected limits to be populated on not-found, got %+v", limits)
	}
}
