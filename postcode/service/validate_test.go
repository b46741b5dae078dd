package service

import (
	"errors"
	"testing"

	"postcode_nl/postcode/transport"
)

func TestValidateLookupAcceptsValidPostcodes(t *testing.T) {
	for _, postcode := range []string{"1012RJ", "1012 RJ", "1012rj", "9999AA", "1012rJ"} {
		err := ValidateLookup(transport.LookupRequest{Postcode: postcode, HouseNumber: 147})
		if err != nil {
			t.Errorf("expected %q to validate, got %v", postcode, err)
		}
	}
}

func TestValidateLookupRejectsInvalidPostcodes(t *testing.T) {
	for _, postcode := range []string{
		"",
		"abcdEF",
		"0012RJ",   // leading zero
		"1012R",    // too short
		"1012RJX",  // too long
		"1012  RJ", // double space
		" 1012RJ",  // leading whitespace
		"1012RJ ",  // trailing whitespace
		"1012-RJ",
		"10 12RJ",
	} {
		err := ValidateLookup(transport.LookupRequest{Postcode: postcode, HouseNumber: 147})
		if !errors.Is(err, ErrInvalidPostcode) {
			t.Errorf("expected %q to fail with ErrInvalidPostcode, got %v", postcode, err)
		}
	}
}

func TestValidateLookupHouseNumberBounds(t *testing.T) {
	for _, valid := range []int{1, 147, 99999} {
		err := ValidateLookup(transport.LookupRequest{Postcode: "1012RJ", HouseNumber: valid})
		if err != nil {
			t.Errorf("expected house number %d to validate, got %v", valid, err)
		}
	}

	for _, invalid := range []int{0, -1, -147, 100000} {
		err := ValidateLookup(transport.LookupRequest{Postcode: "1012RJ", HouseNumber: invalid})
		if !errors.Is(err, ErrInvalidHouseNumber) {
			t.Errorf("expected house number %d to fail with ErrInvalidHouseNumber, got %v", invalid, err)
		}
	}
}

func TestCanonicalPostcode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1012RJ", "1012RJ"},
		{"1012 RJ", "1012RJ"},
		{"1012rj", "1012RJ"},
		{"1012 rj", "1012RJ"},
	}

	for _, tc := range tests {
		got, err := CanonicalPostcode(tc.input)
		if err != nil {
			t.Fatalf("CanonicalPostcode(%q) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("CanonicalPostcode(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}

	if _, err := CanonicalPostcode("abcdEF"); !errors.Is(err, ErrInvalidPostcode) {
		t.Errorf("expected ErrInvalidPostcode, got %v", err)
	}
}

func TestValidateHouseNumber(t *testing.T) {
	if err := ValidateHouseNumber(147); err != nil {
		t.Errorf("expected 147 to validate, got %v", err)
	}
	if err := ValidateHouseNumber(0); !errors.Is(err, ErrInvalidHouseNumber) {
		t.Errorf("expected ErrInvalidHouseNumber for 0, got %v", err)
	}
}
