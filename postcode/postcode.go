// Package postcode provides the Dutch address lookup bounded context.
// This file defines the public interface exposed to consuming code.
package postcode

import (
	"context"

	"postcode_nl/postcode/transport"
)

// AddressService defines the public interface for postcode lookups.
// Consumers should depend on this interface, not the concrete implementation.
//
// Both operations return a three-way outcome: a non-nil address on a match,
// a nil address with a nil error when no address exists for the input, and a
// non-nil error otherwise. The quota counters are populated on every response
// the API produced, including "not found" and "rate limited".
type AddressService interface {
	// GetAddress fetches the street and city for a postcode and house number.
	GetAddress(ctx context.Context, postcode string, houseNumber int) (*transport.Address, transport.APILimits, error)

	// GetExtendedAddress fetches the address enriched with municipality,
	// province and coordinates.
	GetExtendedAddress(ctx context.Context, postcode string, houseNumber int) (*transport.ExtendedAddress, transport.APILimits, error)
}
