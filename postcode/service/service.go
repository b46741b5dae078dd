// Package service provides input validation and lookup orchestration for the
// postcode domain.
package service

import (
	"context"

	"postcode_nl/platform/logger"
	"postcode_nl/postcode/client"
	"postcode_nl/postcode/transport"
)

// Service handles address lookups: it validates and canonicalizes inputs
// before spending API quota, then delegates to the HTTP client. It keeps no
// cross-call state, so a single instance is safe for concurrent use.
type Service struct {
	client *client.Client
	log    *logger.Logger
}

// New creates a new postcode lookup service.
func New(client *client.Client, log *logger.Logger) *Service {
	return &Service{
		client: client,
		log:    log,
	}
}

// GetAddress fetches the address for a postcode and house number.
// Validation failures short-circuit before any network call. A nil address
// with a nil error means no address exists for the input.
func (s *Service) GetAddress(ctx context.Context, postcode string, houseNumber int) (*transport.Address, transport.APILimits, error) {
	req := transport.LookupRequest{Postcode: postcode, HouseNumber: houseNumber}
	if err := ValidateLookup(req); err != nil {
		s.log.Debug("lookup rejected", "postcode", postcode, "number", houseNumber, "error", err)
		return nil, transport.APILimits{}, err
	}

	return s.client.GetAddress(ctx, canonicalize(postcode), houseNumber)
}

// GetExtendedAddress fetches the address enriched with municipality, province
// and coordinates. Same contract as GetAddress.
func (s *Service) GetExtendedAddress(ctx context.Context, postcode string, houseNumber int) (*transport.ExtendedAddress, transport.APILimits, error) {
	req := transport.LookupRequest{Postcode: postcode, HouseNumber: houseNumber}
	if err := ValidateLookup(req); err != nil {
		s.log.Debug("lookup rejected", "postcode", postcode, "number", houseNumber, "error", err)
		return nil, transport.APILimits{}, err
	}

	return s.client.GetExtendedAddress(ctx, canonicalize(postcode), houseNumber)
}
