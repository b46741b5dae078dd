// Package transport provides DTOs for the postcode domain.
package transport

// Address is the result of a basic postcode lookup.
type Address struct {
	Street      string `json:"street"`
	HouseNumber int    `json:"houseNumber"`
	Postcode    string `json:"postcode"`
	City        string `json:"city"`
}

// Coordinates holds the WGS84 position of an address.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ExtendedAddress is the result of a full postcode lookup, enriched with
// municipality, province and coordinates.
type ExtendedAddress struct {
	Street       string      `json:"street"`
	HouseNumber  int         `json:"houseNumber"`
	Postcode     string      `json:"postcode"`
	City         string      `json:"city"`
	Municipality string      `json:"municipality"`
	Province     string      `json:"province"`
	Coordinates  Coordinates `json:"coordinates"`
}

// Basic returns the basic-address subset of an extended address.
func (e ExtendedAddress) Basic() Address {
	return Address{
		Street:      e.Street,
		HouseNumber: e.HouseNumber,
		Postcode:    e.Postcode,
		City:        e.City,
	}
}

// APILimits holds the quota counters the API reports on every response.
// The window counters cover the short rate-limit window, the API counters
// the daily quota. Extraction is best-effort: a missing or unparsable
// header leaves the field at its zero value.
type APILimits struct {
	RateLimitLimit     uint32 `json:"rateLimitLimit"`
	RateLimitRemaining uint32 `json:"rateLimitRemaining"`
	APILimit           uint32 `json:"apiLimit"`
	APIRemaining       uint32 `json:"apiRemaining"`
	APIReset           string `json:"apiReset,omitempty"`
}

// LookupRequest contains the parameters for an address lookup.
type LookupRequest struct {
	Postcode    string `json:"postcode" validate:"required,nl_postcode"`
	HouseNumber int    `json:"houseNumber" validate:"required,min=1,max=99999"`
}
