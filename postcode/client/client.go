// Package client provides the HTTP client for the postcode.tech address API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"postcode_nl/platform/apperr"
	"postcode_nl/platform/logger"
	"postcode_nl/postcode/transport"
)

const (
	defaultBaseURL     = "https://postcode.tech"
	addressPath        = "/api/v1/postcode"
	extendedPath       = "/api/v1/postcode/full"
	defaultHTTPTimeout = 10 * time.Second
	maxBodyExcerpt     = 256
)

// Client is the HTTP client for the postcode.tech API.
// It is safe for concurrent use: the token and base URL are read-only after
// construction and the underlying http.Client handles its own pooling.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
	log        *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL, e.g. for tests or a proxy.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client, e.g. to change the
// timeout policy or inject a custom transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// New creates a new postcode.tech API client. The token is stored verbatim:
// the service itself is authoritative for credential validity, so no format
// check and no network I/O happens here.
func New(apiToken string, log *logger.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		baseURL:    defaultBaseURL,
		apiToken:   apiToken,
		log:        log,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetAddress fetches the street and city for a postcode and house number.
// A nil address with a nil error means no address exists for the input; the
// limits are populated either way since a 404 still counts against quota.
func (c *Client) GetAddress(ctx context.Context, postcode string, houseNumber int) (*transport.Address, transport.APILimits, error) {
	body, limits, found, err := c.lookup(ctx, addressPath, postcode, houseNumber)
	if err != nil || !found {
		return nil, limits, err
	}

	var raw addressResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		c.log.Error("postcode decode failed", "error", err)
		return nil, limits, apperr.Wrap(apperr.KindDecode, "decode address response", err)
	}

	addr := raw.toAddress(postcode, houseNumber)
	return &addr, limits, nil
}

// GetExtendedAddress fetches the address plus municipality, province and
// coordinates for a postcode and house number. Same contract as GetAddress.
func (c *Client) GetExtendedAddress(ctx context.Context, postcode string, houseNumber int) (*transport.ExtendedAddress, transport.APILimits, error) {
	body, limits, found, err := c.lookup(ctx, extendedPath, postcode, houseNumber)
	if err != nil || !found {
		return nil, limits, err
	}

	var raw extendedResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		c.log.Error("postcode full decode failed", "error", err)
		return nil, limits, apperr.Wrap(apperr.KindDecode, "decode extended address response", err)
	}

	addr := raw.toExtendedAddress()
	return &addr, limits, nil
}

// lookup issues one GET request and maps the status code to the three-way
// outcome: body with found=true, found=false without error (404), or error.
func (c *Client) lookup(ctx context.Context, path, postcode string, houseNumber int) ([]byte, transport.APILimits, bool, error) {
	params := url.Values{}
	params.Set("postcode", postcode)
	params.Set("number", strconv.Itoa(houseNumber))

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, transport.APILimits{}, false, fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	log := c.log.WithRequestID(requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.APIError(http.MethodGet, path, 0, err)
		return nil, transport.APILimits{}, false, apperr.Transport("postcode.tech unreachable", err)
	}
	defer resp.Body.Close()

	limits := limitsFromHeader(resp.Header)
	log.APICall(http.MethodGet, path, resp.StatusCode, float64(time.Since(start).Microseconds())/1000.0)

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, limits, false, apperr.Wrap(apperr.KindDecode, "read response body", err)
		}
		return body, limits, true, nil
	case http.StatusNotFound:
		// No address for this postcode and house number - not an error
		log.Debug("postcode not found", "postcode", postcode, "number", houseNumber)
		return nil, limits, false, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		log.Error("postcode.tech unauthorized", "status", resp.StatusCode)
		return nil, limits, false, apperr.Unauthorized("unauthorized: invalid API token")
	case http.StatusBadRequest:
		// Local validation should make this unreachable
		log.Error("postcode.tech bad request", "status", resp.StatusCode)
		return nil, limits, false, apperr.BadRequest("bad request: invalid parameters")
	case http.StatusTooManyRequests:
		log.RateLimitHit(path, limits.APIRemaining, limits.RateLimitRemaining)
		return nil, limits, false, apperr.RateLimited("rate limit exceeded").WithDetails(limits)
	default:
		excerpt := readExcerpt(resp.Body)
		log.Error("postcode.tech upstream error", "status", resp.StatusCode, "body", excerpt)
		return nil, limits, false, apperr.Upstream(fmt.Sprintf("upstream error: status %d: %s", resp.StatusCode, excerpt))
	}
}

func readExcerpt(r io.Reader) string {
	excerpt, _ := io.ReadAll(io.LimitReader(r, maxBodyExcerpt))
	return string(excerpt)
}

// LimitsFrom recovers the quota counters carried by a rate-limited error.
func LimitsFrom(err error) (transport.APILimits, bool) {
	limits, ok := apperr.GetDetails(err).(transport.APILimits)
	return limits, ok
}

// addressResponse is the raw body of the basic endpoint. The API returns only
// street and city; postcode and house number are echoed from the validated
// inputs.
type addressResponse struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

func (r addressResponse) toAddress(postcode string, houseNumber int) transport.Address {
	return transport.Address{
		Street:      r.Street,
		HouseNumber: houseNumber,
		Postcode:    postcode,
		City:        r.City,
	}
}

// extendedResponse is the raw body of the full endpoint.
type extendedResponse struct {
	Postcode     string `json:"postcode"`
	Number       int    `json:"number"`
	Street       string `json:"street"`
	City         string `json:"city"`
	Municipality string `json:"municipality"`
	Province     string `json:"province"`
	Geo          struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"geo"`
}

func (r extendedResponse) toExtendedAddress() transport.ExtendedAddress {
	return transport.ExtendedAddress{
		Street:       r.Street,
		HouseNumber:  r.Number,
		Postcode:     r.Postcode,
		City:         r.City,
		Municipality: r.Municipality,
		Province:     r.Province,
		Coordinates: transport.Coordinates{
			Lat: r.Geo.Lat,
			Lon: r.Geo.Lon,
		},
	}
}
