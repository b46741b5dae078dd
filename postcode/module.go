// Package postcode provides the Dutch address lookup bounded context module.
// This file defines the module that encapsulates all postcode lookup setup.
package postcode

import (
	"net/http"

	"postcode_nl/platform/config"
	"postcode_nl/platform/logger"
	"postcode_nl/postcode/client"
	"postcode_nl/postcode/service"
)

// Module is the postcode lookup bounded context module.
type Module struct {
	service *service.Service
	enabled bool
}

// NewModule creates and initializes the postcode module.
// Returns a disabled module if no API token is configured (graceful degradation).
func NewModule(cfg config.PostcodeConfig, log *logger.Logger) *Module {
	if !cfg.IsPostcodeEnabled() {
		log.Info("postcode module disabled: POSTCODE_API_TOKEN not configured")
		return &Module{enabled: false}
	}

	var opts []client.Option
	if baseURL := cfg.GetPostcodeBaseURL(); baseURL != "" {
		opts = append(opts, client.WithBaseURL(baseURL))
	}
	if timeout := cfg.GetPostcodeHTTPTimeout(); timeout > 0 {
		opts = append(opts, client.WithHTTPClient(&http.Client{Timeout: timeout}))
	}

	apiClient := client.New(cfg.GetPostcodeAPIToken(), log, opts...)
	svc := service.New(apiClient, log)

	log.Info("postcode module initialized")

	return &Module{
		service: svc,
		enabled: true,
	}
}

// Service returns the postcode lookup service for external use.
// Returns nil if the module is disabled.
func (m *Module) Service() *service.Service {
	if m == nil || !m.enabled {
		return nil
	}
	return m.service
}

// IsEnabled returns true if the postcode module is configured and enabled.
func (m *Module) IsEnabled() bool {
	return m != nil && m.enabled
}
