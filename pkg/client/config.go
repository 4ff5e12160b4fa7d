package client

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/oauth2"
)

// Config contains configuration for the document API client.
type Config struct {
	// BaseURL is the API root, e.g. "https://docs.example.com/api".
	BaseURL string `json:"baseUrl"`

	// AuthToken is sent as a bearer token. Never serialized.
	AuthToken string `json:"-"`

	// TLSVerify controls TLS certificate verification.
	// Set to false only for development/testing with self-signed certs.
	TLSVerify *bool `json:"tlsVerify,omitempty"`

	// Timeout bounds each request. Default: 30 seconds.
	Timeout time.Duration `json:"timeout,omitempty"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `json:"userAgent,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		TLSVerify: &tlsVerify,
		Timeout:   30 * time.Second,
		UserAgent: "docview",
	}
}

// applyDefaults fills unset fields from DefaultConfig.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TLSVerify == nil {
		c.TLSVerify = defaults.TLSVerify
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
	if c.UserAgent == "" {
		c.UserAgent = defaults.UserAgent
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL,
			validation.Required.Error("base_url is required"),
			validation.By(httpURL),
		),
		validation.Field(&c.Timeout,
			validation.Min(time.Duration(0)).Error("timeout must be positive"),
		),
	)
}

func httpURL(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url must use http or https scheme, got: %s", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("base_url must include a host")
	}
	return nil
}

// NewHTTPClient creates a configured HTTP client. When an auth token is set,
// requests carry it as a bearer token.
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	// Configure TLS verification
	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	base := &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
	if c.AuthToken == "" {
		return base
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: c.AuthToken,
		TokenType:   "Bearer",
	}))
	client.Timeout = c.Timeout
	return client
}
