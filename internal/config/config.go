// Package config loads the docview CLI configuration from HCL.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/hashicorp-forge/docview/pkg/client"
)

// DefaultPath is used when neither -config nor DOCVIEW_CONFIG is set.
const DefaultPath = "docview.hcl"

// EnvPath names the environment variable holding the config file path.
const EnvPath = "DOCVIEW_CONFIG"

// Config is the top-level CLI configuration.
type Config struct {
	// UserID is the user review flags are computed for.
	UserID string `hcl:"user_id,optional"`

	// WebURL is the editor's web root, used by the open command.
	WebURL string `hcl:"web_url,optional"`

	LogLevel string `hcl:"log_level,optional"`

	Server *Server `hcl:"server,block"`
}

// Server configures the document API.
type Server struct {
	BaseURL   string `hcl:"base_url"`
	AuthToken string `hcl:"auth_token,optional"`
	Timeout   string `hcl:"timeout,optional"` // e.g., "30s"
	TLSVerify *bool  `hcl:"tls_verify,optional"`
	UserAgent string `hcl:"user_agent,optional"`
}

// envFunc exposes env("NAME") to config files so secrets stay out of them.
var envFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "name", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		return cty.StringVal(os.Getenv(args[0].AsString())), nil
	},
})

func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": envFunc,
		},
	}
}

// ResolvePath picks the config file: flag value, then DOCVIEW_CONFIG, then
// DefaultPath.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads and validates the configuration file at filename.
func Load(fs afero.Fs, filename string) (*Config, error) {
	if filename == "" {
		return nil, fmt.Errorf("configuration file path is required")
	}

	if ok, err := afero.Exists(fs, filename); err != nil {
		return nil, fmt.Errorf("failed to stat configuration file: %w", err)
	} else if !ok {
		return nil, fmt.Errorf("configuration file not found: %s", filename)
	}

	src, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	var cfg Config
	if err := hclsimple.Decode(filename, src, evalContext(), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Server, validation.Required.Error("server block is required")),
		validation.Field(&c.LogLevel, validation.By(logLevel)),
	)
}

// Validate checks if the server block is valid.
func (s Server) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.BaseURL, validation.Required.Error("base_url is required")),
		validation.Field(&s.Timeout, validation.By(duration)),
	)
}

func logLevel(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if hclog.LevelFromString(s) == hclog.NoLevel {
		return fmt.Errorf("unknown log level %q", s)
	}
	return nil
}

func duration(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := time.ParseDuration(s); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	return nil
}

// Level returns the configured log level, defaulting to info.
func (c *Config) Level() hclog.Level {
	if l := hclog.LevelFromString(strings.TrimSpace(c.LogLevel)); l != hclog.NoLevel {
		return l
	}
	return hclog.Info
}

// ClientConfig converts the server block into API client configuration.
func (c *Config) ClientConfig() (*client.Config, error) {
	if c.Server == nil {
		return nil, fmt.Errorf("server block is required")
	}

	cfg := &client.Config{
		BaseURL:   c.Server.BaseURL,
		AuthToken: c.Server.AuthToken,
		TLSVerify: c.Server.TLSVerify,
		UserAgent: c.Server.UserAgent,
	}

	if c.Server.Timeout != "" {
		d, err := time.ParseDuration(c.Server.Timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to parse server timeout: %w", err)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}
