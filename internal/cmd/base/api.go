package base

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/hashicorp-forge/docview/internal/config"
	"github.com/hashicorp-forge/docview/pkg/bulk"
	"github.com/hashicorp-forge/docview/pkg/client"
	"github.com/hashicorp-forge/docview/pkg/session"
)

// API is the client stack built from a configuration file.
type API struct {
	Config     *config.Config
	Session    *session.Session
	Client     *client.Client
	Aggregator *bulk.Aggregator
}

// Close ends the session.
func (a *API) Close() {
	a.Session.Close()
}

// APIFlags are the flags shared by every command that talks to the API.
type APIFlags struct {
	Config string
	Format string
	UserID string
}

// AddAPIFlags registers the shared API flags on f.
func AddAPIFlags(f *FlagSet, af *APIFlags) {
	f.StringVar(&af.Config, "config", "",
		"Path to the docview config file. Defaults to $"+config.EnvPath+" or ./"+config.DefaultPath+".")
	f.StringVar(&af.Format, "format", FormatText,
		"Output format: text, json or yaml.")
	f.StringVar(&af.UserID, "user", "",
		"User to compute review flags for. Overrides user_id from the config file.")
}

// Fs is the filesystem configuration is read from.
var Fs = afero.NewOsFs()

// NewAPI loads configuration and builds a session, client and aggregator.
// A nil navigator leaves navigation requests unhandled.
func (c *Command) NewAPI(af *APIFlags, nav client.Navigator) (*API, error) {
	if err := ValidateFormat(af.Format); err != nil {
		return nil, err
	}

	cfg, err := config.Load(Fs, config.ResolvePath(af.Config))
	if err != nil {
		return nil, err
	}
	if af.UserID != "" {
		cfg.UserID = af.UserID
	}

	if cfg.LogLevel != "" {
		c.Log.SetLevel(cfg.Level())
	}

	cc, err := cfg.ClientConfig()
	if err != nil {
		return nil, err
	}

	sess := session.New(cfg.UserID, c.Log)

	opts := []client.Option{
		client.WithStore(sess.Store()),
		client.WithLogger(c.Log),
	}
	if nav != nil {
		opts = append(opts, client.WithNavigator(nav))
	}
	cl, err := client.New(cc, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating API client: %w", err)
	}

	agg, err := bulk.New(cl, sess.Store(),
		bulk.WithLogger(c.Log),
		bulk.WithPermissionSink(sess),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating aggregator: %w", err)
	}

	return &API{
		Config:     cfg,
		Session:    sess,
		Client:     cl,
		Aggregator: agg,
	}, nil
}
