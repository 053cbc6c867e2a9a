// Package permit is the entry point of the SDK. A single Client bundles the
// REST API clients, the embedded-login helpers and the PDP enforcer.
package permit

import (
	"context"

	"github.com/permitio/permit-golang/api"
	"github.com/permitio/permit-golang/config"
	"github.com/permitio/permit-golang/enforcement"
	"github.com/permitio/permit-golang/infra/jsonclient"
	"github.com/permitio/permit-golang/infra/perr"
	"github.com/permitio/permit-golang/infra/plog"
	"github.com/permitio/permit-golang/models"
)

// Client is a fully wired SDK instance
type Client struct {
	config *config.PermitConfig

	// Api exposes the management REST API
	Api *api.Client
	// Elements exposes the embedded UI component endpoints
	Elements *api.ElementsAPI
	// Enforcement answers permission checks against the PDP
	Enforcement *enforcement.Enforcer
}

// New creates an SDK client from the given config. The config's token must be
// set; everything else has working defaults.
func New(cfg *config.PermitConfig) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, perr.Wrap(err)
	}

	initLogging(cfg)

	apiClient := api.New(cfg)
	return &Client{
		config:      cfg,
		Api:         apiClient,
		Elements:    apiClient.Elements,
		Enforcement: enforcement.NewEnforcer(cfg),
	}, nil
}

// NewWithToken creates an SDK client with default config for the given API key
func NewWithToken(token string, opts ...config.Option) (*Client, error) {
	c, err := New(config.NewConfig(token, opts...))
	return c, perr.Wrap(err)
}

// Check asks the PDP whether user may perform action on resource
func (c *Client) Check(ctx context.Context, user enforcement.User, action enforcement.Action, resource enforcement.Resource, queryContext ...map[string]interface{}) (bool, error) {
	allowed, err := c.Enforcement.Check(ctx, user, action, resource, queryContext...)
	return allowed, perr.Wrap(err)
}

// SyncUser creates or replaces a user in the environment in context, so its
// attributes are available to the PDP on the next policy sync.
func (c *Client) SyncUser(ctx context.Context, user models.UserCreate) (*models.UserRead, error) {
	u, err := c.Api.Users.Sync(ctx, user)
	return u, perr.Wrap(err)
}

// Config returns the config this client was built with
func (c *Client) Config() *config.PermitConfig {
	return c.config
}

type jsonclientLogger struct{}

func (jsonclientLogger) Debugf(ctx context.Context, format string, args ...interface{}) {
	plog.Debugf(ctx, format, args...)
}

// initLogging configures the process-wide SDK logger from the config. Debug
// mode overrides the configured level so every request is logged.
func initLogging(cfg *config.PermitConfig) {
	level, err := plog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = plog.LogLevelInfo
	}
	if cfg.Debug && level < plog.LogLevelDebug {
		level = plog.LogLevelDebug
	}

	plog.Init(plog.Config{
		Level: level,
		Label: cfg.Log.Label,
		JSON:  cfg.Log.JSON,
	}, plog.NewGoTransport())

	jsonclient.RegisterLogger(jsonclientLogger{})
}
