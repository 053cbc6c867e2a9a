// Package config holds the SDK configuration: credentials, service URLs, and
// the resolved API key context used to scope API calls.
package config

import (
	"net/url"
	"time"

	"github.com/permitio/permit-golang/infra/perr"
)

// DefaultPDPURL is the address of a locally running policy decision point
const DefaultPDPURL = "http://localhost:7766"

// DefaultAPIURL is the address of the hosted REST API
const DefaultAPIURL = "https://api.permit.io"

// LoggerConfig controls the SDK logger
type LoggerConfig struct {
	// Level is one of "error", "warning", "info", "debug", "verbose"
	Level string `yaml:"level" json:"level"`
	// Label is prefixed to every log line emitted by the SDK
	Label string `yaml:"label" json:"label"`
	// JSON emits log records as JSON objects instead of plain lines
	JSON bool `yaml:"json" json:"json"`
}

// MultiTenancyConfig controls default tenant assignment for RBAC checks
type MultiTenancyConfig struct {
	// DefaultTenant is the key of the tenant used when UseDefaultTenantIfEmpty is set
	DefaultTenant string `yaml:"default_tenant" json:"default_tenant"`
	// UseDefaultTenantIfEmpty associates a resource with the default tenant when
	// the resource passed to Check() carries no tenant
	UseDefaultTenantIfEmpty bool `yaml:"use_default_tenant_if_empty" json:"use_default_tenant_if_empty"`
}

// CacheConfig selects and tunes the provider backing the SDK's scope cache.
// An empty RedisAddr selects the in-memory provider.
type CacheConfig struct {
	TTL           time.Duration `yaml:"ttl" json:"ttl"`
	RedisAddr     string        `yaml:"redis_addr" json:"redis_addr"`
	RedisPassword string        `yaml:"redis_password" json:"redis_password"`
	RedisDB       int           `yaml:"redis_db" json:"redis_db"`
}

// PermitConfig is the top-level SDK configuration
type PermitConfig struct {
	// Token is the API key used for authorization against the PDP and the REST API
	Token string `yaml:"token" json:"token"`
	// PDP is the URL of the policy decision point
	PDP string `yaml:"pdp" json:"pdp"`
	// APIURL is the URL of the REST API
	APIURL string `yaml:"api_url" json:"api_url"`
	// Debug turns on verbose logging of requests and decisions
	Debug bool `yaml:"debug" json:"debug"`

	Log          LoggerConfig       `yaml:"log" json:"log"`
	MultiTenancy MultiTenancyConfig `yaml:"multi_tenancy" json:"multi_tenancy"`
	Cache        CacheConfig        `yaml:"cache" json:"cache"`

	apiContext *APIContext
}

// Option defines a way to modify PermitConfig defaults
type Option interface {
	apply(*PermitConfig)
}

type optFunc func(*PermitConfig)

func (o optFunc) apply(c *PermitConfig) {
	o(c)
}

// WithPDP overrides the PDP URL
func WithPDP(url string) Option {
	return optFunc(func(c *PermitConfig) {
		c.PDP = url
	})
}

// WithAPIURL overrides the REST API URL
func WithAPIURL(url string) Option {
	return optFunc(func(c *PermitConfig) {
		c.APIURL = url
	})
}

// WithDebug turns debug logging on or off
func WithDebug(debug bool) Option {
	return optFunc(func(c *PermitConfig) {
		c.Debug = debug
	})
}

// WithLogger overrides the logger configuration
func WithLogger(log LoggerConfig) Option {
	return optFunc(func(c *PermitConfig) {
		c.Log = log
	})
}

// WithMultiTenancy overrides the multi-tenancy defaults
func WithMultiTenancy(mt MultiTenancyConfig) Option {
	return optFunc(func(c *PermitConfig) {
		c.MultiTenancy = mt
	})
}

// WithCache overrides the cache configuration
func WithCache(cc CacheConfig) Option {
	return optFunc(func(c *PermitConfig) {
		c.Cache = cc
	})
}

// WithContext pre-sets the API context, skipping the lazy scope fetch.
// Useful for tests and for callers that already know their environment.
func WithContext(apiContext *APIContext) Option {
	return optFunc(func(c *PermitConfig) {
		c.apiContext = apiContext
	})
}

// NewConfig creates a PermitConfig for the given API key, applying defaults
// and any overriding options.
func NewConfig(token string, opts ...Option) *PermitConfig {
	c := &PermitConfig{
		Token:  token,
		PDP:    DefaultPDPURL,
		APIURL: DefaultAPIURL,
		Log:    LoggerConfig{Level: "info", Label: "permit"},
		MultiTenancy: MultiTenancyConfig{
			DefaultTenant:           "default",
			UseDefaultTenantIfEmpty: true,
		},
		apiContext: NewAPIContext(),
	}

	for _, opt := range opts {
		opt.apply(c)
	}

	if c.apiContext == nil {
		c.apiContext = NewAPIContext()
	}

	return c
}

// Context returns the API context associated with this config
func (c *PermitConfig) Context() *APIContext {
	return c.apiContext
}

// Validate implements Validateable
func (c *PermitConfig) Validate() error {
	if c.Token == "" {
		return perr.Friendlyf(nil, "missing API key: the SDK must be initialized with an API key")
	}
	if err := validateBaseURL(c.PDP); err != nil {
		return perr.Friendlyf(err, "invalid PDP URL '%s'", c.PDP)
	}
	if err := validateBaseURL(c.APIURL); err != nil {
		return perr.Friendlyf(err, "invalid API URL '%s'", c.APIURL)
	}
	return nil
}

// validateBaseURL requires an absolute http(s) URL with a host, since both
// endpoints are used as jsonclient base URLs.
func validateBaseURL(rawURL string) error {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return perr.Wrap(err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return perr.Errorf("URL must be absolute http(s) with a host, got '%s'", rawURL)
	}
	return nil
}
