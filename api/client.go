package api

import (
	"github.com/permitio/permit-golang/config"
	"github.com/permitio/permit-golang/infra/cache"
)

// Client bundles the typed API clients behind a single entry point. All of
// them share one HTTP client, one resolved API key scope and one cache.
type Client struct {
	Tenants            *TenantsAPI
	Users              *UsersAPI
	Roles              *RolesAPI
	Resources          *ResourcesAPI
	ResourceActions    *ResourceActionsAPI
	ResourceAttributes *ResourceAttributesAPI
	RoleAssignments    *RoleAssignmentsAPI
	Environments       *EnvironmentsAPI
	Elements           *ElementsAPI
}

// New creates an API client from the given config. When the config names a
// redis address the scope cache is shared through redis, otherwise each
// process keeps its own in-memory cache.
func New(cfg *config.PermitConfig) *Client {
	var provider cache.Provider
	if cfg.Cache.RedisAddr != "" {
		rc := cache.NewRedisClient(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
		provider = cache.NewRedisProvider(rc, "permit", scopeCacheName)
	} else {
		provider = cache.NewInMemoryProvider(scopeCacheName)
	}
	return NewWithCache(cfg, provider)
}

// NewWithCache creates an API client backed by the given cache provider
func NewWithCache(cfg *config.PermitConfig, provider cache.Provider) *Client {
	b := newBase(cfg, provider)
	return &Client{
		Tenants:            &TenantsAPI{b},
		Users:              &UsersAPI{b},
		Roles:              &RolesAPI{b},
		Resources:          &ResourcesAPI{b},
		ResourceActions:    &ResourceActionsAPI{b},
		ResourceAttributes: &ResourceAttributesAPI{b},
		RoleAssignments:    &RoleAssignmentsAPI{b},
		Environments:       &EnvironmentsAPI{b},
		Elements:           &ElementsAPI{b},
	}
}
