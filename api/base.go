// Package api implements typed clients for the Permit REST API. Every call is
// guarded by the API key scope: the first call resolves the key's scope into
// the config's APIContext and subsequent calls are refused when the endpoint
// requires a different key level.
package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/gofrs/uuid"

	"github.com/permitio/permit-golang/config"
	"github.com/permitio/permit-golang/infra/cache"
	"github.com/permitio/permit-golang/infra/jsonclient"
	"github.com/permitio/permit-golang/infra/perr"
	"github.com/permitio/permit-golang/infra/plog"
	"github.com/permitio/permit-golang/infra/request"
	"github.com/permitio/permit-golang/infra/sdkclient"
	"github.com/permitio/permit-golang/models"
)

// ErrInvalidContext is returned when an endpoint is called with an API key of
// the wrong scope level, or before a scope could be resolved for the key.
var ErrInvalidContext = perr.New("invalid API key context")

// HeaderRequestID correlates a single SDK call across log lines and API requests
const HeaderRequestID = "X-Request-ID"

const scopeCacheName = "permitScopeCache"

type base struct {
	config *config.PermitConfig
	client *sdkclient.Client
	cache  cache.Provider

	// guards the lazy scope resolution so concurrent first calls fetch once
	scopeMutex sync.Mutex
}

func newBase(cfg *config.PermitConfig, provider cache.Provider) *base {
	client := sdkclient.New(
		cfg.APIURL,
		jsonclient.BearerToken(cfg.Token),
		jsonclient.PerRequestHeader(func(ctx context.Context) (string, string) {
			if id := request.GetRequestID(ctx); id != uuid.Nil {
				return HeaderRequestID, id.String()
			}
			return "", ""
		}),
	)
	return &base{
		config: cfg,
		client: client,
		cache:  provider,
	}
}

// scopeCacheKey namespaces the cached scope by API key so processes that talk
// to several environments don't cross wires on a shared cache.
func (b *base) scopeCacheKey() string {
	sum := sha256.Sum256([]byte(b.config.Token))
	return "scope_" + hex.EncodeToString(sum[:8])
}

func (b *base) fetchScope(ctx context.Context) (*models.APIKeyScopeRead, error) {
	var scope models.APIKeyScopeRead
	if cached, ok := b.cache.GetValue(ctx, b.scopeCacheKey()); ok {
		if err := json.Unmarshal([]byte(cached), &scope); err == nil {
			return &scope, nil
		}
		// a corrupt entry is dropped and refetched
		b.cache.DeleteValue(ctx, b.scopeCacheKey())
	}

	if err := b.client.Get(ctx, "/v2/api-key/scope", &scope); err != nil {
		return nil, perr.Wrap(err)
	}

	if bs, err := json.Marshal(scope); err == nil {
		b.cache.SetValue(ctx, b.scopeCacheKey(), string(bs), b.config.Cache.TTL)
	}

	return &scope, nil
}

// setContextFromAPIKey resolves the API key's scope and stores the most
// specific level the scope allows into the config's APIContext.
func (b *base) setContextFromAPIKey(ctx context.Context) error {
	scope, err := b.fetchScope(ctx)
	if err != nil {
		return perr.Wrap(err)
	}

	if scope.OrganizationID == uuid.Nil {
		return perr.Friendlyf(ErrInvalidContext, "could not set API context level from key scope")
	}

	apiContext := b.config.Context()
	if scope.ProjectID != nil {
		if scope.EnvironmentID != nil {
			apiContext.SetEnvironmentLevelContext(scope.OrganizationID, *scope.ProjectID, *scope.EnvironmentID)
			plog.Debugf(ctx, "resolved environment-level API key context (project %v, environment %v)", *scope.ProjectID, *scope.EnvironmentID)
			return nil
		}
		apiContext.SetProjectLevelContext(scope.OrganizationID, *scope.ProjectID)
		plog.Debugf(ctx, "resolved project-level API key context (project %v)", *scope.ProjectID)
		return nil
	}

	apiContext.SetOrganizationLevelContext(scope.OrganizationID)
	plog.Debugf(ctx, "resolved organization-level API key context (organization %v)", scope.OrganizationID)
	return nil
}

// ensureContext makes sure the SDK has an initialized API context and that it
// matches the level the endpoint requires.
func (b *base) ensureContext(ctx context.Context, callLevel config.APIKeyLevel) error {
	b.scopeMutex.Lock()
	if b.config.Context().Level() == config.APIKeyLevelWaitForInit {
		if err := b.setContextFromAPIKey(ctx); err != nil {
			b.scopeMutex.Unlock()
			return perr.Wrap(err)
		}
	}
	b.scopeMutex.Unlock()

	apiContext := b.config.Context()
	if callLevel != apiContext.Level() {
		return perr.Friendlyf(ErrInvalidContext,
			"this method requires an API key with level %v, but the SDK is running with an API key with level %v",
			callLevel, apiContext.Level())
	}

	if callLevel == config.APIKeyLevelProject && apiContext.ProjectID() == uuid.Nil {
		return perr.Friendlyf(ErrInvalidContext,
			"this method is specific to a project, but no project is set in the API context; "+
				"use a project-level API key or set the context to a specific project")
	}

	if callLevel == config.APIKeyLevelEnvironment && apiContext.EnvironmentID() == uuid.Nil {
		return perr.Friendlyf(ErrInvalidContext,
			"this method is specific to an environment, but no environment is set in the API context; "+
				"use an environment-level API key or set the context to a specific environment")
	}

	return nil
}

// factsBase is the root of facts endpoints for the environment in context
func (b *base) factsBase(resource string) string {
	apiContext := b.config.Context()
	return fmt.Sprintf("/v2/facts/%v/%v/%s", apiContext.ProjectID(), apiContext.EnvironmentID(), resource)
}

// schemaBase is the root of schema endpoints for the environment in context
func (b *base) schemaBase(resource string) string {
	apiContext := b.config.Context()
	return fmt.Sprintf("/v2/schema/%v/%v/%s", apiContext.ProjectID(), apiContext.EnvironmentID(), resource)
}

func joinPath(basePath string, parts ...string) string {
	sb := strings.Builder{}
	sb.WriteString(basePath)
	for _, p := range parts {
		sb.WriteString("/")
		sb.WriteString(p)
	}
	return sb.String()
}
