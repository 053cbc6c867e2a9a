package enforcement

import (
	"context"
	"fmt"

	"github.com/permitio/permit-golang/config"
	"github.com/permitio/permit-golang/infra/jsonclient"
	"github.com/permitio/permit-golang/infra/perr"
	"github.com/permitio/permit-golang/infra/plog"
	"github.com/permitio/permit-golang/infra/sdkclient"
)

// ErrPDPConnection is returned when the PDP could not be reached. It usually
// means the PDP container is not running next to the application.
var ErrPDPConnection = perr.New("could not connect to the PDP")

// Enforcer answers permission checks against the configured PDP
type Enforcer struct {
	config       *config.PermitConfig
	client       *sdkclient.Client
	contextStore *ContextStore
}

// NewEnforcer creates an enforcer that queries the PDP named by the config
func NewEnforcer(cfg *config.PermitConfig) *Enforcer {
	return &Enforcer{
		config:       cfg,
		client:       sdkclient.New(cfg.PDP, jsonclient.BearerToken(cfg.Token)),
		contextStore: NewContextStore(),
	}
}

// ContextStore exposes the shared check context for callers to extend
func (e *Enforcer) ContextStore() *ContextStore {
	return e.contextStore
}

type checkRequest struct {
	User     User                   `json:"user"`
	Action   Action                 `json:"action"`
	Resource Resource               `json:"resource"`
	Context  map[string]interface{} `json:"context,omitempty"`
}

type checkResponse struct {
	Allow bool                   `json:"allow"`
	Query map[string]interface{} `json:"query,omitempty"`
	Debug map[string]interface{} `json:"debug,omitempty"`
}

// normalizeResource fills in the default tenant when the caller left the
// tenant empty, and mirrors the tenant into the resource context so
// tenant-aware policies can read it from either place.
func (e *Enforcer) normalizeResource(resource Resource) Resource {
	normalized := resource
	if normalized.Tenant == "" && e.config.MultiTenancy.UseDefaultTenantIfEmpty {
		normalized.Tenant = e.config.MultiTenancy.DefaultTenant
	}
	if normalized.Tenant != "" {
		if normalized.Context == nil {
			normalized.Context = map[string]interface{}{}
		} else {
			ctxCopy := make(map[string]interface{}, len(normalized.Context)+1)
			for k, v := range normalized.Context {
				ctxCopy[k] = v
			}
			normalized.Context = ctxCopy
		}
		normalized.Context["tenant"] = normalized.Tenant
	}
	return normalized
}

// Check asks the PDP whether user may perform action on resource. An optional
// per-check context participates in attribute-based policy rules.
func (e *Enforcer) Check(ctx context.Context, user User, action Action, resource Resource, queryContext ...map[string]interface{}) (bool, error) {
	perCheck := map[string]interface{}{}
	if len(queryContext) > 0 && queryContext[0] != nil {
		perCheck = queryContext[0]
	}

	req := checkRequest{
		User:     user,
		Action:   action,
		Resource: e.normalizeResource(resource),
		Context:  e.contextStore.GetDerivedContext(perCheck),
	}

	var resp checkResponse
	if err := e.client.Post(ctx, "/allowed", req, &resp, jsonclient.StopLogging()); err != nil {
		if code := jsonclient.GetHTTPStatusCode(err); code >= 0 {
			return false, perr.Friendlyf(perr.Wrap(err),
				"permission check responded with status %d, check your API key and PDP configuration", code)
		}
		return false, perr.Friendlyf(ErrPDPConnection,
			"could not reach the PDP at %s, is the PDP container running? (%v)", e.config.PDP, err)
	}

	plog.Debugf(ctx, "permit.Check(%s, %s, %s) = %t",
		user.Key, action, resourceRepr(req.Resource), resp.Allow)
	return resp.Allow, nil
}

func resourceRepr(resource Resource) string {
	repr := resource.Type
	if resource.Key != "" {
		repr = fmt.Sprintf("%s:%s", repr, resource.Key)
	}
	if resource.Tenant != "" {
		repr = fmt.Sprintf("%s@%s", repr, resource.Tenant)
	}
	return repr
}
