package enforcement_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/permitio/permit-golang/config"
	"github.com/permitio/permit-golang/enforcement"
	"github.com/permitio/permit-golang/infra/assert"
)

type recordedCheck struct {
	User     enforcement.User       `json:"user"`
	Action   string                 `json:"action"`
	Resource enforcement.Resource   `json:"resource"`
	Context  map[string]interface{} `json:"context"`
}

// fakePDP answers /allowed with a fixed decision and records what it was asked
type fakePDP struct {
	srv   *httptest.Server
	allow bool
	last  recordedCheck
}

func newFakePDP(t *testing.T, allow bool) *fakePDP {
	f := &fakePDP{allow: allow}
	mux := http.NewServeMux()
	mux.HandleFunc("/allowed", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.Method, http.MethodPost)
		assert.NoErr(t, json.NewDecoder(r.Body).Decode(&f.last))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]bool{"allow": f.allow})
	})
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakePDP) enforcer() *enforcement.Enforcer {
	cfg := config.NewConfig("permit_key_test", config.WithPDP(f.srv.URL))
	return enforcement.NewEnforcer(cfg)
}

func TestCheckAllowed(t *testing.T) {
	ctx := context.Background()
	pdp := newFakePDP(t, true)

	allowed, err := pdp.enforcer().Check(ctx,
		enforcement.NewUser("ada"), "read", enforcement.NewResource("document"))
	assert.NoErr(t, err)
	assert.True(t, allowed)
	assert.Equal(t, pdp.last.User.Key, "ada")
	assert.Equal(t, pdp.last.Action, "read")
	assert.Equal(t, pdp.last.Resource.Type, "document")
}

func TestCheckDenied(t *testing.T) {
	ctx := context.Background()
	pdp := newFakePDP(t, false)

	allowed, err := pdp.enforcer().Check(ctx,
		enforcement.NewUser("mallory"), "delete", enforcement.NewResource("document"))
	assert.NoErr(t, err)
	assert.False(t, allowed)
}

func TestDefaultTenantFilledIn(t *testing.T) {
	ctx := context.Background()
	pdp := newFakePDP(t, true)

	_, err := pdp.enforcer().Check(ctx,
		enforcement.NewUser("ada"), "read", enforcement.NewResource("document"))
	assert.NoErr(t, err)
	assert.Equal(t, pdp.last.Resource.Tenant, "default")
	assert.Equal(t, pdp.last.Resource.Context["tenant"], "default")
}

func TestExplicitTenantKept(t *testing.T) {
	ctx := context.Background()
	pdp := newFakePDP(t, true)

	resource := enforcement.NewResourceBuilder("document").WithKey("doc-1").WithTenant("acme").Build()
	_, err := pdp.enforcer().Check(ctx, enforcement.NewUser("ada"), "read", resource)
	assert.NoErr(t, err)
	assert.Equal(t, pdp.last.Resource.Tenant, "acme")
	assert.Equal(t, pdp.last.Resource.Key, "doc-1")
	assert.Equal(t, pdp.last.Resource.Context["tenant"], "acme")
}

func TestDefaultTenantDisabled(t *testing.T) {
	ctx := context.Background()
	pdp := newFakePDP(t, true)

	cfg := config.NewConfig("permit_key_test",
		config.WithPDP(pdp.srv.URL),
		config.WithMultiTenancy(config.MultiTenancyConfig{DefaultTenant: "default"}),
	)
	_, err := enforcement.NewEnforcer(cfg).Check(ctx,
		enforcement.NewUser("ada"), "read", enforcement.NewResource("document"))
	assert.NoErr(t, err)
	assert.Equal(t, pdp.last.Resource.Tenant, "")
}

func TestNormalizationDoesNotMutateCaller(t *testing.T) {
	ctx := context.Background()
	pdp := newFakePDP(t, true)

	resource := enforcement.NewResourceBuilder("document").
		WithContext(map[string]interface{}{"source": "test"}).
		Build()
	_, err := pdp.enforcer().Check(ctx, enforcement.NewUser("ada"), "read", resource)
	assert.NoErr(t, err)

	_, found := resource.Context["tenant"]
	assert.False(t, found)
	assert.Equal(t, pdp.last.Resource.Context["source"], "test")
	assert.Equal(t, pdp.last.Resource.Context["tenant"], "default")
}

func TestContextStoreMerging(t *testing.T) {
	ctx := context.Background()
	pdp := newFakePDP(t, true)

	enforcer := pdp.enforcer()
	enforcer.ContextStore().AddContext(map[string]interface{}{"ip": "10.0.0.1", "source": "global"})
	enforcer.ContextStore().RegisterTransform(func(m map[string]interface{}) map[string]interface{} {
		m["transformed"] = true
		return m
	})

	_, err := enforcer.Check(ctx,
		enforcement.NewUser("ada"), "read", enforcement.NewResource("document"),
		map[string]interface{}{"source": "per-check"})
	assert.NoErr(t, err)

	assert.Equal(t, pdp.last.Context["ip"], "10.0.0.1")
	// per-check entries win over the shared context
	assert.Equal(t, pdp.last.Context["source"], "per-check")
	assert.Equal(t, pdp.last.Context["transformed"], true)
}

func TestCheckPDPUnreachable(t *testing.T) {
	ctx := context.Background()
	cfg := config.NewConfig("permit_key_test", config.WithPDP("http://127.0.0.1:1"))

	allowed, err := enforcement.NewEnforcer(cfg).Check(ctx,
		enforcement.NewUser("ada"), "read", enforcement.NewResource("document"))
	assert.False(t, allowed)
	assert.ErrorIs(t, err, enforcement.ErrPDPConnection)
}

func TestCheckPDPErrorStatus(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	cfg := config.NewConfig("permit_key_bad", config.WithPDP(srv.URL))
	allowed, err := enforcement.NewEnforcer(cfg).Check(ctx,
		enforcement.NewUser("ada"), "read", enforcement.NewResource("document"))
	assert.False(t, allowed)
	assert.NotNil(t, err)
	assert.False(t, errors.Is(err, enforcement.ErrPDPConnection))
}

func TestUserBuilder(t *testing.T) {
	user := enforcement.NewUserBuilder("ada").
		WithFirstName("Ada").
		WithLastName("Lovelace").
		WithEmail("ada@example.com").
		WithAttributes(map[string]interface{}{"clearance": "high"}).
		Build()

	assert.Equal(t, user.Key, "ada")
	assert.Equal(t, user.FirstName, "Ada")
	assert.Equal(t, user.Email, "ada@example.com")
	assert.Equal(t, user.Attributes["clearance"], "high")
}

func TestResourceFromString(t *testing.T) {
	r, err := enforcement.ResourceFromString("document")
	assert.NoErr(t, err)
	assert.Equal(t, r.Type, "document")
	assert.Equal(t, r.Key, "")

	r, err = enforcement.ResourceFromString("document:doc-1")
	assert.NoErr(t, err)
	assert.Equal(t, r.Type, "document")
	assert.Equal(t, r.Key, "doc-1")

	_, err = enforcement.ResourceFromString("a:b:c")
	assert.NotNil(t, err)
}
