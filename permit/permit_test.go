package permit_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofrs/uuid"

	"github.com/permitio/permit-golang/config"
	"github.com/permitio/permit-golang/enforcement"
	"github.com/permitio/permit-golang/infra/assert"
	"github.com/permitio/permit-golang/models"
	"github.com/permitio/permit-golang/permit"
)

func TestNewRequiresToken(t *testing.T) {
	_, err := permit.New(config.NewConfig(""))
	assert.NotNil(t, err)

	_, err = permit.NewWithToken("")
	assert.NotNil(t, err)
}

func TestNewWiresEverything(t *testing.T) {
	client, err := permit.NewWithToken("permit_key_test")
	assert.NoErr(t, err)
	assert.NotNil(t, client.Api)
	assert.NotNil(t, client.Api.Tenants)
	assert.NotNil(t, client.Elements)
	assert.NotNil(t, client.Enforcement)
	assert.Equal(t, client.Config().Token, "permit_key_test")
}

func TestCheckPassthrough(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.URL.Path, "/allowed")
		_ = json.NewEncoder(w).Encode(map[string]bool{"allow": true})
	}))
	t.Cleanup(srv.Close)

	client, err := permit.NewWithToken("permit_key_test", config.WithPDP(srv.URL))
	assert.NoErr(t, err)

	allowed, err := client.Check(ctx,
		enforcement.NewUser("ada"), "read", enforcement.NewResource("document"))
	assert.NoErr(t, err)
	assert.True(t, allowed)
}

func TestSyncUserPassthrough(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.Must(uuid.NewV4())
	projectID := uuid.Must(uuid.NewV4())
	envID := uuid.Must(uuid.NewV4())

	mux := http.NewServeMux()
	mux.HandleFunc("/v2/api-key/scope", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"organization_id": orgID,
			"project_id":      projectID,
			"environment_id":  envID,
		})
	})
	mux.HandleFunc("/v2/facts/"+projectID.String()+"/"+envID.String()+"/users/ada", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.Method, http.MethodPut)
		_ = json.NewEncoder(w).Encode(models.UserRead{Key: "ada"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := permit.NewWithToken("permit_key_test", config.WithAPIURL(srv.URL))
	assert.NoErr(t, err)

	user, err := client.SyncUser(ctx, models.UserCreate{Key: "ada", Email: "ada@example.com"})
	assert.NoErr(t, err)
	assert.Equal(t, user.Key, "ada")
}
