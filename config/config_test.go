package config_test

import (
	"testing"
	"time"

	"github.com/gofrs/uuid"

	"github.com/permitio/permit-golang/config"
	"github.com/permitio/permit-golang/infra/assert"
)

func TestDefaults(t *testing.T) {
	cfg := config.NewConfig("permit_key_test")
	assert.Equal(t, cfg.Token, "permit_key_test")
	assert.Equal(t, cfg.PDP, config.DefaultPDPURL)
	assert.Equal(t, cfg.APIURL, config.DefaultAPIURL)
	assert.False(t, cfg.Debug)
	assert.Equal(t, cfg.Log.Level, "info")
	assert.Equal(t, cfg.Log.Label, "permit")
	assert.Equal(t, cfg.MultiTenancy.DefaultTenant, "default")
	assert.True(t, cfg.MultiTenancy.UseDefaultTenantIfEmpty)
	assert.NotNil(t, cfg.Context())
	assert.Equal(t, cfg.Context().Level(), config.APIKeyLevelWaitForInit)
}

func TestOptions(t *testing.T) {
	cfg := config.NewConfig("permit_key_test",
		config.WithPDP("http://pdp.internal:7000"),
		config.WithAPIURL("https://api.eu.permit.io"),
		config.WithDebug(true),
		config.WithLogger(config.LoggerConfig{Level: "debug", Label: "authz", JSON: true}),
		config.WithMultiTenancy(config.MultiTenancyConfig{DefaultTenant: "acme"}),
		config.WithCache(config.CacheConfig{TTL: time.Minute}),
	)

	assert.Equal(t, cfg.PDP, "http://pdp.internal:7000")
	assert.Equal(t, cfg.APIURL, "https://api.eu.permit.io")
	assert.True(t, cfg.Debug)
	assert.Equal(t, cfg.Log.Level, "debug")
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, cfg.MultiTenancy.DefaultTenant, "acme")
	assert.False(t, cfg.MultiTenancy.UseDefaultTenantIfEmpty)
	assert.Equal(t, cfg.Cache.TTL, time.Minute)
}

func TestValidate(t *testing.T) {
	assert.NoErr(t, config.NewConfig("permit_key_test").Validate())
	assert.NotNil(t, config.NewConfig("").Validate())

	// base URLs must be absolute http(s) with a host
	for _, bad := range []string{"not a url", "localhost:7766", "/relative/path", "ftp://pdp.local"} {
		assert.NotNil(t, config.NewConfig("permit_key_test", config.WithPDP(bad)).Validate())
		assert.NotNil(t, config.NewConfig("permit_key_test", config.WithAPIURL(bad)).Validate())
	}
	assert.NoErr(t, config.NewConfig("permit_key_test",
		config.WithPDP("https://pdp.internal:7766"),
		config.WithAPIURL("http://api.local:8000")).Validate())
}

func TestWithContext(t *testing.T) {
	apiContext := config.NewAPIContext()
	orgID := uuid.Must(uuid.NewV4())
	projectID := uuid.Must(uuid.NewV4())
	envID := uuid.Must(uuid.NewV4())
	apiContext.SetEnvironmentLevelContext(orgID, projectID, envID)

	cfg := config.NewConfig("permit_key_test", config.WithContext(apiContext))
	assert.Equal(t, cfg.Context().Level(), config.APIKeyLevelEnvironment)
	assert.Equal(t, cfg.Context().OrganizationID(), orgID)
	assert.Equal(t, cfg.Context().ProjectID(), projectID)
	assert.Equal(t, cfg.Context().EnvironmentID(), envID)
}

func TestAPIContextLevels(t *testing.T) {
	apiContext := config.NewAPIContext()
	assert.Equal(t, apiContext.Level().String(), "uninitialized")

	orgID := uuid.Must(uuid.NewV4())
	apiContext.SetOrganizationLevelContext(orgID)
	assert.Equal(t, apiContext.Level(), config.APIKeyLevelOrganization)
	assert.Equal(t, apiContext.Level().String(), "organization-level")
	assert.Equal(t, apiContext.ProjectID(), uuid.Nil)

	projectID := uuid.Must(uuid.NewV4())
	apiContext.SetProjectLevelContext(orgID, projectID)
	assert.Equal(t, apiContext.Level().String(), "project-level")
	assert.Equal(t, apiContext.ProjectID(), projectID)
	assert.Equal(t, apiContext.EnvironmentID(), uuid.Nil)

	envID := uuid.Must(uuid.NewV4())
	apiContext.SetEnvironmentLevelContext(orgID, projectID, envID)
	assert.Equal(t, apiContext.Level().String(), "environment-level")
	assert.Equal(t, apiContext.EnvironmentID(), envID)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(config.EnvToken, "permit_key_env")
	t.Setenv(config.EnvPDPURL, "http://localhost:7001")
	t.Setenv(config.EnvDebug, "true")
	t.Setenv(config.EnvLogLevel, "debug")

	cfg, err := config.FromEnv()
	assert.NoErr(t, err)
	assert.Equal(t, cfg.Token, "permit_key_env")
	assert.Equal(t, cfg.PDP, "http://localhost:7001")
	assert.True(t, cfg.Debug)
	assert.Equal(t, cfg.Log.Level, "debug")
	// unset vars keep their defaults
	assert.Equal(t, cfg.APIURL, config.DefaultAPIURL)
}

func TestFromEnvMissingToken(t *testing.T) {
	t.Setenv(config.EnvToken, "")
	_, err := config.FromEnv()
	assert.NotNil(t, err)
}

func TestFromEnvBadBool(t *testing.T) {
	t.Setenv(config.EnvToken, "permit_key_env")
	t.Setenv(config.EnvDebug, "not-a-bool")
	_, err := config.FromEnv()
	assert.NotNil(t, err)
}

func TestFromEnvExplicitOptionsWin(t *testing.T) {
	t.Setenv(config.EnvToken, "permit_key_env")
	t.Setenv(config.EnvPDPURL, "http://localhost:7001")

	cfg, err := config.FromEnv(config.WithPDP("http://localhost:9999"))
	assert.NoErr(t, err)
	assert.Equal(t, cfg.PDP, "http://localhost:9999")
}
