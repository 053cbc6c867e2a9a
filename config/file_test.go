package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/permitio/permit-golang/config"
	"github.com/permitio/permit-golang/infra/assert"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "permit.yaml")
	assert.NoErr(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
token: permit_key_file
pdp: http://pdp.internal:7766
debug: true
log:
  level: debug
multi_tenancy:
  default_tenant: acme
  use_default_tenant_if_empty: true
`)

	cfg, err := config.LoadFromFile(path)
	assert.NoErr(t, err)
	assert.Equal(t, cfg.Token, "permit_key_file")
	assert.Equal(t, cfg.PDP, "http://pdp.internal:7766")
	assert.True(t, cfg.Debug)
	assert.Equal(t, cfg.Log.Level, "debug")
	// log label falls back to the default when the file sets only the level
	assert.Equal(t, cfg.Log.Label, "permit")
	assert.Equal(t, cfg.MultiTenancy.DefaultTenant, "acme")
	// values the file leaves out keep their defaults
	assert.Equal(t, cfg.APIURL, config.DefaultAPIURL)
}

func TestLoadFromFileUnknownField(t *testing.T) {
	path := writeConfigFile(t, `
token: permit_key_file
pdp_url: http://pdp.internal:7766
`)

	_, err := config.LoadFromFile(path)
	assert.NotNil(t, err)
}

func TestLoadFromFileOptionsWin(t *testing.T) {
	path := writeConfigFile(t, `
token: permit_key_file
pdp: http://pdp.internal:7766
`)

	cfg, err := config.LoadFromFile(path, config.WithPDP("http://localhost:7001"))
	assert.NoErr(t, err)
	assert.Equal(t, cfg.PDP, "http://localhost:7001")
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := config.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)

	// a file without a token fails validation
	path := writeConfigFile(t, `
pdp: http://pdp.internal:7766
`)
	_, err = config.LoadFromFile(path)
	assert.NotNil(t, err)

	// a file with a relative PDP URL fails validation
	path = writeConfigFile(t, `
token: permit_key_file
pdp: pdp.internal:7766
`)
	_, err = config.LoadFromFile(path)
	assert.NotNil(t, err)
}
