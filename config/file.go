package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/permitio/permit-golang/infra/perr"
)

// LoadFromFile builds a PermitConfig from a YAML config file. Unknown fields
// are rejected so typos surface immediately.
func LoadFromFile(path string, opts ...Option) (*PermitConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.Wrap(err)
	}
	defer f.Close()

	var fileCfg PermitConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fileCfg); err != nil {
		return nil, perr.Friendlyf(err, "could not parse config file '%s'", path)
	}

	var fileOpts []Option
	if fileCfg.PDP != "" {
		fileOpts = append(fileOpts, WithPDP(fileCfg.PDP))
	}
	if fileCfg.APIURL != "" {
		fileOpts = append(fileOpts, WithAPIURL(fileCfg.APIURL))
	}
	if fileCfg.Debug {
		fileOpts = append(fileOpts, WithDebug(true))
	}
	if fileCfg.Log != (LoggerConfig{}) {
		if fileCfg.Log.Label == "" {
			fileCfg.Log.Label = "permit"
		}
		fileOpts = append(fileOpts, WithLogger(fileCfg.Log))
	}
	if fileCfg.MultiTenancy != (MultiTenancyConfig{}) {
		fileOpts = append(fileOpts, WithMultiTenancy(fileCfg.MultiTenancy))
	}
	if fileCfg.Cache != (CacheConfig{}) {
		fileOpts = append(fileOpts, WithCache(fileCfg.Cache))
	}

	c := NewConfig(fileCfg.Token, append(fileOpts, opts...)...)
	if err := c.Validate(); err != nil {
		return nil, perr.Wrap(err)
	}
	return c, nil
}
