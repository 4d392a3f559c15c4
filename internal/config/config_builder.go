package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects partial configs from every source in precedence
// order. Load errors are accumulated and reported by build.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 5),
	}
}

// build merges the collected configs so that non-zero fields of later
// sources win, then fills defaults and validates the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, partial := range b.configs {
		if err := mergo.Merge(merged, partial, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	merged.applyDefaults()
	if err := merged.validate(); err != nil {
		return nil, err
	}

	return merged, nil
}

func (b *configBuilder) add(err error, partials ...*StructuredConfig) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, partials...)
	return b
}

func (b *configBuilder) withDotEnv() *configBuilder {
	return b.add(loadDotEnv(dotEnvPath()))
}

// withEnv appends the unprefixed legacy variables first so that the
// prefixed ones override them.
func (b *configBuilder) withEnv() *configBuilder {
	legacy, err := parseLegacyEnv()
	if err != nil {
		return b.add(err)
	}

	prefixed := new(StructuredConfig)
	return b.add(parseEnv(prefixed), legacy, prefixed)
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add(nil, ParseFlags())
}

// withJSON loads the file named by the last source that set a path.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonFilePath()
	if path == "" {
		return b
	}

	jsonCfg, err := parseJSON(path)
	if err != nil {
		return b.add(err)
	}
	return b.add(nil, jsonCfg)
}

func (b *configBuilder) jsonFilePath() string {
	for i := len(b.configs) - 1; i >= 0; i-- {
		if p := b.configs[i].JSONFilePath; p != "" {
			return p
		}
	}
	return ""
}
