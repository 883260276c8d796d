package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// layer is one source in the configuration hierarchy.
type layer struct {
	name string
	load func(k *koanf.Koanf) error
}

// Load builds the configuration from four layers, later ones winning:
// built-in defaults, {configDir}/base.yaml, {configDir}/{profile}.yaml and
// APP_ environment variables. Env names are matched against the keys
// already loaded, so field-internal underscores survive:
//
//	APP_SERVER_READ_TIMEOUT             -> server.read_timeout
//	APP_STORAGE_DSN                     -> storage.dsn
//	APP_PETITIONS_SPONSOR_THRESHOLD     -> petitions.sponsor_threshold
//	APP_CONSTITUENCY_RETRY_MAX_ATTEMPTS -> constituency.retry.max_attempts
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	for _, l := range layers(o.configDir, profile) {
		if err := l.load(k); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func layers(dir, profile string) []layer {
	yamlLayer := func(path string) layer {
		return layer{
			name: path,
			load: func(k *koanf.Koanf) error {
				return k.Load(file.Provider(path), yaml.Parser())
			},
		}
	}

	return []layer{
		{
			name: "defaults",
			load: func(k *koanf.Koanf) error {
				return k.Load(confmap.Provider(defaults(), "."), nil)
			},
		},
		yamlLayer(filepath.Join(dir, "base.yaml")),
		yamlLayer(filepath.Join(dir, profile+".yaml")),
		{
			name: "environment",
			load: func(k *koanf.Koanf) error {
				lookup := envLookup(k.Keys())
				return k.Load(env.Provider(".", env.Opt{
					Prefix: envPrefix,
					TransformFunc: func(key, value string) (string, any) {
						return envKey(lookup, key), value
					},
				}), nil)
			},
		},
	}
}

// envKey maps APP_STORAGE_MAX_CONNS to storage.max_conns. Names that match
// no loaded key fall back to replacing every underscore with a dot.
func envKey(lookup map[string]string, name string) string {
	name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
	if key, ok := lookup[name]; ok {
		return key
	}
	return strings.ReplaceAll(name, "_", ".")
}

// envLookup indexes dotted keys by their underscore form.
func envLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}

// validateProfile rejects empty names and names that could escape the
// config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
