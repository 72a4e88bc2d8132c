package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix = "DOMAINVERSION_"

	// DefaultFile is read from the working directory when no file is given.
	DefaultFile = ".domainversion.yaml"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	file     string
	required bool
}

// WithConfigFile loads path instead of DefaultFile. The file must exist.
// An empty path keeps the default.
func WithConfigFile(path string) Option {
	return func(o *loadOptions) {
		if path != "" {
			o.file = path
			o.required = true
		}
	}
}

// Load layers configuration sources, later ones winning:
//
//  1. built-in defaults
//  2. the YAML file (DefaultFile is skipped when absent)
//  3. DOMAINVERSION_* environment variables
//
// An environment variable names a key by joining its path with underscores,
// so DOMAINVERSION_TAGS_INITIAL_VERSION sets tags.initial_version and
// DOMAINVERSION_SERVER_READ_TIMEOUT sets server.read_timeout. The domain
// list can only come from the file.
func Load(opts ...Option) (*Config, error) {
	o := &loadOptions{file: DefaultFile}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	if err := loadFile(k, o); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envKeyMapper(k.Keys()),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", o.file, err)
	}
	return &cfg, nil
}

func loadFile(k *koanf.Koanf, o *loadOptions) error {
	info, err := os.Stat(o.file)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !o.required:
		return nil
	case err != nil:
		return fmt.Errorf("reading config: %w", err)
	case info.IsDir():
		return fmt.Errorf("reading config: %s is a directory", o.file)
	}

	if err := k.Load(file.Provider(o.file), yaml.Parser()); err != nil {
		return fmt.Errorf("parsing config %s: %w", o.file, err)
	}
	return nil
}

// envKeyMapper resolves DOMAINVERSION_* names against the keys already known
// from defaults and the file. Underscores are ambiguous ("tags_root_prefix"
// could be tags.root.prefix), so a known key wins; unknown names fall back to
// treating every underscore as a separator.
func envKeyMapper(known []string) func(string, string) (string, any) {
	byEnvName := make(map[string]string, len(known))
	for _, key := range known {
		byEnvName[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(name, value string) (string, any) {
		name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
		if key, ok := byEnvName[name]; ok {
			return key, value
		}
		return strings.ReplaceAll(name, "_", "."), value
	}
}
