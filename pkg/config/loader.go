package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dp/pkg/errors"
	"github.com/arthur-debert/dp/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read by Load
const EnvPrefix = "DP_"

// userConfigNames are searched, in order, under the XDG config dirs
var userConfigNames = []string{"dp/config.toml", "dp/config.yaml", "dp/config.yml"}

// LoadOptions controls which sources Load reads
type LoadOptions struct {
	// ConfigFile is an explicit config file loaded after the user config
	ConfigFile string

	// SkipUserConfig disables the XDG user config lookup
	SkipUserConfig bool

	// Overrides are applied last, keyed like the config file ("fallthrough")
	Overrides map[string]interface{}
}

// Load builds the effective configuration from all sources
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load user config if it exists
	if !opts.SkipUserConfig {
		if path := findUserConfig(); path != "" {
			logger.Debug().Str("path", path).Msg("Loading user config")
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
		}
	}

	// 3. Load explicit config
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", opts.ConfigFile)
		}
		logger.Debug().Str("path", opts.ConfigFile).Msg("Loading config file")
		if err := loadFile(k, opts.ConfigFile); err != nil {
			return nil, err
		}
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 5. Caller overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Bool("fallthrough", cfg.Fallthrough).
		Bool("wholePath", cfg.WholePath).
		Int("rules", len(cfg.Rules)).
		Msg("Configuration loaded")
	return &cfg, nil
}

// envKey maps DP_WHOLE_PATH to whole_path
func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

func findUserConfig() string {
	for _, name := range userConfigNames {
		if path, err := xdg.SearchConfigFile(name); err == nil {
			return path
		}
	}
	return ""
}

func loadFile(k *koanf.Koanf, path string) error {
	parser, err := parserFor(path)
	if err != nil {
		return err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
	}
	return nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported config format %q", filepath.Ext(path))
	}
}
