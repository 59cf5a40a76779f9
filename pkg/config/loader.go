package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/measurefs/pkg/errors"
	"github.com/arthur-debert/measurefs/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "MEASUREFS_"

	appName = "measurefs"
)

// BundleConfigNames are the bundle-local config files, in lookup order.
// Only the first one found is loaded.
var BundleConfigNames = []string{".measurefs.toml", ".measurefs.yaml"}

// Options selects the layers Load reads.
type Options struct {
	// UserConfig overrides the user config path. Unlike the default path,
	// an explicit file must exist.
	UserConfig string

	// BundleDir is searched for a bundle-local config. Empty skips it.
	BundleDir string

	// SkipEnv leaves MEASUREFS_* variables out.
	SkipEnv bool

	// Overrides are dotted keys applied after every other layer, typically
	// from command-line flags.
	Overrides map[string]interface{}
}

// UserConfigPath returns $XDG_CONFIG_HOME/measurefs/config.toml.
func UserConfigPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, appName, "config.toml")
}

// Default returns the embedded defaults alone.
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return decode(k)
}

// Load merges every configured layer and decodes the result.
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	userPath, required := opts.UserConfig, true
	if userPath == "" {
		userPath, required = UserConfigPath(), false
	}
	if err := loadFile(k, userPath, required); err != nil {
		return nil, err
	}

	// 3. Bundle-local config
	if opts.BundleDir != "" {
		for _, name := range BundleConfigNames {
			path := filepath.Join(opts.BundleDir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if err := loadFile(k, path, true); err != nil {
				return nil, err
			}
			break
		}
	}

	// 4. Env vars
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 5. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg, err := decode(k)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Strs("approved_folders", cfg.Bundle.ApprovedFolders).
		Strs("copy_ignore", cfg.Copy.Ignore).
		Strs("stage_ignore", cfg.Stage.Ignore).
		Bool("create_parents", cfg.Copy.CreateParents).
		Msg("Configuration loaded")
	return cfg, nil
}

func decode(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// loadFile merges path into k. A missing file is skipped unless required.
func loadFile(k *koanf.Koanf, path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config %s", path).
			WithDetail("path", path)
	}
	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config %s", path).
			WithDetail("path", path)
	}
	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("Loaded config file")
	return nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps MEASUREFS_COPY_CREATE_PARENTS to copy.create_parents.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}
