package config

import (
	"os"
	"sort"
	"strings"

	"github.com/arthur-debert/iacinit/pkg/errors"
	"github.com/arthur-debert/iacinit/pkg/logging"
	"github.com/arthur-debert/iacinit/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of configuration environment variables
const EnvPrefix = "IACINIT_"

// sections lists the top-level config sections, used to map
// IACINIT_FILE_PERMISSIONS_FILE to file_permissions.file
var sections = []string{"defaults", "git", "install", "templates", "variables", "file_permissions"}

// LoadOptions selects the configuration layers to load
type LoadOptions struct {
	// UserConfigPath overrides the XDG user config location
	UserConfigPath string
	// ConfigFile is an explicit file that must exist (the --config flag)
	ConfigFile string
	// Overrides are applied last, keyed by dotted path (e.g. "git.enabled")
	Overrides map[string]interface{}

	SkipUserConfig bool
	SkipEnv        bool
}

// Load loads the layered configuration
func Load(opts LoadOptions) (*Config, error) {
	return load(opts)
}

func load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(embeddedDefaults{}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config, optional
	if !opts.SkipUserConfig {
		userPath := opts.UserConfigPath
		if userPath == "" {
			userPath = paths.New().ConfigFile()
		}
		if _, err := os.Stat(userPath); err == nil {
			if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load user config from %s", userPath)
			}
			logger.Debug().Str("path", userPath).Msg("Loaded user config")
		}
	}

	// 3. Explicit config, required
	if opts.ConfigFile != "" {
		path := paths.ExpandHome(opts.ConfigFile)
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", path)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 4. Environment
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := postProcess(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps IACINIT_GIT_INITIAL_COMMIT to git.initial_commit.
// Variables with no known section are returned unchanged and end up as
// unused top-level keys.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))

	// longest section first so file_permissions is not read as "file"
	ordered := append([]string(nil), sections...)
	sort.Slice(ordered, func(i, j int) bool { return len(ordered[i]) > len(ordered[j]) })

	for _, section := range ordered {
		if strings.HasPrefix(key, section+"_") {
			return section + "." + strings.TrimPrefix(key, section+"_")
		}
	}
	return key
}

func postProcess(cfg *Config) error {
	if cfg.Defaults.Template == "" {
		return errors.New(errors.ErrConfigValid, "defaults.template cannot be empty")
	}
	if cfg.FilePermissions.Directory == 0 || cfg.FilePermissions.File == 0 || cfg.FilePermissions.Executable == 0 {
		return errors.New(errors.ErrConfigValid, "file_permissions values must be non-zero")
	}
	if cfg.Install.Timeout < 0 {
		return errors.New(errors.ErrConfigValid, "install.timeout cannot be negative")
	}
	if cfg.Variables == nil {
		cfg.Variables = make(map[string]string)
	}

	var searchPaths []string
	for _, p := range cfg.Templates.SearchPaths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		searchPaths = append(searchPaths, paths.ExpandHome(p))
	}
	cfg.Templates.SearchPaths = searchPaths

	return nil
}
