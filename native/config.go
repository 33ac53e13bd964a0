package native

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Environment variables read once when a resolver, manager or loader is built.
// Options passed explicitly take precedence.
const (
	EnvInstallRoot = "PURE_NATIVE_ROOT"
	EnvNativeDir   = "PURE_NATIVE_LIB_DIR"
	EnvSkipVerify  = "PURE_NATIVE_SKIP_VERIFY"
)

// Option configures NewPathResolver, NewDependencyManager and NewLoader.
// Each constructor reads only the fields it needs.
type Option func(*config) error

type config struct {
	installRoot string
	nativeDir   string
	installDir  InstallDirProvider
	skipVerify  bool
	logger      *slog.Logger
}

// WithInstallRoot sets the directory that contains the runtimes/ tree.
func WithInstallRoot(dir string) Option {
	return func(cfg *config) error {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			return fmt.Errorf("install root cannot be empty")
		}
		cfg.installRoot = dir
		return nil
	}
}

// WithNativeDir bypasses runtimes/<rid>/native resolution and uses dir directly.
func WithNativeDir(dir string) Option {
	return func(cfg *config) error {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			return fmt.Errorf("native library directory cannot be empty")
		}
		cfg.nativeDir = dir
		return nil
	}
}

// WithInstallDirProvider replaces the provider consulted when no install root is configured.
func WithInstallDirProvider(provider InstallDirProvider) Option {
	return func(cfg *config) error {
		if isNil(provider) {
			return fmt.Errorf("install directory provider cannot be nil")
		}
		cfg.installDir = provider
		return nil
	}
}

// WithSkipVerify disables dependency verification. Intended for environments
// where dependencies are provided by the system loader search path.
func WithSkipVerify(skip bool) Option {
	return func(cfg *config) error {
		cfg.skipVerify = skip
		return nil
	}
}

// WithLogger sets the structured logger. A nil logger selects slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) error {
		cfg.logger = logger
		return nil
	}
}

func resolveConfig(opts ...Option) (config, error) {
	skipVerify, err := parseBoolEnv(EnvSkipVerify)
	if err != nil {
		return config{}, err
	}

	cfg := config{
		installRoot: strings.TrimSpace(os.Getenv(EnvInstallRoot)),
		nativeDir:   strings.TrimSpace(os.Getenv(EnvNativeDir)),
		skipVerify:  skipVerify,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}

	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.installDir == nil {
		cfg.installDir = ExecutableDir(cfg.logger)
	}
	return cfg, nil
}

func parseBoolEnv(name string) (bool, error) {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return false, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err == nil {
		return parsed, nil
	}

	switch strings.ToLower(value) {
	case "1", "yes", "y", "on":
		return true, nil
	case "0", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value for %s: %q (expected true/false, 1/0, yes/no, on/off)", name, value)
	}
}
