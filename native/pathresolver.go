package native

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// InstallDirProvider supplies the directory the application runs from.
type InstallDirProvider interface {
	InstallDir() (string, error)
}

// InstallDirFunc adapts a function to InstallDirProvider.
type InstallDirFunc func() (string, error)

func (f InstallDirFunc) InstallDir() (string, error) { return f() }

var installDirFallbackWarnOnce sync.Once

// ExecutableDir returns a provider that reports the directory of the running
// executable, falling back to the working directory when it cannot be
// determined. The fallback is logged once per process through logger; a nil
// logger selects slog.Default().
func ExecutableDir(logger *slog.Logger) InstallDirProvider {
	return executableDir(logger, os.Executable)
}

func executableDir(logger *slog.Logger, executable func() (string, error)) InstallDirProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return InstallDirFunc(func() (string, error) {
		exe, exeErr := executable()
		if exeErr == nil {
			if resolved, err := filepath.EvalSymlinks(exe); err == nil {
				exe = resolved
			}
			return filepath.Dir(exe), nil
		}

		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Join(exeErr, err)
		}
		installDirFallbackWarnOnce.Do(func() {
			logger.Warn("failed to resolve executable path; using working directory as install root",
				"error", exeErr, "dir", cwd, "override", EnvInstallRoot)
		})
		return cwd, nil
	})
}

// DirResolver computes the directory that holds native libraries.
type DirResolver interface {
	DirPath() (string, error)
}

// PathResolver maps an install root and a Platform to
// <root>/runtimes/<rid>/native/.
type PathResolver struct {
	platform    Platform
	installRoot string
	nativeDir   string
	installDir  InstallDirProvider
}

// NewPathResolver builds a resolver for platform.
func NewPathResolver(platform Platform, opts ...Option) (*PathResolver, error) {
	if isNil(platform) {
		return nil, nilArgument("platform")
	}
	cfg, err := resolveConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &PathResolver{
		platform:    platform,
		installRoot: cfg.installRoot,
		nativeDir:   cfg.nativeDir,
		installDir:  cfg.installDir,
	}, nil
}

// DirPath returns the absolute native library directory with a trailing separator.
func (r *PathResolver) DirPath() (string, error) {
	if r.nativeDir != "" {
		dir, err := filepath.Abs(r.nativeDir)
		if err != nil {
			return "", &PathResolutionError{Err: err}
		}
		return withTrailingSeparator(dir, os.PathSeparator), nil
	}

	root := r.installRoot
	if root == "" {
		dir, err := r.installDir.InstallDir()
		if err != nil {
			return "", &PathResolutionError{Err: fmt.Errorf("install directory unavailable: %w", err)}
		}
		root = strings.TrimSpace(dir)
	}
	if root == "" {
		return "", &PathResolutionError{Err: errors.New("install directory is empty")}
	}

	rid, err := RuntimeIdentifier(r.platform)
	if err != nil {
		return "", &PathResolutionError{Err: err}
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", &PathResolutionError{Err: err}
	}
	return withTrailingSeparator(filepath.Join(absRoot, "runtimes", rid, "native"), os.PathSeparator), nil
}

// RuntimeIdentifier returns the runtimes/ subdirectory name for platform,
// for example win-x64, linux-arm64 or osx-x64.
func RuntimeIdentifier(platform Platform) (string, error) {
	var prefix string
	switch platform.Family() {
	case Windows:
		prefix = familiesByGOOS["windows"].ridPrefix
	case Linux:
		prefix = familiesByGOOS["linux"].ridPrefix
	case MacOS:
		prefix = familiesByGOOS["darwin"].ridPrefix
	default:
		return "", fmt.Errorf("no runtime identifier for platform family %s", platform.Family())
	}

	var arch string
	switch platform.Arch() {
	case "amd64":
		arch = "x64"
	case "386":
		arch = "x86"
	case "arm64":
		arch = "arm64"
	case "arm":
		arch = "arm"
	case "":
		return "", fmt.Errorf("architecture is empty for platform family %s", platform.Family())
	default:
		arch = platform.Arch()
	}

	return prefix + "-" + arch, nil
}
