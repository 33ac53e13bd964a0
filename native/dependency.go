package native

import (
	"log/slog"
	"strings"
	"sync"
)

// Dependencies is the view of a DependencyManager consumed by Loader.
type Dependencies interface {
	NativeLibDirPath() (string, error)
	VerifyDependencies() error
}

// DependencyManager owns the set of native libraries that must be present
// before a Loader maps its primary library.
type DependencyManager struct {
	platform   Platform
	fs         FileSystem
	resolver   DirResolver
	skipVerify bool
	logger     *slog.Logger

	mu        sync.RWMutex
	libraries []string
}

// NewDependencyManager builds a manager that checks dependencies in the
// directory returned by resolver.
func NewDependencyManager(platform Platform, fs FileSystem, resolver DirResolver, opts ...Option) (*DependencyManager, error) {
	if isNil(platform) {
		return nil, nilArgument("platform")
	}
	if isNil(fs) {
		return nil, nilArgument("fs")
	}
	if isNil(resolver) {
		return nil, nilArgument("resolver")
	}

	cfg, err := resolveConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &DependencyManager{
		platform:   platform,
		fs:         fs,
		resolver:   resolver,
		skipVerify: cfg.skipVerify,
		logger:     cfg.logger,
	}, nil
}

// SetDependencies replaces the dependency set. Names are stored without
// extensions and in the given order; blank names are ignored.
func (m *DependencyManager) SetDependencies(names ...string) {
	libraries := make([]string, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		libraries = append(libraries, stripExtensions(m.fs, name))
	}

	m.mu.Lock()
	m.libraries = libraries
	m.mu.Unlock()
}

// Dependencies returns a copy of the dependency set.
func (m *DependencyManager) Dependencies() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string{}, m.libraries...)
}

// NativeLibDirPath returns the directory holding native libraries for the current platform.
func (m *DependencyManager) NativeLibDirPath() (string, error) {
	return m.resolver.DirPath()
}

// VerifyDependencies checks that every dependency exists in the native library
// directory and stops at the first missing one with a *MissingDependencyError.
func (m *DependencyManager) VerifyDependencies() error {
	libraries := m.Dependencies()

	if m.skipVerify {
		m.logger.Warn("native dependency verification disabled", "dependencies", libraries, "env", EnvSkipVerify)
		return nil
	}
	if len(libraries) == 0 {
		return nil
	}

	dir, err := m.NativeLibDirPath()
	if err != nil {
		return err
	}

	extension := m.platform.LibraryExtension()
	separator := m.fs.Separator()
	for _, library := range libraries {
		fileName, err := normalizeLibraryName(m.fs, library, extension)
		if err != nil {
			return err
		}

		path := joinLibraryPath(dir, fileName, separator)
		if m.fs.Exists(path) {
			m.logger.Debug("native dependency verified", "library", fileName, "path", path)
			continue
		}

		if extension == posixExtension {
			if versioned, err := latestPosixLibraryVersion(m.fs, dir, fileName); err == nil && versioned != "" {
				versionedPath := joinLibraryPath(dir, versioned, separator)
				if m.fs.Exists(versionedPath) {
					m.logger.Debug("native dependency verified", "library", versioned, "path", versionedPath)
					continue
				}
			}
		}

		return &MissingDependencyError{Name: fileName, Path: path}
	}
	return nil
}
