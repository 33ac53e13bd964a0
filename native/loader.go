package native

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Library describes a native library by its logical, extension-agnostic name.
type Library interface {
	LibraryName() string
}

// Named is a Library identified by a plain name such as "openal".
type Named string

func (n Named) LibraryName() string { return string(n) }

// Loader maps one native library into the process after verifying its
// dependencies.
//
// Construction performs no I/O. Initialize runs dependency verification once;
// LoadLibrary runs it implicitly when Initialize was not called, so
// verification always completes before the load primitive is invoked.
type Loader struct {
	deps     Dependencies
	platform Platform
	fs       FileSystem
	name     string
	logger   *slog.Logger

	mu          sync.Mutex
	initialized bool
	initErr     error
}

// NewLoader validates its collaborators and normalizes the library name for
// platform. It returns an *ArgumentError when a collaborator is nil or the
// library name is empty.
func NewLoader(deps Dependencies, platform Platform, fs FileSystem, library Library, opts ...Option) (*Loader, error) {
	if isNil(deps) {
		return nil, nilArgument("dependencyManager")
	}
	if isNil(platform) {
		return nil, nilArgument("platform")
	}
	if isNil(fs) {
		return nil, nilArgument("fs")
	}
	if isNil(library) {
		return nil, nilArgument("library")
	}

	cfg, err := resolveConfig(opts...)
	if err != nil {
		return nil, err
	}

	name, err := normalizeLibraryName(fs, library.LibraryName(), platform.LibraryExtension())
	if err != nil {
		return nil, err
	}

	return &Loader{
		deps:     deps,
		platform: platform,
		fs:       fs,
		name:     name,
		logger:   cfg.logger.With("loader_id", uuid.NewString(), "library", name),
	}, nil
}

// LibraryName returns the platform file name of the library, e.g. openal.dll.
func (l *Loader) LibraryName() string {
	return l.name
}

// Initialize verifies the declared dependencies. The result is remembered: a
// failed loader keeps returning the same error and never loads.
func (l *Loader) Initialize() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.initializeLocked()
}

func (l *Loader) initializeLocked() error {
	if l.initialized {
		return l.initErr
	}
	l.initialized = true

	if err := l.deps.VerifyDependencies(); err != nil {
		l.initErr = err
		l.logger.Error("native dependency verification failed", "error", err)
		return err
	}
	l.logger.Debug("native dependencies verified")
	return nil
}

// LoadLibrary maps the library into the process and returns its handle.
//
// It fails with *LibraryNotFoundError when the file is absent from the native
// library directory and with *LoadLibraryError when the OS loader rejects it.
// Nothing is cached: every call probes the file and invokes the loader again.
func (l *Loader) LoadLibrary() (Handle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.initializeLocked(); err != nil {
		return 0, err
	}

	dir, err := l.deps.NativeLibDirPath()
	if err != nil {
		return 0, err
	}
	dir = withTrailingSeparator(dir, l.fs.Separator())

	path := dir + l.name
	if !l.fs.Exists(path) && l.platform.LibraryExtension() == posixExtension {
		versioned, err := latestPosixLibraryVersion(l.fs, dir, l.name)
		if err != nil {
			l.logger.Debug("versioned shared object lookup failed", "dir", dir, "error", err)
		} else if versioned != "" {
			path = dir + versioned
		}
	}

	if !l.fs.Exists(path) {
		return 0, &LibraryNotFoundError{Name: l.name, Dir: dir, Path: path}
	}

	handle, err := l.platform.LoadLibrary(path)
	if err != nil {
		l.logger.Error("native library failed to load", "path", path, "error", err)
		return 0, &LoadLibraryError{Path: path, Err: err}
	}

	l.logger.Debug("native library loaded", "path", path)
	return handle, nil
}

// LatestPosixLibraryVersion returns the newest versioned shared object for
// name found in dir (mylib.so.3 among mylib.so.1..3), the first lexical
// candidate when none is versioned, or "" when nothing matches.
func (l *Loader) LatestPosixLibraryVersion(dir, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		name = l.name
	}
	return latestPosixLibraryVersion(l.fs, dir, name)
}
