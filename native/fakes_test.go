package native

import (
	"errors"
	"strings"
	"testing"
)

const (
	winDirPath   = `C:\Program Files\test-app`
	linuxDirPath = "/usr/bin/test-app"
	winSep       = '\\'
	posixSep     = '/'
)

// fakeFS is an in-memory FileSystem with a configurable separator, so Windows
// paths can be exercised on any host.
type fakeFS struct {
	sep      byte
	files    map[string]bool
	listing  map[string][]string
	listErr  error
	probed   []string
	listDirs []string
}

func newFakeFS(sep byte, files ...string) *fakeFS {
	fs := &fakeFS{
		sep:     sep,
		files:   make(map[string]bool),
		listing: make(map[string][]string),
	}
	for _, file := range files {
		fs.add(file)
	}
	return fs
}

func (f *fakeFS) add(path string) {
	f.files[path] = true
	idx := strings.LastIndexByte(path, f.sep)
	if idx < 0 {
		return
	}
	dir := path[:idx+1]
	f.listing[dir] = append(f.listing[dir], path)
}

func (f *fakeFS) ListFiles(dir string) ([]string, error) {
	f.listDirs = append(f.listDirs, dir)
	if f.listErr != nil {
		return nil, f.listErr
	}
	if !strings.HasSuffix(dir, string(f.sep)) {
		dir += string(f.sep)
	}
	return f.listing[dir], nil
}

func (f *fakeFS) Exists(path string) bool {
	f.probed = append(f.probed, path)
	return f.files[path]
}

func (f *fakeFS) HasExtension(name string) bool {
	base := f.FileName(name)
	idx := strings.LastIndexByte(base, '.')
	return idx >= 0 && idx < len(base)-1
}

func (f *fakeFS) FileNameWithoutExtension(name string) string {
	base := f.FileName(name)
	if idx := strings.LastIndexByte(base, '.'); idx >= 0 {
		return base[:idx]
	}
	return base
}

func (f *fakeFS) FileName(path string) string {
	if idx := strings.LastIndexByte(path, f.sep); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

func (f *fakeFS) Separator() byte { return f.sep }

// spyPlatform records every load request.
type spyPlatform struct {
	family    Family
	arch      string
	extension string
	handle    Handle
	err       error
	loads     []string
}

func newSpyPlatform(extension string) *spyPlatform {
	p := &spyPlatform{arch: "amd64", extension: extension, handle: 1234}
	switch extension {
	case ".dll":
		p.family = Windows
	case ".so":
		p.family = Linux
	case ".dylib":
		p.family = MacOS
	}
	return p
}

func (p *spyPlatform) Family() Family           { return p.family }
func (p *spyPlatform) Arch() string             { return p.arch }
func (p *spyPlatform) IsWindows() bool          { return p.family == Windows }
func (p *spyPlatform) IsPosix() bool            { return p.family == Linux || p.family == MacOS }
func (p *spyPlatform) Is32Bit() bool            { return false }
func (p *spyPlatform) Is64Bit() bool            { return true }
func (p *spyPlatform) LibraryExtension() string { return p.extension }

func (p *spyPlatform) LoadLibrary(path string) (Handle, error) {
	p.loads = append(p.loads, path)
	if p.err != nil {
		return 0, p.err
	}
	return p.handle, nil
}

// spyDeps is a Dependencies stub that counts verification calls.
type spyDeps struct {
	dir         string
	dirErr      error
	verifyErr   error
	verifyCalls int
}

func (d *spyDeps) NativeLibDirPath() (string, error) {
	return d.dir, d.dirErr
}

func (d *spyDeps) VerifyDependencies() error {
	d.verifyCalls++
	return d.verifyErr
}

type fakeResolver struct {
	dir   string
	err   error
	calls int
}

func (r *fakeResolver) DirPath() (string, error) {
	r.calls++
	return r.dir, r.err
}

func clearNativeEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvInstallRoot, "")
	t.Setenv(EnvNativeDir, "")
	t.Setenv(EnvSkipVerify, "")
}

func requireArgumentError(t *testing.T, err error, param string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected argument error for %q, got nil", param)
	}
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected *ArgumentError, got %T: %v", err, err)
	}
	if argErr.Param != param {
		t.Fatalf("unexpected parameter: got %q, want %q", argErr.Param, param)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected error to match ErrInvalidArgument")
	}
}
