package native

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
)

// Handle is an opaque reference to a library mapped into the process.
// Handles obtained through this package are never released.
type Handle uintptr

// Family identifies an operating system family and its dynamic linking convention.
type Family int

const (
	Unknown Family = iota
	Windows
	Linux
	MacOS
)

func (f Family) String() string {
	switch f {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	case MacOS:
		return "macos"
	default:
		return "unknown"
	}
}

// Platform is the capability surface the loader needs from the operating system.
//
// LoadLibrary never reports failure through a zero handle alone: an
// implementation that cannot map the file returns a non-nil error carrying the
// native loader's diagnostic text.
type Platform interface {
	Family() Family
	Arch() string
	IsWindows() bool
	IsPosix() bool
	Is32Bit() bool
	Is64Bit() bool
	LibraryExtension() string
	LoadLibrary(path string) (Handle, error)
}

// LoadFunc maps the library at path into the process.
type LoadFunc func(path string) (Handle, error)

// PlatformOption configures NewPlatform.
type PlatformOption func(*platform) error

// WithLoadFunc replaces the native load primitive.
func WithLoadFunc(fn LoadFunc) PlatformOption {
	return func(p *platform) error {
		if fn == nil {
			return fmt.Errorf("load function cannot be nil")
		}
		p.load = fn
		return nil
	}
}

type familyTraits struct {
	family    Family
	extension string
	ridPrefix string
}

var familiesByGOOS = map[string]familyTraits{
	"windows": {family: Windows, extension: ".dll", ridPrefix: "win"},
	"linux":   {family: Linux, extension: posixExtension, ridPrefix: "linux"},
	"darwin":  {family: MacOS, extension: ".dylib", ridPrefix: "osx"},
}

// posixExtension is the canonical extension of ELF shared objects, which may
// also carry a trailing ABI version (libfoo.so.3).
const posixExtension = ".so"

var arch32 = map[string]bool{
	"386":      true,
	"arm":      true,
	"mips":     true,
	"mipsle":   true,
	"wasm":     true,
	"ppc":      true,
	"sparc":    true,
	"amd64p32": true,
}

type platform struct {
	traits familyTraits
	goarch string
	load   LoadFunc
}

// NewPlatform returns the Platform for the given GOOS/GOARCH pair.
func NewPlatform(goos, goarch string, opts ...PlatformOption) (Platform, error) {
	goos = strings.TrimSpace(strings.ToLower(goos))
	goarch = strings.TrimSpace(strings.ToLower(goarch))

	traits, ok := familiesByGOOS[goos]
	if !ok {
		return nil, fmt.Errorf("unsupported platform for native library loading: GOOS=%s GOARCH=%s", goos, goarch)
	}
	if goarch == "" {
		return nil, fmt.Errorf("GOARCH cannot be empty")
	}

	p := &platform{
		traits: traits,
		goarch: goarch,
		load:   loadLibrary,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

var currentPlatform = sync.OnceValues(func() (Platform, error) {
	return NewPlatform(runtime.GOOS, runtime.GOARCH)
})

// CurrentPlatform returns the Platform of the running process. The
// implementation is selected once and shared.
func CurrentPlatform() (Platform, error) {
	return currentPlatform()
}

func (p *platform) Family() Family { return p.traits.family }

func (p *platform) Arch() string { return p.goarch }

func (p *platform) IsWindows() bool { return p.traits.family == Windows }

func (p *platform) IsPosix() bool {
	return p.traits.family == Linux || p.traits.family == MacOS
}

func (p *platform) Is32Bit() bool { return arch32[p.goarch] }

func (p *platform) Is64Bit() bool { return !arch32[p.goarch] }

func (p *platform) LibraryExtension() string { return p.traits.extension }

func (p *platform) LoadLibrary(path string) (Handle, error) {
	handle, err := p.load(path)
	if err != nil {
		return 0, err
	}
	if handle == 0 {
		return 0, fmt.Errorf("native loader returned an empty handle for %s", path)
	}
	return handle, nil
}

func (p *platform) String() string {
	return fmt.Sprintf("%s/%s", p.traits.family, p.goarch)
}
