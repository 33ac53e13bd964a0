package openal

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/amikos-tech/pure-native/native"
)

// Option configures Open.
type Option func(*config) error

type config struct {
	library      string
	dependencies []string
	nativeOpts   []native.Option
	logger       *slog.Logger
}

// WithLibrary overrides the logical library name (default DefaultLibrary()).
func WithLibrary(name string) Option {
	return func(cfg *config) error {
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("library name cannot be empty")
		}
		cfg.library = name
		return nil
	}
}

// WithDependencies declares native libraries that must sit next to OpenAL.
func WithDependencies(names ...string) Option {
	return func(cfg *config) error {
		cfg.dependencies = append(cfg.dependencies, names...)
		return nil
	}
}

// WithNativeOptions forwards options to the native resolver, dependency
// manager and loader, e.g. native.WithInstallRoot.
func WithNativeOptions(opts ...native.Option) Option {
	return func(cfg *config) error {
		cfg.nativeOpts = append(cfg.nativeOpts, opts...)
		return nil
	}
}

// WithLogger sets the logger used by the binding and the native loader.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) error {
		cfg.logger = logger
		return nil
	}
}

// Binding is a loaded OpenAL library with its entry points bound.
type Binding struct {
	handle  native.Handle
	library string
	fns     *functions
	logger  *slog.Logger
}

// Open locates, verifies and loads OpenAL for the running platform and binds
// its ALC entry points. The library stays mapped for the life of the process.
func Open(opts ...Option) (*Binding, error) {
	cfg := config{library: DefaultLibrary()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	nativeOpts := append([]native.Option{native.WithLogger(cfg.logger)}, cfg.nativeOpts...)

	platform, err := native.CurrentPlatform()
	if err != nil {
		return nil, err
	}
	fs := native.OSFileSystem()

	resolver, err := native.NewPathResolver(platform, nativeOpts...)
	if err != nil {
		return nil, err
	}
	deps, err := native.NewDependencyManager(platform, fs, resolver, nativeOpts...)
	if err != nil {
		return nil, err
	}
	deps.SetDependencies(cfg.dependencies...)

	loader, err := native.NewLoader(deps, platform, fs, native.Named(cfg.library), nativeOpts...)
	if err != nil {
		return nil, err
	}
	if err := loader.Initialize(); err != nil {
		return nil, err
	}
	handle, err := loader.LoadLibrary()
	if err != nil {
		return nil, err
	}

	return newBinding(handle, loader.LibraryName(), lookupSymbol, cfg.logger)
}

func newBinding(handle native.Handle, library string, lookup symbolLookup, logger *slog.Logger) (*Binding, error) {
	fns, err := loadFunctions(handle, lookup)
	if err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", library, err)
	}
	logger.Debug("openal bound", "library", library, "symbols", len(binders))
	return &Binding{handle: handle, library: library, fns: fns, logger: logger}, nil
}

// Handle returns the native handle of the loaded library.
func (b *Binding) Handle() native.Handle { return b.handle }

// LibraryName returns the file name that was loaded, e.g. soft_oal.dll.
func (b *Binding) LibraryName() string { return b.library }

// OpenDevice opens the named output device, or the default device when name is empty.
func (b *Binding) OpenDevice(name string) (Device, error) {
	cname, err := cstring(name)
	if err != nil {
		return 0, err
	}

	var namePtr *byte
	if cname != nil {
		namePtr = &cname[0]
	}
	device := b.fns.openDevice(namePtr)
	runtime.KeepAlive(cname)

	if device == 0 {
		if name == "" {
			name = "default"
		}
		return 0, fmt.Errorf("%w: alcOpenDevice returned NULL for device %q", ErrDevice, name)
	}
	b.logger.Debug("openal device opened", "device", name)
	return device, nil
}

// CloseDevice closes device. All contexts and buffers of the device must be
// destroyed first.
func (b *Binding) CloseDevice(device Device) error {
	if device == 0 {
		return fmt.Errorf("%w: device is nil", ErrDevice)
	}
	if !b.fns.closeDevice(device) {
		return fmt.Errorf("%w: alcCloseDevice failed", ErrDevice)
	}
	return nil
}

// CreateContext creates a context on device with the given attributes.
func (b *Binding) CreateContext(device Device, attributes ContextAttributes) (Context, error) {
	if device == 0 {
		return 0, fmt.Errorf("%w: device is nil", ErrContext)
	}

	list := attributes.AttributeList()
	context := b.fns.createContext(device, &list[0])
	runtime.KeepAlive(list)

	if context == 0 {
		return 0, fmt.Errorf("%w: alcCreateContext returned NULL (%s)", ErrContext, attributes)
	}
	return context, nil
}

// MakeContextCurrent makes context current for the process. A zero context
// releases the current one.
func (b *Binding) MakeContextCurrent(context Context) error {
	if !b.fns.makeContextCurrent(context) {
		return fmt.Errorf("%w: alcMakeContextCurrent failed", ErrContext)
	}
	return nil
}

// DestroyContext destroys context. It must not be current.
func (b *Binding) DestroyContext(context Context) {
	if context == 0 {
		return
	}
	b.fns.destroyContext(context)
}

// DeviceSpecifier returns the name of an open device.
func (b *Binding) DeviceSpecifier(device Device) string {
	return goString(b.fns.getString(device, alcDeviceSpecifier))
}

// DefaultDevice returns the name of the default output device.
func (b *Binding) DefaultDevice() string {
	return goString(b.fns.getString(0, alcDefaultDeviceSpecifier))
}

// Devices lists the available output devices.
func (b *Binding) Devices() []string {
	return parseStringList(b.fns.getString(0, alcDeviceSpecifier))
}

// Version returns the AL version string of the current context, or "" when
// no context is current.
func (b *Binding) Version() string {
	return goString(b.fns.alGetString(alVersion))
}

// Vendor returns the AL vendor string of the current context.
func (b *Binding) Vendor() string {
	return goString(b.fns.alGetString(alVendor))
}

// Renderer returns the AL renderer string of the current context.
func (b *Binding) Renderer() string {
	return goString(b.fns.alGetString(alRenderer))
}
