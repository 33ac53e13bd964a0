// Package openal is a minimal OpenAL binding built on the native package.
//
// The library and its declared dependencies are located under
// runtimes/<rid>/native/ next to the executable (or wherever the native
// options point), verified, loaded, and the ALC entry points are bound through
// libffi call interfaces.
package openal

import "runtime"

// Device is an opaque ALCdevice pointer.
type Device uintptr

// Context is an opaque ALCcontext pointer.
type Context uintptr

// ALC and AL enum values used by this binding.
const (
	alcDefaultDeviceSpecifier int32 = 0x1004
	alcDeviceSpecifier        int32 = 0x1005

	alcFrequency     int32 = 0x1007
	alcRefresh       int32 = 0x1008
	alcSync          int32 = 0x1009
	alcMonoSources   int32 = 0x1010
	alcStereoSources int32 = 0x1011

	alVendor   int32 = 0xB001
	alVersion  int32 = 0xB002
	alRenderer int32 = 0xB003
)

// DefaultLibrary returns the logical library name of the OpenAL Soft build
// shipped for the running platform: soft_oal.dll on Windows, libopenal
// elsewhere.
func DefaultLibrary() string {
	return defaultLibraryFor(runtime.GOOS)
}

func defaultLibraryFor(goos string) string {
	switch goos {
	case "windows":
		return "soft_oal"
	default:
		return "libopenal"
	}
}
