//go:build !windows

package native

import (
	"fmt"

	"github.com/ebitengine/purego"
)

func loadLibrary(path string) (Handle, error) {
	libHandle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	if libHandle == 0 {
		return 0, fmt.Errorf("dlopen returned a nil handle for %s", path)
	}
	return Handle(libHandle), nil
}
