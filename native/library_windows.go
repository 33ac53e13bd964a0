//go:build windows

package native

import (
	"github.com/pkg/errors"

	"golang.org/x/sys/windows"
)

func loadLibrary(path string) (Handle, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, errors.Wrap(err, "LoadLibrary failed")
	}
	if handle == 0 {
		return 0, errors.Errorf("LoadLibrary returned a nil handle for %s", path)
	}
	return Handle(handle), nil
}
