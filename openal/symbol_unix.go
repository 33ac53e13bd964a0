//go:build !windows

package openal

import (
	"github.com/ebitengine/purego"

	"github.com/amikos-tech/pure-native/native"
)

func lookupSymbol(handle native.Handle, name string) (uintptr, error) {
	return purego.Dlsym(uintptr(handle), name)
}
