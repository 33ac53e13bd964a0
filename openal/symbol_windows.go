//go:build windows

package openal

import (
	"golang.org/x/sys/windows"

	"github.com/amikos-tech/pure-native/native"
)

func lookupSymbol(handle native.Handle, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}
