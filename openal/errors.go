package openal

import (
	"errors"
	"fmt"
)

var (
	ErrSymbolNotFound = errors.New("openal: symbol not found")
	ErrDevice         = errors.New("openal: device operation failed")
	ErrContext        = errors.New("openal: context operation failed")
)

// SymbolError reports an entry point missing from the loaded library.
type SymbolError struct {
	Symbol string
	Err    error
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("failed to resolve OpenAL symbol '%s': %v", e.Symbol, e.Err)
}

func (e *SymbolError) Unwrap() error { return e.Err }

func (e *SymbolError) Is(target error) bool { return target == ErrSymbolNotFound }

// InvalidStringError reports a Go string that cannot cross into C because it
// contains a NUL byte.
type InvalidStringError struct {
	Value string
}

func (e *InvalidStringError) Error() string {
	return fmt.Sprintf("openal: string %q contains a NUL byte", e.Value)
}
