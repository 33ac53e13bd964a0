package native

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrPathResolution    = errors.New("native library path could not be resolved")
	ErrMissingDependency = errors.New("native dependency missing")
	ErrLibraryNotFound   = errors.New("native library not found")
	ErrLoadLibrary       = errors.New("native library failed to load")
)

// ArgumentError reports a missing collaborator or an unusable library name.
type ArgumentError struct {
	Param  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s (parameter '%s')", e.Reason, e.Param)
}

func (e *ArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

func nilArgument(param string) error {
	return &ArgumentError{Param: param, Reason: "the parameter must not be nil"}
}

// PathResolutionError reports that the native library directory could not be computed.
type PathResolutionError struct {
	Err error
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve native library directory: %v", e.Err)
}

func (e *PathResolutionError) Unwrap() error { return e.Err }

func (e *PathResolutionError) Is(target error) bool { return target == ErrPathResolution }

// MissingDependencyError reports a declared dependency absent from the native library directory.
type MissingDependencyError struct {
	Name string
	Path string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("the native dependency library '%s' does not exist", e.Path)
}

func (e *MissingDependencyError) Is(target error) bool { return target == ErrMissingDependency }

// LibraryNotFoundError reports that the primary library file was not found.
type LibraryNotFoundError struct {
	Name string
	Dir  string
	Path string
}

func (e *LibraryNotFoundError) Error() string {
	return fmt.Sprintf("could not find the library '%s' in directory path '%s'", e.Name, e.Dir)
}

func (e *LibraryNotFoundError) Is(target error) bool { return target == ErrLibraryNotFound }

// LoadLibraryError reports that the library exists but the OS loader rejected it.
// The message holds the loader's own text followed by the attempted path.
type LoadLibraryError struct {
	Path string
	Err  error
}

func (e *LoadLibraryError) Error() string {
	msg := "unknown native loader error"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("%s\n\nLibrary Path: '%s'", msg, e.Path)
}

func (e *LoadLibraryError) Unwrap() error { return e.Err }

func (e *LoadLibraryError) Is(target error) bool { return target == ErrLoadLibrary }
