package native

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

// Directory enumerates the files of a directory.
type Directory interface {
	ListFiles(dir string) ([]string, error)
}

// File reports whether a file exists.
type File interface {
	Exists(path string) bool
}

// Path holds the path primitives used for library name handling.
type Path interface {
	HasExtension(name string) bool
	FileNameWithoutExtension(name string) string
	FileName(path string) string
	Separator() byte
}

// FileSystem groups the file system capabilities consumed by this package.
type FileSystem interface {
	Directory
	File
	Path
}

type osFileSystem struct{}

// OSFileSystem returns a FileSystem backed by the host operating system.
func OSFileSystem() FileSystem {
	return osFileSystem{}
}

func (osFileSystem) ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %q: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

// Exists reports true only for regular files; symlinks are followed.
func (osFileSystem) Exists(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func (osFileSystem) HasExtension(name string) bool {
	ext := filepath.Ext(name)
	return ext != "" && ext != "."
}

func (osFileSystem) FileNameWithoutExtension(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (osFileSystem) FileName(path string) string {
	return filepath.Base(path)
}

func (osFileSystem) Separator() byte {
	return os.PathSeparator
}

// stripExtensions removes every extension from name, handling names supplied
// with a foreign or repeated extension (openal.so.1, openal.txt.dll).
func stripExtensions(p Path, name string) string {
	for p.HasExtension(name) {
		next := p.FileNameWithoutExtension(name)
		if next == name {
			break
		}
		name = next
	}
	return name
}

// normalizeLibraryName returns name with exactly one canonical extension.
func normalizeLibraryName(p Path, name, extension string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", &ArgumentError{Param: "libraryName", Reason: "the parameter must not be nil or empty"}
	}

	stripped := strings.TrimRight(stripExtensions(p, name), ".")
	if strings.TrimSpace(stripped) == "" {
		return "", &ArgumentError{Param: "libraryName", Reason: fmt.Sprintf("library name %q has no base name", name)}
	}
	return stripped + extension, nil
}

// joinLibraryPath joins dir and fileName with exactly one separator.
func joinLibraryPath(dir, fileName string, separator byte) string {
	return withTrailingSeparator(dir, separator) + fileName
}

func withTrailingSeparator(dir string, separator byte) string {
	if dir == "" || dir[len(dir)-1] == separator {
		return dir
	}
	return dir + string(separator)
}

// isNil reports whether v is nil, including typed nil pointers stored in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return value.IsNil()
	default:
		return false
	}
}
