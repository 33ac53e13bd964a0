package openal

import (
	"strings"
	"unsafe"
)

// maxStringLen bounds scans of native strings; a longer run without a
// terminator indicates a corrupt pointer.
const maxStringLen = 1 << 20

// goString converts a NUL-terminated C string to a Go string.
// Returns an empty string if ptr is 0.
func goString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	// ptr is C-owned memory returned by ALC, outside the Go heap.
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), cstringLen(unsafe.Pointer(ptr))))
}

func cstringLen(p unsafe.Pointer) int {
	for n := 0; n < maxStringLen; n++ {
		if *(*byte)(unsafe.Add(p, n)) == 0 {
			return n
		}
	}
	return maxStringLen
}

// parseStringList splits an ALC string list: NUL-separated entries ending
// with an empty entry (two consecutive NULs).
func parseStringList(ptr uintptr) []string {
	if ptr == 0 {
		return nil
	}

	var list []string
	// ptr is C-owned memory returned by ALC, outside the Go heap.
	p := unsafe.Pointer(ptr)
	for offset := 0; offset < maxStringLen; {
		n := cstringLen(unsafe.Add(p, offset))
		if n == 0 {
			break
		}
		list = append(list, string(unsafe.Slice((*byte)(unsafe.Add(p, offset)), n)))
		offset += n + 1
	}
	return list
}

// cstring returns s as a NUL-terminated byte slice. The caller keeps the
// slice alive for as long as native code may read it. An empty string maps
// to nil so ALC selects its default.
func cstring(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	if strings.IndexByte(s, 0) >= 0 {
		return nil, &InvalidStringError{Value: s}
	}
	return append([]byte(s), 0), nil
}
