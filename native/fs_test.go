package native

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystem(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "libopenal.so.1")
	if err := os.WriteFile(libPath, []byte("elf"), 0o644); err != nil {
		t.Fatalf("write library: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "libopenal.so.d"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	fs := OSFileSystem()

	if !fs.Exists(libPath) {
		t.Fatalf("expected %s to exist", libPath)
	}
	if fs.Exists(dir) {
		t.Fatalf("directories must not be reported as existing files")
	}
	if fs.Exists(filepath.Join(dir, "missing.so")) || fs.Exists("") {
		t.Fatalf("missing paths must not exist")
	}

	files, err := fs.ListFiles(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 || files[0] != libPath {
		t.Fatalf("unexpected listing: %v", files)
	}

	if _, err := fs.ListFiles(filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected error listing a missing directory")
	}

	if fs.FileName(libPath) != "libopenal.so.1" {
		t.Fatalf("unexpected file name: %s", fs.FileName(libPath))
	}
	if fs.FileNameWithoutExtension(libPath) != "libopenal.so" {
		t.Fatalf("unexpected stem: %s", fs.FileNameWithoutExtension(libPath))
	}
	if !fs.HasExtension("openal.dll") || fs.HasExtension("openal") || fs.HasExtension("openal.") {
		t.Fatalf("unexpected HasExtension results")
	}
	if fs.Separator() != os.PathSeparator {
		t.Fatalf("unexpected separator %q", fs.Separator())
	}
}

func TestStripExtensions(t *testing.T) {
	fs := newFakeFS(posixSep)
	tests := map[string]string{
		"openal":          "openal",
		"openal.dll":      "openal",
		"openal.txt.dll":  "openal",
		"libopenal.so.1":  "libopenal",
		"libogg.so.0.8.5": "libogg",
		"openal.":         "openal.",
	}
	for in, want := range tests {
		if got := stripExtensions(fs, in); got != want {
			t.Fatalf("stripExtensions(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestJoinLibraryPath(t *testing.T) {
	tests := []struct {
		dir  string
		sep  byte
		want string
	}{
		{dir: winDirPath, sep: winSep, want: winDirPath + `\openal.dll`},
		{dir: winDirPath + `\`, sep: winSep, want: winDirPath + `\openal.dll`},
		{dir: linuxDirPath, sep: posixSep, want: linuxDirPath + "/openal.dll"},
		{dir: linuxDirPath + "/", sep: posixSep, want: linuxDirPath + "/openal.dll"},
		{dir: "", sep: posixSep, want: "openal.dll"},
	}
	for _, tc := range tests {
		if got := joinLibraryPath(tc.dir, "openal.dll", tc.sep); got != tc.want {
			t.Fatalf("joinLibraryPath(%q) = %q, want %q", tc.dir, got, tc.want)
		}
	}
}

func TestIsNil(t *testing.T) {
	var nilResolver *PathResolver
	var nilFunc InstallDirFunc
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{name: "untyped nil", v: nil, want: true},
		{name: "typed nil pointer", v: nilResolver, want: true},
		{name: "nil func", v: nilFunc, want: true},
		{name: "value", v: Named("openal"), want: false},
		{name: "pointer", v: &fakeResolver{}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := isNil(tc.v); got != tc.want {
				t.Fatalf("isNil = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLatestPosixLibraryVersionOnDisk(t *testing.T) {
	dir := t.TempDir()
	names := []string{"libopenal.so.1", "libopenal.so.1.23.1", "libopenal.so.1.3.0", "libvorbis.so.0"}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	got, err := latestPosixLibraryVersion(OSFileSystem(), dir, "libopenal.so")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "libopenal.so.1.23.1" {
		t.Fatalf("unexpected version: %s", got)
	}
}
