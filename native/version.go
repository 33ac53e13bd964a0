package native

import (
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// latestPosixLibraryVersion returns the file name in dir of the newest
// versioned shared object matching name, for example mylib.so.3 over
// mylib.so.2. Candidates are file names that contain the extensionless name
// and ".so", compared case-insensitively.
//
// When no candidate carries a parseable version suffix the first candidate in
// lexical order is returned. An empty result means no candidate exists.
func latestPosixLibraryVersion(fs FileSystem, dir, name string) (string, error) {
	baseName := strings.ToLower(stripExtensions(fs, name))

	files, err := fs.ListFiles(dir)
	if err != nil {
		return "", err
	}

	var candidates []string
	for _, file := range files {
		fileName := fs.FileName(file)
		lower := strings.ToLower(fileName)
		if strings.Contains(lower, baseName) && strings.Contains(lower, posixExtension) {
			candidates = append(candidates, fileName)
		}
	}
	if len(candidates) == 0 {
		return "", nil
	}
	sort.Strings(candidates)

	var (
		chosen  string
		largest *semver.Version
	)
	for _, candidate := range candidates {
		version, ok := sharedObjectVersion(candidate)
		if !ok {
			continue
		}
		if largest == nil || version.GreaterThan(largest) {
			chosen = candidate
			largest = version
		}
	}

	if largest == nil {
		return candidates[0], nil
	}
	return chosen, nil
}

// sharedObjectVersion parses the ABI version that follows ".so." in fileName.
// Single integers (".so.3") and dotted versions (".so.1.2.3") are accepted;
// pre-release and build suffixes (".so.3-debug", ".so.3+build") are not.
func sharedObjectVersion(fileName string) (*semver.Version, bool) {
	marker := posixExtension + "."
	idx := strings.LastIndex(strings.ToLower(fileName), marker)
	if idx < 0 {
		return nil, false
	}

	suffix := fileName[idx+len(marker):]
	if suffix == "" || suffix[0] < '0' || suffix[0] > '9' {
		return nil, false
	}

	version, err := semver.NewVersion(suffix)
	if err != nil || version.Prerelease() != "" || version.Metadata() != "" {
		return nil, false
	}
	return version, true
}
