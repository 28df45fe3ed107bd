package release

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/blang/semver/v4"
	"github.com/spf13/afero"
)

var (
	// ErrManifestNotFound means the manifest file does not exist.
	ErrManifestNotFound = errors.New("manifest file not found")
	// ErrVersionNotFound means no `version = "X.Y.Z"` line exists in the manifest.
	ErrVersionNotFound = errors.New("no version line found in manifest")
	// ErrMalformedVersion means a version component is not a valid non-negative integer.
	ErrMalformedVersion = errors.New("malformed version in manifest")
)

// versionLine matches a quoted version assignment. Only the first match in a
// manifest is ever used. Groups: 2-4 are the numeric components, the digits
// span runs from the start of group 2 to the end of group 4.
var versionLine = regexp.MustCompile(`(?m)^(\s*version\s*=\s*")(\d+)\.(\d+)\.(\d+)("\s*)$`)

// manifestVersion is the located version assignment inside a manifest.
type manifestVersion struct {
	version Version
	// byte offsets of the digits span within the manifest content
	start, end int
}

// readManifest loads the manifest and locates its version line.
func readManifest(fs afero.Fs, path string) ([]byte, *manifestVersion, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, nil, fmt.Errorf("reading manifest: %w", err)
	}

	m := versionLine.FindSubmatchIndex(content)
	if m == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrVersionNotFound, path)
	}

	// Submatch index pairs: 0 full, 1 prefix, 2-4 components, 5 suffix.
	var parts [3]uint64
	for i := 0; i < 3; i++ {
		digits := string(content[m[2*(i+2)]:m[2*(i+2)+1]])
		n, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %q: %v", ErrMalformedVersion, digits, err)
		}
		parts[i] = n
	}

	return content, &manifestVersion{
		version: Version{semver.Version{Major: parts[0], Minor: parts[1], Patch: parts[2]}},
		start:   m[4],
		end:     m[9],
	}, nil
}

// writeManifest replaces only the digits span of the located version line,
// leaving every other byte of the manifest untouched.
func writeManifest(fs afero.Fs, path string, content []byte, mv *manifestVersion, next Version) error {
	mode := os.FileMode(0644)
	if info, err := fs.Stat(path); err == nil {
		mode = info.Mode()
	}

	updated := make([]byte, 0, len(content)+8)
	updated = append(updated, content[:mv.start]...)
	updated = append(updated, next.String()...)
	updated = append(updated, content[mv.end:]...)

	if err := afero.WriteFile(fs, path, updated, mode); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
