// Package semver holds the durable representation of the project version:
// a major.minor.patch triple persisted as a java-properties file.
package semver

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/ini.v1"

	"github.com/halloy/verbump/internal/apperr"
)

// Property keys in the version file, in serialization order.
const (
	keyMajor = "version.major"
	keyMinor = "version.minor"
	keyPatch = "version.patch"
)

// Version is an immutable major.minor.patch triple. Increments return a
// fresh value; a Version is never mutated in place.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Parse reads a Version from a properties blob. All three keys must be
// present and hold non-negative integers.
func Parse(text string) (Version, error) {
	f, err := ini.Load([]byte(text))
	if err != nil {
		return Version{}, apperr.Wrap("semver.Parse", apperr.InvalidInput, err, "malformed properties")
	}
	sec := f.Section("")
	var v Version
	for _, field := range []struct {
		key string
		dst *uint64
	}{
		{keyMajor, &v.Major},
		{keyMinor, &v.Minor},
		{keyPatch, &v.Patch},
	} {
		if !sec.HasKey(field.key) {
			return Version{}, apperr.New("semver.Parse", apperr.InvalidInput, "missing key %s", field.key)
		}
		n, err := sec.Key(field.key).Uint64()
		if err != nil {
			return Version{}, apperr.Wrap("semver.Parse", apperr.InvalidInput, err, "key %s is not a non-negative integer", field.key)
		}
		*field.dst = n
	}
	return v, nil
}

// Serialize renders the exact inverse of Parse: three key=value lines in
// major/minor/patch order with a trailing newline.
func Serialize(v Version) string {
	return fmt.Sprintf("%s=%d\n%s=%d\n%s=%d\n", keyMajor, v.Major, keyMinor, v.Minor, keyPatch, v.Patch)
}

// IncrementPatch returns a copy of v with the patch component advanced by
// one. Major and minor are untouched.
func IncrementPatch(v Version) (Version, error) {
	if v.Patch == math.MaxUint64 {
		return v, apperr.New("semver.IncrementPatch", apperr.Overflow, "patch component at ceiling (%d)", uint64(math.MaxUint64))
	}
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
}

// ReadFile parses the version file at path.
func ReadFile(path string) (Version, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Version{}, apperr.Wrap("semver.ReadFile", apperr.NotFound, err, "version file %s", path)
		}
		return Version{}, apperr.Wrap("semver.ReadFile", apperr.Internal, err, "read %s", path)
	}
	return Parse(string(b))
}

// WriteFile serializes v to path. Single-writer CI use; no locking.
func WriteFile(path string, v Version) error {
	if err := os.WriteFile(path, []byte(Serialize(v)), 0o644); err != nil {
		return apperr.Wrap("semver.WriteFile", apperr.Internal, err, "write %s", path)
	}
	return nil
}
