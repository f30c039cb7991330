// Package manifest reads OSGi bundle manifests.
package manifest

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/zerr"
)

// Path is the location of the manifest inside a bundle root.
const Path = "META-INF/MANIFEST.MF"

const (
	headerSymbolicName = "Bundle-SymbolicName"
	headerVersion      = "Bundle-Version"
	headerSourceBundle = "Eclipse-SourceBundle"
)

// Reader reads manifests of bundle directories.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadBundle reads the manifest of the bundle rooted at root.
// It returns false when the directory has no manifest.
func (r *Reader) ReadBundle(root string) (domain.Manifest, bool, error) {
	path := filepath.Join(root, filepath.FromSlash(Path))
	f, err := os.Open(path) //nolint:gosec // Path is built from a configured root
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Manifest{}, false, nil
	}
	if err != nil {
		return domain.Manifest{}, false, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	m, err := Parse(f)
	if err != nil {
		return domain.Manifest{}, false, zerr.With(err, "path", path)
	}
	return m, true, nil
}

// Parse reads the main section of a manifest. Continuation lines start with a
// single space and are joined to the previous header.
func Parse(r io.Reader) (domain.Manifest, error) {
	headers := make(map[string]string)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	var name string
	var value strings.Builder
	flush := func() {
		if name != "" {
			headers[name] = value.String()
		}
		name = ""
		value.Reset()
	}

	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		line = strings.TrimRight(line, "\r")

		if line == "" {
			// The main section ends at the first blank line.
			break
		}
		if strings.HasPrefix(line, " ") {
			if name != "" {
				value.WriteString(line[1:])
			}
			continue
		}

		flush()
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(key)
		value.WriteString(strings.TrimSpace(val))
	}
	flush()

	if err := scanner.Err(); err != nil {
		return domain.Manifest{}, zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}

	return domain.Manifest{
		SymbolicName: headerKey(headers[headerSymbolicName]),
		Version:      headers[headerVersion],
		SourceFor:    headerKey(headers[headerSourceBundle]),
		Headers:      headers,
	}, nil
}

// headerKey returns the value of a header up to its first directive or attribute.
func headerKey(value string) string {
	key, _, _ := strings.Cut(value, ";")
	return strings.TrimSpace(key)
}
