package fs

import (
	"encoding/binary"
	"io"
	"os"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/zerr"
)

// Hasher computes content hashes and stamps of files.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}

// Stamp returns the size, modification time and content hash of the file at path.
func (h *Hasher) Stamp(path string) (domain.FileStamp, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.FileStamp{}, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}
	if info.IsDir() {
		return domain.FileStamp{}, zerr.With(domain.ErrPathStatFailed, "path", path)
	}

	hash, err := h.ComputeFileHash(path)
	if err != nil {
		return domain.FileStamp{}, err
	}

	return domain.FileStamp{
		Size:    info.Size(),
		ModTime: info.ModTime().UnixNano(),
		Hash:    hash,
	}, nil
}

// ComputeSetHash computes a single hash over the paths and contents of files.
// The result does not depend on the order of paths.
func (h *Hasher) ComputeSetHash(paths []string) (uint64, error) {
	sorted := slices.Clone(paths)
	slices.Sort(sorted)

	hasher := xxhash.New()
	for _, path := range sorted {
		_, _ = hasher.WriteString(path)
		_, _ = hasher.Write([]byte{0})

		hash, err := h.ComputeFileHash(path)
		if err != nil {
			return 0, err
		}
		if err := binary.Write(hasher, binary.LittleEndian, hash); err != nil {
			return 0, zerr.Wrap(err, domain.ErrFileHashFailed.Error())
		}
	}

	return hasher.Sum64(), nil
}
