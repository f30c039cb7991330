// Package index persists parsed definitions in a bbolt database.
package index

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	definitionsBucket = []byte("definitions")
	metaBucket        = []byte("meta")

	keyBuilt       = []byte("built")
	keyFingerprint = []byte("fingerprint")
)

const (
	hashSize    = 8
	openTimeout = time.Second
)

var _ ports.DefinitionIndex = (*Store)(nil)

// Stats summarises a rebuild.
type Stats struct {
	Indexed int `json:"indexed"`
	Skipped int `json:"skipped"`
}

// Store implements ports.DefinitionIndex. Each record holds the content hash
// of the file at indexing time followed by the binary definition, so records
// of files changed since indexing are never served.
type Store struct {
	db     *bolt.DB
	fs     ports.FileSystem
	parser ports.SchemaParser
	logger ports.Logger

	ready     atomic.Bool
	rebuildMu sync.Mutex

	listenersMu sync.Mutex
	listeners   []func()
}

// Open opens or creates the index database at path.
func Open(path string, fs ports.FileSystem, parser ports.SchemaParser, logger ports.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexOpenFailed.Error()), "path", path)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexOpenFailed.Error()), "path", path)
	}

	built := false
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(definitionsBucket); err != nil {
			return err
		}
		meta, err := tx.CreateBucketIfNotExists(metaBucket)
		if err != nil {
			return err
		}
		built = meta.Get(keyBuilt) != nil
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexOpenFailed.Error()), "path", path)
	}

	s := &Store{db: db, fs: fs, parser: parser, logger: logger}
	s.ready.Store(built)
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ready reports whether the index has been built and is not rebuilding.
func (s *Store) Ready() bool {
	return s.ready.Load()
}

// OnRebuild registers fn to be called after every successful rebuild.
func (s *Store) OnRebuild(fn func()) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Read returns the indexed definition for path, or nil when the index is
// not ready, the file is not indexed, or it changed since it was indexed.
func (s *Store) Read(path string) (*domain.ExtensionPointDefinition, error) {
	if !s.Ready() {
		return nil, nil
	}
	key := s.fs.Canonical(path)

	var record []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(definitionsBucket).Get([]byte(key)); v != nil {
			record = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexReadFailed.Error()), "path", key)
	}
	if len(record) < hashSize {
		return nil, nil
	}

	stamp, err := s.fs.Stamp(key)
	if err != nil || stamp.Hash != binary.BigEndian.Uint64(record[:hashSize]) {
		return nil, nil
	}

	def, err := domain.UnmarshalBinary(record[hashSize:])
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDecodeFailed.Error()), "path", key)
	}
	return def, nil
}

// Fingerprint returns the fingerprint stored by the last rebuild.
func (s *Store) Fingerprint() (uint64, bool) {
	var fp uint64
	var ok bool
	_ = s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(metaBucket).Get(keyFingerprint); len(v) == hashSize {
			fp, ok = binary.BigEndian.Uint64(v), true
		}
		return nil
	})
	return fp, ok
}

// Count returns the number of indexed files.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(definitionsBucket).Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, zerr.Wrap(err, domain.ErrIndexReadFailed.Error())
	}
	return n, nil
}

// Rebuild replaces the index with the definitions of files and stores
// fingerprint. The index is not ready while rebuilding. Files that cannot be
// read or parsed are skipped. On failure the previous contents are kept.
func (s *Store) Rebuild(ctx context.Context, files []string, fingerprint uint64) (Stats, error) {
	s.rebuildMu.Lock()
	defer s.rebuildMu.Unlock()

	wasReady := s.ready.Swap(false)

	var stats Stats
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(definitionsBucket); err != nil {
			return err
		}
		bucket, err := tx.CreateBucket(definitionsBucket)
		if err != nil {
			return err
		}

		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return err
			}
			key, record, ok := s.encode(file)
			if !ok {
				stats.Skipped++
				continue
			}
			if err := bucket.Put([]byte(key), record); err != nil {
				return err
			}
			stats.Indexed++
		}

		meta := tx.Bucket(metaBucket)
		fp := make([]byte, hashSize)
		binary.BigEndian.PutUint64(fp, fingerprint)
		if err := meta.Put(keyFingerprint, fp); err != nil {
			return err
		}
		return meta.Put(keyBuilt, []byte{1})
	})
	if err != nil {
		s.ready.Store(wasReady)
		return Stats{}, zerr.Wrap(err, domain.ErrIndexWriteFailed.Error())
	}

	s.ready.Store(true)
	s.notifyRebuilt()
	return stats, nil
}

// Update re-indexes a single file. Files that no longer exist or parse are removed.
func (s *Store) Update(path string) error {
	key, record, ok := s.encode(path)
	if !ok {
		return s.Remove(path)
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(definitionsBucket).Put([]byte(key), record)
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrIndexWriteFailed.Error()), "path", key)
	}
	return nil
}

// Remove drops the record of path.
func (s *Store) Remove(path string) error {
	key := s.fs.Canonical(path)
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(definitionsBucket).Delete([]byte(key))
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrIndexWriteFailed.Error()), "path", key)
	}
	return nil
}

// encode parses file and returns its key and record. Failures are logged.
func (s *Store) encode(file string) (string, []byte, bool) {
	key := s.fs.Canonical(file)

	stamp, err := s.fs.Stamp(key)
	if err != nil {
		s.logger.Warn("skipping unreadable schema file " + key + ": " + err.Error())
		return key, nil, false
	}

	r, err := s.fs.Open(key)
	if err != nil {
		s.logger.Warn("skipping unreadable schema file " + key + ": " + err.Error())
		return key, nil, false
	}
	def, err := s.parser.Parse(r)
	_ = r.Close()
	if err != nil {
		s.logger.Warn("skipping invalid EXSD file " + key + ": " + err.Error())
		return key, nil, false
	}

	data, err := domain.MarshalBinary(def)
	if err != nil {
		s.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrEncodeFailed.Error()), "path", key))
		return key, nil, false
	}

	record := make([]byte, hashSize, hashSize+len(data))
	binary.BigEndian.PutUint64(record, stamp.Hash)
	return key, append(record, data...), true
}

func (s *Store) notifyRebuilt() {
	s.listenersMu.Lock()
	listeners := append([]func(){}, s.listeners...)
	s.listenersMu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
