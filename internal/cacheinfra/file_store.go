package cacheinfra

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/goliatone/go-function-cache/cache"
)

const entryFileSuffix = ".entry"

// FileStore keeps one file per cache entry under a directory. It works
// around single-file contention when many processes write to the same
// function's store: writers only race when they put the exact same key.
// Writes go to a temp file and are renamed into place, so a reader never
// sees a partial entry. Filenames are xxhash digests of the key; the key
// itself is embedded in the record so ForEach can recover it.
type FileStore struct {
	dir string
}

// NewFileStore opens or creates the entry directory at dir.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &cache.StoreUnavailableError{Path: dir, Err: err}
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) filename(key string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%016x%s", xxhash.Sum64String(key), entryFileSuffix))
}

// Get returns the entry for key, or nil if absent.
func (s *FileStore) Get(ctx context.Context, key string) (*cache.Entry, error) {
	raw, err := os.ReadFile(s.filename(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	_, entry, err := decodeFileRecord(raw)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Put atomically overwrites the entry for key via temp file and rename.
func (s *FileStore) Put(ctx context.Context, key string, entry cache.Entry) error {
	tmp, err := os.CreateTemp(s.dir, "put-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(encodeFileRecord(key, entry)); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.filename(key))
}

// Delete removes the entry for key. An absent key is not an error.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.filename(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// ForEach visits every entry file in the directory. Entries deleted while
// the traversal runs are skipped.
func (s *FileStore) ForEach(ctx context.Context, fn func(key string, entry cache.Entry) error) error {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}
	for _, de := range files {
		if de.IsDir() || !strings.HasSuffix(de.Name(), entryFileSuffix) {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(s.dir, de.Name()))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return err
		}
		key, entry, err := decodeFileRecord(raw)
		if err != nil {
			return err
		}
		if err := fn(key, entry); err != nil {
			return err
		}
	}
	return nil
}

// Close is a no-op; the store holds no open handles between operations.
func (s *FileStore) Close() error {
	return nil
}

// File record layout: the common expiry header, 4 bytes big endian key
// length, the key, then the value bytes.
func encodeFileRecord(key string, entry cache.Entry) []byte {
	buf := make([]byte, recordHeaderLen+4+len(key)+len(entry.Value))
	binary.BigEndian.PutUint64(buf[:recordHeaderLen], uint64(entry.ExpiresAt.UnixNano()))
	binary.BigEndian.PutUint32(buf[recordHeaderLen:recordHeaderLen+4], uint32(len(key)))
	copy(buf[recordHeaderLen+4:], key)
	copy(buf[recordHeaderLen+4+len(key):], entry.Value)
	return buf
}

func decodeFileRecord(raw []byte) (string, cache.Entry, error) {
	if len(raw) < recordHeaderLen+4 {
		return "", cache.Entry{}, errTruncatedRecord
	}
	keyLen := int(binary.BigEndian.Uint32(raw[recordHeaderLen : recordHeaderLen+4]))
	if len(raw) < recordHeaderLen+4+keyLen {
		return "", cache.Entry{}, errTruncatedRecord
	}
	entry, err := decodeRecord(raw[:recordHeaderLen]) // header only; value sliced below
	if err != nil {
		return "", cache.Entry{}, err
	}
	entry.Value = append([]byte(nil), raw[recordHeaderLen+4+keyLen:]...)
	return string(raw[recordHeaderLen+4 : recordHeaderLen+4+keyLen]), entry, nil
}
