package cacheinfra

import (
	"encoding/binary"
	"errors"
	"path/filepath"
	"time"

	"github.com/goliatone/go-function-cache/cache"
)

// Interface assertions for the backend implementations.
var (
	_ cache.Store = (*BoltStore)(nil)
	_ cache.Store = (*FileStore)(nil)
	_ cache.Store = (*MemoryStore)(nil)
)

// Persistent record layout: 8 bytes big endian unix-nano expiry, then the
// encoded value bytes. The expiry travels with the value so a store can be
// inspected without the wrapping TTL configuration.
const recordHeaderLen = 8

var errTruncatedRecord = errors.New("cacheinfra: truncated cache record")

func encodeRecord(entry cache.Entry) []byte {
	buf := make([]byte, recordHeaderLen+len(entry.Value))
	binary.BigEndian.PutUint64(buf[:recordHeaderLen], uint64(entry.ExpiresAt.UnixNano()))
	copy(buf[recordHeaderLen:], entry.Value)
	return buf
}

func decodeRecord(raw []byte) (cache.Entry, error) {
	if len(raw) < recordHeaderLen {
		return cache.Entry{}, errTruncatedRecord
	}
	return cache.Entry{
		Value:     append([]byte(nil), raw[recordHeaderLen:]...),
		ExpiresAt: time.Unix(0, int64(binary.BigEndian.Uint64(raw[:recordHeaderLen]))),
	}, nil
}

func storePath(dir, name string) string {
	return filepath.Join(dir, name)
}
