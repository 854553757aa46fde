// Package cache stores finished transcripts keyed by audio content and
// transcription options.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"lucidscript/internal/app/api"
	apperrors "lucidscript/internal/app/errors"
	"lucidscript/internal/app/model"
)

// Cache is a transcript store. Get returns ErrCacheMiss for unknown keys.
type Cache interface {
	Get(ctx context.Context, key string) (*model.Transcript, error)
	Set(ctx context.Context, key string, t *model.Transcript) error
}

// FileHash returns the hex sha256 of the file at path.
func FileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Key builds the cache key for a file hash and transcription options.
func Key(fileHash string, opts api.Options) string {
	lang := opts.Language
	if lang == "" {
		lang = "auto"
	}
	return fmt.Sprintf("%s:%s:%s", fileHash, lang, opts.Task())
}

type memoryEntry struct {
	transcript model.Transcript
	expires    time.Time
}

// MemoryCache keeps transcripts in process memory. Expired entries are
// swept by Set at most once per half ttl.
type MemoryCache struct {
	mu        sync.Mutex
	ttl       time.Duration
	entries   map[string]memoryEntry
	now       func() time.Time
	lastSweep time.Time
}

// NewMemoryCache creates an in-process cache. A zero ttl never expires.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(ctx context.Context, key string) (*model.Transcript, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, apperrors.ErrCacheMiss
	}
	if !e.expires.IsZero() && c.now().After(e.expires) {
		delete(c.entries, key)
		return nil, apperrors.ErrCacheMiss
	}
	t := e.transcript
	t.Segments = append([]model.Segment(nil), e.transcript.Segments...)
	return &t, nil
}

func (c *MemoryCache) Set(ctx context.Context, key string, t *model.Transcript) error {
	if t == nil {
		return nil
	}
	e := memoryEntry{transcript: *t}
	e.transcript.Segments = append([]model.Segment(nil), t.Segments...)
	now := c.now()
	if c.ttl > 0 {
		e.expires = now.Add(c.ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ttl > 0 && now.Sub(c.lastSweep) >= c.ttl/2 {
		c.sweep(now)
	}
	c.entries[key] = e
	return nil
}

// sweep drops expired entries. Callers hold mu.
func (c *MemoryCache) sweep(now time.Time) {
	for k, e := range c.entries {
		if !e.expires.IsZero() && now.After(e.expires) {
			delete(c.entries, k)
		}
	}
	c.lastSweep = now
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
