package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const keyPrefix = "coach"

// Entry is what a cache stores for an analysis: the serialized result and the moment
// it stops being valid.
type Entry struct {
	Data      json.RawMessage `json:"data"`
	ExpiresAt time.Time       `json:"expires_at"`
}

func (e Entry) Expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && !now.Before(e.ExpiresAt)
}

type Cache interface {
	// Get returns the entry stored under key. A missing or expired entry
	// is reported with found == false and no error.
	Get(ctx context.Context, key string) (entry Entry, found bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// Key builds a cache key of the form coach::<user>::<kind>::<variant>.
func Key(userID, kind, variant string) string {
	return fmt.Sprintf("%s::%s::%s::%s", keyPrefix, userID, kind, variant)
}

func expiry(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}

func encode(data []byte, expiresAt time.Time) ([]byte, error) {
	raw, err := json.Marshal(Entry{
		Data:      data,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("encode cache entry: %w", err)
	}
	return raw, nil
}

func decode(raw []byte) (Entry, error) {
	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return Entry{}, fmt.Errorf("decode cache entry: %w", err)
	}
	return entry, nil
}
