// Package panchangstore caches computed panchang responses. Results for
// a city/date pair are deterministic, so cached entries never go stale
// before their TTL.
package panchangstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/senthamizh/panchangam/internal/domain/panchang"
)

// ValkeyStore persists panchang responses in a Valkey-compatible
// database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "panchang"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// Get implements panchang.Store.
func (s *ValkeyStore) Get(ctx context.Context, key string) (panchang.Response, bool, error) {
	cmd := s.client.B().Get().Key(s.entryKey(key)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return panchang.Response{}, false, nil
		}
		return panchang.Response{}, false, err
	}
	var resp panchang.Response
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return panchang.Response{}, false, err
	}
	return resp, true, nil
}

// Save implements panchang.Store.
func (s *ValkeyStore) Save(ctx context.Context, key string, resp panchang.Response, ttl time.Duration) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.entryKey(key)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) entryKey(key string) string {
	return fmt.Sprintf("%s:%s", s.prefix, key)
}

var _ panchang.Store = (*ValkeyStore)(nil)
