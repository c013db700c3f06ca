package analysiscache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/syedmuhib/meeting-assistant/internal/domain/notes"
)

// ValkeyStore caches analyses in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "analysis"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// Get implements notes.Store.
func (s *ValkeyStore) Get(ctx context.Context, key string) (notes.Analysis, bool, error) {
	if key == "" {
		return notes.Analysis{}, false, nil
	}
	cmd := s.client.B().Get().Key(s.entryKey(key)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return notes.Analysis{}, false, nil
		}
		return notes.Analysis{}, false, err
	}
	var analysis notes.Analysis
	if err := json.Unmarshal([]byte(payload), &analysis); err != nil {
		return notes.Analysis{}, false, err
	}
	return analysis, true, nil
}

// Save caches the analysis with optional TTL.
func (s *ValkeyStore) Save(ctx context.Context, key string, analysis notes.Analysis, ttl time.Duration) error {
	if key == "" {
		return nil
	}
	payload, err := json.Marshal(analysis)
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
	return s.prefix + ":" + key
}

var _ notes.Store = (*ValkeyStore)(nil)
