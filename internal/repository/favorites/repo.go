// Package favorites persists favorites registries in the KV store, one JSON
// value per owner and catalog.
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/dirsearch/internal/db"
	"github.com/kailas-cloud/dirsearch/internal/domain"
	domfav "github.com/kailas-cloud/dirsearch/internal/domain/favorites"
)

var keyPrefix = domain.KeyPrefix + "favorites:"

// store is the consumer interface for favorites persistence (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

type record struct {
	Keys []string `json:"keys"`
}

// Repo implements usecase/favorites.Repository.
type Repo struct {
	store store
	ttl   time.Duration
}

// New creates a favorites repository. ttl <= 0 keeps values forever;
// otherwise every save refreshes the expiry.
func New(s store, ttl time.Duration) *Repo {
	return &Repo{store: s, ttl: ttl}
}

// Load returns the saved registry, or an empty one when nothing is stored.
func (r *Repo) Load(ctx context.Context, owner, catalog string) (domfav.Registry, error) {
	data, err := r.store.Get(ctx, storageKey(owner, catalog))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domfav.New(), nil
		}
		return domfav.Registry{}, fmt.Errorf("favorites GET %s/%s: %w", owner, catalog, err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return domfav.Registry{}, fmt.Errorf("favorites decode %s/%s: %w", owner, catalog, err)
	}
	return domfav.New(rec.Keys...), nil
}

// Save stores the registry. An empty registry deletes the key.
func (r *Repo) Save(ctx context.Context, owner, catalog string, reg domfav.Registry) error {
	key := storageKey(owner, catalog)
	if reg.Len() == 0 {
		return r.Delete(ctx, owner, catalog)
	}

	data, err := json.Marshal(record{Keys: reg.Keys()})
	if err != nil {
		return fmt.Errorf("favorites encode: %w", err)
	}

	if r.ttl > 0 {
		err = r.store.SetWithTTL(ctx, key, data, r.ttl)
	} else {
		err = r.store.Set(ctx, key, data)
	}
	if err != nil {
		return fmt.Errorf("favorites SET %s/%s: %w", owner, catalog, err)
	}
	return nil
}

// Delete removes the saved registry.
func (r *Repo) Delete(ctx context.Context, owner, catalog string) error {
	if err := r.store.Del(ctx, storageKey(owner, catalog)); err != nil {
		return fmt.Errorf("favorites DEL %s/%s: %w", owner, catalog, err)
	}
	return nil
}

func storageKey(owner, catalog string) string {
	return keyPrefix + catalog + ":" + owner
}
