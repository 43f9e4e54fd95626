package dirsearch

import (
	"context"
	"fmt"
	"time"
)

// Favorites returns the owner's favorite keys for a catalog in the order
// they were added.
func (c *Client) Favorites(ctx context.Context, owner, catalog string) (_ []string, err error) {
	start := time.Now()
	defer func() { c.obs.observe("favorites.get", catalog, start, err) }()

	reg, err := c.favoritesSvc.Get(ctx, owner, catalog)
	if err != nil {
		return nil, fmt.Errorf("get favorites: %w", err)
	}
	return reg.Keys(), nil
}

// ToggleFavorite adds key when absent and removes it when present.
// added reports which of the two happened.
func (c *Client) ToggleFavorite(ctx context.Context, owner, catalog, key string) (keys []string, added bool, err error) {
	start := time.Now()
	defer func() { c.obs.observe("favorites.toggle", catalog, start, err) }()

	reg, added, err := c.favoritesSvc.Toggle(ctx, owner, catalog, key)
	if err != nil {
		return nil, false, fmt.Errorf("toggle favorite: %w", err)
	}
	return reg.Keys(), added, nil
}

// ClearFavorites removes every favorite the owner has in a catalog.
func (c *Client) ClearFavorites(ctx context.Context, owner, catalog string) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("favorites.clear", catalog, start, err) }()

	if err = c.favoritesSvc.Clear(ctx, owner, catalog); err != nil {
		return fmt.Errorf("clear favorites: %w", err)
	}
	return nil
}
