package dirsearch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dirsearch/internal/db"
	"github.com/kailas-cloud/dirsearch/internal/db/memory"
	dbRedis "github.com/kailas-cloud/dirsearch/internal/db/redis"
	domcat "github.com/kailas-cloud/dirsearch/internal/domain/catalog"
	"github.com/kailas-cloud/dirsearch/internal/domain/entry"
	domfav "github.com/kailas-cloud/dirsearch/internal/domain/favorites"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/criteria"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/location"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/result"
	catalogrepo "github.com/kailas-cloud/dirsearch/internal/repository/catalog"
	favoritesrepo "github.com/kailas-cloud/dirsearch/internal/repository/favorites"
	cataloguc "github.com/kailas-cloud/dirsearch/internal/usecase/catalog"
	favoritesuc "github.com/kailas-cloud/dirsearch/internal/usecase/favorites"
	healthuc "github.com/kailas-cloud/dirsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/dirsearch/internal/usecase/search"
)

const (
	driverValkey = "valkey"
	driverRedis  = "redis"

	defaultReadinessTimeout = 10 * time.Second
)

// Internal interfaces for substitution in tests.
type catalogUseCase interface {
	Get(ctx context.Context, name string) (*domcat.Catalog, error)
	List(ctx context.Context) ([]*domcat.Catalog, error)
}

type searchUseCase interface {
	Filter(ctx context.Context, catalog string, crit criteria.Criteria, loc *location.Context) (result.Filtered, error)
	Group(ctx context.Context, catalog string, crit criteria.Criteria, loc *location.Context) ([]result.Group, result.Filtered, error)
	TopLocal(ctx context.Context, catalog string, loc *location.Context, n int) ([]entry.Entry, error)
}

type favoritesUseCase interface {
	Get(ctx context.Context, owner, catalog string) (domfav.Registry, error)
	Toggle(ctx context.Context, owner, catalog, key string) (domfav.Registry, bool, error)
	Clear(ctx context.Context, owner, catalog string) error
}

// Client is the dirsearch SDK entry point. Safe for concurrent use.
type Client struct {
	store        db.Store
	catalogSvc   catalogUseCase
	searchSvc    searchUseCase
	favoritesSvc favoritesUseCase
	healthSvc    healthUseCase
	obs          *observer
}

// New loads catalogs and connects the favorites store.
// Without WithValkey or WithRedis favorites live in process memory.
// The provided context bounds the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	catRepo := newCatalogRepo(cfg)
	if err := catRepo.Load(); err != nil {
		return nil, fmt.Errorf("dirsearch: load catalogs: %w", err)
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("dirsearch: database not ready: %w", err)
	}

	return wireClient(store, catRepo, cfg, obs), nil
}

func newCatalogRepo(cfg *clientConfig) *catalogrepo.Repo {
	if cfg.catalogFS != nil {
		return catalogrepo.NewFromFS(cfg.catalogFS, cfg.catalogRoot, zap.NewNop())
	}
	return catalogrepo.New(catalogrepo.Options{
		Dir:      cfg.catalogDir,
		Embedded: !cfg.noEmbedded,
	}, zap.NewNop())
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "":
		return memory.NewStore(), nil
	case driverValkey, driverRedis:
		if len(cfg.addrs) == 0 || cfg.addrs[0] == "" {
			return nil, errors.New("dirsearch: database address required")
		}
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("dirsearch: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("dirsearch: unknown driver %q", cfg.driver)
	}
}

func wireClient(store db.Store, catRepo *catalogrepo.Repo, cfg *clientConfig, obs *observer) *Client {
	catalogSvc := cataloguc.New(catRepo)
	favRepo := favoritesrepo.New(store, cfg.favoritesTTL)

	var pinger healthuc.DBPinger
	if cfg.driver != "" {
		pinger = store
	}

	return &Client{
		store:        store,
		catalogSvc:   catalogSvc,
		searchSvc:    searchuc.New(catRepo),
		favoritesSvc: favoritesuc.New(favRepo, catRepo, cfg.maxFavorites),
		healthSvc:    healthuc.New(catalogSvc, pinger),
		obs:          obs,
	}
}

// Close releases the favorites store.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Catalogs lists the loaded catalogs sorted by name.
func (c *Client) Catalogs(ctx context.Context) (_ []CatalogInfo, err error) {
	start := time.Now()
	defer func() { c.obs.observe("catalog.list", "", start, err) }()

	cats, err := c.catalogSvc.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	out := make([]CatalogInfo, len(cats))
	for i, cat := range cats {
		out[i] = fromInternalCatalog(cat)
	}
	return out, nil
}

// Catalog describes one catalog. Returns ErrNotFound for an unknown name.
func (c *Client) Catalog(ctx context.Context, name string) (_ CatalogInfo, err error) {
	start := time.Now()
	defer func() { c.obs.observe("catalog.get", name, start, err) }()

	cat, err := c.catalogSvc.Get(ctx, name)
	if err != nil {
		return CatalogInfo{}, fmt.Errorf("get catalog: %w", err)
	}
	return fromInternalCatalog(cat), nil
}
