package dirsearch

import (
	"io/fs"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Client.
type Option interface {
	apply(*clientConfig)
}

type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver   string
	addrs    []string
	password string

	catalogDir  string
	catalogFS   fs.FS
	catalogRoot string
	noEmbedded  bool

	maxFavorites int
	favoritesTTL time.Duration

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithValkey stores favorites in Valkey.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverValkey
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis stores favorites in Redis.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverRedis
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithCatalogDir loads catalogs from a directory of YAML files in addition
// to the built-in ones. A catalog in the directory replaces a built-in catalog
// with the same name.
func WithCatalogDir(dir string) Option {
	return optionFunc(func(c *clientConfig) { c.catalogDir = dir })
}

// WithCatalogFS loads catalogs only from the YAML files under root in fsys.
// Built-in catalogs and WithCatalogDir are ignored.
func WithCatalogFS(fsys fs.FS, root string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalogFS = fsys
		c.catalogRoot = root
	})
}

// WithoutEmbeddedCatalogs disables the catalogs compiled into the package.
func WithoutEmbeddedCatalogs() Option {
	return optionFunc(func(c *clientConfig) { c.noEmbedded = true })
}

// WithMaxFavorites caps the number of favorites per owner and catalog. 0 is unlimited.
func WithMaxFavorites(n int) Option {
	return optionFunc(func(c *clientConfig) { c.maxFavorites = n })
}

// WithFavoritesTTL expires an owner's favorites after ttl without changes.
func WithFavoritesTTL(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) { c.favoritesTTL = ttl })
}

// WithLogger enables operation logging.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) { c.logger = l })
}

// WithPrometheus registers SDK operation metrics on reg.
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) { c.metricsReg = reg })
}
