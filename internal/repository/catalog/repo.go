// Package catalog loads directory catalogs from YAML: the defaults embedded in
// the binary plus an optional directory that may add or replace catalogs.
package catalog

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dirsearch/internal/domain"
	domcat "github.com/kailas-cloud/dirsearch/internal/domain/catalog"
)

//go:embed catalogs/*.yaml
var embedded embed.FS

const embeddedRoot = "catalogs"

// Options selects catalog sources.
type Options struct {
	// Dir is a directory of *.yaml / *.yml catalog files. Empty disables it.
	Dir string
	// Embedded enables the catalogs compiled into the binary.
	Embedded bool
}

type source struct {
	fsys fs.FS
	root string
	name string
}

// Repo implements usecase/search.CatalogReader and usecase/catalog.Reader.
// Catalogs are parsed once, on first access.
type Repo struct {
	sources []source
	logger  *zap.Logger

	once   sync.Once
	byName map[string]*domcat.Catalog
	names  []string
	err    error
}

// New creates a catalog repository for the given sources.
func New(opts Options, logger *zap.Logger) *Repo {
	var sources []source
	if opts.Embedded {
		sources = append(sources, source{fsys: embedded, root: embeddedRoot, name: "embedded"})
	}
	if opts.Dir != "" {
		sources = append(sources, source{fsys: os.DirFS(opts.Dir), root: ".", name: opts.Dir})
	}
	return newRepo(sources, logger)
}

// NewFromFS creates a repository that reads catalogs from fsys under root.
func NewFromFS(fsys fs.FS, root string, logger *zap.Logger) *Repo {
	return newRepo([]source{{fsys: fsys, root: root, name: root}}, logger)
}

func newRepo(sources []source, logger *zap.Logger) *Repo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repo{sources: sources, logger: logger}
}

// Load parses all sources. Later calls return the first result.
func (r *Repo) Load() error {
	r.once.Do(r.load)
	return r.err
}

// Get returns the catalog with the given name.
func (r *Repo) Get(_ context.Context, name string) (*domcat.Catalog, error) {
	if err := r.Load(); err != nil {
		return nil, err
	}
	c, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("catalog %q: %w", name, domain.ErrNotFound)
	}
	return c, nil
}

// List returns all catalogs sorted by name.
func (r *Repo) List(_ context.Context) ([]*domcat.Catalog, error) {
	if err := r.Load(); err != nil {
		return nil, err
	}
	out := make([]*domcat.Catalog, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, r.byName[n])
	}
	return out, nil
}

func (r *Repo) load() {
	byName := make(map[string]*domcat.Catalog)
	for _, src := range r.sources {
		cats, err := loadSource(src)
		if err != nil {
			r.err = err
			return
		}
		for _, c := range cats {
			if _, exists := byName[c.Name()]; exists {
				r.logger.Info("catalog overridden",
					zap.String("catalog", c.Name()),
					zap.String("source", src.name),
				)
			}
			byName[c.Name()] = c
		}
	}

	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Strings(names)

	r.byName = byName
	r.names = names
	r.logger.Info("catalogs loaded", zap.Strings("catalogs", names))
}

func loadSource(src source) ([]*domcat.Catalog, error) {
	dirents, err := fs.ReadDir(src.fsys, src.root)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir %s: %w", src.name, err)
	}

	seen := make(map[string]string)
	var out []*domcat.Catalog
	for _, de := range dirents {
		if de.IsDir() || !isYAML(de.Name()) {
			continue
		}
		p := path.Join(src.root, de.Name())
		data, err := fs.ReadFile(src.fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		c, err := parse(data)
		if err != nil {
			return nil, fmt.Errorf("catalog %s (%s): %w", p, src.name, err)
		}
		if prev, dup := seen[c.Name()]; dup {
			return nil, fmt.Errorf("catalog %q defined in both %s and %s: %w",
				c.Name(), prev, p, domain.ErrInvalidCatalog)
		}
		seen[c.Name()] = p
		out = append(out, c)
	}
	return out, nil
}

func parse(data []byte) (*domcat.Catalog, error) {
	f, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}
	c, err := f.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}
	return c, nil
}

func isYAML(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
