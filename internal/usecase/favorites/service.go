package favorites

import (
	"context"
	"fmt"
	"hash/fnv"
	"regexp"
	"sync"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dirsearch/internal/domain"
	domfav "github.com/kailas-cloud/dirsearch/internal/domain/favorites"
	logpkg "github.com/kailas-cloud/dirsearch/internal/logger"
)

var ownerRegex = regexp.MustCompile(`^[a-zA-Z0-9_.@-]{1,128}$`)

// Toggle actions reported to the Recorder.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

const lockStripes = 64

// Service manages per-owner, per-catalog favorites.
type Service struct {
	repo     Repository
	catalogs CatalogReader
	maxItems int
	recorder Recorder

	// read-modify-write on one owner+catalog is serialized in process
	locks [lockStripes]sync.Mutex
}

// New creates a favorites service. maxItems <= 0 disables the limit.
func New(repo Repository, catalogs CatalogReader, maxItems int) *Service {
	return &Service{repo: repo, catalogs: catalogs, maxItems: maxItems}
}

// WithRecorder attaches toggle metrics.
func (s *Service) WithRecorder(r Recorder) *Service {
	s.recorder = r
	return s
}

// Get returns the owner's favorites for a catalog in insertion order.
func (s *Service) Get(ctx context.Context, owner, catalogName string) (domfav.Registry, error) {
	if err := s.check(ctx, owner, catalogName); err != nil {
		return domfav.Registry{}, err
	}
	reg, err := s.repo.Load(ctx, owner, catalogName)
	if err != nil {
		return domfav.Registry{}, fmt.Errorf("load favorites: %w", err)
	}
	return reg, nil
}

// Toggle adds key when absent and removes it when present.
// Unknown keys fail with ErrEntryNotFound; adding past the limit fails with
// ErrFavoritesLimit. Removing is always allowed.
func (s *Service) Toggle(ctx context.Context, owner, catalogName, key string) (reg domfav.Registry, added bool, err error) {
	if err := s.check(ctx, owner, catalogName); err != nil {
		return domfav.Registry{}, false, err
	}

	mu := s.lock(owner, catalogName)
	mu.Lock()
	defer mu.Unlock()

	cur, err := s.repo.Load(ctx, owner, catalogName)
	if err != nil {
		return domfav.Registry{}, false, fmt.Errorf("load favorites: %w", err)
	}

	added = !cur.Contains(key)
	if added {
		cat, err := s.catalogs.Get(ctx, catalogName)
		if err != nil {
			return domfav.Registry{}, false, fmt.Errorf("get catalog: %w", err)
		}
		if !cat.HasEntry(key) {
			return domfav.Registry{}, false, fmt.Errorf("favorite %q in %q: %w", key, catalogName, domain.ErrEntryNotFound)
		}
		if s.maxItems > 0 && cur.Len() >= s.maxItems {
			return domfav.Registry{}, false, fmt.Errorf("max %d favorites: %w", s.maxItems, domain.ErrFavoritesLimit)
		}
	}

	reg = cur.Toggle(key)
	if err := s.repo.Save(ctx, owner, catalogName, reg); err != nil {
		return domfav.Registry{}, false, fmt.Errorf("save favorites: %w", err)
	}

	action := ActionRemove
	if added {
		action = ActionAdd
	}
	if s.recorder != nil {
		s.recorder.ObserveToggle(catalogName, action)
	}
	logpkg.FromContext(ctx).Debug("favorite toggled",
		zap.String("catalog", catalogName),
		zap.String("key", key),
		zap.String("action", action),
		zap.Int("count", reg.Len()),
	)
	return reg, added, nil
}

// Clear removes all favorites of the owner for a catalog.
func (s *Service) Clear(ctx context.Context, owner, catalogName string) error {
	if err := s.check(ctx, owner, catalogName); err != nil {
		return err
	}

	mu := s.lock(owner, catalogName)
	mu.Lock()
	defer mu.Unlock()

	if err := s.repo.Delete(ctx, owner, catalogName); err != nil {
		return fmt.Errorf("clear favorites: %w", err)
	}
	return nil
}

func (s *Service) check(ctx context.Context, owner, catalogName string) error {
	if !ownerRegex.MatchString(owner) {
		return fmt.Errorf("owner %q: %w", owner, domain.ErrInvalidRequest)
	}
	if _, err := s.catalogs.Get(ctx, catalogName); err != nil {
		return fmt.Errorf("get catalog: %w", err)
	}
	return nil
}

func (s *Service) lock(owner, catalogName string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(catalogName))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(owner))
	return &s.locks[h.Sum32()%lockStripes]
}
