package catalog

import (
	"context"
	"fmt"

	domcat "github.com/kailas-cloud/dirsearch/internal/domain/catalog"
)

// Service exposes the loaded catalogs.
type Service struct {
	repo Repository
}

// New creates a catalog service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get retrieves a catalog by name.
func (s *Service) Get(ctx context.Context, name string) (*domcat.Catalog, error) {
	c, err := s.repo.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get catalog: %w", err)
	}
	return c, nil
}

// List returns all catalogs.
func (s *Service) List(ctx context.Context) ([]*domcat.Catalog, error) {
	cats, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	return cats, nil
}

// Check reports whether catalogs are loaded; used by health checks.
func (s *Service) Check(ctx context.Context) error {
	cats, err := s.List(ctx)
	if err != nil {
		return err
	}
	if len(cats) == 0 {
		return fmt.Errorf("no catalogs loaded")
	}
	return nil
}
