package fsq

import (
	"context"
	"errors"
	"fmt"

	catalogrepo "github.com/kailas-cloud/dirsearch/internal/repository/catalog"
)

// ErrEmpty is returned when no place survived the filters.
var ErrEmpty = errors.New("no places imported")

// Import reads the parquet input at path and returns a validated catalog file.
func Import(ctx context.Context, path string, opts Options) (catalogrepo.File, Stats, error) {
	b, err := NewBuilder(opts)
	if err != nil {
		return catalogrepo.File{}, Stats{}, err
	}
	r, err := NewReader(path)
	if err != nil {
		return catalogrepo.File{}, Stats{}, err
	}
	if err := r.ReadPlaces(ctx, b.Add); err != nil {
		return catalogrepo.File{}, b.Stats(), err
	}
	if b.Stats().Imported == 0 {
		return catalogrepo.File{}, b.Stats(), ErrEmpty
	}

	f := b.File()
	if _, err := f.ToDomain(); err != nil {
		return catalogrepo.File{}, b.Stats(), fmt.Errorf("validate catalog: %w", err)
	}
	return f, b.Stats(), nil
}
