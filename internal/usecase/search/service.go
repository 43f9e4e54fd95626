package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dirsearch/internal/domain/entry"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/criteria"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/location"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/result"
	logpkg "github.com/kailas-cloud/dirsearch/internal/logger"
)

// DefaultTopN is the count callers use when none is requested.
const DefaultTopN = 3

// MaxTopN caps TopLocal requests.
const MaxTopN = 100

// Service runs the engine against catalogs looked up by name.
type Service struct {
	catalogs CatalogReader
	recorder Recorder
}

// New creates a search service.
func New(catalogs CatalogReader) *Service {
	return &Service{catalogs: catalogs}
}

// WithRecorder attaches engine metrics.
func (s *Service) WithRecorder(r Recorder) *Service {
	s.recorder = r
	return s
}

// Filter runs the filter pipeline on the named catalog.
func (s *Service) Filter(
	ctx context.Context, catalogName string, crit criteria.Criteria, loc *location.Context,
) (res result.Filtered, err error) {
	ctx, span := startSpan(ctx, "Filter", catalogName)
	defer func() { endSpan(span, err, res.TotalAfterFilter()) }()

	cat, err := s.catalogs.Get(ctx, catalogName)
	if err != nil {
		return result.Filtered{}, fmt.Errorf("get catalog: %w", err)
	}

	start := time.Now()
	res = Filter(cat, crit, loc)
	elapsed := time.Since(start)

	if s.recorder != nil {
		s.recorder.ObserveFilter(catalogName, elapsed, res.TotalAfterFilter())
	}
	logpkg.FromContext(ctx).Debug("catalog filtered",
		zap.String("catalog", catalogName),
		zap.Stringer("criteria", crit),
		zap.Int("total_before", res.TotalBeforeFilter()),
		zap.Int("total_after", res.TotalAfterFilter()),
		zap.Duration("elapsed", elapsed),
	)
	return res, nil
}

// Group filters the named catalog and buckets the result by category in the
// catalog's display order.
func (s *Service) Group(
	ctx context.Context, catalogName string, crit criteria.Criteria, loc *location.Context,
) (groups []result.Group, res result.Filtered, err error) {
	ctx, span := startSpan(ctx, "Group", catalogName)
	defer func() { endSpan(span, err, len(groups)) }()

	cat, err := s.catalogs.Get(ctx, catalogName)
	if err != nil {
		return nil, result.Filtered{}, fmt.Errorf("get catalog: %w", err)
	}

	start := time.Now()
	res = Filter(cat, crit, loc)
	groups = GroupByCategory(&res, cat.CategoryOrder())
	if s.recorder != nil {
		s.recorder.ObserveFilter(catalogName, time.Since(start), res.TotalAfterFilter())
	}
	return groups, res, nil
}

// TopLocal returns the best entries near the caller, ignoring active filters.
// n <= 0 selects nothing; n is capped at MaxTopN.
func (s *Service) TopLocal(
	ctx context.Context, catalogName string, loc *location.Context, n int,
) (top []entry.Entry, err error) {
	ctx, span := startSpan(ctx, "TopLocal", catalogName)
	defer func() { endSpan(span, err, len(top)) }()

	cat, err := s.catalogs.Get(ctx, catalogName)
	if err != nil {
		return nil, fmt.Errorf("get catalog: %w", err)
	}
	if n > MaxTopN {
		n = MaxTopN
	}

	start := time.Now()
	top = TopLocal(cat, loc, n)
	elapsed := time.Since(start)

	if s.recorder != nil {
		s.recorder.ObserveTopLocal(catalogName, elapsed, len(top))
	}
	logpkg.FromContext(ctx).Debug("top local selected",
		zap.String("catalog", catalogName),
		zap.Int("requested", n),
		zap.Int("returned", len(top)),
	)
	return top, nil
}
