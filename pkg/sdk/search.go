package dirsearch

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/dirsearch/internal/domain"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/criteria"
)

// Filter returns the catalog entries matching q, ranked by location tier,
// then score, then name. loc may be nil.
func (c *Client) Filter(ctx context.Context, catalog string, q Query, loc *Location) (_ Result, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search.filter", catalog, start, err) }()

	crit, err := q.toCriteria()
	if err != nil {
		return Result{}, err
	}
	l := loc.toInternal()
	res, err := c.searchSvc.Filter(ctx, catalog, crit, l)
	if err != nil {
		return Result{}, fmt.Errorf("filter: %w", err)
	}
	return Result{
		Entries:     fromInternalEntries(res.Entries(), l),
		TotalBefore: res.TotalBeforeFilter(),
		TotalAfter:  res.TotalAfterFilter(),
	}, nil
}

// Group runs Filter and buckets the result by category in the catalog's
// display order. An entry appears once per category it carries; empty
// categories are omitted.
func (c *Client) Group(ctx context.Context, catalog string, q Query, loc *Location) (_ []Group, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search.group", catalog, start, err) }()

	crit, err := q.toCriteria()
	if err != nil {
		return nil, err
	}
	l := loc.toInternal()
	groups, _, err := c.searchSvc.Group(ctx, catalog, crit, l)
	if err != nil {
		return nil, fmt.Errorf("group: %w", err)
	}
	out := make([]Group, len(groups))
	for i := range groups {
		out[i] = Group{
			Category: groups[i].Label(),
			Entries:  fromInternalEntries(groups[i].Entries(), l),
		}
	}
	return out, nil
}

// TopLocal returns up to n entries in the caller's city or country, best
// score first. n <= 0 selects nothing. Filters do not apply.
func (c *Client) TopLocal(ctx context.Context, catalog string, loc *Location, n int) (_ []Entry, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search.top_local", catalog, start, err) }()

	l := loc.toInternal()
	top, err := c.searchSvc.TopLocal(ctx, catalog, l, n)
	if err != nil {
		return nil, fmt.Errorf("top local: %w", err)
	}
	return fromInternalEntries(top, l), nil
}

func (q Query) toCriteria() (criteria.Criteria, error) {
	crit, err := criteria.New(q.Text, q.Categories, q.Region, q.Platform, q.Preset)
	if err != nil {
		return criteria.Criteria{}, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	return crit, nil
}
