package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/dirsearch/internal/domain"
	"github.com/kailas-cloud/dirsearch/internal/domain/catalog"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/criteria"
)

// --- Mocks ---

type mockCatalogs struct {
	cat    *catalog.Catalog
	err    error
	called string
}

func (m *mockCatalogs) Get(_ context.Context, name string) (*catalog.Catalog, error) {
	m.called = name
	return m.cat, m.err
}

type mockRecorder struct {
	filterCalls int
	lastAfter   int
	topCalls    int
	lastTop     int
}

func (m *mockRecorder) ObserveFilter(_ string, _ time.Duration, totalAfter int) {
	m.filterCalls++
	m.lastAfter = totalAfter
}

func (m *mockRecorder) ObserveTopLocal(_ string, _ time.Duration, returned int) {
	m.topCalls++
	m.lastTop = returned
}

// --- Tests ---

func TestService_Filter(t *testing.T) {
	cats := &mockCatalogs{cat: communityCatalog(t)}
	rec := &mockRecorder{}
	svc := New(cats).WithRecorder(rec)

	res, err := svc.Filter(context.Background(), "communities",
		mkCriteria(t, "", []string{"Sports"}, "", "", ""), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cats.called != "communities" {
		t.Errorf("catalog looked up = %q", cats.called)
	}
	if keysOf(res.Entries()) != "C,E" {
		t.Errorf("order = %s", keysOf(res.Entries()))
	}
	if rec.filterCalls != 1 || rec.lastAfter != 2 {
		t.Errorf("recorder = %+v", rec)
	}
}

func TestService_Filter_CatalogNotFound(t *testing.T) {
	svc := New(&mockCatalogs{err: domain.ErrNotFound})
	_, err := svc.Filter(context.Background(), "nope", criteria.Criteria{}, nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Group(t *testing.T) {
	svc := New(&mockCatalogs{cat: communityCatalog(t)})
	groups, res, err := svc.Group(context.Background(), "communities", criteria.Criteria{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalAfterFilter() != 5 {
		t.Errorf("TotalAfterFilter() = %d", res.TotalAfterFilter())
	}
	if len(groups) != 2 || groups[0].Label() != "Business" {
		t.Errorf("groups = %+v", groups)
	}
}

func TestService_Group_Error(t *testing.T) {
	svc := New(&mockCatalogs{err: errors.New("boom")})
	if _, _, err := svc.Group(context.Background(), "x", criteria.Criteria{}, nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestService_TopLocal_Count(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"explicit zero selects nothing", 0, 0},
		{"negative selects nothing", -1, 0},
		{"default count", DefaultTopN, DefaultTopN},
		{"more than available", 10, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &mockRecorder{}
			svc := New(&mockCatalogs{cat: communityCatalog(t)}).WithRecorder(rec)

			top, err := svc.TopLocal(context.Background(), "communities", loc("Bangkok", "Thailand"), tt.n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(top) != tt.want {
				t.Errorf("len = %d, want %d", len(top), tt.want)
			}
			if rec.topCalls != 1 || rec.lastTop != tt.want {
				t.Errorf("recorder = %+v", rec)
			}
		})
	}
}

func TestService_TopLocal_Capped(t *testing.T) {
	svc := New(&mockCatalogs{cat: communityCatalog(t)})
	top, err := svc.TopLocal(context.Background(), "communities", loc("Bangkok", "Thailand"), MaxTopN*10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(top) != 4 {
		t.Errorf("len = %d, want all 4 local entries", len(top))
	}
}

func TestService_TopLocal_NotFound(t *testing.T) {
	svc := New(&mockCatalogs{err: domain.ErrNotFound})
	_, err := svc.TopLocal(context.Background(), "nope", nil, 3)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
