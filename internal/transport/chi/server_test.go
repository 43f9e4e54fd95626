package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dirsearch/internal/db/memory"
	catalogrepo "github.com/kailas-cloud/dirsearch/internal/repository/catalog"
	favoritesrepo "github.com/kailas-cloud/dirsearch/internal/repository/favorites"
	catalogUsecase "github.com/kailas-cloud/dirsearch/internal/usecase/catalog"
	favoritesUsecase "github.com/kailas-cloud/dirsearch/internal/usecase/favorites"
	healthUsecase "github.com/kailas-cloud/dirsearch/internal/usecase/health"
	searchUsecase "github.com/kailas-cloud/dirsearch/internal/usecase/search"
)

const communitiesYAML = `
name: communities
title: Communities
categories: [Business, Sports]
platforms: [Facebook, LINE, Discord]
presets:
  work: [Business]
  fun: [Sports]
entries:
  - key: A
    name: Alpha Founders
    categories: [Business]
    platform: Facebook
    locations: [Bangkok, TH]
    score: 500
  - key: B
    name: Bravo Biz
    categories: [Business]
    platform: LINE
    locations: [Bangkok, TH]
    score: 900
  - key: C
    name: Charlie Run Club
    categories: [Sports]
    platform: LINE
    locations: [Bangkok, TH]
    score: 300
  - key: D
    name: Delta Remote
    categories: [Business]
    platform: Discord
    locations: [Global]
    score: 10000
  - key: E
    name: Echo Hikers
    text: [Weekend hikes in the mountains]
    categories: [Sports, Business]
    platform: Facebook
    locations: [Chiang Mai, TH]
    score: 50
`

func newTestHandler(t *testing.T, maxFavorites int) http.Handler {
	t.Helper()
	repo := catalogrepo.NewFromFS(fstest.MapFS{"c/communities.yaml": {Data: []byte(communitiesYAML)}}, "c", nil)
	if err := repo.Load(); err != nil {
		t.Fatalf("load catalogs: %v", err)
	}
	store := memory.NewStore()

	catSvc := catalogUsecase.New(repo)
	srv := NewServer(
		catSvc,
		searchUsecase.New(repo),
		favoritesUsecase.New(favoritesrepo.New(store, 0), repo, maxFavorites),
		healthUsecase.New(catSvc, store),
		zap.NewNop(),
	)
	return Handler(srv, ServerOptions{})
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, target, http.NoBody))
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode %T: %v (body %q)", v, err, rr.Body.String())
	}
	return v
}

func itemKeys(items []Entry) string {
	keys := make([]string, len(items))
	for i, e := range items {
		keys[i] = e.Key
	}
	return strings.Join(keys, ",")
}

func TestListCatalogs(t *testing.T) {
	h := newTestHandler(t, 0)
	rr := do(t, h, http.MethodGet, "/catalogs")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	resp := decode[CatalogListResponse](t, rr)
	if len(resp.Items) != 1 || resp.Items[0].Name != "communities" || resp.Items[0].Entries != 5 {
		t.Errorf("unexpected catalogs %+v", resp.Items)
	}
	if strings.Join(resp.Items[0].Presets, ",") != "fun,work" {
		t.Errorf("unexpected presets %v", resp.Items[0].Presets)
	}
}

func TestGetCatalog_NotFound(t *testing.T) {
	h := newTestHandler(t, 0)
	rr := do(t, h, http.MethodGet, "/catalogs/nope")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if resp := decode[ErrorResponse](t, rr); resp.Code != ErrorCodeCatalogNotFound {
		t.Errorf("expected catalog_not_found, got %s", resp.Code)
	}
}

func TestListEntries(t *testing.T) {
	h := newTestHandler(t, 0)

	tests := []struct {
		name  string
		query string
		want  string
		total int
	}{
		{"no filters no location", "", "D,B,A,C,E", 5},
		{"location ranks local first", "?city=Bangkok&country=TH", "B,A,C,E,D", 5},
		{"work preset", "?preset=work&city=Bangkok&country=TH", "B,A,E,D", 4},
		{"platform and category", "?platform=LINE&category=Sports", "C", 1},
		{"multi category", "?category=Sports&category=Business&platform=Facebook", "A,E", 2},
		{"region substring", "?region=chiang", "E", 1},
		{"query over text", "?q=MOUNTAIN", "E", 1},
		{"all sentinel", "?platform=all&region=all", "D,B,A,C,E", 5},
		{"no match", "?q=zzz", "", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := do(t, h, http.MethodGet, "/catalogs/communities/entries"+tc.query)
			if rr.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
			}
			resp := decode[EntriesResponse](t, rr)
			if got := itemKeys(resp.Items); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
			if resp.TotalBeforeFilter != 5 || resp.TotalAfterFilter != tc.total {
				t.Errorf("unexpected totals %d/%d", resp.TotalAfterFilter, resp.TotalBeforeFilter)
			}
		})
	}
}

func TestListEntries_LocationTier(t *testing.T) {
	h := newTestHandler(t, 0)
	resp := decode[EntriesResponse](t, do(t, h, http.MethodGet, "/catalogs/communities/entries?city=Bangkok&country=TH"))
	want := map[string]int{"A": 0, "B": 0, "C": 0, "E": 1, "D": 2}
	for _, e := range resp.Items {
		if e.LocationTier == nil || *e.LocationTier != want[e.Key] {
			t.Errorf("entry %s: unexpected tier %v", e.Key, e.LocationTier)
		}
	}

	resp = decode[EntriesResponse](t, do(t, h, http.MethodGet, "/catalogs/communities/entries"))
	if resp.Items[0].LocationTier != nil {
		t.Error("tier must be absent without a location")
	}
}

func TestListEntries_QueryTooLong(t *testing.T) {
	h := newTestHandler(t, 0)
	rr := do(t, h, http.MethodGet, "/catalogs/communities/entries?q="+strings.Repeat("x", 600))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if resp := decode[ErrorResponse](t, rr); resp.Code != ErrorCodeBadRequest {
		t.Errorf("expected bad_request, got %s", resp.Code)
	}
}

func TestListGroups(t *testing.T) {
	h := newTestHandler(t, 0)
	rr := do(t, h, http.MethodGet, "/catalogs/communities/groups?city=Bangkok&country=TH")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	resp := decode[GroupsResponse](t, rr)
	if len(resp.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(resp.Groups))
	}
	if resp.Groups[0].Label != "Business" || itemKeys(resp.Groups[0].Items) != "B,A,E,D" {
		t.Errorf("unexpected Business group %s %s", resp.Groups[0].Label, itemKeys(resp.Groups[0].Items))
	}
	if resp.Groups[1].Label != "Sports" || itemKeys(resp.Groups[1].Items) != "C,E" {
		t.Errorf("unexpected Sports group %s %s", resp.Groups[1].Label, itemKeys(resp.Groups[1].Items))
	}
}

func TestTopLocal(t *testing.T) {
	h := newTestHandler(t, 0)

	tests := []struct {
		query string
		want  string
	}{
		{"?city=Bangkok&country=TH&n=2", "B,A"},
		{"?city=Bangkok&country=TH", "B,A,C"},
		{"?city=Bangkok&country=TH&n=0", ""},
		{"?country=TH&n=10", "B,A,C,E"},
		{"", ""},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			rr := do(t, h, http.MethodGet, "/catalogs/communities/top"+tc.query)
			if rr.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rr.Code)
			}
			resp := decode[TopResponse](t, rr)
			if got := itemKeys(resp.Items); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestTopLocal_InvalidN(t *testing.T) {
	h := newTestHandler(t, 0)
	rr := do(t, h, http.MethodGet, "/catalogs/communities/top?n=lots")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestFavorites_Flow(t *testing.T) {
	h := newTestHandler(t, 2)
	base := "/favorites/u1/communities"

	rr := do(t, h, http.MethodPost, base+"/C/toggle")
	if rr.Code != http.StatusOK {
		t.Fatalf("toggle: expected 200, got %d", rr.Code)
	}
	if resp := decode[ToggleResponse](t, rr); !resp.Favorite || strings.Join(resp.Keys, ",") != "C" {
		t.Errorf("unexpected toggle response %+v", resp)
	}

	do(t, h, http.MethodPost, base+"/A/toggle")

	rr = do(t, h, http.MethodPost, base+"/B/toggle")
	if rr.Code != http.StatusConflict {
		t.Fatalf("limit: expected 409, got %d", rr.Code)
	}
	if resp := decode[ErrorResponse](t, rr); resp.Code != ErrorCodeFavoritesLimit {
		t.Errorf("expected favorites_limit, got %s", resp.Code)
	}

	rr = do(t, h, http.MethodPost, base+"/zzz/toggle")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown key: expected 404, got %d", rr.Code)
	}
	if resp := decode[ErrorResponse](t, rr); resp.Code != ErrorCodeEntryNotFound {
		t.Errorf("expected entry_not_found, got %s", resp.Code)
	}

	resp := decode[FavoritesResponse](t, do(t, h, http.MethodGet, base))
	if strings.Join(resp.Keys, ",") != "C,A" {
		t.Errorf("expected C,A, got %v", resp.Keys)
	}

	rr = do(t, h, http.MethodPost, base+"/C/toggle")
	if toggled := decode[ToggleResponse](t, rr); toggled.Favorite || strings.Join(toggled.Keys, ",") != "A" {
		t.Errorf("unexpected removal response %+v", toggled)
	}

	if rr := do(t, h, http.MethodDelete, base); rr.Code != http.StatusNoContent {
		t.Fatalf("clear: expected 204, got %d", rr.Code)
	}
	resp = decode[FavoritesResponse](t, do(t, h, http.MethodGet, base))
	if len(resp.Keys) != 0 {
		t.Errorf("expected no favorites after clear, got %v", resp.Keys)
	}
}

func TestFavorites_InvalidOwner(t *testing.T) {
	h := newTestHandler(t, 0)
	rr := do(t, h, http.MethodGet, "/favorites/bad%20owner/communities")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	h := newTestHandler(t, 0)
	rr := do(t, h, http.MethodGet, "/health")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	resp := decode[HealthResponse](t, rr)
	if resp.Status != "ok" || resp.Checks["catalogs"] != "ok" || resp.Checks["database"] != "ok" {
		t.Errorf("unexpected health %+v", resp)
	}
}
