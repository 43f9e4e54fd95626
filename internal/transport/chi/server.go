package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dirsearch/internal/domain"
	domcat "github.com/kailas-cloud/dirsearch/internal/domain/catalog"
	"github.com/kailas-cloud/dirsearch/internal/domain/entry"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/criteria"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/location"
	logpkg "github.com/kailas-cloud/dirsearch/internal/logger"
	catalogUsecase "github.com/kailas-cloud/dirsearch/internal/usecase/catalog"
	favoritesUsecase "github.com/kailas-cloud/dirsearch/internal/usecase/favorites"
	healthUsecase "github.com/kailas-cloud/dirsearch/internal/usecase/health"
	searchUsecase "github.com/kailas-cloud/dirsearch/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the HTTP handlers of the directory API.
type Server struct {
	catalogs      *catalogUsecase.Service
	search        *searchUsecase.Service
	favorites     *favoritesUsecase.Service
	health        *healthUsecase.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	catalogs *catalogUsecase.Service,
	search *searchUsecase.Service,
	favorites *favoritesUsecase.Service,
	health *healthUsecase.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		catalogs:  catalogs,
		search:    search,
		favorites: favorites,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorCodeCatalogNotFound),
		sentinelHandler(domain.ErrEntryNotFound, http.StatusNotFound, ErrorCodeEntryNotFound),
		sentinelHandler(domain.ErrFavoritesLimit, http.StatusConflict, ErrorCodeFavoritesLimit),
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, ErrorCodeBadRequest),
		sentinelHandler(domain.ErrInvalidCatalog, http.StatusInternalServerError, ErrorCodeInvalidCatalog),
	}
	return s
}

// ListCatalogs handles GET /catalogs.
func (s *Server) ListCatalogs(w http.ResponseWriter, r *http.Request) {
	cats, err := s.catalogs.List(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	items := make([]CatalogSummary, len(cats))
	for i, c := range cats {
		items[i] = catalogSummary(c)
	}
	writeJSON(w, http.StatusOK, CatalogListResponse{Items: items})
}

// GetCatalog handles GET /catalogs/{catalog}.
func (s *Server) GetCatalog(w http.ResponseWriter, r *http.Request, catalog string) {
	c, err := s.catalogs.Get(r.Context(), catalog)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CatalogResponse{
		CatalogSummary: catalogSummary(c),
		Items:          entriesToAPI(c.Entries(), nil),
	})
}

// ListEntries handles GET /catalogs/{catalog}/entries.
func (s *Server) ListEntries(w http.ResponseWriter, r *http.Request, catalog string, params SearchParams) {
	crit, loc, err := searchInput(params)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	res, err := s.search.Filter(r.Context(), catalog, crit, loc)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, EntriesResponse{
		Catalog:           catalog,
		TotalBeforeFilter: res.TotalBeforeFilter(),
		TotalAfterFilter:  res.TotalAfterFilter(),
		Items:             entriesToAPI(res.Entries(), loc),
	})
}

// ListGroups handles GET /catalogs/{catalog}/groups.
func (s *Server) ListGroups(w http.ResponseWriter, r *http.Request, catalog string, params SearchParams) {
	crit, loc, err := searchInput(params)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	groups, res, err := s.search.Group(r.Context(), catalog, crit, loc)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	out := make([]Group, len(groups))
	for i := range groups {
		out[i] = Group{Label: groups[i].Label(), Items: entriesToAPI(groups[i].Entries(), loc)}
	}
	writeJSON(w, http.StatusOK, GroupsResponse{
		Catalog:           catalog,
		TotalBeforeFilter: res.TotalBeforeFilter(),
		TotalAfterFilter:  res.TotalAfterFilter(),
		Groups:            out,
	})
}

// TopLocal handles GET /catalogs/{catalog}/top.
func (s *Server) TopLocal(w http.ResponseWriter, r *http.Request, catalog string, params TopParams) {
	loc := location.New(deref(params.City), deref(params.Country)).Pointer()
	n := searchUsecase.DefaultTopN
	if params.N != nil {
		n = *params.N
	}
	top, err := s.search.TopLocal(r.Context(), catalog, loc, n)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, TopResponse{Catalog: catalog, Items: entriesToAPI(top, loc)})
}

// GetFavorites handles GET /favorites/{owner}/{catalog}.
func (s *Server) GetFavorites(w http.ResponseWriter, r *http.Request, owner, catalog string) {
	reg, err := s.favorites.Get(r.Context(), owner, catalog)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, FavoritesResponse{Owner: owner, Catalog: catalog, Keys: reg.Keys()})
}

// ToggleFavorite handles POST /favorites/{owner}/{catalog}/{key}/toggle.
func (s *Server) ToggleFavorite(w http.ResponseWriter, r *http.Request, owner, catalog, key string) {
	reg, added, err := s.favorites.Toggle(r.Context(), owner, catalog, key)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ToggleResponse{
		FavoritesResponse: FavoritesResponse{Owner: owner, Catalog: catalog, Keys: reg.Keys()},
		Key:               key,
		Favorite:          added,
	})
}

// ClearFavorites handles DELETE /favorites/{owner}/{catalog}.
func (s *Server) ClearFavorites(w http.ResponseWriter, r *http.Request, owner, catalog string) {
	if err := s.favorites.Clear(r.Context(), owner, catalog); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status == healthUsecase.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{Status: string(report.Status), Checks: checks})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func searchInput(p SearchParams) (criteria.Criteria, *location.Context, error) {
	var cats []string
	if p.Category != nil {
		cats = *p.Category
	}
	crit, err := criteria.New(deref(p.Q), cats, deref(p.Region), deref(p.Platform), deref(p.Preset))
	if err != nil {
		return criteria.Criteria{}, nil, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	return crit, location.New(deref(p.City), deref(p.Country)).Pointer(), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
// Bad requests keep the full message; it only describes caller input.
func safeDomainMessage(err error) string {
	if errors.Is(err, domain.ErrInvalidRequest) {
		return err.Error()
	}
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrEntryNotFound,
		domain.ErrFavoritesLimit,
		domain.ErrInvalidCatalog,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContextOr(r.Context(), s.logger)
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}

func catalogSummary(c *domcat.Catalog) CatalogSummary {
	return CatalogSummary{
		Name:       c.Name(),
		Title:      c.Title(),
		Entries:    c.Len(),
		Categories: c.CategoryOrder(),
		Platforms:  c.Platforms(),
		Presets:    c.PresetIDs(),
	}
}

func entriesToAPI(entries []entry.Entry, loc *location.Context) []Entry {
	out := make([]Entry, len(entries))
	for i := range entries {
		out[i] = entryToAPI(&entries[i], loc)
	}
	return out
}

func entryToAPI(e *entry.Entry, loc *location.Context) Entry {
	out := Entry{
		Key:          e.Key(),
		Name:         e.DisplayName(),
		Text:         e.SearchableText(),
		Categories:   e.Categories(),
		Platform:     e.PlatformOrType(),
		Locations:    e.LocationTags(),
		QualityScore: e.QualityScore(),
		Verified:     e.Verified(),
		URL:          e.URL(),
	}
	if loc != nil {
		tier := int(searchUsecase.LocationTier(e, loc))
		out.LocationTier = &tier
	}
	return out
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
