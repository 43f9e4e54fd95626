package chi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ServerOptions configures Handler.
type ServerOptions struct {
	BaseRouter       chi.Router
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// InvalidParamError reports a query or path parameter that failed to bind.
type InvalidParamError struct {
	Param string
	Err   error
}

func (e *InvalidParamError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %v", e.Param, e.Err)
}

func (e *InvalidParamError) Unwrap() error { return e.Err }

// Handler mounts the API routes on opts.BaseRouter (a new router when nil).
func Handler(s *Server, opts ServerOptions) http.Handler {
	r := opts.BaseRouter
	if r == nil {
		r = chi.NewRouter()
	}
	onErr := opts.ErrorHandlerFunc
	if onErr == nil {
		onErr = func(w http.ResponseWriter, _ *http.Request, err error) {
			writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		}
	}
	b := binder{onErr: onErr}

	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Get("/catalogs", s.ListCatalogs)
	r.Get("/catalogs/{catalog}", b.catalog(s.GetCatalog))
	r.Get("/catalogs/{catalog}/entries", b.search(s.ListEntries))
	r.Get("/catalogs/{catalog}/groups", b.search(s.ListGroups))
	r.Get("/catalogs/{catalog}/top", b.top(s.TopLocal))

	r.Get("/favorites/{owner}/{catalog}", b.favorites(s.GetFavorites))
	r.Delete("/favorites/{owner}/{catalog}", b.favorites(s.ClearFavorites))
	r.Post("/favorites/{owner}/{catalog}/{key}/toggle", b.toggle(s.ToggleFavorite))

	return r
}

type binder struct {
	onErr func(w http.ResponseWriter, r *http.Request, err error)
}

func (b binder) path(w http.ResponseWriter, r *http.Request, name string, dest *string) bool {
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		b.onErr(w, r, &InvalidParamError{Param: name, Err: err})
		return false
	}
	return true
}

func (b binder) query(w http.ResponseWriter, r *http.Request, name string, dest any) bool {
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), dest); err != nil {
		b.onErr(w, r, &InvalidParamError{Param: name, Err: err})
		return false
	}
	return true
}

func (b binder) catalog(h func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var catalog string
		if !b.path(w, r, "catalog", &catalog) {
			return
		}
		h(w, r, catalog)
	}
}

func (b binder) search(h func(http.ResponseWriter, *http.Request, string, SearchParams)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var catalog string
		if !b.path(w, r, "catalog", &catalog) {
			return
		}
		var p SearchParams
		if !b.query(w, r, "q", &p.Q) ||
			!b.query(w, r, "category", &p.Category) ||
			!b.query(w, r, "region", &p.Region) ||
			!b.query(w, r, "platform", &p.Platform) ||
			!b.query(w, r, "preset", &p.Preset) ||
			!b.query(w, r, "city", &p.City) ||
			!b.query(w, r, "country", &p.Country) {
			return
		}
		h(w, r, catalog, p)
	}
}

func (b binder) top(h func(http.ResponseWriter, *http.Request, string, TopParams)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var catalog string
		if !b.path(w, r, "catalog", &catalog) {
			return
		}
		var p TopParams
		if !b.query(w, r, "city", &p.City) ||
			!b.query(w, r, "country", &p.Country) ||
			!b.query(w, r, "n", &p.N) {
			return
		}
		h(w, r, catalog, p)
	}
}

func (b binder) favorites(h func(http.ResponseWriter, *http.Request, string, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var owner, catalog string
		if !b.path(w, r, "owner", &owner) || !b.path(w, r, "catalog", &catalog) {
			return
		}
		h(w, r, owner, catalog)
	}
}

func (b binder) toggle(h func(http.ResponseWriter, *http.Request, string, string, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var owner, catalog, key string
		if !b.path(w, r, "owner", &owner) || !b.path(w, r, "catalog", &catalog) || !b.path(w, r, "key", &key) {
			return
		}
		h(w, r, owner, catalog, key)
	}
}
