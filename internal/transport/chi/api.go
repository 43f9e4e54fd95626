package chi

// ErrorCode is the machine-readable error code in ErrorResponse.
type ErrorCode string

// Error codes.
const (
	ErrorCodeBadRequest      ErrorCode = "bad_request"
	ErrorCodeUnauthorized    ErrorCode = "unauthorized"
	ErrorCodeCatalogNotFound ErrorCode = "catalog_not_found"
	ErrorCodeEntryNotFound   ErrorCode = "entry_not_found"
	ErrorCodeFavoritesLimit  ErrorCode = "favorites_limit"
	ErrorCodeInvalidCatalog  ErrorCode = "invalid_catalog"
	ErrorCodeInternalError   ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// CatalogSummary describes a catalog without its entries.
type CatalogSummary struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Entries    int      `json:"entries"`
	Categories []string `json:"categories"`
	Platforms  []string `json:"platforms,omitempty"`
	Presets    []string `json:"presets,omitempty"`
}

// CatalogListResponse is returned by GET /catalogs.
type CatalogListResponse struct {
	Items []CatalogSummary `json:"items"`
}

// CatalogResponse is returned by GET /catalogs/{catalog}.
type CatalogResponse struct {
	CatalogSummary
	Items []Entry `json:"items"`
}

// Entry is the wire form of a directory entry.
type Entry struct {
	Key          string   `json:"key"`
	Name         string   `json:"name"`
	Text         []string `json:"text,omitempty"`
	Categories   []string `json:"categories"`
	Platform     string   `json:"platform,omitempty"`
	Locations    []string `json:"locations"`
	QualityScore float64  `json:"quality_score"`
	Verified     bool     `json:"verified"`
	URL          string   `json:"url,omitempty"`
	// LocationTier is set when the request carried a location: 0 city, 1 country, 2 elsewhere.
	LocationTier *int `json:"location_tier,omitempty"`
}

// EntriesResponse is returned by GET /catalogs/{catalog}/entries.
type EntriesResponse struct {
	Catalog           string  `json:"catalog"`
	TotalBeforeFilter int     `json:"total_before_filter"`
	TotalAfterFilter  int     `json:"total_after_filter"`
	Items             []Entry `json:"items"`
}

// Group is one category bucket.
type Group struct {
	Label string  `json:"label"`
	Items []Entry `json:"items"`
}

// GroupsResponse is returned by GET /catalogs/{catalog}/groups.
type GroupsResponse struct {
	Catalog           string  `json:"catalog"`
	TotalBeforeFilter int     `json:"total_before_filter"`
	TotalAfterFilter  int     `json:"total_after_filter"`
	Groups            []Group `json:"groups"`
}

// TopResponse is returned by GET /catalogs/{catalog}/top.
type TopResponse struct {
	Catalog string  `json:"catalog"`
	Items   []Entry `json:"items"`
}

// FavoritesResponse is returned by the favorites endpoints.
type FavoritesResponse struct {
	Owner   string   `json:"owner"`
	Catalog string   `json:"catalog"`
	Keys    []string `json:"keys"`
}

// ToggleResponse is returned by POST /favorites/{owner}/{catalog}/{key}/toggle.
type ToggleResponse struct {
	FavoritesResponse
	Key      string `json:"key"`
	Favorite bool   `json:"favorite"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// SearchParams are the query parameters shared by /entries and /groups.
type SearchParams struct {
	Q        *string   `form:"q" json:"q,omitempty"`
	Category *[]string `form:"category" json:"category,omitempty"`
	Region   *string   `form:"region" json:"region,omitempty"`
	Platform *string   `form:"platform" json:"platform,omitempty"`
	Preset   *string   `form:"preset" json:"preset,omitempty"`
	City     *string   `form:"city" json:"city,omitempty"`
	Country  *string   `form:"country" json:"country,omitempty"`
}

// TopParams are the query parameters of /top.
type TopParams struct {
	City    *string `form:"city" json:"city,omitempty"`
	Country *string `form:"country" json:"country,omitempty"`
	N       *int    `form:"n" json:"n,omitempty"`
}
