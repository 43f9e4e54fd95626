package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded means search works but favorites storage does not.
	Degraded Status = "degraded"
	// Unhealthy means catalogs are unavailable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	catalogs CatalogChecker
	db       DBPinger
}

// New creates a Service. db can be nil.
func New(catalogs CatalogChecker, db DBPinger) *Service {
	return &Service{catalogs: catalogs, db: db}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)
	status := Healthy

	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			checks["database"] = CheckError
			status = Degraded
		} else {
			checks["database"] = CheckOK
		}
	}

	if err := s.catalogs.Check(ctx); err != nil {
		checks["catalogs"] = CheckError
		status = Unhealthy
	} else {
		checks["catalogs"] = CheckOK
	}

	return Report{Status: status, Checks: checks}
}
