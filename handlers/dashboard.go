package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"smartquote/services"
	"smartquote/store"
)

// HandleHome redirects to the dashboard.
func HandleHome() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.Redirect(http.StatusFound, "/dashboard")
	}
}

// HandleDashboard returns revenue, pending amount, counts and the most
// recent documents.
func HandleDashboard(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		st := s.Snapshot()
		stats := services.ComputeDashboard(st.Documents, st.Clients)
		return e.JSON(http.StatusOK, stats)
	}
}
