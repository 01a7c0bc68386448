package handlers

import (
	"net/http"

	"github.com/ghuser/charmstore/pkg/errhttp"
	"github.com/ghuser/charmstore/pkg/httpx"
	appsvcs "github.com/ghuser/charmstore/services/status/application/services"
)

// GetStatusHandler handles GET /status requests.
type GetStatusHandler struct {
	svc *appsvcs.Services
}

// NewGetStatusHandler returns a GetStatusHandler backed by the given services.
func NewGetStatusHandler(svc *appsvcs.Services) *GetStatusHandler {
	return &GetStatusHandler{svc: svc}
}

// Execute lists recorded status checks, bounded by the service's list limit.
func (h *GetStatusHandler) Execute(w http.ResponseWriter, r *http.Request) {
	checks, err := h.svc.Status.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]StatusCheckResponse, len(checks))
	for i, c := range checks {
		out[i] = StatusCheckResponse{
			ID:         c.ID,
			ClientName: c.ClientName,
			Timestamp:  c.Timestamp,
		}
	}
	httpx.JSON(w, http.StatusOK, out)
}
