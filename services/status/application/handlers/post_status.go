package handlers

import (
	"net/http"
	"time"

	"github.com/ghuser/charmstore/pkg/errhttp"
	"github.com/ghuser/charmstore/pkg/httpx"
	pkgvalidator "github.com/ghuser/charmstore/pkg/validator"
	appsvcs "github.com/ghuser/charmstore/services/status/application/services"
)

// CreateStatusCheckRequest is the request body for POST /status.
type CreateStatusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required,min=1,max=255"`
}

// StatusCheckResponse is the wire shape of a status check.
type StatusCheckResponse struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// PostStatusHandler handles POST /status requests.
type PostStatusHandler struct {
	svc *appsvcs.Services
}

// NewPostStatusHandler returns a PostStatusHandler backed by the given services.
func NewPostStatusHandler(svc *appsvcs.Services) *PostStatusHandler {
	return &PostStatusHandler{svc: svc}
}

// Execute records a new status check for the named client.
func (h *PostStatusHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateStatusCheckRequest](w, r)
	if !ok {
		return
	}

	check, err := h.svc.Status.Create(r.Context(), req.ClientName)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, StatusCheckResponse{
		ID:         check.ID,
		ClientName: check.ClientName,
		Timestamp:  check.Timestamp,
	})
}
