package handlers

import (
	"net/http"

	"github.com/ghuser/charmstore/pkg/httpx"
	appsvcs "github.com/ghuser/charmstore/services/catalog/application/services"
)

// GetCategoriesHandler handles GET /categories requests.
type GetCategoriesHandler struct {
	svc *appsvcs.Services
}

// NewGetCategoriesHandler returns a GetCategoriesHandler backed by the given services.
func NewGetCategoriesHandler(svc *appsvcs.Services) *GetCategoriesHandler {
	return &GetCategoriesHandler{svc: svc}
}

// Execute returns the fixed category enum as value/label pairs.
func (h *GetCategoriesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.svc.Catalog.Categories())
}
