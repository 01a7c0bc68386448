package handlers

import (
	"net/http"

	"github.com/ghuser/charmstore/pkg/errhttp"
	"github.com/ghuser/charmstore/pkg/httpx"
	appsvcs "github.com/ghuser/charmstore/services/catalog/application/services"
)

// GetFeaturedProductsHandler handles GET /featured-products requests.
type GetFeaturedProductsHandler struct {
	svc *appsvcs.Services
}

// NewGetFeaturedProductsHandler returns a GetFeaturedProductsHandler backed by the given services.
func NewGetFeaturedProductsHandler(svc *appsvcs.Services) *GetFeaturedProductsHandler {
	return &GetFeaturedProductsHandler{svc: svc}
}

// Execute returns the homepage rail: up to six featured products.
func (h *GetFeaturedProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Catalog.FeaturedProducts(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newProductListResponse(products))
}
