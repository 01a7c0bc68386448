package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ghuser/charmstore/pkg/errhttp"
	"github.com/ghuser/charmstore/pkg/httpx"
	appsvcs "github.com/ghuser/charmstore/services/catalog/application/services"
	catalogdomain "github.com/ghuser/charmstore/services/catalog/domain"
)

// GetProductsHandler handles GET /products requests.
type GetProductsHandler struct {
	svc *appsvcs.Services
}

// NewGetProductsHandler returns a GetProductsHandler backed by the given services.
func NewGetProductsHandler(svc *appsvcs.Services) *GetProductsHandler {
	return &GetProductsHandler{svc: svc}
}

// Execute lists products filtered by the category, featured, search, and limit
// query parameters. Malformed parameters are rejected before the store is hit.
func (h *GetProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	query := appsvcs.ListQuery{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
		Limit:    appsvcs.DefaultListLimit,
	}

	if raw := r.URL.Query().Get("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			errhttp.WriteError(w, fmt.Errorf("%w: %q", catalogdomain.ErrInvalidFeaturedFlag, raw))
			return
		}
		query.Featured = &featured
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			errhttp.WriteError(w, fmt.Errorf("%w: %q is not a number", catalogdomain.ErrInvalidLimit, raw))
			return
		}
		query.Limit = limit
	}

	products, err := h.svc.Catalog.ListProducts(r.Context(), query)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newProductListResponse(products))
}
