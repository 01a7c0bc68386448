package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/charmstore/pkg/app"
	"github.com/ghuser/charmstore/services/status/application/handlers"
	appsvcs "github.com/ghuser/charmstore/services/status/application/services"
)

// StatusRoutes registers status-check endpoints on the provided chi router.
func StatusRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/status", func(r chi.Router) {
			r.Post("/", handlers.NewPostStatusHandler(svcs).Execute)
			r.Get("/", handlers.NewGetStatusHandler(svcs).Execute)
		})
	})
}
