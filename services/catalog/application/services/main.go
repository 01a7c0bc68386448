package services

import (
	"github.com/ghuser/charmstore/pkg/app"
	"github.com/ghuser/charmstore/services/catalog/infrastructure/persistence/mongodb"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Catalog *CatalogService
}

// New wires all catalog application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := mongodb.NewProductRepository(a.Db)
	return &Services{
		Catalog: NewCatalogService(repo),
	}
}
