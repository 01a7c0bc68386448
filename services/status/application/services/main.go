package services

import (
	"github.com/ghuser/charmstore/pkg/app"
	"github.com/ghuser/charmstore/services/status/infrastructure/persistence/mongodb"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Status *StatusService
}

// New wires all status application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := mongodb.NewStatusCheckRepository(a.Db)
	return &Services{
		Status: NewStatusService(repo),
	}
}
