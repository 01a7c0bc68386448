package services

import (
	"context"
	"fmt"

	"github.com/ghuser/charmstore/services/status/domain/models"
	"github.com/ghuser/charmstore/services/status/domain/repositories"
)

// ListLimit bounds how many status checks the list endpoint returns.
const ListLimit = 1000

// StatusService records and lists status checks.
type StatusService struct {
	repo repositories.StatusCheckRepository
}

// NewStatusService returns a StatusService wired with the given repository.
func NewStatusService(repo repositories.StatusCheckRepository) *StatusService {
	return &StatusService{repo: repo}
}

// Create persists a new status check for the named client and returns it.
func (s *StatusService) Create(ctx context.Context, clientName string) (*models.StatusCheck, error) {
	check, err := models.NewStatusCheck(clientName)
	if err != nil {
		return nil, fmt.Errorf("create status check: %w", err)
	}
	if err := s.repo.Insert(ctx, check); err != nil {
		return nil, fmt.Errorf("save status check: %w", err)
	}
	return check, nil
}

// List returns up to ListLimit status checks in natural order.
func (s *StatusService) List(ctx context.Context) ([]*models.StatusCheck, error) {
	checks, err := s.repo.List(ctx, ListLimit)
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	return checks, nil
}
