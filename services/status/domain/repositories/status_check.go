package repositories

import (
	"context"

	"github.com/ghuser/charmstore/services/status/domain/models"
)

// StatusCheckRepository is the persistence interface for StatusCheck records.
// The domain layer owns this interface; infrastructure implements it.
type StatusCheckRepository interface {
	// Insert persists a new status check.
	Insert(ctx context.Context, check *models.StatusCheck) error

	// List retrieves up to limit status checks in the store's natural order.
	List(ctx context.Context, limit int64) ([]*models.StatusCheck, error)
}
