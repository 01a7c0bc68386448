package services_test

import (
	"context"
	"errors"
	"testing"

	appsvcs "github.com/ghuser/charmstore/services/status/application/services"
	"github.com/ghuser/charmstore/services/status/domain/models"
)

type fakeStatusRepo struct {
	checks    []*models.StatusCheck
	lastLimit int64
	insertErr error
}

func (f *fakeStatusRepo) Insert(_ context.Context, check *models.StatusCheck) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.checks = append(f.checks, check)
	return nil
}

func (f *fakeStatusRepo) List(_ context.Context, limit int64) ([]*models.StatusCheck, error) {
	f.lastLimit = limit
	if limit > 0 && int64(len(f.checks)) > limit {
		return f.checks[:limit], nil
	}
	return f.checks, nil
}

func TestCreate(t *testing.T) {
	repo := &fakeStatusRepo{}
	svc := appsvcs.NewStatusService(repo)

	check, err := svc.Create(context.Background(), "uptime-probe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if check.ID == "" {
		t.Error("expected generated id")
	}
	if check.Timestamp.IsZero() {
		t.Error("expected generated timestamp")
	}
	if check.ClientName != "uptime-probe" {
		t.Errorf("client name: got %q", check.ClientName)
	}
	if len(repo.checks) != 1 {
		t.Fatalf("expected 1 persisted check, got %d", len(repo.checks))
	}
}

func TestCreate_EmptyClientName(t *testing.T) {
	svc := appsvcs.NewStatusService(&fakeStatusRepo{})

	if _, err := svc.Create(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty client name")
	}
}

func TestCreate_StoreErrorBubbles(t *testing.T) {
	repo := &fakeStatusRepo{insertErr: errors.New("write concern error")}
	svc := appsvcs.NewStatusService(repo)

	if _, err := svc.Create(context.Background(), "probe"); err == nil {
		t.Fatal("expected error when insert fails")
	}
}

func TestList_BoundedLimit(t *testing.T) {
	repo := &fakeStatusRepo{}
	svc := appsvcs.NewStatusService(repo)

	for range 3 {
		if _, err := svc.Create(context.Background(), "probe"); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	checks, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(checks) != 3 {
		t.Fatalf("expected 3 checks, got %d", len(checks))
	}
	if repo.lastLimit != appsvcs.ListLimit {
		t.Errorf("list limit: got %d, want %d", repo.lastLimit, appsvcs.ListLimit)
	}
}
