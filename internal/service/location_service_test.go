package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
	"github.com/Capp3/broadcast-flow-control-system/internal/model"
)

func setupTestLocationService() (LocationService, *mockLocationRepo) {
	repo := newMockRepository()
	svc := NewLocationService(repo, zap.NewNop())
	return svc, repo.Location.(*mockLocationRepo)
}

func TestLocationService_Create_Defaults(t *testing.T) {
	svc, _ := setupTestLocationService()

	result, err := svc.Create(context.Background(), &dto.CreateLocationRequest{
		Name:    "Studio North",
		Address: "1 Broadcast Way",
		City:    "Portland",
		State:   "OR",
		ZipCode: "97201",
	})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if result.Country != "USA" {
		t.Errorf("expected country to default to USA, got %s", result.Country)
	}
	if !result.IsActive {
		t.Error("expected new location to be active")
	}
	if result.ID == 0 {
		t.Error("expected an assigned id")
	}
}

func TestLocationService_GetByID_NotFound(t *testing.T) {
	svc, _ := setupTestLocationService()

	_, err := svc.GetByID(context.Background(), 42)
	if !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("expected ErrLocationNotFound, got: %v", err)
	}
}

func TestLocationService_Update_Partial(t *testing.T) {
	svc, locRepo := setupTestLocationService()
	locRepo.locations[1] = &model.Location{
		ID: 1, Name: "Old Name", Address: "1 Broadcast Way",
		City: "Portland", State: "OR", ZipCode: "97201",
		Country: "USA", IsActive: true,
	}

	newName := "Studio South"
	result, err := svc.Update(context.Background(), 1, &dto.UpdateLocationRequest{Name: &newName})
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if result.Name != "Studio South" {
		t.Errorf("expected the name to change, got %s", result.Name)
	}
	// untouched fields survive a partial update
	if result.City != "Portland" {
		t.Errorf("expected city to be preserved, got %s", result.City)
	}
}

func TestLocationService_Delete_ThenGone(t *testing.T) {
	svc, locRepo := setupTestLocationService()
	locRepo.locations[1] = &model.Location{ID: 1, Name: "Studio North", IsActive: true}

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete should succeed: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), 1); !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("expected the location to be gone, got: %v", err)
	}
	if err := svc.Delete(context.Background(), 1); !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("expected ErrLocationNotFound on repeat delete, got: %v", err)
	}
}
