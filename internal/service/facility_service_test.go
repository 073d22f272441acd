package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
	"github.com/Capp3/broadcast-flow-control-system/internal/model"
	"github.com/Capp3/broadcast-flow-control-system/internal/repository"
)

func setupTestFacilityService() (FacilityService, *repository.Repository) {
	repo := newMockRepository()
	svc := NewFacilityService(repo, zap.NewNop())
	return svc, repo
}

func TestFacilityService_Create_Success(t *testing.T) {
	svc, repo := setupTestFacilityService()
	repo.Location.(*mockLocationRepo).locations[1] = &model.Location{ID: 1, Name: "Studio North", IsActive: true}

	result, err := svc.Create(context.Background(), &dto.CreateFacilityRequest{
		Name:         "Control Room A",
		LocationID:   1,
		FacilityType: "control_room",
	})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if result.Location == nil || result.Location.ID != 1 {
		t.Error("expected the location to be nested in the response")
	}
	if !result.IsActive {
		t.Error("expected new facility to be active")
	}
}

func TestFacilityService_Create_UnknownLocation(t *testing.T) {
	svc, _ := setupTestFacilityService()

	_, err := svc.Create(context.Background(), &dto.CreateFacilityRequest{
		Name:         "Control Room A",
		LocationID:   42,
		FacilityType: "control_room",
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for a dangling location reference, got: %v", err)
	}
}

func TestFacilityService_Update_MoveLocation(t *testing.T) {
	svc, repo := setupTestFacilityService()
	locRepo := repo.Location.(*mockLocationRepo)
	locRepo.locations[1] = &model.Location{ID: 1, Name: "Studio North", IsActive: true}
	locRepo.locations[2] = &model.Location{ID: 2, Name: "Studio South", IsActive: true}
	repo.Facility.(*mockFacilityRepo).facilities[1] = &model.Facility{
		ID: 1, Name: "Control Room A", LocationID: 1, FacilityType: "control_room", IsActive: true,
	}

	newLoc := uint(2)
	result, err := svc.Update(context.Background(), 1, &dto.UpdateFacilityRequest{LocationID: &newLoc})
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if result.ID != 1 {
		t.Errorf("expected facility 1, got %d", result.ID)
	}

	missing := uint(99)
	if _, err := svc.Update(context.Background(), 1, &dto.UpdateFacilityRequest{LocationID: &missing}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for unknown location, got: %v", err)
	}
}
