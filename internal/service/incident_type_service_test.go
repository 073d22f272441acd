package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
)

func setupTestIncidentTypeService() IncidentTypeService {
	return NewIncidentTypeService(newMockRepository(), zap.NewNop())
}

func TestIncidentTypeService_Create_DefaultPriority(t *testing.T) {
	svc := setupTestIncidentTypeService()

	result, err := svc.Create(context.Background(), &dto.CreateIncidentTypeRequest{
		Name:        "Signal Loss",
		Description: "Carrier or program feed drops",
	})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if result.PriorityLevel != 2 {
		t.Errorf("expected default priority 2, got %d", result.PriorityLevel)
	}
	if !result.IsActive {
		t.Error("expected new incident type to be active")
	}
}

func TestIncidentTypeService_Update_Priority(t *testing.T) {
	svc := setupTestIncidentTypeService()

	created, err := svc.Create(context.Background(), &dto.CreateIncidentTypeRequest{
		Name:        "Signal Loss",
		Description: "Carrier or program feed drops",
	})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}

	priority := 1
	result, err := svc.Update(context.Background(), created.ID, &dto.UpdateIncidentTypeRequest{PriorityLevel: &priority})
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if result.PriorityLevel != 1 {
		t.Errorf("expected priority 1, got %d", result.PriorityLevel)
	}
	if result.Name != "Signal Loss" {
		t.Error("untouched fields must survive a partial update")
	}
}

func TestIncidentTypeService_GetByID_NotFound(t *testing.T) {
	svc := setupTestIncidentTypeService()

	if _, err := svc.GetByID(context.Background(), 404); !errors.Is(err, ErrIncidentTypeNotFound) {
		t.Errorf("expected ErrIncidentTypeNotFound, got: %v", err)
	}
}
