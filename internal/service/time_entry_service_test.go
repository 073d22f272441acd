package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
	"github.com/Capp3/broadcast-flow-control-system/internal/model"
	"github.com/Capp3/broadcast-flow-control-system/internal/repository"
)

func setupTestTimeEntryService(t *testing.T) (TimeEntryService, *repository.Repository) {
	t.Helper()

	repo := newMockRepository()
	repo.User.(*mockUserRepo).users[1] = &model.User{ID: 1, Username: "operator"}
	repo.User.(*mockUserRepo).users[2] = &model.User{ID: 2, Username: "engineer"}
	repo.Location.(*mockLocationRepo).locations[1] = &model.Location{ID: 1, Name: "Studio North"}
	svc := NewTimeEntryService(repo, zap.NewNop())
	return svc, repo
}

func TestTimeEntryService_Create_DefaultTimestamp(t *testing.T) {
	svc, _ := setupTestTimeEntryService(t)

	before := time.Now().Add(-time.Minute)
	result, err := svc.Create(context.Background(), &dto.CreateTimeEntryRequest{
		UserID:     1,
		EntryType:  model.EntryTypeClockIn,
		LocationID: 1,
	})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}

	ts, err := time.Parse(dto.DateTimeLayout, result.Timestamp)
	if err != nil {
		t.Fatalf("timestamp should be well formed: %v", err)
	}
	if ts.Before(before) || ts.After(time.Now().Add(time.Minute)) {
		t.Errorf("an omitted timestamp must default to the server clock, got %v", ts)
	}
	if result.User == nil || result.User.Username != "operator" {
		t.Error("expected the user to be nested in the response")
	}
	if result.Location == nil || result.Location.Name != "Studio North" {
		t.Error("expected the location to be nested in the response")
	}
}

func TestTimeEntryService_Create_UnknownLocation(t *testing.T) {
	svc, _ := setupTestTimeEntryService(t)

	_, err := svc.Create(context.Background(), &dto.CreateTimeEntryRequest{
		UserID:     1,
		EntryType:  model.EntryTypeClockIn,
		LocationID: 42,
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for a dangling location reference, got: %v", err)
	}
}

func TestTimeEntryService_List_FilterByUser(t *testing.T) {
	svc, _ := setupTestTimeEntryService(t)

	for _, e := range []dto.CreateTimeEntryRequest{
		{UserID: 1, EntryType: model.EntryTypeClockIn, LocationID: 1},
		{UserID: 2, EntryType: model.EntryTypeClockIn, LocationID: 1},
		{UserID: 1, EntryType: model.EntryTypeClockOut, LocationID: 1},
	} {
		req := e
		if _, err := svc.Create(context.Background(), &req); err != nil {
			t.Fatalf("Create should succeed: %v", err)
		}
	}

	all, err := svc.List(context.Background(), &dto.TimeEntryListRequest{})
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 entries without a filter, got %d", len(all))
	}

	userID := uint(1)
	mine, err := svc.List(context.Background(), &dto.TimeEntryListRequest{UserID: &userID})
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 entries for user 1, got %d", len(mine))
	}
	for _, e := range mine {
		if e.User == nil || e.User.ID != 1 {
			t.Errorf("filtered listing leaked an entry for another user: %+v", e)
		}
	}
}

func TestTimeEntryService_Update_Partial(t *testing.T) {
	svc, _ := setupTestTimeEntryService(t)

	created, err := svc.Create(context.Background(), &dto.CreateTimeEntryRequest{
		UserID:     1,
		EntryType:  model.EntryTypeClockIn,
		Note:       "late start",
		LocationID: 1,
	})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}

	entryType := model.EntryTypeBreakStart
	result, err := svc.Update(context.Background(), created.ID, &dto.UpdateTimeEntryRequest{EntryType: &entryType})
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if result.EntryType != model.EntryTypeBreakStart {
		t.Errorf("expected entry type to change, got %q", result.EntryType)
	}
	if result.Note != "late start" {
		t.Errorf("untouched fields must survive a partial update, got note %q", result.Note)
	}
}
