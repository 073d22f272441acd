package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Capp3/broadcast-flow-control-system/internal/model"
	"github.com/Capp3/broadcast-flow-control-system/internal/repository"
)

func setupTestExportService(t *testing.T) (ExportService, *repository.Repository) {
	t.Helper()

	repo := newMockRepository()
	repo.User.(*mockUserRepo).users[1] = &model.User{ID: 1, Username: "operator"}
	repo.Location.(*mockLocationRepo).locations[1] = &model.Location{ID: 1, Name: "Studio North"}
	repo.Facility.(*mockFacilityRepo).facilities[1] = &model.Facility{ID: 1, Name: "Control Room A", LocationID: 1}

	events := repo.ScheduledEvent.(*mockScheduledEventRepo)
	start := time.Date(2026, 9, 1, 6, 0, 0, 0, time.UTC)
	if err := events.Create(context.Background(), &model.ScheduledEvent{
		Title:      "Morning shift",
		EventType:  model.EventTypeShift,
		StartTime:  start,
		EndTime:    start.Add(8 * time.Hour),
		FacilityID: 1,
		Notes:      "handover at 14:00",
	}, []uint{1}); err != nil {
		t.Fatalf("seed event: %v", err)
	}

	svc := NewExportService(repo, zap.NewNop())
	return svc, repo
}

func TestExportService_Schedule_XLSX(t *testing.T) {
	svc, _ := setupTestExportService(t)

	buf, filename, contentType, err := svc.Schedule(context.Background(), ExportFormatXLSX, "", "")
	if err != nil {
		t.Fatalf("Schedule should succeed: %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("expected an .xlsx filename, got %q", filename)
	}
	if contentType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type %q", contentType)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("export must be a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Schedule")
	if err != nil {
		t.Fatalf("read Schedule sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected a header and one event row, got %d rows", len(rows))
	}
	if rows[1][1] != "Morning shift" {
		t.Errorf("expected the event title in the sheet, got %q", rows[1][1])
	}
	if rows[1][5] != "Control Room A" {
		t.Errorf("expected the facility name in the sheet, got %q", rows[1][5])
	}
	if rows[1][6] != "operator" {
		t.Errorf("expected the attendee list in the sheet, got %q", rows[1][6])
	}
}

func TestExportService_Schedule_ICS(t *testing.T) {
	svc, _ := setupTestExportService(t)

	buf, filename, contentType, err := svc.Schedule(context.Background(), ExportFormatICS, "", "")
	if err != nil {
		t.Fatalf("Schedule should succeed: %v", err)
	}
	if !strings.HasSuffix(filename, ".ics") {
		t.Errorf("expected an .ics filename, got %q", filename)
	}
	if contentType != "text/calendar" {
		t.Errorf("unexpected content type %q", contentType)
	}

	body := buf.String()
	for _, want := range []string{"BEGIN:VCALENDAR", "BEGIN:VEVENT", "SUMMARY:Morning shift", "LOCATION:Control Room A"} {
		if !strings.Contains(body, want) {
			t.Errorf("calendar export missing %q", want)
		}
	}
}

func TestExportService_Schedule_Window(t *testing.T) {
	svc, repo := setupTestExportService(t)

	far := time.Date(2026, 12, 24, 10, 0, 0, 0, time.UTC)
	events := repo.ScheduledEvent.(*mockScheduledEventRepo)
	if err := events.Create(context.Background(), &model.ScheduledEvent{
		Title:      "Holiday cover",
		EventType:  model.EventTypeShift,
		StartTime:  far,
		EndTime:    far.Add(8 * time.Hour),
		FacilityID: 1,
	}, []uint{1}); err != nil {
		t.Fatalf("seed event: %v", err)
	}

	buf, _, _, err := svc.Schedule(context.Background(), ExportFormatICS, "2026-09-01", "2026-09-02")
	if err != nil {
		t.Fatalf("Schedule should succeed: %v", err)
	}
	if strings.Contains(buf.String(), "Holiday cover") {
		t.Error("events outside the window must not be exported")
	}
}

func TestExportService_Schedule_UnknownFormat(t *testing.T) {
	svc, _ := setupTestExportService(t)

	if _, _, _, err := svc.Schedule(context.Background(), "pdf", "", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for an unknown format, got: %v", err)
	}
}
