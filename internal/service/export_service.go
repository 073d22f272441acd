package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Capp3/broadcast-flow-control-system/internal/model"
	"github.com/Capp3/broadcast-flow-control-system/internal/repository"
)

// Export formats.
const (
	ExportFormatXLSX = "xlsx"
	ExportFormatICS  = "ics"
)

// ExportService renders the roster as a downloadable document.
type ExportService interface {
	// Schedule returns the file body, its suggested filename and its
	// media type. The window applies only when both bounds are present.
	Schedule(ctx context.Context, format, startDate, endDate string) (*bytes.Buffer, string, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService builds the ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) Schedule(ctx context.Context, format, startDate, endDate string) (*bytes.Buffer, string, string, error) {
	filter := repository.EventFilter{}
	if startDate != "" && endDate != "" {
		start, err := parseDate(startDate)
		if err != nil {
			return nil, "", "", err
		}
		end, err := parseDate(endDate)
		if err != nil {
			return nil, "", "", err
		}
		filter.WindowStart = &start
		filter.WindowEnd = &end
	}

	events, err := s.repo.ScheduledEvent.List(ctx, filter)
	if err != nil {
		s.logger.Error("list events for export failed", zap.Error(err))
		return nil, "", "", err
	}

	stamp := time.Now().Format("20060102")
	switch format {
	case ExportFormatXLSX:
		buf, err := renderScheduleXLSX(events)
		if err != nil {
			s.logger.Error("render xlsx failed", zap.Error(err))
			return nil, "", "", err
		}
		return buf, fmt.Sprintf("schedule_%s.xlsx", stamp),
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	case ExportFormatICS:
		return renderScheduleICS(events), fmt.Sprintf("schedule_%s.ics", stamp), "text/calendar", nil
	default:
		return nil, "", "", fmt.Errorf("%w: unknown format %q", ErrValidation, format)
	}
}

func renderScheduleXLSX(events []model.ScheduledEvent) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Schedule"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"ID", "Title", "Type", "Start", "End", "Facility", "Attendees", "Notes"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, e := range events {
		facility := ""
		if e.Facility != nil {
			facility = e.Facility.Name
		}
		attendees := make([]string, 0, len(e.Users))
		for _, u := range e.Users {
			attendees = append(attendees, u.Username)
		}

		values := []interface{}{
			e.ID, e.Title, e.EventType,
			fmtDateTime(e.StartTime), fmtDateTime(e.EndTime),
			facility, strings.Join(attendees, ", "), e.Notes,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f.WriteToBuffer()
}

func renderScheduleICS(events []model.ScheduledEvent) *bytes.Buffer {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Broadcast Flow Control System//Schedule//EN")

	for i := range events {
		e := &events[i]
		ve := cal.AddEvent(fmt.Sprintf("event-%d@bfcs", e.ID))
		ve.SetCreatedTime(e.CreatedAt)
		ve.SetDtStampTime(e.UpdatedAt)
		ve.SetStartAt(e.StartTime)
		ve.SetEndAt(e.EndTime)
		ve.SetSummary(e.Title)
		ve.SetProperty(ics.ComponentPropertyCategories, e.EventType)
		if e.Notes != "" {
			ve.SetDescription(e.Notes)
		}
		if e.Facility != nil {
			ve.SetLocation(e.Facility.Name)
		}
	}

	return bytes.NewBufferString(cal.Serialize())
}
