package handler

import (
	"github.com/Capp3/broadcast-flow-control-system/config"
	"github.com/Capp3/broadcast-flow-control-system/internal/service"
)

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth           *AuthHandler
	Profile        *ProfileHandler
	Location       *LocationHandler
	Facility       *FacilityHandler
	Shift          *ShiftHandler
	IncidentType   *IncidentTypeHandler
	IncidentTicket *IncidentTicketHandler
	ServiceTicket  *ServiceTicketHandler
	TimeEntry      *TimeEntryHandler
	ScheduledEvent *ScheduledEventHandler
	TimeOff        *TimeOffHandler
	Email          *EmailHandler
	Export         *ExportHandler
}

// NewHandler wires every handler over the service aggregate.
func NewHandler(svc *service.Service, cfg *config.Config) *Handler {
	return &Handler{
		Auth:           NewAuthHandler(svc.Auth).WithCookieConfig(cfg.Session),
		Profile:        NewProfileHandler(svc.Profile),
		Location:       NewLocationHandler(svc.Location),
		Facility:       NewFacilityHandler(svc.Facility),
		Shift:          NewShiftHandler(svc.Shift),
		IncidentType:   NewIncidentTypeHandler(svc.IncidentType),
		IncidentTicket: NewIncidentTicketHandler(svc.IncidentTicket),
		ServiceTicket:  NewServiceTicketHandler(svc.ServiceTicket),
		TimeEntry:      NewTimeEntryHandler(svc.TimeEntry),
		ScheduledEvent: NewScheduledEventHandler(svc.ScheduledEvent),
		TimeOff:        NewTimeOffHandler(svc.TimeOff),
		Email:          NewEmailHandler(svc.Email),
		Export:         NewExportHandler(svc.Export),
	}
}
