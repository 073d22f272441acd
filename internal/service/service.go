package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Capp3/broadcast-flow-control-system/config"
	"github.com/Capp3/broadcast-flow-control-system/internal/repository"
	"github.com/Capp3/broadcast-flow-control-system/pkg/mailer"
	"github.com/Capp3/broadcast-flow-control-system/pkg/session"
)

// ErrValidation marks a write rejected for a field, enum or reference
// violation. Wrapped errors carry the concrete reason.
var ErrValidation = errors.New("validation failed")

// Service aggregates every business-logic interface.
type Service struct {
	Auth           AuthService
	Profile        ProfileService
	Location       LocationService
	Facility       FacilityService
	Shift          ShiftService
	IncidentType   IncidentTypeService
	IncidentTicket IncidentTicketService
	ServiceTicket  ServiceTicketService
	TimeEntry      TimeEntryService
	ScheduledEvent ScheduledEventService
	TimeOff        TimeOffService
	Email          EmailService
	Export         ExportService
}

// NewService wires every service over the shared dependencies.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	sessions session.Store,
	sender mailer.Sender,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:           NewAuthService(repo, sessions, logger),
		Profile:        NewProfileService(repo, logger),
		Location:       NewLocationService(repo, logger),
		Facility:       NewFacilityService(repo, logger),
		Shift:          NewShiftService(repo, logger),
		IncidentType:   NewIncidentTypeService(repo, logger),
		IncidentTicket: NewIncidentTicketService(repo, logger),
		ServiceTicket:  NewServiceTicketService(repo, logger),
		TimeEntry:      NewTimeEntryService(repo, logger),
		ScheduledEvent: NewScheduledEventService(repo, logger),
		TimeOff:        NewTimeOffService(repo, logger),
		Email:          NewEmailService(sender, logger),
		Export:         NewExportService(repo, logger),
	}
}
