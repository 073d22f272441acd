package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	User           UserRepository
	Profile        ProfileRepository
	Location       LocationRepository
	Facility       FacilityRepository
	Shift          ShiftRepository
	IncidentType   IncidentTypeRepository
	IncidentTicket IncidentTicketRepository
	ServiceTicket  ServiceTicketRepository
	TimeEntry      TimeEntryRepository
	ScheduledEvent ScheduledEventRepository
	TimeOff        TimeOffRepository
}

// NewRepository wires every repository over one gorm.DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:           NewUserRepo(db),
		Profile:        NewProfileRepo(db),
		Location:       NewLocationRepo(db),
		Facility:       NewFacilityRepo(db),
		Shift:          NewShiftRepo(db),
		IncidentType:   NewIncidentTypeRepo(db),
		IncidentTicket: NewIncidentTicketRepo(db),
		ServiceTicket:  NewServiceTicketRepo(db),
		TimeEntry:      NewTimeEntryRepo(db),
		ScheduledEvent: NewScheduledEventRepo(db),
		TimeOff:        NewTimeOffRepo(db),
	}
}
