package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/Capp3/broadcast-flow-control-system/internal/model"
	"github.com/Capp3/broadcast-flow-control-system/internal/repository"
)

// ── mock UserRepository ──

type mockUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.ID == 0 {
		user.ID = m.nextID
		m.nextID++
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uint) error {
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

// ── mock ProfileRepository ──

// The GORM repositories preload their belongs-to associations; the
// mocks emulate that by resolving references against the sibling mocks
// on every read.

type mockProfileRepo struct {
	profiles map[uint]*model.Profile
	users    *mockUserRepo
	nextID   uint
}

func newMockProfileRepo(users *mockUserRepo) *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[uint]*model.Profile), users: users, nextID: 1}
}

func (m *mockProfileRepo) fill(p *model.Profile) *model.Profile {
	out := *p
	out.User = m.users.users[p.UserID]
	return &out
}

func (m *mockProfileRepo) Create(_ context.Context, profile *model.Profile) error {
	if profile.ID == 0 {
		profile.ID = m.nextID
		m.nextID++
	}
	m.profiles[profile.ID] = profile
	return nil
}

func (m *mockProfileRepo) GetByID(_ context.Context, id uint) (*model.Profile, error) {
	if p, ok := m.profiles[id]; ok {
		return m.fill(p), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfileRepo) List(_ context.Context) ([]model.Profile, error) {
	var result []model.Profile
	for _, p := range m.profiles {
		result = append(result, *m.fill(p))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockProfileRepo) Update(_ context.Context, profile *model.Profile) error {
	m.profiles[profile.ID] = profile
	return nil
}

func (m *mockProfileRepo) Delete(_ context.Context, id uint) error {
	delete(m.profiles, id)
	return nil
}

// ── mock LocationRepository ──

type mockLocationRepo struct {
	locations map[uint]*model.Location
	nextID    uint
}

func newMockLocationRepo() *mockLocationRepo {
	return &mockLocationRepo{locations: make(map[uint]*model.Location), nextID: 1}
}

func (m *mockLocationRepo) Create(_ context.Context, loc *model.Location) error {
	if loc.ID == 0 {
		loc.ID = m.nextID
		m.nextID++
	}
	m.locations[loc.ID] = loc
	return nil
}

func (m *mockLocationRepo) GetByID(_ context.Context, id uint) (*model.Location, error) {
	if l, ok := m.locations[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLocationRepo) List(_ context.Context) ([]model.Location, error) {
	var result []model.Location
	for _, l := range m.locations {
		result = append(result, *l)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockLocationRepo) Update(_ context.Context, loc *model.Location) error {
	m.locations[loc.ID] = loc
	return nil
}

func (m *mockLocationRepo) Delete(_ context.Context, id uint) error {
	delete(m.locations, id)
	return nil
}

// ── mock FacilityRepository ──

type mockFacilityRepo struct {
	facilities map[uint]*model.Facility
	locations  *mockLocationRepo
	nextID     uint
}

func newMockFacilityRepo(locations *mockLocationRepo) *mockFacilityRepo {
	return &mockFacilityRepo{facilities: make(map[uint]*model.Facility), locations: locations, nextID: 1}
}

func (m *mockFacilityRepo) fill(f *model.Facility) *model.Facility {
	out := *f
	out.Location = m.locations.locations[f.LocationID]
	return &out
}

func (m *mockFacilityRepo) Create(_ context.Context, facility *model.Facility) error {
	if facility.ID == 0 {
		facility.ID = m.nextID
		m.nextID++
	}
	m.facilities[facility.ID] = facility
	return nil
}

func (m *mockFacilityRepo) GetByID(_ context.Context, id uint) (*model.Facility, error) {
	if f, ok := m.facilities[id]; ok {
		return m.fill(f), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFacilityRepo) List(_ context.Context) ([]model.Facility, error) {
	var result []model.Facility
	for _, f := range m.facilities {
		result = append(result, *m.fill(f))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockFacilityRepo) Update(_ context.Context, facility *model.Facility) error {
	m.facilities[facility.ID] = facility
	return nil
}

func (m *mockFacilityRepo) Delete(_ context.Context, id uint) error {
	delete(m.facilities, id)
	return nil
}

// ── mock ShiftRepository ──

type mockShiftRepo struct {
	shifts map[uint]*model.Shift
	nextID uint
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{shifts: make(map[uint]*model.Shift), nextID: 1}
}

func (m *mockShiftRepo) Create(_ context.Context, shift *model.Shift) error {
	if shift.ID == 0 {
		shift.ID = m.nextID
		m.nextID++
	}
	m.shifts[shift.ID] = shift
	return nil
}

func (m *mockShiftRepo) GetByID(_ context.Context, id uint) (*model.Shift, error) {
	if s, ok := m.shifts[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftRepo) List(_ context.Context) ([]model.Shift, error) {
	var result []model.Shift
	for _, s := range m.shifts {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockShiftRepo) Update(_ context.Context, shift *model.Shift) error {
	m.shifts[shift.ID] = shift
	return nil
}

func (m *mockShiftRepo) Delete(_ context.Context, id uint) error {
	delete(m.shifts, id)
	return nil
}

// ── mock IncidentTypeRepository ──

type mockIncidentTypeRepo struct {
	types  map[uint]*model.IncidentType
	nextID uint
}

func newMockIncidentTypeRepo() *mockIncidentTypeRepo {
	return &mockIncidentTypeRepo{types: make(map[uint]*model.IncidentType), nextID: 1}
}

func (m *mockIncidentTypeRepo) Create(_ context.Context, it *model.IncidentType) error {
	if it.ID == 0 {
		it.ID = m.nextID
		m.nextID++
	}
	m.types[it.ID] = it
	return nil
}

func (m *mockIncidentTypeRepo) GetByID(_ context.Context, id uint) (*model.IncidentType, error) {
	if it, ok := m.types[id]; ok {
		return it, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockIncidentTypeRepo) List(_ context.Context) ([]model.IncidentType, error) {
	var result []model.IncidentType
	for _, it := range m.types {
		result = append(result, *it)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockIncidentTypeRepo) Update(_ context.Context, it *model.IncidentType) error {
	m.types[it.ID] = it
	return nil
}

func (m *mockIncidentTypeRepo) Delete(_ context.Context, id uint) error {
	delete(m.types, id)
	return nil
}

// ── mock IncidentTicketRepository ──

type mockIncidentTicketRepo struct {
	tickets    map[uint]*model.IncidentTicket
	users      *mockUserRepo
	types      *mockIncidentTypeRepo
	facilities *mockFacilityRepo
	nextID     uint
}

func newMockIncidentTicketRepo(users *mockUserRepo, types *mockIncidentTypeRepo, facilities *mockFacilityRepo) *mockIncidentTicketRepo {
	return &mockIncidentTicketRepo{
		tickets:    make(map[uint]*model.IncidentTicket),
		users:      users,
		types:      types,
		facilities: facilities,
		nextID:     1,
	}
}

func (m *mockIncidentTicketRepo) fill(t *model.IncidentTicket) *model.IncidentTicket {
	out := *t
	out.CreatedBy = m.users.users[t.CreatedByID]
	if t.AssignedToID != nil {
		out.AssignedTo = m.users.users[*t.AssignedToID]
	} else {
		out.AssignedTo = nil
	}
	out.IncidentType = m.types.types[t.IncidentTypeID]
	if f, ok := m.facilities.facilities[t.FacilityID]; ok {
		out.Facility = m.facilities.fill(f)
	}
	return &out
}

func (m *mockIncidentTicketRepo) Create(_ context.Context, ticket *model.IncidentTicket) error {
	if ticket.ID == 0 {
		ticket.ID = m.nextID
		m.nextID++
	}
	m.tickets[ticket.ID] = ticket
	return nil
}

func (m *mockIncidentTicketRepo) GetByID(_ context.Context, id uint) (*model.IncidentTicket, error) {
	if t, ok := m.tickets[id]; ok {
		return m.fill(t), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockIncidentTicketRepo) List(_ context.Context) ([]model.IncidentTicket, error) {
	var result []model.IncidentTicket
	for _, t := range m.tickets {
		result = append(result, *m.fill(t))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockIncidentTicketRepo) Update(_ context.Context, ticket *model.IncidentTicket) error {
	m.tickets[ticket.ID] = ticket
	return nil
}

func (m *mockIncidentTicketRepo) Delete(_ context.Context, id uint) error {
	delete(m.tickets, id)
	return nil
}

// ── mock ServiceTicketRepository ──

type mockServiceTicketRepo struct {
	tickets    map[uint]*model.ServiceTicket
	users      *mockUserRepo
	facilities *mockFacilityRepo
	nextID     uint
}

func newMockServiceTicketRepo(users *mockUserRepo, facilities *mockFacilityRepo) *mockServiceTicketRepo {
	return &mockServiceTicketRepo{
		tickets:    make(map[uint]*model.ServiceTicket),
		users:      users,
		facilities: facilities,
		nextID:     1,
	}
}

func (m *mockServiceTicketRepo) fill(t *model.ServiceTicket) *model.ServiceTicket {
	out := *t
	out.CreatedBy = m.users.users[t.CreatedByID]
	if t.AssignedToID != nil {
		out.AssignedTo = m.users.users[*t.AssignedToID]
	} else {
		out.AssignedTo = nil
	}
	if f, ok := m.facilities.facilities[t.FacilityID]; ok {
		out.Facility = m.facilities.fill(f)
	}
	return &out
}

func (m *mockServiceTicketRepo) Create(_ context.Context, ticket *model.ServiceTicket) error {
	if ticket.ID == 0 {
		ticket.ID = m.nextID
		m.nextID++
	}
	m.tickets[ticket.ID] = ticket
	return nil
}

func (m *mockServiceTicketRepo) GetByID(_ context.Context, id uint) (*model.ServiceTicket, error) {
	if t, ok := m.tickets[id]; ok {
		return m.fill(t), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockServiceTicketRepo) List(_ context.Context) ([]model.ServiceTicket, error) {
	var result []model.ServiceTicket
	for _, t := range m.tickets {
		result = append(result, *m.fill(t))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockServiceTicketRepo) Update(_ context.Context, ticket *model.ServiceTicket) error {
	m.tickets[ticket.ID] = ticket
	return nil
}

func (m *mockServiceTicketRepo) Delete(_ context.Context, id uint) error {
	delete(m.tickets, id)
	return nil
}

// ── mock TimeEntryRepository ──

type mockTimeEntryRepo struct {
	entries   map[uint]*model.TimeEntry
	users     *mockUserRepo
	locations *mockLocationRepo
	nextID    uint
}

func newMockTimeEntryRepo(users *mockUserRepo, locations *mockLocationRepo) *mockTimeEntryRepo {
	return &mockTimeEntryRepo{
		entries:   make(map[uint]*model.TimeEntry),
		users:     users,
		locations: locations,
		nextID:    1,
	}
}

func (m *mockTimeEntryRepo) fill(e *model.TimeEntry) *model.TimeEntry {
	out := *e
	out.User = m.users.users[e.UserID]
	out.Location = m.locations.locations[e.LocationID]
	return &out
}

func (m *mockTimeEntryRepo) Create(_ context.Context, entry *model.TimeEntry) error {
	if entry.ID == 0 {
		entry.ID = m.nextID
		m.nextID++
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *mockTimeEntryRepo) GetByID(_ context.Context, id uint) (*model.TimeEntry, error) {
	if e, ok := m.entries[id]; ok {
		return m.fill(e), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimeEntryRepo) List(_ context.Context, userID *uint) ([]model.TimeEntry, error) {
	var result []model.TimeEntry
	for _, e := range m.entries {
		if userID != nil && e.UserID != *userID {
			continue
		}
		result = append(result, *m.fill(e))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockTimeEntryRepo) Update(_ context.Context, entry *model.TimeEntry) error {
	m.entries[entry.ID] = entry
	return nil
}

func (m *mockTimeEntryRepo) Delete(_ context.Context, id uint) error {
	delete(m.entries, id)
	return nil
}

// ── mock ScheduledEventRepository ──

type mockScheduledEventRepo struct {
	events     map[uint]*model.ScheduledEvent
	attendees  map[uint][]uint
	users      *mockUserRepo
	facilities *mockFacilityRepo
	nextID     uint
}

func newMockScheduledEventRepo(users *mockUserRepo, facilities *mockFacilityRepo) *mockScheduledEventRepo {
	return &mockScheduledEventRepo{
		events:     make(map[uint]*model.ScheduledEvent),
		attendees:  make(map[uint][]uint),
		users:      users,
		facilities: facilities,
		nextID:     1,
	}
}

func (m *mockScheduledEventRepo) fill(e *model.ScheduledEvent) *model.ScheduledEvent {
	out := *e
	out.Users = nil
	for _, uid := range m.attendees[e.ID] {
		if u, ok := m.users.users[uid]; ok {
			out.Users = append(out.Users, *u)
		} else {
			out.Users = append(out.Users, model.User{ID: uid})
		}
	}
	if f, ok := m.facilities.facilities[e.FacilityID]; ok {
		out.Facility = m.facilities.fill(f)
	}
	return &out
}

func (m *mockScheduledEventRepo) Create(_ context.Context, event *model.ScheduledEvent, userIDs []uint) error {
	if event.ID == 0 {
		event.ID = m.nextID
		m.nextID++
	}
	m.events[event.ID] = event
	m.attendees[event.ID] = append([]uint(nil), userIDs...)
	return nil
}

func (m *mockScheduledEventRepo) GetByID(_ context.Context, id uint) (*model.ScheduledEvent, error) {
	if e, ok := m.events[id]; ok {
		return m.fill(e), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduledEventRepo) List(_ context.Context, filter repository.EventFilter) ([]model.ScheduledEvent, error) {
	var result []model.ScheduledEvent
	for id, e := range m.events {
		if filter.UserID != nil {
			member := false
			for _, uid := range m.attendees[id] {
				if uid == *filter.UserID {
					member = true
					break
				}
			}
			if !member {
				continue
			}
		}
		if filter.WindowStart != nil && filter.WindowEnd != nil {
			if e.StartTime.Before(*filter.WindowStart) || e.EndTime.After(*filter.WindowEnd) {
				continue
			}
		}
		result = append(result, *m.fill(e))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockScheduledEventRepo) Update(_ context.Context, event *model.ScheduledEvent, userIDs []uint) error {
	if userIDs != nil {
		m.attendees[event.ID] = append([]uint(nil), userIDs...)
	}
	m.events[event.ID] = event
	return nil
}

func (m *mockScheduledEventRepo) Delete(_ context.Context, id uint) error {
	delete(m.events, id)
	delete(m.attendees, id)
	return nil
}

// ── mock TimeOffRepository ──

type mockTimeOffRepo struct {
	requests map[uint]*model.TimeOffRequest
	users    *mockUserRepo
	nextID   uint
}

func newMockTimeOffRepo(users *mockUserRepo) *mockTimeOffRepo {
	return &mockTimeOffRepo{
		requests: make(map[uint]*model.TimeOffRequest),
		users:    users,
		nextID:   1,
	}
}

func (m *mockTimeOffRepo) fill(r *model.TimeOffRequest) *model.TimeOffRequest {
	out := *r
	out.User = m.users.users[r.UserID]
	out.ReviewedBy = nil
	if r.ReviewedByID != nil {
		out.ReviewedBy = m.users.users[*r.ReviewedByID]
	}
	return &out
}

func (m *mockTimeOffRepo) Create(_ context.Context, req *model.TimeOffRequest) error {
	if req.ID == 0 {
		req.ID = m.nextID
		m.nextID++
	}
	m.requests[req.ID] = req
	return nil
}

func (m *mockTimeOffRepo) GetByID(_ context.Context, id uint) (*model.TimeOffRequest, error) {
	if r, ok := m.requests[id]; ok {
		return m.fill(r), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimeOffRepo) List(_ context.Context, userID *uint) ([]model.TimeOffRequest, error) {
	var result []model.TimeOffRequest
	for _, r := range m.requests {
		if userID != nil && r.UserID != *userID {
			continue
		}
		result = append(result, *m.fill(r))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockTimeOffRepo) Update(_ context.Context, req *model.TimeOffRequest) error {
	m.requests[req.ID] = req
	return nil
}

func (m *mockTimeOffRepo) Delete(_ context.Context, id uint) error {
	delete(m.requests, id)
	return nil
}

// newMockRepository builds the full aggregate over fresh mocks. Mocks that
// preload associations get references to their sibling stores.
func newMockRepository() *repository.Repository {
	users := newMockUserRepo()
	locations := newMockLocationRepo()
	types := newMockIncidentTypeRepo()
	facilities := newMockFacilityRepo(locations)
	return &repository.Repository{
		User:           users,
		Profile:        newMockProfileRepo(users),
		Location:       locations,
		Facility:       facilities,
		Shift:          newMockShiftRepo(),
		IncidentType:   types,
		IncidentTicket: newMockIncidentTicketRepo(users, types, facilities),
		ServiceTicket:  newMockServiceTicketRepo(users, facilities),
		TimeEntry:      newMockTimeEntryRepo(users, locations),
		ScheduledEvent: newMockScheduledEventRepo(users, facilities),
		TimeOff:        newMockTimeOffRepo(users),
	}
}
