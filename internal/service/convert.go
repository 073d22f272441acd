package service

import (
	"fmt"
	"time"

	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
	"github.com/Capp3/broadcast-flow-control-system/internal/model"
)

// ── model → response mapping ──

func toUserResponse(u *model.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsStaff:   u.IsStaff,
	}
}

func toLocationResponse(l *model.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:       l.ID,
		Name:     l.Name,
		Address:  l.Address,
		City:     l.City,
		State:    l.State,
		ZipCode:  l.ZipCode,
		Country:  l.Country,
		IsActive: l.IsActive,
	}
}

func toFacilityResponse(f *model.Facility) *dto.FacilityResponse {
	if f == nil {
		return nil
	}
	return &dto.FacilityResponse{
		ID:           f.ID,
		Name:         f.Name,
		Location:     toLocationResponse(f.Location),
		FacilityType: f.FacilityType,
		Capacity:     f.Capacity,
		IsActive:     f.IsActive,
	}
}

func toIncidentTypeResponse(it *model.IncidentType) *dto.IncidentTypeResponse {
	if it == nil {
		return nil
	}
	return &dto.IncidentTypeResponse{
		ID:            it.ID,
		Name:          it.Name,
		Description:   it.Description,
		PriorityLevel: it.PriorityLevel,
		IsActive:      it.IsActive,
	}
}

// ── wire formatting ──

func fmtDate(t time.Time) string {
	return t.Format(dto.DateLayout)
}

func fmtDateTime(t time.Time) string {
	return t.UTC().Format(dto.DateTimeLayout)
}

func fmtDateTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := fmtDateTime(*t)
	return &s
}

// ── wire parsing ──
// Binding has already checked the layouts; a parse failure here still
// surfaces as a validation error rather than a 500.

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrValidation, s)
	}
	return t, nil
}

func parseDateTime(s string) (time.Time, error) {
	t, err := time.Parse(dto.DateTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid timestamp %q", ErrValidation, s)
	}
	return t, nil
}

// refErr reports an unresolvable foreign-key reference.
func refErr(field string, id uint) error {
	return fmt.Errorf("%w: %s %d does not exist", ErrValidation, field, id)
}
