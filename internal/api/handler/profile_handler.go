package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
	"github.com/Capp3/broadcast-flow-control-system/internal/service"
	"github.com/Capp3/broadcast-flow-control-system/pkg/response"
)

// ProfileHandler is the employment profile HTTP handler.
type ProfileHandler struct {
	profileSvc service.ProfileService
}

// NewProfileHandler creates the ProfileHandler.
func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

// ListProfiles lists all employment profiles.
// GET /api/profiles/
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profileSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, profiles)
}

// GetProfile fetches one profile.
// GET /api/profiles/:id/
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	profile, err := h.profileSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleProfileError(c, err)
		return
	}
	response.OK(c, profile)
}

// CreateProfile creates a profile.
// POST /api/profiles/
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req dto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	profile, err := h.profileSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleProfileError(c, err)
		return
	}
	response.Created(c, profile)
}

// UpdateProfile applies a full or partial update.
// PUT/PATCH /api/profiles/:id/
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	profile, err := h.profileSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleProfileError(c, err)
		return
	}
	response.OK(c, profile)
}

// DeleteProfile removes a profile.
// DELETE /api/profiles/:id/
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.profileSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleProfileError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *ProfileHandler) handleProfileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProfileNotFound):
		response.NotFound(c, 11001, "profile not found")
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, 10001, err.Error())
	default:
		response.InternalError(c)
	}
}
