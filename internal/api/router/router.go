package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Capp3/broadcast-flow-control-system/config"
	"github.com/Capp3/broadcast-flow-control-system/internal/api/handler"
	"github.com/Capp3/broadcast-flow-control-system/internal/api/middleware"
	"github.com/Capp3/broadcast-flow-control-system/pkg/redis"
	"github.com/Capp3/broadcast-flow-control-system/pkg/session"
)

const maxBodyBytes = 5 << 20 // uploads include calendar files

// Setup builds the Gin engine with the full route table.
func Setup(cfg *config.Config, h *handler.Handler, sessions session.Store, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.CSRF(sessions))
	{
		// session lifecycle, reachable without authentication
		api.GET("/csrf/", h.Auth.GetCSRF)
		api.POST("/auth/login/", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
		api.POST("/auth/logout/", h.Auth.Logout)

		authorized := api.Group("")
		authorized.Use(middleware.RequireSession(sessions))
		{
			authorized.GET("/auth/user/", h.Auth.CurrentUser)

			authorized.POST("/send-email/", h.Email.SendEmail)

			profiles := authorized.Group("/profiles")
			{
				profiles.GET("/", h.Profile.ListProfiles)
				profiles.POST("/", h.Profile.CreateProfile)
				profiles.GET("/:id/", h.Profile.GetProfile)
				profiles.PUT("/:id/", h.Profile.UpdateProfile)
				profiles.PATCH("/:id/", h.Profile.UpdateProfile)
				profiles.DELETE("/:id/", h.Profile.DeleteProfile)
			}

			locations := authorized.Group("/locations")
			{
				locations.GET("/", h.Location.ListLocations)
				locations.POST("/", h.Location.CreateLocation)
				locations.GET("/:id/", h.Location.GetLocation)
				locations.PUT("/:id/", h.Location.UpdateLocation)
				locations.PATCH("/:id/", h.Location.UpdateLocation)
				locations.DELETE("/:id/", h.Location.DeleteLocation)
			}

			facilities := authorized.Group("/facilities")
			{
				facilities.GET("/", h.Facility.ListFacilities)
				facilities.POST("/", h.Facility.CreateFacility)
				facilities.GET("/:id/", h.Facility.GetFacility)
				facilities.PUT("/:id/", h.Facility.UpdateFacility)
				facilities.PATCH("/:id/", h.Facility.UpdateFacility)
				facilities.DELETE("/:id/", h.Facility.DeleteFacility)
			}

			shifts := authorized.Group("/shifts")
			{
				shifts.GET("/", h.Shift.ListShifts)
				shifts.POST("/", h.Shift.CreateShift)
				shifts.GET("/:id/", h.Shift.GetShift)
				shifts.PUT("/:id/", h.Shift.UpdateShift)
				shifts.PATCH("/:id/", h.Shift.UpdateShift)
				shifts.DELETE("/:id/", h.Shift.DeleteShift)
			}

			incidentTypes := authorized.Group("/incident-types")
			{
				incidentTypes.GET("/", h.IncidentType.ListIncidentTypes)
				incidentTypes.POST("/", h.IncidentType.CreateIncidentType)
				incidentTypes.GET("/:id/", h.IncidentType.GetIncidentType)
				incidentTypes.PUT("/:id/", h.IncidentType.UpdateIncidentType)
				incidentTypes.PATCH("/:id/", h.IncidentType.UpdateIncidentType)
				incidentTypes.DELETE("/:id/", h.IncidentType.DeleteIncidentType)
			}

			incidentTickets := authorized.Group("/incident-tickets")
			{
				incidentTickets.GET("/", h.IncidentTicket.ListIncidentTickets)
				incidentTickets.POST("/", h.IncidentTicket.CreateIncidentTicket)
				incidentTickets.GET("/:id/", h.IncidentTicket.GetIncidentTicket)
				incidentTickets.PUT("/:id/", h.IncidentTicket.UpdateIncidentTicket)
				incidentTickets.PATCH("/:id/", h.IncidentTicket.UpdateIncidentTicket)
				incidentTickets.DELETE("/:id/", h.IncidentTicket.DeleteIncidentTicket)
			}

			serviceTickets := authorized.Group("/service-tickets")
			{
				serviceTickets.GET("/", h.ServiceTicket.ListServiceTickets)
				serviceTickets.POST("/", h.ServiceTicket.CreateServiceTicket)
				serviceTickets.GET("/:id/", h.ServiceTicket.GetServiceTicket)
				serviceTickets.PUT("/:id/", h.ServiceTicket.UpdateServiceTicket)
				serviceTickets.PATCH("/:id/", h.ServiceTicket.UpdateServiceTicket)
				serviceTickets.DELETE("/:id/", h.ServiceTicket.DeleteServiceTicket)
			}

			timeEntries := authorized.Group("/time-entries")
			{
				timeEntries.GET("/", h.TimeEntry.ListTimeEntries)
				timeEntries.POST("/", h.TimeEntry.CreateTimeEntry)
				timeEntries.GET("/:id/", h.TimeEntry.GetTimeEntry)
				timeEntries.PUT("/:id/", h.TimeEntry.UpdateTimeEntry)
				timeEntries.PATCH("/:id/", h.TimeEntry.UpdateTimeEntry)
				timeEntries.DELETE("/:id/", h.TimeEntry.DeleteTimeEntry)
			}

			scheduledEvents := authorized.Group("/scheduled-events")
			{
				scheduledEvents.GET("/", h.ScheduledEvent.ListScheduledEvents)
				scheduledEvents.POST("/", h.ScheduledEvent.CreateScheduledEvent)
				scheduledEvents.POST("/import/", h.ScheduledEvent.ImportScheduledEvents)
				scheduledEvents.GET("/:id/", h.ScheduledEvent.GetScheduledEvent)
				scheduledEvents.PUT("/:id/", h.ScheduledEvent.UpdateScheduledEvent)
				scheduledEvents.PATCH("/:id/", h.ScheduledEvent.UpdateScheduledEvent)
				scheduledEvents.DELETE("/:id/", h.ScheduledEvent.DeleteScheduledEvent)
			}

			timeOffRequests := authorized.Group("/time-off-requests")
			{
				timeOffRequests.GET("/", h.TimeOff.ListTimeOffRequests)
				timeOffRequests.POST("/", h.TimeOff.CreateTimeOffRequest)
				timeOffRequests.GET("/:id/", h.TimeOff.GetTimeOffRequest)
				timeOffRequests.PUT("/:id/", h.TimeOff.UpdateTimeOffRequest)
				timeOffRequests.PATCH("/:id/", h.TimeOff.UpdateTimeOffRequest)
				timeOffRequests.DELETE("/:id/", h.TimeOff.DeleteTimeOffRequest)
			}

			export := authorized.Group("/export")
			{
				export.GET("/schedule", h.Export.ExportSchedule)
			}
		}
	}

	return r
}
