package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/sos_tracking_system/internal/alert"
	"github.com/shenikar/sos_tracking_system/internal/config"
	"github.com/shenikar/sos_tracking_system/internal/route"
	"github.com/shenikar/sos_tracking_system/internal/service"
	"github.com/shenikar/sos_tracking_system/internal/store"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	rosterService service.RosterService
	alertService  service.AlertService
	routeService  service.RouteService
	hub           *alert.Hub
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(
	rosterService service.RosterService,
	alertService service.AlertService,
	routeService service.RouteService,
	hub *alert.Hub,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		rosterService: rosterService,
		alertService:  alertService,
		routeService:  routeService,
		hub:           hub,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// @Summary List tracked users
// @Description Get the full roster of tracked users with their latest known location and online status.
// @Tags Roster
// @Accept json
// @Produce json
// @Success 200 {array} UserResponse
// @Failure 503 {object} map[string]string "Roster unavailable"
// @Router /users [get]
func (h *Handler) listUsers(c *gin.Context) {
	log := h.logger.WithField("method", "listUsers")

	users, err := h.rosterService.ListUsers(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list users from service")
		if errors.Is(err, service.ErrServiceUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "roster unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToUserResponses(users))
}

// @Summary Get roster statistics
// @Description Get the number of users currently online.
// @Tags Roster
// @Accept json
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 503 {object} map[string]string "Roster unavailable"
// @Router /users/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	count, err := h.rosterService.CountOnline(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "roster unavailable"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{OnlineCount: count})
}

// @Summary Report a user location
// @Description Report the latest position of a user. A report older than the stored one is rejected.
// @Tags Roster
// @Accept json
// @Produce json
// @Param location body LocationReportRequest true "Location report"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 409 {object} map[string]string "Stale location report"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations [post]
func (h *Handler) reportLocation(c *gin.Context) {
	var input LocationReportRequest
	log := h.logger.WithField("method", "reportLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.rosterService.ReportLocation(c.Request.Context(), input.UserID, input.Latitude, input.Longitude, input.Timestamp)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrStaleTimestamp):
			log.WithField("user_id", input.UserID).Warn("Stale location report")
			c.JSON(http.StatusConflict, gin.H{"error": "stale location report"})
		case errors.Is(err, store.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, store.ErrInvalidCoordinate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordinate out of range"})
		default:
			log.WithError(err).Error("Failed to report location in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Update user presence
// @Description Set the online flag of a user independently of their location.
// @Tags Roster
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param presence body PresenceRequest true "Presence update"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid user ID or request body"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id}/presence [post]
func (h *Handler) setPresence(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	log := h.logger.WithField("method", "setPresence").WithField("id", id)

	var input PresenceRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.rosterService.SetPresence(c.Request.Context(), id, *input.IsOnline); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.WithError(err).Error("Failed to set presence in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Publish an SOS alert
// @Description Broadcast an SOS alert to all currently connected subscribers. Delivery is best-effort.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param alert body PublishAlertRequest true "SOS alert"
// @Success 202 {object} map[string]string "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [post]
func (h *Handler) publishAlert(c *gin.Context) {
	var input PublishAlertRequest
	log := h.logger.WithField("method", "publishAlert")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.alertService.PublishAlert(c.Request.Context(), DTOToAlertEvent(input)); err != nil {
		log.WithError(err).Error("Failed to publish alert in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// @Summary Compute a route
// @Description Compute a route between two coordinates via the external routing provider.
// @Tags Routes
// @Accept json
// @Produce json
// @Param route body ComputeRouteRequest true "Route request"
// @Success 200 {object} RouteResponse
// @Failure 400 {object} map[string]string "Missing endpoint, invalid coordinate or unsupported mode"
// @Failure 404 {object} map[string]string "No route between endpoints"
// @Failure 502 {object} map[string]string "Routing provider unavailable"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /routes [post]
func (h *Handler) computeRoute(c *gin.Context) {
	var input ComputeRouteRequest
	log := h.logger.WithField("method", "computeRoute")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.routeService.ComputeRoute(c.Request.Context(), DTOToRouteRequest(input))
	if err != nil {
		switch {
		case errors.Is(err, route.ErrMissingEndpoint):
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing route endpoint"})
		case errors.Is(err, route.ErrInvalidCoordinate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordinate out of range"})
		case errors.Is(err, route.ErrUnsupportedMode):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported travel mode"})
		case errors.Is(err, route.ErrNoRoute):
			c.JSON(http.StatusNotFound, gin.H{"error": "no route between endpoints"})
		case errors.Is(err, route.ErrProviderUnavailable):
			log.WithError(err).Warn("Routing provider unavailable")
			c.JSON(http.StatusBadGateway, gin.H{"error": "routing provider unavailable"})
		default:
			log.WithError(err).Error("Failed to compute route in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, ModelToRouteResponse(result))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
