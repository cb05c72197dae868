package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "studiobook/internal/handler/dto/request"
	resdto "studiobook/internal/handler/dto/response"
	"studiobook/internal/handler/middleware"
	"studiobook/internal/usecase/commands"
	"studiobook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	eventCommands commands.EventCommands
	eventQueries  queries.EventQueries
}

func NewEventHandler(eventCommands commands.EventCommands, eventQueries queries.EventQueries) *EventHandler {
	return &EventHandler{
		eventCommands: eventCommands,
		eventQueries:  eventQueries,
	}
}

// @Summary Create event
// @Description Schedule a new event on a resource
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEventRequest true "Event request"
// @Success 201 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	orgID, ok := middleware.GetOrgID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateEventRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.eventCommands.CreateEvent(c.Request.Context(), req.ToCommand(), orgID)
	if err != nil {
		h.respondEventError(c, err)
		return
	}

	view, err := h.eventQueries.GetByID(c.Request.Context(), orgID, result.EventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEventView(view))
}

// @Summary Update event
// @Description Reschedule or retitle an existing event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.UpdateEventRequest true "Event request"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	orgID, ok := middleware.GetOrgID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	var req reqdto.UpdateEventRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.eventCommands.UpdateEvent(c.Request.Context(), eventID, req.ToCommand(), orgID); err != nil {
		h.respondEventError(c, err)
		return
	}

	view, err := h.eventQueries.GetByID(c.Request.Context(), orgID, eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventView(view))
}

// @Summary Delete event
// @Description Delete an event and its bookings
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	orgID, ok := middleware.GetOrgID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	if err := h.eventCommands.DeleteEvent(c.Request.Context(), eventID, orgID); err != nil {
		h.respondEventError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get event
// @Description Get event by ID with confirmed seat usage
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	orgID, ok := middleware.GetOrgID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	view, err := h.eventQueries.GetByID(c.Request.Context(), orgID, eventID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEventNotFound) || isNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventView(view))
}

// @Summary List events
// @Description List events on a resource, optionally limited to a time range
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param resource_id query string true "Resource ID"
// @Param from query string false "Range lower bound (RFC3339)"
// @Param to query string false "Range upper bound (RFC3339)"
// @Success 200 {array} resdto.EventListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	orgID, ok := middleware.GetOrgID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resourceID, err := uuid.Parse(c.Query("resource_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing resource_id",
		})
		return
	}

	from, err := parseTimeParam(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid from timestamp",
		})
		return
	}
	to, err := parseTimeParam(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid to timestamp",
		})
		return
	}

	items, err := h.eventQueries.ListByResource(c.Request.Context(), orgID, resourceID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.EventListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromEventListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

func (h *EventHandler) respondEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Resource not found",
		})
	case errors.Is(err, commands.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Event not found",
		})
	case errors.Is(err, commands.ErrScheduleConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Resource is already occupied in this time window",
		})
	case errors.Is(err, commands.ErrInvalidTimeSlot):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time slot",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func parseTimeParam(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}
