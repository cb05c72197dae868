//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"studiobook/internal/handler/api"
	reqdto "studiobook/internal/handler/dto/request"
	resdto "studiobook/internal/handler/dto/response"
	"studiobook/internal/infra"
	"studiobook/internal/usecase/commands"
	"studiobook/internal/usecase/queries"
	"studiobook/tests/common/httptest"
	"studiobook/tests/common/testutil"
	commandsmock "studiobook/tests/mock/commands"
	queriesmock "studiobook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testDay = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

type EventHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockEventCommands
	mockQueries  *queriesmock.MockEventQueries
	handler      *api.EventHandler
	orgID        uuid.UUID
}

func (s *EventHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockEventCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEventQueries(s.mockCtrl)
	s.handler = api.NewEventHandler(s.mockCommands, s.mockQueries)
	s.orgID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("org_id", s.orgID)
		c.Set("user_role", "staff")
		c.Next()
	}

	s.router.POST("/events", authMiddleware, s.handler.CreateEvent)
	s.router.GET("/events", authMiddleware, s.handler.ListEvents)
	s.router.GET("/events/:id", authMiddleware, s.handler.GetEvent)
	s.router.PUT("/events/:id", authMiddleware, s.handler.UpdateEvent)
	s.router.DELETE("/events/:id", authMiddleware, s.handler.DeleteEvent)
}

func (s *EventHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEventHandlerSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}

func (s *EventHandlerTestSuite) eventView(id, resourceID uuid.UUID) *queries.EventView {
	return &queries.EventView{
		ID:             id,
		ResourceID:     resourceID,
		ResourceName:   "Studio A",
		Title:          "Morning Yoga",
		StartsAt:       testDay.Add(10 * time.Hour),
		EndsAt:         testDay.Add(11 * time.Hour),
		Kind:           "group",
		Capacity:       10,
		ConfirmedCount: 3,
		Remaining:      7,
		CreatedAt:      testDay,
		UpdatedAt:      testDay,
	}
}

// ================================================================================
// TestCreateEvent
// ================================================================================

func (s *EventHandlerTestSuite) TestCreateEvent() {
	url := "/events"
	resourceID := uuid.New()

	reqBody := reqdto.CreateEventRequest{
		ResourceID: resourceID,
		Title:      "Morning Yoga",
		StartsAt:   testDay.Add(10 * time.Hour),
		EndsAt:     testDay.Add(11 * time.Hour),
		Capacity:   10,
		Kind:       "group",
	}
	returnView := s.eventView(uuid.New(), resourceID)
	expectedResult := &commands.CreateEventResult{EventID: returnView.ID}

	s.Run("success: returns 201 Created with EventResponse", func() {
		s.mockCommands.EXPECT().CreateEvent(gomock.Any(), gomock.Any(), s.orgID).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.orgID, returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.EventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Remaining, response.Remaining)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: resource_id (required)", mutate: testutil.Field("resource_id", nil)},
			{name: "missing field: title (required)", mutate: testutil.Field("title", nil)},
			{name: "missing field: starts_at (required)", mutate: testutil.Field("starts_at", nil)},
			{name: "missing field: ends_at (required)", mutate: testutil.Field("ends_at", nil)},
			{name: "missing field: kind (required)", mutate: testutil.Field("kind", nil)},
			{name: "invalid kind", mutate: testutil.Field("kind", "weekly")},
			{name: "negative capacity", mutate: testutil.Field("capacity", -1)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "resource not found",
				commandsError:  commands.ErrResourceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Resource not found",
			},
			{
				name:           "schedule conflict",
				commandsError:  commands.ErrScheduleConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already occupied",
			},
			{
				name:           "invalid time slot",
				commandsError:  commands.ErrInvalidTimeSlot,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid time slot",
			},
			{
				name:           "domain validation error",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateEvent(gomock.Any(), gomock.Any(), s.orgID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdateEvent
// ================================================================================

func (s *EventHandlerTestSuite) TestUpdateEvent() {
	eventID := uuid.New()
	resourceID := uuid.New()
	url := "/events/" + eventID.String()

	reqBody := reqdto.UpdateEventRequest{
		ResourceID: resourceID,
		Title:      "Evening Yoga",
		StartsAt:   testDay.Add(18 * time.Hour),
		EndsAt:     testDay.Add(19 * time.Hour),
		Capacity:   12,
	}
	returnView := s.eventView(eventID, resourceID)

	s.Run("success: returns 200 OK with the refreshed view", func() {
		s.mockCommands.EXPECT().UpdateEvent(gomock.Any(), eventID, gomock.Any(), s.orgID).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.orgID, eventID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response resdto.EventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(eventID, response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/events/invalid-uuid", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid event ID")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "event not found",
				commandsError:  commands.ErrEventNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Event not found",
			},
			{
				name:           "schedule conflict",
				commandsError:  commands.ErrScheduleConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already occupied",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateEvent(gomock.Any(), eventID, gomock.Any(), s.orgID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDeleteEvent
// ================================================================================

func (s *EventHandlerTestSuite) TestDeleteEvent() {
	eventID := uuid.New()
	url := "/events/" + eventID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteEvent(gomock.Any(), eventID, s.orgID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/events/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid event ID")
	})

	s.Run("error: 404 Not Found for missing event", func() {
		s.mockCommands.EXPECT().DeleteEvent(gomock.Any(), eventID, s.orgID).
			Return(commands.ErrEventNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Event not found")
	})
}

// ================================================================================
// TestGetEvent
// ================================================================================

func (s *EventHandlerTestSuite) TestGetEvent() {
	eventID := uuid.New()
	url := "/events/" + eventID.String()

	returnView := s.eventView(eventID, uuid.New())

	s.Run("success: returns 200 OK with EventResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.orgID, eventID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.EventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(eventID, response.ID)
		s.Equal(returnView.ConfirmedCount, response.ConfirmedCount)
		s.Equal(returnView.Remaining, response.Remaining)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid event ID")
	})

	s.Run("error: 404 Not Found for missing event", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.orgID, eventID).
			Return(nil, infra.WrapRepoErr("event not found", nil, infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Event not found")
	})

	s.Run("error: 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.orgID, eventID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestListEvents
// ================================================================================

func (s *EventHandlerTestSuite) TestListEvents() {
	resourceID := uuid.New()
	baseURL := "/events?resource_id=" + resourceID.String()

	items := []*queries.EventListItem{
		{ID: uuid.New(), ResourceID: resourceID, Title: "Morning Yoga", Kind: "group", Capacity: 10, Remaining: 7},
		{ID: uuid.New(), ResourceID: resourceID, Title: "Evening Yoga", Kind: "group", Capacity: 10, Remaining: 10},
	}

	s.Run("success: returns events on the resource", func() {
		s.mockQueries.EXPECT().ListByResource(gomock.Any(), s.orgID, resourceID, time.Time{}, time.Time{}).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")

		var response []resdto.EventListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(items[0].ID, response[0].ID)
	})

	s.Run("success: range bounds are passed through", func() {
		from := testDay.Add(8 * time.Hour)
		to := testDay.Add(20 * time.Hour)
		url := baseURL + "&from=" + from.Format(time.RFC3339) + "&to=" + to.Format(time.RFC3339)

		s.mockQueries.EXPECT().ListByResource(gomock.Any(), s.orgID, resourceID, from, to).
			Return(items[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.EventListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 400 Bad Request when resource_id is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "resource_id")
	})

	s.Run("error: 400 Bad Request for malformed from timestamp", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"&from=yesterday", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid from timestamp")
	})

	s.Run("error: 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().ListByResource(gomock.Any(), s.orgID, resourceID, time.Time{}, time.Time{}).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
