//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

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

type ResourceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockResourceCommands
	mockQueries  *queriesmock.MockResourceQueries
	handler      *api.ResourceHandler
	orgID        uuid.UUID
}

func (s *ResourceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockResourceCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockResourceQueries(s.mockCtrl)
	s.handler = api.NewResourceHandler(s.mockCommands, s.mockQueries)
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

	s.router.POST("/resources", authMiddleware, s.handler.CreateResource)
	s.router.GET("/resources", authMiddleware, s.handler.ListResources)
	s.router.GET("/resources/:id", authMiddleware, s.handler.GetResource)
}

func (s *ResourceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestResourceHandlerSuite(t *testing.T) {
	suite.Run(t, new(ResourceHandlerTestSuite))
}

// ================================================================================
// TestCreateResource
// ================================================================================

func (s *ResourceHandlerTestSuite) TestCreateResource() {
	url := "/resources"

	reqBody := reqdto.CreateResourceRequest{
		Name:     "Studio A",
		Capacity: 20,
	}
	returnView := &queries.ResourceView{
		ID:        uuid.New(),
		Name:      "Studio A",
		Capacity:  20,
		CreatedAt: testDay,
		UpdatedAt: testDay,
	}
	expectedResult := &commands.CreateResourceResult{ResourceID: returnView.ID}

	s.Run("success: returns 201 Created with ResourceResponse", func() {
		s.mockCommands.EXPECT().CreateResource(gomock.Any(), gomock.Any(), s.orgID).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.orgID, returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Capacity, response.Capacity)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: capacity (required)", mutate: testutil.Field("capacity", nil)},
			{name: "capacity below minimum", mutate: testutil.Field("capacity", 0)},
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
				name:           "duplicate name",
				commandsError:  commands.ErrDuplicateResourceName,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already in use",
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
				s.mockCommands.EXPECT().CreateResource(gomock.Any(), gomock.Any(), s.orgID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetResource
// ================================================================================

func (s *ResourceHandlerTestSuite) TestGetResource() {
	resourceID := uuid.New()
	url := "/resources/" + resourceID.String()

	returnView := &queries.ResourceView{
		ID:        resourceID,
		Name:      "Studio A",
		Capacity:  20,
		CreatedAt: testDay,
		UpdatedAt: testDay,
	}

	s.Run("success: returns 200 OK with ResourceResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.orgID, resourceID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resourceID, response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid resource ID")
	})

	s.Run("error: 404 Not Found for missing resource", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.orgID, resourceID).
			Return(nil, infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Resource not found")
	})
}

// ================================================================================
// TestListResources
// ================================================================================

func (s *ResourceHandlerTestSuite) TestListResources() {
	url := "/resources"

	views := []*queries.ResourceView{
		{ID: uuid.New(), Name: "Studio A", Capacity: 20, CreatedAt: testDay, UpdatedAt: testDay},
		{ID: uuid.New(), Name: "Studio B", Capacity: 8, CreatedAt: testDay, UpdatedAt: testDay},
	}

	s.Run("success: returns resources in the org", func() {
		s.mockQueries.EXPECT().ListByOrg(gomock.Any(), s.orgID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(views[0].Name, response[0].Name)
	})

	s.Run("error: 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().ListByOrg(gomock.Any(), s.orgID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
