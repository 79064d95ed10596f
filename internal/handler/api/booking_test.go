//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/domain/profile"
	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/handler/api"
	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/handler/httperr"
	"coworking-booking/internal/handler/middleware"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/tests/common/builder"
	"coworking-booking/tests/common/httptest"
	"coworking-booking/tests/common/testutil"
	commandsmock "coworking-booking/tests/mock/commands"
	queriesmock "coworking-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth stands in for RequireAuth. The X-Role header picks the caller role.
func fakeAuth(callerID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		role := user.RoleMember
		if c.GetHeader("X-Role") == string(user.RoleAdmin) {
			role = user.RoleAdmin
		}
		c.Set("user_id", callerID)
		c.Set("user_role", role)
		c.Next()
	}
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	callerID     uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(middleware.RegisterValidators())
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.callerID = uuid.New()

	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)
	auth := fakeAuth(s.callerID)
	s.router.POST("/bookings", auth, h.Create)
	s.router.GET("/bookings/me", auth, h.History)
	s.router.DELETE("/bookings/:id", auth, h.Cancel)
	s.router.GET("/admin/bookings", auth, h.AdminList)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder().WithOwnerID(s.callerID)
	reqBody := b.BuildRequestDTO()
	view := b.BuildView()

	sameCommand := gomock.Cond(func(x any) bool {
		req, ok := x.(commands.AdmitBookingRequest)
		return ok &&
			req.Actor.ID == s.callerID &&
			req.Actor.Role == user.RoleMember &&
			req.Room == view.Room &&
			req.Start.Equal(view.StartTime) &&
			req.End.Equal(view.EndTime)
	})

	s.Run("success: returns 201 Created with the stored booking", func() {
		s.mockCommands.EXPECT().Admit(gomock.Any(), sameCommand).
			Return(&commands.AdmitBookingResult{BookingID: view.ID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(view.ID, res.ID)
		s.Equal(2.0, res.DurationHours)
		s.True(res.StartTime.Equal(view.StartTime))
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/" + view.ID.String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseBooking{
			{name: "missing room", mutate: testutil.Field("room", nil), expectCode: http.StatusBadRequest},
			{name: "missing title", mutate: testutil.Field("title", nil), expectCode: http.StatusBadRequest},
			{name: "missing start", mutate: testutil.Field("start_time", nil), expectCode: http.StatusBadRequest},
			{name: "title 201 chars", mutate: testutil.Field("title", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
			{name: "unit out of range", mutate: testutil.Field("submitter_unit", "13"), expectCode: http.StatusBadRequest},
			{name: "start not a timestamp", mutate: testutil.Field("start_time", "tomorrow"), expectCode: http.StatusBadRequest},
			{name: "title 200 chars", mutate: testutil.Field("title", strings.Repeat("a", 200)), expectCode: http.StatusCreated},
			{name: "empty unit", mutate: testutil.Field("submitter_unit", ""), expectCode: http.StatusCreated},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Admit(gomock.Any(), gomock.Any()).
						Return(&commands.AdmitBookingResult{BookingID: view.ID}, nil).Times(1)
					s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 422 carries the remaining hours", func() {
		s.mockCommands.EXPECT().Admit(gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(&booking.QuotaExceededError{RemainingHours: 1.5}, "admit booking")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, booking.ErrQuotaExceeded.Error())

		var detail httperr.QuotaDetail
		httptest.AssertErrorDetail(s.T(), body, &detail)
		s.Equal(1.5, detail.RemainingHours)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "room conflict",
				commandsError:  booking.ErrRoomConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    booking.ErrRoomConflict.Error(),
			},
			{
				name:           "invalid range",
				commandsError:  booking.ErrInvalidRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    booking.ErrInvalidRange.Error(),
			},
			{
				name:           "profile not found",
				commandsError:  profile.ErrProfileNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    profile.ErrProfileNotFound.Error(),
			},
			{
				name:           "storage unavailable",
				commandsError:  errs.Mark(errs.New("dial tcp: refused"), errs.ErrStorageUnavailable),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Storage unavailable, try again later",
			},
			{
				name:           "unexpected",
				commandsError:  errs.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Admit(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestHistory
// ================================================================================

func (s *BookingHandlerTestSuite) TestHistory() {
	views := []*queries.BookingView{
		builder.NewBookingBuilder().WithOwnerID(s.callerID).BuildView(),
		builder.NewBookingBuilder().WithOwnerID(s.callerID).
			WithSlot(builder.At(2024, 3, 2, 14, 0), builder.At(2024, 3, 2, 15, 30)).BuildView(),
	}

	s.Run("success: defaults to upcoming", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), s.callerID, queries.ScopeUpcoming, 0).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/me", nil, "bearer-token")

		var res resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(2, res.Count)
		s.Equal(1.5, res.Items[1].DurationHours)
	})

	s.Run("success: past scope with limit", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), s.callerID, queries.ScopePast, 5).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/me?scope=past&limit=5", nil, "bearer-token")

		var res resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Zero(res.Count)
	})

	s.Run("error: 400 on unknown scope", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/me?scope=yesterday", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 400 on limit above the cap", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/me?limit=500", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, user.NewActor(s.callerID, user.RoleMember)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: admin role is passed through", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, user.NewActor(s.callerID, user.RoleAdmin)).
			Return(nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token",
			map[string]string{"X-Role": string(user.RoleAdmin)})
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "inside the lead time", commandsError: booking.ErrCancellationWindowClosed, expectedStatus: http.StatusForbidden},
			{name: "someone else's booking", commandsError: booking.ErrNotBookingOwner, expectedStatus: http.StatusForbidden},
			{name: "missing booking", commandsError: commands.ErrBookingNotFound, expectedStatus: http.StatusNotFound},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, gomock.Any()).Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.commandsError.Error())
			})
		}
	})
}

// ================================================================================
// TestAdminList
// ================================================================================

func (s *BookingHandlerTestSuite) TestAdminList() {
	owner := "Maria Souza"
	view := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.OwnerName = &owner }).BuildView()

	s.Run("success: forwards search and actor", func() {
		s.mockQueries.EXPECT().
			AdminList(gomock.Any(), user.NewActor(s.callerID, user.RoleAdmin), queries.ScopePast, "souza", 20).
			Return([]*queries.BookingView{view}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, "/admin/bookings?scope=past&q=souza&limit=20", nil,
			"bearer-token", map[string]string{"X-Role": string(user.RoleAdmin)})

		var res resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res.Items, 1)
		s.Equal(&owner, res.Items[0].OwnerName)
	})

	s.Run("error: 403 for members", func() {
		s.mockQueries.EXPECT().AdminList(gomock.Any(), gomock.Any(), queries.ScopeUpcoming, "", 0).
			Return(nil, errs.NewForbidden("admin role required")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "admin role required")
	})
}
