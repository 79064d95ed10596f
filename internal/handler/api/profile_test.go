//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"coworking-booking/internal/domain/profile"
	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/handler/api"
	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/handler/middleware"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/tests/common/builder"
	"coworking-booking/tests/common/httptest"
	commandsmock "coworking-booking/tests/mock/commands"
	queriesmock "coworking-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var asAdmin = map[string]string{"X-Role": string(user.RoleAdmin)}

type ProfileHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProfileCommands
	mockQueries  *queriesmock.MockProfileQueries
	callerID     uuid.UUID
}

func (s *ProfileHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(middleware.RegisterValidators())
}

func (s *ProfileHandlerTestSuite) SetupTest() {
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProfileCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProfileQueries(s.mockCtrl)
	s.callerID = uuid.New()

	h := api.NewProfileHandler(s.mockCommands, s.mockQueries)
	auth := fakeAuth(s.callerID)
	adminOnly := middleware.NewAuthMiddleware(nil).RequireRoleAtLeast(user.RoleAdmin)
	s.router.GET("/profiles", auth, h.Directory)
	s.router.PUT("/profiles/me", auth, h.UpdateMe)
	s.router.GET("/profiles/:id", auth, h.Get)
	s.router.GET("/admin/profiles", auth, adminOnly, h.AdminList)
	s.router.PATCH("/admin/profiles/:id", auth, adminOnly, h.AdminUpdate)
	s.router.DELETE("/admin/profiles/:id", auth, adminOnly, h.AdminDelete)
}

func (s *ProfileHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProfileHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProfileHandlerTestSuite))
}

func ptr[T any](v T) *T { return &v }

// ================================================================================
// TestDirectory
// ================================================================================

func (s *ProfileHandlerTestSuite) TestDirectory() {
	s.Run("success: passes the search through and hides admin fields", func() {
		view := builder.NewProfileBuilder().WithQuota(12).BuildView()
		s.mockQueries.EXPECT().Directory(gomock.Any(), "acme").Return([]*queries.ProfileView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/profiles?q=acme", nil, "bearer-token")

		var res map[string][]map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res["items"], 1)
		s.Equal(view.ID.String(), res["items"][0]["id"])
		s.NotContains(res["items"][0], "monthly_hours_quota")
		s.NotContains(res["items"][0], "is_admin")
	})

	s.Run("error: 400 Bad Request on an oversized search", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/profiles?q="+strings.Repeat("a", 201), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 503 Service Unavailable when storage is down", func() {
		s.mockQueries.EXPECT().Directory(gomock.Any(), "").
			Return(nil, errs.Mark(errs.New("conn refused"), errs.ErrStorageUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/profiles", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Storage unavailable")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ProfileHandlerTestSuite) TestGet() {
	s.Run("success: returns the profile", func() {
		view := builder.NewProfileBuilder().BuildView()
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/profiles/"+view.ID.String(), nil, "bearer-token")

		var res resdto.ProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(view.ID, res.ID)
		s.Equal(view.FullName, res.FullName)
	})

	s.Run("error: 400 Bad Request on an invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/profiles/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().Get(gomock.Any(), id).Return(nil, profile.ErrProfileNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/profiles/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/profiles/"+uuid.NewString(), nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestUpdateMe
// ================================================================================

func (s *ProfileHandlerTestSuite) TestUpdateMe() {
	url := "/profiles/me"

	s.Run("success: updates the caller and returns the fresh profile", func() {
		view := builder.NewProfileBuilder().WithID(s.callerID).BuildView()
		s.mockCommands.EXPECT().UpdateOwn(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, actor user.Actor, req commands.UpdateProfileRequest) error {
				s.Equal(s.callerID, actor.ID)
				s.Require().NotNil(req.Unit)
				s.Equal("05", *req.Unit)
				s.Nil(req.FullName)
				return nil
			}).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), s.callerID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"unit": "05"}, "bearer-token")

		var res resdto.ProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(s.callerID, res.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name string
			body map[string]any
		}{
			{name: "unit outside the building", body: map[string]any{"unit": "13"}},
			{name: "unit not zero padded", body: map[string]any{"unit": "5"}},
			{name: "full name too long", body: map[string]any{"full_name": strings.Repeat("a", 201)}},
			{name: "bio too long", body: map[string]any{"bio": strings.Repeat("a", 1001)}},
			{name: "wrong type", body: map[string]any{"phone": 55}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, tc.body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: domain rejections map to their status", func() {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{name: "blank name", err: profile.ErrEmptyFullName, code: http.StatusBadRequest},
			{name: "profile gone", err: profile.ErrProfileNotFound, code: http.StatusNotFound},
			{name: "storage down", err: errs.Mark(errs.New("timeout"), errs.ErrStorageUnavailable), code: http.StatusServiceUnavailable},
			{name: "unexpected", err: errs.New("boom"), code: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateOwn(gomock.Any(), gomock.Any(), gomock.Any()).Return(tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"full_name": " "}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.code, "")
			})
		}
	})
}

// ================================================================================
// TestAdminRoutes
// ================================================================================

func (s *ProfileHandlerTestSuite) TestAdminRoutes() {
	target := uuid.New()

	s.Run("error: 403 Forbidden for members on every admin route", func() {
		routes := []struct {
			method string
			path   string
			body   any
		}{
			{http.MethodGet, "/admin/profiles", nil},
			{http.MethodPatch, "/admin/profiles/" + target.String(), map[string]any{"is_approved": true}},
			{http.MethodDelete, "/admin/profiles/" + target.String(), nil},
		}
		for _, r := range routes {
			rec := httptest.PerformRequest(s.T(), s.router, r.method, r.path, r.body, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
		}
	})

	s.Run("success: admin lists every profile", func() {
		views := []*queries.ProfileView{
			builder.NewProfileBuilder().BuildView(),
			builder.NewProfileBuilder().Pending().BuildView(),
		}
		s.mockQueries.EXPECT().AdminList(gomock.Any(), gomock.Cond(func(x any) bool {
			actor, ok := x.(user.Actor)
			return ok && actor.ID == s.callerID && actor.IsAdmin()
		})).Return(views, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, "/admin/profiles", nil, "bearer-token", asAdmin)

		var res resdto.ProfileListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res.Items, 2)
		s.False(res.Items[1].IsApproved)
	})

	s.Run("success: admin approves and sets a quota", func() {
		view := builder.NewProfileBuilder().WithID(target).WithQuota(20).BuildView()
		s.mockCommands.EXPECT().AdminUpdate(gomock.Any(), gomock.Any(), target, commands.AdminUpdateProfileRequest{
			IsApproved:        ptr(true),
			MonthlyHoursQuota: ptr(20.0),
		}).Return(nil).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), target).Return(view, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPatch, "/admin/profiles/"+target.String(),
			map[string]any{"is_approved": true, "monthly_hours_quota": 20}, "bearer-token", asAdmin)

		var res resdto.ProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().NotNil(res.MonthlyHoursQuota)
		s.Equal(20.0, *res.MonthlyHoursQuota)
	})

	s.Run("error: 400 Bad Request on an invalid quota or id", func() {
		cases := map[string]struct {
			path string
			body map[string]any
		}{
			"zero quota":     {"/admin/profiles/" + target.String(), map[string]any{"monthly_hours_quota": 0}},
			"negative quota": {"/admin/profiles/" + target.String(), map[string]any{"monthly_hours_quota": -3}},
			"quota too big":  {"/admin/profiles/" + target.String(), map[string]any{"monthly_hours_quota": 745}},
			"invalid id":     {"/admin/profiles/nope", map[string]any{"is_admin": true}},
		}
		for name, tc := range cases {
			rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPatch, tc.path, tc.body, "bearer-token", asAdmin)
			s.Equal(http.StatusBadRequest, rec.Code, name)
		}
	})

	s.Run("error: 404 Not Found when updating a missing profile", func() {
		s.mockCommands.EXPECT().AdminUpdate(gomock.Any(), gomock.Any(), target, gomock.Any()).
			Return(profile.ErrProfileNotFound).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPatch, "/admin/profiles/"+target.String(),
			map[string]any{"is_admin": true}, "bearer-token", asAdmin)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("success: admin deletes a profile", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), target).Return(nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodDelete, "/admin/profiles/"+target.String(), nil, "bearer-token", asAdmin)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: delete maps command errors", func() {
		cases := []struct {
			err  error
			code int
		}{
			{profile.ErrProfileNotFound, http.StatusNotFound},
			{user.ErrAdminRequired, http.StatusForbidden},
		}
		for _, tc := range cases {
			s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), target).Return(tc.err).Times(1)

			rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodDelete, "/admin/profiles/"+target.String(), nil, "bearer-token", asAdmin)
			httptest.AssertErrorResponse(s.T(), rec, tc.code, "")
		}
	})
}
