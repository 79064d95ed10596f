package api

import (
	"net/http"

	reqdto "coworking-booking/internal/handler/dto/request"
	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/handler/httperr"
	"coworking-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UsageHandler struct {
	q queries.UsageQueries
}

func NewUsageHandler(q queries.UsageQueries) *UsageHandler {
	return &UsageHandler{q: q}
}

// @Summary My monthly usage
// @Description Hours booked this month against the quota. source=summation recomputes from the bookings themselves.
// @Tags usage
// @Produce json
// @Security BearerAuth
// @Param source query string false "aggregate (default) or summation"
// @Success 200 {object} resdto.UsageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /usage/me [get]
func (h *UsageHandler) Me(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var query reqdto.UsageQuery
	if !bindQuery(c, &query) {
		return
	}

	var (
		view *queries.UsageView
		err  error
	)
	if query.Source == queries.UsageSourceSummation {
		view, err = h.q.MonthlyUsageBySummation(c.Request.Context(), actor.ID)
	} else {
		view, err = h.q.MonthlyUsage(c.Request.Context(), actor.ID)
	}
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	res, err := resdto.FromUsageView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Quota overview
// @Description Usage of every profile this month, highest ratio first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UsageOverviewResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/usage [get]
func (h *UsageHandler) Overview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	rows, err := h.q.Overview(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromUsageOverview(rows)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
