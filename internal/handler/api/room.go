package api

import (
	"net/http"
	"time"

	reqdto "coworking-booking/internal/handler/dto/request"
	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/handler/httperr"
	"coworking-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	q        queries.BookingQueries
	location *time.Location
}

func NewRoomHandler(q queries.BookingQueries, settings queries.Settings) *RoomHandler {
	return &RoomHandler{q: q, location: settings.Rules.Location}
}

// @Summary Room catalog
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RoomsResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.RoomsResponse{Rooms: h.q.Rooms()})
}

// @Summary Room day schedule
// @Description Bookings of a room starting on the given local day (default today)
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param room path string true "Room name"
// @Param date query string false "Day as YYYY-MM-DD"
// @Success 200 {object} resdto.RoomScheduleResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms/{room}/bookings [get]
func (h *RoomHandler) Schedule(c *gin.Context) {
	var query reqdto.RoomScheduleQuery
	if !bindQuery(c, &query) {
		return
	}
	day, err := query.Day(h.location)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	room := c.Param("room")
	views, err := h.q.RoomSchedule(c.Request.Context(), room, day)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	list, err := resdto.FromBookingViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RoomScheduleResponse{Room: room, Items: list.Items})
}
