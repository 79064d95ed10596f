package api

import (
	"net/http"

	reqdto "coworking-booking/internal/handler/dto/request"
	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/handler/httperr"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AnnouncementHandler struct {
	cmds commands.AnnouncementCommands
	q    queries.AnnouncementQueries
}

func NewAnnouncementHandler(cmds commands.AnnouncementCommands, q queries.AnnouncementQueries) *AnnouncementHandler {
	return &AnnouncementHandler{cmds: cmds, q: q}
}

// @Summary Announcement mural
// @Description Newest first, keyset paginated
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.AnnouncementListResponse
// @Failure 400 {object} httperr.Response
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	var query reqdto.ListAnnouncementsQuery
	if !bindQuery(c, &query) {
		return
	}

	views, next, err := h.q.List(c.Request.Context(), query.Cursor(), query.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromAnnouncementPage(views, next)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Post an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} resdto.AnnouncementResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateAnnouncementRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load announcement", nil)
		return
	}
	res, err := resdto.FromAnnouncementView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Delete an announcement
// @Tags announcements
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
