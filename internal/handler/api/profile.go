package api

import (
	"net/http"

	reqdto "coworking-booking/internal/handler/dto/request"
	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/handler/httperr"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	cmds commands.ProfileCommands
	q    queries.ProfileQueries
}

func NewProfileHandler(cmds commands.ProfileCommands, q queries.ProfileQueries) *ProfileHandler {
	return &ProfileHandler{cmds: cmds, q: q}
}

// @Summary Member directory
// @Description Approved members ordered by name, searched by name or company
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search term"
// @Success 200 {object} resdto.DirectoryResponse
// @Router /profiles [get]
func (h *ProfileHandler) Directory(c *gin.Context) {
	var query reqdto.DirectoryQuery
	if !bindQuery(c, &query) {
		return
	}

	views, err := h.q.Directory(c.Request.Context(), query.Search)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromDirectory(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /profiles/{id} [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondWithProfile(c, id)
}

// @Summary Edit own profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /profiles/me [put]
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.UpdateOwn(c.Request.Context(), actor, req.ToCommand()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithProfile(c, actor.ID)
}

// @Summary List profiles
// @Description Every profile, approved or not
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProfileListResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/profiles [get]
func (h *ProfileHandler) AdminList(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	views, err := h.q.AdminList(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromProfileViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Administer a profile
// @Description Approve, promote or set the monthly quota
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param request body reqdto.AdminUpdateProfileRequest true "Admin changes"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/profiles/{id} [patch]
func (h *ProfileHandler) AdminUpdate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AdminUpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.AdminUpdate(c.Request.Context(), actor, id, req.ToCommand()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithProfile(c, id)
}

// @Summary Delete a profile
// @Description Removes the member with their bookings and notifications
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/profiles/{id} [delete]
func (h *ProfileHandler) AdminDelete(c *gin.Context) {
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

func (h *ProfileHandler) respondWithProfile(c *gin.Context, id uuid.UUID) {
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromProfileView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
