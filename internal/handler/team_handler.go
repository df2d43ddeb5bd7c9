package handler

import (
	"net/http"

	"lello/internal/model"
	"lello/internal/permission"
	"lello/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TeamHandler manages teams. Boards may reference a team through team_id.
type TeamHandler struct {
	resource
}

func NewTeamHandler(svc *service.Service, grants permission.GrantStore, log *zap.Logger) *TeamHandler {
	return &TeamHandler{resource{
		svc:  svc,
		perm: permission.NewEvaluator(permission.TeamConfig, grants),
		log:  log,
	}}
}

type CreateTeamRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

func (h *TeamHandler) load(c *gin.Context, action permission.Action) (*model.Team, bool) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return nil, false
	}
	team, err := h.svc.GetTeam(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	if !h.allowInstance(c, action, team.ID) {
		return nil, false
	}
	return team, true
}

// Create godoc
// @Summary      Create a team
// @Description  The caller becomes the first member and may add others.
// @Tags         Teams
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        team  body      CreateTeamRequest  true  "Team"
// @Success      201   {object}  TeamResponse
// @Router       /teams/ [post]
func (h *TeamHandler) Create(c *gin.Context) {
	if !h.allowCollection(c, permission.ActionCreate) {
		return
	}

	var req CreateTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.svc.CreateTeam(c.Request.Context(), principal(c).ID, req.Name)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, newTeamResponse(team))
}

// GetByID godoc
// @Summary      Get a team with its members
// @Tags         Teams
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Team ID"
// @Success      200  {object}  TeamResponse
// @Router       /teams/{id}/ [get]
func (h *TeamHandler) GetByID(c *gin.Context) {
	team, ok := h.load(c, permission.ActionRetrieve)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newTeamResponse(team))
}

// AddMember godoc
// @Summary      Add a user to a team
// @Tags         Teams
// @Security     BearerAuth
// @Produce      json
// @Param        id       path      string  true  "Team ID"
// @Param        user_id  path      string  true  "User ID"
// @Success      200      {object}  TeamResponse
// @Router       /teams/{id}/members/{user_id} [post]
func (h *TeamHandler) AddMember(c *gin.Context) {
	team, ok := h.load(c, permission.ActionMembers)
	if !ok {
		return
	}
	userID, ok := parseID(c, "user_id", "user")
	if !ok {
		return
	}

	team, err := h.svc.AddTeamMember(c.Request.Context(), team.ID, userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newTeamResponse(team))
}
