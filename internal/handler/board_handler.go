package handler

import (
	"errors"
	"net/http"

	"lello/internal/model"
	"lello/internal/permission"
	"lello/internal/repository"
	"lello/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BoardHandler struct {
	resource
}

func NewBoardHandler(svc *service.Service, grants permission.GrantStore, log *zap.Logger) *BoardHandler {
	return &BoardHandler{resource{
		svc:  svc,
		perm: permission.NewEvaluator(permission.BoardConfig, grants),
		log:  log,
	}}
}

type CreateBoardRequest struct {
	Name   string `json:"name" binding:"required,max=255"`
	TeamID string `json:"team_id" binding:"omitempty,uuid"`
}

type UpdateBoardRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=255"`
	TeamID *string `json:"team_id" binding:"omitempty,uuid"`
}

// load resolves the :id board and runs the instance check for action.
func (h *BoardHandler) load(c *gin.Context, action permission.Action) (*model.Board, bool) {
	id, ok := parseID(c, "id", "board")
	if !ok {
		return nil, false
	}
	board, err := h.svc.GetBoard(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	if !h.allowInstance(c, action, board.ID) {
		return nil, false
	}
	return board, true
}

// Create godoc
// @Summary      Create a board
// @Tags         Boards
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        board  body      CreateBoardRequest  true  "Board"
// @Success      201    {object}  BoardResponse
// @Router       /boards/ [post]
func (h *BoardHandler) Create(c *gin.Context) {
	if !h.allowCollection(c, permission.ActionCreate) {
		return
	}

	var req CreateBoardRequest
	if !bindJSON(c, &req) {
		return
	}
	attrs := service.BoardAttrs{Name: req.Name}
	if req.TeamID != "" {
		teamID := uuid.MustParse(req.TeamID)
		attrs.TeamID = &teamID
	}

	board, err := h.svc.CreateBoard(c.Request.Context(), principal(c).ID, attrs)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, newBoardResponse(board))
}

// GetAll godoc
// @Summary      List the caller's boards
// @Tags         Boards
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  BoardResponse
// @Router       /boards/ [get]
func (h *BoardHandler) GetAll(c *gin.Context) {
	if !h.allowCollection(c, permission.ActionList) {
		return
	}

	boards, err := h.svc.Boards(c.Request.Context(), principal(c).ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(boards, newBoardResponse))
}

// GetByID godoc
// @Summary      Get a board
// @Tags         Boards
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Board ID"
// @Success      200  {object}  BoardResponse
// @Router       /boards/{id}/ [get]
func (h *BoardHandler) GetByID(c *gin.Context) {
	board, ok := h.load(c, permission.ActionRetrieve)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newBoardResponse(board))
}

// Update godoc
// @Summary      Update a board
// @Description  Requires the change_board capability.
// @Tags         Boards
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id     path      string              true  "Board ID"
// @Param        board  body      UpdateBoardRequest  true  "Fields to change"
// @Success      200    {object}  BoardResponse
// @Router       /boards/{id}/ [put]
func (h *BoardHandler) Update(c *gin.Context) {
	board, ok := h.load(c, updateAction(c))
	if !ok {
		return
	}

	var req UpdateBoardRequest
	if !bindJSON(c, &req) {
		return
	}
	patch := service.BoardPatch{Name: req.Name}
	if req.TeamID != nil {
		teamID := uuid.MustParse(*req.TeamID)
		patch.TeamID = &teamID
	}

	board, err := h.svc.UpdateBoard(c.Request.Context(), principal(c).ID, board.ID, patch, c.Request.Method)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newBoardResponse(board))
}

// Delete godoc
// @Summary      Delete a board with its lists, cards and calendar
// @Description  Requires the delete_board capability. Deleting a missing board succeeds.
// @Tags         Boards
// @Security     BearerAuth
// @Param        id  path  string  true  "Board ID"
// @Success      204
// @Router       /boards/{id}/ [delete]
func (h *BoardHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "board")
	if !ok {
		return
	}
	board, err := h.svc.GetBoard(c.Request.Context(), id)
	if errors.Is(err, repository.ErrBoardNotFound) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	if !h.allowInstance(c, permission.ActionDestroy, board.ID) {
		return
	}

	if err := h.svc.DestroyBoard(c.Request.Context(), principal(c).ID, board.ID); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Lists godoc
// @Summary      Lists of a board ordered by position
// @Tags         Boards
// @Security     BearerAuth
// @Produce      json
// @Param        id   path   string  true  "Board ID"
// @Success      200  {array}  ListResponse
// @Router       /boards/{id}/lists [get]
func (h *BoardHandler) Lists(c *gin.Context) {
	board, ok := h.load(c, permission.ActionLists)
	if !ok {
		return
	}

	lists, err := h.svc.ListsOfBoard(c.Request.Context(), board.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(lists, newListResponse))
}

// Audits godoc
// @Summary      Audit trail of a board, its lists and their cards
// @Tags         Boards
// @Security     BearerAuth
// @Produce      json
// @Param        id   path   string  true  "Board ID"
// @Success      200  {array}  AuditResponse
// @Router       /boards/{id}/audits [get]
func (h *BoardHandler) Audits(c *gin.Context) {
	board, ok := h.load(c, permission.ActionAudits)
	if !ok {
		return
	}

	audits, err := h.svc.AuditsOfBoard(c.Request.Context(), board.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(audits, newAuditResponse))
}

// CalendarEvents godoc
// @Summary      Events of the board's calendar
// @Tags         Boards
// @Security     BearerAuth
// @Produce      json
// @Param        id   path   string  true  "Board ID"
// @Success      200  {array}  EventResponse
// @Router       /boards/{id}/calendar-events [get]
func (h *BoardHandler) CalendarEvents(c *gin.Context) {
	board, ok := h.load(c, permission.ActionCalendarEvents)
	if !ok {
		return
	}

	events, err := h.svc.CalendarEventsOfBoard(c.Request.Context(), board.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(events, newEventResponse))
}
