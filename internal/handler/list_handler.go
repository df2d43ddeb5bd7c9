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

type ListHandler struct {
	resource
}

func NewListHandler(svc *service.Service, grants permission.GrantStore, log *zap.Logger) *ListHandler {
	return &ListHandler{resource{
		svc:  svc,
		perm: permission.NewEvaluator(permission.ListConfig, grants),
		log:  log,
	}}
}

type CreateListRequest struct {
	BoardID  string `json:"board_id" binding:"required,uuid"`
	Name     string `json:"name" binding:"required,max=255"`
	Position int    `json:"position" binding:"min=0"`
}

type UpdateListRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=255"`
	Position *int    `json:"position" binding:"omitempty,min=1"`
}

func (h *ListHandler) load(c *gin.Context, action permission.Action) (*model.List, bool) {
	id, ok := parseID(c, "id", "list")
	if !ok {
		return nil, false
	}
	list, err := h.svc.GetList(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	if !h.allowInstance(c, action, list.ID) {
		return nil, false
	}
	return list, true
}

// Create godoc
// @Summary      Create a list on a board
// @Description  Notifies the board owner. Position defaults to the end of the board.
// @Tags         Lists
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        list  body      CreateListRequest  true  "List"
// @Success      201   {object}  ListResponse
// @Router       /lists/ [post]
func (h *ListHandler) Create(c *gin.Context) {
	if !h.allowCollection(c, permission.ActionCreate) {
		return
	}

	var req CreateListRequest
	if !bindJSON(c, &req) {
		return
	}

	list, err := h.svc.CreateList(c.Request.Context(), principal(c).ID, service.ListAttrs{
		BoardID:  uuid.MustParse(req.BoardID),
		Name:     req.Name,
		Position: req.Position,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, newListResponse(list))
}

// GetAll godoc
// @Summary      List every list
// @Tags         Lists
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  ListResponse
// @Router       /lists/ [get]
func (h *ListHandler) GetAll(c *gin.Context) {
	if !h.allowCollection(c, permission.ActionList) {
		return
	}

	lists, err := h.svc.Lists(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(lists, newListResponse))
}

// GetByID godoc
// @Summary      Get a list
// @Tags         Lists
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "List ID"
// @Success      200  {object}  ListResponse
// @Router       /lists/{id}/ [get]
func (h *ListHandler) GetByID(c *gin.Context) {
	list, ok := h.load(c, permission.ActionRetrieve)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newListResponse(list))
}

// Update godoc
// @Summary      Rename or reposition a list
// @Tags         Lists
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "List ID"
// @Param        list  body      UpdateListRequest  true  "Fields to change"
// @Success      200   {object}  ListResponse
// @Router       /lists/{id}/ [put]
func (h *ListHandler) Update(c *gin.Context) {
	list, ok := h.load(c, updateAction(c))
	if !ok {
		return
	}

	var req UpdateListRequest
	if !bindJSON(c, &req) {
		return
	}

	list, err := h.svc.UpdateList(c.Request.Context(), principal(c).ID, list.ID, service.ListPatch{
		Name:     req.Name,
		Position: req.Position,
	}, c.Request.Method)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newListResponse(list))
}

// Delete godoc
// @Summary      Delete a list and its cards
// @Tags         Lists
// @Security     BearerAuth
// @Param        id  path  string  true  "List ID"
// @Success      204
// @Router       /lists/{id}/ [delete]
func (h *ListHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "list")
	if !ok {
		return
	}
	list, err := h.svc.GetList(c.Request.Context(), id)
	if errors.Is(err, repository.ErrListNotFound) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	if !h.allowInstance(c, permission.ActionDestroy, list.ID) {
		return
	}

	if err := h.svc.DestroyList(c.Request.Context(), principal(c).ID, list.ID); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Cards godoc
// @Summary      Cards of a list with labels and assignees
// @Tags         Lists
// @Security     BearerAuth
// @Produce      json
// @Param        id   path   string  true  "List ID"
// @Success      200  {array}  CardResponse
// @Router       /lists/{id}/cards [get]
func (h *ListHandler) Cards(c *gin.Context) {
	list, ok := h.load(c, permission.ActionCards)
	if !ok {
		return
	}

	cards, err := h.svc.CardsOfList(c.Request.Context(), list.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(cards, newCardResponse))
}
