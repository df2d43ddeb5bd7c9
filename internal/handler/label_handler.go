package handler

import (
	"errors"
	"net/http"

	"lello/internal/model"
	"lello/internal/permission"
	"lello/internal/repository"
	"lello/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LabelHandler manages labels. Labels are shared by every board.
type LabelHandler struct {
	resource
}

func NewLabelHandler(svc *service.Service, grants permission.GrantStore, log *zap.Logger) *LabelHandler {
	return &LabelHandler{resource{
		svc:  svc,
		perm: permission.NewEvaluator(permission.LabelConfig, grants),
		log:  log,
	}}
}

type LabelRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Color string `json:"color" binding:"required,max=32"`
}

type UpdateLabelRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=255"`
	Color *string `json:"color" binding:"omitempty,min=1,max=32"`
}

func (h *LabelHandler) load(c *gin.Context, action permission.Action) (*model.Label, bool) {
	id, ok := parseID(c, "id", "label")
	if !ok {
		return nil, false
	}
	label, err := h.svc.GetLabel(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	if !h.allowInstance(c, action, label.ID) {
		return nil, false
	}
	return label, true
}

// Create godoc
// @Summary      Create a label
// @Tags         Labels
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        label  body      LabelRequest  true  "Label"
// @Success      201    {object}  LabelResponse
// @Router       /labels/ [post]
func (h *LabelHandler) Create(c *gin.Context) {
	if !h.allowCollection(c, permission.ActionCreate) {
		return
	}

	var req LabelRequest
	if !bindJSON(c, &req) {
		return
	}

	label, err := h.svc.CreateLabel(c.Request.Context(), principal(c).ID, service.LabelAttrs{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, newLabelResponse(label))
}

// GetAll godoc
// @Summary      List labels
// @Tags         Labels
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  LabelResponse
// @Router       /labels/ [get]
func (h *LabelHandler) GetAll(c *gin.Context) {
	if !h.allowCollection(c, permission.ActionList) {
		return
	}

	labels, err := h.svc.Labels(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(labels, newLabelResponse))
}

// GetByID godoc
// @Summary      Get a label
// @Tags         Labels
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Label ID"
// @Success      200  {object}  LabelResponse
// @Router       /labels/{id}/ [get]
func (h *LabelHandler) GetByID(c *gin.Context) {
	label, ok := h.load(c, permission.ActionRetrieve)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newLabelResponse(label))
}

// Update godoc
// @Summary      Update a label
// @Tags         Labels
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id     path      string              true  "Label ID"
// @Param        label  body      UpdateLabelRequest  true  "Fields to change"
// @Success      200    {object}  LabelResponse
// @Router       /labels/{id}/ [put]
func (h *LabelHandler) Update(c *gin.Context) {
	label, ok := h.load(c, updateAction(c))
	if !ok {
		return
	}

	var req UpdateLabelRequest
	if !bindJSON(c, &req) {
		return
	}

	label, err := h.svc.UpdateLabel(c.Request.Context(), principal(c).ID, label.ID, service.LabelPatch{
		Name:  req.Name,
		Color: req.Color,
	}, c.Request.Method)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newLabelResponse(label))
}

// Delete godoc
// @Summary      Delete a label and take it off every card
// @Tags         Labels
// @Security     BearerAuth
// @Param        id  path  string  true  "Label ID"
// @Success      204
// @Router       /labels/{id}/ [delete]
func (h *LabelHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "label")
	if !ok {
		return
	}
	label, err := h.svc.GetLabel(c.Request.Context(), id)
	if errors.Is(err, repository.ErrLabelNotFound) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	if !h.allowInstance(c, permission.ActionDestroy, label.ID) {
		return
	}

	if err := h.svc.DestroyLabel(c.Request.Context(), principal(c).ID, label.ID); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
